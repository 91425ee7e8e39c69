package vectorstore

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// Client talks to a Qdrant node over its HTTP API. Only liveness and
// collection metadata are used in current scope; no vector operation is
// issued from this service yet.
type Client struct {
	baseURL    string
	httpClient *resty.Client
}

type collectionsResponse struct {
	Result struct {
		Collections []collectionDescription `json:"collections"`
	} `json:"result"`
	Status string  `json:"status"`
	Time   float64 `json:"time"`
}

type collectionDescription struct {
	Name string `json:"name"`
}

// NewClient builds a Qdrant client for the given base URL. An empty base
// URL yields a nil, disabled client. The API key header is attached only
// when a key is configured.
func NewClient(baseURL, apiKey string) *Client {
	baseURL = strings.TrimRight(baseURL, "/")
	if baseURL == "" {
		return nil
	}
	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetHeader("User-Agent", "Pixie-AI-VectorStore/1.0").
		SetTimeout(10 * time.Second)
	if apiKey != "" {
		httpClient.SetHeader("api-key", apiKey)
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

func (c *Client) IsEnabled() bool {
	return c != nil && c.baseURL != ""
}

// Healthz checks node liveness.
func (c *Client) Healthz(ctx context.Context) error {
	if !c.IsEnabled() {
		return fmt.Errorf("vector store client is not configured")
	}

	httpResp, err := c.httpClient.R().
		SetContext(ctx).
		Get("/healthz")
	if err != nil {
		return fmt.Errorf("vector store healthz request failed: %w", err)
	}
	if httpResp.IsError() {
		return fmt.Errorf("vector store healthz error (%d): %s", httpResp.StatusCode(), httpResp.String())
	}
	return nil
}

// ListCollections returns the names of the collections present on the node.
func (c *Client) ListCollections(ctx context.Context) ([]string, error) {
	if !c.IsEnabled() {
		return nil, fmt.Errorf("vector store client is not configured")
	}

	var resp collectionsResponse
	httpResp, err := c.httpClient.R().
		SetContext(ctx).
		SetResult(&resp).
		Get("/collections")
	if err != nil {
		return nil, fmt.Errorf("vector store collections request failed: %w", err)
	}
	if httpResp.IsError() {
		return nil, fmt.Errorf("vector store collections error (%d): %s", httpResp.StatusCode(), httpResp.String())
	}

	names := make([]string, 0, len(resp.Result.Collections))
	for _, collection := range resp.Result.Collections {
		names = append(names, collection.Name)
	}
	return names, nil
}
