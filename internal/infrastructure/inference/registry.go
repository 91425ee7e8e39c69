package inference

import (
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
	openai "github.com/sashabaranov/go-openai"

	"github.com/pixieai/pixie-ai-service/internal/config"
)

// Provider identifies a configured LLM backend.
type Provider string

const (
	ProviderOpenAI    Provider = "openai"
	ProviderAnthropic Provider = "anthropic"
)

const (
	anthropicBaseURL = "https://api.anthropic.com"
	anthropicVersion = "2023-06-01"

	providerTimeout = 30 * time.Second
)

// Registry holds ready clients for the providers whose credentials are
// configured. It validates and carries connection parameters only: no
// completion, chat, or model request leaves this service yet.
type Registry struct {
	openaiClient    *openai.Client
	anthropicClient *resty.Client
	names           []string
}

// NewRegistry constructs provider clients from the configured API keys and
// logs which providers are available.
func NewRegistry(cfg *config.Config, log zerolog.Logger) *Registry {
	registry := &Registry{}

	if cfg.OpenAIAPIKey != "" {
		registry.openaiClient = openai.NewClient(cfg.OpenAIAPIKey)
		registry.names = append(registry.names, string(ProviderOpenAI))
	}

	if cfg.AnthropicAPIKey != "" {
		registry.anthropicClient = resty.New().
			SetBaseURL(anthropicBaseURL).
			SetHeader("X-API-Key", cfg.AnthropicAPIKey).
			SetHeader("Anthropic-Version", anthropicVersion).
			SetTimeout(providerTimeout)
		registry.names = append(registry.names, string(ProviderAnthropic))
	}

	if len(registry.names) == 0 {
		log.Warn().Msg("no LLM providers configured")
	} else {
		log.Info().Strs("providers", registry.names).Msg("LLM providers configured")
	}

	return registry
}

// Names lists the configured providers in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.names))
	copy(names, r.names)
	return names
}

// Has reports whether the given provider has a configured client.
func (r *Registry) Has(provider Provider) bool {
	switch provider {
	case ProviderOpenAI:
		return r.openaiClient != nil
	case ProviderAnthropic:
		return r.anthropicClient != nil
	default:
		return false
	}
}

// OpenAI returns the OpenAI client, nil when unconfigured.
func (r *Registry) OpenAI() *openai.Client {
	return r.openaiClient
}

// Anthropic returns the Anthropic HTTP client, nil when unconfigured.
func (r *Registry) Anthropic() *resty.Client {
	return r.anthropicClient
}
