package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/pixieai/pixie-ai-service/internal/config"
	"github.com/pixieai/pixie-ai-service/internal/interfaces/httpserver/handlers"
)

func setupStatusTestRouter(handler *handlers.StatusHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/", handler.Root)
	r.GET("/health", handler.Health)
	return r
}

func TestStatusHandler_Root(t *testing.T) {
	handler := handlers.NewStatusHandler(&config.Config{Environment: "development"})
	router := setupStatusTestRouter(handler)

	req, _ := http.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	var response map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}

	if response["service"] != "pixie-ai" {
		t.Errorf("Expected service 'pixie-ai', got %v", response["service"])
	}
	if response["status"] != "running" {
		t.Errorf("Expected status 'running', got %v", response["status"])
	}
	if len(response) != 2 {
		t.Errorf("Expected exactly two fields, got %v", response)
	}
}

func TestStatusHandler_Health(t *testing.T) {
	handler := handlers.NewStatusHandler(&config.Config{Environment: "staging"})
	router := setupStatusTestRouter(handler)

	req, _ := http.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	var response map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}

	if response["status"] != "healthy" {
		t.Errorf("Expected status 'healthy', got %v", response["status"])
	}
	if response["version"] != config.Version {
		t.Errorf("Expected version %q, got %v", config.Version, response["version"])
	}
	if response["environment"] != "staging" {
		t.Errorf("Expected environment 'staging', got %v", response["environment"])
	}
	if len(response) != 3 {
		t.Errorf("Expected exactly three fields, got %v", response)
	}
}
