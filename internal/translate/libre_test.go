package translate

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestLibre_Translate(t *testing.T) {
	tests := []struct {
		name           string
		apiKey         string
		statusCode     int
		serverResponse string
		expectedText   string
		expectError    bool
		errorContains  string
	}{
		{
			name:           "successful response",
			statusCode:     http.StatusOK,
			serverResponse: `{"translatedText": "Bonjour"}`,
			expectedText:   "Bonjour",
		},
		{
			name:           "with api key",
			apiKey:         "secret",
			statusCode:     http.StatusOK,
			serverResponse: `{"translatedText": "Salut"}`,
			expectedText:   "Salut",
		},
		{
			name:           "API error with message",
			statusCode:     http.StatusBadRequest,
			serverResponse: `{"error": "fr is not supported"}`,
			expectError:    true,
			errorContains:  "fr is not supported",
		},
		{
			name:           "API error with plain body",
			statusCode:     http.StatusBadGateway,
			serverResponse: `upstream down`,
			expectError:    true,
			errorContains:  "API error: 502",
		},
		{
			name:           "missing translatedText",
			statusCode:     http.StatusOK,
			serverResponse: `{}`,
			expectError:    true,
			errorContains:  "no translation",
		},
		{
			name:           "malformed JSON",
			statusCode:     http.StatusOK,
			serverResponse: `{"translatedText": `,
			expectError:    true,
			errorContains:  "failed to decode",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.Method != http.MethodPost {
					t.Errorf("Expected POST request, got %s", r.Method)
				}
				if r.URL.Path != "/translate" {
					t.Errorf("Expected /translate path, got %s", r.URL.Path)
				}
				if r.Header.Get("Content-Type") != "application/json" {
					t.Errorf("Expected application/json content type")
				}

				var body map[string]interface{}
				if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
					t.Errorf("Failed to decode request body: %v", err)
				} else {
					if body["q"] != "Hello" || body["target"] != "fr" || body["source"] != "auto" {
						t.Errorf("unexpected request body: %v", body)
					}
					if body["format"] != "text" {
						t.Errorf("format: got %v, want text", body["format"])
					}
					if tt.apiKey != "" && body["api_key"] != tt.apiKey {
						t.Errorf("api_key: got %v, want %s", body["api_key"], tt.apiKey)
					}
					if tt.apiKey == "" {
						if _, ok := body["api_key"]; ok {
							t.Error("api_key should be omitted when not configured")
						}
					}
				}

				w.WriteHeader(tt.statusCode)
				w.Write([]byte(tt.serverResponse))
			}))
			defer server.Close()

			l := NewLibre(server.URL, tt.apiKey, server.Client())
			text, err := l.Translate(context.Background(), Request{Text: "Hello", Target: "fr"})

			if tt.expectError {
				if err == nil {
					t.Fatal("Expected error but got none")
				}
				if !errors.Is(err, ErrTranslation) {
					t.Errorf("error should wrap ErrTranslation: %v", err)
				}
				if !strings.Contains(err.Error(), tt.errorContains) {
					t.Errorf("Expected error containing %q, got %q", tt.errorContains, err.Error())
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if text != tt.expectedText {
				t.Errorf("Expected %q, got %q", tt.expectedText, text)
			}
		})
	}
}

func TestLibre_ExplicitSource(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]interface{}
		json.NewDecoder(r.Body).Decode(&body)
		if body["source"] != "ru" {
			t.Errorf("source: got %v, want ru", body["source"])
		}
		w.Write([]byte(`{"translatedText": "Hi"}`))
	}))
	defer server.Close()

	text, err := NewLibre(server.URL, "", server.Client()).Translate(context.Background(), Request{Text: "Привет", Source: "ru", Target: "en"})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if text != "Hi" {
		t.Errorf("got %q, want Hi", text)
	}
}
