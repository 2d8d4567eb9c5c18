package translate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// DefaultLibreEndpoint is the public LibreTranslate instance.
const DefaultLibreEndpoint = "https://libretranslate.com"

// Libre talks to a LibreTranslate server.
type Libre struct {
	endpoint string
	apiKey   string
	client   *http.Client
}

// NewLibre returns a LibreTranslate provider. An empty endpoint uses
// DefaultLibreEndpoint.
func NewLibre(endpoint, apiKey string, client *http.Client) *Libre {
	if endpoint == "" {
		endpoint = DefaultLibreEndpoint
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &Libre{endpoint: strings.TrimSuffix(endpoint, "/"), apiKey: apiKey, client: client}
}

// Name returns the provider name.
func (l *Libre) Name() string {
	return "libretranslate"
}

type libreRequest struct {
	Q      string `json:"q"`
	Source string `json:"source"`
	Target string `json:"target"`
	Format string `json:"format"`
	APIKey string `json:"api_key,omitempty"`
}

type libreResponse struct {
	TranslatedText *string `json:"translatedText"`
	Error          string  `json:"error"`
}

// Translate translates req.Text into req.Target.
func (l *Libre) Translate(ctx context.Context, req Request) (string, error) {
	skip, err := prepare(req)
	if err != nil {
		return "", failure(l.Name(), err)
	}
	if skip {
		return req.Text, nil
	}

	payload, err := json.Marshal(libreRequest{
		Q:      req.Text,
		Source: source(req),
		Target: req.Target,
		Format: "text",
		APIKey: l.apiKey,
	})
	if err != nil {
		return "", failure(l.Name(), fmt.Errorf("failed to marshal request: %w", err))
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, l.endpoint+"/translate", bytes.NewReader(payload))
	if err != nil {
		return "", failure(l.Name(), err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := l.client.Do(httpReq)
	if err != nil {
		return "", failure(l.Name(), err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", failure(l.Name(), err)
	}

	var out libreResponse
	if err := json.Unmarshal(body, &out); err != nil {
		if resp.StatusCode != http.StatusOK {
			return "", failure(l.Name(), fmt.Errorf("API error: %d - %s", resp.StatusCode, truncateBody(body)))
		}
		return "", failure(l.Name(), fmt.Errorf("failed to decode response: %w", err))
	}
	if resp.StatusCode != http.StatusOK {
		msg := out.Error
		if msg == "" {
			msg = truncateBody(body)
		}
		return "", failure(l.Name(), fmt.Errorf("API error: %d - %s", resp.StatusCode, msg))
	}
	if out.TranslatedText == nil {
		return "", failure(l.Name(), fmt.Errorf("no translation in response"))
	}
	return *out.TranslatedText, nil
}
