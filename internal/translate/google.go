package translate

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// DefaultGoogleEndpoint is the public web translation endpoint.
const DefaultGoogleEndpoint = "https://translate.googleapis.com"

// Google uses the keyless web client endpoint of Google Translate.
type Google struct {
	endpoint string
	client   *http.Client
}

// NewGoogle returns a Google provider. An empty endpoint uses
// DefaultGoogleEndpoint.
func NewGoogle(endpoint string, client *http.Client) *Google {
	if endpoint == "" {
		endpoint = DefaultGoogleEndpoint
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &Google{endpoint: strings.TrimSuffix(endpoint, "/"), client: client}
}

// Name returns the provider name.
func (g *Google) Name() string {
	return "google"
}

// Translate translates req.Text into req.Target.
func (g *Google) Translate(ctx context.Context, req Request) (string, error) {
	skip, err := prepare(req)
	if err != nil {
		return "", failure(g.Name(), err)
	}
	if skip {
		return req.Text, nil
	}

	params := url.Values{}
	params.Set("client", "gtx")
	params.Set("sl", source(req))
	params.Set("tl", req.Target)
	params.Set("dt", "t")
	params.Set("q", req.Text)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, g.endpoint+"/translate_a/single?"+params.Encode(), nil)
	if err != nil {
		return "", failure(g.Name(), err)
	}

	resp, err := g.client.Do(httpReq)
	if err != nil {
		return "", failure(g.Name(), err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", failure(g.Name(), err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", failure(g.Name(), fmt.Errorf("API error: %d - %s", resp.StatusCode, truncateBody(body)))
	}

	text, err := parseGoogleResponse(body)
	if err != nil {
		return "", failure(g.Name(), err)
	}
	return text, nil
}

// parseGoogleResponse joins the translated segments of a response shaped
// like [[["translated","original",...],...],null,"en",...].
func parseGoogleResponse(body []byte) (string, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if len(raw) == 0 {
		return "", fmt.Errorf("empty response")
	}

	var segments [][]json.RawMessage
	if err := json.Unmarshal(raw[0], &segments); err != nil {
		return "", fmt.Errorf("unexpected response shape: %w", err)
	}

	var sb strings.Builder
	for _, seg := range segments {
		if len(seg) == 0 {
			continue
		}
		var part string
		if err := json.Unmarshal(seg[0], &part); err != nil {
			continue
		}
		sb.WriteString(part)
	}

	if sb.Len() == 0 {
		return "", fmt.Errorf("no translation in response")
	}
	return sb.String(), nil
}
