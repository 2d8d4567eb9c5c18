// Package translate sends recognized text to a machine translation
// service. Providers share the Translator interface and are looked up by
// name through a Registry.
package translate

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"
)

// MaxTextLength is the largest payload, in characters, a provider accepts.
const MaxTextLength = 5000

var (
	// ErrTranslation is the root of every translation failure.
	ErrTranslation = errors.New("translation error")

	// ErrTextTooLong is returned for payloads over MaxTextLength.
	ErrTextTooLong = errors.New("text exceeds maximum length")

	// ErrNoTarget is returned when no target language is given.
	ErrNoTarget = errors.New("no target language")
)

// Request is a single translation job.
type Request struct {
	Text string
	// Source is the source language code; empty or "auto" lets the
	// service detect it.
	Source string
	Target string
}

// Translator translates text between languages.
type Translator interface {
	Translate(ctx context.Context, req Request) (string, error)
	Name() string
}

// Options configures a provider built by New.
type Options struct {
	Provider string
	Endpoint string
	APIKey   string
	Timeout  time.Duration
}

// New builds the provider named by opts.Provider. An empty name selects
// google.
func New(opts Options) (Translator, error) {
	name := strings.ToLower(opts.Provider)
	if name == "" {
		name = "google"
	}
	reg := NewDefaultRegistry(opts)
	t, err := reg.Get(name)
	if err != nil {
		return nil, fmt.Errorf("%w: unknown provider %q (available: %s)",
			ErrTranslation, opts.Provider, strings.Join(reg.List(), ", "))
	}
	return t, nil
}

// NewDefaultRegistry registers every built-in provider. opts.Endpoint and
// opts.APIKey apply to the provider named by opts.Provider; the others use
// their defaults.
func NewDefaultRegistry(opts Options) *Registry {
	client := &http.Client{Timeout: opts.Timeout}
	if opts.Timeout <= 0 {
		client.Timeout = 10 * time.Second
	}

	selected := strings.ToLower(opts.Provider)
	endpointFor := func(name string) string {
		if selected == name || (selected == "" && name == "google") {
			return opts.Endpoint
		}
		return ""
	}

	r := NewRegistry()
	r.Register(NewGoogle(endpointFor("google"), client))
	r.Register(NewLibre(endpointFor("libretranslate"), opts.APIKey, client))
	return r
}

// prepare validates req. It reports skip when the text has nothing to
// translate and should be returned as is.
func prepare(req Request) (skip bool, err error) {
	if strings.TrimSpace(req.Target) == "" {
		return false, ErrNoTarget
	}
	if strings.TrimSpace(req.Text) == "" {
		return true, nil
	}
	if n := utf8.RuneCountInString(req.Text); n > MaxTextLength {
		return false, fmt.Errorf("%w: %d > %d characters", ErrTextTooLong, n, MaxTextLength)
	}
	return false, nil
}

func failure(provider string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrTranslation, provider, err)
}

func source(req Request) string {
	if req.Source == "" {
		return "auto"
	}
	return req.Source
}

// truncateBody shortens a response body to 300 characters for error
// messages, cutting on a rune boundary.
func truncateBody(body []byte) string {
	const limit = 300
	runes := []rune(string(body))
	if len(runes) > limit {
		return string(runes[:limit]) + "... (truncated)"
	}
	return string(runes)
}
