package translate

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
	"unicode/utf8"
)

func TestNew(t *testing.T) {
	tests := []struct {
		provider string
		wantName string
		wantErr  bool
	}{
		{"", "google", false},
		{"google", "google", false},
		{"Google", "google", false},
		{"libretranslate", "libretranslate", false},
		{"deepl", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.provider, func(t *testing.T) {
			tr, err := New(Options{Provider: tt.provider, Timeout: time.Second})
			if tt.wantErr {
				if !errors.Is(err, ErrTranslation) {
					t.Errorf("got %v, want ErrTranslation", err)
				}
				if err != nil && !strings.Contains(err.Error(), "available: google, libretranslate") {
					t.Errorf("error should list the providers: %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("New failed: %v", err)
			}
			if tr.Name() != tt.wantName {
				t.Errorf("Name: got %s, want %s", tr.Name(), tt.wantName)
			}
		})
	}
}

type stubTranslator struct{ name string }

func (s stubTranslator) Translate(ctx context.Context, req Request) (string, error) {
	return req.Text, nil
}

func (s stubTranslator) Name() string { return s.name }

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	r.Register(stubTranslator{name: "Google"})
	r.Register(stubTranslator{name: "libretranslate"})

	if _, err := r.Get("GOOGLE"); err != nil {
		t.Errorf("Get should be case-insensitive: %v", err)
	}
	if _, err := r.Get("missing"); err == nil {
		t.Error("Get should fail for an unregistered provider")
	}

	names := r.List()
	if len(names) != 2 || names[0] != "google" || names[1] != "libretranslate" {
		t.Errorf("List: got %v", names)
	}
}

func TestTruncateBody(t *testing.T) {
	short := []byte("short")
	if truncateBody(short) != "short" {
		t.Error("short bodies should be unchanged")
	}
	long := make([]byte, 400)
	for i := range long {
		long[i] = 'a'
	}
	got := truncateBody(long)
	if len(got) != 300+len("... (truncated)") {
		t.Errorf("unexpected truncated length %d", len(got))
	}
}

func TestTruncateBody_MultiByte(t *testing.T) {
	body := []byte(strings.Repeat("я", 400))
	got := truncateBody(body)

	if !utf8.ValidString(got) {
		t.Fatalf("truncated body is not valid UTF-8: %q", got)
	}
	want := strings.Repeat("я", 300) + "... (truncated)"
	if got != want {
		t.Errorf("got %d runes, want %d", utf8.RuneCountInString(got), utf8.RuneCountInString(want))
	}
}

func TestNewDefaultRegistry(t *testing.T) {
	r := NewDefaultRegistry(Options{Provider: "libretranslate", Endpoint: "http://localhost:5000/"})

	names := r.List()
	if len(names) != 2 || names[0] != "google" || names[1] != "libretranslate" {
		t.Fatalf("List: got %v", names)
	}

	tr, err := r.Get("libretranslate")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if lt := tr.(*Libre); lt.endpoint != "http://localhost:5000" {
		t.Errorf("selected provider should use the configured endpoint, got %q", lt.endpoint)
	}

	tr, _ = r.Get("google")
	if g := tr.(*Google); g.endpoint != DefaultGoogleEndpoint {
		t.Errorf("other providers should keep their default endpoint, got %q", g.endpoint)
	}
}
