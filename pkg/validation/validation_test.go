package validation_test

import (
	"grabctl/pkg/validation"
	"testing"
)

func TestValidateURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr bool
	}{
		// Valid URLs
		{"http url", "http://example.com/watch?v=abc123", false},
		{"https url", "https://example.com/watch?v=abc123", false},
		{"url with port", "https://example.com:8443/video", false},
		{"url with query and fragment", "https://example.com/v?id=1&t=30#frag", false},

		// Invalid URLs
		{"empty url", "", true},
		{"missing scheme", "example.com/watch", true},
		{"ftp scheme", "ftp://example.com/file", true},
		{"file scheme", "file:///etc/passwd", true},
		{"missing host", "https://", true},

		// Injection attempts
		{"semicolon injection", "https://example.com/video;rm -rf /", true},
		{"command substitution", "https://example.com/$(whoami)", true},
		{"backtick injection", "https://example.com/`id`", true},
		{"pipe injection", "https://example.com/video|cat", true},
		{"ampersand injection", "https://example.com/video&sleep 10", true},
		{"newline injection", "https://example.com/video\n--exec=evil", true},
		{"null byte", "https://example.com/video\x00", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := validation.ValidateURL(tt.url)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateURL(%q) error = %v, wantErr %v", tt.url, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.url {
				t.Errorf("ValidateURL(%q) = %q, want the input back unchanged", tt.url, got)
			}
		})
	}
}

func TestValidateFormatID(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		wantErr bool
	}{
		// Valid format selectors
		{"numeric id", "137", false},
		{"named format", "bestvideo", false},
		{"merged selector", "137+140", false},
		{"fallback selector", "bestvideo+bestaudio/best", false},
		{"extension filter", "mp4", false},
		{"dotted id", "http-1080.0", false},

		// Invalid format selectors
		{"empty id", "", true},
		{"spaces", "best video", true},
		{"semicolon", "137;rm -rf /", true},
		{"command substitution", "$(whoami)", true},
		{"backticks", "`id`", true},
		{"brackets", "best[height<=720]", true},
		{"quotes", `"best"`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := validation.ValidateFormatID(tt.id)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateFormatID(%q) error = %v, wantErr %v", tt.id, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.id {
				t.Errorf("ValidateFormatID(%q) = %q, want the input back unchanged", tt.id, got)
			}
		})
	}
}

func TestValidateStringForInjection(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"plain string", "hello-world_123", false},
		{"url-ish string", "https://example.com/path?a=b", false},
		{"semicolon", "a;b", true},
		{"dollar paren", "a$(b)", true},
		{"backtick", "a`b`", true},
		{"pipe", "a|b", true},
		{"control char", "a\tb", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validation.ValidateStringForInjection(tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateStringForInjection(%q) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
		})
	}
}
