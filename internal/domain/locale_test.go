package domain

import (
	"errors"
	"testing"
)

func TestParseLocale(t *testing.T) {
	tests := []struct {
		in      string
		want    Locale
		wantErr bool
	}{
		{"", LocaleEnglish, false},
		{"en", LocaleEnglish, false},
		{"EN", LocaleEnglish, false},
		{"nl", LocaleDutch, false},
		{"nl-BE", LocaleDutch, false},
		{"fr", "", true},
		{"!!", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLocale(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidLocale) {
					t.Fatalf("ParseLocale(%q) error = %v, want ErrInvalidLocale", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseLocale(%q): %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseLocale(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestLocaleOrDefault(t *testing.T) {
	if got := Locale("").OrDefault(); got != DefaultLocale {
		t.Errorf("OrDefault() = %q, want %q", got, DefaultLocale)
	}
	if got := LocaleDutch.OrDefault(); got != LocaleDutch {
		t.Errorf("OrDefault() = %q, want %q", got, LocaleDutch)
	}
}

func TestUpstreamErrorUnwrap(t *testing.T) {
	err := NewUpstreamError("sparql", 503, "unavailable")
	if !errors.Is(err, ErrUpstream) {
		t.Fatal("expected errors.Is(err, ErrUpstream)")
	}
	var ue *UpstreamError
	if !errors.As(err, &ue) || ue.StatusCode != 503 {
		t.Fatalf("errors.As = %+v", ue)
	}
}
