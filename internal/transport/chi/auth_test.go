package chi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func serveAuth(keys []string, path, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, http.NoBody)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rr := httptest.NewRecorder()
	BearerAuthMiddleware(keys)(okHandler()).ServeHTTP(rr, req)
	return rr
}

func TestAuthMiddleware_NoKeysIsOpen(t *testing.T) {
	for _, keys := range [][]string{nil, {"", "  "}} {
		if rr := serveAuth(keys, "/api/v1/objects", ""); rr.Code != http.StatusOK {
			t.Errorf("keys %q: got %d, want 200", keys, rr.Code)
		}
	}
}

func TestAuthMiddleware_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		message string
	}{
		{"missing", "", "missing authorization header"},
		{"basic scheme", "Basic dXNlcjpwYXNz", "authorization header must use Bearer scheme"},
		{"wrong key", "Bearer wrong-key", "invalid api key"},
		{"key prefix", "Bearer secre", "invalid api key"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rr := serveAuth([]string{"secret"}, "/api/v1/persons/batch", tc.header)
			if rr.Code != http.StatusUnauthorized {
				t.Fatalf("got %d, want 401", rr.Code)
			}
			var resp ErrorResponse
			if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
				t.Fatalf("decode error response: %v", err)
			}
			if resp.Code != ErrorCodeUnauthorized || resp.Message != tc.message {
				t.Errorf("error = %+v, want %s %q", resp, ErrorCodeUnauthorized, tc.message)
			}
		})
	}
}

func TestAuthMiddleware_AcceptsAnyConfiguredKey(t *testing.T) {
	for _, key := range []string{"key1", "key2"} {
		if rr := serveAuth([]string{"key1", " key2 "}, "/api/v1/datasets", "Bearer "+key); rr.Code != http.StatusOK {
			t.Errorf("key %s: got %d, want 200", key, rr.Code)
		}
	}
}

func TestAuthMiddleware_PublicPaths(t *testing.T) {
	for _, path := range []string{"/health", "/metrics"} {
		if rr := serveAuth([]string{"secret"}, path, ""); rr.Code != http.StatusOK {
			t.Errorf("%s: got %d, want 200", path, rr.Code)
		}
	}
}

func TestCheckBearer(t *testing.T) {
	keys := [][]byte{[]byte("secret")}
	tests := []struct {
		header string
		reason string
	}{
		{"", authMissing},
		{"Token secret", authScheme},
		{"Bearer other", authInvalid},
		{"Bearer secret", ""},
	}
	for _, tc := range tests {
		if reason, _ := checkBearer(tc.header, keys); reason != tc.reason {
			t.Errorf("checkBearer(%q) = %q, want %q", tc.header, reason, tc.reason)
		}
	}
}
