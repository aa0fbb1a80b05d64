package chi

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/kailas-cloud/heritagegraph/internal/logger"
	"github.com/kailas-cloud/heritagegraph/internal/metrics"
)

// publicPaths stay reachable without a key so that probes and scrapers need
// no credentials.
var publicPaths = map[string]struct{}{
	"/health":  {},
	"/metrics": {},
}

const bearerPrefix = "Bearer "

// Reasons a request is rejected, used as metric labels.
const (
	authMissing = "missing"
	authScheme  = "scheme"
	authInvalid = "invalid_key"
)

// BearerAuthMiddleware guards the record and search routes with API keys
// sent as Bearer tokens. Blank keys are ignored; without any key the API is
// open.
func BearerAuthMiddleware(apiKeys []string) func(http.Handler) http.Handler {
	var keys [][]byte
	for _, k := range apiKeys {
		if k = strings.TrimSpace(k); k != "" {
			keys = append(keys, []byte(k))
		}
	}

	return func(next http.Handler) http.Handler {
		if len(keys) == 0 {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := publicPaths[r.URL.Path]; ok {
				next.ServeHTTP(w, r)
				return
			}

			reason, msg := checkBearer(r.Header.Get("Authorization"), keys)
			if reason != "" {
				metrics.RecordAuthFailure(reason)
				logger.FromContext(r.Context()).Info("request rejected",
					zap.String("reason", reason),
					zap.String("path", r.URL.Path),
				)
				writeError(w, http.StatusUnauthorized, ErrorCodeUnauthorized, msg)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// checkBearer returns the rejection reason and message for header, or empty
// strings when it carries one of keys.
func checkBearer(header string, keys [][]byte) (string, string) {
	if header == "" {
		return authMissing, "missing authorization header"
	}
	token, ok := strings.CutPrefix(header, bearerPrefix)
	if !ok {
		return authScheme, "authorization header must use Bearer scheme"
	}
	match := 0
	for _, k := range keys {
		match |= subtle.ConstantTimeCompare([]byte(token), k)
	}
	if match == 0 {
		return authInvalid, "invalid api key"
	}
	return "", ""
}
