package auth

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
)

// Skipper reports whether a request may bypass token validation.
type Skipper func(r *http.Request) bool

// Middleware rejects requests without a valid bearer token and stores the
// claims of accepted ones on the request context.
type Middleware struct {
	Config  Config
	Skipper Skipper
}

// NewMiddleware constructs a Middleware; skipper may be nil.
func NewMiddleware(cfg Config, skipper Skipper) Middleware {
	return Middleware{Config: cfg, Skipper: skipper}
}

// PublicPaths skips authentication for exact paths, any path under the
// given prefixes, and CORS preflight requests.
func PublicPaths(exact []string, prefixes []string) Skipper {
	return func(r *http.Request) bool {
		if r.Method == http.MethodOptions {
			return true
		}
		for _, p := range exact {
			if r.URL.Path == p {
				return true
			}
		}
		for _, p := range prefixes {
			if strings.HasPrefix(r.URL.Path, p) {
				return true
			}
		}
		return false
	}
}

// Wrap guards next.
func (m Middleware) Wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.Skipper != nil && m.Skipper(r) {
			next.ServeHTTP(w, r)
			return
		}

		token, err := bearerToken(r.Header.Get("Authorization"))
		if err != nil {
			unauthorized(w, err)
			return
		}
		claims, err := Parse(token, m.Config)
		if err != nil {
			unauthorized(w, err)
			return
		}
		next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
	})
}

func bearerToken(header string) (string, error) {
	if header == "" {
		return "", ErrMissingToken
	}
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "bearer") {
		return "", ErrInvalidToken
	}
	return strings.TrimSpace(token), nil
}

// unauthorized answers with the same {type, detail} body the API handlers use.
// The detail is always one of the two sentinel messages.
func unauthorized(w http.ResponseWriter, err error) {
	detail := ErrInvalidToken.Error()
	if errors.Is(err, ErrMissingToken) {
		detail = ErrMissingToken.Error()
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("WWW-Authenticate", "Bearer")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"type": "unauthorized", "detail": detail})
}
