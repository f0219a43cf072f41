package middleware

import (
	"context"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type contextKey string

const (
	// APITokenKey is the context key for the authenticated API token.
	APITokenKey contextKey = "api_token"
	// tokenPrefix is the required scheme prefix for export/test API tokens.
	tokenPrefix = "pan_"
)

// APITokenAuthMiddleware gates the export/test surface behind a static,
// configured set of bearer tokens (spec.md §6 supplement).
type APITokenAuthMiddleware struct {
	tokens map[string]bool
}

// NewAPITokenAuthMiddleware builds the middleware from the configured
// token list.
func NewAPITokenAuthMiddleware(tokens []string) *APITokenAuthMiddleware {
	set := make(map[string]bool, len(tokens))
	for _, t := range tokens {
		set[t] = true
	}
	return &APITokenAuthMiddleware{tokens: set}
}

// Authenticate returns an Echo middleware that validates the Authorization
// header against the configured token set.
func (m *APITokenAuthMiddleware) Authenticate() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return unauthorizedError(c, "Missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				return unauthorizedError(c, "Invalid authorization header format")
			}

			token := parts[1]
			if !strings.HasPrefix(token, tokenPrefix) {
				return unauthorizedError(c, "Invalid token format")
			}
			if !m.tokens[token] {
				log.Debug().Msg("API token not recognized")
				return unauthorizedError(c, "Invalid or expired API token")
			}

			ctx := context.WithValue(c.Request().Context(), APITokenKey, token)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

// GetAPIToken extracts the authenticated token from the request context.
func GetAPIToken(c echo.Context) string {
	if token, ok := c.Request().Context().Value(APITokenKey).(string); ok {
		return token
	}
	return ""
}
