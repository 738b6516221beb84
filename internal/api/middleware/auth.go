package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/bookvault/library-api/internal/api/metrics"
	"github.com/bookvault/library-api/internal/core/domain"
)

type messageResponse struct {
	Message string `json:"message"`
}

// Auth is the bearer-token gate. It verifies the HS256 signature and expiry
// against the shared secret, then injects the token's user identity into
// the request context for downstream handlers. Failures short-circuit with
// 401 and a catalog code; no downstream handler runs.
func Auth(jwtSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				metrics.AuthRejectionsTotal.WithLabelValues(domain.ErrTokenNotProvided.Error()).Inc()
				return c.JSON(http.StatusUnauthorized, messageResponse{Message: domain.ErrTokenNotProvided.Error()})
			}

			reject := func() error {
				metrics.AuthRejectionsTotal.WithLabelValues(domain.ErrInvalidToken.Error()).Inc()
				return c.JSON(http.StatusUnauthorized, messageResponse{Message: domain.ErrInvalidToken.Error()})
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return reject()
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return reject()
			}

			userID, ok := claims["user"].(string)
			if !ok || userID == "" {
				return reject()
			}

			c.Set("userID", userID)
			return next(c)
		}
	}
}
