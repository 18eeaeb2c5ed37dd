package auth

import (
	"crypto/subtle"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/learntoride/ltr/pkg/logger"
)

// The header admin requests carry their password in. There is no session
// state on the server: the gate endpoint merely tells the client whether
// its password is good, and every admin operation re-verifies the header.
const adminPasswordHeader = "X-Admin-Password"

var (
	errUnauthorized = echo.NewHTTPError(http.StatusUnauthorized)
	log             = logger.Get("Auth")
)

type (
	// Provider verifies the single shared admin password against the
	// configured secret. There are no users, roles or tokens - just one
	// password, shared by all admins.
	Provider struct {
		secret []byte
	}
)

func NewProvider(secret string) *Provider {
	return &Provider{secret: []byte(secret)}
}

// Verify compares the submitted password against the configured secret
// in constant time.
func (provider *Provider) Verify(password string) bool {
	return subtle.ConstantTimeCompare(provider.secret, []byte(password)) == 1
}

// GetAdminVerifierMiddleware returns an echo middleware which rejects any
// request whose admin-password header does not match the secret.
func (provider *Provider) GetAdminVerifierMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ec echo.Context) error {
			if !provider.Verify(ec.Request().Header.Get(adminPasswordHeader)) {
				log.Warnf("Rejecting admin request to %s: bad or missing password header\n", ec.Request().URL.Path)
				return errUnauthorized
			}

			return next(ec)
		}
	}
}
