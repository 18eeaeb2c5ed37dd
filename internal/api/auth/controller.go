package auth

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type (
	LoginRequest struct {
		Password string `json:"password"`
	}

	LoginResponse struct {
		Ok bool `json:"ok"`
	}

	Controller struct {
		provider *Provider
	}
)

func New(provider *Provider) *Controller {
	return &Controller{provider}
}

func (controller *Controller) SetRoutes(eg *echo.Group) {
	eg.POST("/login/", controller.login)
}

// login accepts a POST request containing the alleged admin password and
// reports whether it matches the configured secret. No token or cookie is
// issued - the client keeps its own unlocked flag and presents the password
// again on each admin operation.
func (controller *Controller) login(ec echo.Context) error {
	var request LoginRequest
	if err := ec.Bind(&request); err != nil {
		log.Warnf("Failed to authenticate due to error: %v\n", err)
		return errUnauthorized
	}

	if !controller.provider.Verify(request.Password) {
		return ec.JSON(http.StatusUnauthorized, LoginResponse{Ok: false})
	}

	return ec.JSON(http.StatusOK, LoginResponse{Ok: true})
}
