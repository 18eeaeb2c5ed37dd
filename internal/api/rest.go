package api

import (
	"context"
	"sync"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/learntoride/ltr/internal/api/admin"
	"github.com/learntoride/ltr/internal/api/auth"
	"github.com/learntoride/ltr/internal/api/tricks"
	"github.com/learntoride/ltr/internal/http/websocket"
	"github.com/learntoride/ltr/pkg/logger"
)

var log = logger.Get("API")

type (
	RestConfig struct {
		HostAddr string `toml:"host_address" env:"API_HOST_ADDR" env-default:"0.0.0.0:8080"`
	}

	controller interface {
		SetRoutes(*echo.Group)
	}

	// dataStore represents a union of all the controller store requirements.
	dataStore interface {
		tricks.Store
		admin.Store
	}

	// The RestGateway is a thin wrapper around the Echo HTTP router. Its sole
	// responsibility is to create the routes the server exposes, manage
	// ongoing web socket connections and events, and to enforce the admin
	// password middleware where applicable.
	RestGateway struct {
		*broadcaster
		config           *RestConfig
		ec               *echo.Echo
		socket           *websocket.SocketHub
		authController   controller
		tricksController controller
		adminController  controller
	}
)

// NewRestGateway constructs the Echo router and populates it with all the
// routes defined by the various controllers. The gallery routes are open;
// everything under /admin re-verifies the password header on each request.
func NewRestGateway(
	config *RestConfig,
	authProvider *auth.Provider,
	store dataStore,
	objectStorage admin.ObjectStorage,
	thumbnails admin.ThumbnailResolver,
) *RestGateway {
	ec := echo.New()
	ec.OnAddRouteHandler = func(host string, route echo.Route, handler echo.HandlerFunc, middleware []echo.MiddlewareFunc) {
		log.Emit(logger.DEBUG, "Registered new route %s %s\n", route.Method, route.Path)
	}
	ec.HidePort = true
	ec.HideBanner = true

	socket := websocket.New()
	gateway := &RestGateway{
		broadcaster:      newBroadcaster(socket, store),
		config:           config,
		ec:               ec,
		socket:           socket,
		authController:   auth.New(authProvider),
		tricksController: tricks.New(store),
	}
	gateway.adminController = admin.New(store, objectStorage, thumbnails, gateway.broadcaster)

	// Newly connected clients are told how big the library currently is, so
	// a gallery opened mid-session can tell whether its cached list is stale.
	socket.WithConnectionCallback(func() map[string]interface{} {
		items, err := store.ListTricks()
		if err != nil {
			log.Warnf("Failed to derive welcome payload for new socket client: %v\n", err)
			return map[string]interface{}{}
		}

		return map[string]interface{}{"library_size": len(items)}
	})

	ec.Use(middleware.Logger())
	ec.Use(middleware.Recover())
	// The gallery frontend is served from a different origin than this API.
	ec.Use(middleware.CORS())
	ec.Pre(middleware.AddTrailingSlash())

	ec.GET("/api/ltr/v1/activity/ws/", func(ec echo.Context) error {
		gateway.socket.UpgradeToSocket(ec.Response(), ec.Request())
		return nil
	})

	authGroup := ec.Group("/api/ltr/v1/auth")
	gateway.authController.SetRoutes(authGroup)

	gallery := ec.Group("/api/ltr/v1/tricks")
	gateway.tricksController.SetRoutes(gallery)

	adminGroup := ec.Group("/api/ltr/v1/admin", authProvider.GetAdminVerifierMiddleware())
	gateway.adminController.SetRoutes(adminGroup)

	return gateway
}

func (gateway *RestGateway) Run(parentCtx context.Context) error {
	ctx, ctxCancel := context.WithCancelCause(parentCtx)
	wg := &sync.WaitGroup{}

	// Start echo router
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := gateway.ec.Start(gateway.config.HostAddr); err != nil {
			ctxCancel(err)
		}
	}()

	// Start thread to listen for context cancellation
	go func(ec *echo.Echo) {
		<-ctx.Done()
		ec.Close()
	}(gateway.ec)

	// Start websocket
	wg.Add(1)
	go func() {
		defer wg.Done()
		gateway.socket.Start(ctx)
	}()

	wg.Wait()

	// Return cancellation cause if any, otherwise nil as parent context
	// cancellation is not an error case we should report.
	if cause := context.Cause(ctx); cause != ctx.Err() {
		return cause
	}

	return nil
}
