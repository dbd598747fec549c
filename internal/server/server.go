package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"velocity-shop/internal/dto"
	"velocity-shop/internal/handler"
	"velocity-shop/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type Server struct {
	echo           *echo.Echo
	logger         *slog.Logger
	authHandler    *handler.AuthHandler
	productHandler *handler.ProductHandler
	cartHandler    *handler.CartHandler
	orderHandler   *handler.OrderHandler
}

func NewServer(
	logger *slog.Logger,
	allowOrigins []string,
	userService service.UserService,
	productService service.ProductService,
	cartService service.CartService,
	orderService service.OrderService,
) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	s := &Server{
		echo:           e,
		logger:         logger,
		authHandler:    handler.NewAuthHandler(userService),
		productHandler: handler.NewProductHandler(productService),
		cartHandler:    handler.NewCartHandler(cartService),
		orderHandler:   handler.NewOrderHandler(orderService),
	}

	e.HTTPErrorHandler = s.handleError

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			s.logger.LogAttrs(c.Request().Context(), slog.LevelInfo, "request",
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
				slog.String("remote_ip", v.RemoteIP),
			)
			return nil
		},
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(corsConfig(allowOrigins)))

	s.setupRoutes()
	return s
}

func corsConfig(allowOrigins []string) middleware.CORSConfig {
	if len(allowOrigins) == 0 {
		allowOrigins = []string{"*"}
	}

	return middleware.CORSConfig{
		AllowOrigins:     allowOrigins,
		AllowCredentials: true,
		// browsers reject "*" on credentialed requests, so the origin is echoed back instead
		UnsafeWildcardOriginWithAllowCredentials: slices.Contains(allowOrigins, "*"),
		AllowMethods: []string{
			http.MethodGet, http.MethodHead, http.MethodPost,
			http.MethodPut, http.MethodPatch, http.MethodDelete,
		},
	}
}

func (s *Server) setupRoutes() {
	api := s.echo.Group("/api")

	api.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	api.POST("/auth/login", s.authHandler.Login)

	api.GET("/products", s.productHandler.ListProducts)
	api.GET("/products/:id", s.productHandler.GetProduct)

	// -------- cart --------
	cart := api.Group("/cart")
	cart.POST("/add", s.cartHandler.AddItem)
	cart.GET("/:userId", s.cartHandler.GetCart)
	cart.PUT("/:itemId", s.cartHandler.UpdateItem)
	cart.DELETE("/:itemId", s.cartHandler.RemoveItem)

	api.POST("/orders", s.orderHandler.CreateOrder)
}

// handleError renders every failure as {"detail": "..."}.
func (s *Server) handleError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	detail := http.StatusText(code)

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		detail = fmt.Sprint(he.Message)
	}

	if code >= http.StatusInternalServerError {
		s.logger.ErrorContext(c.Request().Context(), "request failed",
			"method", c.Request().Method,
			"path", c.Path(),
			"error", err,
		)
	}

	var writeErr error
	if c.Request().Method == http.MethodHead {
		writeErr = c.NoContent(code)
	} else {
		writeErr = c.JSON(code, &dto.ErrorResponse{Detail: detail})
	}
	if writeErr != nil {
		s.logger.Error("write error response", "error", writeErr)
	}
}

func (s *Server) Handler() http.Handler {
	return s.echo
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
