// Package router wires handlers, middleware and routes onto the Echo
// instance.
package router

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"

	"github.com/loopcinemas/loop-api/internal/config"
	"github.com/loopcinemas/loop-api/internal/handler"
	"github.com/loopcinemas/loop-api/internal/middleware"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Users        *handler.UserHandler
	Movies       *handler.MovieHandler
	Reviews      *handler.ReviewHandler
	Sessions     *handler.SessionHandler
	Reservations *handler.ReservationHandler
}

// New builds the Echo instance with global middleware and all routes
// registered. rdb may be nil, in which case caching and rate limiting
// are disabled.
func New(cfg config.Config, h Handlers, rdb *redis.Client) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = newHTTPErrorHandler()

	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(echoprometheus.NewMiddleware("loop_api"))
	e.Use(middleware.NewTokenBucket(cfg.RateLimit, rdb))

	e.GET("/healthz", handler.Health)
	e.GET("/metrics", echoprometheus.NewHandler())

	auth := middleware.SessionAuth(cfg.JWTSecret)
	cache := middleware.NewRedisCache(cfg.Cache, rdb)

	// Accounts
	e.POST("/api/user/signup", h.Users.Signup)
	e.POST("/api/user/signin", h.Users.Signin)
	e.GET("/api/user/signout", h.Users.Signout)
	e.GET("/api/user", h.Users.Me, auth)
	e.PATCH("/api/user", h.Users.Update, auth)
	e.DELETE("/api/user", h.Users.Delete, auth)

	// Catalogue (cached reads)
	e.GET("/api/movies", h.Movies.List, cache)
	e.GET("/api/movies/top", h.Movies.Top, cache)

	// Reviews
	e.GET("/api/reviews", h.Reviews.List, cache)
	e.POST("/api/reviews", h.Reviews.Post, auth)
	e.DELETE("/api/reviews", h.Reviews.Delete, auth)

	// Showtimes
	e.GET("/api/sessions", h.Sessions.List, cache)
	e.GET("/api/sessions/generate", h.Sessions.Generate)

	// Reservations
	e.POST("/api/reservations", h.Reservations.Create, auth)
	e.GET("/api/reservations", h.Reservations.List, auth)

	return e
}
