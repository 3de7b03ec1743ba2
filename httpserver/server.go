package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"moviecredits/actor"
	"moviecredits/credit"
	"moviecredits/errs"
	"moviecredits/movie"
	"moviecredits/pkg/config"
	"moviecredits/pkg/logger"
	"moviecredits/pkg/sentry"

	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type Server struct {
	// Router is the Echo router instance
	Router *echo.Echo

	// Addr represents the address the server will listen on
	Addr string

	// Allowed origins for CORS
	AllowOrigins []string

	// Requests per second allowed per client IP, 0 disables limiting
	RateLimit rate.Limit

	Logger *zap.SugaredLogger

	MovieService  movie.Service
	ActorService  actor.Service
	CreditService credit.Service
}

func Default(cfg *config.Config) *Server {
	s := Server{
		Router:       echo.New(),
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		AllowOrigins: []string{"*"},
		RateLimit:    rate.Limit(cfg.RateLimit),
		Logger:       logger.NOOPLogger,
	}
	if cfg.AllowOrigins != "" {
		s.AllowOrigins = strings.Split(cfg.AllowOrigins, ",")
	}

	s.Router.HideBanner = true
	s.Router.HTTPErrorHandler = s.handleHTTPError
	s.Router.Validator = NewValidator()
	s.RegisterGlobalMiddlewares()

	s.RegisterHealthRoutes()
	s.RegisterSwaggerRoutes()
	s.RegisterActorRoutes(s.Router.Group("/actor"))
	s.RegisterMovieRoutes(s.Router.Group("/movie"))
	s.RegisterCreditRoutes(s.Router.Group("/credit"))
	return &s
}

func (s *Server) RegisterGlobalMiddlewares() {
	s.Router.Use(middleware.Recover())
	s.Router.Use(middleware.Secure())
	s.Router.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	s.Router.Use(middleware.Gzip())
	s.Router.Use(sentryecho.New(sentryecho.Options{Repanic: true}))
	if s.RateLimit > 0 {
		s.Router.Use(middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(s.RateLimit)))
	}

	// CORS
	if len(s.AllowOrigins) > 0 {
		s.Router.Use(middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins: s.AllowOrigins,
		}))
	}
}

func (s *Server) Start() error {
	return s.Router.Start(s.Addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.Router.Shutdown(ctx)
}

// handleHTTPError maps application errors to appropriate HTTP status codes
func (s *Server) handleHTTPError(err error, c echo.Context) {
	code := http.StatusInternalServerError
	message := "Internal server error"

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		message = fmt.Sprint(he.Message)
	} else {
		switch errs.ErrorCode(err) {
		case errs.EINVALID:
			code = http.StatusBadRequest
			message = errs.ErrorMessage(err)
		case errs.ENOTFOUND:
			code = http.StatusNotFound
			message = errs.ErrorMessage(err)
		case errs.ECONFLICT:
			code = http.StatusConflict
			message = errs.ErrorMessage(err)
		case errs.EUNAUTHORIZED:
			code = http.StatusUnauthorized
			message = errs.ErrorMessage(err)
		case errs.ENOTIMPLEMENTED:
			code = http.StatusNotImplemented
			message = errs.ErrorMessage(err)
		}
	}

	if code >= http.StatusInternalServerError {
		s.Logger.Errorw(err.Error(), "request_id", requestID(c), "path", c.Path())
		sentry.WithContext(c).Error(err)
	}

	// Don't write response if already committed
	if c.Response().Committed {
		return
	}
	if c.Request().Method == http.MethodHead {
		err = c.NoContent(code)
	} else {
		err = writeError(c, code, message, err)
	}
	if err != nil {
		s.Logger.Errorw("write error response", "error", err)
	}
}

func requestID(c echo.Context) string {
	return c.Response().Header().Get(echo.HeaderXRequestID)
}
