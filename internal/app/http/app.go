package httpapp

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	appmiddleware "halarcraft/internal/middleware"
	httprouters "halarcraft/internal/transport/http"

	"github.com/arl/statsviz"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
)

type CustomValidator struct {
	validator *validator.Validate
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

type Server struct {
	m          *http.ServeMux
	log        *slog.Logger
	e          *echo.Echo
	routers    *httprouters.Routers
	host       string
	port       string
	signingKey []byte
	uploadsDir string
}

func New(log *slog.Logger, signingKey []byte, sessionKey, host, port, uploadsDir string, routers *httprouters.Routers) *Server {
	e := echo.New()
	e.HideBanner = true

	validate := validator.New()
	e.Validator = &CustomValidator{validator: validate}

	e.Use(session.Middleware(sessions.NewCookieStore([]byte(sessionKey))))

	e.Use(middleware.CORS())
	e.Use(middleware.Recover())
	e.Use(appmiddleware.PrometheusMetrics)

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:      true,
		LogStatus:   true,
		LogRemoteIP: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Info("request",
				slog.String("URI", v.URI),
				slog.Int("status", v.Status),
				slog.String("remote ip", v.RemoteIP),
			)

			return nil
		},
	}))

	mux := http.NewServeMux()
	err := statsviz.Register(mux)
	if err != nil {
		log.Info("Statsviz start with error", slog.Any("error:", err.Error()))
	}

	return &Server{
		m:          mux,
		log:        log,
		e:          e,
		routers:    routers,
		host:       host,
		port:       port,
		signingKey: signingKey,
		uploadsDir: uploadsDir,
	}
}

func (s *Server) MustRun() {
	const op = "http.Server.MustRun"

	s.log.Info(op, slog.String("Start", "server"))

	if err := s.Start(); err != nil {
		panic(err)
	}
}

func (s *Server) Start() error {
	const op = "http.Server.Start"

	if err := s.e.Start(fmt.Sprintf(":%s", s.port)); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("%s server stopped: %w", op, err)
	}

	return nil
}

func (s *Server) Stop() error {
	const op = "http.Server.Stop"

	optCtx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()

	s.log.Info("stopping", op, "http server")

	if err := s.e.Shutdown(optCtx); err != nil {
		return fmt.Errorf("%s could not shutdown server gracefuly: %w", op, err)
	}

	return nil
}

func (s *Server) BuildRouters() {
	s.e.Static("/uploads", s.uploadsDir)
	s.e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := s.e.Group("/api/v1")
	{
		api.GET("/feed/:kind", s.routers.Feed)
		api.POST("/submissions/:kind/draft", s.routers.OpenDraft)
		api.GET("/submissions/draft/:draft_id", s.routers.Draft)
		api.PUT("/submissions/draft/:draft_id", s.routers.UpdateDraft)
		api.POST("/submissions/draft/:draft_id", s.routers.Submit)
		api.DELETE("/submissions/draft/:draft_id", s.routers.ResetDraft)
		api.POST("/submissions/draft/:draft_id/asset", s.routers.AttachAsset)
		api.POST("/submissions/:id/like", s.routers.Like)

		api.GET("/session", s.routers.CurrentSession)
		api.POST("/session", s.routers.OpenSession)
		api.DELETE("/session", s.routers.CloseSession)

		api.GET("/codes", s.routers.CodeProgress)
		api.POST("/codes/:code_id/claim", s.routers.ClaimCode)

		debug := s.e.Group("/debug")
		{
			debug.GET("/statsviz/", echo.WrapHandler(s.m))
			debug.GET("/statsviz/*", echo.WrapHandler(s.m))
		}

		swagger := s.e.Group("/swag")
		{
			swagger.GET("/swagger/*", echoSwagger.WrapHandler)
		}

		moderationGroup := api.Group("/moderation")
		moderationGroup.Use(echojwt.WithConfig(echojwt.Config{
			SigningKey: s.signingKey,
		}))
		{
			moderationGroup.GET("/pending", s.routers.PendingSubmissions)
			moderationGroup.POST("/:id", s.routers.Moderate)
		}
	}
}
