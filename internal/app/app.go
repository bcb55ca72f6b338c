package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/abcall/incident-query-service/config"
	"github.com/abcall/incident-query-service/internal/controller"
	appmiddleware "github.com/abcall/incident-query-service/internal/middleware"
	"github.com/abcall/incident-query-service/internal/infrastructure/tracing"
	"github.com/abcall/incident-query-service/internal/repository"
	"github.com/abcall/incident-query-service/internal/service"
	"github.com/abcall/incident-query-service/pkg/response"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
)

type App struct {
	DB     *mongo.Database
	Config *config.Config
	Server *echo.Echo
}

func (app *App) Start() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = logger

	e := echo.New()
	traceProvider, err := tracing.InitTracing(app.Config.TracingConfig.CollectorHost)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize tracing")
	}

	defer func() {
		if err := traceProvider.Shutdown(context.Background()); err != nil {
			logger.Error().Err(err).Msg("Failed to shutdown tracing")
		}
	}()

	tracer := traceProvider.Tracer("incident-query-service")

	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// span creation and naming
			ctx, span := tracer.Start(c.Request().Context(), fmt.Sprintf("[%s] %s", c.Request().Method, c.Path()))
			defer span.End()

			// add the context to the request
			req := c.Request()
			c.SetRequest(req.WithContext(ctx))

			return next(c)
		}
	})

	// Used empty string so that metrics are not prefixed with the service name making it easier to aggregate across services
	e.Use(echoprometheus.NewMiddleware(""))

	go func() {
		metrics := echo.New()
		metrics.GET("/metrics", echoprometheus.NewHandler())
		if err := metrics.Start(fmt.Sprintf(":%s", app.Config.MetricsPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start metrics server")
		}
	}()

	g := e.Group("/api/v1")

	g.Use(appmiddleware.Logger)

	incidentRepo := repository.CreateNewMongoDBIncidentRepository(app.DB)
	userRepo := repository.CreateNewRestUserRepository(app.Config.UserSvcConfig.BaseURL, app.Config.UserSvcConfig.Token)
	// The client service hosts both the employee and the client resources.
	employeeRepo := repository.CreateNewRestEmployeeRepository(app.Config.ClientSvcConfig.BaseURL, app.Config.ClientSvcConfig.Token)
	clientRepo := repository.CreateNewRestClientRepository(app.Config.ClientSvcConfig.BaseURL, app.Config.ClientSvcConfig.Token)

	svc := service.CreateNewIncidentService(incidentRepo, userRepo, employeeRepo, clientRepo)
	controller.CreateIncidentController(g, svc, appmiddleware.RequiresToken())

	g.GET("/ping", func(c echo.Context) error {
		return response.WriteSuccessResponse(c, "Hello, World!", nil)
	})

	e.Logger.Fatal(e.Start(fmt.Sprintf(":%s", app.Config.ServicePort)))

	app.Server = e
}

func (app *App) StopServer() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return app.Server.Shutdown(ctx)
}
