package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/phr/phr/internal/config"
	"github.com/phr/phr/internal/domain/agenda"
	"github.com/phr/phr/internal/domain/appointment"
	"github.com/phr/phr/internal/domain/catalog"
	"github.com/phr/phr/internal/domain/medication"
	"github.com/phr/phr/internal/domain/prescription"
	"github.com/phr/phr/internal/domain/profile"
	"github.com/phr/phr/internal/domain/symptom"
	"github.com/phr/phr/internal/platform/document"
	"github.com/phr/phr/internal/platform/middleware"
	"github.com/phr/phr/internal/platform/notification"
	"github.com/phr/phr/internal/session"
)

const version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:   "phr-server",
		Short: "Personal Health Record API Server",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(catalogCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the PHR API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func catalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect the embedded reference catalogs",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "categories",
		Short: "List the educational resource categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := catalog.NewService()
			if err != nil {
				return err
			}
			for _, c := range svc.Categories() {
				fmt.Println(c)
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "alternatives <medication>",
		Short: "Show alternatives for a medication",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := catalog.NewService()
			if err != nil {
				return err
			}
			alts := svc.FindAlternatives(args[0])
			if len(alts) == 0 {
				fmt.Printf("no alternatives known for %q\n", args[0])
				return nil
			}
			for _, a := range alts {
				fmt.Printf("%-20s %-24s %s\n", a.Name, a.Classification, a.Dosage)
			}
			return nil
		},
	})

	return cmd
}

func runServer() error {
	// Logger
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if os.Getenv("ENV") == "development" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}

	// Config
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid config")
	}

	// Shared collaborators: the read-only catalogs, the document generator,
	// and the notification stack. Everything per-session lives behind the
	// registry.
	catalogs, err := catalog.NewService()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load catalogs")
	}
	sender := notification.NewLogSender(logger)
	registry := session.NewRegistry(session.Deps{
		Catalogs:  catalogs,
		Documents: document.NewPDFGenerator(cfg.FormFontPath),
		Templates: notification.NewTemplateEngine(),
		Email:     sender,
		SMS:       sender,
		Push:      sender,
	})

	// Echo server
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Global middleware
	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(middleware.SecurityHeaders())
	e.Use(middleware.RequestTimeout(cfg.Timeout()))
	e.Use(middleware.BodyLimit(cfg.BodyLimit, cfg.ImportBodyLimit))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{"Content-Type", middleware.RequestIDHeader, session.HeaderSessionID},
	}))

	// API group
	apiV1 := e.Group("/api/v1")
	apiV1.Use(middleware.RateLimit(middleware.RateLimitConfig{
		RequestsPerSecond: cfg.RateLimitRPS,
		BurstSize:         cfg.RateLimitBurst,
	}))
	apiV1.Use(session.Middleware(registry))

	// Session-scoped domain handlers
	medication.NewHandler(func(c echo.Context) *medication.Service {
		return session.FromContext(c).Medications
	}).RegisterRoutes(apiV1)
	appointment.NewHandler(func(c echo.Context) *appointment.Service {
		return session.FromContext(c).Appointments
	}).RegisterRoutes(apiV1)
	symptom.NewHandler(func(c echo.Context) *symptom.Service {
		return session.FromContext(c).Symptoms
	}).RegisterRoutes(apiV1)
	agenda.NewHandler(func(c echo.Context) *agenda.Service {
		return session.FromContext(c).Agenda
	}).RegisterRoutes(apiV1)
	prescription.NewHandler(func(c echo.Context) *prescription.Service {
		return session.FromContext(c).Prescriptions
	}).RegisterRoutes(apiV1)
	profile.NewHandler(func(c echo.Context) *profile.Service {
		return session.FromContext(c).Profile
	}).RegisterRoutes(apiV1)
	notification.NewHandler(
		func(c echo.Context) *notification.Outbox {
			return session.FromContext(c).Outbox
		},
		func(c echo.Context) *agenda.Service {
			return session.FromContext(c).Agenda
		},
	).RegisterRoutes(apiV1)

	// Shared read-only catalogs
	catalog.NewHandler(catalogs).RegisterRoutes(apiV1)

	// Health check
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"version": version,
		})
	})

	// Graceful shutdown
	go func() {
		addr := ":" + cfg.Port
		logger.Info().Str("addr", addr).Str("env", cfg.Env).Msg("starting server")
		var err error
		if cfg.TLSEnabled {
			err = e.StartTLS(addr, cfg.TLSCertFile, cfg.TLSKeyFile)
		} else {
			err = e.Start(addr)
		}
		if err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Fatal().Err(err).Msg("server shutdown failed")
	}
	logger.Info().Msg("server stopped")
	return nil
}
