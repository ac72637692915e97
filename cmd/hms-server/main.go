package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
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

	"github.com/hms/hms/internal/config"
	"github.com/hms/hms/internal/domain/admission"
	"github.com/hms/hms/internal/domain/billing"
	"github.com/hms/hms/internal/domain/patient"
	"github.com/hms/hms/internal/domain/pharmacy"
	"github.com/hms/hms/internal/domain/prescription"
	"github.com/hms/hms/internal/domain/staff"
	"github.com/hms/hms/internal/platform/auth"
	"github.com/hms/hms/internal/platform/middleware"
	"github.com/hms/hms/internal/platform/sandbox"
	"github.com/hms/hms/internal/store"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "hms-server",
		Short: "Hospital Management API Server",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(tokenCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HMS API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func tokenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a bearer token for scripting against a running server",
		RunE: func(cmd *cobra.Command, args []string) error {
			username, _ := cmd.Flags().GetString("username")

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cfg.AuthSecret == "" {
				return fmt.Errorf("AUTH_SECRET must be set to mint tokens")
			}

			issuer := auth.NewTokenIssuer([]byte(cfg.AuthSecret), cfg.AuthTokenTTL)
			token, expiresAt, err := issuer.Issue(username)
			if err != nil {
				return err
			}

			fmt.Println(token)
			fmt.Fprintf(os.Stderr, "expires at %s\n", expiresAt.Format(time.RFC3339))
			return nil
		},
	}
	cmd.Flags().String("username", "admin", "Username to embed in the token")
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
	if cfg.AuthSecret == "" && cfg.IsDev() {
		cfg.AuthSecret = generateSecret()
		logger.Warn().Msg("AUTH_SECRET not set, generated an ephemeral secret for this run")
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid configuration")
	}

	// In-memory store and domain services
	ctx := context.Background()
	st := store.New()

	patientSvc := patient.NewService(patient.NewMemRepo(st.Sequence(store.EntityPatient)))
	staffSvc := staff.NewService(staff.NewMemRepo(st.Sequence(store.EntityStaff)))
	pharmacySvc := pharmacy.NewService(pharmacy.NewMemRepo(st.Sequence(store.EntityPharmacy)))
	admissionSvc := admission.NewService(
		admission.NewMemRepo(st.Sequence(store.EntityAdmission)),
		patientSvc, staffSvc,
	)
	prescriptionSvc := prescription.NewService(
		prescription.NewMemRepo(st.Sequence(store.EntityPrescription)),
	)
	billingSvc := billing.NewService(
		billing.NewMemRepo(st.Sequence(store.EntityBill)),
		patientSvc,
	)

	// Seed pharmacy fixtures and optional demo data.
	seeder := sandbox.NewSeeder(patientSvc, staffSvc, pharmacySvc, logger, 0)
	if err := seeder.SeedPharmacies(ctx); err != nil {
		logger.Fatal().Err(err).Msg("failed to seed pharmacies")
	}
	if cfg.SeedDemoData {
		if err := seeder.SeedDemoData(ctx, sandbox.DefaultSeedConfig()); err != nil {
			logger.Fatal().Err(err).Msg("failed to seed demo data")
		}
	}

	// Echo server
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Global middleware
	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(middleware.SecurityHeaders())
	e.Use(middleware.RequestTimeout(30 * time.Second))
	e.Use(middleware.BodyLimit("64K"))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{"Authorization", "Content-Type", "X-Request-ID"},
	}))

	// Auth
	issuer := auth.NewTokenIssuer([]byte(cfg.AuthSecret), cfg.AuthTokenTTL)
	if cfg.IsDev() && os.Getenv("AUTH_DISABLED") == "true" {
		e.Use(auth.DevAuthMiddleware())
	} else {
		e.Use(auth.Middleware(issuer, auth.AuthSkipper))
	}

	authHandler := auth.NewHandler(issuer, auth.Credentials{
		Username: cfg.DemoUsername,
		Password: cfg.DemoPassword,
	})
	authHandler.RegisterRoutes(e)

	// API group
	api := e.Group("/api/hms")

	rateLimitCfg := middleware.RateLimitConfig{
		RequestsPerSecond: cfg.RateLimitRPS,
		BurstSize:         cfg.RateLimitBurst,
	}
	if rateLimitCfg.RequestsPerSecond <= 0 {
		rateLimitCfg = middleware.DefaultRateLimitConfig()
	}
	api.Use(middleware.RateLimit(rateLimitCfg))

	patient.NewHandler(patientSvc).RegisterRoutes(api)
	staff.NewHandler(staffSvc).RegisterRoutes(api)
	pharmacy.NewHandler(pharmacySvc).RegisterRoutes(api)
	admission.NewHandler(admissionSvc).RegisterRoutes(api)
	prescription.NewHandler(prescriptionSvc).RegisterRoutes(api)
	billing.NewHandler(billingSvc).RegisterRoutes(api)

	// Health check
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"version": "0.1.0",
		})
	})

	// Graceful shutdown
	go func() {
		addr := ":" + cfg.Port
		logger.Info().Str("addr", addr).Msg("starting server")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Fatal().Err(err).Msg("server shutdown failed")
	}
	logger.Info().Msg("server stopped")
	return nil
}

func generateSecret() string {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		panic(err)
	}
	return hex.EncodeToString(buf)
}
