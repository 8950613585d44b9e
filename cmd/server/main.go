package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	_ "carehome/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"carehome/internal/cache"
	"carehome/internal/config"
	"carehome/internal/db"
	"carehome/internal/handler"
	"carehome/internal/mailer"
	"carehome/internal/repository"
	"carehome/internal/router"
	"carehome/internal/service"
)

// @title Care Home API
// @version 1.0
// @description Resident, medication and staff account management for a care home.
// @host localhost:8080
// @BasePath /api
// @schemes http
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	setupLogger(cfg)

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("database init")
	}

	if cfg.ResetDB {
		log.Warn().Msg("RESET_DB=true detected, dropping all tables")
		if err := db.Reset(gormDB); err != nil {
			log.Fatal().Err(err).Msg("reset database")
		}
	}
	if err := db.Migrate(gormDB); err != nil {
		log.Fatal().Err(err).Msg("migrate database")
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err := cacheClient.Ping(context.Background()); err != nil {
		log.Warn().Err(err).Str("addr", cfg.RedisAddr).Msg("redis unavailable, continuing without cache")
	}
	defer cacheClient.Close()

	// Initialize repositories
	residentRepo := repository.NewResidentRepository(gormDB)
	medicationRepo := repository.NewMedicationRepository(gormDB)
	userRepo := repository.NewUserRepository(gormDB)
	tokenRepo := repository.NewResetTokenRepository(gormDB)

	// Initialize services
	residentService := service.NewResidentService(residentRepo, cacheClient)
	medicationService := service.NewMedicationService(medicationRepo, residentRepo)
	accountService := service.NewAccountService(userRepo)
	recoveryService := service.NewRecoveryService(accountService, tokenRepo, mailer.New(cfg))

	e := echo.New()
	e.HideBanner = true

	router.Register(e, router.Handlers{
		Residents:   handler.NewResidentHandler(residentService),
		Medications: handler.NewMedicationHandler(medicationService),
		Auth:        handler.NewAuthHandler(accountService),
		Recovery:    handler.NewRecoveryHandler(recoveryService),
	})

	log.Info().Str("url", swaggerURL(cfg.SwaggerHost, cfg.ServerPort)).Msg("swagger documentation available")

	go func() {
		addr := ":" + cfg.ServerPort
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server start")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}
	recoveryService.Wait()
	log.Info().Msg("server stopped")
}

func setupLogger(cfg *config.Config) {
	zerolog.TimeFieldFormat = time.RFC3339
	if cfg.IsProduction() {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		return
	}
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
}

// swaggerURL accepts a host with or without scheme.
func swaggerURL(host, port string) string {
	if host == "" {
		return "http://localhost:" + port + "/swagger/index.html"
	}
	if !strings.HasPrefix(host, "http://") && !strings.HasPrefix(host, "https://") {
		host = "http://" + host
	}
	return strings.TrimSuffix(host, "/") + "/swagger/index.html"
}
