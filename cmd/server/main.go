package main

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rohits-web03/notedrop/internal/api"
	"github.com/rohits-web03/notedrop/internal/config"
	"github.com/rohits-web03/notedrop/internal/logger"
	"github.com/rohits-web03/notedrop/internal/repositories"
	"github.com/rohits-web03/notedrop/internal/services"
	"golang.org/x/sync/errgroup"
)

// @title Notedrop API
// @version 1.0
// @description REST backend for the Notedrop notes app
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Envs

	var users repositories.UserRepository
	var notes repositories.NoteRepository
	if cfg.DB_URL != "" {
		db := repositories.ConnectDatabase(cfg.DB_URL)
		users = repositories.NewUserRepository(db)
		notes = repositories.NewNoteRepository(db)
	} else {
		logger.Log.Warn("DB_URL not set, using in-memory store")
		users = repositories.NewMemoryUserRepository()
		notes = repositories.NewMemoryNoteRepository()
	}

	authSvc := services.NewAuthService(users, []byte(cfg.JWTSecret), cfg.TokenTTL)
	noteSvc := services.NewNoteService(notes)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Port),
		Handler: api.SetupRouter(authSvc, noteSvc),
		// Timeouts prevent resource exhaustion from slow clients
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Log.Info("Starting Notedrop server on port: ", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Log.Fatal("Server error: ", err)
	}
}
