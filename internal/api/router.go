package api

import (
	"fmt"
	"net/http"

	_ "github.com/rohits-web03/notedrop/docs"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/rohits-web03/notedrop/internal/api/handlers"
	"github.com/rohits-web03/notedrop/internal/api/middleware"
	googleoauth "github.com/rohits-web03/notedrop/internal/api/services"
	"github.com/rohits-web03/notedrop/internal/config"
	"github.com/rohits-web03/notedrop/internal/logger"
	"github.com/rohits-web03/notedrop/internal/services"
	"github.com/rs/cors"
)

func SetupRouter(authSvc *services.AuthService, noteSvc *services.NoteService) http.Handler {
	mainMux := http.NewServeMux()
	c := cors.New(config.Envs.CorsConfig)

	authHandler := handlers.NewAuthHandler(
		authSvc,
		googleoauth.NewGoogleOauthConfig(config.Envs.Google),
		config.Envs.FrontendURL,
	)
	noteHandler := handlers.NewNoteHandler(noteSvc)
	protected := middleware.Auth(authSvc)

	// ---------- PUBLIC ROUTES ----------
	mainMux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "OK")
	})

	mainMux.HandleFunc("/docs/", httpSwagger.WrapHandler)

	authMux := http.NewServeMux()
	authMux.HandleFunc("/signup", authHandler.Signup)
	authMux.HandleFunc("/login", authHandler.Login)
	authMux.HandleFunc("/google/login", authHandler.GoogleLogin)
	authMux.HandleFunc("/google/callback", authHandler.GoogleCallback)

	mainMux.Handle("/api/auth/",
		http.StripPrefix("/api/auth", authMux),
	)

	// ---------- PROTECTED ROUTES ----------
	// Exact patterns take precedence over the public /api/auth/ prefix above.
	mainMux.Handle("/api/auth/profile", protected(http.HandlerFunc(authHandler.Profile)))

	mainMux.Handle("/api/notes", protected(http.HandlerFunc(noteHandler.Collection)))
	mainMux.Handle("/api/notes/search", protected(http.HandlerFunc(noteHandler.Search)))
	mainMux.Handle("/api/notes/{id}", protected(http.HandlerFunc(noteHandler.ByID)))

	logger.Log.Info("Router initialized")
	handler := c.Handler(mainMux)
	handler = middleware.Logger(handler)
	return handler
}
