package server

import (
	"log/slog"
	"net/http"
	"time"

	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/princekumarofficial/media-service/docs"
	"github.com/princekumarofficial/media-service/internal/config"
	"github.com/princekumarofficial/media-service/internal/events"
	"github.com/princekumarofficial/media-service/internal/generator"
	"github.com/princekumarofficial/media-service/internal/http/handlers/health"
	"github.com/princekumarofficial/media-service/internal/http/handlers/media"
	rateLimitHandler "github.com/princekumarofficial/media-service/internal/http/handlers/ratelimit"
	wsHandler "github.com/princekumarofficial/media-service/internal/http/handlers/websocket"
	"github.com/princekumarofficial/media-service/internal/http/middleware"
	"github.com/princekumarofficial/media-service/internal/storage"
	"github.com/princekumarofficial/media-service/internal/websocket"
)

const APIPrefix = "/api"

// State is built once at startup and shared by every handler
type State struct {
	Storage   storage.Storage
	StartTime time.Time
	Hub       *websocket.Hub
	Publisher events.Publisher
	Generator *generator.Generator
	RateLimit *middleware.RateLimit
	Logger    *slog.Logger
}

// NewRouter binds every route and wraps the mux with logging and CORS
func NewRouter(cfg *config.Config, state *State) http.Handler {
	router := http.NewServeMux()

	gen := state.Generator
	if gen == nil {
		gen = generator.New()
	}
	mediaHandlers := media.NewMediaHandlers(state.Storage, state.Publisher, gen, cfg.Generate.MaxCount)

	router.HandleFunc("GET "+APIPrefix+"/health", health.Check(state.StartTime))

	router.HandleFunc("GET "+APIPrefix+"/media", mediaHandlers.ListMedia())
	router.Handle("POST "+APIPrefix+"/media", state.RateLimit.Wrap("create", mediaHandlers.CreateMedia()))
	router.HandleFunc("GET "+APIPrefix+"/media/{id}", mediaHandlers.GetMedia())
	router.HandleFunc("PATCH "+APIPrefix+"/media/{id}", mediaHandlers.UpdateMedia())
	router.HandleFunc("DELETE "+APIPrefix+"/media/{id}", mediaHandlers.DeleteMedia())
	router.Handle("GET "+APIPrefix+"/generate-media/{n}", state.RateLimit.Wrap("generate", mediaHandlers.GenerateMedia()))

	router.HandleFunc("GET "+APIPrefix+"/rate-limit", rateLimitHandler.Status(state.RateLimit))

	if state.Hub != nil {
		upgrader := wsHandler.NewUpgrader(cfg.CORS.AllowedOrigins)
		router.HandleFunc("GET "+APIPrefix+"/events", wsHandler.Events(state.Hub, upgrader))
	}

	router.Handle("GET /swagger/", httpSwagger.WrapHandler)

	logger := state.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return middleware.Logging(logger)(middleware.CORS(cfg.CORS.AllowedOrigins)(router))
}

// New returns an http.Server for cfg serving the API
func New(cfg *config.Config, state *State) *http.Server {
	return &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      NewRouter(cfg, state),
		ReadTimeout:  cfg.HTTPServer.ReadTimeout,
		WriteTimeout: cfg.HTTPServer.WriteTimeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}
}
