package handlers

import (
	"io/fs"
	"net/http"
	"time"

	"github.com/andrewpaige1/flashnotes/middleware"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"github.com/rs/cors"
)

// RouterOptions holds the settings the router needs from configuration.
type RouterOptions struct {
	CORSOrigins []string
	// GenerateRateLimit is the number of generate calls allowed per IP per
	// minute. Zero disables the limit.
	GenerateRateLimit int
}

// NewRouter wires the API, health check and static page behind the shared
// middleware chain.
func NewRouter(h *DBHandler, assets fs.FS, opts RouterOptions) http.Handler {
	var generate http.Handler = http.HandlerFunc(h.GenerateFlashcards)
	if opts.GenerateRateLimit > 0 {
		generate = httprate.Limit(opts.GenerateRateLimit, time.Minute,
			httprate.WithKeyFuncs(httprate.KeyByIP),
			httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
				respondWithError(w, r, http.StatusTooManyRequests, "too many requests", nil)
			}),
		)(generate)
	}

	mux := http.NewServeMux()
	mux.Handle("POST /api/generate", generate)
	mux.HandleFunc("GET /api/flashcards", h.GetFlashcards)
	mux.HandleFunc("GET /api/", func(w http.ResponseWriter, r *http.Request) {
		respondWithError(w, r, http.StatusNotFound, "not found", nil)
	})
	mux.HandleFunc("GET /healthz", HealthCheck)
	mux.Handle("GET /", Static(assets))

	var handler http.Handler = mux
	handler = chimiddleware.Recoverer(handler)
	handler = middleware.RequestLogger(handler)
	handler = chimiddleware.RealIP(handler)
	handler = chimiddleware.RequestID(handler)

	return cors.New(cors.Options{
		AllowedOrigins: opts.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "X-Requested-With", "Accept", "Origin"},
		MaxAge:         86400,
	}).Handler(handler)
}
