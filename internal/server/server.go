package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/lazypower/loci/internal/association"
	"github.com/lazypower/loci/internal/store"
)

// Options configures a Server. Zero values pick defaults.
type Options struct {
	DB            *store.DB                 // optional, reported by /api/health
	Lookup        association.SynonymLookup // optional, backs /api/thesaurus
	Version       string
	RatePerMinute int // per client IP, 0 disables
	RateBurst     int
	BatchLimit    int // max terms per batch request
	Concurrency   int // parallel generations per batch request
}

// Server is the loci HTTP API server.
type Server struct {
	gen         *association.Generator
	db          *store.DB
	lookup      association.SynonymLookup
	limiter     *RateLimiter
	batchLimit  int
	concurrency int
	router      chi.Router
	version     string
	started     time.Time
}

// New creates a new Server around gen.
func New(gen *association.Generator, opts Options) *Server {
	if opts.BatchLimit <= 0 {
		opts.BatchLimit = 100
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = 8
	}
	s := &Server{
		gen:         gen,
		db:          opts.DB,
		lookup:      opts.Lookup,
		limiter:     NewRateLimiter(opts.RatePerMinute, opts.RateBurst),
		batchLimit:  opts.BatchLimit,
		concurrency: opts.Concurrency,
		version:     opts.Version,
		started:     time.Now(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Close stops background work owned by the server.
func (s *Server) Close() {
	s.limiter.Stop()
}

func (s *Server) routes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(requestID)
	r.Use(requestLogger)
	r.Use(s.limiter.Middleware)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", s.handleHealth)

		r.Get("/associations", s.handleAssociate)
		r.Post("/associations", s.handleAssociateBatch)
		r.Get("/similar", s.handleSimilar)
		r.Get("/thesaurus/{word}", s.handleThesaurus)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	body := map[string]any{
		"status":  "ok",
		"version": s.version,
		"uptime":  time.Since(s.started).Seconds(),
	}
	if s.db != nil {
		body["db"] = s.db.Ping() == nil
		body["db_path"] = s.db.Path
	}
	writeJSON(w, http.StatusOK, body)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
