package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	"github.com/lazypower/loci/internal/association"
	"github.com/lazypower/loci/internal/thesaurus"
)

const defaultSimilarN = 5

func (s *Server) handleAssociate(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if !q.Has("term") {
		writeError(w, http.StatusBadRequest, "term required")
		return
	}
	writeJSON(w, http.StatusOK, s.gen.Associate(r.Context(), q.Get("term")))
}

func (s *Server) handleAssociateBatch(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Terms []string `json:"terms"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if len(req.Terms) == 0 {
		writeError(w, http.StatusBadRequest, "terms required")
		return
	}
	if len(req.Terms) > s.batchLimit {
		writeError(w, http.StatusRequestEntityTooLarge,
			fmt.Sprintf("at most %d terms per request", s.batchLimit))
		return
	}

	results := make([]association.Association, len(req.Terms))
	g, ctx := errgroup.WithContext(r.Context())
	g.SetLimit(s.concurrency)
	for i, term := range req.Terms {
		g.Go(func() error {
			results[i] = s.gen.Associate(ctx, term)
			return nil
		})
	}
	g.Wait()

	writeJSON(w, http.StatusOK, map[string]any{
		"associations": results,
	})
}

func (s *Server) handleSimilar(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	word := q.Get("word")
	if word == "" {
		writeError(w, http.StatusBadRequest, "word required")
		return
	}

	pool := q.Get("pool")
	if pool == "" {
		pool = "concrete"
	}
	var candidates []string
	switch pool {
	case "concrete":
		candidates = s.gen.Tables().ConcretePool()
	case "metaphors":
		candidates = s.gen.Tables().MetaphorPatterns()
	default:
		writeError(w, http.StatusBadRequest, `pool must be "concrete" or "metaphors"`)
		return
	}

	n := defaultSimilarN
	if v := q.Get("n"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 1 {
			writeError(w, http.StatusBadRequest, "n must be a positive integer")
			return
		}
		n = parsed
	}

	results := s.gen.Matcher().FindSimilarWords(r.Context(), word, candidates, n)
	if results == nil {
		results = []association.SimilarityResult{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"word":    word,
		"pool":    pool,
		"results": results,
	})
}

func (s *Server) handleThesaurus(w http.ResponseWriter, r *http.Request) {
	if s.lookup == nil {
		writeError(w, http.StatusServiceUnavailable, "thesaurus not configured")
		return
	}
	word := chi.URLParam(r, "word")

	sets, err := s.lookup.Lookup(r.Context(), word)
	if err != nil {
		if errors.Is(err, thesaurus.ErrRateLimited) {
			writeError(w, http.StatusTooManyRequests, err.Error())
			return
		}
		slog.Warn("thesaurus lookup failed", "word", word, "err", err)
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	if len(sets) == 0 {
		writeError(w, http.StatusNotFound, "no synonyms for "+strconv.Quote(word))
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"word":    word,
		"synsets": sets,
	})
}
