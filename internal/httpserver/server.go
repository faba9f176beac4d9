// internal/httpserver/server.go
//
// HTTP server wiring for the solver.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs,
//     request logging).
//   - Public endpoints: "/", "/health", "/metrics".
//   - Solver endpoints (token-gated when a JWT secret is configured):
//     GET /api/words, GET /api/status, POST /api/next-guess.
//
// Notes:
//   - The engine is immutable, so handlers share it without locking.
//   - A contradiction is a 200 with an "error" field, not a failure status.

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle-solver/internal/config"
	"github.com/robalobadob/wordle-solver/internal/errs"
	"github.com/robalobadob/wordle-solver/internal/metrics"
	"github.com/robalobadob/wordle-solver/internal/priors"
	"github.com/robalobadob/wordle-solver/internal/solver"
)

// Server bundles router, solver engine and the prior weights.
type Server struct {
	r      *chi.Mux
	engine *solver.Engine
	priors priors.Map
	cfg    config.Config
}

// New constructs a Server, installs middleware, and registers routes.
func New(e *solver.Engine, pm priors.Map, cfg config.Config) *Server {
	s := &Server{r: chi.NewRouter(), engine: e, priors: pm, cfg: cfg}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                   // add X-Request-ID
	s.r.Use(chimw.RealIP)                      // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(requestLogger)                     // one zerolog line per request
	s.r.Use(chimw.Recoverer)                   // recover from panics
	s.r.Use(chimw.Timeout(cfg.RequestTimeout)) // bound handler time
	s.r.Use(jsonContentType)                   // default JSON responses
	s.r.Use(cors(cfg.ClientOrigin))            // single-origin CORS

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"wordle-solver","endpoints":["/health","/metrics","GET /api/words","GET /api/status","POST /api/next-guess"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	s.r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	// --- solver ---
	s.r.Route("/api", func(r chi.Router) {
		r.Use(requireToken(cfg.JWTSecret))
		r.Get("/words", s.handleWords)
		r.Get("/status", s.handleStatus)
		r.Post("/next-guess", s.handleNextGuess)
	})

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not_found", "path": r.URL.Path})
	})

	return s
}

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// HTTPServer returns an http.Server for addr serving the router.
func (s *Server) HTTPServer(addr string) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           s.r,
		ReadHeaderTimeout: 5 * time.Second,
	}
}

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// cors enables CORS for a single origin.
func cors(origin string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// requestLogger logs method, path, status and duration for every request.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		defer func() {
			log.Info().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", ww.Status()).
				Dur("duration", time.Since(start)).
				Str("requestId", chimw.GetReqID(r.Context())).
				Msg("http request")
		}()
		next.ServeHTTP(ww, r)
	})
}

// ------------------------------ SOLVER -------------------------------------

type wordsRes struct {
	Allowed   []string `json:"allowed"`
	Answers   []string `json:"answers"`
	HasMatrix bool     `json:"hasMatrix"`
}

func (s *Server) handleWords(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, wordsRes{
		Allowed:   s.engine.Allowed(),
		Answers:   s.engine.Answers(),
		HasMatrix: s.engine.HasMatrix(),
	})
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.engine.Status(s.engine.AllCandidates(), s.sampleSize()))
}

// nextGuessReq is the POST /api/next-guess payload. patterns[i] is the
// feedback code (0..242) observed for guesses[i].
type nextGuessReq struct {
	Guesses  []string `json:"guesses"`
	Patterns []int    `json:"patterns"`
	Method   string   `json:"method"`
}

type contradictionRes struct {
	Error         string   `json:"error"`
	PossibleCount int      `json:"possibleCount"`
	Sample        []string `json:"sample"`
}

// handleNextGuess reduces the candidates with the posted constraints and
// returns the policy's next guess.
func (s *Server) handleNextGuess(w http.ResponseWriter, r *http.Request) {
	var req nextGuessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "bad_json"})
		return
	}
	if len(req.Guesses) != len(req.Patterns) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "guesses and patterns must have the same length"})
		return
	}

	policy := s.engine.Available(s.cfg.Policy())
	if req.Method != "" {
		p, err := solver.ParsePolicy(req.Method)
		if err != nil {
			writeError(w, err)
			return
		}
		policy = p
	}

	cons := make([]solver.Constraint, len(req.Guesses))
	for i, g := range req.Guesses {
		cons[i] = solver.Constraint{Guess: g, Pattern: req.Patterns[i]}
	}

	start := time.Now()
	out, err := s.engine.Suggest(solver.Request{
		Constraints: cons,
		Policy:      policy,
		Priors:      s.priors,
		SampleSize:  s.sampleSize(),
	})
	switch {
	case err != nil:
		metrics.ObserveSuggest(string(policy), metrics.ResultError, 0, time.Since(start))
		log.Warn().Err(err).Str("policy", string(policy)).Msg("next-guess failed")
		writeError(w, err)
	case out.Contradiction:
		metrics.ObserveSuggest(string(policy), metrics.ResultContradiction, 0, time.Since(start))
		writeJSON(w, http.StatusOK, contradictionRes{
			Error:  errs.ErrContradiction.Error() + " for the given guesses and patterns",
			Sample: []string{},
		})
	case !out.Ranked:
		metrics.ObserveSuggest(string(policy), metrics.ResultSingle, out.PossibleCount, time.Since(start))
		writeJSON(w, http.StatusOK, out)
	default:
		metrics.ObserveSuggest(string(policy), metrics.ResultOK, out.PossibleCount, time.Since(start))
		writeJSON(w, http.StatusOK, out)
	}
}

func (s *Server) sampleSize() int {
	if s.cfg.SampleSize > 0 {
		return s.cfg.SampleSize
	}
	return solver.DefaultSampleSize
}

// ------------------------------- small util --------------------------------

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Warn().Err(err).Msg("encode response")
	}
}

// writeError maps a solver error onto an HTTP status.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrInvalidInput),
		errors.Is(err, errs.ErrIndexOutOfRange),
		errors.Is(err, errs.ErrSizeMismatch),
		errors.Is(err, errs.ErrEmptyInput),
		errors.Is(err, errs.ErrUnsupported):
		status = http.StatusBadRequest
	}
	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = "internal_error"
	}
	writeJSON(w, status, map[string]string{"error": msg})
}
