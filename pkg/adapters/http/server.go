// Package http exposes the boundary contract over HTTP for external
// front-ends: create a playing session, fetch the (moves, tree, events)
// bundle, step playback, and apply manual moves. It is a thin adapter;
// all rules live in the domain and solver packages.
package http

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aretw0/hanoi/internal/config"
	"github.com/aretw0/hanoi/internal/logging"
	"github.com/aretw0/hanoi/internal/presentation/graph"
	"github.com/aretw0/hanoi/pkg/domain"
	"github.com/aretw0/hanoi/pkg/observability"
	"github.com/aretw0/hanoi/pkg/ports"
	"github.com/aretw0/hanoi/pkg/solver"
)

// Server handles the REST surface backed by a SessionStore.
type Server struct {
	store   ports.SessionStore
	logger  *slog.Logger
	metrics *observability.Metrics
	reg     *prometheus.Registry
}

// Option configures the server.
type Option func(*Server)

// WithLogger sets a structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithMetrics registers engine collectors on reg and mounts /metrics.
func WithMetrics(reg *prometheus.Registry) Option {
	return func(s *Server) {
		s.reg = reg
		s.metrics = observability.NewMetrics(reg)
	}
}

// NewHandler creates the HTTP handler for the engine boundary.
func NewHandler(store ports.SessionStore, opts ...Option) http.Handler {
	s := &Server{
		store:  store,
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	if s.reg != nil {
		r.Handle("/metrics", promhttp.HandlerFor(s.reg, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/sessions", s.createSession)
		r.Get("/sessions", s.listSessions)
		r.Get("/sessions/{id}", s.getSession)
		r.Delete("/sessions/{id}", s.deleteSession)
		r.Post("/sessions/{id}/step", s.stepSession)
		r.Post("/sessions/{id}/seek", s.seekSession)
		r.Post("/sessions/{id}/moves", s.applyMove)

		r.Get("/traces/{disks}", s.getTrace)
		r.Get("/traces/{disks}/mermaid", s.getMermaid)
	})

	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

type createSessionRequest struct {
	Mode   domain.SessionMode `json:"mode"`
	Config map[string]any     `json:"config"`
}

type sessionResponse struct {
	ID      string          `json:"id"`
	Session *domain.Session `json:"session"`
}

func (s *Server) createSession(w http.ResponseWriter, r *http.Request) {
	var req createSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	if req.Mode == "" {
		req.Mode = domain.ModeAuto
	}

	cfg, err := config.FromMap(req.Config)
	if err != nil {
		s.writeError(w, http.StatusUnprocessableEntity, err)
		return
	}
	from, aux, to, err := cfg.Pegs()
	if err != nil {
		s.writeError(w, http.StatusUnprocessableEntity, err)
		return
	}

	sess, err := domain.NewSession(cfg.DiskCount, from, aux, to, req.Mode)
	if err != nil {
		s.writeError(w, http.StatusUnprocessableEntity, err)
		return
	}

	id := newSessionID()
	if err := s.store.Save(r.Context(), id, sess); err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	if s.metrics != nil {
		s.metrics.SessionsTotal.WithLabelValues(string(sess.Mode)).Inc()
	}

	s.logger.Info("session created", "session_id", id, "disks", sess.Disks, "mode", sess.Mode)
	s.writeJSON(w, http.StatusCreated, sessionResponse{ID: id, Session: sess})
}

func (s *Server) listSessions(w http.ResponseWriter, r *http.Request) {
	ids, err := s.store.List(r.Context())
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"sessions": ids})
}

func (s *Server) getSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	sess, err := s.store.Load(r.Context(), id)
	if err != nil {
		s.writeStoreError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, sessionResponse{ID: id, Session: sess})
}

func (s *Server) deleteSession(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeStoreError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type stepResponse struct {
	ID         string             `json:"id"`
	Event      *domain.TraceEvent `json:"event,omitempty"`
	Board      domain.State       `json:"board"`
	Cursor     int                `json:"cursor"`
	Done       bool               `json:"done"`
	ActiveNode int                `json:"active_node"`
}

// stepSession applies the next trace event to an auto session. The trace
// is recomputed from the session parameters; it is pure and cheap.
func (s *Server) stepSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	sess, err := s.store.Load(r.Context(), id)
	if err != nil {
		s.writeStoreError(w, err)
		return
	}
	if sess.Mode != domain.ModeAuto {
		s.writeError(w, http.StatusConflict, errors.New("manual sessions cannot be stepped"))
		return
	}

	trace, err := solver.Trace(sess.Disks, sess.From, sess.Aux, sess.To)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}

	resp := stepResponse{ID: id}
	if sess.Cursor < len(trace.Events) {
		ev := trace.Events[sess.Cursor]
		if ev.Kind == domain.EventMove && ev.Move != nil {
			next, err := sess.Board.Apply(*ev.Move)
			if err != nil {
				s.writeError(w, http.StatusInternalServerError, err)
				return
			}
			sess.Board = next
		}
		sess.Cursor++
		resp.Event = &ev

		if err := s.store.Save(r.Context(), id, sess); err != nil {
			s.writeError(w, http.StatusInternalServerError, err)
			return
		}
		if s.metrics != nil && ev.Kind == domain.EventMove {
			s.metrics.MovesTotal.Inc()
		}
	}

	resp.Board = sess.Board
	resp.Cursor = sess.Cursor
	resp.Done = sess.Cursor >= len(trace.Events)
	resp.ActiveNode = trace.ActiveNodeAt(sess.Cursor - 1)
	s.writeJSON(w, http.StatusOK, resp)
}

type seekRequest struct {
	EventIndex int `json:"event_index"`
}

// seekSession repositions playback by replaying the move prefix.
func (s *Server) seekSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var req seekRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	sess, err := s.store.Load(r.Context(), id)
	if err != nil {
		s.writeStoreError(w, err)
		return
	}
	if sess.Mode != domain.ModeAuto {
		s.writeError(w, http.StatusConflict, errors.New("manual sessions cannot seek"))
		return
	}

	trace, err := solver.Trace(sess.Disks, sess.From, sess.Aux, sess.To)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	if req.EventIndex < 0 || req.EventIndex > len(trace.Events) {
		s.writeError(w, http.StatusUnprocessableEntity, domain.ErrInvalidConfiguration)
		return
	}

	board, err := domain.InitialState(sess.Disks, sess.From)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	for _, ev := range trace.Events[:req.EventIndex] {
		if ev.Kind != domain.EventMove || ev.Move == nil {
			continue
		}
		if board, err = board.Apply(*ev.Move); err != nil {
			s.writeError(w, http.StatusInternalServerError, err)
			return
		}
	}
	sess.Board = board
	sess.Cursor = req.EventIndex

	if err := s.store.Save(r.Context(), id, sess); err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	s.writeJSON(w, http.StatusOK, stepResponse{
		ID:         id,
		Board:      sess.Board,
		Cursor:     sess.Cursor,
		Done:       sess.Cursor >= len(trace.Events),
		ActiveNode: trace.ActiveNodeAt(sess.Cursor - 1),
	})
}

// applyMove is the manual-move path: the front-end drives the board
// directly and the domain rules are the only mutation gate.
func (s *Server) applyMove(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var move domain.Move
	if err := json.NewDecoder(r.Body).Decode(&move); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	sess, err := s.store.Load(r.Context(), id)
	if err != nil {
		s.writeStoreError(w, err)
		return
	}
	if sess.Mode != domain.ModeManual {
		s.writeError(w, http.StatusConflict, errors.New("auto sessions do not accept manual moves"))
		return
	}

	next, err := sess.Board.Apply(move)
	if err != nil {
		// Board left unchanged; the last-known-good state stands.
		s.writeError(w, http.StatusUnprocessableEntity, err)
		return
	}
	sess.Board = next
	sess.MoveCount++

	if err := s.store.Save(r.Context(), id, sess); err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	if s.metrics != nil {
		s.metrics.MovesTotal.Inc()
	}
	s.writeJSON(w, http.StatusOK, map[string]any{
		"id":         id,
		"board":      sess.Board,
		"move_count": sess.MoveCount,
		"solved":     sess.Board.IsSolved(sess.To),
	})
}

type traceResponse struct {
	Disks     int                 `json:"disks"`
	Moves     []domain.Move       `json:"moves"`
	Nodes     []domain.CallNode   `json:"nodes"`
	Events    []domain.TraceEvent `json:"events"`
	Positions []graph.Position    `json:"positions"`
	Edges     []graph.Edge        `json:"edges"`
}

func (s *Server) getTrace(w http.ResponseWriter, r *http.Request) {
	trace, ok := s.traceFromURL(w, r)
	if !ok {
		return
	}
	if s.metrics != nil {
		s.metrics.SolvesTotal.WithLabelValues(strconv.Itoa(trace.Disks)).Inc()
	}
	s.writeJSON(w, http.StatusOK, traceResponse{
		Disks:     trace.Disks,
		Moves:     trace.Moves(),
		Nodes:     trace.Nodes,
		Events:    trace.Events,
		Positions: graph.Layout(trace),
		Edges:     graph.Edges(trace),
	})
}

func (s *Server) getMermaid(w http.ResponseWriter, r *http.Request) {
	trace, ok := s.traceFromURL(w, r)
	if !ok {
		return
	}

	var overlay *graph.Overlay
	if at := r.URL.Query().Get("at"); at != "" {
		idx, err := strconv.Atoi(at)
		if err != nil {
			s.writeError(w, http.StatusBadRequest, err)
			return
		}
		overlay = &graph.Overlay{EventIndex: idx}
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(graph.GenerateMermaid(trace, overlay)))
}

func (s *Server) traceFromURL(w http.ResponseWriter, r *http.Request) (*domain.Trace, bool) {
	disks, err := strconv.Atoi(chi.URLParam(r, "disks"))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return nil, false
	}
	trace, err := solver.Trace(disks, domain.PegA, domain.PegB, domain.PegC)
	if err != nil {
		s.writeError(w, http.StatusUnprocessableEntity, err)
		return nil, false
	}
	return trace, true
}

func (s *Server) writeStoreError(w http.ResponseWriter, err error) {
	if errors.Is(err, domain.ErrSessionNotFound) {
		s.writeError(w, http.StatusNotFound, err)
		return
	}
	s.writeError(w, http.StatusInternalServerError, err)
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "error", err)
	}
	s.writeJSON(w, status, map[string]string{"error": err.Error()})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("failed to encode response", "error", err)
	}
}

func newSessionID() string {
	buf := make([]byte, 8)
	_, _ = rand.Read(buf)
	return hex.EncodeToString(buf)
}
