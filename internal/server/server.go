package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/orgball2608/meta-graph-sync/internal/domain"
	"github.com/orgball2608/meta-graph-sync/internal/publisher"
	"github.com/orgball2608/meta-graph-sync/internal/syncer"
	"github.com/orgball2608/meta-graph-sync/pkg/config"
	"github.com/orgball2608/meta-graph-sync/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Syncer    syncer.Client
	Publisher publisher.Client
	Logger    logger.Logger
	Config    *config.Config
}

// Server exposes the manual trigger surface: full and per-entity sync
// passes, publish intent submission, and draining the publish queue.
type Server struct {
	httpServer *http.Server
	Syncer     syncer.Client
	Publisher  publisher.Client
	Logger     logger.Logger
}

func New(opts Opts) *Server {
	s := &Server{
		Syncer:    opts.Syncer,
		Publisher: opts.Publisher,
		Logger:    opts.Logger.WithComponent("Server"),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", s.handleHealthz)
	mux.HandleFunc("POST /sync", s.handleSyncAll)
	mux.HandleFunc("POST /sync/{entity}", s.handleSyncEntity)
	mux.HandleFunc("POST /publish/post", s.handleSubmitPost)
	mux.HandleFunc("POST /publish/story", s.handleSubmitStory)
	mux.HandleFunc("POST /publish/comment", s.handleSubmitComment)
	mux.HandleFunc("POST /publish/pending", s.handlePublishPending)

	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", opts.Config.App.Port),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

func (s *Server) Start() error {
	s.Logger.Info("Starting HTTP server", "addr", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleSyncAll(w http.ResponseWriter, r *http.Request) {
	report, err := s.Syncer.SyncAll(r.Context())
	if err != nil {
		s.writeError(w, http.StatusBadGateway, err)
		return
	}
	s.writeJSON(w, http.StatusOK, report)
}

func (s *Server) handleSyncEntity(w http.ResponseWriter, r *http.Request) {
	entity := r.PathValue("entity")

	report, err := s.Syncer.SyncEntity(r.Context(), entity)
	if err != nil {
		if errors.Is(err, syncer.ErrUnknownEntity) {
			s.writeError(w, http.StatusNotFound, err)
			return
		}
		s.writeError(w, http.StatusBadGateway, err)
		return
	}
	s.writeJSON(w, http.StatusOK, report)
}

type postRequest struct {
	UserID   int64  `json:"user_id"`
	FileURL  string `json:"file_url"`
	Caption  string `json:"caption"`
	Kind     string `json:"kind"`
	Carousel bool   `json:"carousel"`
}

type storyRequest struct {
	UserID  int64  `json:"user_id"`
	FileURL string `json:"file_url"`
	Kind    string `json:"kind"`
}

type commentRequest struct {
	UserID  int64  `json:"user_id"`
	MediaID string `json:"media_id"`
	Text    string `json:"text"`
}

func (s *Server) handleSubmitPost(w http.ResponseWriter, r *http.Request) {
	var req postRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}

	id, err := s.Publisher.SubmitPost(r.Context(), domain.PostPublication{
		UserID:   req.UserID,
		FileURL:  req.FileURL,
		Caption:  req.Caption,
		Kind:     domain.MediaKind(req.Kind),
		Carousel: req.Carousel,
	})
	if err != nil {
		s.writeSubmitError(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, map[string]int64{"id": id})
}

func (s *Server) handleSubmitStory(w http.ResponseWriter, r *http.Request) {
	var req storyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}

	id, err := s.Publisher.SubmitStory(r.Context(), domain.StoryPublication{
		UserID:  req.UserID,
		FileURL: req.FileURL,
		Kind:    domain.MediaKind(req.Kind),
	})
	if err != nil {
		s.writeSubmitError(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, map[string]int64{"id": id})
}

func (s *Server) handleSubmitComment(w http.ResponseWriter, r *http.Request) {
	var req commentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}

	id, err := s.Publisher.SubmitComment(r.Context(), req.UserID, req.MediaID, req.Text)
	if err != nil {
		s.writeSubmitError(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, map[string]int64{"id": id})
}

func (s *Server) writeSubmitError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, publisher.ErrInvalidIntent):
		s.writeError(w, http.StatusBadRequest, err)
	case errors.Is(err, publisher.ErrMediaNotFound):
		s.writeError(w, http.StatusNotFound, err)
	default:
		s.writeError(w, http.StatusInternalServerError, err)
	}
}

func (s *Server) handlePublishPending(w http.ResponseWriter, r *http.Request) {
	report, err := s.Publisher.PublishPending(r.Context())
	if err != nil {
		s.writeError(w, http.StatusBadGateway, err)
		return
	}
	s.writeJSON(w, http.StatusOK, report)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.Logger.Error("Failed to write response", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	s.writeJSON(w, status, map[string]string{"error": err.Error()})
}
