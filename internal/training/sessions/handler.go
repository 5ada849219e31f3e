package sessions

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/olivermegias/trainingtop/internal/telemetry/metrics"
	"github.com/olivermegias/trainingtop/internal/telemetry/tracing"
	"github.com/olivermegias/trainingtop/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=sessions_mocks_test.go -package=sessions_test

type sessionsRepo interface {
	Add(ctx context.Context, session WorkoutSession) (*WorkoutSession, error)
	Get(ctx context.Context, id string) (*WorkoutSession, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, params ListParams) (_ []WorkoutSession, total int, err error)
}

type sessionNormalizer interface {
	Normalize(ctx context.Context, session WorkoutSession) WorkoutSession
}

type DeleteSessionResponse struct {
	DeletedID string `json:"deletedId"`
}

type Handler struct {
	repo       sessionsRepo
	normalizer sessionNormalizer
	metrics    *metrics.Manager
}

func NewHandler(repo sessionsRepo, normalizer sessionNormalizer, metrics *metrics.Manager) *Handler {
	return &Handler{
		repo:       repo,
		normalizer: normalizer,
		metrics:    metrics,
	}
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sessions.add")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var session WorkoutSession
	if err := json.NewDecoder(r.Body).Decode(&session); err != nil {
		log.Tracef("new workout session, unmarshal json params: %s", err)
		http.Error(w, "add workout session failed", http.StatusBadRequest)
		return
	}

	if session.UserID == "" {
		http.Error(w, "error, user id empty", http.StatusBadRequest)
		return
	}
	if session.StartedAt.IsZero() {
		session.StartedAt = time.Now()
	}

	session = handler.normalizer.Normalize(ctx, session)

	addedSession, err := handler.repo.Add(ctx, session)
	if err != nil {
		if errors.Is(err, ErrSessionAlreadyExists) {
			http.Error(w, "error, session already exists", http.StatusConflict)
			return
		}
		log.Errorf("failed to add workout session for user %s: %s", session.UserID, err)
		http.Error(w, "error, failed to add workout session", http.StatusInternalServerError)
		return
	}

	handler.metrics.CounterSessionsAdded.Inc()

	sessionJson, err := json.Marshal(AddResponse{Session: *addedSession})
	if err != nil {
		log.Errorf("marshal added session: %s", err)
		http.Error(w, "unexpected error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, sessionJson, http.StatusCreated)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sessions.get")
	defer span.End()

	vars := mux.Vars(r)
	id := vars["id"]
	if id == "" {
		http.Error(w, "error, session id empty", http.StatusBadRequest)
		return
	}

	session, err := handler.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			http.Error(w, "session not found", http.StatusNotFound)
			return
		}
		log.Errorf("get workout session %s: %s", id, err)
		http.Error(w, "failed to get session", http.StatusInternalServerError)
		return
	}

	sessionJson, err := json.Marshal(session)
	if err != nil {
		log.Errorf("marshal session %s: %s", id, err)
		http.Error(w, "unexpected error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, sessionJson)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sessions.delete")
	defer span.End()

	vars := mux.Vars(r)
	id := vars["id"]
	if id == "" {
		http.Error(w, "error, session id empty", http.StatusBadRequest)
		return
	}

	if err := handler.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			http.Error(w, "session not found", http.StatusNotFound)
			return
		}
		log.Errorf("delete workout session %s: %s", id, err)
		http.Error(w, "failed to delete session", http.StatusInternalServerError)
		return
	}

	deletedJson, err := json.Marshal(DeleteSessionResponse{DeletedID: id})
	if err != nil {
		log.Errorf("marshal delete session response: %s", err)
		http.Error(w, "unexpected error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, deletedJson)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sessions.list")
	defer span.End()

	vars := mux.Vars(r)
	userID := vars["userId"]
	if userID == "" {
		http.Error(w, "error, user id empty", http.StatusBadRequest)
		return
	}

	page, err := strconv.Atoi(vars["page"])
	if err != nil {
		http.Error(w, "error, invalid page", http.StatusBadRequest)
		return
	}
	size, err := strconv.Atoi(vars["size"])
	if err != nil {
		http.Error(w, "error, invalid size", http.StatusBadRequest)
		return
	}
	if page < 1 || size < 1 {
		http.Error(w, "error, page and size must be positive", http.StatusBadRequest)
		return
	}

	sessionsList, total, err := handler.repo.List(ctx, ListParams{
		UserID: userID,
		Page:   page,
		Size:   size,
	})
	if err != nil {
		log.Errorf("list workout sessions for user %s: %s", userID, err)
		http.Error(w, "failed to list sessions", http.StatusInternalServerError)
		return
	}

	if sessionsList == nil {
		sessionsList = []WorkoutSession{}
	}

	listJson, err := json.Marshal(ListResponse{
		Sessions: sessionsList,
		Total:    total,
	})
	if err != nil {
		log.Errorf("marshal sessions list: %s", err)
		http.Error(w, "unexpected error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, listJson)
}
