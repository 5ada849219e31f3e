package routines

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/olivermegias/trainingtop/internal/telemetry/tracing"
	"github.com/olivermegias/trainingtop/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=routines_mocks_test.go -package=routines_test

type routinesRepo interface {
	Add(ctx context.Context, routine Routine) (*Routine, error)
	Get(ctx context.Context, id string) (*Routine, error)
	ListUser(ctx context.Context, userID string) ([]Routine, error)
	Delete(ctx context.Context, id string) error
}

type DeleteRoutineResponse struct {
	DeletedID string `json:"deletedId"`
}

type ListResponse struct {
	Routines []Routine `json:"routines"`
}

type Handler struct {
	repo routinesRepo
}

func NewHandler(repo routinesRepo) *Handler {
	return &Handler{
		repo: repo,
	}
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.routines.add")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var routine Routine
	if err := json.NewDecoder(r.Body).Decode(&routine); err != nil {
		log.Tracef("new routine, unmarshal json params: %s", err)
		http.Error(w, "add routine failed", http.StatusBadRequest)
		return
	}

	if routine.UserID == "" || routine.Name == "" {
		http.Error(w, "error, user id or routine name empty", http.StatusBadRequest)
		return
	}
	if routine.CreatedAt.IsZero() {
		routine.CreatedAt = time.Now()
	}

	addedRoutine, err := handler.repo.Add(ctx, routine)
	if err != nil {
		if errors.Is(err, ErrRoutineAlreadyExists) {
			http.Error(w, "error, routine already exists", http.StatusConflict)
			return
		}
		log.Errorf("failed to add routine [%s] for user %s: %s", routine.Name, routine.UserID, err)
		http.Error(w, "error, failed to add routine", http.StatusInternalServerError)
		return
	}

	routineJson, err := json.Marshal(addedRoutine)
	if err != nil {
		log.Errorf("marshal added routine: %s", err)
		http.Error(w, "unexpected error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, routineJson, http.StatusCreated)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.routines.get")
	defer span.End()

	id := mux.Vars(r)["id"]
	if id == "" {
		http.Error(w, "error, routine id empty", http.StatusBadRequest)
		return
	}

	routine, err := handler.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrRoutineNotFound) {
			http.Error(w, "routine not found", http.StatusNotFound)
			return
		}
		log.Errorf("get routine %s: %s", id, err)
		http.Error(w, "failed to get routine", http.StatusInternalServerError)
		return
	}

	routineJson, err := json.Marshal(routine)
	if err != nil {
		log.Errorf("marshal routine %s: %s", id, err)
		http.Error(w, "unexpected error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, routineJson)
}

func (handler *Handler) HandleListUser(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.routines.listUser")
	defer span.End()

	userID := mux.Vars(r)["userId"]
	if userID == "" {
		http.Error(w, "error, user id empty", http.StatusBadRequest)
		return
	}

	routinesList, err := handler.repo.ListUser(ctx, userID)
	if err != nil {
		log.Errorf("list routines for user %s: %s", userID, err)
		http.Error(w, "failed to list routines", http.StatusInternalServerError)
		return
	}

	if routinesList == nil {
		routinesList = []Routine{}
	}

	listJson, err := json.Marshal(ListResponse{Routines: routinesList})
	if err != nil {
		log.Errorf("marshal routines list: %s", err)
		http.Error(w, "unexpected error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, listJson)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.routines.delete")
	defer span.End()

	id := mux.Vars(r)["id"]
	if id == "" {
		http.Error(w, "error, routine id empty", http.StatusBadRequest)
		return
	}

	if err := handler.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrRoutineNotFound) {
			http.Error(w, "routine not found", http.StatusNotFound)
			return
		}
		log.Errorf("delete routine %s: %s", id, err)
		http.Error(w, "failed to delete routine", http.StatusInternalServerError)
		return
	}

	deletedJson, err := json.Marshal(DeleteRoutineResponse{DeletedID: id})
	if err != nil {
		log.Errorf("marshal delete routine response: %s", err)
		http.Error(w, "unexpected error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, deletedJson)
}
