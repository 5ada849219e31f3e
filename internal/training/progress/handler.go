package progress

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/olivermegias/trainingtop/internal/telemetry/tracing"
	"github.com/olivermegias/trainingtop/internal/training/routines"
	"github.com/olivermegias/trainingtop/pkg"
)

type ExercisesProgressResponse struct {
	Exercises []ExerciseProgress `json:"exercises"`
}

type MuscleDistributionResponse struct {
	Muscles []MuscleGroupStat `json:"muscles"`
}

type Handler struct {
	analyzer *Analyzer
}

func NewHandler(analyzer *Analyzer) *Handler {
	return &Handler{
		analyzer: analyzer,
	}
}

func (handler *Handler) HandleExercisesProgress(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.exercises")
	defer span.End()

	userID := mux.Vars(r)["userId"]
	if userID == "" {
		http.Error(w, "error, user id empty", http.StatusBadRequest)
		return
	}

	historyLimit := 0
	if rawLimit := r.URL.Query().Get("limit"); rawLimit != "" {
		parsedLimit, err := strconv.Atoi(rawLimit)
		if err != nil || parsedLimit < 1 {
			http.Error(w, "error, invalid limit", http.StatusBadRequest)
			return
		}
		historyLimit = parsedLimit
	}

	exercisesProgress, err := handler.analyzer.ExercisesProgress(ctx, userID, historyLimit)
	if err != nil {
		log.Errorf("exercises progress for user %s: %s", userID, err)
		http.Error(w, "failed to get exercises progress", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(ExercisesProgressResponse{Exercises: exercisesProgress})
	if err != nil {
		log.Errorf("marshal exercises progress: %s", err)
		http.Error(w, "unexpected error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}

func (handler *Handler) HandleRoutineProgress(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.routine")
	defer span.End()

	vars := mux.Vars(r)
	userID := vars["userId"]
	routineID := vars["routineId"]
	if userID == "" || routineID == "" {
		http.Error(w, "error, user id or routine id empty", http.StatusBadRequest)
		return
	}

	routineProgress, err := handler.analyzer.RoutineProgress(ctx, userID, routineID)
	if err != nil {
		if errors.Is(err, routines.ErrRoutineNotFound) {
			http.Error(w, "routine not found", http.StatusNotFound)
			return
		}
		log.Errorf("routine progress for user %s, routine %s: %s", userID, routineID, err)
		http.Error(w, "failed to get routine progress", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(routineProgress)
	if err != nil {
		log.Errorf("marshal routine progress: %s", err)
		http.Error(w, "unexpected error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}

func (handler *Handler) HandleMuscleDistribution(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.muscles")
	defer span.End()

	userID := mux.Vars(r)["userId"]
	if userID == "" {
		http.Error(w, "error, user id empty", http.StatusBadRequest)
		return
	}

	muscleStats, err := handler.analyzer.MuscleGroupDistribution(ctx, userID)
	if err != nil {
		log.Errorf("muscle distribution for user %s: %s", userID, err)
		http.Error(w, "failed to get muscle distribution", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(MuscleDistributionResponse{Muscles: muscleStats})
	if err != nil {
		log.Errorf("marshal muscle distribution: %s", err)
		http.Error(w, "unexpected error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}

func (handler *Handler) HandlePeriodStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.stats")
	defer span.End()

	userID := mux.Vars(r)["userId"]
	if userID == "" {
		http.Error(w, "error, user id empty", http.StatusBadRequest)
		return
	}

	period, err := ParsePeriod(r.URL.Query().Get("period"))
	if err != nil {
		http.Error(w, "error, invalid period", http.StatusBadRequest)
		return
	}

	periodStats, err := handler.analyzer.PeriodStats(ctx, userID, period)
	if err != nil {
		log.Errorf("period stats for user %s: %s", userID, err)
		http.Error(w, "failed to get period stats", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(periodStats)
	if err != nil {
		log.Errorf("marshal period stats: %s", err)
		http.Error(w, "unexpected error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}
