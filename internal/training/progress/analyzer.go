package progress

//go:generate mockgen -source=$GOFILE -destination=analyzer_mocks_test.go -package=progress_test

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/olivermegias/trainingtop/internal/telemetry/tracing"
	"github.com/olivermegias/trainingtop/internal/training/catalog"
	"github.com/olivermegias/trainingtop/internal/training/routines"
	"github.com/olivermegias/trainingtop/internal/training/sessions"
	"github.com/olivermegias/trainingtop/pkg"
)

const (
	// DefaultHistoryLimit is the history window per exercise when the
	// caller does not ask for a specific one.
	DefaultHistoryLimit = 10

	// muscleWindowSessions bounds the muscle distribution to the most
	// recent sessions, a recency window, not a date range.
	muscleWindowSessions = 30
	topMuscleGroups      = 6
	neutralSatisfaction  = 3.0
)

type sessionsRepo interface {
	ListUser(ctx context.Context, userID string, limit int) ([]sessions.WorkoutSession, error)
	ListRoutine(ctx context.Context, userID, routineID string) ([]sessions.WorkoutSession, error)
}

type routinesRepo interface {
	Get(ctx context.Context, id string) (*routines.Routine, error)
}

type exerciseCatalog interface {
	Resolve(ctx context.Context, key string) (*catalog.Exercise, error)
}

// Analyzer derives progress views from the raw workout session stream.
// It is read-only and safe for concurrent use, every call works on the
// snapshot of sessions it fetched at call start.
type Analyzer struct {
	sessions sessionsRepo
	routines routinesRepo
	catalog  exerciseCatalog
	now      func() time.Time
}

type AnalyzerOption func(*Analyzer)

// WithNowFunc overrides the clock, used by the period stats window.
func WithNowFunc(now func() time.Time) AnalyzerOption {
	return func(a *Analyzer) {
		a.now = now
	}
}

func NewAnalyzer(
	sessionsRepo sessionsRepo,
	routinesRepo routinesRepo,
	exerciseCatalog exerciseCatalog,
	opts ...AnalyzerOption,
) *Analyzer {
	a := &Analyzer{
		sessions: sessionsRepo,
		routines: routinesRepo,
		catalog:  exerciseCatalog,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// catalogMemo caches catalog lookups within a single aggregation run so
// the same exercise key never causes more than one round trip per call.
type catalogMemo struct {
	catalog exerciseCatalog
	seen    map[string]*catalog.Exercise
}

func newCatalogMemo(c exerciseCatalog) *catalogMemo {
	return &catalogMemo{
		catalog: c,
		seen:    make(map[string]*catalog.Exercise),
	}
}

// resolve returns nil for exercises the catalog does not know, the
// contribution of those is simply omitted from metadata-bearing output.
func (m *catalogMemo) resolve(ctx context.Context, key string) *catalog.Exercise {
	if exercise, ok := m.seen[key]; ok {
		return exercise
	}

	exercise, err := m.catalog.Resolve(ctx, key)
	if err != nil {
		if !errors.Is(err, catalog.ErrExerciseNotFound) {
			log.Errorf("resolve exercise %s: %s", key, err)
		}
		exercise = nil
	}
	m.seen[key] = exercise
	return exercise
}

// ExercisesProgress builds the per-exercise strength trend for the user:
// a time series of the last historyLimit points per exercise, plus a
// percent change and trend over that same returned window. Exercises
// with fewer than 2 points, or unknown to the catalog, are left out.
func (a *Analyzer) ExercisesProgress(ctx context.Context, userID string, historyLimit int) (_ []ExerciseProgress, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.exercisesProgress")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID))

	if historyLimit <= 0 {
		historyLimit = DefaultHistoryLimit
	}

	sessionsList, err := a.sessions.ListUser(ctx, userID, 0)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}

	routineNames := make(map[string]string)
	routineName := func(routineID string) string {
		if routineID == "" {
			return ""
		}
		if name, ok := routineNames[routineID]; ok {
			return name
		}
		name := ""
		routine, err := a.routines.Get(ctx, routineID)
		if err != nil {
			if !errors.Is(err, routines.ErrRoutineNotFound) {
				log.Errorf("get routine %s: %s", routineID, err)
			}
		} else {
			name = routine.Name
		}
		routineNames[routineID] = name
		return name
	}

	pointsPerExercise := make(map[string][]HistoryPoint)
	for _, session := range sessionsList {
		for _, performance := range session.Exercises {
			point, ok := historyPoint(session, performance)
			if !ok {
				continue
			}
			point.RoutineName = routineName(session.RoutineID)
			pointsPerExercise[performance.ExerciseKey] = append(pointsPerExercise[performance.ExerciseKey], point)
		}
	}

	memo := newCatalogMemo(a.catalog)
	result := make([]ExerciseProgress, 0, len(pointsPerExercise))
	for exerciseKey, points := range pointsPerExercise {
		// trend needs at least two points to mean anything
		if len(points) < 2 {
			continue
		}

		exercise := memo.resolve(ctx, exerciseKey)
		if exercise == nil {
			// no metadata, nothing to display
			continue
		}

		sort.Slice(points, func(i, j int) bool {
			return points[i].Date.Before(points[j].Date)
		})
		if len(points) > historyLimit {
			points = points[len(points)-historyLimit:]
		}
		if len(points) < 2 {
			continue
		}

		first, last := points[0], points[len(points)-1]
		result = append(result, ExerciseProgress{
			ExerciseKey:    exerciseKey,
			Name:           exercise.Name,
			Category:       exercise.Category,
			PrimaryMuscles: exercise.PrimaryMuscles,
			History:        points,
			PercentChange:  percentChange(first.MaxWeight, last.MaxWeight),
			Trend:          classifyTrend(first.MaxWeight, last.MaxWeight),
		})
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].PercentChange != result[j].PercentChange {
			return result[i].PercentChange > result[j].PercentChange
		}
		return result[i].ExerciseKey < result[j].ExerciseKey
	})

	span.SetAttributes(attribute.Int("exercises", len(result)))

	return result, nil
}

// historyPoint folds one exercise performance into a history point.
// Returns false when the performance has no completed set with weight,
// such performances produce no point at all.
func historyPoint(session sessions.WorkoutSession, performance sessions.ExercisePerformance) (HistoryPoint, bool) {
	var (
		weightedSets int
		weightSum    float64
		maxWeight    float64

		completedSets int
		repsSum       int
	)
	for _, set := range performance.Sets {
		if !set.Countable() {
			continue
		}
		completedSets++
		repsSum += set.Reps
		if set.Weight > 0 {
			weightedSets++
			weightSum += set.Weight
			if set.Weight > maxWeight {
				maxWeight = set.Weight
			}
		}
	}

	if weightedSets == 0 {
		return HistoryPoint{}, false
	}

	// note the two denominators: weights average over weighted sets only,
	// reps average over all completed sets
	return HistoryPoint{
		Date:      session.StartedAt,
		MaxWeight: maxWeight,
		AvgWeight: pkg.RoundToDecimal(weightSum/float64(weightedSets), 1),
		AvgReps:   pkg.RoundToDecimal(float64(repsSum)/float64(completedSets), 1),
		Rating:    performance.Rating,
	}, true
}

func percentChange(firstMax, lastMax float64) float64 {
	if firstMax == 0 {
		return 0
	}
	return pkg.RoundToDecimal((lastMax-firstMax)/firstMax*100, 1)
}

func classifyTrend(firstMax, lastMax float64) Trend {
	switch {
	case lastMax > firstMax:
		return TrendImproving
	case lastMax < firstMax:
		return TrendDeclining
	default:
		return TrendStable
	}
}
