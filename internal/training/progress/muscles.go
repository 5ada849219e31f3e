package progress

import (
	"context"
	"fmt"
	"sort"

	"go.opentelemetry.io/otel/attribute"

	"github.com/olivermegias/trainingtop/internal/telemetry/tracing"
	"github.com/olivermegias/trainingtop/pkg"
)

type muscleBucket struct {
	muscle string

	exercises       int
	completedSets   int
	reps            int
	maxWeight       float64
	satisfactionSum int
	ratedExercises  int
}

// MuscleGroupDistribution accumulates workload per primary muscle group
// over the user's most recent sessions and returns the most exercised
// groups. Exercises the catalog cannot resolve contribute nothing.
func (a *Analyzer) MuscleGroupDistribution(ctx context.Context, userID string) (_ []MuscleGroupStat, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.muscleGroupDistribution")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID))

	sessionsList, err := a.sessions.ListUser(ctx, userID, muscleWindowSessions)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}

	memo := newCatalogMemo(a.catalog)
	buckets := make(map[string]*muscleBucket)

	for _, session := range sessionsList {
		for _, performance := range session.Exercises {
			exercise := memo.resolve(ctx, performance.ExerciseKey)
			if exercise == nil {
				continue
			}

			var (
				completedSets int
				reps          int
				maxWeight     float64
			)
			for _, set := range performance.Sets {
				if !set.Countable() {
					continue
				}
				completedSets++
				reps += set.Reps
				if set.Weight > maxWeight {
					maxWeight = set.Weight
				}
			}

			for _, muscle := range exercise.PrimaryMuscles {
				bucket, ok := buckets[muscle]
				if !ok {
					bucket = &muscleBucket{muscle: muscle}
					buckets[muscle] = bucket
				}

				bucket.exercises++
				bucket.completedSets += completedSets
				bucket.reps += reps
				if maxWeight > bucket.maxWeight {
					bucket.maxWeight = maxWeight
				}
				if performance.Rating != nil {
					bucket.satisfactionSum += performance.Rating.Satisfaction
					bucket.ratedExercises++
				}
			}
		}
	}

	stats := make([]MuscleGroupStat, 0, len(buckets))
	for _, bucket := range buckets {
		avgSatisfaction := neutralSatisfaction
		if bucket.ratedExercises > 0 {
			avgSatisfaction = pkg.RoundToDecimal(float64(bucket.satisfactionSum)/float64(bucket.ratedExercises), 1)
		}
		stats = append(stats, MuscleGroupStat{
			Muscle:          bucket.muscle,
			Exercises:       bucket.exercises,
			CompletedSets:   bucket.completedSets,
			Reps:            bucket.reps,
			MaxWeight:       bucket.maxWeight,
			AvgSatisfaction: avgSatisfaction,
		})
	}

	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Exercises != stats[j].Exercises {
			return stats[i].Exercises > stats[j].Exercises
		}
		return stats[i].Muscle < stats[j].Muscle
	})
	if len(stats) > topMuscleGroups {
		stats = stats[:topMuscleGroups]
	}

	span.SetAttributes(attribute.Int("muscle.groups", len(stats)))

	return stats, nil
}
