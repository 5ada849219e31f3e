package progress

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/olivermegias/trainingtop/internal/telemetry/tracing"
	"github.com/olivermegias/trainingtop/pkg"
)

type routineDayBucket struct {
	dayIndex int
	dayName  string

	sessions        int
	durationSum     int
	satisfactionSum int
	effortSum       int
	difficultySum   int
	weightSum       float64
	dates           []time.Time
}

// RoutineProgress builds the per-day performance view for one routine.
// An unknown routine id is an error (routines.ErrRoutineNotFound), a
// routine with no sessions yet is not: it yields a result with null
// days and timeline.
func (a *Analyzer) RoutineProgress(ctx context.Context, userID, routineID string) (_ *RoutineProgress, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.routineProgress")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("user.id", userID),
		attribute.String("routine.id", routineID),
	)

	routine, err := a.routines.Get(ctx, routineID)
	if err != nil {
		return nil, fmt.Errorf("get routine: %w", err)
	}

	sessionsList, err := a.sessions.ListRoutine(ctx, userID, routineID)
	if err != nil {
		return nil, fmt.Errorf("list routine sessions: %w", err)
	}

	if len(sessionsList) == 0 {
		return &RoutineProgress{
			RoutineID:   routine.ID,
			RoutineName: routine.Name,
		}, nil
	}

	// fold oldest to newest so dates and timeline come out chronological
	sort.Slice(sessionsList, func(i, j int) bool {
		return sessionsList[i].StartedAt.Before(sessionsList[j].StartedAt)
	})

	buckets := make(map[int]*routineDayBucket)
	for dayIndex, day := range routine.Days {
		buckets[dayIndex] = &routineDayBucket{
			dayIndex: dayIndex,
			dayName:  day.Name,
		}
	}

	timeline := make([]TimelineEntry, 0, len(sessionsList))
	for _, session := range sessionsList {
		bucket, ok := buckets[session.DayIndex]
		if !ok {
			// session recorded against a day the routine no longer defines
			bucket = &routineDayBucket{
				dayIndex: session.DayIndex,
				dayName:  fmt.Sprintf("Day %d", session.DayIndex+1),
			}
			buckets[session.DayIndex] = bucket
		}

		bucket.sessions++
		bucket.durationSum += session.DurationSeconds
		bucket.dates = append(bucket.dates, session.StartedAt)

		for _, performance := range session.Exercises {
			if performance.Rating != nil {
				bucket.satisfactionSum += performance.Rating.Satisfaction
				bucket.effortSum += performance.Rating.Effort
				bucket.difficultySum += performance.Rating.Difficulty
			}
			for _, set := range performance.Sets {
				if set.Weighted() {
					bucket.weightSum += set.Weight
				}
			}
		}

		timeline = append(timeline, TimelineEntry{
			Date:            session.StartedAt,
			DurationSeconds: session.DurationSeconds,
			DayIndex:        session.DayIndex,
		})
	}

	days := make([]RoutineDayProgress, 0, len(buckets))
	for _, bucket := range buckets {
		days = append(days, bucket.finalize())
	}
	sort.Slice(days, func(i, j int) bool {
		return days[i].DayIndex < days[j].DayIndex
	})

	firstSession := sessionsList[0].StartedAt
	lastSession := sessionsList[len(sessionsList)-1].StartedAt

	return &RoutineProgress{
		RoutineID:     routine.ID,
		RoutineName:   routine.Name,
		TotalSessions: len(sessionsList),
		FirstSession:  &firstSession,
		LastSession:   &lastSession,
		Days:          days,
		Timeline:      timeline,
	}, nil
}

// finalize divides every running sum by the bucket's session count.
// Never-trained days keep their zero averages.
func (b *routineDayBucket) finalize() RoutineDayProgress {
	day := RoutineDayProgress{
		DayIndex: b.dayIndex,
		DayName:  b.dayName,
		Sessions: b.sessions,
	}
	if b.sessions == 0 {
		return day
	}

	count := float64(b.sessions)
	day.AvgDurationSeconds = int(math.Round(float64(b.durationSum) / count))
	day.AvgSatisfaction = pkg.RoundToDecimal(float64(b.satisfactionSum)/count, 1)
	day.AvgEffort = pkg.RoundToDecimal(float64(b.effortSum)/count, 1)
	day.AvgDifficulty = pkg.RoundToDecimal(float64(b.difficultySum)/count, 1)
	day.AvgWeight = pkg.RoundToDecimal(b.weightSum/count, 1)
	day.Dates = b.dates

	return day
}
