package progress

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/olivermegias/trainingtop/internal/telemetry/tracing"
	"github.com/olivermegias/trainingtop/pkg"
)

// Period is the lookback window keyword for period statistics.
type Period string

const (
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodYear  Period = "year"
)

// ParsePeriod maps the raw query value to a Period, empty means month.
func ParsePeriod(raw string) (Period, error) {
	switch Period(raw) {
	case "":
		return PeriodMonth, nil
	case PeriodWeek, PeriodMonth, PeriodYear:
		return Period(raw), nil
	default:
		return "", fmt.Errorf("unknown period %q", raw)
	}
}

func (p Period) windowStart(now time.Time) time.Time {
	switch p {
	case PeriodWeek:
		return now.AddDate(0, 0, -7)
	case PeriodYear:
		return now.AddDate(-1, 0, 0)
	default:
		return now.AddDate(0, -1, 0)
	}
}

// PeriodStats sums up the user's training inside the given lookback
// window: session and exercise counts, total duration, completed sets,
// plus average satisfaction and effort over rated exercises.
func (a *Analyzer) PeriodStats(ctx context.Context, userID string, period Period) (_ *PeriodStats, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.periodStats")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("user.id", userID),
		attribute.String("period", string(period)),
	)

	sessionsList, err := a.sessions.ListUser(ctx, userID, 0)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}

	windowStart := period.windowStart(a.now())

	stats := &PeriodStats{Period: period}
	var (
		satisfactionSum int
		effortSum       int
		// one shared counter for both averages, a rating always carries
		// both satisfaction and effort
		ratedExercises int
	)

	for _, session := range sessionsList {
		if session.StartedAt.Before(windowStart) {
			continue
		}

		stats.Sessions++
		stats.TotalDurationSeconds += session.DurationSeconds

		for _, performance := range session.Exercises {
			stats.Exercises++
			for _, set := range performance.Sets {
				if set.Countable() {
					stats.CompletedSets++
				}
			}
			if performance.Rating != nil {
				satisfactionSum += performance.Rating.Satisfaction
				effortSum += performance.Rating.Effort
				ratedExercises++
			}
		}
	}

	if ratedExercises > 0 {
		stats.AvgSatisfaction = pkg.RoundToDecimal(float64(satisfactionSum)/float64(ratedExercises), 1)
		stats.AvgEffort = pkg.RoundToDecimal(float64(effortSum)/float64(ratedExercises), 1)
	}

	return stats, nil
}
