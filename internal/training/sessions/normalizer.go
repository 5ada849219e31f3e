package sessions

//go:generate mockgen -source=$GOFILE -destination=normalizer_mocks_test.go -package=sessions_test

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/olivermegias/trainingtop/internal/training/catalog"

	log "github.com/sirupsen/logrus"
)

// internal catalog ids are 24 char lowercase hex strings (mobile app object ids),
// canonical keys are human readable slugs like "bench_press"
var internalKeyRegex = regexp.MustCompile(`^[0-9a-f]{24}$`)

type exerciseResolver interface {
	ResolveInternal(ctx context.Context, internalID string) (*catalog.Exercise, error)
}

// Normalizer cleans up incoming workout sessions before they get stored:
// internal catalog ids are swapped for canonical exercise keys, malformed
// sets and out of range ratings are dropped.
type Normalizer struct {
	resolver exerciseResolver
}

func NewNormalizer(resolver exerciseResolver) *Normalizer {
	return &Normalizer{resolver: resolver}
}

// Normalize returns a cleaned copy of the given session. It never fails:
// an exercise key that cannot be resolved is kept as received.
func (n *Normalizer) Normalize(ctx context.Context, session WorkoutSession) WorkoutSession {
	normalized := session
	normalized.Exercises = make([]ExercisePerformance, 0, len(session.Exercises))

	for _, performance := range session.Exercises {
		performance.ExerciseKey = strings.TrimSpace(performance.ExerciseKey)
		if performance.ExerciseKey == "" {
			log.Warnf("session for user %s: dropping exercise with empty key", session.UserID)
			continue
		}

		performance.ExerciseKey = n.resolveKey(ctx, performance.ExerciseKey)
		performance.Sets = sanitizeSets(performance.Sets)
		if performance.SkippedSets < 0 {
			performance.SkippedSets = 0
		}
		if performance.Rating != nil && !performance.Rating.Valid() {
			log.Warnf(
				"session for user %s: dropping out of range rating for exercise %s",
				session.UserID, performance.ExerciseKey,
			)
			performance.Rating = nil
		}

		normalized.Exercises = append(normalized.Exercises, performance)
	}

	if normalized.DurationSeconds <= 0 && !normalized.EndedAt.IsZero() && normalized.EndedAt.After(normalized.StartedAt) {
		normalized.DurationSeconds = int(normalized.EndedAt.Sub(normalized.StartedAt).Seconds())
	}

	return normalized
}

func (n *Normalizer) resolveKey(ctx context.Context, key string) string {
	if !internalKeyRegex.MatchString(key) {
		return key
	}

	exercise, err := n.resolver.ResolveInternal(ctx, key)
	if err != nil {
		if errors.Is(err, catalog.ErrExerciseNotFound) {
			log.Warnf("internal exercise id %s not found in catalog, keeping as is", key)
		} else {
			log.Errorf("resolve internal exercise id %s: %s", key, err)
		}
		return key
	}
	return exercise.Key
}

func sanitizeSets(sets []Set) []Set {
	if len(sets) == 0 {
		return nil
	}
	sanitized := make([]Set, 0, len(sets))
	for _, set := range sets {
		if set.Reps < 0 || set.Weight < 0 {
			continue
		}
		if set.Completed && set.Skipped {
			// skipped wins, a skipped set was not done
			set.Completed = false
		}
		sanitized = append(sanitized, set)
	}
	return sanitized
}
