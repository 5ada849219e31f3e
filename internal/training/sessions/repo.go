package sessions

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/olivermegias/trainingtop/internal/telemetry/tracing"
	"github.com/olivermegias/trainingtop/pkg"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrSessionNotFound      = errors.New("workout session not found")
	ErrSessionAlreadyExists = errors.New("workout session already exists")
)

// ListParams controls the paginated session listing.
type ListParams struct {
	UserID    string
	RoutineID string
	Page      int
	Size      int
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, session WorkoutSession) (_ *WorkoutSession, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if session.ID == "" {
		session.ID = uuid.NewString()
	}

	exercisesJson, err := json.Marshal(session.Exercises)
	if err != nil {
		return nil, fmt.Errorf("marshal exercises: %w", err)
	}

	tag, err := r.db.Exec(
		ctx,
		`INSERT INTO workout_session
				(id, user_id, routine_id, day_index, started_at, ended_at, duration_seconds, exercises)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8);`,
		session.ID, session.UserID, session.RoutineID, session.DayIndex,
		session.StartedAt, session.EndedAt, session.DurationSeconds, exercisesJson,
	)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return nil, ErrSessionAlreadyExists
		}
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, errors.New("unexpected error [no rows affected]")
	}

	span.SetAttributes(attribute.String("session.id", session.ID))

	return &session, nil
}

func (r *Repo) Get(ctx context.Context, id string) (_ *WorkoutSession, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("session.id", id))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, routine_id, day_index, started_at, ended_at, duration_seconds, exercises
			FROM workout_session WHERE id = $1;`,
		id,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sessionsList, err := rows2sessions(rows)
	if err != nil {
		return nil, err
	}
	if len(sessionsList) == 0 {
		return nil, ErrSessionNotFound
	}

	return &sessionsList[0], nil
}

func (r *Repo) Delete(ctx context.Context, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("session.id", id))

	tag, err := r.db.Exec(ctx, `DELETE FROM workout_session WHERE id = $1;`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrSessionNotFound
	}

	return nil
}

// ListUser returns the user sessions, newest first. A limit of 0 or
// less returns everything.
func (r *Repo) ListUser(ctx context.Context, userID string, limit int) (_ []WorkoutSession, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.listUser")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID))

	query := `SELECT id, user_id, routine_id, day_index, started_at, ended_at, duration_seconds, exercises
		FROM workout_session WHERE user_id = $1 ORDER BY started_at DESC`
	args := []interface{}{userID}
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}

	rows, err := r.db.Query(ctx, query+";", args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return rows2sessions(rows)
}

// ListRoutine returns all user sessions recorded for the given routine,
// oldest first.
func (r *Repo) ListRoutine(ctx context.Context, userID, routineID string) (_ []WorkoutSession, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.listRoutine")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("user.id", userID),
		attribute.String("routine.id", routineID),
	)

	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, routine_id, day_index, started_at, ended_at, duration_seconds, exercises
			FROM workout_session WHERE user_id = $1 AND routine_id = $2 ORDER BY started_at ASC;`,
		userID, routineID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return rows2sessions(rows)
}

// List returns one page of user sessions, newest first, plus the total count.
func (r *Repo) List(ctx context.Context, params ListParams) (_ []WorkoutSession, total int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("user.id", params.UserID),
		attribute.Int("page", params.Page),
		attribute.Int("size", params.Size),
	)

	if err := r.db.QueryRow(
		ctx,
		`SELECT COUNT(*) FROM workout_session WHERE user_id = $1;`,
		params.UserID,
	).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count sessions: %w", err)
	}

	offset := (params.Page - 1) * params.Size
	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, routine_id, day_index, started_at, ended_at, duration_seconds, exercises
			FROM workout_session WHERE user_id = $1
			ORDER BY started_at DESC LIMIT $2 OFFSET $3;`,
		params.UserID, params.Size, offset,
	)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	sessionsList, err := rows2sessions(rows)
	if err != nil {
		return nil, 0, err
	}

	return sessionsList, total, nil
}

func rows2sessions(rows pgx.Rows) ([]WorkoutSession, error) {
	var sessionsList []WorkoutSession
	for rows.Next() {
		var session WorkoutSession
		var exercisesJson []byte
		if err := rows.Scan(
			&session.ID, &session.UserID, &session.RoutineID, &session.DayIndex,
			&session.StartedAt, &session.EndedAt, &session.DurationSeconds, &exercisesJson,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		if len(exercisesJson) > 0 {
			if err := json.Unmarshal(exercisesJson, &session.Exercises); err != nil {
				return nil, fmt.Errorf("unmarshal exercises: %w", err)
			}
		}
		sessionsList = append(sessionsList, session)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return sessionsList, nil
}
