package routines

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
	ErrRoutineNotFound      = errors.New("routine not found")
	ErrRoutineAlreadyExists = errors.New("routine already exists")
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, routine Routine) (_ *Routine, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.routines.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if routine.ID == "" {
		routine.ID = uuid.NewString()
	}

	daysJson, err := json.Marshal(routine.Days)
	if err != nil {
		return nil, fmt.Errorf("marshal days: %w", err)
	}

	tag, err := r.db.Exec(
		ctx,
		`INSERT INTO routine (id, user_id, name, days, created_at) VALUES ($1, $2, $3, $4, $5);`,
		routine.ID, routine.UserID, routine.Name, daysJson, routine.CreatedAt,
	)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return nil, ErrRoutineAlreadyExists
		}
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, errors.New("unexpected error [no rows affected]")
	}

	span.SetAttributes(attribute.String("routine.id", routine.ID))

	return &routine, nil
}

func (r *Repo) Get(ctx context.Context, id string) (_ *Routine, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.routines.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("routine.id", id))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, name, days, created_at FROM routine WHERE id = $1;`,
		id,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	routinesList, err := rows2routines(rows)
	if err != nil {
		return nil, err
	}
	if len(routinesList) == 0 {
		return nil, ErrRoutineNotFound
	}

	return &routinesList[0], nil
}

func (r *Repo) ListUser(ctx context.Context, userID string) (_ []Routine, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.routines.listUser")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, name, days, created_at FROM routine WHERE user_id = $1 ORDER BY created_at DESC;`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return rows2routines(rows)
}

func (r *Repo) Delete(ctx context.Context, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.routines.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("routine.id", id))

	tag, err := r.db.Exec(ctx, `DELETE FROM routine WHERE id = $1;`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrRoutineNotFound
	}

	return nil
}

func rows2routines(rows pgx.Rows) ([]Routine, error) {
	var routinesList []Routine
	for rows.Next() {
		var routine Routine
		var daysJson []byte
		if err := rows.Scan(
			&routine.ID, &routine.UserID, &routine.Name, &daysJson, &routine.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		if len(daysJson) > 0 {
			if err := json.Unmarshal(daysJson, &routine.Days); err != nil {
				return nil, fmt.Errorf("unmarshal days: %w", err)
			}
		}
		routinesList = append(routinesList, routine)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return routinesList, nil
}
