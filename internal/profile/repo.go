package profile

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/hearthero/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Get(ctx context.Context, clientID string) (_ *Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profile.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT id, client_id, height, weight, age, gender, created_at, updated_at
			FROM user_profile
			WHERE client_id = $1;`,
		clientID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if !rows.Next() {
		return nil, ErrProfileNotFound
	}

	var p Profile
	if err := rows.Scan(
		&p.ID, &p.ClientID, &p.Height, &p.Weight, &p.Age, &p.Gender, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return nil, fmt.Errorf("rows scan: %w", err)
	}
	return &p, nil
}

func (r *Repo) Upsert(ctx context.Context, p Profile) (_ *Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profile.upsert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if p.ClientID == "" {
		return nil, errors.New("profile client id empty")
	}

	rows, err := r.db.Query(
		ctx,
		`INSERT INTO user_profile (client_id, height, weight, age, gender, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, now(), now())
			ON CONFLICT (client_id) DO UPDATE SET
				height = EXCLUDED.height,
				weight = EXCLUDED.weight,
				age = EXCLUDED.age,
				gender = EXCLUDED.gender,
				updated_at = now()
			RETURNING id, created_at, updated_at;`,
		p.ClientID, p.Height, p.Weight, p.Age, p.Gender,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if !rows.Next() {
		return nil, errors.New("unexpected error [no rows next]")
	}

	if err := rows.Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, fmt.Errorf("rows scan: %w", err)
	}
	return &p, nil
}

// Ensure returns the client profile, creating one with default values on
// first access.
func (r *Repo) Ensure(ctx context.Context, clientID string) (*Profile, error) {
	p, err := r.Get(ctx, clientID)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, ErrProfileNotFound) {
		return nil, err
	}
	return r.Upsert(ctx, Default(clientID))
}
