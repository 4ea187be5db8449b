package vitals

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/hearthero/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// Latest returns the most recently written metric record for the client.
func (r *Repo) Latest(ctx context.Context, clientID string) (_ *Metric, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.vitals.latest")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT id, client_id, steps, heart_rate, systolic_bp, diastolic_bp, date
			FROM health_metric
			WHERE client_id = $1
			ORDER BY date DESC
			LIMIT 1;`,
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
		return nil, ErrMetricNotFound
	}

	var m Metric
	if err := rows.Scan(
		&m.ID, &m.ClientID, &m.Steps, &m.HeartRate, &m.SystolicBP, &m.DiastolicBP, &m.Date,
	); err != nil {
		return nil, fmt.Errorf("rows scan: %w", err)
	}
	return &m, nil
}

func (r *Repo) Insert(ctx context.Context, m Metric) (_ *Metric, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.vitals.insert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if m.ClientID == "" {
		return nil, errors.New("metric client id empty")
	}

	rows, err := r.db.Query(
		ctx,
		`INSERT INTO health_metric (client_id, steps, heart_rate, systolic_bp, diastolic_bp, date, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, now())
			RETURNING id;`,
		m.ClientID, m.Steps, m.HeartRate, m.SystolicBP, m.DiastolicBP, m.Date,
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

	var id int
	if err := rows.Scan(&id); err != nil {
		return nil, fmt.Errorf("rows scan: %w", err)
	}

	span.SetAttributes(attribute.Int("metric.id", id))

	m.ID = id
	return &m, nil
}

func (r *Repo) Update(ctx context.Context, m *Metric) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.vitals.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("metric.id", m.ID))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE health_metric
			SET steps = $1, heart_rate = $2, systolic_bp = $3, diastolic_bp = $4, date = $5
			WHERE id = $6;`,
		m.Steps, m.HeartRate, m.SystolicBP, m.DiastolicBP, m.Date, m.ID,
	)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrMetricNotFound
	}

	return nil
}
