package repository

import (
	"context"

	"airportops/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type RecommendationRepository interface {
	ListByPassenger(ctx context.Context, passengerID int64) ([]domain.Recommendation, error)
	Create(ctx context.Context, rec *domain.Recommendation) error
	ListUnsent(ctx context.Context, limit int) ([]domain.Recommendation, error)
	MarkSent(ctx context.Context, id int64) error
}

const recommendationColumns = `id, passenger_id, flight_id, recommendation_type, score, reason, created_at, is_sent`

type PGRecommendationRepository struct {
	db *pgxpool.Pool
}

func NewRecommendationRepository(db *pgxpool.Pool) RecommendationRepository {
	return &PGRecommendationRepository{db: db}
}

func scanRecommendation(row interface{ Scan(...any) error }) (domain.Recommendation, error) {
	var rec domain.Recommendation
	err := row.Scan(&rec.ID, &rec.PassengerID, &rec.FlightID, &rec.RecommendationType,
		&rec.Score, &rec.Reason, &rec.CreatedAt, &rec.IsSent)
	return rec, err
}

func (r *PGRecommendationRepository) ListByPassenger(ctx context.Context, passengerID int64) ([]domain.Recommendation, error) {
	rows, err := r.db.Query(ctx, `SELECT `+recommendationColumns+` FROM recommendations WHERE passenger_id=$1 ORDER BY score DESC, created_at DESC`, passengerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	recs := make([]domain.Recommendation, 0)
	for rows.Next() {
		rec, err := scanRecommendation(rows)
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}

func (r *PGRecommendationRepository) Create(ctx context.Context, rec *domain.Recommendation) error {
	err := r.db.QueryRow(ctx, `INSERT INTO recommendations (passenger_id, flight_id, recommendation_type, score, reason, is_sent)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`,
		rec.PassengerID, rec.FlightID, rec.RecommendationType, rec.Score, rec.Reason, rec.IsSent).
		Scan(&rec.ID, &rec.CreatedAt)
	return mapError(err)
}

func (r *PGRecommendationRepository) ListUnsent(ctx context.Context, limit int) ([]domain.Recommendation, error) {
	rows, err := r.db.Query(ctx, `SELECT `+recommendationColumns+` FROM recommendations WHERE is_sent=FALSE ORDER BY created_at LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	recs := make([]domain.Recommendation, 0)
	for rows.Next() {
		rec, err := scanRecommendation(rows)
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}

func (r *PGRecommendationRepository) MarkSent(ctx context.Context, id int64) error {
	res, err := r.db.Exec(ctx, `UPDATE recommendations SET is_sent=TRUE WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

var _ RecommendationRepository = (*PGRecommendationRepository)(nil)
