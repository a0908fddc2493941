package repository

import (
	"context"
	"fmt"

	"github.com/moodlens/moodlens/internal/domain"
)

type PredictionRepository struct {
	pool PgxPool
}

func NewPredictionRepository(pool PgxPool) *PredictionRepository {
	return &PredictionRepository{pool: pool}
}

// Create appends one prediction record. The surrogate id is assigned by
// the database and written back into the record.
func (r *PredictionRepository) Create(ctx context.Context, prediction *domain.Prediction) error {
	query := `
		INSERT INTO predictions (name, timestamp, image_path, predicted_emotion)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := r.pool.QueryRow(ctx, query,
		prediction.Name,
		prediction.Timestamp,
		prediction.ImagePath,
		string(prediction.PredictedEmotion),
	).Scan(&prediction.ID)

	if err != nil {
		return domain.ErrStorageFailed.WithError(fmt.Errorf("create prediction: %w", err))
	}

	return nil
}

// ListRecent returns the newest records first, up to limit.
func (r *PredictionRepository) ListRecent(ctx context.Context, limit int) ([]domain.Prediction, error) {
	query := `
		SELECT id, name, timestamp, image_path, predicted_emotion
		FROM predictions
		ORDER BY id DESC
		LIMIT $1
	`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list predictions: %w", err)
	}
	defer rows.Close()

	var predictions []domain.Prediction
	for rows.Next() {
		var p domain.Prediction
		var emotion string
		if err := rows.Scan(&p.ID, &p.Name, &p.Timestamp, &p.ImagePath, &emotion); err != nil {
			return nil, fmt.Errorf("scan prediction: %w", err)
		}
		p.PredictedEmotion = domain.Emotion(emotion)
		predictions = append(predictions, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate predictions: %w", err)
	}

	return predictions, nil
}
