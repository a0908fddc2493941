package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moodlens/moodlens/internal/domain"
)

func TestPredictionRepository_Create(t *testing.T) {
	tests := []struct {
		name       string
		prediction *domain.Prediction
		mockSetup  func(mock pgxmock.PgxPoolIface)
		wantErr    bool
		wantID     int64
	}{
		{
			name: "successful insert assigns id",
			prediction: &domain.Prediction{
				Name:             "Ada",
				Timestamp:        "2025-03-14 15:09:26",
				ImagePath:        "uploads/20250314_150926_ab12cd34_selfie.png",
				PredictedEmotion: domain.EmotionHappiness,
			},
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`INSERT INTO predictions \(name, timestamp, image_path, predicted_emotion\) VALUES \(\$1, \$2, \$3, \$4\) RETURNING id`).
					WithArgs("Ada", "2025-03-14 15:09:26", "uploads/20250314_150926_ab12cd34_selfie.png", "happiness").
					WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(7)))
			},
			wantID: 7,
		},
		{
			name: "sentinel label is persisted like any other",
			prediction: &domain.Prediction{
				Name:             "Anonymous",
				Timestamp:        "2025-03-14 15:09:27",
				ImagePath:        "uploads/20250314_150927_webcam_ef56ab78.png",
				PredictedEmotion: domain.EmotionError,
			},
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`INSERT INTO predictions`).
					WithArgs("Anonymous", "2025-03-14 15:09:27", "uploads/20250314_150927_webcam_ef56ab78.png", "error").
					WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(8)))
			},
			wantID: 8,
		},
		{
			name: "insert failure maps to storage error",
			prediction: &domain.Prediction{
				Name:             "Ada",
				Timestamp:        "2025-03-14 15:09:28",
				ImagePath:        "uploads/x.png",
				PredictedEmotion: domain.EmotionNeutral,
			},
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`INSERT INTO predictions`).
					WithArgs("Ada", "2025-03-14 15:09:28", "uploads/x.png", "neutral").
					WillReturnError(errors.New("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, err := pgxmock.NewPool()
			require.NoError(t, err)
			defer mock.Close()

			tt.mockSetup(mock)

			repo := NewPredictionRepository(mock)
			err = repo.Create(context.Background(), tt.prediction)

			if tt.wantErr {
				require.Error(t, err)
				var appErr *domain.AppError
				require.ErrorAs(t, err, &appErr)
				assert.Equal(t, domain.ErrStorageFailed.Code, appErr.Code)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantID, tt.prediction.ID)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestPredictionRepository_ListRecent(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	rows := pgxmock.NewRows([]string{"id", "name", "timestamp", "image_path", "predicted_emotion"}).
		AddRow(int64(3), "Ada", "2025-03-14 15:09:28", "uploads/c.png", "neutral").
		AddRow(int64(2), "Anonymous", "2025-03-14 15:09:27", "uploads/b.png", "error").
		AddRow(int64(1), "Grace", "2025-03-14 15:09:26", "uploads/a.jpg", "happiness")

	mock.ExpectQuery(`SELECT id, name, timestamp, image_path, predicted_emotion FROM predictions ORDER BY id DESC LIMIT \$1`).
		WithArgs(10).
		WillReturnRows(rows)

	repo := NewPredictionRepository(mock)
	predictions, err := repo.ListRecent(context.Background(), 10)

	require.NoError(t, err)
	require.Len(t, predictions, 3)
	assert.Equal(t, int64(3), predictions[0].ID)
	assert.Equal(t, domain.EmotionError, predictions[1].PredictedEmotion)
	assert.Equal(t, domain.EmotionHappiness, predictions[2].PredictedEmotion)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPredictionRepository_ListRecent_QueryError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(`SELECT id, name, timestamp, image_path, predicted_emotion FROM predictions`).
		WithArgs(5).
		WillReturnError(errors.New("relation does not exist"))

	repo := NewPredictionRepository(mock)
	_, err = repo.ListRecent(context.Background(), 5)

	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
