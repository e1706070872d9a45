package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/antojoseph2806/PThrive/domain"
)

// WorkoutRepositoryImpl implements domain.WorkoutRepository using GORM
type WorkoutRepositoryImpl struct {
	db *gorm.DB
}

// DBWorkoutSession represents the database model for WorkoutSession
type DBWorkoutSession struct {
	ID          uint `gorm:"primaryKey"`
	UserID      uint `gorm:"index"`
	SessionDate time.Time
	Notes       string
	CreatedAt   time.Time
}

// TableName returns the table name for GORM
func (DBWorkoutSession) TableName() string {
	return "sessions"
}

// DBExercise represents the database model for Exercise
type DBExercise struct {
	ID              uint   `gorm:"primaryKey"`
	UserID          uint   `gorm:"index"`
	Name            string `gorm:"size:255"`
	Description     string
	DurationMinutes int
	CreatedAt       time.Time
}

// TableName returns the table name for GORM
func (DBExercise) TableName() string {
	return "exercises"
}

// NewWorkoutRepository creates a new workout repository
func NewWorkoutRepository(db *gorm.DB) domain.WorkoutRepository {
	return &WorkoutRepositoryImpl{db: db}
}

// ListSessions implements domain.WorkoutRepository
func (r *WorkoutRepositoryImpl) ListSessions(ctx context.Context, userID uint) ([]domain.WorkoutSession, error) {
	var rows []DBWorkoutSession
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("session_date asc").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	sessions := make([]domain.WorkoutSession, 0, len(rows))
	for _, row := range rows {
		sessions = append(sessions, domain.WorkoutSession{
			ID:          row.ID,
			UserID:      row.UserID,
			SessionDate: row.SessionDate,
			Notes:       row.Notes,
			CreatedAt:   row.CreatedAt,
		})
	}
	return sessions, nil
}

// CreateSession implements domain.WorkoutRepository
func (r *WorkoutRepositoryImpl) CreateSession(ctx context.Context, session *domain.WorkoutSession) error {
	row := &DBWorkoutSession{
		UserID:      session.UserID,
		SessionDate: session.SessionDate,
		Notes:       session.Notes,
	}
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return err
	}
	session.ID = row.ID
	session.CreatedAt = row.CreatedAt
	return nil
}

// ListExercises implements domain.WorkoutRepository
func (r *WorkoutRepositoryImpl) ListExercises(ctx context.Context, userID uint) ([]domain.Exercise, error) {
	var rows []DBExercise
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&rows).Error
	if err != nil {
		return nil, err
	}

	exercises := make([]domain.Exercise, 0, len(rows))
	for _, row := range rows {
		exercises = append(exercises, domain.Exercise{
			ID:              row.ID,
			UserID:          row.UserID,
			Name:            row.Name,
			Description:     row.Description,
			DurationMinutes: row.DurationMinutes,
			CreatedAt:       row.CreatedAt,
		})
	}
	return exercises, nil
}

// CreateExercise implements domain.WorkoutRepository
func (r *WorkoutRepositoryImpl) CreateExercise(ctx context.Context, exercise *domain.Exercise) error {
	row := &DBExercise{
		UserID:          exercise.UserID,
		Name:            exercise.Name,
		Description:     exercise.Description,
		DurationMinutes: exercise.DurationMinutes,
	}
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return err
	}
	exercise.ID = row.ID
	exercise.CreatedAt = row.CreatedAt
	return nil
}
