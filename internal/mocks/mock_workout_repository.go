package mocks

import (
	"context"

	"github.com/antojoseph2806/PThrive/domain"
)

// MockWorkoutRepository implements domain.WorkoutRepository interface for testing
type MockWorkoutRepository struct {
	ListSessionsFunc   func(ctx context.Context, userID uint) ([]domain.WorkoutSession, error)
	CreateSessionFunc  func(ctx context.Context, session *domain.WorkoutSession) error
	ListExercisesFunc  func(ctx context.Context, userID uint) ([]domain.Exercise, error)
	CreateExerciseFunc func(ctx context.Context, exercise *domain.Exercise) error
}

// NewMockWorkoutRepository creates a new MockWorkoutRepository with default behaviors
func NewMockWorkoutRepository() *MockWorkoutRepository {
	return &MockWorkoutRepository{}
}

// ListSessions lists a user's workout sessions
func (m *MockWorkoutRepository) ListSessions(ctx context.Context, userID uint) ([]domain.WorkoutSession, error) {
	if m.ListSessionsFunc != nil {
		return m.ListSessionsFunc(ctx, userID)
	}
	return []domain.WorkoutSession{}, nil
}

// CreateSession stores a workout session
func (m *MockWorkoutRepository) CreateSession(ctx context.Context, session *domain.WorkoutSession) error {
	if m.CreateSessionFunc != nil {
		return m.CreateSessionFunc(ctx, session)
	}
	return nil
}

// ListExercises lists a user's exercises
func (m *MockWorkoutRepository) ListExercises(ctx context.Context, userID uint) ([]domain.Exercise, error) {
	if m.ListExercisesFunc != nil {
		return m.ListExercisesFunc(ctx, userID)
	}
	return []domain.Exercise{}, nil
}

// CreateExercise stores an exercise record
func (m *MockWorkoutRepository) CreateExercise(ctx context.Context, exercise *domain.Exercise) error {
	if m.CreateExerciseFunc != nil {
		return m.CreateExerciseFunc(ctx, exercise)
	}
	return nil
}

// Compile-time interface compliance verification
var _ domain.WorkoutRepository = (*MockWorkoutRepository)(nil)
