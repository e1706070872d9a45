package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/antojoseph2806/PThrive/domain"
)

// WorkoutHandlers handles workout session and exercise HTTP requests
type WorkoutHandlers struct {
	workouts domain.WorkoutRepository
}

// NewWorkoutHandlers creates new workout handlers
func NewWorkoutHandlers(workouts domain.WorkoutRepository) *WorkoutHandlers {
	return &WorkoutHandlers{workouts: workouts}
}

// CreateSessionRequest represents a new workout session
type CreateSessionRequest struct {
	SessionDate string `json:"session_date" binding:"required"`
	Notes       string `json:"notes"`
}

// CreateExerciseRequest represents a new exercise record
type CreateExerciseRequest struct {
	Name            string `json:"name" binding:"required"`
	Description     string `json:"description"`
	DurationMinutes int    `json:"duration_minutes" binding:"required,min=1"`
}

// ListSessions handles GET /api/sessions
func (h *WorkoutHandlers) ListSessions(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	sessions, err := h.workouts.ListSessions(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list sessions"})
		return
	}

	out := make([]gin.H, 0, len(sessions))
	for _, s := range sessions {
		out = append(out, gin.H{
			"id":           s.ID,
			"session_date": s.SessionDate.Format("2006-01-02"),
			"notes":        s.Notes,
			"created_at":   s.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, gin.H{"data": out})
}

// CreateSession handles POST /api/sessions
func (h *WorkoutHandlers) CreateSession(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sessionDate, err := time.Parse("2006-01-02", req.SessionDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "session_date must be YYYY-MM-DD"})
		return
	}

	session := &domain.WorkoutSession{
		UserID:      userID,
		SessionDate: sessionDate,
		Notes:       req.Notes,
	}
	if err := h.workouts.CreateSession(c.Request.Context(), session); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"data": gin.H{
			"id":           session.ID,
			"session_date": session.SessionDate.Format("2006-01-02"),
			"notes":        session.Notes,
		},
	})
}

// ListExercises handles GET /api/exercises
func (h *WorkoutHandlers) ListExercises(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	exercises, err := h.workouts.ListExercises(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list exercises"})
		return
	}

	out := make([]gin.H, 0, len(exercises))
	for _, e := range exercises {
		out = append(out, gin.H{
			"id":               e.ID,
			"name":             e.Name,
			"description":      e.Description,
			"duration_minutes": e.DurationMinutes,
			"created_at":       e.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, gin.H{"data": out})
}

// CreateExercise handles POST /api/exercises
func (h *WorkoutHandlers) CreateExercise(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req CreateExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	exercise := &domain.Exercise{
		UserID:          userID,
		Name:            req.Name,
		Description:     req.Description,
		DurationMinutes: req.DurationMinutes,
	}
	if err := h.workouts.CreateExercise(c.Request.Context(), exercise); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create exercise"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"data": gin.H{
			"id":               exercise.ID,
			"name":             exercise.Name,
			"description":      exercise.Description,
			"duration_minutes": exercise.DurationMinutes,
		},
	})
}
