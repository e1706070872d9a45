package httpx

import (
	"github.com/gin-gonic/gin"

	"github.com/antojoseph2806/PThrive/internal/http/handlers"
	"github.com/antojoseph2806/PThrive/internal/http/middleware"
)

func BuildRouter(ah *handlers.AuthHandlers, rh *handlers.RecoveryHandlers, wh *handlers.WorkoutHandlers, jwtmw gin.HandlerFunc, cb *middleware.CasbinMW, rl *middleware.RateLimiter) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	auth := r.Group("/auth").Use(rl.Limit())
	auth.POST("/register", ah.Register)
	auth.POST("/login", ah.Login)
	auth.POST("/google", ah.GoogleLogin)
	auth.POST("/recovery/request", rh.RequestReset)
	auth.POST("/recovery/confirm", rh.ConfirmReset)

	api := r.Group("/api").Use(jwtmw, cb.Enforce())
	api.GET("/user/profile", ah.Me)
	api.GET("/sessions", wh.ListSessions)
	api.POST("/sessions", wh.CreateSession)
	api.GET("/exercises", wh.ListExercises)
	api.POST("/exercises", wh.CreateExercise)

	return r
}
