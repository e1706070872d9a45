package app

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/antojoseph2806/PThrive/domain"
	"github.com/antojoseph2806/PThrive/internal/config"
	httpx "github.com/antojoseph2806/PThrive/internal/http"
	"github.com/antojoseph2806/PThrive/internal/http/handlers"
	"github.com/antojoseph2806/PThrive/internal/http/middleware"
	"github.com/antojoseph2806/PThrive/internal/infrastructure/auth"
	"github.com/antojoseph2806/PThrive/internal/infrastructure/database"
	"github.com/antojoseph2806/PThrive/internal/infrastructure/notifications"
	"github.com/antojoseph2806/PThrive/internal/infrastructure/repositories"
	"github.com/antojoseph2806/PThrive/internal/services"
)

func Run(cfg *config.Config) error {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	gdb, err := database.Open(cfg.DSN)
	if err != nil {
		return err
	}
	if err := database.AutoMigrate(gdb); err != nil {
		return err
	}
	cas, err := auth.NewCasbinService(gdb, cfg.CasbinModelPath)
	if err != nil {
		return err
	}

	// Infrastructure services
	passwordSvc := auth.NewPasswordService()
	tokenSvc := auth.NewJWTService(cfg.JWTSecret, cfg.JWTIssuer, cfg.TokenTTL)
	notificationSvc := notifications.NewTwilioService(cfg.TwilioSID, cfg.TwilioToken, cfg.TwilioFrom)
	googleSvc := auth.NewGoogleVerifier(cfg.GoogleClientID)

	// Repositories
	userRepo := repositories.NewUserRepository(gdb)
	workoutRepo := repositories.NewWorkoutRepository(gdb)

	recoveryStore, err := buildRecoveryStore(cfg)
	if err != nil {
		return err
	}

	// Services
	phones := services.NewPhoneNormalizer(cfg.PhoneCountryCode)
	recoveryCfg := services.RecoveryConfig{
		CodeLength:    cfg.RecoveryCodeLength,
		TTL:           cfg.RecoveryTTL,
		MaxAttempts:   cfg.RecoveryMaxAttempts,
		RequestLimit:  cfg.RecoveryRequestLimit,
		RequestWindow: cfg.RecoveryRequestWindow,
	}
	recoverySvc := services.NewRecoveryService(recoveryStore, userRepo, passwordSvc, notificationSvc, phones, recoveryCfg)
	authSvc := services.NewAuthService(userRepo, passwordSvc, tokenSvc, googleSvc, phones, cfg.TokenTTL)

	// Handlers
	authH := handlers.NewAuthHandlers(authSvc)
	recoveryH := handlers.NewRecoveryHandlers(recoverySvc)
	workoutH := handlers.NewWorkoutHandlers(workoutRepo)

	// Middleware
	jwtMW := middleware.AuthMiddleware(tokenSvc)
	casbinMW := middleware.NewCasbinMW(cas.E)
	rateMW := middleware.NewRateLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)

	r := httpx.BuildRouter(authH, recoveryH, workoutH, jwtMW, casbinMW, rateMW)

	policies, _ := cas.E.GetPolicy()
	if len(policies) == 0 {
		cas.E.AddPolicy("role_admin", "/*", "(GET|POST|PUT|DELETE)")
		cas.E.AddPolicy("role_user", "/api/*", "(GET|POST)")
		_ = cas.E.SavePolicy()
		log.Println("casbin: seeded default policies")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sweeper := services.NewSweeper(recoveryStore, cfg.SweepInterval)
	go sweeper.Run(ctx)

	addr := ":" + cfg.Port
	srv := &http.Server{Addr: addr, Handler: r}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("listening on %s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Println("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// buildRecoveryStore selects the backing store for recovery codes. The
// in-memory store is the default; redis is for multi-instance deployments.
func buildRecoveryStore(cfg *config.Config) (domain.RecoveryStore, error) {
	switch cfg.RecoveryStore {
	case "", "memory":
		return repositories.NewMemoryRecoveryStore(), nil
	case "redis":
		rdb := database.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err := rdb.Ping(context.Background()); err != nil {
			return nil, fmt.Errorf("redis ping failed: %w", err)
		}
		return repositories.NewRedisRecoveryStore(rdb.Client, cfg.RecoveryTTL, cfg.RecoveryRequestWindow), nil
	default:
		return nil, fmt.Errorf("unknown recovery store %q", cfg.RecoveryStore)
	}
}
