package usecase

import (
	"context"
	"time"

	"go-jobseeker-backend/pkg/redis"

	"github.com/jackc/pgx/v5/pgxpool"
)

type HealthUsecase interface {
	Check(ctx context.Context) map[string]string
}

type healthUsecase struct {
	db *pgxpool.Pool
}

func NewHealthUsecase(db *pgxpool.Pool) HealthUsecase {
	return &healthUsecase{db: db}
}

func (u *healthUsecase) Check(ctx context.Context) map[string]string {
	status := map[string]string{
		"status": "ok",
		"db":     "ok",
		"redis":  "ok",
	}

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if u.db == nil || u.db.Ping(pingCtx) != nil {
		status["db"] = "unavailable"
		status["status"] = "degraded"
	}
	if err := redis.HealthCheck(pingCtx); err != nil {
		// Redis is optional; the rate limiter degrades to in-memory
		status["redis"] = "unavailable"
	}

	return status
}
