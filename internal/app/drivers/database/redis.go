package database

import (
	"context"
	"fmt"
	"patientor-service/internal/app/config"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// NewRedisClient returns nil when Redis is disabled or unreachable; the
// diagnosis catalog is then fetched from the backend on every page load.
func NewRedisClient(driverConfig *config.DriverConfig, log *zap.Logger) *redis.Client {
	if !driverConfig.Redis.Enabled {
		log.Info("Redis disabled, diagnosis catalog cache is off")
		return nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", driverConfig.Redis.Host, driverConfig.Redis.Port),
		Password: driverConfig.Redis.Password,
		DB:       driverConfig.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	_, err := rdb.Ping(ctx).Result()
	if err != nil {
		log.Warn("Could not connect to Redis, diagnosis catalog cache is off", zap.Error(err))
		rdb.Close()
		return nil
	}

	log.Info("Successfully connected to Redis",
		zap.String("address", rdb.Options().Addr),
	)
	return rdb
}
