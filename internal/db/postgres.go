package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/yigit/campus/internal/app/models"
	"github.com/yigit/campus/internal/config"
	"github.com/yigit/campus/internal/pkg/dberrors"
	"github.com/yigit/campus/internal/pkg/logger"
)

// Gateway is the database handle shared by all repositories
type Gateway struct {
	DB   *gorm.DB
	pool *pgxpool.Pool
	sql  *sql.DB
}

// NewPostgresDB creates a PostgreSQL connection pool and wraps it in GORM.
// Connections are opened lazily, so an unreachable server does not fail here;
// use Authenticate to check connectivity.
func NewPostgresDB(cfg *config.Config, lgr zerolog.Logger) (*Gateway, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.GetPostgresConnectionString())
	if err != nil {
		return nil, fmt.Errorf("failed to parse pgxpool config: %w", err)
	}

	poolConfig.MaxConns = int32(cfg.Database.MaxOpenConns)
	poolConfig.MinConns = int32(cfg.Database.MaxIdleConns)

	maxLifetime, err := time.ParseDuration(cfg.Database.ConnMaxLifetime)
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection max lifetime: %w", err)
	}
	poolConfig.MaxConnLifetime = maxLifetime

	// Drop connections that went away while idle
	poolConfig.BeforeAcquire = func(ctx context.Context, conn *pgx.Conn) bool {
		if err := conn.Ping(ctx); err != nil {
			logger.Warn().Err(err).Msg("Unhealthy connection detected")
			return false
		}
		return true
	}

	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create database connection pool: %w", err)
	}

	sqlDB := stdlib.OpenDBFromPool(pool)
	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger:               logger.NewGormLogger(lgr, logger.DefaultSlowThreshold),
		DisableAutomaticPing: true,
	})
	if err != nil {
		_ = sqlDB.Close()
		pool.Close()
		return nil, fmt.Errorf("failed to open gorm: %w", err)
	}

	return &Gateway{DB: gormDB, pool: pool, sql: sqlDB}, nil
}

// NewGateway wraps an already opened GORM handle
func NewGateway(gormDB *gorm.DB) *Gateway {
	return &Gateway{DB: gormDB}
}

// Authenticate checks that the database answers a round trip
func (g *Gateway) Authenticate(ctx context.Context) error {
	sqlDB, err := g.DB.DB()
	if err != nil {
		return dberrors.Translate(err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return dberrors.Translate(err)
	}
	return nil
}

// AutoMigrate creates the department and student tables when missing
func (g *Gateway) AutoMigrate(ctx context.Context) error {
	if err := g.DB.WithContext(ctx).AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("auto migrate failed: %w", err)
	}
	return nil
}

// Close releases the database handle and the underlying pool
func (g *Gateway) Close() {
	if g.sql != nil {
		_ = g.sql.Close()
	}
	if g.pool != nil {
		g.pool.Close()
		return
	}
	if sqlDB, err := g.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
