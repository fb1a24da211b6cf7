package postgres

import (
	"context"
	"fmt"
	"sync"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Config struct {
	URL             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	LogQueries      bool
}

// Open connects to Postgres through gorm, applies pool settings and verifies
// the connection.
func Open(ctx context.Context, cfg Config) (*gorm.DB, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("postgres URL cannot be empty")
	}

	gormCfg := &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)}
	if cfg.LogQueries {
		gormCfg.Logger = logger.Default.LogMode(logger.Info)
	}

	db, err := gorm.Open(postgres.Open(cfg.URL), gormCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql handle: %w", err)
	}

	// Pool settings
	if cfg.MaxOpenConns == 0 {
		cfg.MaxOpenConns = 10
	}
	if cfg.MaxIdleConns == 0 {
		cfg.MaxIdleConns = cfg.MaxOpenConns
	}
	if cfg.ConnMaxLifetime == 0 {
		cfg.ConnMaxLifetime = 30 * time.Minute
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	// Ping with timeout
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}

	return db, nil
}

// Lazy holds the process-wide gorm handle. Construct it once at startup; the
// first Get opens the pool and every later Get reuses it. Failed opens are
// retried by the next caller.
type Lazy struct {
	config Config
	open   func(context.Context, Config) (*gorm.DB, error)

	mu sync.Mutex
	db *gorm.DB
}

func NewLazy(cfg Config) *Lazy {
	return &Lazy{config: cfg, open: Open}
}

// Get returns the shared handle bound to ctx.
func (l *Lazy) Get(ctx context.Context) (*gorm.DB, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.db == nil {
		db, err := l.open(ctx, l.config)
		if err != nil {
			return nil, err
		}
		l.db = db
	}
	return l.db.WithContext(ctx), nil
}

// Ping opens the pool if needed and pings it.
func (l *Lazy) Ping(ctx context.Context) error {
	db, err := l.Get(ctx)
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close releases the pool if it was ever opened.
func (l *Lazy) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.db == nil {
		return nil
	}
	sqlDB, err := l.db.DB()
	l.db = nil
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
