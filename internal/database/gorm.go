package database

import (
	"fmt"
	"time"

	"cupcake-api/internal/config"

	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// OpenGorm opens a gorm connection for the gorm-backed drivers.
func OpenGorm(cfg config.DatabaseConfig, logger zerolog.Logger) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case config.DriverSQLite:
		dialector = sqlite.Open(cfg.SQLitePath)
	case config.DriverGormPostgres:
		dialector = postgres.Open(cfg.ConnectionString())
	default:
		return nil, fmt.Errorf("unsupported gorm driver: %s", cfg.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: NewGormLogger(logger),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", cfg.Driver, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access connection pool: %w", err)
	}

	if cfg.Driver == config.DriverSQLite {
		// an in-memory database lives only as long as its single connection
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(cfg.MaxConnections)
		sqlDB.SetMaxIdleConns(cfg.MinConnections)
		sqlDB.SetConnMaxLifetime(time.Duration(cfg.MaxConnLifetime) * time.Second)
	}

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info().
		Str("driver", cfg.Driver).
		Msg("gorm connection opened successfully")

	return db, nil
}

// CloseGorm releases the connection pool behind db.
func CloseGorm(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// gormWriter routes gorm's log lines into zerolog.
type gormWriter struct {
	logger zerolog.Logger
}

func (w gormWriter) Printf(format string, args ...interface{}) {
	w.logger.Debug().Msgf(format, args...)
}

// NewGormLogger adapts a zerolog logger for gorm. SQL traces are emitted at
// debug level; slow queries are reported above 200ms.
func NewGormLogger(logger zerolog.Logger) gormlogger.Interface {
	level := gormlogger.Warn
	if logger.GetLevel() <= zerolog.DebugLevel {
		level = gormlogger.Info
	}

	return gormlogger.New(
		gormWriter{logger: logger.With().Str("component", "gorm").Logger()},
		gormlogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  level,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)
}
