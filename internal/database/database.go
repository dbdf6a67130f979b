package database

import (
	"time"

	"github.com/sanchara/sanchara/internal/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// NewDatabase opens the events store with the given config.
func NewDatabase(cfg *config.DBConfig, lg *zap.SugaredLogger) (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)

	logLevel, lerr := zapcore.ParseLevel(cfg.LogLevel)
	if lerr != nil {
		logLevel = zapcore.InfoLevel
	}

	for i := 0; i <= 5; i++ {
		db, err = gorm.Open(postgres.New(postgres.Config{
			DSN:                  cfg.DataSource,
			PreferSimpleProtocol: !cfg.PrepareStmt,
		}), &gorm.Config{
			Logger: NewLogger(time.Second, true, logLevel),
			NamingStrategy: schema.NamingStrategy{
				TablePrefix:   "sanchara.",
				SingularTable: false,
			},
			NowFunc: func() time.Time {
				return time.Now().UTC()
			},
		})
		if err == nil {
			break
		}
		lg.Warnf("failed to open database: %v", err)
		time.Sleep(500 * time.Millisecond)
	}

	if err != nil {
		return nil, err
	}

	if cfg.Pool.Enable {
		rawDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		rawDB.SetMaxOpenConns(cfg.Pool.MaxOpenConnections)
		rawDB.SetMaxIdleConns(cfg.Pool.MaxIdleConnections)
		rawDB.SetConnMaxLifetime(cfg.Pool.MaxLifetime)
	}

	return db, nil
}
