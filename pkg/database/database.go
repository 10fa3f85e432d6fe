package database

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"smart_learning_path/internal/config"
	"smart_learning_path/internal/model"
	"smart_learning_path/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

func dialector(cfg *config.StoreConfig) (gorm.Dialector, error) {
	switch cfg.Driver {
	case config.StoreMySQL:
		if cfg.DSN == "" {
			return nil, fmt.Errorf("store.dsn is required for mysql")
		}
		return mysql.Open(cfg.DSN), nil
	case config.StorePostgres:
		if cfg.DSN == "" {
			return nil, fmt.Errorf("store.dsn is required for postgres")
		}
		return postgres.Open(cfg.DSN), nil
	case config.StoreSQLite:
		path := cfg.DSN
		if path == "" {
			path = cfg.SQLitePath
		}
		if path != ":memory:" && !strings.HasPrefix(path, "file:") {
			if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
				return nil, err
			}
		}
		return sqlite.Open(path), nil
	default:
		return nil, fmt.Errorf("store driver %q is not a SQL driver", cfg.Driver)
	}
}

// IsSQLDriver reports whether driver is served by gorm.
func IsSQLDriver(driver string) bool {
	switch driver {
	case config.StoreMySQL, config.StorePostgres, config.StoreSQLite:
		return true
	}
	return false
}

// InitDB opens the configured SQL database and migrates the learning path table.
func InitDB(cfg *config.StoreConfig, debug bool) (*gorm.DB, error) {
	d, err := dialector(cfg)
	if err != nil {
		return nil, err
	}

	level := gormLogger.Warn
	if debug {
		level = gormLogger.Info
	}
	gormLog := gormLogger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		gormLogger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  level,
			IgnoreRecordNotFoundError: true,
		},
	)

	db, err := gorm.Open(d, &gorm.Config{Logger: gormLog})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		_ = CloseDB(db)
		return nil, err
	}
	if cfg.Driver == config.StoreSQLite {
		// sqlite 只允许单写连接
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(25)
		sqlDB.SetMaxIdleConns(5)
		sqlDB.SetConnMaxLifetime(30 * time.Minute)
	}

	logger.Log.Info("Database connection established", zap.String("driver", cfg.Driver))

	if err := autoMigrate(db); err != nil {
		// 迁移失败时释放连接池
		if cerr := CloseDB(db); cerr != nil {
			logger.Log.Warn("closing database after failed migration", zap.Error(cerr))
		}
		return nil, err
	}

	logger.Log.Info("Database migration completed")
	return db, nil
}

var autoMigrate = func(db *gorm.DB) error {
	return db.AutoMigrate(&model.LearningPathRecord{})
}

// CloseDB releases the pool behind db.
func CloseDB(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
