package app

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/yizeng/gab/gin/gorm/party-venue/internal/api"
	"github.com/yizeng/gab/gin/gorm/party-venue/internal/config"
	"github.com/yizeng/gab/gin/gorm/party-venue/internal/db"
	"github.com/yizeng/gab/gin/gorm/party-venue/internal/logger"
	"github.com/yizeng/gab/gin/gorm/party-venue/internal/repository/dao"
	"github.com/yizeng/gab/gin/gorm/party-venue/internal/repository/dao/sqlite"
)

const configPath = "./cmd/app/config.yml"

func Start() error {
	conf, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config -> %w", err)
	}

	if err = logger.Init(conf.API.Environment); err != nil {
		return fmt.Errorf("failed to initialize logger -> %w", err)
	}
	if err = logger.SetLevel(conf.Log.Level); err != nil {
		return fmt.Errorf("failed to set log level -> %w", err)
	}
	defer zap.L().Sync() //nolint:errcheck

	if err = config.Watch(configPath, applyLogLevel, func(err error) {
		zap.L().Warn("ignoring invalid config change", zap.Error(err))
	}); err != nil {
		return fmt.Errorf("failed to watch config -> %w", err)
	}

	storage, closeStorage, err := openStorage(conf)
	if err != nil {
		return fmt.Errorf("failed to initialize database -> %w", err)
	}
	defer closeStorage()

	s := api.NewServer(conf, storage)

	addr := ":" + s.Config.API.Port
	zap.L().Info(fmt.Sprintf("starting server at %v", addr), zap.String("driver", conf.Database.Driver))
	if err = s.Router.Run(addr); err != nil {
		return fmt.Errorf("failed to start the server -> %w", err)
	}

	return nil
}

// openStorage opens the configured database. DATABASE_URL, when set, selects
// postgres regardless of the configured driver.
func openStorage(conf *config.AppConfig) (api.Storage, func(), error) {
	dbURL := os.Getenv("DATABASE_URL")

	if dbURL == "" && conf.Database.Driver == config.DriverSQLite {
		sqlDB, err := db.OpenSQLite(context.Background(), conf.SQLite.Path)
		if err != nil {
			return api.Storage{}, nil, err
		}

		storage := api.Storage{
			Celebrants: sqlite.NewCelebrantDAO(sqlDB),
			Bookings:   sqlite.NewBookingDAO(sqlDB),
		}
		return storage, func() { sqlDB.Close() }, nil
	}

	var (
		postgresDB *gorm.DB
		err        error
	)
	if dbURL != "" {
		postgresDB, err = db.OpenPostgresWithURL(dbURL)
	} else {
		postgresDB, err = db.OpenPostgres(conf.Postgres)
	}
	if err != nil {
		return api.Storage{}, nil, err
	}

	storage := api.Storage{
		Celebrants: dao.NewCelebrantDAO(postgresDB),
		Bookings:   dao.NewBookingDAO(postgresDB),
	}
	closeDB := func() {
		if sqlDB, err := postgresDB.DB(); err == nil {
			sqlDB.Close()
		}
	}
	return storage, closeDB, nil
}

func applyLogLevel(conf *config.AppConfig) {
	if conf.Log.Level == logger.Level().String() {
		return
	}

	if err := logger.SetLevel(conf.Log.Level); err != nil {
		zap.L().Warn("could not apply log level", zap.Error(err))
		return
	}
	zap.L().Info("log level changed", zap.String("level", conf.Log.Level))
}
