package database

import (
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/lolbd307-png/osamendibet25bd/config"
	"github.com/lolbd307-png/osamendibet25bd/models"
)

var DB *gorm.DB

func Connect(cfg *config.Config) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		logrus.WithError(err).Fatal("failed to connect to database")
	}

	DB = db
	logrus.Info("connected to database")

	if cfg.DBMigrate {
		if err := Migrate(db); err != nil {
			logrus.WithError(err).Fatal("failed to auto-migrate database")
		}
		logrus.Info("auto migration completed")
	}
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Profile{},
		&models.GameSession{},
		&models.BetHistoryRecord{},
		&models.DailyBonusClaim{},
		&models.ReferralClaim{},
		&models.WalletTransaction{},
	)
}
