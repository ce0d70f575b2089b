package db

import (
	"fmt"

	"github.com/glebarez/sqlite"
	gorm_logrus "github.com/onrik/gorm-logrus"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DriverSqlite   = "sqlite"
	DriverPostgres = "postgres"
)

var DB *gorm.DB

// Connect открывает соединение с БД, driver: sqlite (встроенная, файл dsn) или postgres
func Connect(driver, dsn string, debugMode bool, migrate bool) (err error) {
	if DB == nil {
		var dialector gorm.Dialector
		switch driver {
		case DriverSqlite:
			dialector = sqlite.Open(dsn)
		case DriverPostgres:
			dialector = postgres.Open(dsn)
		default:
			return errors.Errorf("неизвестный драйвер БД %q", driver)
		}
		db, err := gorm.Open(dialector, &gorm.Config{
			Logger: gorm_logrus.New(),
		})
		if err != nil {
			return errors.Wrap(err, "Ошибка подключения к БД")
		}
		if debugMode {
			db.Logger = logger.Default.LogMode(logger.Info)
			DB = db.Debug()
		} else {
			DB = db
		}
		if migrate {
			err = AutoMigrateDB()
			if err != nil {
				return err
			}
		}
		log.Info("Сервис успешно подключен к БД")
	}
	return err
}

// PostgresDSN собирает строку подключения для драйвера postgres
func PostgresDSN(host, port, database, user, pass string) string {
	return fmt.Sprintf("host=%s port=%s user=%s dbname=%s sslmode=disable password=%s",
		host, port, user, database, pass)
}

func PingDB() error {
	db, err := DB.DB()
	if err != nil {
		return err
	}
	if err = db.Ping(); err != nil {
		return err
	}
	return nil
}
