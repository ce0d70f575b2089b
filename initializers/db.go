package initializers

import (
	"talentflow-backend/config"
	"talentflow-backend/db"
)

func InitDBConnection() {
	cfg := config.Conf.Database
	dsn := cfg.SqlitePath
	if cfg.Driver == db.DriverPostgres {
		dsn = db.PostgresDSN(cfg.Host, cfg.Port, cfg.Name, cfg.User, cfg.Password)
	}
	err := db.Connect(cfg.Driver, dsn, *cfg.DebugMode, *cfg.MigrateOnStart)
	if err != nil {
		panic(err.Error())
	}
}
