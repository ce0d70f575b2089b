package config

import (
	"github.com/gotify/configor"
)

var Conf *Configuration

type Configuration struct {
	App struct {
		ListenAddr string `default:"" env:"APP_HOST"`
		Port       int    `default:"8080"  env:"APP_PORT"`
	}
	Database struct {
		Driver         string `default:"sqlite" env:"DB_DRIVER"` // sqlite | postgres
		SqlitePath     string `default:"talentflow.db" env:"DB_SQLITE_PATH"`
		Host           string `default:"127.0.0.1" env:"DB_HOST"`
		Port           string `default:"5432" env:"DB_PORT"`
		Name           string `default:"talentflow" env:"DB_NAME"`
		User           string `default:"postgres" env:"DB_USER"`
		Password       string `default:"postgres" env:"DB_PASSWORD"`
		MigrateOnStart *bool  `default:"true" env:"DB_MIGRATE_ON_START"`
		DebugMode      *bool  `default:"false" env:"DB_DEBUG_MODE"`
	}
	Seed struct {
		Mode       string `default:"if_empty" env:"SEED_MODE"` // if_empty | force | off
		RandomSeed int64  `default:"0" env:"SEED_RANDOM_SEED"` // 0 = от текущего времени
	}
	Simulator struct {
		Enabled    *bool   `default:"true" env:"SIM_ENABLED"`
		MinDelayMs int     `default:"200" env:"SIM_MIN_DELAY_MS"`
		MaxDelayMs int     `default:"1200" env:"SIM_MAX_DELAY_MS"`
		ErrorRate  float64 `default:"0.075" env:"SIM_ERROR_RATE"`
	}
}

func configFiles() []string {
	return []string{"config.yml"}
}

func InitConfig() {
	if Conf != nil {
		return
	}
	conf := new(Configuration)
	err := configor.New(&configor.Config{}).Load(conf, configFiles()...)
	if err != nil {
		panic(err)
	}
	Conf = conf
}
