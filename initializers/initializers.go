package initializers

import (
	"talentflow-backend/config"
	"talentflow-backend/fiberlog"
	assessmenthandler "talentflow-backend/lib/assessment"
	candidatehandler "talentflow-backend/lib/candidate"
	xlsexport "talentflow-backend/lib/export/xls"
	jobhandler "talentflow-backend/lib/job"
	seedhandler "talentflow-backend/lib/seed"
	"talentflow-backend/lib/simulator"
	"talentflow-backend/models"

	log "github.com/sirupsen/logrus"
)

var LoggerConfig *fiberlog.Config

func InitAllServices() {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	simulator.NewHandler()
	jobhandler.NewHandler()
	candidatehandler.NewHandler()
	assessmenthandler.NewHandler()
	xlsexport.NewHandler()
	seedhandler.NewHandler()
	runSeed()
}

func runSeed() {
	mode := models.SeedMode(config.Conf.Seed.Mode)
	if err := seedhandler.Instance.Run(mode); err != nil {
		log.WithError(err).Fatal("ошибка сидирования базы")
	}
}
