package seedhandler

import (
	"math/rand"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"talentflow-backend/config"
	"talentflow-backend/db"
	"talentflow-backend/lib/metrics"
	"talentflow-backend/models"
	dbmodels "talentflow-backend/models/db"
)

type Provider interface {
	Run(mode models.SeedMode) error
}

var Instance Provider

func NewHandler() {
	Instance = NewInstance(db.DB, config.Conf.Seed.RandomSeed)
}

// NewInstance создаёт генератор тестовых данных; randomSeed = 0 - брать
// зерно от текущего времени, иначе генерация воспроизводима
func NewInstance(DB *gorm.DB, randomSeed int64) Provider {
	if randomSeed == 0 {
		randomSeed = time.Now().UnixNano()
	}
	return &impl{
		db:  DB,
		rnd: rand.New(rand.NewSource(randomSeed)),
	}
}

type impl struct {
	db  *gorm.DB
	rnd *rand.Rand
}

// Run наполняет базу по политике mode: off - никогда, if_empty - только
// при пустой коллекции вакансий, force - всегда, с очисткой всех коллекций.
// Вся запись идёт одной транзакцией - либо полный набор, либо ничего
func (i *impl) Run(mode models.SeedMode) error {
	switch mode {
	case models.SeedModeOff:
		log.Info("сидирование выключено")
		return nil
	case models.SeedModeIfEmpty:
		var count int64
		err := i.db.Model(&dbmodels.Job{}).Count(&count).Error
		if err != nil {
			return errors.Wrap(err, "не удалось проверить коллекцию вакансий")
		}
		if count > 0 {
			log.WithField("jobs", count).Info("база не пуста, сидирование пропущено")
			return nil
		}
	case models.SeedModeForce:
	default:
		return errors.Errorf("неизвестный режим сидирования: %v", mode)
	}

	start := time.Now()
	var jobs []dbmodels.Job
	var candidates []dbmodels.Candidate
	var assessments []dbmodels.Assessment

	err := i.db.Transaction(func(tx *gorm.DB) error {
		for _, model := range []interface{}{
			&dbmodels.AssessmentResponse{},
			&dbmodels.Assessment{},
			&dbmodels.Candidate{},
			&dbmodels.Job{},
		} {
			if err := tx.Where("1 = 1").Delete(model).Error; err != nil {
				return errors.Wrap(err, "не удалось очистить коллекцию")
			}
		}

		jobs = i.genJobs()
		if err := tx.CreateInBatches(&jobs, 100).Error; err != nil {
			return errors.Wrap(err, "не удалось записать вакансии")
		}

		candidates = i.genCandidates(jobs)
		if err := tx.CreateInBatches(&candidates, 100).Error; err != nil {
			return errors.Wrap(err, "не удалось записать кандидатов")
		}

		assessments = i.genAssessments(jobs)
		if err := tx.CreateInBatches(&assessments, 100).Error; err != nil {
			return errors.Wrap(err, "не удалось записать опросники")
		}
		return nil
	})
	if err != nil {
		return err
	}

	metrics.SeededEntities.WithLabelValues("jobs").Set(float64(len(jobs)))
	metrics.SeededEntities.WithLabelValues("candidates").Set(float64(len(candidates)))
	metrics.SeededEntities.WithLabelValues("assessments").Set(float64(len(assessments)))

	log.WithFields(log.Fields{
		"jobs":        len(jobs),
		"candidates":  len(candidates),
		"assessments": len(assessments),
		"elapsed":     time.Since(start).String(),
	}).Info("сидирование завершено")
	return nil
}
