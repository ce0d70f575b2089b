package responsestore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	dbmodels "talentflow-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.AssessmentResponse) (id uint, err error)
	GetByID(id uint) (rec *dbmodels.AssessmentResponse, err error)
	ListByJobAndCandidate(jobID, candidateID uint) (list []dbmodels.AssessmentResponse, err error)
	Clear() error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.AssessmentResponse) (id uint, err error) {
	err = i.db.
		Create(&rec).
		Error
	if err != nil {
		return 0, err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id uint) (*dbmodels.AssessmentResponse, error) {
	rec := dbmodels.AssessmentResponse{}
	err := i.db.
		Model(&dbmodels.AssessmentResponse{}).
		Where("id = ?", id).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) ListByJobAndCandidate(jobID, candidateID uint) (list []dbmodels.AssessmentResponse, err error) {
	list = []dbmodels.AssessmentResponse{}
	err = i.db.
		Model(dbmodels.AssessmentResponse{}).
		Where("job_id = ?", jobID).
		Where("candidate_id = ?", candidateID).
		Find(&list).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}

func (i impl) Clear() error {
	return i.db.
		Where("1 = 1").
		Delete(&dbmodels.AssessmentResponse{}).
		Error
}
