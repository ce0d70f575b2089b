package candidatestore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	dbmodels "talentflow-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Candidate) (id uint, err error)
	GetByID(id uint) (rec *dbmodels.Candidate, err error)
	Save(rec dbmodels.Candidate) error
	Delete(id uint) error
	ListByJob(jobID uint, stage string) (list []dbmodels.Candidate, err error)
	Clear() error
	BulkCreate(recs []dbmodels.Candidate) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Candidate) (id uint, err error) {
	err = i.db.
		Create(&rec).
		Error
	if err != nil {
		return 0, err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id uint) (*dbmodels.Candidate, error) {
	rec := dbmodels.Candidate{}
	err := i.db.
		Model(&dbmodels.Candidate{}).
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

func (i impl) Save(rec dbmodels.Candidate) error {
	err := i.db.
		Save(&rec).
		Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) Delete(id uint) error {
	rec := dbmodels.Candidate{
		BaseModel: dbmodels.BaseModel{ID: id},
	}
	err := i.db.
		Delete(&rec).
		Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) ListByJob(jobID uint, stage string) (list []dbmodels.Candidate, err error) {
	list = []dbmodels.Candidate{}
	tx := i.db.
		Model(dbmodels.Candidate{}).
		Where("job_id = ?", jobID)
	if stage != "" && stage != "all" {
		tx = tx.Where("current_stage = ?", stage)
	}
	err = tx.Find(&list).Error
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
		Delete(&dbmodels.Candidate{}).
		Error
}

func (i impl) BulkCreate(recs []dbmodels.Candidate) error {
	if len(recs) == 0 {
		return nil
	}
	return i.db.
		CreateInBatches(&recs, 100).
		Error
}
