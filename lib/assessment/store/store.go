package assessmentstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	dbmodels "talentflow-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Assessment) (id uint, err error)
	GetByID(id uint) (rec *dbmodels.Assessment, err error)
	Save(rec dbmodels.Assessment) error
	Delete(id uint) error
	ListByJob(jobID uint) (list []dbmodels.Assessment, err error)
	Clear() error
	BulkCreate(recs []dbmodels.Assessment) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Assessment) (id uint, err error) {
	err = i.db.
		Create(&rec).
		Error
	if err != nil {
		return 0, err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id uint) (*dbmodels.Assessment, error) {
	rec := dbmodels.Assessment{}
	err := i.db.
		Model(&dbmodels.Assessment{}).
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

func (i impl) Save(rec dbmodels.Assessment) error {
	err := i.db.
		Save(&rec).
		Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) Delete(id uint) error {
	rec := dbmodels.Assessment{
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

func (i impl) ListByJob(jobID uint) (list []dbmodels.Assessment, err error) {
	list = []dbmodels.Assessment{}
	err = i.db.
		Model(dbmodels.Assessment{}).
		Where("job_id = ?", jobID).
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
		Delete(&dbmodels.Assessment{}).
		Error
}

func (i impl) BulkCreate(recs []dbmodels.Assessment) error {
	if len(recs) == 0 {
		return nil
	}
	return i.db.
		CreateInBatches(&recs, 100).
		Error
}
