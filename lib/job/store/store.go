package jobstore

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	jobapimodels "talentflow-backend/models/api/job"
	dbmodels "talentflow-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Job) (id uint, err error)
	GetByID(id uint) (rec *dbmodels.Job, err error)
	Save(rec dbmodels.Job) error
	Update(id uint, updMap map[string]interface{}) error
	Delete(id uint) error
	List(filter jobapimodels.JobFilter) (list []dbmodels.Job, err error)
	Reorder(recs []dbmodels.Job) error
	Clear() error
	BulkCreate(recs []dbmodels.Job) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Job) (id uint, err error) {
	err = i.db.
		Create(&rec).
		Error
	if err != nil {
		return 0, err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id uint) (*dbmodels.Job, error) {
	rec := dbmodels.Job{}
	err := i.db.
		Model(&dbmodels.Job{}).
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

func (i impl) Save(rec dbmodels.Job) error {
	err := i.db.
		Save(&rec).
		Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) Update(id uint, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.Job{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("запись не найдена")
	}
	return nil
}

func (i impl) Delete(id uint) error {
	rec := dbmodels.Job{
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

// List отдаёт вакансии по статусу и подстроке названия, отсортированные
// по ручному порядку; фильтр по тегам и страницы применяет обработчик
func (i impl) List(filter jobapimodels.JobFilter) (list []dbmodels.Job, err error) {
	list = []dbmodels.Job{}
	tx := i.db.
		Model(dbmodels.Job{})
	i.addFilter(tx, filter)
	err = tx.
		Order("sort_order asc").
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

func (i impl) addFilter(tx *gorm.DB, filter jobapimodels.JobFilter) {
	if filter.Status != "" && filter.Status != "all" {
		tx = tx.Where("status = ?", filter.Status)
	}
	if filter.Search != "" {
		tx = tx.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(filter.Search)+"%")
	}
}

// Reorder переписывает sort_order всех переданных вакансий на их позицию
// в списке, одной транзакцией - либо применяется целиком, либо никак
func (i impl) Reorder(recs []dbmodels.Job) error {
	return i.db.Transaction(func(tx *gorm.DB) error {
		for idx, rec := range recs {
			res := tx.
				Model(&dbmodels.Job{}).
				Where("id = ?", rec.ID).
				Update("sort_order", idx)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return errors.Errorf("вакансия %v не найдена", rec.ID)
			}
		}
		return nil
	})
}

func (i impl) Clear() error {
	return i.db.
		Where("1 = 1").
		Delete(&dbmodels.Job{}).
		Error
}

func (i impl) BulkCreate(recs []dbmodels.Job) error {
	if len(recs) == 0 {
		return nil
	}
	return i.db.
		CreateInBatches(&recs, 100).
		Error
}
