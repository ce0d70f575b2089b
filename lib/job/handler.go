package jobhandler

import (
	"sort"

	"github.com/pkg/errors"
	"talentflow-backend/db"
	jobstore "talentflow-backend/lib/job/store"
	jobapimodels "talentflow-backend/models/api/job"
	dbmodels "talentflow-backend/models/db"
)

type Provider interface {
	Create(data jobapimodels.JobData) (rec *dbmodels.Job, err error)
	GetByID(id uint) (rec *dbmodels.Job, err error)
	Update(id uint, data jobapimodels.JobData) (rec *dbmodels.Job, err error)
	Patch(id uint, patch jobapimodels.JobPatch) (rec *dbmodels.Job, err error)
	Delete(id uint) error
	List(filter jobapimodels.JobFilter) (list []dbmodels.Job, totalCount int, err error)
	Reorder(data jobapimodels.ReorderRequest) error
	TagList() (tags []string, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: jobstore.NewInstance(db.DB),
	}
}

type impl struct {
	store jobstore.Provider
}

func (i impl) Create(data jobapimodels.JobData) (*dbmodels.Job, error) {
	rec := data.ToRec()
	id, err := i.store.Create(rec)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка создания вакансии")
	}
	return i.store.GetByID(id)
}

func (i impl) GetByID(id uint) (*dbmodels.Job, error) {
	return i.store.GetByID(id)
}

func (i impl) Update(id uint, data jobapimodels.JobData) (*dbmodels.Job, error) {
	existedRec, err := i.store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existedRec == nil {
		return nil, nil
	}
	rec := data.ToRec()
	rec.ID = id
	rec.CreatedAt = existedRec.CreatedAt
	err = i.store.Save(rec)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка изменения вакансии")
	}
	return i.store.GetByID(id)
}

func (i impl) Patch(id uint, patch jobapimodels.JobPatch) (*dbmodels.Job, error) {
	existedRec, err := i.store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existedRec == nil {
		return nil, nil
	}
	err = i.store.Update(id, patch.ToUpdMap())
	if err != nil {
		return nil, errors.Wrap(err, "ошибка частичного обновления вакансии")
	}
	return i.store.GetByID(id)
}

// Delete удаляет только вакансию, кандидаты и опросники остаются
// со ссылкой на удалённый jobId
func (i impl) Delete(id uint) error {
	return i.store.Delete(id)
}

// List применяет поверх выборки стора AND-фильтр по тегам и страницы;
// totalCount - кол-во после фильтров, без учёта страницы
func (i impl) List(filter jobapimodels.JobFilter) ([]dbmodels.Job, int, error) {
	list, err := i.store.List(filter)
	if err != nil {
		return nil, 0, errors.Wrap(err, "ошибка получения списка вакансий")
	}
	if len(filter.Tags) > 0 {
		filtered := make([]dbmodels.Job, 0, len(list))
		for _, rec := range list {
			if rec.HasAllTags(filter.Tags) {
				filtered = append(filtered, rec)
			}
		}
		list = filtered
	}
	totalCount := len(list)
	page, pageSize := filter.GetPage()
	from := (page - 1) * pageSize
	if from >= len(list) {
		return []dbmodels.Job{}, totalCount, nil
	}
	to := from + pageSize
	if to > len(list) {
		to = len(list)
	}
	return list[from:to], totalCount, nil
}

func (i impl) Reorder(data jobapimodels.ReorderRequest) error {
	err := i.store.Reorder(data.ReorderedJobs)
	if err != nil {
		return errors.Wrap(err, "ошибка пересортировки вакансий")
	}
	return nil
}

// TagList - отсортированный список уникальных тегов по всем вакансиям
func (i impl) TagList() ([]string, error) {
	list, err := i.store.List(jobapimodels.JobFilter{})
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения списка тегов")
	}
	tagSet := map[string]bool{}
	for _, rec := range list {
		for _, tag := range rec.Tags {
			tagSet[tag] = true
		}
	}
	tags := make([]string, 0, len(tagSet))
	for tag := range tagSet {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags, nil
}
