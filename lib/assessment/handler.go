package assessmenthandler

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"talentflow-backend/db"
	responsestore "talentflow-backend/lib/assessment/response-store"
	assessmentstore "talentflow-backend/lib/assessment/store"
	assessmentapimodels "talentflow-backend/models/api/assessment"
	dbmodels "talentflow-backend/models/db"
)

type Provider interface {
	Create(jobID uint, data assessmentapimodels.AssessmentData) (rec *dbmodels.Assessment, err error)
	GetByID(id uint) (rec *dbmodels.Assessment, err error)
	Update(id uint, data assessmentapimodels.AssessmentData) (rec *dbmodels.Assessment, err error)
	Delete(id uint) error
	ListByJob(jobID uint) (list []dbmodels.Assessment, err error)
	SubmitResponse(data assessmentapimodels.ResponseData) (rec *dbmodels.AssessmentResponse, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:         assessmentstore.NewInstance(db.DB),
		responseStore: responsestore.NewInstance(db.DB),
	}
}

type impl struct {
	store         assessmentstore.Provider
	responseStore responsestore.Provider
}

func (i impl) Create(jobID uint, data assessmentapimodels.AssessmentData) (*dbmodels.Assessment, error) {
	rec := data.ToRec(0, jobID)
	fillSectionIDs(rec.Sections)
	id, err := i.store.Create(rec)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка создания опросника")
	}
	return i.store.GetByID(id)
}

func (i impl) GetByID(id uint) (*dbmodels.Assessment, error) {
	return i.store.GetByID(id)
}

func (i impl) Update(id uint, data assessmentapimodels.AssessmentData) (*dbmodels.Assessment, error) {
	existedRec, err := i.store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existedRec == nil {
		return nil, nil
	}
	rec := data.ToRec(id, existedRec.JobID)
	rec.CreatedAt = existedRec.CreatedAt
	fillSectionIDs(rec.Sections)
	err = i.store.Save(rec)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка изменения опросника")
	}
	return i.store.GetByID(id)
}

func (i impl) Delete(id uint) error {
	return i.store.Delete(id)
}

func (i impl) ListByJob(jobID uint) ([]dbmodels.Assessment, error) {
	list, err := i.store.ListByJob(jobID)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения списка опросников")
	}
	return list, nil
}

func (i impl) SubmitResponse(data assessmentapimodels.ResponseData) (*dbmodels.AssessmentResponse, error) {
	id, err := i.responseStore.Create(data.ToRec())
	if err != nil {
		return nil, errors.Wrap(err, "ошибка сохранения ответов на опросник")
	}
	return i.responseStore.GetByID(id)
}

// fillSectionIDs выдаёт ид секциям и вопросам, пришедшим без него
func fillSectionIDs(sections dbmodels.SectionList) {
	for si := range sections {
		if sections[si].ID == "" {
			sections[si].ID = "section-" + uuid.NewString()
		}
		for qi := range sections[si].Questions {
			if sections[si].Questions[qi].ID == "" {
				sections[si].Questions[qi].ID = "question-" + uuid.NewString()
			}
		}
	}
}
