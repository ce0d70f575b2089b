package assessmentapimodels

import (
	"time"

	"github.com/pkg/errors"
	dbmodels "talentflow-backend/models/db"
)

// AssessmentData - тело опросника для создания и полной замены
type AssessmentData struct {
	Title    string               `json:"title"`
	Sections dbmodels.SectionList `json:"sections"`
}

func (d AssessmentData) Validate() error {
	if d.Title == "" {
		return errors.New("не указано название опросника")
	}
	for _, section := range d.Sections {
		if section.Title == "" {
			return errors.New("в одной из секций опросника отсутствует название")
		}
		for _, question := range section.Questions {
			if err := validateQuestion(question, d.Sections); err != nil {
				return err
			}
		}
	}
	return nil
}

// validateQuestion проверяет поля варианта и ссылку условия видимости:
// условие должно указывать на существующий вопрос этого же опросника
// (допустимо из другой секции), но не на сам вопрос
func validateQuestion(question dbmodels.Question, sections dbmodels.SectionList) error {
	if question.Text == "" {
		return errors.Errorf("в вопросе %v отсутствует текст", question.ID)
	}
	if question.Details == nil {
		return errors.Errorf("в вопросе %v отсутствует описание типа", question.ID)
	}
	switch details := question.Details.(type) {
	case dbmodels.SingleChoiceDetails:
		if len(details.Options) == 0 {
			return errors.Errorf("в вопросе %v с одиночным выбором нет вариантов ответа", question.ID)
		}
	case dbmodels.MultiChoiceDetails:
		if len(details.Options) == 0 {
			return errors.Errorf("в вопросе %v с множественным выбором нет вариантов ответа", question.ID)
		}
	case dbmodels.NumericDetails:
		if details.Min != nil && details.Max != nil && *details.Min > *details.Max {
			return errors.Errorf("в числовом вопросе %v минимум больше максимума", question.ID)
		}
	}
	if question.Condition != nil {
		if question.Condition.QuestionID == question.ID {
			return errors.Errorf("условие видимости вопроса %v ссылается на самого себя", question.ID)
		}
		if sections.FindQuestion(question.Condition.QuestionID) == nil {
			return errors.Errorf("условие видимости вопроса %v ссылается на несуществующий вопрос %v",
				question.ID, question.Condition.QuestionID)
		}
	}
	return nil
}

func (d AssessmentData) ToRec(id, jobID uint) dbmodels.Assessment {
	return dbmodels.Assessment{
		BaseModel: dbmodels.BaseModel{
			ID: id,
		},
		JobID:    jobID,
		Title:    d.Title,
		Sections: d.Sections,
	}
}

// ResponseData - тело отправки ответов на опросник,
// повторные отправки не дедуплицируются
type ResponseData struct {
	JobID       uint                 `json:"jobId"`
	CandidateID uint                 `json:"candidateId"`
	Responses   dbmodels.ResponseMap `json:"responses"`
	CompletedAt *time.Time           `json:"completedAt"`
	Score       *float64             `json:"score"`
}

func (d ResponseData) Validate() error {
	if d.JobID == 0 {
		return errors.New("не указан идентификатор вакансии")
	}
	if d.CandidateID == 0 {
		return errors.New("не указан идентификатор кандидата")
	}
	if len(d.Responses) == 0 {
		return errors.New("не переданы ответы на вопросы")
	}
	return nil
}

func (d ResponseData) ToRec() dbmodels.AssessmentResponse {
	return dbmodels.AssessmentResponse{
		JobID:       d.JobID,
		CandidateID: d.CandidateID,
		Responses:   d.Responses,
		CompletedAt: d.CompletedAt,
		Score:       d.Score,
	}
}
