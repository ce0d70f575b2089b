package dbmodels

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/pkg/errors"
)

type Assessment struct {
	BaseModel
	JobID    uint        `gorm:"index" json:"jobId"` // слабая ссылка на вакансию, без FK
	Title    string      `gorm:"type:varchar(255)" json:"title"`
	Sections SectionList `gorm:"type:jsonb" json:"sections"`
}

type Section struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Questions   []Question `json:"questions"`
}

type SectionList []Section

func (j SectionList) Value() (driver.Value, error) {
	valueString, err := json.Marshal(j)
	return string(valueString), err
}

func (j *SectionList) Scan(value interface{}) error {
	return jsonScan(value, j)
}

// QuestionCount - общее число вопросов по всем секциям
func (j SectionList) QuestionCount() int {
	count := 0
	for _, section := range j {
		count += len(section.Questions)
	}
	return count
}

// FindQuestion ищет вопрос по ид во всех секциях
func (j SectionList) FindQuestion(questionID string) *Question {
	for si := range j {
		for qi := range j[si].Questions {
			if j[si].Questions[qi].ID == questionID {
				return &j[si].Questions[qi]
			}
		}
	}
	return nil
}

type Question struct {
	ID            string             `json:"id"`
	Text          string             `json:"text"`
	IsRequired    bool               `json:"isRequired"`
	Details       QuestionDetails    `json:"details"`
	Condition     *QuestionCondition `json:"condition,omitempty"` // вопрос виден только при совпадении ответа
	CorrectAnswer interface{}        `json:"correctAnswer,omitempty"`
}

type QuestionCondition struct {
	QuestionID string      `json:"questionId"`
	Value      interface{} `json:"value"`
}

func (q *Question) UnmarshalJSON(data []byte) error {
	type shadow struct {
		ID            string             `json:"id"`
		Text          string             `json:"text"`
		IsRequired    bool               `json:"isRequired"`
		Details       json.RawMessage    `json:"details"`
		Condition     *QuestionCondition `json:"condition"`
		CorrectAnswer interface{}        `json:"correctAnswer"`
	}
	var s shadow
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	details, err := UnmarshalQuestionDetails(s.Details)
	if err != nil {
		return errors.Wrapf(err, "вопрос %v", s.ID)
	}
	q.ID = s.ID
	q.Text = s.Text
	q.IsRequired = s.IsRequired
	q.Details = details
	q.Condition = s.Condition
	q.CorrectAnswer = s.CorrectAnswer
	return nil
}

type AssessmentResponse struct {
	BaseModel
	JobID       uint        `gorm:"index:idx_job_candidate" json:"jobId"`
	CandidateID uint        `gorm:"index:idx_job_candidate" json:"candidateId"`
	Responses   ResponseMap `gorm:"type:jsonb" json:"responses"`
	CompletedAt *time.Time  `json:"completedAt,omitempty"`
	Score       *float64    `json:"score,omitempty"`
}
