package candidateapimodels

import (
	"github.com/pkg/errors"
	"talentflow-backend/models"
	dbmodels "talentflow-backend/models/db"
)

// CandidateData - полное тело кандидата для полной замены по ид
type CandidateData struct {
	JobID        uint                  `json:"jobId"`
	Name         string                `json:"name"`
	Email        string                `json:"email"`
	SortOrder    int                   `json:"order"`
	CurrentStage models.CandidateStage `json:"currentStage"`
	StageHistory dbmodels.StageHistory `json:"stageHistory"`
	Notes        dbmodels.NoteList     `json:"notes"`
}

func (d CandidateData) Validate() error {
	if d.Name == "" {
		return errors.New("не указано имя кандидата")
	}
	if d.Email == "" {
		return errors.New("не указан email кандидата")
	}
	if d.JobID == 0 {
		return errors.New("не указан идентификатор вакансии")
	}
	if !d.CurrentStage.IsValid() {
		return errors.Errorf("неизвестный этап %q", d.CurrentStage)
	}
	return nil
}

func (d CandidateData) ToRec(id uint) dbmodels.Candidate {
	return dbmodels.Candidate{
		BaseModel: dbmodels.BaseModel{
			ID: id,
		},
		JobID:        d.JobID,
		Name:         d.Name,
		Email:        d.Email,
		SortOrder:    d.SortOrder,
		CurrentStage: d.CurrentStage,
		StageHistory: d.StageHistory,
		Notes:        d.Notes,
	}
}

// CandidateFilter - параметры списка кандидатов вакансии
type CandidateFilter struct {
	Stage string `query:"stage"` // точное совпадение или all
}

func (f CandidateFilter) Validate() error {
	if f.Stage != "" && f.Stage != models.StageAll && !models.CandidateStage(f.Stage).IsValid() {
		return errors.Errorf("неизвестный этап %q", f.Stage)
	}
	return nil
}

type NoteRequest struct {
	NoteText string `json:"noteText"`
}

func (r NoteRequest) Validate() error {
	if r.NoteText == "" {
		return errors.New("не указан текст заметки")
	}
	return nil
}
