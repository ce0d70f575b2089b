package dbmodels

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"talentflow-backend/models"
)

type Candidate struct {
	BaseModel
	JobID        uint                  `gorm:"index" json:"jobId"` // слабая ссылка на вакансию, без FK
	Name         string                `gorm:"type:varchar(255)" json:"name"`
	Email        string                `gorm:"type:varchar(255)" json:"email"`
	SortOrder    int                   `json:"order"` // позиция в колонке этапа на канбане
	CurrentStage models.CandidateStage `gorm:"type:varchar(50);index" json:"currentStage"`
	StageHistory StageHistory          `gorm:"type:jsonb" json:"stageHistory"`
	Notes        NoteList              `gorm:"type:jsonb" json:"notes,omitempty"`
}

type StageHistoryEntry struct {
	Stage     models.CandidateStage `json:"stage"`
	Timestamp time.Time             `json:"timestamp"`
}

type StageHistory []StageHistoryEntry

func (j StageHistory) Value() (driver.Value, error) {
	valueString, err := json.Marshal(j)
	return string(valueString), err
}

func (j *StageHistory) Scan(value interface{}) error {
	return jsonScan(value, j)
}

// LastStage - этап последней записи истории, пустой для пустой истории
func (j StageHistory) LastStage() models.CandidateStage {
	if len(j) == 0 {
		return ""
	}
	return j[len(j)-1].Stage
}

type Note struct {
	NoteID    int64     `json:"noteId"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

type NoteList []Note

func (j NoteList) Value() (driver.Value, error) {
	valueString, err := json.Marshal(j)
	return string(valueString), err
}

func (j *NoteList) Scan(value interface{}) error {
	return jsonScan(value, j)
}

func (j NoteList) Contains(noteID int64) bool {
	for _, note := range j {
		if note.NoteID == noteID {
			return true
		}
	}
	return false
}
