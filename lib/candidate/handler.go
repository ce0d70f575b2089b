package candidatehandler

import (
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"talentflow-backend/db"
	candidatestore "talentflow-backend/lib/candidate/store"
	candidateapimodels "talentflow-backend/models/api/candidate"
	dbmodels "talentflow-backend/models/db"
)

type Provider interface {
	GetByID(id uint) (rec *dbmodels.Candidate, err error)
	ListByJob(jobID uint, filter candidateapimodels.CandidateFilter) (list []dbmodels.Candidate, err error)
	Update(id uint, data candidateapimodels.CandidateData) (rec *dbmodels.Candidate, err error)
	AddNote(id uint, noteText string) (rec *dbmodels.Candidate, err error)
	DeleteNote(id uint, noteID int64) (rec *dbmodels.Candidate, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		db:    db.DB,
		store: candidatestore.NewInstance(db.DB),
	}
}

type impl struct {
	db    *gorm.DB
	store candidatestore.Provider
}

func (i impl) GetByID(id uint) (*dbmodels.Candidate, error) {
	return i.store.GetByID(id)
}

func (i impl) ListByJob(jobID uint, filter candidateapimodels.CandidateFilter) ([]dbmodels.Candidate, error) {
	list, err := i.store.ListByJob(jobID, filter.Stage)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения списка кандидатов")
	}
	return list, nil
}

// Update - полная замена кандидата. История этапов ведётся сервером:
// при смене этапа добавляется новая запись, история только растёт
// и её последняя запись всегда совпадает с currentStage
func (i impl) Update(id uint, data candidateapimodels.CandidateData) (rec *dbmodels.Candidate, err error) {
	err = i.db.Transaction(func(tx *gorm.DB) error {
		store := candidatestore.NewInstance(tx)
		existedRec, err := store.GetByID(id)
		if err != nil {
			return err
		}
		if existedRec == nil {
			return nil
		}
		newRec := data.ToRec(id)
		newRec.CreatedAt = existedRec.CreatedAt
		newRec.StageHistory = existedRec.StageHistory
		if newRec.StageHistory.LastStage() != newRec.CurrentStage {
			newRec.StageHistory = append(newRec.StageHistory, dbmodels.StageHistoryEntry{
				Stage:     newRec.CurrentStage,
				Timestamp: time.Now(),
			})
		}
		err = store.Save(newRec)
		if err != nil {
			return errors.Wrap(err, "ошибка изменения кандидата")
		}
		rec, err = store.GetByID(id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// AddNote добавляет заметку со свежим ид (unix-миллисекунды)
// и сохраняет кандидата целиком
func (i impl) AddNote(id uint, noteText string) (rec *dbmodels.Candidate, err error) {
	err = i.db.Transaction(func(tx *gorm.DB) error {
		store := candidatestore.NewInstance(tx)
		existedRec, err := store.GetByID(id)
		if err != nil {
			return err
		}
		if existedRec == nil {
			return nil
		}
		noteID := time.Now().UnixMilli()
		for existedRec.Notes.Contains(noteID) {
			noteID++
		}
		newNote := dbmodels.Note{
			NoteID:    noteID,
			Text:      noteText,
			Timestamp: time.Now(),
		}
		existedRec.Notes = append(existedRec.Notes, newNote)
		err = store.Save(*existedRec)
		if err != nil {
			return errors.Wrap(err, "ошибка добавления заметки")
		}
		rec, err = store.GetByID(id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}

func (i impl) DeleteNote(id uint, noteID int64) (rec *dbmodels.Candidate, err error) {
	err = i.db.Transaction(func(tx *gorm.DB) error {
		store := candidatestore.NewInstance(tx)
		existedRec, err := store.GetByID(id)
		if err != nil {
			return err
		}
		if existedRec == nil {
			return nil
		}
		filtered := make(dbmodels.NoteList, 0, len(existedRec.Notes))
		for _, note := range existedRec.Notes {
			if note.NoteID != noteID {
				filtered = append(filtered, note)
			}
		}
		existedRec.Notes = filtered
		err = store.Save(*existedRec)
		if err != nil {
			return errors.Wrap(err, "ошибка удаления заметки")
		}
		rec, err = store.GetByID(id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}
