package xlsexport

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	dbmodels "talentflow-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

type Provider interface {
	ExportCandidateList(jobTitle string, list []dbmodels.Candidate) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

var candidateHeaders = []string{"Имя", "Email", "Текущий этап", "Дата отклика", "Последнее движение", "Кол-во заметок", "Заметки"}

func (i impl) ExportCandidateList(jobTitle string, list []dbmodels.Candidate) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("ошибка закрытия файла")
		}
	}()
	sheet := "Sheet1"
	row := 0
	if err := writeColumn(f, sheet, 1, 1, jobTitle); err != nil {
		return nil, errors.Wrap(err, "ошибка формирования заголовка в xlsx")
	}
	row++
	row, err := writeHeader(f, sheet, row, candidateHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка формирования заголовка в xlsx")
	}
	if len(list) != 0 {
		row, err = writeCandidateData(f, sheet, list, row)
		if err != nil {
			return nil, errors.Wrap(err, "ошибка формирования таблицы с данными в xlsx")
		}
	}
	f.SetSheetName(sheet, "Кандидаты")
	return f.WriteToBuffer()
}

func writeCandidateData(f *excelize.File, sheet string, list []dbmodels.Candidate, row int) (int, error) {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(candidateHeaders), row+len(list)); err != nil {
		return row, err
	}
	for _, item := range list {
		row++
		// "Имя"
		col := 1
		if err := writeColumn(f, sheet, col, row, item.Name); err != nil {
			return row, err
		}

		// "Email"
		col++
		if err := writeColumn(f, sheet, col, row, item.Email); err != nil {
			return row, err
		}

		// "Текущий этап"
		col++
		if err := writeColumn(f, sheet, col, row, string(item.CurrentStage)); err != nil {
			return row, err
		}

		// "Дата отклика"
		col++
		if appliedAt := stageTimestamp(item.StageHistory, true); !appliedAt.IsZero() {
			if err := writeColumn(f, sheet, col, row, appliedAt.Format("02.01.2006")); err != nil {
				return row, err
			}
		}

		// "Последнее движение"
		col++
		if movedAt := stageTimestamp(item.StageHistory, false); !movedAt.IsZero() {
			if err := writeColumn(f, sheet, col, row, movedAt.Format("02.01.2006")); err != nil {
				return row, err
			}
		}

		// "Кол-во заметок"
		col++
		if err := writeColumn(f, sheet, col, row, len(item.Notes)); err != nil {
			return row, err
		}

		// "Заметки"
		col++
		if err := writeColumn(f, sheet, col, row, joinNotes(item.Notes)); err != nil {
			return row, err
		}
	}
	return row, nil
}

func stageTimestamp(history dbmodels.StageHistory, first bool) time.Time {
	if len(history) == 0 {
		return time.Time{}
	}
	if first {
		return history[0].Timestamp
	}
	return history[len(history)-1].Timestamp
}

func joinNotes(notes dbmodels.NoteList) string {
	texts := make([]string, 0, len(notes))
	for _, note := range notes {
		texts = append(texts, fmt.Sprintf("%s: %s", note.Timestamp.Format("02.01.2006"), note.Text))
	}
	return strings.Join(texts, "\r")
}
