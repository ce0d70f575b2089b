package models

type CandidateStage string

const (
	StageApplied   CandidateStage = "Applied"
	StageScreening CandidateStage = "Screening"
	StageInterview CandidateStage = "Interview"
	StageHired     CandidateStage = "Hired"
	StageRejected  CandidateStage = "Rejected"
)

// Stagelist - этапы воронки в порядке прохождения, Rejected - терминальный
var StageList = []CandidateStage{
	StageApplied,
	StageScreening,
	StageInterview,
	StageHired,
	StageRejected,
}

// StageAll - значение фильтра "все этапы"
const StageAll = "all"

func (s CandidateStage) IsValid() bool {
	for _, stage := range StageList {
		if s == stage {
			return true
		}
	}
	return false
}

// StageIndex возвращает позицию этапа в воронке, -1 если этап неизвестен
func StageIndex(s CandidateStage) int {
	for i, stage := range StageList {
		if s == stage {
			return i
		}
	}
	return -1
}
