package models

type QuestionType string

const (
	QuestionShortText    QuestionType = "short-text"
	QuestionLongText     QuestionType = "long-text"
	QuestionSingleChoice QuestionType = "single-choice"
	QuestionMultiChoice  QuestionType = "multi-choice"
	QuestionNumeric      QuestionType = "numeric"
	QuestionFileUpload   QuestionType = "file-upload"
)

func (t QuestionType) IsValid() bool {
	switch t {
	case QuestionShortText, QuestionLongText, QuestionSingleChoice,
		QuestionMultiChoice, QuestionNumeric, QuestionFileUpload:
		return true
	}
	return false
}

type AssessmentKind string

const (
	AssessmentTechnical  AssessmentKind = "Technical Assessment"
	AssessmentBehavioral AssessmentKind = "Behavioral Interview"
	AssessmentCulture    AssessmentKind = "Culture Fit"
	AssessmentSkills     AssessmentKind = "Skills Evaluation"
)

var AssessmentKindList = []AssessmentKind{
	AssessmentTechnical,
	AssessmentBehavioral,
	AssessmentCulture,
	AssessmentSkills,
}
