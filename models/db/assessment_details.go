package dbmodels

import (
	"encoding/json"

	"github.com/pkg/errors"
	"talentflow-backend/models"
)

// QuestionDetails - закрытое размеченное объединение по типу вопроса,
// каждый вариант несёт только свои поля валидации
type QuestionDetails interface {
	QuestionType() models.QuestionType
}

type ShortTextDetails struct {
	MaxLength int `json:"maxLength,omitempty"`
}

func (d ShortTextDetails) QuestionType() models.QuestionType { return models.QuestionShortText }

type LongTextDetails struct {
	MaxLength int `json:"maxLength,omitempty"`
}

func (d LongTextDetails) QuestionType() models.QuestionType { return models.QuestionLongText }

type SingleChoiceDetails struct {
	Options []string `json:"options"`
}

func (d SingleChoiceDetails) QuestionType() models.QuestionType { return models.QuestionSingleChoice }

type MultiChoiceDetails struct {
	Options []string `json:"options"`
}

func (d MultiChoiceDetails) QuestionType() models.QuestionType { return models.QuestionMultiChoice }

type NumericDetails struct {
	Min *float64 `json:"min,omitempty"`
	Max *float64 `json:"max,omitempty"`
}

func (d NumericDetails) QuestionType() models.QuestionType { return models.QuestionNumeric }

type FileUploadDetails struct{}

func (d FileUploadDetails) QuestionType() models.QuestionType { return models.QuestionFileUpload }

func (d ShortTextDetails) MarshalJSON() ([]byte, error) {
	type alias ShortTextDetails
	return marshalDetails(d.QuestionType(), alias(d))
}

func (d LongTextDetails) MarshalJSON() ([]byte, error) {
	type alias LongTextDetails
	return marshalDetails(d.QuestionType(), alias(d))
}

func (d SingleChoiceDetails) MarshalJSON() ([]byte, error) {
	type alias SingleChoiceDetails
	return marshalDetails(d.QuestionType(), alias(d))
}

func (d MultiChoiceDetails) MarshalJSON() ([]byte, error) {
	type alias MultiChoiceDetails
	return marshalDetails(d.QuestionType(), alias(d))
}

func (d NumericDetails) MarshalJSON() ([]byte, error) {
	type alias NumericDetails
	return marshalDetails(d.QuestionType(), alias(d))
}

func (d FileUploadDetails) MarshalJSON() ([]byte, error) {
	type alias FileUploadDetails
	return marshalDetails(d.QuestionType(), alias(d))
}

// marshalDetails добавляет дискриминатор type к полям варианта
func marshalDetails(qType models.QuestionType, variant interface{}) ([]byte, error) {
	body, err := json.Marshal(variant)
	if err != nil {
		return nil, err
	}
	fields := map[string]json.RawMessage{}
	if err = json.Unmarshal(body, &fields); err != nil {
		return nil, err
	}
	typeValue, err := json.Marshal(qType)
	if err != nil {
		return nil, err
	}
	fields["type"] = typeValue
	return json.Marshal(fields)
}

func UnmarshalQuestionDetails(data []byte) (QuestionDetails, error) {
	if len(data) == 0 {
		return nil, errors.New("отсутствует описание типа вопроса")
	}
	var probe struct {
		Type models.QuestionType `json:"type"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, errors.Wrap(err, "ошибка разбора описания вопроса")
	}
	switch probe.Type {
	case models.QuestionShortText:
		var d ShortTextDetails
		err := json.Unmarshal(data, &d)
		return d, err
	case models.QuestionLongText:
		var d LongTextDetails
		err := json.Unmarshal(data, &d)
		return d, err
	case models.QuestionSingleChoice:
		var d SingleChoiceDetails
		err := json.Unmarshal(data, &d)
		return d, err
	case models.QuestionMultiChoice:
		var d MultiChoiceDetails
		err := json.Unmarshal(data, &d)
		return d, err
	case models.QuestionNumeric:
		var d NumericDetails
		err := json.Unmarshal(data, &d)
		return d, err
	case models.QuestionFileUpload:
		var d FileUploadDetails
		err := json.Unmarshal(data, &d)
		return d, err
	}
	return nil, errors.Errorf("неизвестный тип вопроса %q", probe.Type)
}
