package dbmodels

import (
	"database/sql/driver"
	"encoding/json"

	"github.com/pkg/errors"
)

// jsonScan - общий разбор jsonb колонки, sqlite возвращает string, postgres []byte
func jsonScan(value interface{}, out interface{}) error {
	if value == nil {
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, out)
	case string:
		return json.Unmarshal([]byte(v), out)
	default:
		return errors.Errorf("неподдерживаемый тип jsonb колонки %T", value)
	}
}

type StringArray []string

func (j StringArray) Value() (driver.Value, error) {
	valueString, err := json.Marshal(j)
	return string(valueString), err
}

func (j *StringArray) Scan(value interface{}) error {
	return jsonScan(value, j)
}

type ResponseMap map[string]interface{}

func (j ResponseMap) Value() (driver.Value, error) {
	valueString, err := json.Marshal(j)
	return string(valueString), err
}

func (j *ResponseMap) Scan(value interface{}) error {
	return jsonScan(value, j)
}
