package dbtypes

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringMap is stored as a JSON object in a TEXT column, portable across
// both backends.
type StringMap map[string]string

func (m *StringMap) Scan(src any) error {
	if src == nil {
		*m = StringMap{}
		return nil
	}

	switch v := src.(type) {
	case string:
		return m.parseFromString(v)
	case []byte:
		return m.parseFromString(string(v))
	default:
		return fmt.Errorf("StringMap: unsupported Scan type %T", src)
	}
}

func (m StringMap) Value() (driver.Value, error) {
	if len(m) == 0 {
		return "{}", nil
	}
	raw, err := json.Marshal(map[string]string(m))
	if err != nil {
		return nil, fmt.Errorf("StringMap: marshal: %w", err)
	}
	return string(raw), nil
}

func (m *StringMap) parseFromString(s string) error {
	if s == "" || s == "{}" {
		*m = StringMap{}
		return nil
	}
	var out map[string]string
	if err := json.Unmarshal([]byte(s), &out); err != nil {
		return fmt.Errorf("StringMap: parse %q: %w", s, err)
	}
	*m = StringMap(out)
	return nil
}
