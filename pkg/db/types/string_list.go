package dbtypes

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringList is stored as a JSON array in a TEXT column so the same model
// works on both the Postgres backend and the embedded SQLite store.
type StringList []string

func (l *StringList) Scan(src any) error {
	if src == nil {
		*l = StringList{}
		return nil
	}

	switch v := src.(type) {
	case string:
		return l.parseFromString(v)
	case []byte:
		return l.parseFromString(string(v))
	default:
		return fmt.Errorf("StringList: unsupported Scan type %T", src)
	}
}

func (l StringList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "[]", nil
	}
	raw, err := json.Marshal([]string(l))
	if err != nil {
		return nil, fmt.Errorf("StringList: marshal: %w", err)
	}
	return string(raw), nil
}

func (l *StringList) parseFromString(s string) error {
	if s == "" || s == "[]" {
		*l = StringList{}
		return nil
	}
	var out []string
	if err := json.Unmarshal([]byte(s), &out); err != nil {
		return fmt.Errorf("StringList: parse %q: %w", s, err)
	}
	*l = StringList(out)
	return nil
}
