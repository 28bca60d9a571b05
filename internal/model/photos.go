package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Photos is an ordered list of photo names stored as JSON text.
type Photos []string

// Value encodes the list as a JSON array. A nil list is stored as "[]".
func (p Photos) Value() (driver.Value, error) {
	if p == nil {
		return "[]", nil
	}
	data, err := json.Marshal([]string(p))
	if err != nil {
		return nil, fmt.Errorf("failed to encode photos: %w", err)
	}
	return string(data), nil
}

// Scan decodes a JSON array read from the database.
func (p *Photos) Scan(value interface{}) error {
	var data []byte
	switch v := value.(type) {
	case nil:
		*p = Photos{}
		return nil
	case string:
		data = []byte(v)
	case []byte:
		data = v
	default:
		return fmt.Errorf("unsupported photos column type %T", value)
	}

	var photos []string
	if err := json.Unmarshal(data, &photos); err != nil {
		return fmt.Errorf("failed to decode photos: %w", err)
	}
	if photos == nil {
		photos = []string{}
	}
	*p = photos
	return nil
}
