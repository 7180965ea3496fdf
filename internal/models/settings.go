package models

import (
	json "github.com/goccy/go-json"
)

// DefaultCustomerSeed is the number of customer entries the host app ships
// with out of the box. Only a list longer than this counts as customization.
const DefaultCustomerSeed = 6

// Settings mirrors the fields of the host's snooker_settings record the
// guard cares about. Everything else in the payload is ignored.
type Settings struct {
	Customers []json.RawMessage `json:"customers"`
}

// ParseSettings decodes the serialized snooker_settings payload.
func ParseSettings(raw string) (*Settings, error) {
	var s Settings
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return nil, err
	}
	return &s, nil
}
