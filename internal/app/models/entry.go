package models

import (
	"fmt"

	"github.com/goccy/go-json"
	"github.com/tidwall/gjson"
)

type EntryType string

const (
	EntryTypeHealthCheck            EntryType = "HealthCheck"
	EntryTypeHospital               EntryType = "Hospital"
	EntryTypeOccupationalHealthcare EntryType = "OccupationalHealthcare"
)

// EntryTypes lists the entry tags in the order the add-entry form offers them.
func EntryTypes() []EntryType {
	return []EntryType{
		EntryTypeHealthCheck,
		EntryTypeHospital,
		EntryTypeOccupationalHealthcare,
	}
}

func (t EntryType) IsValid() bool {
	switch t {
	case EntryTypeHealthCheck, EntryTypeHospital, EntryTypeOccupationalHealthcare:
		return true
	}
	return false
}

// Entry is one clinical record of a patient. The set of implementations is
// closed: only types in this package can satisfy it.
type Entry interface {
	EntryType() EntryType
	Common() BaseEntry
	isEntry()
}

type BaseEntry struct {
	ID             string   `json:"id"`
	Description    string   `json:"description"`
	Date           string   `json:"date"`
	Specialist     string   `json:"specialist"`
	DiagnosisCodes []string `json:"diagnosisCodes,omitempty"`
}

type Discharge struct {
	Date     string `json:"date"`
	Criteria string `json:"criteria"`
}

type SickLeave struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

type HealthCheckEntry struct {
	BaseEntry
	HealthCheckRating HealthCheckRating `json:"healthCheckRating"`
}

type HospitalEntry struct {
	BaseEntry
	Discharge Discharge `json:"discharge"`
}

type OccupationalHealthcareEntry struct {
	BaseEntry
	EmployerName string     `json:"employerName"`
	SickLeave    *SickLeave `json:"sickLeave,omitempty"`
}

// UnrecognizedEntry keeps an entry whose tag is outside the known set so the
// renderer can reject it instead of the whole patient failing to decode.
type UnrecognizedEntry struct {
	BaseEntry
	Type string `json:"type"`
}

func (e HealthCheckEntry) EntryType() EntryType            { return EntryTypeHealthCheck }
func (e HospitalEntry) EntryType() EntryType               { return EntryTypeHospital }
func (e OccupationalHealthcareEntry) EntryType() EntryType { return EntryTypeOccupationalHealthcare }
func (e UnrecognizedEntry) EntryType() EntryType           { return EntryType(e.Type) }

func (e HealthCheckEntry) Common() BaseEntry            { return e.BaseEntry }
func (e HospitalEntry) Common() BaseEntry               { return e.BaseEntry }
func (e OccupationalHealthcareEntry) Common() BaseEntry { return e.BaseEntry }
func (e UnrecognizedEntry) Common() BaseEntry           { return e.BaseEntry }

func (HealthCheckEntry) isEntry()            {}
func (HospitalEntry) isEntry()               {}
func (OccupationalHealthcareEntry) isEntry() {}
func (UnrecognizedEntry) isEntry()           {}

// Entries decodes a JSON array of entries discriminated by "type".
type Entries []Entry

func (es *Entries) UnmarshalJSON(data []byte) error {
	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return err
	}

	decoded := make(Entries, 0, len(raws))
	for i, raw := range raws {
		entry, err := DecodeEntry(raw)
		if err != nil {
			return fmt.Errorf("entries[%d]: %w", i, err)
		}
		decoded = append(decoded, entry)
	}
	*es = decoded
	return nil
}

// DecodeEntry decodes one entry by peeking at its discriminant.
func DecodeEntry(raw []byte) (Entry, error) {
	switch EntryType(gjson.GetBytes(raw, "type").String()) {
	case EntryTypeHealthCheck:
		var entry HealthCheckEntry
		if err := json.Unmarshal(raw, &entry); err != nil {
			return nil, err
		}
		if rating := gjson.GetBytes(raw, "healthCheckRating"); rating.Type != gjson.Number {
			return nil, fmt.Errorf("entry %s: health check rating missing", entry.ID)
		}
		if !entry.HealthCheckRating.IsValid() {
			return nil, fmt.Errorf("entry %s: health check rating %d out of range", entry.ID, int(entry.HealthCheckRating))
		}
		return entry, nil
	case EntryTypeHospital:
		var entry HospitalEntry
		if err := json.Unmarshal(raw, &entry); err != nil {
			return nil, err
		}
		return entry, nil
	case EntryTypeOccupationalHealthcare:
		var entry OccupationalHealthcareEntry
		if err := json.Unmarshal(raw, &entry); err != nil {
			return nil, err
		}
		return entry, nil
	default:
		var entry UnrecognizedEntry
		if err := json.Unmarshal(raw, &entry); err != nil {
			return nil, err
		}
		return entry, nil
	}
}
