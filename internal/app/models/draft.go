package models

import (
	"fmt"
	"strings"

	"github.com/goccy/go-json"
)

// Draft is an add-entry form in progress: an Entry without an id. Like
// Entry, the set of variants is closed.
type Draft interface {
	DraftType() EntryType
	Common() BaseDraft
	isDraft()
}

type BaseDraft struct {
	Description    string   `json:"description"`
	Date           string   `json:"date"`
	Specialist     string   `json:"specialist"`
	DiagnosisCodes []string `json:"diagnosisCodes"`
}

type HealthCheckDraft struct {
	BaseDraft
	// nil when the form carried no usable number; the backend rejects it.
	HealthCheckRating *HealthCheckRating `json:"healthCheckRating,omitempty"`
}

type HospitalDraft struct {
	BaseDraft
	Discharge Discharge `json:"discharge"`
}

type OccupationalHealthcareDraft struct {
	BaseDraft
	EmployerName string     `json:"employerName"`
	SickLeave    *SickLeave `json:"sickLeave,omitempty"`
}

func (HealthCheckDraft) DraftType() EntryType            { return EntryTypeHealthCheck }
func (HospitalDraft) DraftType() EntryType               { return EntryTypeHospital }
func (OccupationalHealthcareDraft) DraftType() EntryType { return EntryTypeOccupationalHealthcare }

func (d HealthCheckDraft) Common() BaseDraft            { return d.BaseDraft }
func (d HospitalDraft) Common() BaseDraft               { return d.BaseDraft }
func (d OccupationalHealthcareDraft) Common() BaseDraft { return d.BaseDraft }

func (HealthCheckDraft) isDraft()            {}
func (HospitalDraft) isDraft()               {}
func (OccupationalHealthcareDraft) isDraft() {}

func newBaseDraft() BaseDraft {
	return BaseDraft{DiagnosisCodes: []string{}}
}

// NewDraft returns the blank draft for a tag.
func NewDraft(entryType EntryType) (Draft, error) {
	switch entryType {
	case EntryTypeHealthCheck:
		rating := HealthCheckRatingHealthy
		return HealthCheckDraft{BaseDraft: newBaseDraft(), HealthCheckRating: &rating}, nil
	case EntryTypeHospital:
		return HospitalDraft{BaseDraft: newBaseDraft()}, nil
	case EntryTypeOccupationalHealthcare:
		return OccupationalHealthcareDraft{BaseDraft: newBaseDraft()}, nil
	default:
		return nil, fmt.Errorf("unsupported entry type %q", entryType)
	}
}

// BlankDraft is the draft the form starts from and resets to.
func BlankDraft() Draft {
	draft, _ := NewDraft(EntryTypeHealthCheck)
	return draft
}

// SelectDraftType switches the form to another entry type. Nothing of the
// current draft survives the switch, including when the tag is unchanged.
func SelectDraftType(_ Draft, entryType EntryType) (Draft, error) {
	return NewDraft(entryType)
}

func (b BaseDraft) WithDescription(description string) BaseDraft {
	b.Description = description
	return b
}

func (b BaseDraft) WithDate(date string) BaseDraft {
	b.Date = date
	return b
}

func (b BaseDraft) WithSpecialist(specialist string) BaseDraft {
	b.Specialist = specialist
	return b
}

func (b BaseDraft) WithDiagnosisCodes(codes []string) BaseDraft {
	b.DiagnosisCodes = append([]string{}, codes...)
	return b
}

func (d HealthCheckDraft) WithBase(base BaseDraft) HealthCheckDraft {
	d.BaseDraft = base
	return d
}

func (d HealthCheckDraft) WithRating(rating HealthCheckRating) HealthCheckDraft {
	d.HealthCheckRating = &rating
	return d
}

func (d HealthCheckDraft) WithoutRating() HealthCheckDraft {
	d.HealthCheckRating = nil
	return d
}

func (d HospitalDraft) WithBase(base BaseDraft) HospitalDraft {
	d.BaseDraft = base
	return d
}

func (d HospitalDraft) WithDischargeDate(date string) HospitalDraft {
	d.Discharge = Discharge{Date: date, Criteria: d.Discharge.Criteria}
	return d
}

func (d HospitalDraft) WithDischargeCriteria(criteria string) HospitalDraft {
	d.Discharge = Discharge{Date: d.Discharge.Date, Criteria: criteria}
	return d
}

func (d OccupationalHealthcareDraft) WithBase(base BaseDraft) OccupationalHealthcareDraft {
	d.BaseDraft = base
	return d
}

func (d OccupationalHealthcareDraft) WithEmployerName(name string) OccupationalHealthcareDraft {
	d.EmployerName = name
	return d
}

func (d OccupationalHealthcareDraft) WithSickLeaveStartDate(date string) OccupationalHealthcareDraft {
	leave := d.sickLeaveOrZero()
	leave.StartDate = date
	d.SickLeave = &leave
	return d
}

func (d OccupationalHealthcareDraft) WithSickLeaveEndDate(date string) OccupationalHealthcareDraft {
	leave := d.sickLeaveOrZero()
	leave.EndDate = date
	d.SickLeave = &leave
	return d
}

func (d OccupationalHealthcareDraft) sickLeaveOrZero() SickLeave {
	if d.SickLeave == nil {
		return SickLeave{}
	}
	return *d.SickLeave
}

func (d HealthCheckDraft) MarshalJSON() ([]byte, error) {
	type alias HealthCheckDraft
	return json.Marshal(struct {
		Type EntryType `json:"type"`
		alias
	}{EntryTypeHealthCheck, alias(d)})
}

func (d HospitalDraft) MarshalJSON() ([]byte, error) {
	type alias HospitalDraft
	return json.Marshal(struct {
		Type EntryType `json:"type"`
		alias
	}{EntryTypeHospital, alias(d)})
}

func (d OccupationalHealthcareDraft) MarshalJSON() ([]byte, error) {
	type alias OccupationalHealthcareDraft
	return json.Marshal(struct {
		Type EntryType `json:"type"`
		alias
	}{EntryTypeOccupationalHealthcare, alias(d)})
}

// ParseDiagnosisCodes splits a comma separated code list, dropping blanks.
func ParseDiagnosisCodes(value string) []string {
	codes := []string{}
	for _, code := range strings.Split(value, ",") {
		code = strings.TrimSpace(code)
		if code != "" {
			codes = append(codes, code)
		}
	}
	return codes
}
