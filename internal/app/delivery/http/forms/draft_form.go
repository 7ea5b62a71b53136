package forms

import (
	"fmt"
	"net/url"
	"patientor-service/internal/app/models"
	"patientor-service/internal/pkg/constvars"
	"patientor-service/internal/pkg/exceptions"
	"patientor-service/internal/pkg/utils"
	"strconv"
)

// ParseEntryType reads the entry type selected in the form.
func ParseEntryType(values url.Values) (models.EntryType, error) {
	entryType := models.EntryType(values.Get(constvars.FormFieldEntryType))
	if !entryType.IsValid() {
		err := fmt.Errorf(constvars.ErrDevUnsupportedEntryType, string(entryType))
		return "", exceptions.ErrUnsupportedEntryType(err, string(entryType))
	}
	return entryType, nil
}

// DecodeDraft builds the draft posted by the add-entry form. The form's
// type field picks the variant and only that variant's fields are read.
func DecodeDraft(values url.Values) (models.Draft, error) {
	values = utils.SanitizeFormValues(values)

	entryType, err := ParseEntryType(values)
	if err != nil {
		return nil, err
	}

	draft, err := models.NewDraft(entryType)
	if err != nil {
		return nil, exceptions.ErrUnsupportedEntryType(err, string(entryType))
	}

	switch d := draft.(type) {
	case models.HealthCheckDraft:
		return applyHealthCheck(d.WithBase(decodeBase(d.Common(), values)), values), nil
	case models.HospitalDraft:
		return applyHospital(d.WithBase(decodeBase(d.Common(), values)), values), nil
	case models.OccupationalHealthcareDraft:
		return applyOccupationalHealthcare(d.WithBase(decodeBase(d.Common(), values)), values), nil
	default:
		err := fmt.Errorf(constvars.ErrDevUnsupportedEntryType, string(entryType))
		return nil, exceptions.ErrUnsupportedEntryType(err, string(entryType))
	}
}

func decodeBase(base models.BaseDraft, values url.Values) models.BaseDraft {
	codes := []string{}
	for _, value := range values[constvars.FormFieldDiagnosisCodes] {
		codes = append(codes, models.ParseDiagnosisCodes(value)...)
	}

	return base.
		WithDescription(values.Get(constvars.FormFieldDescription)).
		WithDate(values.Get(constvars.FormFieldDate)).
		WithSpecialist(values.Get(constvars.FormFieldSpecialist)).
		WithDiagnosisCodes(codes)
}

// applyHealthCheck leaves the rating unset when the form value is not one
// of the enum numbers, so the backend reports it as a field issue.
func applyHealthCheck(draft models.HealthCheckDraft, values url.Values) models.HealthCheckDraft {
	value, err := strconv.Atoi(values.Get(constvars.FormFieldHealthCheckRating))
	if err != nil || !models.HealthCheckRating(value).IsValid() {
		return draft.WithoutRating()
	}
	return draft.WithRating(models.HealthCheckRating(value))
}

func applyHospital(draft models.HospitalDraft, values url.Values) models.HospitalDraft {
	return draft.
		WithDischargeDate(values.Get(constvars.FormFieldDischargeDate)).
		WithDischargeCriteria(values.Get(constvars.FormFieldDischargeCriteria))
}

// applyOccupationalHealthcare only creates a sick leave when one of its
// dates was filled in.
func applyOccupationalHealthcare(draft models.OccupationalHealthcareDraft, values url.Values) models.OccupationalHealthcareDraft {
	draft = draft.WithEmployerName(values.Get(constvars.FormFieldEmployerName))

	startDate := values.Get(constvars.FormFieldSickLeaveStart)
	endDate := values.Get(constvars.FormFieldSickLeaveEnd)
	if startDate == "" && endDate == "" {
		return draft
	}
	return draft.WithSickLeaveStartDate(startDate).WithSickLeaveEndDate(endDate)
}
