package views

import (
	"bytes"
	"fmt"
	"html/template"
	"patientor-service/internal/app/models"
	"patientor-service/internal/pkg/constvars"
)

// UnhandledEntryTypeError is returned when an entry outside the known
// variants reaches the renderer.
type UnhandledEntryTypeError struct {
	Type string
}

func (e *UnhandledEntryTypeError) Error() string {
	return fmt.Sprintf(constvars.ErrDevUnhandledEntryType, e.Type)
}

type diagnosisLine struct {
	Code  string
	Name  string
	Found bool
}

type entryView struct {
	Entry     models.BaseEntry
	Diagnoses []diagnosisLine
}

// diagnosisLines resolves codes against the catalog. A code missing from
// the catalog is kept with no name.
func diagnosisLines(codes []string, diagnoses models.Diagnoses) []diagnosisLine {
	lines := make([]diagnosisLine, 0, len(codes))
	for _, code := range codes {
		diagnosis, found := diagnoses.Find(code)
		lines = append(lines, diagnosisLine{Code: code, Name: diagnosis.Name, Found: found})
	}
	return lines
}

func newEntryView(entry models.BaseEntry, diagnoses models.Diagnoses) entryView {
	return entryView{
		Entry:     entry,
		Diagnoses: diagnosisLines(entry.DiagnosisCodes, diagnoses),
	}
}

func RenderHealthCheckEntry(entry models.HealthCheckEntry, diagnoses models.Diagnoses) (template.HTML, error) {
	return renderFragment("entry_health_check", struct {
		entryView
		Color string
		Label string
	}{
		entryView: newEntryView(entry.BaseEntry, diagnoses),
		Color:     entry.HealthCheckRating.Color(),
		Label:     entry.HealthCheckRating.Label(),
	})
}

func RenderHospitalEntry(entry models.HospitalEntry, diagnoses models.Diagnoses) (template.HTML, error) {
	return renderFragment("entry_hospital", struct {
		entryView
		Discharge models.Discharge
	}{
		entryView: newEntryView(entry.BaseEntry, diagnoses),
		Discharge: entry.Discharge,
	})
}

func RenderOccupationalHealthcareEntry(entry models.OccupationalHealthcareEntry, diagnoses models.Diagnoses) (template.HTML, error) {
	return renderFragment("entry_occupational_healthcare", struct {
		entryView
		EmployerName string
		SickLeave    *models.SickLeave
	}{
		entryView:    newEntryView(entry.BaseEntry, diagnoses),
		EmployerName: entry.EmployerName,
		SickLeave:    entry.SickLeave,
	})
}

// RenderEntry routes entry to the renderer of its variant. Anything else,
// including an UnrecognizedEntry, yields an empty fragment and an
// *UnhandledEntryTypeError naming the tag.
func RenderEntry(entry models.Entry, diagnoses models.Diagnoses) (template.HTML, error) {
	switch e := entry.(type) {
	case models.HealthCheckEntry:
		return RenderHealthCheckEntry(e, diagnoses)
	case models.HospitalEntry:
		return RenderHospitalEntry(e, diagnoses)
	case models.OccupationalHealthcareEntry:
		return RenderOccupationalHealthcareEntry(e, diagnoses)
	default:
		var tag string
		if entry != nil {
			tag = string(entry.EntryType())
		}
		return "", &UnhandledEntryTypeError{Type: tag}
	}
}

func renderFragment(name string, data interface{}) (template.HTML, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}
