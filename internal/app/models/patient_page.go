package models

// PatientPage is the state of the patient detail page. A nil Patient means
// the page is still loading; after a failed load it stays that way.
// Transitions return a new page and never modify the receiver.
type PatientPage struct {
	PatientID string
	Patient   *Patient
	Diagnoses Diagnoses
	Draft     Draft
	Errors    []string
}

func NewPatientPage(patientID string) *PatientPage {
	return &PatientPage{
		PatientID: patientID,
		Draft:     BlankDraft(),
	}
}

func (p PatientPage) IsLoaded() bool {
	return p.Patient != nil
}

func (p PatientPage) HasErrors() bool {
	return len(p.Errors) > 0
}

// Loaded moves the page to the loaded state and clears any error.
func (p PatientPage) Loaded(patient *Patient, diagnoses Diagnoses) *PatientPage {
	p.Patient = patient
	p.Diagnoses = diagnoses
	p.Errors = nil
	return &p
}

// Failed records error messages and leaves patient and draft as they are.
func (p PatientPage) Failed(messages []string) *PatientPage {
	p.Errors = append([]string(nil), messages...)
	return &p
}

func (p PatientPage) WithDraft(draft Draft) *PatientPage {
	p.Draft = draft
	return &p
}

func (p PatientPage) SelectEntryType(entryType EntryType) (*PatientPage, error) {
	draft, err := SelectDraftType(p.Draft, entryType)
	if err != nil {
		return nil, err
	}
	p.Draft = draft
	return &p, nil
}

func (p PatientPage) CancelDraft() *PatientPage {
	p.Draft = BlankDraft()
	return &p
}

// EntryAdded replaces the patient with the snapshot the backend returned
// after accepting a draft.
func (p PatientPage) EntryAdded(patient *Patient) *PatientPage {
	p.Patient = patient
	p.Draft = BlankDraft()
	p.Errors = nil
	return &p
}
