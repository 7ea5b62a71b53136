package models

type Diagnosis struct {
	Code  string `json:"code" validate:"required"`
	Name  string `json:"name"`
	Latin string `json:"latin,omitempty"`
}

// Diagnoses is an immutable lookup snapshot of the diagnosis catalog.
type Diagnoses []Diagnosis

// Find returns the diagnosis with exactly the given code.
func (d Diagnoses) Find(code string) (Diagnosis, bool) {
	for _, diagnosis := range d {
		if diagnosis.Code == code {
			return diagnosis, true
		}
	}
	return Diagnosis{}, false
}
