package models

type Patient struct {
	ID          string  `json:"id" validate:"required"`
	Name        string  `json:"name" validate:"required"`
	SSN         string  `json:"ssn"`
	Occupation  string  `json:"occupation"`
	DateOfBirth string  `json:"dateOfBirth,omitempty"`
	Gender      Gender  `json:"gender" validate:"required,oneof=male female other"`
	Entries     Entries `json:"entries"`
}
