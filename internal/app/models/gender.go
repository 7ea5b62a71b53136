package models

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

func (g Gender) IsMale() bool {
	return g == GenderMale
}

func (g Gender) IsFemale() bool {
	return g == GenderFemale
}
