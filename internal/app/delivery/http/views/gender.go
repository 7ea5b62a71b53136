package views

import "patientor-service/internal/app/models"

type GenderIcon struct {
	Class string
	Glyph string
	Label string
}

var (
	maleIcon    = GenderIcon{Class: "male", Glyph: "♂", Label: "male"}
	femaleIcon  = GenderIcon{Class: "female", Glyph: "♀", Label: "female"}
	neutralIcon = GenderIcon{Class: "other", Glyph: "⚧", Label: "other"}
)

// IconForGender picks the icon shown next to the patient name.
func IconForGender(gender models.Gender) GenderIcon {
	switch {
	case gender.IsMale():
		return maleIcon
	case gender.IsFemale():
		return femaleIcon
	default:
		return neutralIcon
	}
}
