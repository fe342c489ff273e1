package models

// Sex is the biological sex used by the Jackson & Pollock regression and
// the normative tables. It is a closed two-valued enum; anything else is
// rejected at the API boundary.
type Sex string

const (
	SexMale   Sex = "Male"
	SexFemale Sex = "Female"
)

func (s Sex) Valid() bool {
	return s == SexMale || s == SexFemale
}
