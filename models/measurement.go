package models

import (
	"fmt"

	"gorm.io/gorm"
)

// Site identifies one of the seven Jackson & Pollock skinfold sites.
type Site string

const (
	SiteChest       Site = "chest"
	SiteAbdominal   Site = "abdominal"
	SiteThigh       Site = "thigh"
	SiteTriceps     Site = "triceps"
	SiteSubscapular Site = "subscapular"
	SiteSuprailiac  Site = "suprailiac"
	SiteMidaxillary Site = "midaxillary"
)

// AllSites lists the sites in the order they are resolved and reported.
var AllSites = []Site{
	SiteChest,
	SiteAbdominal,
	SiteThigh,
	SiteTriceps,
	SiteSubscapular,
	SiteSuprailiac,
	SiteMidaxillary,
}

func (s Site) Valid() bool {
	switch s {
	case SiteChest, SiteAbdominal, SiteThigh, SiteTriceps,
		SiteSubscapular, SiteSuprailiac, SiteMidaxillary:
		return true
	}
	return false
}

// Label is the capitalized site name used in validation messages.
func (s Site) Label() string {
	switch s {
	case SiteChest:
		return "Chest"
	case SiteAbdominal:
		return "Abdominal"
	case SiteThigh:
		return "Thigh"
	case SiteTriceps:
		return "Triceps"
	case SiteSubscapular:
		return "Subscapular"
	case SiteSuprailiac:
		return "Suprailiac"
	case SiteMidaxillary:
		return "Midaxillary"
	}
	return string(s)
}

// MeasurementRecord holds the current skinfold thicknesses (mm) for one
// user. A value of 0 means the site has not been measured yet. Each user
// has at most one record; it is overwritten in place, never versioned.
type MeasurementRecord struct {
	gorm.Model
	UserID      uint    `gorm:"uniqueIndex;not null" json:"user_id"`
	Chest       float64 `json:"chest"`
	Abdominal   float64 `json:"abdominal"`
	Thigh       float64 `json:"thigh"`
	Triceps     float64 `json:"triceps"`
	Subscapular float64 `json:"subscapular"`
	Suprailiac  float64 `json:"suprailiac"`
	Midaxillary float64 `json:"midaxillary"`
}

// Set overwrites exactly the named site. Unknown sites are rejected rather
// than silently dropped.
func (m *MeasurementRecord) Set(site Site, value float64) error {
	switch site {
	case SiteChest:
		m.Chest = value
	case SiteAbdominal:
		m.Abdominal = value
	case SiteThigh:
		m.Thigh = value
	case SiteTriceps:
		m.Triceps = value
	case SiteSubscapular:
		m.Subscapular = value
	case SiteSuprailiac:
		m.Suprailiac = value
	case SiteMidaxillary:
		m.Midaxillary = value
	default:
		return fmt.Errorf("unknown measurement site %q", site)
	}
	return nil
}

func (m *MeasurementRecord) Get(site Site) float64 {
	switch site {
	case SiteChest:
		return m.Chest
	case SiteAbdominal:
		return m.Abdominal
	case SiteThigh:
		return m.Thigh
	case SiteTriceps:
		return m.Triceps
	case SiteSubscapular:
		return m.Subscapular
	case SiteSuprailiac:
		return m.Suprailiac
	case SiteMidaxillary:
		return m.Midaxillary
	}
	return 0
}

// Total is the plain sum of all seven sites, computed on demand.
func (m *MeasurementRecord) Total() float64 {
	return m.Chest + m.Abdominal + m.Thigh + m.Triceps +
		m.Subscapular + m.Suprailiac + m.Midaxillary
}

// Clone returns an independent copy used as the stored baseline while
// resolving a calculation.
func (m *MeasurementRecord) Clone() MeasurementRecord {
	return *m
}
