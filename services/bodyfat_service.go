package services

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gregorycarnegie/body-fat-calculator/models"
	"github.com/gregorycarnegie/body-fat-calculator/utils"

	"gorm.io/gorm"
)

// CalculationInput carries the raw per-field text exactly as typed by the
// client. An empty string means "use whatever is stored for this site".
type CalculationInput struct {
	Sites map[models.Site]string
	Age   string
	Sex   models.Sex
}

type CalculationResult struct {
	Percentage float64    `json:"percentage"`
	Category   string     `json:"category"`
	Total      float64    `json:"total"`
	Age        int        `json:"age"`
	Sex        models.Sex `json:"sex"`
}

type BodyFatService struct {
	db  *gorm.DB
	hub *RealtimeHub
}

func NewBodyFatService(db *gorm.DB, hub *RealtimeHub) *BodyFatService {
	return &BodyFatService{db: db, hub: hub}
}

const ageErrorMessage = "Age must be a valid number between 1 and 119"

// resolveMeasurement applies the per-field input policy: freshly typed
// text wins, a previously stored positive value is the fallback, and
// everything else is a validation message.
func resolveMeasurement(site models.Site, raw string, stored float64) (float64, string) {
	if raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return 0, fmt.Sprintf("%s measurement must be a valid number", site.Label())
		}
		return v, ""
	}
	if stored > 0 {
		return stored, ""
	}
	return 0, fmt.Sprintf("%s measurement is required", site.Label())
}

// resolveAge parses and bounds-checks the age. There is no stored
// fallback: age is supplied fresh on every calculation.
func resolveAge(raw string) (int, string) {
	age, err := strconv.Atoi(raw)
	if err != nil || age < 1 || age > 119 {
		return 0, ageErrorMessage
	}
	return age, ""
}

// GetRecord loads the user's measurement record, or a zero record if
// nothing has been stored yet.
func (s *BodyFatService) GetRecord(userID uint) (models.MeasurementRecord, error) {
	var rec models.MeasurementRecord
	err := s.db.Where("user_id = ?", userID).First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.MeasurementRecord{UserID: userID}, nil
		}
		return rec, err
	}
	return rec, nil
}

// UpdateMeasurement stores a single freshly typed value. Text that does
// not parse as a number is dropped without error: this entry point is
// best-effort, the strict validation happens at calculation time.
func (s *BodyFatService) UpdateMeasurement(userID uint, site models.Site, raw string) error {
	if !site.Valid() {
		return fmt.Errorf("unknown measurement site %q", site)
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	rec, err := s.GetRecord(userID)
	if err != nil {
		return err
	}
	if err := rec.Set(site, value); err != nil {
		return err
	}
	return s.db.Save(&rec).Error
}

// ResetMeasurements discards the user's stored record.
func (s *BodyFatService) ResetMeasurements(userID uint) error {
	return s.db.Unscoped().Where("user_id = ?", userID).Delete(&models.MeasurementRecord{}).Error
}

// Calculate resolves all seven sites plus age against the stored record,
// and only on full success computes, classifies, and merges the resolved
// values back. Resolution failures never short-circuit: the caller gets
// every validation message in site order (age last), and the stored
// record is left untouched.
func (s *BodyFatService) Calculate(userID uint, in CalculationInput) (*CalculationResult, []string, error) {
	if !in.Sex.Valid() {
		return nil, []string{"Sex must be Male or Female"}, nil
	}

	stored, err := s.GetRecord(userID)
	if err != nil {
		return nil, nil, err
	}
	baseline := stored.Clone()

	resolved := models.MeasurementRecord{UserID: userID}
	var msgs []string
	for _, site := range models.AllSites {
		v, msg := resolveMeasurement(site, in.Sites[site], baseline.Get(site))
		if msg != "" {
			msgs = append(msgs, msg)
			continue
		}
		_ = resolved.Set(site, v)
	}
	age, msg := resolveAge(in.Age)
	if msg != "" {
		msgs = append(msgs, msg)
	}
	if len(msgs) > 0 {
		return nil, msgs, nil
	}

	total := resolved.Total()
	pct := utils.BodyFatPercentage(total, age, in.Sex)
	category := utils.ClassifyBodyFat(age, pct, in.Sex)

	// Merge back only after the whole batch resolved.
	resolved.Model = stored.Model
	if err := s.db.Save(&resolved).Error; err != nil {
		return nil, nil, err
	}

	result := &CalculationResult{
		Percentage: pct,
		Category:   category,
		Total:      total,
		Age:        age,
		Sex:        in.Sex,
	}
	if s.hub != nil {
		s.hub.BroadcastResult(userID, map[string]any{
			"kind":   "bodyfat.result",
			"result": result,
		})
	}
	return result, nil, nil
}
