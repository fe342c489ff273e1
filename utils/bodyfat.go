package utils

import "github.com/gregorycarnegie/body-fat-calculator/models"

// BodyDensity applies the sex-specific Jackson & Pollock 7-site regression.
// totalMM is the sum of the seven skinfold measurements in millimeters.
func BodyDensity(totalMM float64, age int, sex models.Sex) float64 {
	a := float64(age)
	if sex == models.SexMale {
		return 1.112 - 0.00043499*totalMM + 0.00000055*totalMM*totalMM - 0.00028826*a
	}
	return 1.097 - 0.00046971*totalMM + 0.00000056*totalMM*totalMM - 0.00012828*a
}

// SiriPercentage converts a body density to a body-fat percentage.
func SiriPercentage(density float64) float64 {
	return 495.0/density - 450.0
}

// BodyFatPercentage combines the regression and the Siri conversion.
// No clamping is applied: implausible inputs (e.g. totalMM=0) produce
// mathematically valid but nonsensical percentages.
func BodyFatPercentage(totalMM float64, age int, sex models.Sex) float64 {
	return SiriPercentage(BodyDensity(totalMM, age, sex))
}

const (
	CategoryExtremelyLean = "Extremely Lean (Below Essential Fat)"
	CategoryUnclassified  = "Unclassified"
)

type bfRange struct {
	low, high float64
	category  string
}

type ageBand struct {
	minAge, maxAge int
	ranges         [5]bfRange
}

// ACSM-style normative tables. The published cut points are not perfectly
// contiguous (e.g. 13.8 then 13.9, or whole-point jumps in the female
// table); they are kept verbatim, so a percentage can land between two
// sub-ranges and stay unclassified.
var maleBands = [5]ageBand{
	{20, 29, [5]bfRange{{5.0, 13.8, "Excellent"}, {13.9, 17.4, "Good"}, {17.5, 20.4, "Average"}, {20.5, 24.1, "Below Average"}, {24.2, 100.0, "Poor"}}},
	{30, 39, [5]bfRange{{5.0, 14.9, "Excellent"}, {15.0, 18.9, "Good"}, {19.0, 21.4, "Average"}, {21.5, 25.1, "Below Average"}, {25.2, 100.0, "Poor"}}},
	{40, 49, [5]bfRange{{5.0, 16.9, "Excellent"}, {17.0, 19.9, "Good"}, {20.0, 22.4, "Average"}, {22.5, 26.1, "Below Average"}, {26.2, 100.0, "Poor"}}},
	{50, 59, [5]bfRange{{5.0, 18.9, "Excellent"}, {19.0, 21.9, "Good"}, {22.0, 24.4, "Average"}, {24.5, 28.1, "Below Average"}, {28.2, 100.0, "Poor"}}},
	{60, 69, [5]bfRange{{5.0, 20.9, "Excellent"}, {21.0, 23.9, "Good"}, {24.0, 26.4, "Average"}, {26.5, 30.1, "Below Average"}, {30.2, 100.0, "Poor"}}},
}

var femaleBands = [5]ageBand{
	{20, 29, [5]bfRange{{10.0, 18.0, "Excellent"}, {19.0, 23.0, "Good"}, {24.0, 29.0, "Average"}, {30.0, 35.0, "Below Average"}, {36.0, 100.0, "Poor"}}},
	{30, 39, [5]bfRange{{11.0, 19.0, "Excellent"}, {20.0, 24.0, "Good"}, {25.0, 30.0, "Average"}, {31.0, 36.0, "Below Average"}, {37.0, 100.0, "Poor"}}},
	{40, 49, [5]bfRange{{12.0, 20.0, "Excellent"}, {21.0, 25.0, "Good"}, {26.0, 31.0, "Average"}, {32.0, 37.0, "Below Average"}, {38.0, 100.0, "Poor"}}},
	{50, 59, [5]bfRange{{13.0, 21.0, "Excellent"}, {22.0, 26.0, "Good"}, {27.0, 32.0, "Average"}, {33.0, 38.0, "Below Average"}, {39.0, 100.0, "Poor"}}},
	{60, 69, [5]bfRange{{14.0, 22.0, "Excellent"}, {23.0, 27.0, "Good"}, {28.0, 33.0, "Average"}, {34.0, 39.0, "Below Average"}, {40.0, 100.0, "Poor"}}},
}

// essentialFatFloor is the sex-specific minimum below which no normative
// band applies.
func essentialFatFloor(sex models.Sex) float64 {
	if sex == models.SexMale {
		return 5.0
	}
	return 10.0
}

// ClassifyBodyFat maps (age, percentage, sex) to a normative category.
// The essential-fat floor is checked before any band lookup; within a
// band the first matching sub-range wins. Ages outside 20-69 and
// percentages falling in a gap between sub-ranges are "Unclassified".
func ClassifyBodyFat(age int, percentage float64, sex models.Sex) string {
	if percentage < essentialFatFloor(sex) {
		return CategoryExtremelyLean
	}

	bands := &femaleBands
	if sex == models.SexMale {
		bands = &maleBands
	}
	for _, band := range bands {
		if age < band.minAge || age > band.maxAge {
			continue
		}
		for _, r := range band.ranges {
			if percentage >= r.low && percentage <= r.high {
				return r.category
			}
		}
	}
	return CategoryUnclassified
}
