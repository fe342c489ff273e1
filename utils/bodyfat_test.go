package utils

import (
	"math"
	"testing"

	"github.com/gregorycarnegie/body-fat-calculator/models"
)

func TestBodyFatPercentageReasonableRange(t *testing.T) {
	for _, sex := range []models.Sex{models.SexMale, models.SexFemale} {
		pct := BodyFatPercentage(100.0, 30, sex)
		if pct <= 0 || pct >= 50 {
			t.Fatalf("%s: percentage %v outside (0, 50)", sex, pct)
		}
	}
}

func TestSiriPercentageAtNeutralDensity(t *testing.T) {
	// 495/1.1 - 450 == 0
	if got := SiriPercentage(1.1); math.Abs(got) > 1e-9 {
		t.Fatalf("expected ~0, got %v", got)
	}
}

func TestBodyDensitySexSpecific(t *testing.T) {
	m := BodyDensity(100.0, 30, models.SexMale)
	f := BodyDensity(100.0, 30, models.SexFemale)
	if m == f {
		t.Fatalf("male and female densities should differ, both %v", m)
	}
	total, a := 100.0, 30.0
	wantMale := 1.112 - 0.00043499*total + 0.00000055*total*total - 0.00028826*a
	if m != wantMale {
		t.Fatalf("male density: got %v want %v", m, wantMale)
	}
}

func TestBodyFatPercentageNoClamping(t *testing.T) {
	// total=0 is nonsensical but must still produce a defined value.
	pct := BodyFatPercentage(0, 30, models.SexMale)
	if math.IsNaN(pct) || math.IsInf(pct, 0) {
		t.Fatalf("expected a finite value for total=0, got %v", pct)
	}
}

func TestEssentialFatBoundary(t *testing.T) {
	tests := []struct {
		sex  models.Sex
		pct  float64
		want string
	}{
		{models.SexMale, 4.99, CategoryExtremelyLean},
		{models.SexMale, 5.0, "Excellent"},
		{models.SexFemale, 9.99, CategoryExtremelyLean},
		{models.SexFemale, 10.0, "Excellent"},
	}
	for _, tt := range tests {
		if got := ClassifyBodyFat(25, tt.pct, tt.sex); got != tt.want {
			t.Errorf("ClassifyBodyFat(25, %v, %s) = %q, want %q", tt.pct, tt.sex, got, tt.want)
		}
	}
}

func TestClassifyAgeOutsideBands(t *testing.T) {
	for _, age := range []int{15, 75} {
		for _, sex := range []models.Sex{models.SexMale, models.SexFemale} {
			if got := ClassifyBodyFat(age, 20.0, sex); got != CategoryUnclassified {
				t.Errorf("age %d %s: got %q, want %q", age, sex, got, CategoryUnclassified)
			}
		}
	}
}

func TestClassifyGapBetweenRanges(t *testing.T) {
	// The published cut points are not contiguous; values in the seams
	// stay unclassified.
	if got := ClassifyBodyFat(25, 13.85, models.SexMale); got != CategoryUnclassified {
		t.Errorf("male 13.85: got %q, want %q", got, CategoryUnclassified)
	}
	if got := ClassifyBodyFat(25, 18.5, models.SexFemale); got != CategoryUnclassified {
		t.Errorf("female 18.5: got %q, want %q", got, CategoryUnclassified)
	}
}

func TestClassifyBands(t *testing.T) {
	tests := []struct {
		age  int
		pct  float64
		sex  models.Sex
		want string
	}{
		{25, 13.8, models.SexMale, "Excellent"},
		{25, 13.9, models.SexMale, "Good"},
		{35, 19.0, models.SexMale, "Average"},
		{45, 26.1, models.SexMale, "Below Average"},
		{55, 28.2, models.SexMale, "Poor"},
		{62, 30.2, models.SexMale, "Poor"},
		{25, 18.0, models.SexFemale, "Excellent"},
		{25, 19.0, models.SexFemale, "Good"},
		{35, 30.0, models.SexFemale, "Average"},
		{45, 37.0, models.SexFemale, "Below Average"},
		{65, 40.0, models.SexFemale, "Poor"},
	}
	for _, tt := range tests {
		if got := ClassifyBodyFat(tt.age, tt.pct, tt.sex); got != tt.want {
			t.Errorf("ClassifyBodyFat(%d, %v, %s) = %q, want %q", tt.age, tt.pct, tt.sex, got, tt.want)
		}
	}
}
