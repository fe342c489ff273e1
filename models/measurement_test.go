package models

import "testing"

func TestTotalIsAdditive(t *testing.T) {
	var m MeasurementRecord
	m.Chest = 10.0
	m.Abdominal = 15.0
	if m.Total() != 25.0 {
		t.Fatalf("total: got %v, want 25", m.Total())
	}

	values := []float64{1.5, 2.5, 3, 4, 5, 6, 7.25}
	sum := 0.0
	for i, site := range AllSites {
		if err := m.Set(site, values[i]); err != nil {
			t.Fatalf("Set(%s): %v", site, err)
		}
		sum += values[i]
	}
	if m.Total() != sum {
		t.Fatalf("total: got %v, want %v", m.Total(), sum)
	}
}

func TestSetTargetsExactlyOneSite(t *testing.T) {
	var m MeasurementRecord
	if err := m.Set(SiteThigh, 12.0); err != nil {
		t.Fatalf("Set: %v", err)
	}
	for _, site := range AllSites {
		want := 0.0
		if site == SiteThigh {
			want = 12.0
		}
		if m.Get(site) != want {
			t.Errorf("%s: got %v, want %v", site, m.Get(site), want)
		}
	}
}

func TestSetUnknownSite(t *testing.T) {
	var m MeasurementRecord
	if err := m.Set(Site("forearm"), 5.0); err == nil {
		t.Fatal("expected an error for an unknown site")
	}
	if m.Total() != 0 {
		t.Fatalf("unknown site must not mutate the record, total=%v", m.Total())
	}
}

func TestCloneIsIndependent(t *testing.T) {
	var m MeasurementRecord
	m.Chest = 9.0
	clone := m.Clone()
	m.Chest = 99.0
	if clone.Chest != 9.0 {
		t.Fatalf("clone mutated through original: %v", clone.Chest)
	}
}

func TestSiteLabels(t *testing.T) {
	want := map[Site]string{
		SiteChest:       "Chest",
		SiteAbdominal:   "Abdominal",
		SiteThigh:       "Thigh",
		SiteTriceps:     "Triceps",
		SiteSubscapular: "Subscapular",
		SiteSuprailiac:  "Suprailiac",
		SiteMidaxillary: "Midaxillary",
	}
	for site, label := range want {
		if site.Label() != label {
			t.Errorf("%s: got %q, want %q", site, site.Label(), label)
		}
		if !site.Valid() {
			t.Errorf("%s should be valid", site)
		}
	}
	if Site("forearm").Valid() {
		t.Error("forearm should not be a valid site")
	}
}
