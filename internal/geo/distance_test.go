package geo

import (
	"math"
	"testing"

	"github.com/kevlarmarlon20-eng/SwiftCargo/internal/core/domain"
)

var (
	london = domain.Coordinate{Lat: 51.5074, Lng: -0.1278}
	paris  = domain.Coordinate{Lat: 48.8566, Lng: 2.3522}
)

func TestDistanceKm_LondonParis(t *testing.T) {
	d := DistanceKm(london, paris)
	if math.Abs(d-343) > 5 {
		t.Fatalf("expected ~343 km, got %.2f", d)
	}
}

func TestDistanceKm_Symmetric(t *testing.T) {
	sydney := domain.Coordinate{Lat: -33.8688, Lng: 151.2093}
	ab := DistanceKm(london, sydney)
	ba := DistanceKm(sydney, london)
	if math.Abs(ab-ba) > 1e-9 {
		t.Fatalf("expected symmetry, got %f vs %f", ab, ba)
	}
}

func TestDistanceKm_SamePoint(t *testing.T) {
	for _, c := range DefaultHubs() {
		if d := DistanceKm(c.Coordinate, c.Coordinate); d != 0 {
			t.Errorf("%s: expected 0, got %f", c.Name, d)
		}
	}
}

func TestDistanceKm_InvalidInput(t *testing.T) {
	bad := domain.Coordinate{Lat: 100, Lng: 0}
	if d := DistanceKm(bad, paris); d != 0 {
		t.Errorf("expected 0 for invalid origin, got %f", d)
	}
	if d := DistanceKm(london, bad); d != 0 {
		t.Errorf("expected 0 for invalid destination, got %f", d)
	}
}

func TestDistanceKm_Antipodal(t *testing.T) {
	halfCircumference := math.Pi * earthRadiusKm

	check := func(a, b domain.Coordinate) {
		t.Helper()
		d := DistanceKm(a, b)
		if math.IsNaN(d) || math.Abs(d-halfCircumference) > 0.01 {
			t.Fatalf("%v -> %v: expected %.6f km, got %v", a, b, halfCircumference, d)
		}
	}

	check(domain.Coordinate{Lat: -86.77999999999997, Lng: -179}, domain.Coordinate{Lat: 86.77999999999997, Lng: 1})
	for lat := -90.0; lat <= 90; lat += 0.01 {
		for _, lng := range []float64{-179, -90, -45, 0} {
			check(domain.Coordinate{Lat: lat, Lng: lng}, domain.Coordinate{Lat: -lat, Lng: lng + 180})
		}
	}
}
