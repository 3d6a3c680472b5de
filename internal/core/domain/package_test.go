package domain

import (
	"math"
	"testing"
)

func TestPackageStatus_CanTransitionTo(t *testing.T) {
	cases := []struct {
		from, to PackageStatus
		want     bool
	}{
		{StatusPending, StatusInTransit, true},
		{StatusInTransit, StatusInTransit, true},
		{StatusOnHold, StatusOutForDelivery, true},
		{StatusInTransit, StatusCancelled, true},
		{StatusDelivered, StatusInTransit, false},
		{StatusCancelled, StatusPending, false},
		{StatusPending, PackageStatus("lost"), false},
	}
	for _, tc := range cases {
		if got := tc.from.CanTransitionTo(tc.to); got != tc.want {
			t.Errorf("%s -> %s: got %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestPackage_Locations(t *testing.T) {
	p := &Package{
		Location: "Paris",
		History: []HistoryEntry{
			{Location: "London"},
			{Location: ""},
			{Location: "Frankfurt"},
			{Location: "London"},
		},
	}
	got := p.Locations()
	want := []string{"London", "Frankfurt", "Paris"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestCoordinate_Valid(t *testing.T) {
	cases := []struct {
		c    Coordinate
		want bool
	}{
		{Coordinate{Lat: 0, Lng: 0}, true},
		{Coordinate{Lat: 90, Lng: -180}, true},
		{Coordinate{Lat: 90.0001, Lng: 0}, false},
		{Coordinate{Lat: 0, Lng: 180.5}, false},
		{Coordinate{Lat: math.NaN(), Lng: 0}, false},
	}
	for _, tc := range cases {
		if got := tc.c.Valid(); got != tc.want {
			t.Errorf("%+v: got %v, want %v", tc.c, got, tc.want)
		}
	}
}
