package commands

import (
	"bytes"
	"slices"
	"strings"
	"testing"

	"github.com/kevlarmarlon20-eng/SwiftCargo/internal/core/domain"
)

func TestDistanceCmd(t *testing.T) {
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"distance", "51.5074,-0.1278", "48.8566,2.3522"})

	if err := root.Execute(); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if got := strings.TrimSpace(out.String()); !strings.HasPrefix(got, "343.") {
		t.Fatalf("expected ~343 km, got %q", got)
	}
}

func TestDistanceCmd_InvalidInput(t *testing.T) {
	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"distance", "London", "48.8566,2.3522"})

	if err := root.Execute(); err == nil {
		t.Fatalf("expected an error for a non-numeric coordinate")
	}
}

func TestUnresolved_Deduplicates(t *testing.T) {
	found := map[string]domain.Coordinate{"London": {Lat: 51.5074, Lng: -0.1278}}
	got := unresolved([]string{"Atlantis", "London", "Atlantis", " ", "El Dorado", "London"}, found)

	want := []string{"Atlantis", "El Dorado"}
	if !slices.Equal(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}
