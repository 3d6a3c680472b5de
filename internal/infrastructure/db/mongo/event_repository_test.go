package mongo

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/kevlarmarlon20-eng/SwiftCargo/internal/core/domain"
)

func TestEventDocument(t *testing.T) {
	ts := time.Date(2024, 3, 1, 12, 0, 0, 0, time.FixedZone("CET", 3600))
	recorded := time.Date(2024, 3, 1, 11, 0, 1, 0, time.UTC)
	ev := &domain.StatusEvent{
		EventID:        "e-1",
		TrackingNumber: "SCABC1234567",
		Status:         domain.StatusInTransit,
		Location:       "Paris",
		Timestamp:      ts,
	}

	doc := eventDocument(ev, recorded)
	if doc["status"] != "in-transit" || doc["event_id"] != "e-1" {
		t.Fatalf("unexpected document: %v", doc)
	}
	if got := doc["timestamp"].(time.Time); got.Location() != time.UTC || !got.Equal(ts) {
		t.Fatalf("timestamp not normalised to UTC: %v", got)
	}
	if _, ok := doc["coordinate"]; ok {
		t.Fatalf("coordinate must be omitted when unknown")
	}

	ev.Coordinate = &domain.Coordinate{Lat: 48.8566, Lng: 2.3522}
	doc = eventDocument(ev, recorded)
	point, ok := doc["coordinate"].(bson.M)
	if !ok {
		t.Fatalf("expected GeoJSON point, got %T", doc["coordinate"])
	}
	coords := point["coordinates"].(bson.A)
	if coords[0] != 2.3522 || coords[1] != 48.8566 {
		t.Fatalf("GeoJSON order must be [lng, lat], got %v", coords)
	}
}
