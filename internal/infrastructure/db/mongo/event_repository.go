package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/kevlarmarlon20-eng/SwiftCargo/internal/core/domain"
)

const eventsCollection = "status_events"

// EventRepository keeps the status change audit trail.
type EventRepository struct {
	coll *mongo.Collection
}

func NewEventRepository(db *mongo.Database) *EventRepository {
	return &EventRepository{coll: db.Collection(eventsCollection)}
}

// InsertEvent persists a status event. Re-inserting the same event id is a no-op.
func (r *EventRepository) InsertEvent(ctx context.Context, event *domain.StatusEvent) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.coll.InsertOne(ctx, eventDocument(event, time.Now().UTC()))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil
		}
		return fmt.Errorf("insert status event: %w", err)
	}
	return nil
}

// EnsureIndexes creates the indexes used by the audit collection.
func (r *EventRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "event_id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "tracking_number", Value: 1}, {Key: "timestamp", Value: 1}}},
	}
	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}

func eventDocument(event *domain.StatusEvent, recordedAt time.Time) bson.M {
	doc := bson.M{
		"event_id":        event.EventID,
		"tracking_number": event.TrackingNumber,
		"status":          string(event.Status),
		"location":        event.Location,
		"description":     event.Description,
		"timestamp":       event.Timestamp.UTC(),
		"recorded_at":     recordedAt,
	}
	if event.Coordinate != nil {
		doc["coordinate"] = bson.M{
			"type":        "Point",
			"coordinates": bson.A{event.Coordinate.Lng, event.Coordinate.Lat},
		}
	}
	return doc
}
