package domain

import "time"

// StatusEvent is the audit record written for every applied status update.
type StatusEvent struct {
	EventID        string
	TrackingNumber string
	Status         PackageStatus
	Location       string
	Description    string
	Coordinate     *Coordinate // set only when the location was already known
	Timestamp      time.Time
}
