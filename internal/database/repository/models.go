package repository

import (
	"time"

	"github.com/jask/wanderlist/internal/destination"
)

// Move is one journaled reorder.
type Move struct {
	ID            string
	DestinationID destination.ID
	TargetID      destination.ID
	FromIndex     int
	ToIndex       int
	CreatedAt     time.Time
}
