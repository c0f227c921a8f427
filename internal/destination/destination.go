package destination

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrDuplicateID        = errors.New("duplicate destination id")
	ErrInvalidDestination = errors.New("invalid destination")
)

// ID identifies a destination. It is the only key used for list diffing.
type ID int

// ImageRef points at a static asset. Assets are referenced, never loaded.
type ImageRef struct {
	Asset string
	Alt   string
	Glyph string
}

// Destination is one travel-location card.
type Destination struct {
	ID       ID
	Name     string
	Location string
	Image    ImageRef
}

// Defaults returns the fixed set of destinations shown on first launch.
func Defaults() []Destination {
	return []Destination{
		{
			ID:       1,
			Name:     "Scotland Island",
			Location: "Sydney, Australia",
			Image:    ImageRef{Asset: "public/beach.jpeg", Alt: "Scotland Island", Glyph: "🏝"},
		},
		{
			ID:       2,
			Name:     "The Charles Grand Brasserie & Bar",
			Location: "Lorem ipsum, Dolor",
			Image:    ImageRef{Asset: "public/paris.jpeg", Alt: "The Charles Grand Brasserie & Bar", Glyph: "🍷"},
		},
		{
			ID:       3,
			Name:     "Bridge Climb",
			Location: "Dolor, Sit amet",
			Image:    ImageRef{Asset: "public/bridge.webp", Alt: "Bridge Climb", Glyph: "🌉"},
		},
		{
			ID:       4,
			Name:     "Australia Park",
			Location: "Sydney, Australia",
			Image:    ImageRef{Asset: "public/centralpark.jpeg", Alt: "Australia Park", Glyph: "🌳"},
		},
	}
}

func validate(items []Destination) error {
	seen := make(map[ID]struct{}, len(items))
	for _, d := range items {
		if strings.TrimSpace(d.Name) == "" {
			return fmt.Errorf("%w: id %d has no name", ErrInvalidDestination, d.ID)
		}
		if _, ok := seen[d.ID]; ok {
			return fmt.Errorf("%w: %d", ErrDuplicateID, d.ID)
		}
		seen[d.ID] = struct{}{}
	}
	return nil
}
