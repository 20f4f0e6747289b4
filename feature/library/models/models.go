// Package models defines the library feature's catalog, persistence and
// report types.
package models

import "time"

// Kind distinguishes the two catalogs.
type Kind string

const (
	KindWorkout Kind = "workout"
	KindRecipe  Kind = "recipe"
)

// IsValid reports whether k names a known catalog.
func (k Kind) IsValid() bool {
	return k == KindWorkout || k == KindRecipe
}

// Item is one catalog entry. Workouts and recipes share a shape; unused
// fields stay zero.
type Item struct {
	// ID is the stable catalog identifier, e.g. "w_sunrise_flow".
	ID string `json:"id"`
	// Kind is the catalog this item belongs to.
	Kind Kind `json:"kind"`
	// Title is the display name.
	Title string `json:"title"`
	// Category groups items (e.g. "yoga", "strength", "breakfast").
	Category string `json:"category,omitempty"`
	// Level is the difficulty tag for workouts.
	Level string `json:"level,omitempty"`
	// DurationMin is the workout length in minutes.
	DurationMin int `json:"duration_min,omitempty"`
	// Kcal is the energy estimate for recipes.
	Kcal int `json:"kcal,omitempty"`
	// Tags are free-form labels.
	Tags []string `json:"tags,omitempty"`
	// Media is the object key of the item's asset inside the bucket.
	Media string `json:"media,omitempty"`
}

// Favorite is a persisted favorite mark for a catalog item.
type Favorite struct {
	ID        uint   `gorm:"primaryKey"`
	ItemID    string `gorm:"uniqueIndex:idx_fav_item;size:64"`
	Kind      string `gorm:"uniqueIndex:idx_fav_item;size:16"`
	CreatedAt time.Time
}

// CheckResult is the reconciliation outcome for a single catalog key.
type CheckResult struct {
	// ID is the catalog identifier.
	ID string `json:"id"`
	// Kind is the catalog the key belongs to.
	Kind Kind `json:"kind"`
	// Title is the display name, when the catalog knows the key.
	Title string `json:"title,omitempty"`
	// CatalogPresent indicates the key exists in the catalog document.
	CatalogPresent bool `json:"catalog_present"`
	// MediaPresent indicates a media object exists for the key.
	MediaPresent bool `json:"media_present"`
	// Favorite indicates a favorite row references the key.
	Favorite bool `json:"favorite"`
}

// CheckSummary aggregates a check run.
type CheckSummary struct {
	// TotalItems is the number of unique keys across all sources.
	TotalItems int `json:"total_items"`
	// MissingMedia counts catalog items without a media object.
	MissingMedia int `json:"missing_media"`
	// OrphanMedia counts media objects without a catalog entry.
	OrphanMedia int `json:"orphan_media"`
	// DanglingFavorites counts favorites pointing at unknown catalog keys.
	DanglingFavorites int `json:"dangling_favorites"`
}

// CheckReport is the full integrity check output.
type CheckReport struct {
	Results []CheckResult `json:"results"`
	Summary CheckSummary  `json:"summary"`
}

// ListView is a rendered catalog page.
type ListView struct {
	// Kind is the catalog being listed.
	Kind Kind `json:"kind"`
	// Items are the entries in display order.
	Items []Item `json:"items"`
	// HTML is the incrementally rendered list markup.
	HTML string `json:"html"`
}
