// Package models defines the journal feature's persistence and transport
// types.
package models

import (
	"encoding/json"
	"time"

	"bloom/core/cycle"
)

// LogEntry is the persisted form of one day's journal data.
type LogEntry struct {
	ID uint `gorm:"primaryKey"`
	// Date is the YYYY-MM-DD day key; unique, later writes overwrite.
	Date string `gorm:"uniqueIndex;size:10"`
	// Marker is the optional period annotation (start|flow|end).
	Marker string `gorm:"size:8"`
	// Symptoms is the JSON-encoded list of symptom tags.
	Symptoms string
	// Mood is the optional mood tag.
	Mood string `gorm:"size:32"`
	// Notes is optional free text.
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ToEntry converts the persisted row to the calculator's entry form.
// A symptoms column that fails to decode is treated as no symptoms.
func (l LogEntry) ToEntry() cycle.Entry {
	var symptoms []string
	if l.Symptoms != "" {
		_ = json.Unmarshal([]byte(l.Symptoms), &symptoms)
	}
	return cycle.Entry{
		Marker:   cycle.Marker(l.Marker),
		Symptoms: symptoms,
		Mood:     l.Mood,
		Notes:    l.Notes,
	}
}

// FromEntry builds the persisted row for a date and entry.
func FromEntry(date string, e cycle.Entry) LogEntry {
	var symptoms string
	if len(e.Symptoms) > 0 {
		raw, _ := json.Marshal(e.Symptoms)
		symptoms = string(raw)
	}
	return LogEntry{
		Date:     date,
		Marker:   string(e.Marker),
		Symptoms: symptoms,
		Mood:     e.Mood,
		Notes:    e.Notes,
	}
}

// EntryRequest is the PUT /journal/:date request body.
type EntryRequest struct {
	Marker   string   `json:"marker"`
	Symptoms []string `json:"symptoms"`
	Mood     string   `json:"mood"`
	Notes    string   `json:"notes"`
}

// EntryResponse is the transport form of one journal entry.
type EntryResponse struct {
	Date     string   `json:"date"`
	Marker   string   `json:"marker,omitempty"`
	Symptoms []string `json:"symptoms,omitempty"`
	Mood     string   `json:"mood,omitempty"`
	Notes    string   `json:"notes,omitempty"`
}
