package transfer

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/andretka/deskplan/internal/domain"
)

// ParseError reports a transfer document that could not be parsed at all.
// Imports abort before touching any state when decoding returns one.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing transfer document: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Decode parses a transfer document into project records. Malformed JSON
// yields a *ParseError; field-level problems inside well-formed records do
// not fail (see ProjectRecord.UnmarshalJSON).
func Decode(data []byte) ([]ProjectRecord, error) {
	var records []ProjectRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, &ParseError{Err: err}
	}
	return records, nil
}

// Encode renders records as an indented JSON document.
func Encode(records []ProjectRecord) ([]byte, error) {
	return json.MarshalIndent(records, "", "  ")
}

// Load reads and decodes a transfer document from disk.
func Load(path string) ([]ProjectRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Decode(data)
}

// Save encodes records and writes them to path, appending a .json extension
// when the chosen name has none.
func Save(path string, records []ProjectRecord) (string, error) {
	if filepath.Ext(path) == "" {
		path += ".json"
	}
	data, err := Encode(records)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}

// Snapshot produces the transfer record for a project: every field including
// todos, dates as RFC 3339 strings, no view or behavior attached.
func Snapshot(p *domain.Project) ProjectRecord {
	todos := make([]TodoRecord, 0, len(p.Todos))
	for _, t := range p.Todos {
		todos = append(todos, TodoRecord{
			ID:        ptr(t.ID),
			Title:     ptr(t.Title),
			Status:    ptr(string(t.Status)),
			CreatedAt: ptr(t.CreatedAt),
			UpdatedAt: ptr(t.UpdatedAt),
		})
	}
	return ProjectRecord{
		ID:          ptr(p.ID),
		Name:        ptr(p.Name),
		Description: ptr(p.Description),
		Status:      ptr(string(p.Status)),
		UserRole:    ptr(string(p.UserRole)),
		FinishDate:  ptr(p.FinishDate),
		Cost:        ptr(p.Cost),
		Progress:    ptr(p.Progress),
		IconBG:      ptr(p.IconBG),
		Todos:       todos,
	}
}

// SnapshotAll produces transfer records for every project, in order.
func SnapshotAll(projects []*domain.Project) []ProjectRecord {
	records := make([]ProjectRecord, 0, len(projects))
	for _, p := range projects {
		records = append(records, Snapshot(p))
	}
	return records
}

func ptr[T any](v T) *T { return &v }
