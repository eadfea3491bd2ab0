// Package transfer encodes and decodes the JSON document format used for
// export and import. Decoding is tolerant at field level: a wrongly typed
// field is dropped (left nil) instead of failing the record, so the merge
// can fall back to existing values. Only malformed JSON fails outright.
package transfer

import (
	"encoding/json"
	"time"

	"github.com/andretka/deskplan/internal/domain"
)

// ProjectRecord is one project entry in a transfer document. A nil field
// means the input carried no usable value for it.
type ProjectRecord struct {
	ID          *string      `json:"id"`
	Name        *string      `json:"name"`
	Description *string      `json:"description"`
	Status      *string      `json:"status"`
	UserRole    *string      `json:"userRole"`
	FinishDate  *time.Time   `json:"finishDate"`
	Cost        *float64     `json:"cost"`
	Progress    *float64     `json:"progress"`
	IconBG      *string      `json:"iconBg"`
	Todos       []TodoRecord `json:"todos"`
}

// TodoRecord is one todo entry inside a project record.
type TodoRecord struct {
	ID        *string    `json:"id"`
	Title     *string    `json:"title"`
	Status    *string    `json:"status"`
	CreatedAt *time.Time `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt"`
}

// UnmarshalJSON decodes a project record field by field. The record itself
// must be a JSON object; individual fields of the wrong type decode to nil.
// A todos value that is not an array counts as absent (nil), while a present
// array always yields a non-nil slice so the merge can distinguish "replace
// with empty" from "keep".
func (r *ProjectRecord) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	r.ID = stringField(raw, "id")
	r.Name = stringField(raw, "name")
	r.Description = stringField(raw, "description")
	r.Status = stringField(raw, "status")
	r.UserRole = stringField(raw, "userRole")
	r.FinishDate = dateField(raw, "finishDate")
	r.Cost = numberField(raw, "cost")
	r.Progress = numberField(raw, "progress")
	r.IconBG = stringField(raw, "iconBg")
	r.Todos = nil
	if todos, ok := raw["todos"]; ok {
		r.Todos = decodeTodoList(todos)
	}
	return nil
}

// UnmarshalJSON decodes a todo record with the same field tolerance as
// project records. Non-string titles decode to nil and later normalize to "".
func (t *TodoRecord) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	t.ID = stringField(raw, "id")
	t.Title = stringField(raw, "title")
	t.Status = stringField(raw, "status")
	t.CreatedAt = dateField(raw, "createdAt")
	t.UpdatedAt = dateField(raw, "updatedAt")
	return nil
}

// Seed converts the record into raw todo input for normalization.
func (t TodoRecord) Seed() domain.TodoSeed {
	return domain.TodoSeed{
		ID:        strDeref(t.ID),
		Title:     strDeref(t.Title),
		Status:    strDeref(t.Status),
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

// TodoSeeds converts a todo record list into normalization input.
func TodoSeeds(records []TodoRecord) []domain.TodoSeed {
	seeds := make([]domain.TodoSeed, 0, len(records))
	for _, rec := range records {
		seeds = append(seeds, rec.Seed())
	}
	return seeds
}

func decodeTodoList(data json.RawMessage) []TodoRecord {
	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil || items == nil {
		return nil
	}
	out := make([]TodoRecord, 0, len(items))
	for _, item := range items {
		var rec TodoRecord
		if err := json.Unmarshal(item, &rec); err != nil {
			continue
		}
		out = append(out, rec)
	}
	return out
}

func stringField(raw map[string]json.RawMessage, key string) *string {
	data, ok := raw[key]
	if !ok {
		return nil
	}
	var v string
	if err := json.Unmarshal(data, &v); err != nil {
		return nil
	}
	return &v
}

func numberField(raw map[string]json.RawMessage, key string) *float64 {
	data, ok := raw[key]
	if !ok {
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return nil
	}
	return &v
}

// dateFormats are the accepted date encodings, tried in order.
var dateFormats = []string{time.RFC3339Nano, time.RFC3339, "2006-01-02"}

func dateField(raw map[string]json.RawMessage, key string) *time.Time {
	data, ok := raw[key]
	if !ok {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return nil
	}
	for _, layout := range dateFormats {
		if t, err := time.Parse(layout, s); err == nil {
			t = t.UTC()
			return &t
		}
	}
	return nil
}

func strDeref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
