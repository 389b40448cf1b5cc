// Package summary recovers the structured discharge-summary field set from
// the service's formatted payload. The field taxonomy mirrors the extraction
// service's own data model, so a parsed Summary round-trips what the service
// was prompted to emit.
package summary

import (
	"strings"

	"github.com/atharva-patil-create/discharge-summary-generator/constants"
)

// Summary holds the recovered fields. Prose fields carry a single value;
// list fields (treatment, medications, doctors) carry ordered items.
type Summary struct {
	values map[constants.Field]string
	lists  map[constants.Field][]string
}

func newSummary() *Summary {
	return &Summary{
		values: make(map[constants.Field]string),
		lists:  make(map[constants.Field][]string),
	}
}

// Value returns the prose value for a field, empty if absent.
func (s *Summary) Value(f constants.Field) string { return s.values[f] }

// List returns the items of a list field in payload order.
func (s *Summary) List(f constants.Field) []string { return s.lists[f] }

// Len reports how many fields were recovered.
func (s *Summary) Len() int { return len(s.values) + len(s.lists) }

// Row is one field/value pair for tabular export.
type Row struct {
	Field constants.Field
	Value string
}

// Rows returns present fields in canonical service order. List fields are
// joined as bullet lines.
func (s *Summary) Rows() []Row {
	var rows []Row
	for _, f := range constants.AllFields() {
		if v, ok := s.values[f]; ok {
			rows = append(rows, Row{Field: f, Value: v})
			continue
		}
		if items, ok := s.lists[f]; ok {
			bullets := make([]string, len(items))
			for i, it := range items {
				bullets[i] = "- " + it
			}
			rows = append(rows, Row{Field: f, Value: strings.Join(bullets, "\n")})
		}
	}
	return rows
}

func (s *Summary) set(f constants.Field, value string) {
	if _, list := constants.ListFields[f]; list {
		if _, ok := s.lists[f]; !ok {
			s.lists[f] = nil
		}
		if v := strings.TrimSpace(value); v != "" {
			s.lists[f] = append(s.lists[f], v)
		}
		return
	}
	s.values[f] = strings.TrimSpace(value)
}

func (s *Summary) appendProse(f constants.Field, more string) {
	more = strings.TrimSpace(more)
	if more == "" {
		return
	}
	if cur := s.values[f]; cur != "" {
		s.values[f] = cur + " " + more
	} else {
		s.values[f] = more
	}
}
