package summary

import (
	"errors"
	"log/slog"
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/atharva-patil-create/discharge-summary-generator/constants"
	"github.com/atharva-patil-create/discharge-summary-generator/internal/render"
)

// ErrNoFields is returned when the payload contains none of the canonical
// field labels, usually because the service returned free-form prose.
var ErrNoFields = errors.New("no recognized discharge-summary fields in payload")

// fieldLine matches an optionally numbered "Label: value" line in plain text.
var fieldLine = regexp.MustCompile(`^\s*(?:\d+\.\s*)?([A-Za-z][A-Za-z' -]*?)\s*:\s*(.*)$`)

// Parse recovers the structured field set from a formatted payload. Labels
// are matched against the canonical taxonomy; unknown labels are dropped and
// logged, never guessed at.
func Parse(payload string, logger *slog.Logger) (*Summary, error) {
	if logger == nil {
		logger = slog.Default()
	}

	lines, _, err := render.Flatten(norm.NFC.String(payload))
	if err != nil {
		return nil, err
	}

	s := newSummary()
	var current constants.Field
	var currentIsList bool
	var unknown []string

	for _, ln := range lines {
		text := strings.TrimSpace(ln.Text())
		if text == "" || ln.Role == render.RoleHeader {
			continue
		}

		if ln.Role == render.RoleBullet {
			if currentIsList {
				s.set(current, strings.TrimSpace(strings.TrimPrefix(text, "-")))
			}
			continue
		}

		label, value, ok := splitField(ln)
		if ok {
			f, known := constants.CanonicalizeField(label)
			if !known {
				unknown = append(unknown, label)
				current, currentIsList = "", false
				continue
			}
			current = f
			_, currentIsList = constants.ListFields[f]
			s.set(f, value)
			continue
		}

		// Unlabelled continuation of the previous prose field.
		if current != "" && !currentIsList {
			s.appendProse(current, text)
		}
	}

	if len(unknown) > 0 {
		logger.Warn("summary.parse.unknown_labels", "labels", unknown)
	}
	if s.Len() == 0 {
		return nil, ErrNoFields
	}
	logger.Info("summary.parse.ok", "fields", s.Len())
	return s, nil
}

// splitField extracts the label and value of a field line. A styled label
// segment is authoritative; plain text falls back to the numbered-line shape.
func splitField(ln render.Line) (label, value string, ok bool) {
	var labelParts []string
	for _, seg := range ln.Segments {
		if seg.Role == render.RoleLabel {
			labelParts = append(labelParts, seg.Text)
		}
	}
	if len(labelParts) > 0 {
		label = strings.TrimSpace(strings.Join(labelParts, ""))
		text := ln.Text()
		if i := strings.Index(text, label); i >= 0 {
			value = strings.TrimPrefix(strings.TrimSpace(text[i+len(label):]), ":")
		}
		return label, strings.TrimSpace(value), true
	}

	m := fieldLine.FindStringSubmatch(ln.Text())
	if m == nil {
		return "", "", false
	}
	return m[1], strings.TrimSpace(m[2]), true
}
