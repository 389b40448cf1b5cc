package constants

import "strings"

// AllowedElements holds the markup elements the renderer honors in service
// payloads. Anything else is flattened to its text content.
var AllowedElements = map[string]struct{}{
	"h2":     {},
	"span":   {},
	"p":      {},
	"b":      {},
	"strong": {},
	"br":     {},
	"ul":     {},
	"li":     {},
}

// DroppedElements are removed together with their content, not just unwrapped.
var DroppedElements = map[string]struct{}{
	"script": {},
	"style":  {},
	"iframe": {},
}

// NormalizeTag lowercases and trims an element name.
func NormalizeTag(tag string) string {
	return strings.ToLower(strings.TrimSpace(tag))
}
