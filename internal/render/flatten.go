package render

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"

	"github.com/atharva-patil-create/discharge-summary-generator/constants"
)

// Flatten parses the payload and reduces it to styled lines. Elements on the
// allow-list contribute structure or styling; unknown elements are unwrapped
// to their text content; script-like elements are removed outright. The
// returned Dropped slice names what was discarded so callers can log it.
func Flatten(payload string) ([]Line, []string, error) {
	doc, err := html.Parse(strings.NewReader(payload))
	if err != nil {
		return nil, nil, fmt.Errorf("parse payload: %w", err)
	}
	fl := &flattener{segRole: RoleBody, lineRole: RoleBody}
	fl.walk(doc)
	fl.flush()
	return fl.lines, fl.dropped, nil
}

type flattener struct {
	lines    []Line
	cur      []Segment
	lineRole Role
	segRole  Role
	dropped  []string
}

func (fl *flattener) walk(n *html.Node) {
	switch n.Type {
	case html.TextNode:
		fl.text(n.Data)
		return
	case html.ElementNode:
		tag := constants.NormalizeTag(n.Data)
		if _, drop := constants.DroppedElements[tag]; drop {
			fl.dropped = append(fl.dropped, tag)
			return
		}
		switch tag {
		case "h2":
			fl.flush()
			fl.block(n, RoleHeader, RoleHeader)
			return
		case "br":
			fl.flush()
		case "p", "ul":
			fl.flush()
			fl.walkChildren(n)
			fl.flush()
			return
		case "li":
			fl.flush()
			fl.block(n, RoleBullet, RoleBody)
			return
		case "span":
			role := RoleBody
			if strings.Contains(attr(n, "style"), "color") {
				role = RoleLabel
			}
			fl.inline(n, role)
			return
		case "b", "strong":
			fl.inline(n, RoleLabel)
			return
		default:
			if _, ok := constants.AllowedElements[tag]; !ok {
				// Structural html/head/body wrappers pass through silently;
				// anything else is an unexpected element worth reporting.
				switch tag {
				case "html", "head", "body":
				default:
					fl.dropped = append(fl.dropped, tag)
				}
			}
		}
	}
	fl.walkChildren(n)
}

func (fl *flattener) walkChildren(n *html.Node) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		fl.walk(c)
	}
}

// block renders an element as its own line(s) with a fixed line role.
func (fl *flattener) block(n *html.Node, lineRole, segRole Role) {
	prevLine, prevSeg := fl.lineRole, fl.segRole
	fl.lineRole, fl.segRole = lineRole, segRole
	fl.walkChildren(n)
	fl.flush()
	fl.lineRole, fl.segRole = prevLine, prevSeg
}

// inline renders an element's text with a segment role, inside the current line.
func (fl *flattener) inline(n *html.Node, segRole Role) {
	prev := fl.segRole
	fl.segRole = segRole
	fl.walkChildren(n)
	fl.segRole = prev
}

func (fl *flattener) text(s string) {
	for i, part := range strings.Split(s, "\n") {
		if i > 0 {
			fl.flush()
		}
		if part == "" {
			continue
		}
		fl.cur = append(fl.cur, Segment{Text: part, Role: fl.segRole})
	}
}

func (fl *flattener) flush() {
	line := Line{Role: fl.lineRole, Segments: fl.cur}
	fl.cur = nil

	text := strings.TrimRight(line.Text(), " \t")
	if text == "" && len(fl.lines) > 0 && fl.lines[len(fl.lines)-1].Text() == "" {
		// collapse runs of blank lines
		return
	}
	if line.Role == RoleBody && strings.HasPrefix(strings.TrimSpace(text), "- ") {
		line.Role = RoleBullet
	}
	if text == "" && len(fl.lines) == 0 {
		return
	}
	fl.lines = append(fl.lines, line)
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}
