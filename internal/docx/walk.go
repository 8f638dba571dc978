// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package docx

import "strings"

// Role is the structural classification of a paragraph, driving which
// style rules apply to it.
type Role int

const (
	RoleBody Role = iota
	RoleTitle
	RoleHeading1
	RoleHeading2
	RoleHeading3
	RoleCaption
)

func (r Role) String() string {
	switch r {
	case RoleTitle:
		return "title"
	case RoleHeading1:
		return "heading1"
	case RoleHeading2:
		return "heading2"
	case RoleHeading3:
		return "heading3"
	case RoleCaption:
		return "caption"
	}
	return "body"
}

// HeadingLevel returns 1-3 for heading roles and 0 otherwise.
func (r Role) HeadingLevel() int {
	switch r {
	case RoleHeading1:
		return 1
	case RoleHeading2:
		return 2
	case RoleHeading3:
		return 3
	}
	return 0
}

// Node is one top-level body element: exactly one of Paragraph or Table
// is non-nil.
type Node struct {
	Paragraph *Paragraph
	Table     *Table
}

// Nodes walks the document body and returns one classified view per
// top-level paragraph or table, preserving document order. The walk is
// read-only; the returned views are the handles for mutation.
//
// A paragraph immediately preceding a table is inspected as a caption
// candidate; on a match its role becomes Caption and the table view
// carries it.
func (d *Document) Nodes() []Node {
	children := d.body.ChildElements()
	nodes := make([]Node, 0, len(children))
	var lastPara *Paragraph

	for _, el := range children {
		if el.Space != "w" {
			lastPara = nil
			continue
		}
		switch el.Tag {
		case "p":
			p := &Paragraph{el: el}
			p.role = classifyStyle(p.StyleID())
			nodes = append(nodes, Node{Paragraph: p})
			lastPara = p
		case "tbl":
			t := &Table{el: el}
			if lastPara != nil && isCaptionCandidate(lastPara) {
				lastPara.role = RoleCaption
				t.caption = lastPara
			}
			nodes = append(nodes, Node{Table: t})
			lastPara = nil
		default:
			// sectPr, bookmarks and friends break paragraph/table
			// adjacency for caption detection.
			lastPara = nil
		}
	}
	return nodes
}

// classifyStyle maps a paragraph style tag to a role: exact match on
// "Title", else prefix match on heading levels 1-3 (tolerating both the
// "Heading 1" and "Heading1" tag forms), else Body.
func classifyStyle(styleID string) Role {
	if styleID == "Title" {
		return RoleTitle
	}
	norm := strings.ToLower(strings.ReplaceAll(styleID, " ", ""))
	switch {
	case strings.HasPrefix(norm, "heading1"):
		return RoleHeading1
	case strings.HasPrefix(norm, "heading2"):
		return RoleHeading2
	case strings.HasPrefix(norm, "heading3"):
		return RoleHeading3
	}
	return RoleBody
}

// isCaptionCandidate reports whether a paragraph preceding a table looks
// like its caption: the text starts with "table" (case-insensitive), or
// the style tag is "Caption" or contains "caption".
func isCaptionCandidate(p *Paragraph) bool {
	text := strings.ToLower(strings.TrimSpace(p.Text()))
	if strings.HasPrefix(text, "table") {
		return true
	}
	style := p.StyleID()
	return style == "Caption" || strings.Contains(strings.ToLower(style), "caption")
}
