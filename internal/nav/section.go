// Package nav tracks which page section is active and whether the mobile
// menu is open, and renders the navigation links for a given state.
package nav

import "slices"

// Section identifiers addressable on the page.
const (
	Home     = "home"
	About    = "about"
	Projects = "projects"
	AppDemo  = "app-demo"
	Contact  = "contact"
)

// Section is a named, anchor-addressable region of the page.
type Section struct {
	ID    string
	Label string
}

var sections = []Section{
	{ID: Home, Label: "Home"},
	{ID: About, Label: "About"},
	{ID: Projects, Label: "Projects"},
	{ID: AppDemo, Label: "App Demo"},
	{ID: Contact, Label: "Contact"},
}

// Sections returns the fixed sections in page order.
func Sections() []Section {
	return slices.Clone(sections)
}

// Known reports whether id names one of the fixed sections.
func Known(id string) bool {
	return slices.ContainsFunc(sections, func(s Section) bool { return s.ID == id })
}
