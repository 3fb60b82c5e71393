package nav

import "net/url"

// State is the transient UI state owned by the page.
type State struct {
	ActiveSectionID string `form:"active"`
	MobileMenuOpen  bool   `form:"menu"`
}

// DefaultState is the state of a freshly loaded page.
func DefaultState() State {
	return State{ActiveSectionID: Home}
}

// Normalize replaces an unknown active section with the default one.
func (s State) Normalize() State {
	if !Known(s.ActiveSectionID) {
		s.ActiveSectionID = Home
	}
	return s
}

// Viewport scrolls the rendering surface. ScrollTo returns false when the
// document has no element with the given id.
type Viewport interface {
	ScrollTo(id string) bool
}

// Navigator applies navigation actions to a State.
type Navigator struct {
	state    State
	viewport Viewport
}

// New returns a Navigator starting from state.
func New(viewport Viewport, state State) *Navigator {
	return &Navigator{state: state, viewport: viewport}
}

// State returns the current state.
func (n *Navigator) State() State {
	return n.state
}

// NavigateTo scrolls to the section and marks it active, closing the mobile
// menu. Ids missing from the document are ignored.
func (n *Navigator) NavigateTo(id string) {
	if id == "" || !n.viewport.ScrollTo(id) {
		return
	}
	n.state.ActiveSectionID = id
	n.state.MobileMenuOpen = false
}

// ToggleMobileMenu flips the mobile menu visibility.
func (n *Navigator) ToggleMobileMenu() {
	n.state.MobileMenuOpen = !n.state.MobileMenuOpen
}

// InitializeFromLocation navigates to the section named by the URL fragment,
// if any.
func (n *Navigator) InitializeFromLocation(location *url.URL) {
	if location == nil || location.Fragment == "" {
		return
	}
	n.NavigateTo(location.Fragment)
}
