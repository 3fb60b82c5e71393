package nav

import "strings"

// Variant selects the desktop or mobile presentation of the links.
type Variant int

const (
	Desktop Variant = iota
	Mobile
)

const (
	baseClasses    = "block text-gray-600 hover:text-indigo-600 transition duration-300"
	desktopClasses = "px-3 py-2 rounded-md font-medium text-lg"
	mobileClasses  = "px-4 py-2 text-base"
	activeClasses  = "text-indigo-600 font-bold"
)

// Link is a rendered navigation entry.
type Link struct {
	Section
	Href   string
	Active bool
	Class  string
}

// Menu is the render tree of the header navigation for one State.
type Menu struct {
	Desktop    []Link
	Mobile     []Link // nil while the mobile menu is closed
	MobileOpen bool
	ToggleIcon string
}

// Links renders every section link for the variant. Exactly the link whose id
// equals the active section is marked active.
func Links(state State, variant Variant) []Link {
	links := make([]Link, 0, len(sections))
	for _, s := range sections {
		active := s.ID == state.ActiveSectionID
		links = append(links, Link{
			Section: s,
			Href:    "#" + s.ID,
			Active:  active,
			Class:   linkClass(variant, active),
		})
	}
	return links
}

// Render builds the header menu. It has no side effects.
func Render(state State) Menu {
	m := Menu{
		Desktop:    Links(state, Desktop),
		MobileOpen: state.MobileMenuOpen,
		ToggleIcon: "fas fa-bars",
	}
	if state.MobileMenuOpen {
		m.Mobile = Links(state, Mobile)
		m.ToggleIcon = "fas fa-times"
	}
	return m
}

func linkClass(variant Variant, active bool) string {
	parts := []string{baseClasses, desktopClasses}
	if variant == Mobile {
		parts[1] = mobileClasses
	}
	if active {
		parts = append(parts, activeClasses)
	}
	return strings.Join(parts, " ")
}
