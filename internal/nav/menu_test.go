package nav

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func activeIDs(links []Link) []string {
	var ids []string
	for _, l := range links {
		if l.Active {
			ids = append(ids, l.ID)
		}
	}
	return ids
}

func TestLinksExactlyOneActive(t *testing.T) {
	for _, s := range Sections() {
		state := State{ActiveSectionID: s.ID}
		for _, variant := range []Variant{Desktop, Mobile} {
			links := Links(state, variant)
			require.Len(t, links, 5)
			assert.Equal(t, []string{s.ID}, activeIDs(links))
		}
	}
}

func TestLinksNoneActiveForUnknownID(t *testing.T) {
	for _, id := range []string{"", "nonexistent", "name"} {
		assert.Empty(t, activeIDs(Links(State{ActiveSectionID: id}, Desktop)))
		assert.Empty(t, activeIDs(Links(State{ActiveSectionID: id}, Mobile)))
	}
}

func TestLinkClasses(t *testing.T) {
	links := Links(State{ActiveSectionID: About}, Desktop)
	assert.Equal(t, "#home", links[0].Href)
	assert.Contains(t, links[0].Class, desktopClasses)
	assert.NotContains(t, links[0].Class, activeClasses)
	assert.True(t, strings.HasSuffix(links[1].Class, activeClasses))

	mobile := Links(State{ActiveSectionID: About}, Mobile)
	assert.Contains(t, mobile[0].Class, mobileClasses)
	assert.NotContains(t, mobile[0].Class, desktopClasses)
}

func TestRenderClosed(t *testing.T) {
	m := Render(DefaultState())

	assert.Len(t, m.Desktop, 5)
	assert.Nil(t, m.Mobile)
	assert.False(t, m.MobileOpen)
	assert.Equal(t, "fas fa-bars", m.ToggleIcon)
}

func TestRenderOpen(t *testing.T) {
	m := Render(State{ActiveSectionID: Projects, MobileMenuOpen: true})

	assert.Len(t, m.Mobile, 5)
	assert.True(t, m.MobileOpen)
	assert.Equal(t, "fas fa-times", m.ToggleIcon)
	assert.Equal(t, []string{Projects}, activeIDs(m.Mobile))
	assert.Equal(t, []string{Projects}, activeIDs(m.Desktop))
}

func TestSectionsOrder(t *testing.T) {
	var ids []string
	for _, s := range Sections() {
		ids = append(ids, s.ID)
	}
	assert.Equal(t, []string{Home, About, Projects, AppDemo, Contact}, ids)
	assert.True(t, Known(AppDemo))
	assert.False(t, Known("appdemo"))
}
