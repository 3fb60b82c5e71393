package nav

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeViewport struct {
	ids      map[string]bool
	scrolled []string
}

func newFakeViewport(ids ...string) *fakeViewport {
	v := &fakeViewport{ids: map[string]bool{}}
	for _, id := range ids {
		v.ids[id] = true
	}
	return v
}

func (v *fakeViewport) ScrollTo(id string) bool {
	if !v.ids[id] {
		return false
	}
	v.scrolled = append(v.scrolled, id)
	return true
}

func allSections() *fakeViewport {
	return newFakeViewport(Home, About, Projects, AppDemo, Contact)
}

func TestDefaultState(t *testing.T) {
	n := New(allSections(), DefaultState())
	n.InitializeFromLocation(&url.URL{Path: "/"})

	assert.Equal(t, Home, n.State().ActiveSectionID)
	assert.False(t, n.State().MobileMenuOpen)
}

func TestInitializeFromLocation(t *testing.T) {
	u, err := url.Parse("https://example.com/#projects")
	require.NoError(t, err)

	v := allSections()
	n := New(v, DefaultState())
	n.InitializeFromLocation(u)

	assert.Equal(t, Projects, n.State().ActiveSectionID)
	assert.Equal(t, []string{Projects}, v.scrolled)
}

func TestInitializeFromLocationNil(t *testing.T) {
	v := allSections()
	n := New(v, DefaultState())
	n.InitializeFromLocation(nil)

	assert.Equal(t, DefaultState(), n.State())
	assert.Empty(t, v.scrolled)
}

func TestNavigateTo(t *testing.T) {
	for _, start := range []State{
		{ActiveSectionID: Home},
		{ActiveSectionID: About, MobileMenuOpen: true},
		{ActiveSectionID: Contact, MobileMenuOpen: true},
	} {
		v := allSections()
		n := New(v, start)
		n.NavigateTo(Contact)

		assert.Equal(t, State{ActiveSectionID: Contact}, n.State())
		assert.Equal(t, []string{Contact}, v.scrolled)
	}
}

func TestNavigateToMissingSection(t *testing.T) {
	start := State{ActiveSectionID: About, MobileMenuOpen: true}
	v := allSections()
	n := New(v, start)

	n.NavigateTo("nonexistent")
	n.NavigateTo("")

	assert.Equal(t, start, n.State())
	assert.Empty(t, v.scrolled)
}

func TestNavigateToSectionAbsentFromDocument(t *testing.T) {
	v := newFakeViewport(Home, About, Projects, Contact)
	n := New(v, DefaultState())

	n.NavigateTo(AppDemo)

	assert.Equal(t, DefaultState(), n.State())
}

func TestToggleMobileMenu(t *testing.T) {
	n := New(allSections(), DefaultState())

	n.ToggleMobileMenu()
	assert.True(t, n.State().MobileMenuOpen)
	n.ToggleMobileMenu()
	assert.False(t, n.State().MobileMenuOpen)
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, Home, State{ActiveSectionID: "bogus"}.Normalize().ActiveSectionID)
	assert.Equal(t, Home, State{}.Normalize().ActiveSectionID)

	s := State{ActiveSectionID: AppDemo, MobileMenuOpen: true}
	assert.Equal(t, s, s.Normalize())
}
