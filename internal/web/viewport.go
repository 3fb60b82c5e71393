package web

import (
	"encoding/json"

	"github.com/ranjanoa/portfolio/internal/nav"
)

const scrollEvent = "portfolio:scroll"

// pageViewport stands in for the browser viewport while a fragment request
// is handled. It knows which section ids the page renders and remembers the
// scroll target so the response can tell the page script where to go.
type pageViewport struct {
	ids    map[string]bool
	target string
}

var _ nav.Viewport = (*pageViewport)(nil)

func newPageViewport(ids []string) *pageViewport {
	v := &pageViewport{ids: make(map[string]bool, len(ids))}
	for _, id := range ids {
		v.ids[id] = true
	}
	return v
}

func (v *pageViewport) ScrollTo(id string) bool {
	if !v.ids[id] {
		return false
	}
	v.target = id
	return true
}

// trigger is the HX-Trigger header value for the pending scroll, if any.
func (v *pageViewport) trigger() (string, bool) {
	if v.target == "" {
		return "", false
	}
	b, err := json.Marshal(map[string]map[string]string{
		scrollEvent: {"target": v.target},
	})
	if err != nil {
		return "", false
	}
	return string(b), true
}
