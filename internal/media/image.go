// Package media holds image references and their load-failure policy.
package media

// Image is an externally hosted image with an optional fallback used when
// the source fails to load. The fallback is applied at most once.
type Image struct {
	Src      string `yaml:"src"`
	Alt      string `yaml:"alt"`
	Fallback string `yaml:"fallback"`

	fellBack bool
}

// Fail records a load failure of the current source. It swaps in the
// fallback and reports true the first time; later calls do nothing.
func (i *Image) Fail() bool {
	if i.OnErrorSrc() == "" {
		return false
	}
	i.Src = i.Fallback
	i.fellBack = true
	return true
}

// FellBack reports whether the fallback has replaced the source.
func (i *Image) FellBack() bool {
	return i.fellBack
}

// OnErrorSrc is the URL to swap to on load failure, or "" when no further
// substitution is allowed.
func (i Image) OnErrorSrc() string {
	if i.fellBack || i.Fallback == "" || i.Fallback == i.Src {
		return ""
	}
	return i.Fallback
}
