// Package content loads the page copy: hero, bio, project cards, demo block,
// contact intro and social links.
package content

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"html/template"
	"os"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"gopkg.in/yaml.v3"

	"github.com/ranjanoa/portfolio/internal/media"
	"github.com/ranjanoa/portfolio/internal/nav"
)

//go:embed profile.yaml
var defaultProfile []byte

type Site struct {
	Brand     string `yaml:"brand"`
	Owner     string `yaml:"owner"`
	BuiltWith string `yaml:"built_with"`
}

type Hero struct {
	Role    string      `yaml:"role"`
	Tagline string      `yaml:"tagline"`
	Image   media.Image `yaml:"image"`
}

// Link is a call to action. Section links navigate within the page; the
// rest open Href in a new tab.
type Link struct {
	Label   string `yaml:"label"`
	Section string `yaml:"section"`
	Href    string `yaml:"href"`
}

func (l Link) Internal() bool {
	return l.Section != ""
}

type Project struct {
	Title       string      `yaml:"title"`
	Description string      `yaml:"description"`
	Image       media.Image `yaml:"image"`
	Tags        []string    `yaml:"tags"`
	TagColor    string      `yaml:"tag_color"`
	Link        Link        `yaml:"link"`
}

type Demo struct {
	Enabled  bool   `yaml:"enabled"`
	Title    string `yaml:"title"`
	Intro    string `yaml:"intro"`
	EmbedURL string `yaml:"embed_url"`
	Note     string `yaml:"note"`
}

type Contact struct {
	Title string `yaml:"title"`
	Intro string `yaml:"intro"`
}

type Social struct {
	Label string `yaml:"label"`
	Href  string `yaml:"href"`
	Icon  string `yaml:"icon"`
}

// External reports whether the link leaves the page in a new tab. Mail
// links do not.
func (s Social) External() bool {
	return !strings.HasPrefix(s.Href, "mailto:")
}

// Page is everything rendered on the single page.
type Page struct {
	Site     Site      `yaml:"site"`
	Hero     Hero      `yaml:"hero"`
	About    string    `yaml:"about"`
	Projects []Project `yaml:"projects"`
	Demo     Demo      `yaml:"demo"`
	Contact  Contact   `yaml:"contact"`
	Socials  []Social  `yaml:"socials"`

	AboutHTML template.HTML `yaml:"-"`
}

// Sections lists the section ids the page renders. A disabled demo leaves
// app-demo out.
func (p *Page) Sections() []string {
	var ids []string
	for _, s := range nav.Sections() {
		if s.ID == nav.AppDemo && !p.Demo.Enabled {
			continue
		}
		ids = append(ids, s.ID)
	}
	return ids
}

// Load reads the page from path, or the embedded profile when path is empty.
func Load(path string) (*Page, error) {
	data := defaultProfile
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read content: %w", err)
		}
		data = b
	}
	return Parse(data)
}

// Parse decodes and validates a YAML page and renders its markdown.
func Parse(data []byte) (*Page, error) {
	var p Page
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("decode content: %w", err)
	}
	if err := p.validate(); err != nil {
		return nil, fmt.Errorf("invalid content: %w", err)
	}
	html, err := renderMarkdown(p.About)
	if err != nil {
		return nil, fmt.Errorf("render about: %w", err)
	}
	p.AboutHTML = html
	return &p, nil
}

func (p *Page) validate() error {
	var errs []error
	if p.Site.Owner == "" {
		errs = append(errs, errors.New("site.owner is required"))
	}
	for i, proj := range p.Projects {
		if proj.Title == "" {
			errs = append(errs, fmt.Errorf("projects[%d]: title is required", i))
		}
		if proj.Link.Section != "" && !nav.Known(proj.Link.Section) {
			errs = append(errs, fmt.Errorf("projects[%d]: unknown section %q", i, proj.Link.Section))
		}
	}
	return errors.Join(errs...)
}

var md = goldmark.New(goldmark.WithExtensions(extension.GFM))

func renderMarkdown(src string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}
