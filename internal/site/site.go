// Package site models the navigation configuration consumed by the static
// site renderer: the sidebar tree and the top navigation bar. The types are
// plain data; rendering is the renderer's job.
package site

import (
	"errors"
	"fmt"
	"path"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/grampay/rulecat/internal/fragment"
	"github.com/grampay/rulecat/internal/manifest"
)

// ErrInvalidSite indicates a malformed navigation structure.
var ErrInvalidSite = errors.New("site: invalid navigation")

// Item is one navigation entry.
type Item struct {
	Text string `yaml:"text"`
	Link string `yaml:"link"`
}

// Section groups sidebar items under a label.
type Section struct {
	Text  string `yaml:"text"`
	Items []Item `yaml:"items"`
}

// Site is the renderer configuration.
type Site struct {
	Lang        string    `yaml:"lang,omitempty"`
	Title       string    `yaml:"title,omitempty"`
	Description string    `yaml:"description,omitempty"`
	SiteTitle   string    `yaml:"site_title,omitempty"`
	Sidebar     []Section `yaml:"sidebar,omitempty"`
	Nav         []Item    `yaml:"nav,omitempty"`
}

// Validate checks that every section and item carries a label and every
// item a link. Links are not resolved.
func (s *Site) Validate() error {
	var problems []string
	for i, sec := range s.Sidebar {
		if strings.TrimSpace(sec.Text) == "" {
			problems = append(problems, fmt.Sprintf("sidebar[%d]: empty text", i))
		}
		for j, it := range sec.Items {
			problems = append(problems, checkItem(fmt.Sprintf("sidebar[%d].items[%d]", i, j), it)...)
		}
	}
	for i, it := range s.Nav {
		problems = append(problems, checkItem(fmt.Sprintf("nav[%d]", i), it)...)
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidSite, strings.Join(problems, "; "))
	}
	return nil
}

func checkItem(where string, it Item) []string {
	var problems []string
	if strings.TrimSpace(it.Text) == "" {
		problems = append(problems, where+": empty text")
	}
	if strings.TrimSpace(it.Link) == "" {
		problems = append(problems, where+": empty link")
	}
	return problems
}

// Links returns sidebar links in display order.
func (s *Site) Links() []string {
	var links []string
	for _, sec := range s.Sidebar {
		for _, it := range sec.Items {
			links = append(links, it.Link)
		}
	}
	return links
}

// OrderFromSidebar derives a manifest from the sidebar. A fragment whose
// name without extension equals the last element of a link gets the link's
// 1-based display position. Fragments the sidebar does not mention follow,
// in their current order. Links with no matching fragment are ignored.
func (s *Site) OrderFromSidebar(frags []fragment.Fragment) *manifest.Manifest {
	byStem := make(map[string]int, len(frags))
	for i, f := range frags {
		byStem[stem(f.Name)] = i
	}

	m := manifest.New()
	used := make([]bool, len(frags))
	order := 0
	for _, link := range s.Links() {
		i, ok := byStem[norm.NFC.String(path.Base(strings.TrimSuffix(link, "/")))]
		if !ok || used[i] {
			continue
		}
		used[i] = true
		order++
		m.Fragments = append(m.Fragments, manifest.Entry{File: frags[i].Name, Order: order})
	}
	for i, f := range frags {
		if used[i] {
			continue
		}
		order++
		m.Fragments = append(m.Fragments, manifest.Entry{File: f.Name, Order: order})
	}
	return m
}

// stem strips the extension and folds name to NFC, matching links typed in
// NFC against names that macOS file systems report in NFD.
func stem(name string) string {
	return norm.NFC.String(strings.TrimSuffix(name, path.Ext(name)))
}
