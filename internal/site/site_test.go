package site

import (
	"errors"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/grampay/rulecat/internal/fragment"
)

const sampleYAML = `
lang: ru-RU
title: Документация
sidebar:
  - text: Введение
    items:
      - text: Ассистент
        link: /parts/1-assistent
      - text: Общие принципы
        link: /parts/3-general-principles
  - text: FSD и слои
    items:
      - text: CSS
        link: /parts/11-css
      - text: Stores
        link: /parts/10-stores
nav:
  - text: Главная
    link: /
`

func loadSample(t *testing.T) *Site {
	t.Helper()
	var s Site
	if err := yaml.Unmarshal([]byte(sampleYAML), &s); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	return &s
}

func TestValidate(t *testing.T) {
	t.Parallel()

	s := loadSample(t)
	if err := s.Validate(); err != nil {
		t.Errorf("Validate() error for valid site: %v", err)
	}

	s.Sidebar[0].Items[1].Link = ""
	s.Nav[0].Text = " "
	err := s.Validate()
	if !errors.Is(err, ErrInvalidSite) {
		t.Fatalf("Validate() error = %v, want ErrInvalidSite", err)
	}
}

func TestValidate_Empty(t *testing.T) {
	t.Parallel()

	if err := (&Site{}).Validate(); err != nil {
		t.Errorf("empty site should be valid: %v", err)
	}
}

func TestLinks(t *testing.T) {
	t.Parallel()

	got := loadSample(t).Links()
	want := []string{"/parts/1-assistent", "/parts/3-general-principles", "/parts/11-css", "/parts/10-stores"}
	if len(got) != len(want) {
		t.Fatalf("Links() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Links()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestOrderFromSidebar(t *testing.T) {
	t.Parallel()

	names := []string{"1-assistent.md", "2-unlisted.md", "3-general-principles.md", "10-stores.md", "11-css.md"}
	frags := make([]fragment.Fragment, len(names))
	for i, n := range names {
		frags[i] = fragment.Fragment{Name: n, Order: fragment.OrderKey(n)}
	}

	m := loadSample(t).OrderFromSidebar(frags)
	if err := m.Validate(); err != nil {
		t.Fatalf("derived manifest invalid: %v", err)
	}

	fragment.Sort(frags, m.Comparator())
	want := []string{"1-assistent.md", "3-general-principles.md", "11-css.md", "10-stores.md", "2-unlisted.md"}
	for i, w := range want {
		if frags[i].Name != w {
			t.Fatalf("order[%d] = %s, want %s", i, frags[i].Name, w)
		}
	}
	if missing := m.Missing(frags); len(missing) != 0 {
		t.Errorf("derived manifest misses %v", missing)
	}
}

func TestOrderFromSidebar_IgnoresUnknownAndRepeatedLinks(t *testing.T) {
	t.Parallel()

	s := &Site{Sidebar: []Section{{Text: "S", Items: []Item{
		{Text: "gone", Link: "/parts/99-gone"},
		{Text: "b", Link: "/parts/2-b/"},
		{Text: "b again", Link: "/parts/2-b"},
	}}}}
	frags := []fragment.Fragment{{Name: "1-a.md", Order: 1}, {Name: "2-b.md", Order: 2}}

	m := s.OrderFromSidebar(frags)
	if len(m.Fragments) != 2 {
		t.Fatalf("entries = %+v, want 2", m.Fragments)
	}
	if m.Fragments[0].File != "2-b.md" || m.Fragments[0].Order != 1 {
		t.Errorf("first entry = %+v", m.Fragments[0])
	}
	if m.Fragments[1].File != "1-a.md" || m.Fragments[1].Order != 2 {
		t.Errorf("second entry = %+v", m.Fragments[1])
	}
}

func TestOrderFromSidebar_NormalizesUnicode(t *testing.T) {
	t.Parallel()

	// The file name spells U+0439 decomposed (NFD); the link spells it composed.
	nfd := "2-\u0438\u0306.md"
	s := &Site{Sidebar: []Section{{
		Text:  "Sections",
		Items: []Item{{Text: "Work", Link: "/parts/2-\u0439"}},
	}}}
	frags := []fragment.Fragment{
		{Name: "1-intro.md", Order: 1},
		{Name: nfd, Order: 2},
	}

	m := s.OrderFromSidebar(frags)
	if len(m.Fragments) != 2 || m.Fragments[0].File != nfd || m.Fragments[0].Order != 1 {
		t.Errorf("fragments = %+v, want the NFD file matched first", m.Fragments)
	}
}
