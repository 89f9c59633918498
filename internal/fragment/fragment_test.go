package fragment

import (
	"errors"
	"math"
	"testing"
)

func TestOrderKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		want int
	}{
		{"1-intro.md", 1},
		{"12-api.md", 12},
		{"007-bond.md", 7},
		{"10", 10},
		{"intro.md", 0},
		{"", 0},
		{"-1-negative.md", 0},
		{"v2-notes.md", 0},
		{"3_underscore.md", 3},
		{"99999999999999999999999999-huge.md", math.MaxInt},
		{"١-arabic-digit.md", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := OrderKey(tt.name); got != tt.want {
				t.Errorf("OrderKey(%q) = %d, want %d", tt.name, got, tt.want)
			}
		})
	}
}

func names(frags []Fragment) []string {
	out := make([]string, len(frags))
	for i, f := range frags {
		out[i] = f.Name
	}
	return out
}

func newFrags(ns ...string) []Fragment {
	frags := make([]Fragment, len(ns))
	for i, n := range ns {
		frags[i] = Fragment{Name: n, Order: OrderKey(n)}
	}
	return frags
}

func equalNames(t *testing.T, got []Fragment, want ...string) {
	t.Helper()
	g := names(got)
	if len(g) != len(want) {
		t.Fatalf("got %v, want %v", g, want)
	}
	for i := range want {
		if g[i] != want[i] {
			t.Fatalf("got %v, want %v", g, want)
		}
	}
}

func TestSort_NumericNotLexicographic(t *testing.T) {
	t.Parallel()

	frags := newFrags("10-j.md", "2-b.md", "1-a.md")
	Sort(frags, nil)
	equalNames(t, frags, "1-a.md", "2-b.md", "10-j.md")
}

func TestSort_NoDigitsFirst(t *testing.T) {
	t.Parallel()

	frags := newFrags("1-a.md", "readme.md", "2-b.md")
	Sort(frags, ByOrder)
	equalNames(t, frags, "readme.md", "1-a.md", "2-b.md")
}

func TestSort_StableTies(t *testing.T) {
	t.Parallel()

	frags := newFrags("3-z.md", "3-a.md", "1-x.md", "3-m.md")
	Sort(frags, ByOrder)
	equalNames(t, frags, "1-x.md", "3-z.md", "3-a.md", "3-m.md")
}

func TestByOrderNatural(t *testing.T) {
	t.Parallel()

	frags := newFrags("3-a10.md", "3-a2.md", "1-x.md", "3-a1.md")
	Sort(frags, ByOrderNatural)
	equalNames(t, frags, "1-x.md", "3-a1.md", "3-a2.md", "3-a10.md")
}

func TestStrategy(t *testing.T) {
	t.Parallel()

	for _, s := range Strategies() {
		if !s.IsValid() {
			t.Errorf("Strategy(%q).IsValid() = false", s)
		}
	}
	if Strategy("alpha").IsValid() {
		t.Error(`Strategy("alpha").IsValid() = true, want false`)
	}

	if c, err := StrategyPrefix.Comparator(); err != nil || c == nil {
		t.Errorf("prefix comparator: %v", err)
	}
	if c, err := Strategy("").Comparator(); err != nil || c == nil {
		t.Errorf("empty strategy should default to prefix: %v", err)
	}
	if c, err := StrategyNatural.Comparator(); err != nil || c == nil {
		t.Errorf("natural comparator: %v", err)
	}
	if _, err := StrategyManifest.Comparator(); !errors.Is(err, ErrInvalidStrategy) {
		t.Errorf("manifest comparator error = %v, want ErrInvalidStrategy", err)
	}
}

func TestFragmentError(t *testing.T) {
	t.Parallel()

	cause := errors.New("boom")
	err := error(&FragmentError{Name: "1-a.md", Path: "/x/1-a.md", Err: cause})

	if !errors.Is(err, ErrFragmentRead) {
		t.Error("errors.Is(err, ErrFragmentRead) = false")
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false")
	}
	var fe *FragmentError
	if !errors.As(err, &fe) || fe.Name != "1-a.md" {
		t.Errorf("errors.As failed or wrong name: %+v", fe)
	}
	if err.Error() == "" {
		t.Error("Error() should not be empty")
	}
}
