package wizard

import (
	"errors"
	"testing"

	"github.com/grampay/rulecat/internal/config"
	"github.com/grampay/rulecat/internal/fragment"
)

func TestRun_NoQuestions(t *testing.T) {
	t.Parallel()

	if _, err := Run(nil); !errors.Is(err, ErrNoQuestions) {
		t.Errorf("Run(nil) error = %v, want ErrNoQuestions", err)
	}
}

func TestDefaultQuestions(t *testing.T) {
	t.Parallel()

	cfg := config.NewDefaultConfig()
	cfg.Concat.Order = fragment.StrategyNatural
	qs := DefaultQuestions(cfg)

	ids := map[string]Question{}
	for _, q := range qs {
		ids[q.ID] = q
	}
	for _, id := range []string{"source_dir", "output_path", "order", "separator"} {
		if _, ok := ids[id]; !ok {
			t.Errorf("missing question %q", id)
		}
	}
	if ids["source_dir"].Default != cfg.Concat.SourceDir || !ids["source_dir"].Required {
		t.Errorf("source_dir question = %+v", ids["source_dir"])
	}
	order := ids["order"]
	if order.Default != "natural" || order.Options[0].Value != "natural" {
		t.Errorf("order question should lead with the current strategy: %+v", order)
	}
	if len(order.Options) != len(fragment.Strategies()) {
		t.Errorf("order options = %d, want %d", len(order.Options), len(fragment.Strategies()))
	}
}

func TestDefaultQuestions_NilConfig(t *testing.T) {
	t.Parallel()

	qs := DefaultQuestions(nil)
	if len(qs) == 0 || qs[0].Default != config.DefaultSourceDir {
		t.Errorf("DefaultQuestions(nil) should fall back to defaults: %+v", qs)
	}
}

func TestSaveAnswer(t *testing.T) {
	t.Parallel()

	r := &WizardResult{}
	saveAnswer("source_dir", "notes", r)
	saveAnswer("output_path", "AGENTS.md", r)
	saveAnswer("order", "manifest", r)
	saveAnswer("separator", "newline", r)
	saveAnswer("unknown", "x", r)

	want := WizardResult{SourceDir: "notes", OutputPath: "AGENTS.md", Order: "manifest", Separator: "newline"}
	if *r != want {
		t.Errorf("result = %+v, want %+v", *r, want)
	}
}

func TestNormalizeInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		val, def string
		required bool
		want     string
		wantErr  bool
	}{
		{"  docs  ", "", true, "docs", false},
		{"", "docs/parts", true, "docs/parts", false},
		{" ", "", true, "", true},
		{"", "", false, "", false},
	}
	for _, tt := range tests {
		got, err := normalizeInput(tt.val, tt.def, tt.required)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("normalizeInput(%q, %q, %v) = %q, %v", tt.val, tt.def, tt.required, got, err)
		}
		if tt.wantErr && !errors.Is(err, ErrRequired) {
			t.Errorf("error = %v, want ErrRequired", err)
		}
	}
}

func TestApply(t *testing.T) {
	t.Parallel()

	cfg := config.NewDefaultConfig()
	Apply(&WizardResult{SourceDir: "notes", Order: "natural", Separator: "blank_line"}, cfg)

	if cfg.Concat.SourceDir != "notes" {
		t.Errorf("SourceDir = %q", cfg.Concat.SourceDir)
	}
	if cfg.Concat.OutputPath != config.DefaultOutputPath {
		t.Errorf("empty answer should keep OutputPath, got %q", cfg.Concat.OutputPath)
	}
	if cfg.Concat.Order != fragment.StrategyNatural {
		t.Errorf("Order = %q", cfg.Concat.Order)
	}
	if cfg.Concat.Separator != "\n\n" {
		t.Errorf("Separator = %q", cfg.Concat.Separator)
	}

	Apply(nil, cfg)
	Apply(&WizardResult{}, nil)
}
