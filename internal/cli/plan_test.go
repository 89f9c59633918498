package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestPlan_Order(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"docs/parts/10-stores.md": "J",
		"docs/parts/1-intro.md":   "A",
		"docs/parts/2-api.md":     "B",
	})

	out, _, err := runCLI(t, "plan", "--root", root)
	if err != nil {
		t.Fatalf("plan: %v", err)
	}

	if !strings.Contains(out, "Merge order (prefix)") {
		t.Errorf("plan output missing title:\n%s", out)
	}
	first := strings.Index(out, "1-intro.md")
	second := strings.Index(out, "2-api.md")
	third := strings.Index(out, "10-stores.md")
	if first < 0 || second < first || third < second {
		t.Errorf("plan output out of order:\n%s", out)
	}
	if !strings.Contains(out, "  3. 10  10-stores.md") {
		t.Errorf("plan output should show the order key:\n%s", out)
	}
	if _, err := os.Stat(filepath.Join(root, "docs", ".cursorrules")); !os.IsNotExist(err) {
		t.Error("plan should not write the output file")
	}
}

func TestPlan_Empty(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "docs", "parts"), 0o755); err != nil {
		t.Fatal(err)
	}

	out, _, err := runCLI(t, "plan", "--root", root)
	if err != nil {
		t.Fatalf("plan: %v", err)
	}
	if !strings.Contains(out, "no fragments in") {
		t.Errorf("plan output = %q", out)
	}
}

func TestPlan_ManifestMarksUnlisted(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"docs/parts/1-a.md":         "A",
		"docs/parts/2-b.md":         "B",
		"docs/parts/fragments.yaml": "version: 1\nfragments:\n  - file: 2-b.md\n    order: 0\n",
	})

	out, _, err := runCLI(t, "plan", "--root", root, "--order", "manifest")
	if err != nil {
		t.Fatalf("plan: %v", err)
	}
	if !strings.Contains(out, "1.  0  2-b.md") || !strings.Contains(out, "2. 1*  1-a.md") {
		t.Errorf("plan output:\n%s", out)
	}
}

func TestPlan_ExcludesOutputInsideSource(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"rulecat.yaml":      "concat:\n  output_path: docs/parts/merged.md\n",
		"docs/parts/1-a.md": "A",
		"docs/parts/2-b.md": "B",
	})

	if _, _, err := runCLI(t, "build", "--root", root); err != nil {
		t.Fatalf("build: %v", err)
	}
	out, _, err := runCLI(t, "plan", "--root", root)
	if err != nil {
		t.Fatalf("plan: %v", err)
	}
	if strings.Contains(out, "merged.md") {
		t.Errorf("plan lists the output file:\n%s", out)
	}
	if !strings.Contains(out, "1. 1  1-a.md") || !strings.Contains(out, "2. 2  2-b.md") {
		t.Errorf("plan output:\n%s", out)
	}
}
