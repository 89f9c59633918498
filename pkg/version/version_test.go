package version

import "testing"

func TestGetFullVersion(t *testing.T) {
	oldV, oldC, oldD := Version, Commit, Date
	t.Cleanup(func() { Version, Commit, Date = oldV, oldC, oldD })

	Version, Commit, Date = "v1.2.3", "abc123", "2026-01-02"
	if got := GetVersion(); got != "v1.2.3" {
		t.Errorf("GetVersion() = %q", got)
	}
	if got := GetCommit(); got != "abc123" {
		t.Errorf("GetCommit() = %q", got)
	}
	if got := GetDate(); got != "2026-01-02" {
		t.Errorf("GetDate() = %q", got)
	}
	want := "v1.2.3 (commit: abc123, built: 2026-01-02)"
	if got := GetFullVersion(); got != want {
		t.Errorf("GetFullVersion() = %q, want %q", got, want)
	}
}
