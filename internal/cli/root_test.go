package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/halmaawali/rollbook/internal/report"
)

// runCmd executes one CLI invocation against the given database file. A
// fresh command tree is built per call, matching one process run.
func runCmd(t *testing.T, dbPath string, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--db", dbPath}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestMemberCommands(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	out, err := runCmd(t, dbPath, "member", "add", "Ali")
	if err != nil {
		t.Fatalf("member add failed: %v", err)
	}
	if !strings.Contains(out, "Added Ali") {
		t.Errorf("add output = %q", out)
	}

	out, err = runCmd(t, dbPath, "member", "list")
	if err != nil {
		t.Fatalf("member list failed: %v", err)
	}
	if !strings.Contains(out, "Ali") || !strings.Contains(out, "Total: 1") {
		t.Errorf("list output = %q", out)
	}
	if !strings.Contains(out, report.UnassignedLabel) {
		t.Errorf("list output missing unassigned block label: %q", out)
	}

	if _, err = runCmd(t, dbPath, "member", "add", "   "); err == nil {
		t.Error("expected blank name to fail")
	}
}

func TestMemberImportCommand(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "test.db")
	listPath := filepath.Join(dir, "names.txt")
	if err := os.WriteFile(listPath, []byte("Ali\n\nOmar\nSaid\n"), 0o644); err != nil {
		t.Fatalf("write name list: %v", err)
	}

	out, err := runCmd(t, dbPath, "member", "import", listPath)
	if err != nil {
		t.Fatalf("member import failed: %v", err)
	}
	if !strings.Contains(out, "Imported 3 members") {
		t.Errorf("import output = %q", out)
	}
}

func TestSessionRecordAndReport(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "test.db")

	for _, name := range []string{"Ali", "Omar"} {
		if _, err := runCmd(t, dbPath, "member", "add", name); err != nil {
			t.Fatalf("member add %s failed: %v", name, err)
		}
	}

	out, err := runCmd(t, dbPath, "session", "record",
		"--date", "2025-03-05", "--topic", "العقد والقانون", "--absent", "Omar")
	if err != nil {
		t.Fatalf("session record failed: %v", err)
	}
	if !strings.Contains(out, "1 present, 1 absent, 0 excused") {
		t.Errorf("record output = %q", out)
	}

	out, err = runCmd(t, dbPath, "session", "list")
	if err != nil {
		t.Fatalf("session list failed: %v", err)
	}
	if !strings.Contains(out, "2025-03-05") || !strings.Contains(out, "50%") {
		t.Errorf("session list output = %q", out)
	}

	out, err = runCmd(t, dbPath, "report", "summary")
	if err != nil {
		t.Fatalf("report summary failed: %v", err)
	}
	if !strings.Contains(out, "Ali") || !strings.Contains(out, "Omar") {
		t.Errorf("summary output = %q", out)
	}

	htmlPath := filepath.Join(dir, "report.html")
	if _, err = runCmd(t, dbPath, "report", "summary", "--html", htmlPath); err != nil {
		t.Fatalf("report summary --html failed: %v", err)
	}
	html, err := os.ReadFile(htmlPath)
	if err != nil {
		t.Fatalf("read report file: %v", err)
	}
	if !strings.Contains(string(html), "<table") {
		t.Error("html report missing table markup")
	}
}

func TestBackupExportImportCommands(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "test.db")
	backupPath := filepath.Join(dir, "backup.json")

	if _, err := runCmd(t, dbPath, "member", "add", "Ali"); err != nil {
		t.Fatalf("member add failed: %v", err)
	}
	if _, err := runCmd(t, dbPath, "backup", "export", backupPath); err != nil {
		t.Fatalf("backup export failed: %v", err)
	}

	freshPath := filepath.Join(dir, "fresh.db")
	if _, err := runCmd(t, freshPath, "backup", "import", backupPath); err != nil {
		t.Fatalf("backup import failed: %v", err)
	}
	out, err := runCmd(t, freshPath, "member", "list")
	if err != nil {
		t.Fatalf("member list failed: %v", err)
	}
	if !strings.Contains(out, "Ali") {
		t.Errorf("imported roster missing member: %q", out)
	}

	badPath := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(badPath, []byte(`[1,2,3]`), 0o644); err != nil {
		t.Fatalf("write bad backup: %v", err)
	}
	if _, err := runCmd(t, freshPath, "backup", "import", badPath); err == nil {
		t.Error("expected invalid backup file to fail")
	}
}

func TestWipeCommandRequiresConfirmation(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	if _, err := runCmd(t, dbPath, "member", "add", "Ali"); err != nil {
		t.Fatalf("member add failed: %v", err)
	}
	if _, err := runCmd(t, dbPath, "wipe"); err == nil {
		t.Error("expected wipe without --yes to fail")
	}
	if _, err := runCmd(t, dbPath, "wipe", "--yes"); err != nil {
		t.Fatalf("wipe --yes failed: %v", err)
	}

	out, err := runCmd(t, dbPath, "member", "list")
	if err != nil {
		t.Fatalf("member list failed: %v", err)
	}
	if !strings.Contains(out, "Total: 0") {
		t.Errorf("roster not empty after wipe: %q", out)
	}
}
