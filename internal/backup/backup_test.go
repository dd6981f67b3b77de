package backup

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func TestGetStatus_NonRepo(t *testing.T) {
	st, err := GetStatus(context.Background(), t.TempDir())
	if err != nil {
		t.Fatalf("GetStatus: %v", err)
	}
	if st.IsRepo {
		t.Fatalf("expected non-repo status")
	}
}

func TestSnapshot_NonRepoIsNoop(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "clients.json"), "[]")

	committed, err := Snapshot(context.Background(), dir, "")
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	if committed {
		t.Fatalf("expected no commit outside a repo")
	}
}

func TestSnapshotCommitsStoreDocuments(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}

	ctx := context.Background()
	repo := t.TempDir()
	run(t, repo, "git", "init")
	run(t, repo, "git", "config", "user.email", "test@example.com")
	run(t, repo, "git", "config", "user.name", "Test")

	storeDir := filepath.Join(repo, ".marlow")
	if err := os.MkdirAll(storeDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	writeFile(t, filepath.Join(storeDir, "clients.json"), "[]")
	writeFile(t, filepath.Join(storeDir, "events.json"), "[]")
	writeFile(t, filepath.Join(storeDir, "clients.json.tmp"), "junk")

	committed, err := Snapshot(ctx, storeDir, "first snapshot")
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	if !committed {
		t.Fatalf("expected a commit")
	}

	// Only the documents land in history; tmp files stay untracked.
	tracked := runOut(t, repo, "git", "ls-files")
	if !strings.Contains(tracked, ".marlow/clients.json") || !strings.Contains(tracked, ".marlow/events.json") {
		t.Fatalf("expected store documents to be tracked; got:\n%s", tracked)
	}
	if strings.Contains(tracked, "clients.json.tmp") {
		t.Fatalf("tmp file leaked into history:\n%s", tracked)
	}

	// Nothing changed: second snapshot is a no-op.
	committed, err = Snapshot(ctx, storeDir, "")
	if err != nil {
		t.Fatalf("Snapshot (unchanged): %v", err)
	}
	if committed {
		t.Fatalf("expected no commit when nothing changed")
	}

	// Dirty store dir shows up in the status.
	writeFile(t, filepath.Join(storeDir, "events.json"), `[{"id":"evt-x"}]`)
	st, err := GetStatus(ctx, storeDir)
	if err != nil {
		t.Fatalf("GetStatus: %v", err)
	}
	if !st.IsRepo || !st.Dirty {
		t.Fatalf("expected dirty repo status: %+v", st)
	}

	committed, err = Snapshot(ctx, storeDir, "second snapshot")
	if err != nil {
		t.Fatalf("Snapshot (changed): %v", err)
	}
	if !committed {
		t.Fatalf("expected a commit for the changed document")
	}
}

func run(t *testing.T, dir string, bin string, args ...string) {
	t.Helper()
	cmd := exec.Command(bin, args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("%s %v: %v\n%s", bin, args, err, string(out))
	}
}

func runOut(t *testing.T, dir string, bin string, args ...string) string {
	t.Helper()
	cmd := exec.Command(bin, args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("%s %v: %v\n%s", bin, args, err, string(out))
	}
	return string(out)
}

func writeFile(t *testing.T, path string, body string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
