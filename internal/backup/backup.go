// Package backup snapshots the store directory into a surrounding git
// repository. It shells out to the git binary; when the store dir is not
// inside a repo every operation is a no-op rather than an error.
package backup

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// documents are the store files worth versioning. Derived files (WAL
// sidecars, tmp files from atomic writes) stay out of history.
var documents = []string{
	"clients.json",
	"events.json",
	"active_client.json",
	"logo.json",
	"marlow.sqlite",
}

type Status struct {
	IsRepo bool   `json:"isRepo"`
	Root   string `json:"root,omitempty"`
	Branch string `json:"branch,omitempty"`
	Head   string `json:"head,omitempty"`
	Dirty  bool   `json:"dirty"`
}

// GetStatus inspects the git repository containing dir. A dir outside any
// repository reports IsRepo=false with a nil error.
func GetStatus(ctx context.Context, dir string) (Status, error) {
	root, err := git(ctx, dir, "rev-parse", "--show-toplevel")
	if err != nil {
		return Status{IsRepo: false}, nil
	}
	root = strings.TrimSpace(root)
	if root == "" {
		return Status{}, errors.New("git rev-parse returned empty root")
	}

	branch, _ := git(ctx, dir, "rev-parse", "--abbrev-ref", "HEAD")
	head, _ := git(ctx, dir, "rev-parse", "--short", "HEAD")
	porcelain, _ := git(ctx, dir, "status", "--porcelain=v1", "--untracked-files=no")

	return Status{
		IsRepo: true,
		Root:   root,
		Branch: strings.TrimSpace(branch),
		Head:   strings.TrimSpace(head),
		Dirty:  dirtyPorcelain(porcelain),
	}, nil
}

// Snapshot stages the store documents under storeDir and commits them.
// Returns committed=false when the dir is outside a repo or nothing changed.
func Snapshot(ctx context.Context, storeDir string, message string) (committed bool, err error) {
	storeDir = filepath.Clean(storeDir)

	st, err := GetStatus(ctx, storeDir)
	if err != nil {
		return false, err
	}
	if !st.IsRepo {
		return false, nil
	}

	staged, err := stageDocuments(ctx, storeDir, st.Root)
	if err != nil {
		return false, err
	}
	if !staged {
		return false, nil
	}

	out, err := git(ctx, storeDir, "diff", "--cached", "--name-only")
	if err != nil {
		return false, err
	}
	if strings.TrimSpace(out) == "" {
		return false, nil
	}

	msg := strings.TrimSpace(message)
	if msg == "" {
		msg = fmt.Sprintf("marlow: snapshot (%s)", time.Now().UTC().Format(time.RFC3339))
	}
	if _, err := git(ctx, storeDir, "commit", "-m", msg); err != nil {
		return false, err
	}
	return true, nil
}

func stageDocuments(ctx context.Context, storeDir string, repoRoot string) (bool, error) {
	storeDir = filepath.Clean(storeDir)
	repoRoot = filepath.Clean(repoRoot)

	// Temp dirs can sit behind symlinks (macOS /var -> /private/var) while
	// git reports a canonicalized root; normalize both sides before Rel().
	if v, err := filepath.EvalSymlinks(storeDir); err == nil {
		storeDir = v
	}
	if v, err := filepath.EvalSymlinks(repoRoot); err == nil {
		repoRoot = v
	}

	rel, err := filepath.Rel(repoRoot, storeDir)
	if err != nil {
		return false, err
	}
	rel = filepath.Clean(rel)

	var targets []string
	for _, doc := range documents {
		if _, err := os.Stat(filepath.Join(storeDir, doc)); err != nil {
			continue
		}
		if rel == "." {
			targets = append(targets, doc)
		} else {
			targets = append(targets, filepath.Join(rel, doc))
		}
	}
	if len(targets) == 0 {
		return false, nil
	}

	args := append([]string{"-C", repoRoot, "add", "--"}, targets...)
	if _, err := git(ctx, repoRoot, args...); err != nil {
		return false, err
	}
	return true, nil
}

func git(ctx context.Context, dir string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return "", fmt.Errorf("git %s: %s", strings.Join(args, " "), msg)
	}
	return stdout.String(), nil
}

func dirtyPorcelain(out string) bool {
	for _, ln := range strings.Split(out, "\n") {
		ln = strings.TrimRight(ln, "\r")
		if len(ln) < 2 {
			continue
		}
		if strings.TrimSpace(ln[:2]) != "" {
			return true
		}
	}
	return false
}
