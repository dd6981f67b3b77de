// Package export writes markdown pages for clients and the rolling
// schedule, for sharing outside the terminal.
package export

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"marlow-cli/internal/store"
)

type WriteOptions struct {
	Overwrite bool
}

type WriteResult struct {
	Written []string `json:"written"`
}

// WriteClient renders one client brief to <toDir>/clients/<id>.md.
func WriteClient(db *store.DB, clientID string, toDir string, opt WriteOptions) (WriteResult, error) {
	if db == nil {
		return WriteResult{}, errors.New("missing db")
	}
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return WriteResult{}, errors.New("missing clientID")
	}
	toDir = strings.TrimSpace(toDir)
	if toDir == "" {
		return WriteResult{}, errors.New("missing --to")
	}
	toDir = filepath.Clean(toDir)

	md, err := RenderClientMarkdown(db, clientID)
	if err != nil {
		return WriteResult{}, err
	}

	outDir := filepath.Join(toDir, "clients")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return WriteResult{}, err
	}
	outPath := filepath.Join(outDir, clientID+".md")
	if err := writeFile(outPath, []byte(md), opt.Overwrite); err != nil {
		return WriteResult{}, err
	}
	return WriteResult{Written: []string{outPath}}, nil
}

// WriteSchedule renders the rolling schedule to <toDir>/schedule.md.
func WriteSchedule(db *store.DB, windowDays int, toDir string, opt WriteOptions) (WriteResult, error) {
	if db == nil {
		return WriteResult{}, errors.New("missing db")
	}
	toDir = strings.TrimSpace(toDir)
	if toDir == "" {
		return WriteResult{}, errors.New("missing --to")
	}
	toDir = filepath.Clean(toDir)

	md, err := RenderScheduleMarkdown(db, windowDays)
	if err != nil {
		return WriteResult{}, err
	}

	if err := os.MkdirAll(toDir, 0o755); err != nil {
		return WriteResult{}, err
	}
	outPath := filepath.Join(toDir, "schedule.md")
	if err := writeFile(outPath, []byte(md), opt.Overwrite); err != nil {
		return WriteResult{}, err
	}
	return WriteResult{Written: []string{outPath}}, nil
}

func writeFile(path string, b []byte, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return errors.New("file exists (use --overwrite): " + path)
		}
	}
	return os.WriteFile(path, b, 0o644)
}
