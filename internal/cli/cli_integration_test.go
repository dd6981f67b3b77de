//go:build integration

package cli

import (
	"encoding/json"
	"testing"
)

func TestCLIIntegrationSmoke(t *testing.T) {
	dir := t.TempDir()

	mustRun := func(args ...string) map[string]any {
		t.Helper()
		stdout, stderr, err := runCLI(t, args)
		if err != nil {
			t.Fatalf("command failed: marlow %v\nerr: %v\nstderr:\n%s\nstdout:\n%s", args, err, string(stderr), string(stdout))
		}
		var env map[string]any
		if err := json.Unmarshal(stdout, &env); err != nil {
			t.Fatalf("unmarshal stdout as json envelope: %v\nstdout:\n%s\nargs: %v", err, string(stdout), args)
		}
		if _, ok := env["data"]; !ok {
			t.Fatalf("expected JSON envelope to contain data key; got: %v\nstdout:\n%s", env, string(stdout))
		}
		return env
	}

	// Init isolated store (no ambient .marlow directory should be touched when using --dir).
	mustRun("--dir", dir, "init")

	// Client setup; create makes the new client active.
	created := mustRun("--dir", dir, "clients", "create", "--name", "Integration Client", "--instagram", "@integration")
	clientID, _ := created["data"].(map[string]any)["id"].(string)
	if clientID == "" {
		t.Fatalf("expected clients create to return client id; got: %#v", created["data"])
	}

	status := mustRun("--dir", dir, "status")
	if active, _ := status["data"].(map[string]any)["activeClientId"].(string); active != clientID {
		t.Fatalf("expected new client to be active; got: %#v", status["data"])
	}

	// Single entry plus a 3-day all-day run.
	one := mustRun("--dir", dir, "events", "add", "--title", "Script review", "--date", "2026-09-02", "--time", "10:00")
	if xs, ok := one["data"].([]any); !ok || len(xs) != 1 {
		t.Fatalf("expected one created event; got: %#v", one["data"])
	}
	run := mustRun("--dir", dir, "events", "add", "--title", "Shoot week", "--type", "event",
		"--date", "2026-09-07", "--end", "2026-09-09", "--every-day", "--all-day", "--phase", "filming")
	runEvents, ok := run["data"].([]any)
	if !ok || len(runEvents) != 3 {
		t.Fatalf("expected 3 events for the range; got: %#v", run["data"])
	}
	firstRunID, _ := runEvents[0].(map[string]any)["id"].(string)
	if firstRunID == "" {
		t.Fatalf("expected run events to carry ids; got: %#v", runEvents[0])
	}

	// Views over the seeded state.
	mustRun("--dir", dir, "overview")
	cal := mustRun("--dir", dir, "calendar", "--month", "2026-09", "--json")
	if _, ok := cal["data"].(map[string]any); !ok {
		t.Fatalf("expected calendar data object; got: %#v", cal["data"])
	}
	sched := mustRun("--dir", dir, "schedule", "--all")
	entries, ok := sched["data"].(map[string]any)["entries"].([]any)
	if !ok || len(entries) != 4 {
		t.Fatalf("expected all 4 events in the unbounded schedule; got: %#v", sched["data"])
	}

	// Todos on the active client.
	todo := mustRun("--dir", dir, "clients", "todo", "add", "storyboard launch video")
	todoID, _ := todo["data"].(map[string]any)["id"].(string)
	if todoID == "" {
		t.Fatalf("expected todo id; got: %#v", todo["data"])
	}
	mustRun("--dir", dir, "clients", "todo", "remove", todoID)

	// Edit one run sibling, then delete it.
	mustRun("--dir", dir, "events", "update", firstRunID, "--title", "Shoot week (setup day)")
	mustRun("--dir", dir, "events", "delete", firstRunID)

	// Cascade: deleting the client empties the store.
	del := mustRun("--dir", dir, "clients", "delete", clientID)
	if n, _ := del["data"].(map[string]any)["removedEvents"].(float64); n != 3 {
		t.Fatalf("expected 3 cascaded events; got: %#v", del["data"])
	}
	list := mustRun("--dir", dir, "clients", "list")
	if xs, ok := list["data"].([]any); !ok || len(xs) != 0 {
		t.Fatalf("expected empty client list; got: %#v", list["data"])
	}
}
