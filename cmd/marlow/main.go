package main

import (
	"os"
	"strings"

	"marlow-cli/internal/cli"
)

func idKind(s string) (string, bool) {
	s = strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(s, "client-") && len(s) > len("client-"):
		return "clients", true
	case strings.HasPrefix(s, "evt-") && len(s) > len("evt-"):
		return "events", true
	}
	return "", false
}

func rewriteDirectLookupArgs(argv []string) []string {
	// Convenience: `marlow <client-id>` works like `marlow clients show <id>`
	// (and `marlow <evt-id>` like `marlow events show <id>`).
	//
	// Cobra treats the first non-flag token as a subcommand, so we rewrite
	// argv before parsing. Persistent flags may precede the id, so we look
	// for the first positional token rather than argv[1].
	if len(argv) < 2 {
		return argv
	}

	valueFlags := map[string]bool{"--dir": true}
	boolFlags := map[string]bool{"--pretty": true}

	for i := 1; i < len(argv); i++ {
		a := strings.TrimSpace(argv[i])
		if a == "" {
			continue
		}
		if a == "--" {
			if i+1 < len(argv) {
				if group, ok := idKind(argv[i+1]); ok {
					out := make([]string, 0, len(argv)+2)
					out = append(out, argv[:i+1]...)
					out = append(out, group, "show")
					out = append(out, argv[i+1:]...)
					return out
				}
			}
			return argv
		}

		if strings.HasPrefix(a, "-") {
			if strings.Contains(a, "=") || boolFlags[a] {
				continue
			}
			if valueFlags[a] {
				i++ // skip value if present
			}
			continue
		}

		// First positional token.
		if group, ok := idKind(a); ok {
			out := make([]string, 0, len(argv)+2)
			out = append(out, argv[:i]...)
			out = append(out, group, "show")
			out = append(out, argv[i:]...)
			return out
		}
		return argv
	}

	return argv
}

func main() {
	os.Args = rewriteDirectLookupArgs(os.Args)

	cmd := cli.NewRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
