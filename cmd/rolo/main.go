package main

import (
	"os"
	"strings"

	"rolo/internal/cli"
)

func entityIDCommand(s string) (string, bool) {
	s = strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(s, "per-") && len(s) > len("per-"):
		return "people", true
	case strings.HasPrefix(s, "com-") && len(s) > len("com-"):
		return "companies", true
	}
	return "", false
}

func rewriteDirectLookupArgs(argv []string) []string {
	// Convenience: `rolo per-xxxx` works like `rolo people show per-xxxx`,
	// and `rolo com-xxxx` like `rolo companies show com-xxxx`.
	//
	// Cobra treats the first non-flag token as a subcommand, so we rewrite
	// argv before parsing. Users often pass persistent flags first (e.g.
	// `rolo --dir ... per-xxxx`), so we look for the first positional token,
	// not just argv[1].
	if len(argv) < 2 {
		return argv
	}

	// Minimal persistent-flag awareness. Unknown flags are skipped without
	// consuming a value so we never swallow the id by accident.
	valueFlags := map[string]bool{
		"--dir":    true,
		"--format": true,
	}
	boolFlags := map[string]bool{
		"--pretty": true,
	}

	for i := 1; i < len(argv); i++ {
		a := strings.TrimSpace(argv[i])
		if a == "" {
			continue
		}
		if a == "--" {
			// Flag parsing stops here; next token (if any) is the first positional.
			if i+1 < len(argv) {
				if noun, ok := entityIDCommand(argv[i+1]); ok {
					out := make([]string, 0, len(argv)+2)
					out = append(out, argv[:i+1]...)
					out = append(out, noun, "show")
					out = append(out, argv[i+1:]...)
					return out
				}
			}
			return argv
		}

		if strings.HasPrefix(a, "-") {
			if strings.Contains(a, "=") {
				continue
			}
			if boolFlags[a] {
				continue
			}
			if valueFlags[a] {
				i++ // skip value if present
				continue
			}
			continue
		}

		// First positional token.
		if noun, ok := entityIDCommand(a); ok {
			out := make([]string, 0, len(argv)+2)
			out = append(out, argv[:i]...)
			out = append(out, noun, "show")
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
