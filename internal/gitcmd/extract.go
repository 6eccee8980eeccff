// Package gitcmd extracts shell command lines from completion text and
// replays them against a repository working copy.
//
// Commands are not validated against an allow-list of git subcommands:
// whatever the completion produced is run as-is. Known limitation.
package gitcmd

import "strings"

// Extract splits raw completion text into candidate command lines, trimming
// whitespace and dropping blank lines. Order is preserved.
func Extract(text string) []string {
	var cmds []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		cmds = append(cmds, line)
	}
	return cmds
}

// Normalize forces the `git ` prefix on every command that is missing it.
// The completion endpoint sometimes answers with bare subcommands
// ("checkout --theirs x" instead of "git checkout --theirs x").
func Normalize(cmds []string) []string {
	normalized := make([]string, 0, len(cmds))
	for _, cmd := range cmds {
		if cmd != "git" && !strings.HasPrefix(cmd, "git ") {
			cmd = "git " + cmd
		}
		normalized = append(normalized, cmd)
	}
	return normalized
}
