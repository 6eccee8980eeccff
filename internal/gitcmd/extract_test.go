package gitcmd_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gitbench/internal/gitcmd"
)

func TestExtract(t *testing.T) {
	tests := map[string]struct {
		text    string
		expCmds []string
	}{
		"Multiple command lines should be extracted in order": {
			text: "git checkout --theirs file.txt\ngit add file.txt\ngit commit -m 'resolve'\n",
			expCmds: []string{
				"git checkout --theirs file.txt",
				"git add file.txt",
				"git commit -m 'resolve'",
			},
		},

		"Blank lines and surrounding whitespace should be dropped": {
			text:    "  git status  \n\n\n\tgit add .\n   \n",
			expCmds: []string{"git status", "git add ."},
		},

		"Only blank lines should extract nothing": {
			text:    "\n \n\t\n",
			expCmds: nil,
		},

		"Empty text should extract nothing": {
			text:    "",
			expCmds: nil,
		},

		"A single command without trailing newline should be extracted": {
			text:    "git merge --continue",
			expCmds: []string{"git merge --continue"},
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, test.expCmds, gitcmd.Extract(test.text))
		})
	}
}

func TestNormalize(t *testing.T) {
	tests := map[string]struct {
		cmds    []string
		expCmds []string
	}{
		"Commands already prefixed should be untouched": {
			cmds:    []string{"git status", "git add ."},
			expCmds: []string{"git status", "git add ."},
		},

		"Bare subcommands should get the git prefix": {
			cmds:    []string{"checkout --theirs file.txt", "add file.txt"},
			expCmds: []string{"git checkout --theirs file.txt", "git add file.txt"},
		},

		"A bare git should be untouched": {
			cmds:    []string{"git"},
			expCmds: []string{"git"},
		},

		"A command starting with a git-prefixed word should get the prefix": {
			cmds:    []string{"github-cli something"},
			expCmds: []string{"git github-cli something"},
		},

		"Empty list should stay empty": {
			cmds:    nil,
			expCmds: []string{},
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, test.expCmds, gitcmd.Normalize(test.cmds))
		})
	}
}
