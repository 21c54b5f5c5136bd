package install

import (
	"fmt"
	"strings"

	"github.com/aymanbagabas/go-udiff"

	"github.com/conn-castle/pc-onboard/internal/messages"
)

// DefaultDiffMaxLines caps the logged diff of a replaced config when Options.DiffMaxLines is unset.
const DefaultDiffMaxLines = 40

// configDiff is a unified diff between a backed-up config and the managed template.
type configDiff struct {
	Text      string
	Added     int
	Removed   int
	Truncated bool
}

// diffConfig renders the change from previous to next, keeping at most maxLines diff lines.
func diffConfig(backupName string, previous []byte, next []byte, maxLines int) configDiff {
	if maxLines <= 0 {
		maxLines = DefaultDiffMaxLines
	}
	raw := udiff.Unified(backupName, ConfigFileName, string(previous), string(next))
	raw = strings.TrimRight(raw, "\n")
	if raw == "" {
		return configDiff{}
	}

	lines := strings.Split(raw, "\n")
	d := configDiff{}
	for _, line := range lines {
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
		case strings.HasPrefix(line, "+"):
			d.Added++
		case strings.HasPrefix(line, "-"):
			d.Removed++
		}
	}
	if len(lines) > maxLines {
		lines = append(lines[:maxLines:maxLines], fmt.Sprintf(messages.InstallDiffTruncFmt, maxLines))
		d.Truncated = true
	}
	d.Text = strings.Join(lines, "\n") + "\n"
	return d
}
