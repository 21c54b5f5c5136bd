package install

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiffConfigCountsChanges(t *testing.T) {
	d := diffConfig("old.yaml", []byte("repos: []\nkeep: 1\n"), []byte("repos:\n- repo: local\nkeep: 1\n"), 0)
	assert.False(t, d.Truncated)
	assert.Equal(t, 2, d.Added)
	assert.Equal(t, 1, d.Removed)
	assert.Contains(t, d.Text, "--- old.yaml")
	assert.Contains(t, d.Text, "+++ "+ConfigFileName)
	assert.True(t, strings.HasSuffix(d.Text, "\n"))
}

func TestDiffConfigTruncates(t *testing.T) {
	var previous strings.Builder
	for i := 0; i < 50; i++ {
		fmt.Fprintf(&previous, "line %d\n", i)
	}
	d := diffConfig("old.yaml", []byte(previous.String()), nil, 5)
	if !d.Truncated {
		t.Fatalf("expected truncation")
	}
	lines := strings.Split(strings.TrimRight(d.Text, "\n"), "\n")
	if len(lines) != 6 {
		t.Fatalf("expected 5 lines plus marker, got %d", len(lines))
	}
	if lines[5] != "... (truncated to 5 lines)" {
		t.Fatalf("unexpected marker %q", lines[5])
	}
	if d.Removed != 50 {
		t.Fatalf("expected counts over the full diff, got %d", d.Removed)
	}
}

func TestDiffConfigIdentical(t *testing.T) {
	d := diffConfig("old.yaml", []byte("same\n"), []byte("same\n"), 10)
	if d.Truncated || d.Text != "" || d.Added != 0 || d.Removed != 0 {
		t.Fatalf("expected empty diff, got %+v", d)
	}
}
