// Package install writes the managed pre-commit configuration into a repository.
package install

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/conn-castle/pc-onboard/internal/messages"
	"github.com/conn-castle/pc-onboard/internal/templates"
)

const (
	// ConfigFileName is the pre-commit configuration file at the repository root.
	ConfigFileName = ".pre-commit-config.yaml"
	// BackupInfix separates the config name from the backup timestamp.
	BackupInfix = ".backup."
	// BackupTimeLayout formats backup timestamps as YYYYMMDD_HHMMSS.
	BackupTimeLayout = "20060102_150405"

	configPerm      = 0o644
	maxBackupSuffix = 1000
)

// Options configures WritePreCommitConfig.
type Options struct {
	System System
	Logger *log.Logger
	// Now supplies the backup timestamp; nil means time.Now.
	Now func() time.Time
	// DiffMaxLines caps the logged diff of a replaced config.
	DiffMaxLines int
}

// Written reports where the managed config went.
type Written struct {
	Path string
	// BackupPath is empty when there was no previous config.
	BackupPath string
}

// ConfigPath returns the pre-commit config path under root.
func ConfigPath(root string) string {
	return filepath.Join(root, ConfigFileName)
}

// WritePreCommitConfig writes the managed template to root/.pre-commit-config.yaml.
// An existing file is renamed to a timestamped backup first and is never overwritten.
func WritePreCommitConfig(root string, opts Options) (Written, error) {
	if root == "" {
		return Written{}, errors.New(messages.InstallRootRequired)
	}
	if opts.System == nil {
		return Written{}, errors.New(messages.InstallSystemRequired)
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	sys := opts.System
	path := ConfigPath(root)
	content := templates.PreCommitConfig()
	written := Written{Path: path}

	exists, err := pathExists(sys, path)
	if err != nil {
		return Written{}, err
	}
	if exists {
		previous, err := sys.ReadFile(path)
		if err != nil {
			return Written{}, fmt.Errorf(messages.InstallFailedReadFmt, path, err)
		}
		backup, err := nextBackupPath(sys, path, now())
		if err != nil {
			return Written{}, err
		}
		if err := sys.Rename(path, backup); err != nil {
			return Written{}, fmt.Errorf(messages.InstallFailedBackupFmt, path, backup, err)
		}
		written.BackupPath = backup
		if opts.Logger != nil {
			opts.Logger.Info(messages.InstallBackedUp, "backup", backup)
			if !bytes.Equal(previous, content) {
				d := diffConfig(filepath.Base(backup), previous, content, opts.DiffMaxLines)
				opts.Logger.Debug(messages.InstallDiffPreview, "added", d.Added, "removed", d.Removed, "diff", d.Text)
			}
		}
	}

	if err := sys.WriteFileAtomic(path, content, configPerm); err != nil {
		return Written{}, fmt.Errorf(messages.InstallFailedWriteFmt, path, err)
	}
	if opts.Logger != nil {
		opts.Logger.Info(messages.InstallWrote, "path", path)
	}
	return written, nil
}

// BackupPath returns the timestamped backup path for the config at path.
func BackupPath(path string, at time.Time) string {
	return path + BackupInfix + at.Format(BackupTimeLayout)
}

// nextBackupPath returns the first free backup name, appending .1, .2 on collision.
func nextBackupPath(sys System, path string, at time.Time) (string, error) {
	base := BackupPath(path, at)
	candidate := base
	for i := 1; i <= maxBackupSuffix; i++ {
		taken, err := pathExists(sys, candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
		candidate = base + "." + strconv.Itoa(i)
	}
	return "", fmt.Errorf(messages.InstallBackupTakenFmt, base)
}

func pathExists(sys System, path string) (bool, error) {
	if _, err := sys.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf(messages.InstallFailedStatFmt, path, err)
	}
	return true, nil
}

// IsManaged reports whether content carries the managed-config header.
func IsManaged(content []byte) bool {
	return bytes.Contains(content, []byte(templates.ManagedMarker))
}

// MatchesTemplate reports whether content is byte-identical to the managed template.
func MatchesTemplate(content []byte) bool {
	return bytes.Equal(content, templates.PreCommitConfig())
}

// ValidateYAML reports whether content parses as a YAML document.
func ValidateYAML(name string, content []byte) error {
	var doc yaml.Node
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return fmt.Errorf(messages.InstallNotYAMLFmt, name, err)
	}
	return nil
}
