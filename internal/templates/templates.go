// Package templates embeds the files pc-onboard writes into repositories.
package templates

import (
	"embed"
	"io/fs"
	"path"
)

// PreCommitConfigName is the template that becomes .pre-commit-config.yaml.
const PreCommitConfigName = "pre-commit-config.yaml"

// ManagedMarker identifies a config file written by pc-onboard.
const ManagedMarker = "Managed by pc-onboard"

//go:embed files
var filesFS embed.FS

const root = "files"

// Read returns the template content at name, relative to the template root.
func Read(name string) ([]byte, error) {
	return fs.ReadFile(filesFS, path.Join(root, name))
}

// PreCommitConfig returns the managed .pre-commit-config.yaml content.
func PreCommitConfig() []byte {
	data, err := Read(PreCommitConfigName)
	if err != nil {
		panic("templates: missing embedded " + PreCommitConfigName)
	}
	return data
}
