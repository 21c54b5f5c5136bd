package detect

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	toml "github.com/pelletier/go-toml"
	tomlv2 "github.com/pelletier/go-toml/v2"

	"github.com/conn-castle/pc-onboard/internal/messages"
	"github.com/conn-castle/pc-onboard/internal/specifier"
)

const (
	pipfileRequiresSection = "requires"
	pipfileFullVersionKey  = "python_full_version"
	pipfileVersionKey      = "python_version"
	toolVersionsPython     = "python"
)

// Version is a Python version together with the file that declared it.
type Version struct {
	Value  string
	Source string
}

// pyproject captures the only part of pyproject.toml this package reads.
type pyproject struct {
	Project struct {
		RequiresPython string `toml:"requires-python"`
	} `toml:"project"`
}

// PythonVersion resolves the Python version root requires.
//
// Lookup order depends on the manager:
//   - pipenv: Pipfile [requires] -> .python-version -> .tool-versions
//   - uv: pyproject.toml requires-python -> .python-version -> .tool-versions
//
// The boolean is false when no file declares a version; that is not an error.
func PythonVersion(root string, manager Manager) (Version, bool, error) {
	return PythonVersionFS(os.DirFS(root), manager)
}

// PythonVersionFS is PythonVersion over an arbitrary filesystem.
func PythonVersionFS(fsys fs.FS, manager Manager) (Version, bool, error) {
	var (
		value string
		err   error
	)
	switch manager {
	case Pipenv:
		value, err = versionFromPipfile(fsys)
		if err != nil {
			return Version{}, false, err
		}
		if value != "" {
			return Version{Value: value, Source: Pipfile}, true, nil
		}
	case UV:
		value, err = versionFromPyproject(fsys)
		if err != nil {
			return Version{}, false, err
		}
		if value != "" {
			return Version{Value: value, Source: PyprojectFile}, true, nil
		}
	}

	value, err = versionFromPythonVersionFile(fsys)
	if err != nil {
		return Version{}, false, err
	}
	if value != "" {
		return Version{Value: value, Source: PythonVersionFile}, true, nil
	}

	value, err = versionFromToolVersions(fsys)
	if err != nil {
		return Version{}, false, err
	}
	if value != "" {
		return Version{Value: value, Source: ToolVersionsFile}, true, nil
	}
	return Version{}, false, nil
}

// readOptional reads name, returning nil data when it does not exist.
func readOptional(fsys fs.FS, name string) ([]byte, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf(messages.DetectReadFmt, name, err)
	}
	return data, nil
}

// versionFromPyproject resolves [project].requires-python into a concrete version.
func versionFromPyproject(fsys fs.FS) (string, error) {
	data, err := readOptional(fsys, PyprojectFile)
	if err != nil || data == nil {
		return "", err
	}
	var doc pyproject
	if err := tomlv2.Unmarshal(data, &doc); err != nil {
		return "", fmt.Errorf(messages.DetectParseFmt, PyprojectFile, err)
	}
	spec := strings.TrimSpace(doc.Project.RequiresPython)
	if spec == "" {
		return "", nil
	}
	return specifier.Resolve(spec), nil
}

// versionFromPipfile returns python_full_version, else python_version, from [requires].
func versionFromPipfile(fsys fs.FS) (string, error) {
	data, err := readOptional(fsys, Pipfile)
	if err != nil || data == nil {
		return "", err
	}
	requires := pipfileRequires(data)
	for _, key := range []string{pipfileFullVersionKey, pipfileVersionKey} {
		if value := requires[key]; value != "" {
			return value, nil
		}
	}
	return "", nil
}

// pipfileRequires extracts the [requires] keys of a Pipfile.
// Well-formed TOML strings are read through the TOML tree; hand-written
// Pipfiles with bare values (python_version = 3.10) are not valid TOML or
// lose precision as floats, so those keys are read from the raw lines.
func pipfileRequires(data []byte) map[string]string {
	raw := scanSection(string(data), pipfileRequiresSection)
	tree, err := toml.LoadBytes(data)
	if err != nil {
		return raw
	}
	out := make(map[string]string, len(raw))
	for key, value := range raw {
		out[key] = value
	}
	for _, key := range []string{pipfileFullVersionKey, pipfileVersionKey} {
		if value, ok := tree.GetPath([]string{pipfileRequiresSection, key}).(string); ok {
			out[key] = strings.TrimSpace(value)
		}
	}
	return out
}

// scanSection reads key = value pairs from an INI-style section.
func scanSection(content string, section string) map[string]string {
	values := make(map[string]string)
	header := "[" + section + "]"
	inSection := false
	scanner := bufio.NewScanner(strings.NewReader(content))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, ";") {
			continue
		}
		if strings.HasPrefix(line, "[") {
			inSection = line == header
			continue
		}
		if !inSection {
			continue
		}
		idx := strings.IndexAny(line, "=:")
		if idx <= 0 {
			continue
		}
		key := strings.TrimSpace(line[:idx])
		value := stripInlineComment(strings.TrimSpace(line[idx+1:]))
		values[key] = unquote(value)
	}
	return values
}

func stripInlineComment(value string) string {
	if idx := strings.Index(value, " #"); idx >= 0 {
		return strings.TrimSpace(value[:idx])
	}
	return value
}

func unquote(value string) string {
	if len(value) >= 2 {
		first, last := value[0], value[len(value)-1]
		if (first == '"' || first == '\'') && first == last {
			return strings.TrimSpace(value[1 : len(value)-1])
		}
	}
	return value
}

// versionFromPythonVersionFile returns the first non-blank line of .python-version.
func versionFromPythonVersionFile(fsys fs.FS) (string, error) {
	data, err := readOptional(fsys, PythonVersionFile)
	if err != nil || data == nil {
		return "", err
	}
	for _, line := range strings.Split(string(data), "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			return trimmed, nil
		}
	}
	return "", nil
}

// versionFromToolVersions returns the version on the first "python <version>" line.
func versionFromToolVersions(fsys fs.FS) (string, error) {
	data, err := readOptional(fsys, ToolVersionsFile)
	if err != nil || data == nil {
		return "", err
	}
	for _, line := range strings.Split(string(data), "\n") {
		fields := strings.Fields(line)
		if len(fields) >= 2 && fields[0] == toolVersionsPython {
			return fields[1], nil
		}
	}
	return "", nil
}
