package messages

// Detection messages for package manager and Python version discovery.
const (
	// DetectNoManagerFmt reports that no package manager marker was found.
	DetectNoManagerFmt = "Could not detect package manager. Expected uv.lock (uv) or Pipfile/Pipfile.lock (pipenv) in %s"
	DetectStatFmt      = "failed to stat %s: %w"
	DetectReadFmt      = "failed to read %s: %w"
	DetectParseFmt     = "failed to parse %s: %w"
)
