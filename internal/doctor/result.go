package doctor

// Status is the outcome of a single check.
type Status string

const (
	// StatusOK means the check passed.
	StatusOK Status = "OK"
	// StatusFail means the check failed.
	StatusFail Status = "FAIL"
)

// Result is the outcome of one diagnostic check.
type Result struct {
	Status    Status
	CheckName string
	Message   string
	// Source is optional provenance, such as the file a version came from.
	Source         string
	Recommendation string
}

// Passed reports whether the check succeeded.
func (r Result) Passed() bool {
	return r.Status == StatusOK
}

// AnyFailed reports whether at least one result failed.
func AnyFailed(results []Result) bool {
	for _, r := range results {
		if !r.Passed() {
			return true
		}
	}
	return false
}
