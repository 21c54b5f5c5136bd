// Package specifier converts a requires-python style constraint into one
// concrete Python version suitable for an interpreter installer.
//
// Only a pragmatic subset of the constraint grammar is understood: exact pins
// (==X.Y[.Z]), compatible releases (~=X.Y) and comma separated combinations of
// >=X.Y, <X.Y and <=X.Y. Anything else degrades to the first version-looking
// substring of the input.
package specifier

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
)

var (
	exactPattern      = regexp.MustCompile(`==\s*([\d.]+)`)
	compatiblePattern = regexp.MustCompile(`~=\s*([\d.]+)`)
	inclusiveUpper    = regexp.MustCompile(`^<=\s*(\d+)\.(\d+)`)
	exclusiveUpper    = regexp.MustCompile(`^<\s*(\d+)\.(\d+)`)
	lowerPattern      = regexp.MustCompile(`^>=\s*(\d+)\.(\d+)`)
	fallbackPattern   = regexp.MustCompile(`(\d+\.\d+(?:\.\d+)?)`)
)

// minor is a (major, minor) version pair. Range bounds are tracked at this
// granularity only; patch components never take part in bound arithmetic.
type minor struct {
	major int
	minor int
}

func (m minor) String() string {
	return strconv.Itoa(m.major) + "." + strconv.Itoa(m.minor)
}

// Resolve picks a concrete version for spec. It never fails: input that does
// not match any supported form yields its first dotted-numeric substring, or
// the trimmed input itself when there is none.
//
// Examples:
//
//	">=3.11,<3.13"  -> "3.12"
//	">=3.11,<=3.12" -> "3.12"
//	">=3.11"        -> "3.11"
//	"==3.11.8"      -> "3.11.8"
//	"~=3.11"        -> "3.11"
func Resolve(spec string) string {
	spec = strings.TrimSpace(spec)

	if m := exactPattern.FindStringSubmatch(spec); m != nil {
		return m[1]
	}
	// ~=X.Y admits X.Y and later within X, so the floor is the target.
	if m := compatiblePattern.FindStringSubmatch(spec); m != nil {
		return m[1]
	}

	var (
		upper          *minor
		upperInclusive bool
		lower          *minor
	)
	for _, clause := range strings.Split(spec, ",") {
		clause = strings.TrimSpace(clause)
		if bound, ok := matchBound(inclusiveUpper, clause); ok {
			upper, upperInclusive = &bound, true
			continue
		}
		if bound, ok := matchBound(exclusiveUpper, clause); ok {
			upper, upperInclusive = &bound, false
			continue
		}
		if bound, ok := matchBound(lowerPattern, clause); ok {
			lower = &bound
		}
	}

	if upper != nil {
		if upperInclusive {
			return upper.String()
		}
		// Minor 0 is not guarded: "<4.0" yields "4.-1".
		return minor{major: upper.major, minor: upper.minor - 1}.String()
	}
	if lower != nil {
		return lower.String()
	}

	if m := fallbackPattern.FindStringSubmatch(spec); m != nil {
		return m[1]
	}
	return spec
}

func matchBound(pattern *regexp.Regexp, clause string) (minor, bool) {
	m := pattern.FindStringSubmatch(clause)
	if m == nil {
		return minor{}, false
	}
	major, err := strconv.Atoi(m[1])
	if err != nil {
		return minor{}, false
	}
	minorPart, err := strconv.Atoi(m[2])
	if err != nil {
		return minor{}, false
	}
	return minor{major: major, minor: minorPart}, true
}

// SameMinor reports whether two concrete versions share major and minor
// components, so "3.11.8" and "3.11" match while "3.9" and "3.10" do not.
// Versions semver cannot parse are compared on their first two dot-separated
// fields.
func SameMinor(a string, b string) bool {
	va, errA := semver.NewVersion(strings.TrimSpace(a))
	vb, errB := semver.NewVersion(strings.TrimSpace(b))
	if errA == nil && errB == nil {
		return va.Major() == vb.Major() && va.Minor() == vb.Minor()
	}
	return MajorMinor(a) == MajorMinor(b)
}

// MajorMinor truncates version to its first two dot-separated fields.
func MajorMinor(version string) string {
	parts := strings.Split(strings.TrimSpace(version), ".")
	if len(parts) > 2 {
		parts = parts[:2]
	}
	return strings.Join(parts, ".")
}
