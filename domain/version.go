package domain

import (
	"strings"

	"golang.org/x/mod/semver"
)

// IsNewerVersion reports whether candidate is newer than current.
//
// When both strings normalize to valid semantic versions the comparison is
// semver-aware. Otherwise the check degrades to plain string inequality: a
// differing non-semantic string (date-based, hash-based) counts as newer.
// That is an accepted approximation, not a bug — identical strings are
// never "newer" under either path.
func IsNewerVersion(current, candidate string) bool {
	cur := normalizeVersion(current)
	cand := normalizeVersion(candidate)
	if semver.IsValid(cur) && semver.IsValid(cand) {
		return semver.Compare(cand, cur) > 0
	}
	return candidate != current
}

func normalizeVersion(version string) string {
	version = strings.TrimSpace(version)
	if strings.HasPrefix(version, "v") {
		return version
	}
	return "v" + version
}
