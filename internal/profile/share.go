package profile

import (
	"regexp"
	"strings"
)

// ShareBaseURL prefixes every public profile address.
const ShareBaseURL = "https://linkforce.app/"

var (
	whitespacePattern = regexp.MustCompile(`\s+`)
	pathSeparators    = strings.NewReplacer("/", "-", "\\", "-")
)

// Handle derives the public handle: the name lowercased with all whitespace
// removed.
func Handle(name string) string {
	return strings.ToLower(whitespacePattern.ReplaceAllString(name, ""))
}

// ShareURL returns the public address of the profile.
func ShareURL(name string) string {
	return ShareBaseURL + Handle(name)
}

// ExportFilename names the exported card image after the profile name.
func ExportFilename(name string) string {
	stem := pathSeparators.Replace(whitespacePattern.ReplaceAllString(name, ""))
	if stem == "" {
		stem = "profile"
	}
	return stem + "-card.png"
}
