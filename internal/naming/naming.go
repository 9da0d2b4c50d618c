package naming

import (
	"path/filepath"
	"strings"
)

// Extension of generated documents.
const Extension = ".pgf"

// Normalize turns a file base name (without extension) into the document
// namespace: lower case, whitespace runs collapsed to single hyphens, and
// leading or trailing hyphens trimmed.
func Normalize(base string) string {
	s := strings.ToLower(base)
	s = strings.Join(strings.Fields(s), "-")
	return strings.TrimSpace(strings.Trim(s, "-"))
}

// Namespace derives the normalized base name of an input path.
func Namespace(inputPath string) string {
	base := filepath.Base(inputPath)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return Normalize(base)
}

// OutputName returns the .pgf file name for an input path.
func OutputName(inputPath string) string {
	return Namespace(inputPath) + Extension
}
