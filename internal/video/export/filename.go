package export

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode"
)

// DefaultFilename derives youtube_videos_<query>_<count>_results.xlsx from the query
func DefaultFilename(query string, count int) string {
	var b strings.Builder
	for _, r := range query {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == ' ' || r == '-' || r == '_' {
			b.WriteRune(r)
		}
	}
	clean := strings.TrimRightFunc(b.String(), unicode.IsSpace)
	clean = strings.ReplaceAll(clean, " ", "_")

	return fmt.Sprintf("youtube_videos_%s_%d_results%s", clean, count, Extension)
}

// Filename returns the attachment name for a download. A requested name is
// reduced to its base name and gets the xlsx extension when missing.
func Filename(requested, query string, count int) string {
	name := strings.TrimSpace(requested)
	if name != "" {
		name = filepath.Base(filepath.Clean("/" + name))
	}
	if name == "" || name == "/" || name == "." {
		return DefaultFilename(query, count)
	}
	if !strings.HasSuffix(name, Extension) {
		name += Extension
	}
	return name
}
