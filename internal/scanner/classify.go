package scanner

import (
	"path"
	"regexp"
	"slices"
	"strings"

	"github.com/modu-ai/namelint/pkg/models"
)

var (
	styleExts = []string{"css", "scss", "sass", "less", "styl", "pcss"}
	assetExts = []string{
		"svg", "png", "jpg", "jpeg", "gif", "webp", "avif", "ico", "bmp",
		"woff", "woff2", "ttf", "otf", "eot",
		"mp4", "webm", "mp3", "wav",
	}
	sourceExts = []string{"ts", "tsx", "js", "jsx", "mjs", "cjs", "mts", "cts"}
	jsxExts    = []string{"tsx", "jsx", "js"}

	reHookStem = regexp.MustCompile(`^use(-|[A-Z])`)
)

// DefaultExtensions are the file extensions scanned when none are configured.
func DefaultExtensions() []string {
	exts := slices.Clone(sourceExts)
	exts = append(exts, styleExts...)
	return append(exts, assetExts...)
}

// extOf returns the lowercase extension of name without the dot.
func extOf(name string) string {
	return strings.ToLower(strings.TrimPrefix(path.Ext(name), "."))
}

// stemOf returns the part of name before its first dot.
func stemOf(name string) string {
	stem, _, _ := strings.Cut(name, ".")
	return stem
}

// Classify derives a FileKind from a slash-separated path. Utility files
// that turn out to export a class or a JSX component are refined after
// parsing; see FromSource.
func Classify(p string) models.FileKind {
	dir, name := path.Split(p)
	ext := extOf(name)
	lowerName := strings.ToLower(name)
	segments := strings.Split(strings.Trim(dir, "/"), "/")

	switch {
	case slices.Contains(styleExts, ext):
		return models.KindStyle
	case slices.Contains(assetExts, ext):
		return models.KindAsset
	case strings.Contains(lowerName, ".test.") ||
		strings.Contains(lowerName, ".spec.") ||
		strings.Contains(lowerName, ".stories.") ||
		slices.Contains(segments, "__tests__"):
		return models.KindTest
	}

	stem := stemOf(name)
	switch {
	case strings.EqualFold(stem, "index") && slices.Contains(sourceExts, ext):
		return models.KindBarrel
	case strings.Contains(lowerName, ".dto."),
		len(segments) > 0 && (segments[len(segments)-1] == "dto" || segments[len(segments)-1] == "dtos"):
		return models.KindDTO
	case reHookStem.MatchString(stem):
		return models.KindHook
	case ext == "tsx" || ext == "jsx":
		return models.KindComponent
	default:
		return models.KindUtility
	}
}

// isSourceExt reports whether ext names a JS/TS module.
func isSourceExt(ext string) bool {
	return slices.Contains(sourceExts, ext)
}

// allowsJSX reports whether files with ext may contain JSX.
func allowsJSX(ext string) bool {
	return slices.Contains(jsxExts, ext)
}
