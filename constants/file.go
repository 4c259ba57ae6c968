package constants

import "strings"

// AllowedImageExtensions holds the receipt image types the vision extractor
// will attach to a request.
var AllowedImageExtensions = map[string]struct{}{
	"jpg":  {},
	"jpeg": {},
	"png":  {},
	"webp": {},
}

// MaxVisionMB caps the image payload attached to a vision request.
const MaxVisionMB = 10

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
