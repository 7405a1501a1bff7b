package fontbundle

import (
	"path/filepath"
	"strings"
)

// fallbackMIMEType is used for extensions outside the known font formats.
const fallbackMIMEType = "application/octet-stream"

// mimeTypeFor maps a file path to the MIME type embedded in its data URI.
// The mapping is by lowercased extension only; the file content is never
// inspected.
func mimeTypeFor(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".woff2":
		return "font/woff2"
	case ".woff":
		return "font/woff"
	case ".ttf":
		return "font/ttf"
	case ".eot":
		return "application/vnd.ms-fontembedded-opentype"
	default:
		return fallbackMIMEType
	}
}
