package fontbundle

import "encoding/base64"

// dataURI encodes raw asset bytes as a data: URI with the given MIME type.
// Uses the standard padded base64 alphabet (not URL-safe), so the payload
// decodes byte-for-byte to the original file.
func dataURI(mime string, data []byte) string {
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
}
