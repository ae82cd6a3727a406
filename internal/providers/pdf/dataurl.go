package pdf

import (
	"encoding/base64"
	"strings"

	"github.com/johnfercher/maroto/v2/pkg/consts/extension"
)

// decodeDataURL extracts image bytes from a "data:image/...;base64," URL.
// Branding assets are stored as data URLs on the user record.
func decodeDataURL(raw string) ([]byte, extension.Type, bool) {
	if !strings.HasPrefix(raw, "data:image/") {
		return nil, "", false
	}

	rest := strings.TrimPrefix(raw, "data:image/")
	semi := strings.Index(rest, ";base64,")
	if semi < 0 {
		return nil, "", false
	}

	var ext extension.Type
	switch strings.ToLower(rest[:semi]) {
	case "png":
		ext = extension.Png
	case "jpeg", "jpg":
		ext = extension.Jpg
	default:
		return nil, "", false
	}

	payload, err := base64.StdEncoding.DecodeString(rest[semi+len(";base64,"):])
	if err != nil {
		return nil, "", false
	}
	return payload, ext, true
}
