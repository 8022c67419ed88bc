package tokenizer

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// DefaultEncoding is the declared input encoding when none is configured.
const DefaultEncoding = "utf-8"

// FallbackEncoding is the usual alternative for legacy single-byte game files.
const FallbackEncoding = "windows-1252"

// ResolveEncoding maps an encoding name to its x/text implementation.
// Supported: "utf8"/"utf-8", "windows-1252"/"cp1252", "iso-8859-1"/"latin1",
// "cp437", "cp850".
func ResolveEncoding(name string) (encoding.Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "utf8", "utf-8":
		return unicode.UTF8, nil
	case "windows-1252", "cp1252":
		return charmap.Windows1252, nil
	case "iso-8859-1", "latin1":
		return charmap.ISO8859_1, nil
	case "cp437":
		return charmap.CodePage437, nil
	case "cp850":
		return charmap.CodePage850, nil
	default:
		return nil, fmt.Errorf("unsupported encoding: %s", name)
	}
}
