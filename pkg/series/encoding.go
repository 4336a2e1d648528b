package series

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
)

// Encoding names the text encoding of a series file.
type Encoding string

const (
	// EncodingUTF16 honours a byte order mark and falls back to little-endian.
	EncodingUTF16   Encoding = "utf-16"
	EncodingUTF16LE Encoding = "utf-16le"
	EncodingUTF16BE Encoding = "utf-16be"
	// EncodingUTF8 strips an optional byte order mark.
	EncodingUTF8 Encoding = "utf-8"

	DefaultEncoding = EncodingUTF16
)

// Encodings lists the supported encoding names.
var Encodings = []Encoding{EncodingUTF16, EncodingUTF16LE, EncodingUTF16BE, EncodingUTF8}

// ParseEncoding normalizes an encoding name. An empty name selects DefaultEncoding.
func ParseEncoding(name string) (Encoding, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	normalized = strings.ReplaceAll(normalized, "_", "-")

	switch normalized {
	case "":
		return DefaultEncoding, nil
	case "utf-16", "utf16":
		return EncodingUTF16, nil
	case "utf-16le", "utf-16-le", "utf16le":
		return EncodingUTF16LE, nil
	case "utf-16be", "utf-16-be", "utf16be":
		return EncodingUTF16BE, nil
	case "utf-8", "utf8":
		return EncodingUTF8, nil
	default:
		return "", fmt.Errorf("%w %q (use one of %v)", ErrUnknownEncoding, name, Encodings)
	}
}

func (e Encoding) textEncoding() (encoding.Encoding, error) {
	switch e {
	case EncodingUTF16, "":
		return unicode.UTF16(unicode.LittleEndian, unicode.UseBOM), nil
	case EncodingUTF16LE:
		return unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM), nil
	case EncodingUTF16BE:
		return unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM), nil
	case EncodingUTF8:
		return unicode.UTF8BOM, nil
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownEncoding, string(e))
	}
}
