package subtitle

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/dimchansky/utfbom"
	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
	"golang.org/x/text/transform"
)

// charset names reported by chardet that htmlindex does not know
var charsetAliases = map[string]encoding.Encoding{
	"GB-18030": simplifiedchinese.GB18030,
	"Big5":     traditionalchinese.Big5,
}

// Decode turns raw file bytes into UTF-8 text. A byte-order mark selects the
// encoding when present; otherwise non-UTF-8 input is sniffed with chardet and
// falls back to the named charset when detection fails. An empty fallback
// means windows-1252.
func Decode(data []byte, fallback string) (string, error) {
	rd, bom := utfbom.Skip(bytes.NewReader(data))

	var enc encoding.Encoding
	switch bom {
	case utfbom.UTF16BigEndian:
		enc = unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)
	case utfbom.UTF16LittleEndian:
		enc = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)
	case utfbom.UTF32BigEndian:
		enc = utf32.UTF32(utf32.BigEndian, utf32.IgnoreBOM)
	case utfbom.UTF32LittleEndian:
		enc = utf32.UTF32(utf32.LittleEndian, utf32.IgnoreBOM)
	}

	body, err := io.ReadAll(rd)
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}

	if enc == nil {
		if utf8.Valid(body) {
			return string(body), nil
		}
		enc, err = detectEncoding(body, fallback)
		if err != nil {
			return "", err
		}
	}

	out, err := io.ReadAll(transform.NewReader(bytes.NewReader(body), enc.NewDecoder()))
	if err != nil {
		return "", fmt.Errorf("failed to decode input: %w", err)
	}
	return string(out), nil
}

func detectEncoding(body []byte, fallback string) (encoding.Encoding, error) {
	detector := chardet.NewTextDetector()
	if best, err := detector.DetectBest(body); err == nil {
		if enc, err := lookupCharset(best.Charset); err == nil {
			return enc, nil
		}
	}

	if fallback == "" {
		fallback = "windows-1252"
	}
	enc, err := lookupCharset(fallback)
	if err != nil {
		return nil, fmt.Errorf("unknown fallback charset %q: %w", fallback, err)
	}
	return enc, nil
}

func lookupCharset(name string) (encoding.Encoding, error) {
	if enc, ok := charsetAliases[name]; ok {
		return enc, nil
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, err
	}
	return enc, nil
}

// Normalize converts every line ending to LF and collapses runs of blank
// lines into a single blank line.
func Normalize(text string) string {
	text = strings.TrimPrefix(text, "\ufeff")
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	prevBlank := false
	for _, line := range lines {
		blank := strings.TrimSpace(line) == ""
		if blank && prevBlank {
			continue
		}
		if blank {
			line = ""
		}
		out = append(out, line)
		prevBlank = blank
	}
	return strings.Join(out, "\n")
}
