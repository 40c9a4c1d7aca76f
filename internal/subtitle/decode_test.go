package subtitle

import (
	"strings"
	"testing"
	"unicode/utf8"

	"golang.org/x/text/encoding/simplifiedchinese"
)

func TestDecodeStripsUTF8BOM(t *testing.T) {
	got, err := Decode([]byte("\xef\xbb\xbf00:01 Hello"), "")
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if got != "00:01 Hello" {
		t.Errorf("got %q", got)
	}
}

func TestDecodeUTF16WithBOM(t *testing.T) {
	// "Hi\n" in UTF-16 little endian
	data := []byte{0xff, 0xfe, 'H', 0, 'i', 0, '\n', 0}
	got, err := Decode(data, "")
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if got != "Hi\n" {
		t.Errorf("got %q", got)
	}

	// same text big endian
	data = []byte{0xfe, 0xff, 0, 'H', 0, 'i', 0, '\n'}
	got, err = Decode(data, "")
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if got != "Hi\n" {
		t.Errorf("got %q", got)
	}
}

func TestDecodeLegacyCharset(t *testing.T) {
	data := []byte("Le caf\xe9 est ferm\xe9 aujourd'hui. Nous sommes d\xe9sol\xe9s, revenez demain matin.\n")
	got, err := Decode(data, "")
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if !utf8.ValidString(got) {
		t.Errorf("decoded text is not valid UTF-8: %q", got)
	}
	if !strings.HasPrefix(got, "Le caf") {
		t.Errorf("unexpected decoded text: %q", got)
	}
}

func TestLookupCharset(t *testing.T) {
	enc, err := lookupCharset("GB-18030")
	if err != nil {
		t.Fatalf("lookupCharset failed: %v", err)
	}
	if enc != simplifiedchinese.GB18030 {
		t.Errorf("expected GB18030 encoding, got %v", enc)
	}
	if _, err := lookupCharset("windows-1252"); err != nil {
		t.Errorf("windows-1252: %v", err)
	}
	if _, err := lookupCharset("no-such-charset"); err == nil {
		t.Error("expected error for unknown charset")
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"crlf", "a\r\nb", "a\nb"},
		{"lone cr", "a\rb", "a\nb"},
		{"blank runs", "a\n\n\n  \nb", "a\n\nb"},
		{"mixed", "a\r\nb\r\rc\n\n\n  \nd", "a\nb\n\nc\n\nd"},
		{"bom", "\ufeffa", "a"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
