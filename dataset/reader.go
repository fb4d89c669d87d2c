package dataset

import (
	"bytes"
	"io"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// newDecodingReader strips a leading byte-order mark, decoding UTF-16 input when the
// mark says so, and normalises the text to NFC so header names compare by content.
func newDecodingReader(r io.Reader) io.Reader {
	return transform.NewReader(r, transform.Chain(
		unicode.BOMOverride(unicode.UTF8.NewDecoder()),
		norm.NFC,
	))
}

// sniffDelimiter picks the field separator: tab for .tsv files, semicolon when the
// header line has more semicolons than commas and no tabs, comma otherwise.
func sniffDelimiter(name string, data []byte) rune {
	if strings.HasSuffix(strings.ToLower(name), ".tsv") {
		return '\t'
	}
	header := data
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		header = data[:i]
	}
	commas := bytes.Count(header, []byte{','})
	semicolons := bytes.Count(header, []byte{';'})
	tabs := bytes.Count(header, []byte{'\t'})
	if tabs == 0 && semicolons > commas {
		return ';'
	}
	return ','
}
