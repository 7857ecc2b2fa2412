// Package dictionary reads word lists into ir.Words.
//
// A word list has one word per line. Blank lines are skipped and a trailing
// '\r' is removed, so lists written on any platform load the same way.
// Word order is preserved; it decides the order of ambiguous candidates.
package dictionary

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/roach88/unscramble/internal/ir"
)

// Supported encodings.
const (
	EncodingUTF8        = "utf-8"
	EncodingLatin1      = "iso-8859-1"
	EncodingWindows1252 = "windows-1252"
)

// ValidEncodings lists the accepted Options.Encoding values.
var ValidEncodings = []string{EncodingUTF8, EncodingLatin1, EncodingWindows1252}

// ErrEncoding is returned for an unknown encoding name.
var ErrEncoding = errors.New("unsupported encoding")

// Options controls how a word list is decoded.
type Options struct {
	// Encoding of the source; empty means UTF-8.
	Encoding string

	// Normalize converts every word to NFC.
	Normalize bool
}

// Load reads a word list from r.
func Load(r io.Reader, opts Options) ([]ir.Word, error) {
	dec, err := decoder(opts.Encoding)
	if err != nil {
		return nil, err
	}
	if dec != nil {
		r = transform.NewReader(r, dec.NewDecoder())
	}

	var words []ir.Word
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		w := strings.TrimSuffix(sc.Text(), "\r")
		if strings.TrimSpace(w) == "" {
			continue
		}
		if opts.Normalize {
			w = ir.Canonical(w)
		}
		words = append(words, ir.Word(w))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read dictionary: %w", err)
	}
	return words, nil
}

// LoadFile reads a word list from path.
func LoadFile(path string, opts Options) ([]ir.Word, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dictionary: %w", err)
	}
	defer f.Close()

	words, err := Load(f, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return words, nil
}

// decoder returns the charmap for name, or nil for UTF-8.
func decoder(name string) (encoding.Encoding, error) {
	switch strings.ToLower(name) {
	case "", EncodingUTF8, "utf8":
		return nil, nil
	case EncodingLatin1, "latin1", "latin-1":
		return charmap.ISO8859_1, nil
	case EncodingWindows1252, "cp1252":
		return charmap.Windows1252, nil
	default:
		return nil, fmt.Errorf("%w: %q (must be one of %v)", ErrEncoding, name, ValidEncodings)
	}
}
