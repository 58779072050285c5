// Package lines reads and writes newline-separated records for the sortkit
// CLI. Compressed input (gzip or zstd) is detected by its magic bytes and
// decompressed transparently.
package lines

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// Compression identifies the encoding of an input stream.
type Compression int

const (
	None Compression = iota
	Gzip
	Zstd
)

func (c Compression) String() string {
	switch c {
	case None:
		return "none"
	case Gzip:
		return "gzip"
	case Zstd:
		return "zstd"
	default:
		return "unknown"
	}
}

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

// maxLineLength bounds a single record.
const maxLineLength = 16 << 20

// Detect peeks at the start of r and reports its compression.
func Detect(r *bufio.Reader) (Compression, error) {
	head, err := r.Peek(len(zstdMagic))
	if err != nil && !errors.Is(err, io.EOF) {
		return None, err
	}
	switch {
	case bytes.HasPrefix(head, gzipMagic):
		return Gzip, nil
	case bytes.HasPrefix(head, zstdMagic):
		return Zstd, nil
	}
	return None, nil
}

// NewReader wraps r with the decompressor matching its content.
func NewReader(r io.Reader) (io.ReadCloser, Compression, error) {
	br := bufio.NewReader(r)
	c, err := Detect(br)
	if err != nil {
		return nil, None, err
	}

	switch c {
	case Gzip:
		zr, err := gzip.NewReader(br)
		if err != nil {
			return nil, c, fmt.Errorf("gzip: %w", err)
		}
		return zr, c, nil
	case Zstd:
		zr, err := zstd.NewReader(br)
		if err != nil {
			return nil, c, fmt.Errorf("zstd: %w", err)
		}
		return zr.IOReadCloser(), c, nil
	}
	return io.NopCloser(br), c, nil
}

// Open opens path for reading, or stdin when path is empty or "-".
func Open(path string) (io.ReadCloser, Compression, error) {
	if path == "" || path == "-" {
		return NewReader(os.Stdin)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, None, err
	}
	rc, c, err := NewReader(f)
	if err != nil {
		f.Close()
		return nil, None, fmt.Errorf("%s: %w", path, err)
	}
	return &fileReader{ReadCloser: rc, f: f}, c, nil
}

// fileReader closes the decompressor and then the file under it.
type fileReader struct {
	io.ReadCloser
	f *os.File
}

func (r *fileReader) Close() error {
	return errors.Join(r.ReadCloser.Close(), r.f.Close())
}

// ReadAll returns every line of r without its line terminator. A trailing
// "\r" is removed as well.
func ReadAll(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64<<10), maxLineLength)
	for sc.Scan() {
		out = append(out, strings.TrimSuffix(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ReadFile reads all lines from path (or stdin) through Open.
func ReadFile(path string) ([]string, Compression, error) {
	rc, c, err := Open(path)
	if err != nil {
		return nil, None, err
	}
	defer rc.Close()

	out, err := ReadAll(rc)
	if err != nil {
		return nil, c, err
	}
	return out, c, nil
}

// Write writes each line followed by "\n".
func Write(w io.Writer, lines []string) error {
	bw := bufio.NewWriter(w)
	for _, l := range lines {
		if _, err := bw.WriteString(l); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteFile writes lines to path, or to stdout when path is empty or "-".
func WriteFile(path string, lines []string) error {
	if path == "" || path == "-" {
		return Write(os.Stdout, lines)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Write(f, lines); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
