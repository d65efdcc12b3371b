// SPDX-License-Identifier: AGPL-3.0-or-later

// Package input opens git log files for parsing.
//
// Logs are often archived compressed, and a log redirected to a file from
// Windows PowerShell is UTF-16 with a byte order mark. Open hides both and
// always yields UTF-8 text.
package input

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ErrNotFound is returned when the input path does not exist.
var ErrNotFound = errors.New("cannot find file")

// Compression names the container format of an input file.
type Compression string

const (
	CompressionNone   Compression = ""
	CompressionGzip   Compression = "gzip"
	CompressionZstd   Compression = "zstd"
	CompressionBrotli Compression = "br"
)

// DetectCompression picks the decompressor from the file extension.
func DetectCompression(path string) Compression {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz", ".gzip":
		return CompressionGzip
	case ".zst", ".zstd":
		return CompressionZstd
	case ".br":
		return CompressionBrotli
	default:
		return CompressionNone
	}
}

// File is an opened input. Reads return decoded UTF-8 text.
type File struct {
	io.Reader
	Path        string
	Compression Compression

	closers []io.Closer
}

// Close releases the decompressor and the underlying file.
func (f *File) Close() error {
	var errs []error
	for i := len(f.closers) - 1; i >= 0; i-- {
		if err := f.closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Open opens path for reading. A missing file yields an error matching
// ErrNotFound.
func Open(path string) (*File, error) {
	fh, err := os.Open(path) //nolint:gosec // G304: path comes from the command line
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}

	f := &File{Path: path, Compression: DetectCompression(path), closers: []io.Closer{fh}}
	raw, err := decompress(fh, f)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("opening %s as %s: %w", path, f.Compression, err)
	}
	f.Reader = Decode(raw)
	return f, nil
}

func decompress(r io.Reader, f *File) (io.Reader, error) {
	switch f.Compression {
	case CompressionGzip:
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, err
		}
		f.closers = append(f.closers, zr)
		return zr, nil
	case CompressionZstd:
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		rc := zr.IOReadCloser()
		f.closers = append(f.closers, rc)
		return rc, nil
	case CompressionBrotli:
		return brotli.NewReader(r), nil
	default:
		return r, nil
	}
}

// Decode wraps r so that UTF-8 and UTF-16 (either byte order) input with a
// byte order mark comes out as UTF-8 without the mark. Input without a mark
// is taken to be UTF-8.
func Decode(r io.Reader) io.Reader {
	return transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
}
