// Package export serializes a fetched catalog into one of three file
// formats: an xlsx workbook, a csv, or a raw json dump that
// round-trips the records exactly as fetched.
package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"leopardweb-catalog/lib/scrapers/leopardweb"
)

type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

// ParseFormat validates a user-supplied format name.
func ParseFormat(name string) (Format, error) {
	switch Format(name) {
	case FormatXLSX, FormatCSV, FormatJSON:
		return Format(name), nil
	}
	return "", fmt.Errorf("unsupported format %q (want xlsx, csv or json)", name)
}

// ExportError means the output file could not be produced. The target
// path is left without a partial file.
type ExportError struct {
	Path string
	Err  error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("export to %s: %s", e.Path, e.Err)
}

func (e *ExportError) Unwrap() error { return e.Err }

// DefaultPath derives the output filename from the term code and
// format, e.g. courses_202510.xlsx.
func DefaultPath(term string, format Format) string {
	return fmt.Sprintf("courses_%s.%s", term, format)
}

func encoder(format Format) func(leopardweb.Catalog, io.Writer) error {
	switch format {
	case FormatCSV:
		return writeCSV
	case FormatJSON:
		return writeJSON
	default:
		return writeXLSX
	}
}

// Write serializes the catalog to path in the given format. The data
// goes to a temp file in the target directory first and is renamed
// into place only once fully written, so a failure never leaves a
// truncated file behind.
func Write(path string, format Format, catalog leopardweb.Catalog) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return &ExportError{Path: path, Err: err}
	}
	defer os.Remove(tmp.Name())

	err = encoder(format)(catalog, tmp)
	if err != nil {
		tmp.Close()
		return &ExportError{Path: path, Err: err}
	}
	err = tmp.Close()
	if err != nil {
		return &ExportError{Path: path, Err: err}
	}

	err = os.Rename(tmp.Name(), path)
	if err != nil {
		return &ExportError{Path: path, Err: err}
	}
	return nil
}
