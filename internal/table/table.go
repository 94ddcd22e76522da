// Package table loads tabular files into a gota DataFrame and exposes the
// column queries the text analyzers need.
package table

import (
	"errors"
	"fmt"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// NaNValues lists the cell spellings treated as missing.
var NaNValues = []string{"", "NA", "NaN", "<nil>"}

// Options controls how files are read into a Table.
type Options struct {
	// MaxRows limits data rows loaded; 0 means unlimited.
	MaxRows int
	// Delimiter for CSV. If 0, it is picked from the file extension.
	Delimiter rune
	// SheetName selects an XLSX sheet by name (case-insensitive).
	SheetName string
	// SheetIndex selects an XLSX sheet by 1-based index when SheetName is empty.
	SheetIndex int
}

// DefaultOptions returns reasonable defaults for loading.
func DefaultOptions() Options {
	return Options{MaxRows: 100000}
}

// ErrBadPath is matched by every loading failure.
var ErrBadPath = errors.New("bad table path")

// BadPathError reports a file that could not be turned into a Table.
type BadPathError struct {
	Path string
	Err  error
}

func (e *BadPathError) Error() string {
	if e == nil {
		return ErrBadPath.Error()
	}
	return fmt.Sprintf("load table %s: %v", e.Path, e.Err)
}

func (e *BadPathError) Unwrap() error { return e.Err }

// Is reports ErrBadPath as a match so callers need not know the cause.
func (e *BadPathError) Is(target error) bool { return target == ErrBadPath }

// Table is a read-only set of named columns.
type Table struct {
	name string
	df   dataframe.DataFrame
}

// FromRecords builds a Table from a header row followed by data rows. Short rows
// are padded with missing cells and long rows are truncated to the header width.
func FromRecords(name string, records [][]string) (*Table, error) {
	return fromRecords(name, records, nil)
}

func fromRecords(name string, records [][]string, types map[string]series.Type) (*Table, error) {
	if len(records) == 0 || len(records[0]) == 0 {
		return nil, errors.New("no header row")
	}
	width := len(records[0])
	norm := make([][]string, len(records))
	for i, rec := range records {
		row := make([]string, width)
		copy(row, rec)
		norm[i] = row
	}
	df := dataframe.LoadRecords(norm,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(true),
		dataframe.NaNValues(NaNValues),
		dataframe.WithTypes(types),
	)
	if df.Err != nil {
		return nil, df.Err
	}
	return &Table{name: name, df: df}, nil
}

// New builds a Table directly from series.
func New(name string, cols ...series.Series) (*Table, error) {
	df := dataframe.New(cols...)
	if df.Err != nil {
		return nil, df.Err
	}
	return &Table{name: name, df: df}, nil
}

// Name is the source name the table was loaded from.
func (t *Table) Name() string { return t.name }

// DataFrame exposes the underlying frame.
func (t *Table) DataFrame() dataframe.DataFrame { return t.df }

// Names returns the column names in table order.
func (t *Table) Names() []string { return t.df.Names() }

// Rows returns the number of data rows.
func (t *Table) Rows() int { return t.df.Nrow() }

// HasColumn reports whether a column with this exact name exists.
func (t *Table) HasColumn(name string) bool {
	for _, n := range t.df.Names() {
		if n == name {
			return true
		}
	}
	return false
}

// IsText reports whether the named column holds strings. A column whose
// cells are all missing is not text.
func (t *Table) IsText(name string) bool {
	if !t.HasColumn(name) {
		return false
	}
	return isText(t.df.Col(name))
}

// TextColumns returns the text columns in table order.
func (t *Table) TextColumns() []string {
	var out []string
	for _, n := range t.df.Names() {
		if isText(t.df.Col(n)) {
			out = append(out, n)
		}
	}
	return out
}

func isText(s series.Series) bool {
	if s.Type() != series.String {
		return false
	}
	for i := 0; i < s.Len(); i++ {
		if !s.Elem(i).IsNA() {
			return true
		}
	}
	return false
}

// Cells returns the non-missing values of a column rendered as strings.
func (t *Table) Cells(name string) ([]string, error) {
	if !t.HasColumn(name) {
		return nil, fmt.Errorf("column %q not in table", name)
	}
	s := t.df.Col(name)
	if s.Err != nil {
		return nil, s.Err
	}
	out := make([]string, 0, s.Len())
	for i := 0; i < s.Len(); i++ {
		e := s.Elem(i)
		if e.IsNA() {
			continue
		}
		out = append(out, e.String())
	}
	return out, nil
}
