package table

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-gota/gota/series"
)

// TextColumn names the single column produced by plain-text files.
const TextColumn = "text"

// Loader turns a file into a Table.
type Loader interface {
	CanLoad(path string) bool
	Load(path string, opt Options) (*Table, error)
}

var registry []Loader

// Register adds a loader implementation to the registry.
func Register(l Loader) {
	registry = append(registry, l)
}

// ErrUnsupported indicates no loader accepts the file extension.
var ErrUnsupported = errors.New("unsupported table format")

// Open selects a loader by file name and loads the table.
func Open(path string, opt Options) (*Table, error) {
	st, err := os.Stat(path)
	if err != nil {
		return nil, &BadPathError{Path: path, Err: err}
	}
	if st.IsDir() {
		return nil, &BadPathError{Path: path, Err: errors.New("is a directory")}
	}
	for _, l := range registry {
		if l.CanLoad(path) {
			return l.Load(path, opt)
		}
	}
	return nil, &BadPathError{Path: path, Err: fmt.Errorf("%w: %s", ErrUnsupported, filepath.Ext(path))}
}

// Supported reports whether some registered loader accepts the path.
func Supported(path string) bool {
	for _, l := range registry {
		if l.CanLoad(path) {
			return true
		}
	}
	return false
}

func init() {
	Register(csvLoader{})
	Register(xlsxLoader{})
	Register(txtLoader{})
	Register(docxLoader{})
}

func hasExt(path string, exts ...string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range exts {
		if ext == e {
			return true
		}
	}
	return false
}

type csvLoader struct{}

func (csvLoader) CanLoad(path string) bool { return hasExt(path, ".csv", ".tsv", ".tab") }

func (csvLoader) Load(path string, opt Options) (*Table, error) { return ReadCSV(path, opt) }

type xlsxLoader struct{}

func (xlsxLoader) CanLoad(path string) bool { return hasExt(path, ".xlsx") }

func (xlsxLoader) Load(path string, opt Options) (*Table, error) {
	return ReadXLSX(path, opt, opt.SheetName, opt.SheetIndex)
}

// txtLoader yields one row per non-empty line in a single text column.
type txtLoader struct{}

func (txtLoader) CanLoad(path string) bool { return hasExt(path, ".txt", ".md") }

func (txtLoader) Load(path string, opt Options) (*Table, error) { return ReadText(path, opt) }

// ReadText loads a plain-text file as a one-column table.
func ReadText(path string, opt Options) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &BadPathError{Path: path, Err: err}
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 64*1024), 4*1024*1024)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, &BadPathError{Path: path, Err: fmt.Errorf("read text: %w", err)}
	}
	return linesTable(path, lines, opt)
}

// linesTable builds a single text column from the non-blank lines.
func linesTable(path string, lines []string, opt Options) (*Table, error) {
	records := [][]string{{TextColumn}}
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		records = append(records, []string{line})
		if opt.MaxRows > 0 && len(records) > opt.MaxRows {
			break
		}
	}
	// numeric-looking lines stay text
	t, err := fromRecords(filepath.Base(path), records, map[string]series.Type{TextColumn: series.String})
	if err != nil {
		return nil, &BadPathError{Path: path, Err: err}
	}
	return t, nil
}
