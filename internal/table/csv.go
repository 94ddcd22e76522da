package table

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ReadCSV loads a delimited file. The first record is the header.
func ReadCSV(path string, opt Options) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &BadPathError{Path: path, Err: fmt.Errorf("open csv: %w", err)}
	}
	defer f.Close()
	t, err := readCSV(f, filepath.Base(path), path, opt)
	if err != nil {
		return nil, &BadPathError{Path: path, Err: err}
	}
	return t, nil
}

func readCSV(in io.Reader, name, path string, opt Options) (*Table, error) {
	delim := opt.Delimiter
	if delim == 0 {
		delim = sniffDelimiter(path)
	}
	r := csv.NewReader(in)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	r.LazyQuotes = true
	r.Comma = delim

	var records [][]string
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}
		if len(records) == 0 {
			rec[0] = strings.TrimPrefix(rec[0], "\ufeff")
		}
		records = append(records, rec)
		// header plus MaxRows data rows
		if opt.MaxRows > 0 && len(records) > opt.MaxRows {
			break
		}
	}
	if len(records) == 0 {
		return nil, errors.New("empty csv")
	}
	return FromRecords(name, records)
}

func sniffDelimiter(path string) rune {
	name := strings.ToLower(path)
	if strings.HasSuffix(name, ".tsv") || strings.HasSuffix(name, ".tab") {
		return '\t'
	}
	return ','
}
