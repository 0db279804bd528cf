package edgefile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// maxLineBytes bounds a single input line; bufio.Scanner's default of 64 KiB
// is too small for files with very long vertex names.
const maxLineBytes = 1 << 20

// fieldSeparator splits a line into its fields.
const fieldSeparator = ";"

// Parse reads r line by line and returns one Record per line, in input order.
//
// Steps:
//  1. Scan lines; strip a trailing '\r' so CRLF files parse identically.
//  2. Split on ';' and require exactly FieldCount fields, otherwise *LineError.
//  3. Collect the fields verbatim into a Record.
//
// A final newline at EOF does not produce an empty record; a blank line in the
// middle of the input is a one-field line and is rejected as TooFew.
// On any error no records are returned.
func Parse(r io.Reader) ([]Record, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLineBytes)

	var (
		records []Record
		lineNo  int
		line    string
		fields  []string
	)
	for sc.Scan() {
		lineNo++
		line = strings.TrimSuffix(sc.Text(), "\r")
		fields = strings.Split(line, fieldSeparator)

		if len(fields) != FieldCount {
			problem := TooFew
			if len(fields) > FieldCount {
				problem = TooMany
			}
			return nil, &LineError{Line: lineNo, Fields: len(fields), Problem: problem}
		}

		records = append(records, Record{
			From:     fields[0],
			To:       fields[1],
			Forward:  fields[2],
			Backward: fields[3],
		})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: after line %d: %v", ErrUnreadable, lineNo, err)
	}

	return records, nil
}

// ReadFile opens path, parses it with Parse and closes it.
// Open failures are reported as ErrUnreadable wrapped with the path.
func ReadFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnreadable, path, err)
	}
	defer f.Close()

	records, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return records, nil
}
