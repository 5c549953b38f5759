package stats

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Options controls how an input stream is read.
type Options struct {
	// Delimiter splits text lines into fields. No quoting or escaping
	// is honored. If empty, it is sniffed from the file extension
	// (tab for .tsv, comma otherwise).
	Delimiter string
	// SheetName selects an XLSX sheet by name; SheetIndex (1-based) is
	// used when SheetName is empty.
	SheetName  string
	SheetIndex int
}

// DefaultOptions returns the defaults used by the CLI.
func DefaultOptions() Options {
	return Options{SheetIndex: 1}
}

// RecordSource yields raw records one at a time. Next returns io.EOF
// after the final record; any other error aborts the whole pass.
type RecordSource interface {
	Next() ([]string, error)
}

type lineSource struct {
	sc    *bufio.Scanner
	delim string
}

func newLineSource(r io.Reader, delim string) *lineSource {
	return &lineSource{sc: bufio.NewScanner(r), delim: delim}
}

func (s *lineSource) Next() ([]string, error) {
	if !s.sc.Scan() {
		if err := s.sc.Err(); err != nil {
			return nil, err
		}
		return nil, io.EOF
	}
	return strings.Split(s.sc.Text(), s.delim), nil
}

// Analyze consumes a record stream in one forward pass. The first
// record is always the header, whatever its content; every later
// record is decoded against the schema and offered once to each
// tracker in registration order. Memory stays O(1) in the number of
// rows beyond the best records retained by trackers.
func Analyze(src RecordSource) (*Report, error) {
	metrics := Metrics()
	trackers := make([]*Tracker, 0, len(metrics))
	for _, m := range metrics {
		trackers = append(trackers, NewTracker(m))
	}

	rep := &Report{}
	header, err := src.Next()
	switch {
	case errors.Is(err, io.EOF):
		// No header at all: nothing to fold, every tracker stays unset.
	case err != nil:
		return nil, fmt.Errorf("read header: %w", err)
	default:
		rep.Schema = NewSchema(header)
		for {
			rec, err := src.Next()
			if errors.Is(err, io.EOF) {
				break
			}
			if err != nil {
				return nil, fmt.Errorf("read row %d: %w", rep.Rows+1, err)
			}
			rep.Rows++
			row := DecodeRow(rec, rep.Schema)
			for _, t := range trackers {
				t.Observe(row)
			}
		}
	}

	rep.Results = make([]MetricResult, 0, len(trackers))
	for _, t := range trackers {
		res := MetricResult{ID: t.Metric().ID, Label: t.Metric().Label}
		if score, record, ok := t.Best(); ok {
			s := score
			res.Value = &s
			res.Record = record
		}
		rep.Results = append(rep.Results, res)
	}
	return rep, nil
}

// AnalyzeCSV streams a delimited text file through the fold.
func AnalyzeCSV(path string, opt Options) (*Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	delim := opt.Delimiter
	if delim == "" {
		delim = sniffDelimiter(path)
	}
	rep, err := Analyze(newLineSource(f, delim))
	if err != nil {
		return nil, err
	}
	rep.Name = filepath.Base(path)
	return rep, nil
}

func sniffDelimiter(path string) string {
	if strings.HasSuffix(strings.ToLower(path), ".tsv") {
		return "\t"
	}
	return ","
}
