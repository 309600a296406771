package harness

import (
	"encoding/csv"
	"io"
	"strconv"
)

// TSVWriter streams sweep rows as tab-separated values under the header
// "n\tint\tfloat".
type TSVWriter struct {
	w *csv.Writer
}

// NewTSVWriter wraps w.
func NewTSVWriter(w io.Writer) *TSVWriter {
	cw := csv.NewWriter(w)
	cw.Comma = '\t'
	return &TSVWriter{w: cw}
}

// WriteHeader writes the column names.
func (t *TSVWriter) WriteHeader() error {
	return t.write([]string{"n", "int", "float"})
}

// WriteRow writes one record and flushes it, so partial tables survive an
// interrupted sweep.
func (t *TSVWriter) WriteRow(r Row) error {
	return t.write([]string{
		strconv.FormatUint(r.N, 10),
		strconv.FormatUint(uint64(r.IntTicks), 10),
		strconv.FormatUint(uint64(r.FloatTicks), 10),
	})
}

func (t *TSVWriter) write(record []string) error {
	if err := t.w.Write(record); err != nil {
		return err
	}
	t.w.Flush()
	return t.w.Error()
}

// WriteTSV writes the header followed by rows.
func WriteTSV(w io.Writer, rows []Row) error {
	t := NewTSVWriter(w)
	if err := t.WriteHeader(); err != nil {
		return err
	}
	for _, r := range rows {
		if err := t.WriteRow(r); err != nil {
			return err
		}
	}
	return nil
}
