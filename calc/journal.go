package calc

import (
	"bytes"
	"fmt"
	"io"
	"slices"

	"fic/common"
	"fic/fraction"
)

// Entry is a single successful calculation.
type Entry struct {
	A         string
	B         string
	Op        common.Operation
	Precision fraction.Denominator
	Result    Result
}

func (e Entry) String() string {
	return fmt.Sprintf("%s %s %s = %s (%s) at %s", e.A, e.Op.Symbol(), e.B, e.Result.FractionText, e.Result.DecimalText, e.Precision)
}

// Journal keeps calculations made during program run. It lives in memory
// only and is not safe for concurrent use.
type Journal struct {
	entries []Entry
}

func (j *Journal) Add(e Entry) {
	j.entries = append(j.entries, e)
}

// Reset drops all entries.
func (j *Journal) Reset() {
	j.entries = nil
}

func (j *Journal) Len() int {
	return len(j.entries)
}

func (j *Journal) Entries() []Entry {
	return slices.Clone(j.entries)
}

// WriteTo implements io.WriterTo, one numbered entry per line.
func (j *Journal) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for i, e := range j.entries {
		n, err := fmt.Fprintf(w, "%3d: %s\n", i+1, e)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// Bytes returns journal content suitable for debug report.
func (j *Journal) Bytes() []byte {
	buf := new(bytes.Buffer)
	_, _ = j.WriteTo(buf)
	return buf.Bytes()
}
