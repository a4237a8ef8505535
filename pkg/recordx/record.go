// Package recordx holds the roster record value type and its line codec.
// Records travel through the pipeline as immutable values: a transform
// produces a new Record, never mutates one in place.
package recordx

import (
	"strconv"
	"strings"

	"github.com/Abraxas-365/agepipe/pkg/errx"
)

// Delimiter separates the fields of a serialized record. Embedded
// delimiters and escaping are not supported.
const Delimiter = ","

const fieldCount = 3

// Record is one parsed roster row.
type Record struct {
	FirstName string
	LastName  string
	Age       int
}

// String returns the serialized form.
func (r Record) String() string {
	return Serialize(r)
}

// FullName returns the record's display name.
func (r Record) FullName() string {
	return r.FirstName + " " + r.LastName
}

// Parse splits a line into a Record. It fails with ErrMalformedRecord when
// the line does not have exactly three fields or the age field is not a
// base-10 integer (optional leading minus).
func Parse(line string) (Record, error) {
	fields := strings.Split(line, Delimiter)
	if len(fields) != fieldCount {
		return Record{}, recordxErrors.New(ErrMalformedRecord).
			WithDetail("line", line).
			WithDetail("fields", len(fields))
	}

	age, err := strconv.Atoi(fields[2])
	if err != nil {
		return Record{}, recordxErrors.NewWithCause(ErrMalformedRecord, err).
			WithDetail("line", line).
			WithDetail("age", fields[2])
	}

	return Record{
		FirstName: fields[0],
		LastName:  fields[1],
		Age:       age,
	}, nil
}

// Serialize joins the three fields back into a line. It is the inverse of
// Parse for well-formed records: Parse(Serialize(r)) == r.
func Serialize(r Record) string {
	return strings.Join([]string{r.FirstName, r.LastName, strconv.Itoa(r.Age)}, Delimiter)
}

// ParseAll parses lines in order. The first malformed line aborts the batch
// and its index is attached to the error.
func ParseAll(lines []string) ([]Record, error) {
	records := make([]Record, 0, len(lines))
	for i, line := range lines {
		r, err := Parse(line)
		if err != nil {
			var e *errx.Error
			if errx.As(err, &e) {
				return nil, e.WithDetail("index", i)
			}
			return nil, err
		}
		records = append(records, r)
	}
	return records, nil
}

// SerializeAll serializes records in order.
func SerializeAll(records []Record) []string {
	lines := make([]string, len(records))
	for i, r := range records {
		lines[i] = Serialize(r)
	}
	return lines
}
