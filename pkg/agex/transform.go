package agex

import "github.com/Abraxas-365/agepipe/pkg/recordx"

// Transform returns a new record with the adjustment applied to the age.
// The adjustment is signed: zero and negative values are applied exactly
// like positive ones.
func Transform(r recordx.Record, adjustment int) recordx.Record {
	r.Age += adjustment
	return r
}

// TransformAll applies the adjustment to every record, preserving order.
func TransformAll(records []recordx.Record, adjustment int) []recordx.Record {
	adjusted := make([]recordx.Record, len(records))
	for i, r := range records {
		adjusted[i] = Transform(r, adjustment)
	}
	return adjusted
}
