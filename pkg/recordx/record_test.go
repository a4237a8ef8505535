package recordx_test

import (
	"testing"

	"github.com/Abraxas-365/agepipe/pkg/errx"
	"github.com/Abraxas-365/agepipe/pkg/recordx"
)

func TestParse_WellFormed(t *testing.T) {
	r, err := recordx.Parse("Ada,Lovelace,36")
	if err != nil {
		t.Fatal(err)
	}
	if r.FirstName != "Ada" || r.LastName != "Lovelace" || r.Age != 36 {
		t.Fatalf("unexpected record: %+v", r)
	}
}

func TestParse_NegativeAge(t *testing.T) {
	r, err := recordx.Parse("Benjamin,Button,-3")
	if err != nil {
		t.Fatal(err)
	}
	if r.Age != -3 {
		t.Fatalf("expected age -3, got %d", r.Age)
	}
}

func TestParse_SpacesInFields(t *testing.T) {
	// No escaping or trimming: spaces are part of the field.
	r, err := recordx.Parse("Aragorn,Son of Arathorn,87")
	if err != nil {
		t.Fatal(err)
	}
	if r.LastName != "Son of Arathorn" {
		t.Fatalf("unexpected last name: %q", r.LastName)
	}
}

func TestParse_Malformed(t *testing.T) {
	lines := []string{
		"",                       // no fields
		"Ada,Lovelace",           // too few
		"Ada,Lovelace,36,extra",  // too many
		"Ada,Lovelace,thirty",    // non-integer age
		"Ada,Lovelace,36.5",      // fractional age
		"Ada,Lovelace, 36",       // untrimmed age is not an integer
	}
	for _, line := range lines {
		if _, err := recordx.Parse(line); !errx.IsCode(err, recordx.ErrMalformedRecord.Code) {
			t.Fatalf("line %q: expected %s, got %v", line, recordx.ErrMalformedRecord.Code, err)
		}
	}
}

func TestSerialize_RoundTrip(t *testing.T) {
	records := []recordx.Record{
		{FirstName: "Ada", LastName: "Lovelace", Age: 36},
		{FirstName: "Grace", LastName: "Hopper", Age: 85},
		{FirstName: "Aragorn", LastName: "Son of Arathorn", Age: 87},
		{FirstName: "Benjamin", LastName: "Button", Age: -3},
		{FirstName: "", LastName: "", Age: 0},
	}
	for _, want := range records {
		got, err := recordx.Parse(recordx.Serialize(want))
		if err != nil {
			t.Fatalf("%+v: %v", want, err)
		}
		if got != want {
			t.Fatalf("round trip changed record: %+v -> %+v", want, got)
		}
	}
}

func TestParseAll_PreservesOrder(t *testing.T) {
	lines := []string{"Ada,Lovelace,36", "Alan,Turing,41", "Grace,Hopper,85"}

	records, err := recordx.ParseAll(lines)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	if records[1].FullName() != "Alan Turing" {
		t.Fatalf("order not preserved: %+v", records)
	}

	if out := recordx.SerializeAll(records); len(out) != 3 || out[2] != "Grace,Hopper,85" {
		t.Fatalf("unexpected serialized batch: %v", out)
	}
}

func TestParseAll_ReportsBadLineIndex(t *testing.T) {
	_, err := recordx.ParseAll([]string{"Ada,Lovelace,36", "broken line"})
	if err == nil {
		t.Fatal("expected error")
	}

	var e *errx.Error
	if !errx.As(err, &e) {
		t.Fatalf("expected errx.Error, got %T", err)
	}
	if e.Details["index"] != 1 {
		t.Fatalf("expected index detail 1, got %v", e.Details["index"])
	}
}

func TestParseAll_Empty(t *testing.T) {
	records, err := recordx.ParseAll(nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 0 {
		t.Fatalf("expected no records, got %d", len(records))
	}
}
