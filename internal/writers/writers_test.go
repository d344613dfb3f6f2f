package writers

import (
	"bytes"
	"encoding/json"
	"testing"

	"mailgen/pkg/api"
)

var testRows = []api.EntryV1{
	{List: "REITS", Email: "bob.jones@example.com"},
	{List: "Unknown", Email: "jane.doe@example.com"},
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := Write("csv", &buf, testRows, true, false); err != nil {
		t.Fatalf("write: %v", err)
	}
	want := "List,Email\nREITS,bob.jones@example.com\nUnknown,jane.doe@example.com\n"
	if buf.String() != want {
		t.Fatalf("csv = %q, want %q", buf.String(), want)
	}
}

func TestWriteCSVSimpleNoHeader(t *testing.T) {
	var buf bytes.Buffer
	rows := []api.EntryV1{{Email: "a@b.com"}}
	if err := Write("csv", &buf, rows, false, true); err != nil {
		t.Fatalf("write: %v", err)
	}
	if buf.String() != "a@b.com\n" {
		t.Fatalf("csv = %q", buf.String())
	}
}

func TestWriteTSV(t *testing.T) {
	var buf bytes.Buffer
	if err := Write("tsv", &buf, testRows, true, false); err != nil {
		t.Fatalf("write: %v", err)
	}
	want := "List\tEmail\nREITS\tbob.jones@example.com\nUnknown\tjane.doe@example.com\n"
	if buf.String() != want {
		t.Fatalf("tsv = %q, want %q", buf.String(), want)
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := Write("json", &buf, testRows, true, false); err != nil {
		t.Fatalf("write: %v", err)
	}
	var got []api.EntryV1
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil || len(got) != 2 {
		t.Fatalf("json roundtrip: %v len=%d", err, len(got))
	}
	if got[0] != testRows[0] {
		t.Fatalf("got %+v", got[0])
	}
}

func TestWriteJSONEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := Write("json", &buf, nil, true, false); err != nil {
		t.Fatalf("write: %v", err)
	}
	if got := bytes.TrimSpace(buf.Bytes()); string(got) != "[]" {
		t.Fatalf("empty json = %q, want []", got)
	}
}

func TestWriteJSONL(t *testing.T) {
	var buf bytes.Buffer
	if err := Write("jsonl", &buf, testRows, true, false); err != nil {
		t.Fatalf("write: %v", err)
	}
	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	if len(lines) != 2 {
		t.Fatalf("want 2 lines, got %d", len(lines))
	}
	var row api.EntryV1
	if err := json.Unmarshal(lines[0], &row); err != nil || row != testRows[0] {
		t.Fatalf("line 0: %v %+v", err, row)
	}
}

func TestUnknownFormat(t *testing.T) {
	if err := Write("yaml", &bytes.Buffer{}, testRows, true, false); err == nil {
		t.Fatalf("expected unknown-format error")
	}
}

func TestFormatsRegistered(t *testing.T) {
	want := []string{"csv", "json", "jsonl", "tsv", "xlsx"}
	got := Formats()
	if len(got) != len(want) {
		t.Fatalf("formats = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("formats = %v, want %v", got, want)
		}
	}
}
