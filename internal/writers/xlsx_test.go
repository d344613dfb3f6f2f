package writers

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"

	"mailgen/pkg/api"
)

func TestWriteXLSXRoundTrip(t *testing.T) {
	rows := []api.EntryV1{
		{List: "REITS", Email: "bob.jones@example.com"},
		{List: "Utilities", Email: "cara.voss@example.com"},
	}
	var buf bytes.Buffer
	if err := Write("xlsx", &buf, rows, true, false); err != nil {
		t.Fatalf("write: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer func() { _ = f.Close() }()

	for _, c := range []struct{ cell, want string }{
		{"A1", "List"},
		{"B1", "Email"},
		{"A2", "REITS"},
		{"B2", "bob.jones@example.com"},
		{"B3", "cara.voss@example.com"},
	} {
		got, err := f.GetCellValue(SheetName, c.cell)
		if err != nil {
			t.Fatalf("cell %s: %v", c.cell, err)
		}
		if got != c.want {
			t.Errorf("cell %s = %q, want %q", c.cell, got, c.want)
		}
	}
}

func TestWriteXLSXSimpleNoHeader(t *testing.T) {
	var buf bytes.Buffer
	rows := []api.EntryV1{{Email: "a@b.com"}}
	if err := Write("xlsx", &buf, rows, false, true); err != nil {
		t.Fatalf("write: %v", err)
	}
	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer func() { _ = f.Close() }()
	if got, _ := f.GetCellValue(SheetName, "A1"); got != "a@b.com" {
		t.Fatalf("A1 = %q", got)
	}
}
