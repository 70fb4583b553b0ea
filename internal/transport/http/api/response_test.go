package api

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
)

func TestMessageShape(t *testing.T) {
	rec := httptest.NewRecorder()
	Message(rec, 404, "Employee not found")

	if rec.Code != 404 {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("unexpected content type %q", ct)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if body["message"] != "Employee not found" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestTableShape(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteJSON(rec, 200, Table{
		Columns: Columns("Employee", "Amount"),
		Records: [][]any{{"Alice", 42.5}},
	})

	var body struct {
		Columns []struct {
			Title string `json:"title"`
		} `json:"columns"`
		Records [][]any `json:"records"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(body.Columns) != 2 || body.Columns[0].Title != "Employee" {
		t.Fatalf("unexpected columns: %v", body.Columns)
	}
	if len(body.Records) != 1 {
		t.Fatalf("unexpected records: %v", body.Records)
	}
}

func TestWritePDFDisposition(t *testing.T) {
	rec := httptest.NewRecorder()
	WritePDF(rec, "report.pdf", "export", []byte("%PDF"))
	if got := rec.Header().Get("Content-Disposition"); got != `attachment; filename="report.pdf"` {
		t.Fatalf("unexpected disposition %q", got)
	}

	rec = httptest.NewRecorder()
	WritePDF(rec, "report.pdf", "", []byte("%PDF"))
	if got := rec.Header().Get("Content-Disposition"); got != `inline; filename="report.pdf"` {
		t.Fatalf("unexpected disposition %q", got)
	}
}
