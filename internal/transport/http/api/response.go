package api

import (
	"encoding/json"
	"log"
	"net/http"
)

// Column and Table mirror the tabular payload the frontend data tables
// consume: {"columns":[{"title":...}],"records":[[...]]}.
type Column struct {
	Title string `json:"title"`
}

type Table struct {
	Columns []Column `json:"columns"`
	Records [][]any  `json:"records"`
}

func Columns(titles ...string) []Column {
	columns := make([]Column, len(titles))
	for i, title := range titles {
		columns[i] = Column{Title: title}
	}
	return columns
}

func WriteJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("write json failed: %v", err)
	}
}

// Message writes the {"message": ...} shape used for confirmations and for
// every error status.
func Message(w http.ResponseWriter, status int, text string) {
	WriteJSON(w, status, map[string]string{"message": text})
}

// WritePDF sends document bytes with the disposition chosen by the action
// parameter: "export" downloads, anything else previews inline.
func WritePDF(w http.ResponseWriter, filename, action string, data []byte) {
	disposition := "inline"
	if action == "export" {
		disposition = "attachment"
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", disposition+`; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		log.Printf("write pdf failed: %v", err)
	}
}
