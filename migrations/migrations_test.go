package migrations

import (
	"io/fs"
	"testing"
)

func TestEmbeddedSchemaFiles(t *testing.T) {
	names, err := fs.Glob(Files, "*.sql")
	if err != nil {
		t.Fatalf("glob failed: %v", err)
	}
	if len(names) == 0 {
		t.Fatal("no schema files embedded")
	}
	if names[0] != "0001_init.sql" {
		t.Fatalf("expected 0001_init.sql first, got %s", names[0])
	}

	data, err := fs.ReadFile(Files, names[0])
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("embedded schema file is empty")
	}
}
