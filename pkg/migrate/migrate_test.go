package migrate

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCreateSQLMigration(t *testing.T) {
	dir := t.TempDir()

	path, err := CreateSQLMigration(dir, "Add Partner Column!")
	if err != nil {
		t.Fatalf("CreateSQLMigration failed: %v", err)
	}

	base := filepath.Base(path)
	if !strings.HasSuffix(base, "_add_partner_column.sql") {
		t.Fatalf("unexpected migration filename %q", base)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read migration: %v", err)
	}
	if !strings.Contains(string(b), "-- +goose Up") || !strings.Contains(string(b), "-- +goose Down") {
		t.Fatalf("migration template missing goose markers: %s", b)
	}
}

func TestCreateSQLMigration_InvalidName(t *testing.T) {
	if _, err := CreateSQLMigration(t.TempDir(), "!!!"); err == nil {
		t.Fatal("expected sanitized-empty name to error")
	}
}

func TestValidateDir(t *testing.T) {
	dir := t.TempDir()

	good := "20240115093000_create_orders.sql"
	content := "-- +goose Up\nCREATE TABLE t (id INT);\n-- +goose Down\nDROP TABLE t;\n"
	if err := os.WriteFile(filepath.Join(dir, good), []byte(content), 0o644); err != nil {
		t.Fatalf("write migration: %v", err)
	}
	if err := ValidateDir(dir); err != nil {
		t.Fatalf("expected valid dir, got %v", err)
	}

	bad := "create_orders.sql"
	if err := os.WriteFile(filepath.Join(dir, bad), []byte(content), 0o644); err != nil {
		t.Fatalf("write migration: %v", err)
	}
	if err := ValidateDir(dir); err == nil {
		t.Fatal("expected invalid filename to fail validation")
	}
}

func TestValidateDir_MissingGooseMarkers(t *testing.T) {
	dir := t.TempDir()
	name := "20240115093000_create_orders.sql"
	if err := os.WriteFile(filepath.Join(dir, name), []byte("CREATE TABLE t (id INT);"), 0o644); err != nil {
		t.Fatalf("write migration: %v", err)
	}
	if err := ValidateDir(dir); err == nil {
		t.Fatal("expected missing goose markers to fail validation")
	}
}

func TestRepoMigrationsValidate(t *testing.T) {
	if err := ValidateDir("migrations"); err != nil {
		t.Fatalf("shipped migrations failed validation: %v", err)
	}
}
