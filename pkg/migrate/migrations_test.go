package migrate_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/locofly/inventory-backend/pkg/migrate"
)

func TestInitMigrationContainsConstraints(t *testing.T) {
	matches, err := filepath.Glob(filepath.Join("migrations", "*_init_inventory.sql"))
	if err != nil {
		t.Fatalf("glob migrations: %v", err)
	}
	if len(matches) == 0 {
		t.Fatalf("no init migration file found")
	}

	data, err := os.ReadFile(matches[0])
	if err != nil {
		t.Fatalf("read migration file: %v", err)
	}
	content := string(data)

	checks := []string{
		"CREATE TABLE inventory_records",
		"CHECK (quantity >= 0)",
		"PRIMARY KEY (location_id, item_name)",
		"CREATE TABLE audit_entries",
		"CREATE TABLE barcode_mappings",
		"DROP TABLE IF EXISTS inventory_records",
	}

	for _, sub := range checks {
		if !strings.Contains(content, sub) {
			t.Errorf("missing expected statement %q", sub)
		}
	}
}

func TestValidateDirAcceptsShippedMigrations(t *testing.T) {
	if err := migrate.ValidateDir("migrations"); err != nil {
		t.Fatalf("shipped migrations should validate: %v", err)
	}
}
