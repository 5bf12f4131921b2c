package migrate_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCoreMigrationContainsConstraints(t *testing.T) {
	matches, err := filepath.Glob(filepath.Join("migrations", "*_create_core_tables.sql"))
	if err != nil {
		t.Fatalf("glob migrations: %v", err)
	}
	if len(matches) == 0 {
		t.Fatalf("no core tables migration file found")
	}

	data, err := os.ReadFile(matches[0])
	if err != nil {
		t.Fatalf("read migration file: %v", err)
	}
	content := string(data)

	checks := []string{
		"CREATE TABLE IF NOT EXISTS users",
		"CREATE TABLE IF NOT EXISTS products",
		"CREATE TABLE IF NOT EXISTS order_items",
		"REFERENCES orders(id)",
		"PRIMARY KEY (user_id, product_id)",
		"CHECK (quantity > 0)",
		"DROP TABLE IF EXISTS users",
	}

	for _, sub := range checks {
		if !strings.Contains(content, sub) {
			t.Errorf("missing expected statement %q", sub)
		}
	}
}

func TestSeedMigrationIsIdempotent(t *testing.T) {
	matches, err := filepath.Glob(filepath.Join("migrations", "*_seed_storefront_defaults.sql"))
	if err != nil {
		t.Fatalf("glob migrations: %v", err)
	}
	if len(matches) == 0 {
		t.Fatalf("no seed migration file found")
	}

	data, err := os.ReadFile(matches[0])
	if err != nil {
		t.Fatalf("read migration file: %v", err)
	}
	content := string(data)

	if !strings.Contains(content, "ON CONFLICT (key) DO NOTHING") {
		t.Error("settings seed must be conflict-safe")
	}
	if strings.Count(content, "ON CONFLICT (id) DO NOTHING") < 2 {
		t.Error("payment method and banner seeds must be conflict-safe")
	}
}
