package migrations

import (
	"strings"
	"testing"
)

func TestLoadEntries_Ordered(t *testing.T) {
	entries, err := loadEntries()
	if err != nil {
		t.Fatalf("loadEntries returned error: %v", err)
	}
	if len(entries) < 3 {
		t.Fatalf("expected at least 3 migrations, got %d", len(entries))
	}
	if entries[0].version != "000_migrations_table.sql" {
		t.Fatalf("tracking table migration must run first, got %s", entries[0].version)
	}
	for i := 1; i < len(entries); i++ {
		if entries[i-1].version >= entries[i].version {
			t.Fatalf("migrations out of order: %s before %s", entries[i-1].version, entries[i].version)
		}
	}
}

func TestLoadEntries_CreatesRequiredTables(t *testing.T) {
	entries, err := loadEntries()
	if err != nil {
		t.Fatalf("loadEntries returned error: %v", err)
	}
	var all strings.Builder
	for _, e := range entries {
		all.WriteString(e.sql)
	}
	for _, table := range RequiredTables {
		if !strings.Contains(all.String(), "CREATE TABLE IF NOT EXISTS "+table) {
			t.Errorf("no migration creates table %q", table)
		}
	}
}
