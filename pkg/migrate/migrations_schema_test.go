package migrate_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/DustyWalks/walksandlawns-app2025/pkg/migrate"
)

func TestInitialSchemaMigrationContainsConstraints(t *testing.T) {
	matches, err := filepath.Glob(filepath.Join("migrations", "*_initial_schema.sql"))
	if err != nil {
		t.Fatalf("glob migrations: %v", err)
	}
	if len(matches) == 0 {
		t.Fatalf("no initial schema migration file found")
	}

	data, err := os.ReadFile(matches[0])
	if err != nil {
		t.Fatalf("read migration file: %v", err)
	}
	content := string(data)

	checks := []string{
		"CREATE TABLE users",
		"email varchar UNIQUE",
		"CONSTRAINT add_ons_price_mode_check CHECK (",
		"(price_monthly IS NULL) <> (price_one_time IS NULL)",
		"CREATE UNIQUE INDEX idx_chat_conversations_user_id ON chat_conversations (user_id)",
		"status varchar NOT NULL DEFAULT 'scheduled'",
		"DROP TABLE IF EXISTS chat_messages",
	}

	for _, sub := range checks {
		if !strings.Contains(content, sub) {
			t.Errorf("missing expected statement %q", sub)
		}
	}
}

func TestMigrationDirValidates(t *testing.T) {
	if err := migrate.ValidateDir("migrations"); err != nil {
		t.Fatalf("migration dir failed validation: %v", err)
	}
}
