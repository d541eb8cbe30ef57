package migrations

import (
	"path/filepath"
	"testing"
	"testing/fstest"

	"portfolio-backend-go/internal/db"
)

func TestApplyIsIdempotent(t *testing.T) {
	database, err := db.Open("sqlite://" + filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer database.Close()

	if err := Apply(database); err != nil {
		t.Fatalf("first apply: %v", err)
	}
	if err := Apply(database); err != nil {
		t.Fatalf("second apply: %v", err)
	}
	var count int
	if err := database.Get(&count, `SELECT count(*) FROM schema_migrations`); err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Fatalf("recorded migrations = %d", count)
	}
	for _, table := range []string{"profiles", "services", "timeline_entries", "skills", "project_categories", "projects", "testimonials", "clients", "blog_posts", "contact_messages", "admin_users"} {
		if err := database.Get(&count, `SELECT count(*) FROM `+table); err != nil {
			t.Fatalf("table %s: %v", table, err)
		}
	}
}

func TestApplyOrdersByVersion(t *testing.T) {
	database, err := db.Open("sqlite://" + filepath.Join(t.TempDir(), "order.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer database.Close()

	fsys := fstest.MapFS{
		"m/V10__add_column.sql": {Data: []byte(`ALTER TABLE things ADD COLUMN label TEXT`)},
		"m/V2__create.sql":      {Data: []byte(`CREATE TABLE things (id INTEGER PRIMARY KEY)`)},
		"m/README.md":           {Data: []byte(`ignored`)},
	}
	if err := applyFrom(database, fsys, "m"); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if _, err := database.Exec(`INSERT INTO things (id, label) VALUES (1, 'x')`); err != nil {
		t.Fatalf("insert: %v", err)
	}
}

func TestApplyRollsBackFailedMigration(t *testing.T) {
	database, err := db.Open("sqlite://" + filepath.Join(t.TempDir(), "fail.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer database.Close()

	fsys := fstest.MapFS{
		"m/V1__broken.sql": {Data: []byte(`CREATE TABLE broken (id INTEGER PRIMARY KEY); SELEKT nonsense;`)},
	}
	if err := applyFrom(database, fsys, "m"); err == nil {
		t.Fatal("expected error")
	}
	var count int
	if err := database.Get(&count, `SELECT count(*) FROM schema_migrations`); err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Fatalf("failed migration was recorded")
	}
}

func TestParseVersion(t *testing.T) {
	cases := map[string]string{
		"V1__content.sql": "1",
		"V12__admin.sql":  "12",
		"content.sql":     "",
		"Vbroken.sql":     "",
	}
	for name, want := range cases {
		if got := parseVersion(name); got != want {
			t.Fatalf("%s: got %q want %q", name, got, want)
		}
	}
}
