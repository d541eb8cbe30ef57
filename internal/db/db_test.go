package db

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestParseDSN(t *testing.T) {
	cases := []struct {
		dsn    string
		driver string
		prefix string
	}{
		{"postgres://user:pw@localhost:5432/portfolio", DriverPostgres, "postgres://user:pw@localhost:5432/portfolio"},
		{"postgresql://localhost/portfolio", DriverPostgres, "postgresql://localhost/portfolio"},
		{"sqlite://storage/portfolio.db", DriverSQLite, "storage/portfolio.db?_pragma=foreign_keys(1)"},
		{"file:portfolio.db?mode=rwc", DriverSQLite, "file:portfolio.db?mode=rwc&_pragma=foreign_keys(1)"},
	}
	for _, tc := range cases {
		driver, source, err := parseDSN(tc.dsn)
		if err != nil {
			t.Fatalf("%s: %v", tc.dsn, err)
		}
		if driver != tc.driver {
			t.Fatalf("%s: driver = %s", tc.dsn, driver)
		}
		if !strings.HasPrefix(source, tc.prefix) {
			t.Fatalf("%s: source = %s", tc.dsn, source)
		}
	}
	if _, _, err := parseDSN("mysql://localhost"); err == nil {
		t.Fatal("expected error for mysql url")
	}
}

func TestOpenSQLite(t *testing.T) {
	database, err := Open("sqlite://" + filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer database.Close()
	if IsPostgres(database) {
		t.Fatal("sqlite reported as postgres")
	}
	var enabled int
	if err := database.Get(&enabled, `PRAGMA foreign_keys`); err != nil {
		t.Fatalf("pragma: %v", err)
	}
	if enabled != 1 {
		t.Fatalf("foreign keys = %d", enabled)
	}
	if got := database.Rebind("SELECT ?"); got != "SELECT ?" {
		t.Fatalf("rebind = %q", got)
	}
}

func TestSQLiteLowerFoldsUnicode(t *testing.T) {
	database, err := Open("sqlite://" + filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer database.Close()
	cases := map[string]string{
		"Design":     "design",
		"ДИЗАЙН":     "дизайн",
		"Éléphant":   "éléphant",
		"mixed Ünïk": "mixed ünïk",
	}
	for input, want := range cases {
		var got string
		if err := database.Get(&got, database.Rebind(`SELECT lower(?)`), input); err != nil {
			t.Fatalf("lower(%q): %v", input, err)
		}
		if got != want {
			t.Fatalf("lower(%q) = %q, want %q", input, got, want)
		}
	}
	var null *string
	if err := database.Get(&null, `SELECT lower(NULL)`); err != nil {
		t.Fatalf("lower(NULL): %v", err)
	}
	if null != nil {
		t.Fatalf("lower(NULL) = %q", *null)
	}
}
