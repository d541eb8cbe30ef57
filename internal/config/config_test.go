package config

import (
	"reflect"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "sqlite://portfolio.db")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("MEDIA_URL", "")
	t.Setenv("BLOG_PAGE_SIZE", "")
	t.Setenv("CORS_ORIGINS", "")

	cfg := Load()
	if cfg.JWTIssuer != "portfolio" {
		t.Fatalf("issuer = %q", cfg.JWTIssuer)
	}
	if cfg.MediaURL != "/media/" {
		t.Fatalf("media url = %q", cfg.MediaURL)
	}
	if cfg.BlogPageSize != 10 {
		t.Fatalf("blog page size = %d", cfg.BlogPageSize)
	}
	if cfg.CorsOrigins != nil {
		t.Fatalf("cors origins = %v", cfg.CorsOrigins)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/portfolio")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("MEDIA_URL", "https://cdn.example.com/media")
	t.Setenv("BLOG_PAGE_SIZE", "0")
	t.Setenv("CORS_ORIGINS", " https://a.example.com , ,https://b.example.com")

	cfg := Load()
	if cfg.MediaURL != "https://cdn.example.com/media/" {
		t.Fatalf("media url = %q", cfg.MediaURL)
	}
	if cfg.BlogPageSize != 0 {
		t.Fatalf("blog page size = %d", cfg.BlogPageSize)
	}
	want := []string{"https://a.example.com", "https://b.example.com"}
	if !reflect.DeepEqual(cfg.CorsOrigins, want) {
		t.Fatalf("cors origins = %v", cfg.CorsOrigins)
	}
}

func TestLoadPanicsWithoutDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("JWT_SECRET", "secret")
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	Load()
}

func TestEnvOrIntRejectsGarbage(t *testing.T) {
	t.Setenv("SOME_INT", "abc")
	if got := envOrInt("SOME_INT", 5); got != 5 {
		t.Fatalf("got %d", got)
	}
	t.Setenv("SOME_INT", "-3")
	if got := envOrInt("SOME_INT", 5); got != 5 {
		t.Fatalf("got %d", got)
	}
}

func TestLoadLoggingAndPort(t *testing.T) {
	t.Setenv("DATABASE_URL", "sqlite://portfolio.db")
	t.Setenv("JWT_SECRET", "secret")

	cases := []struct {
		retention string
		want      int
	}{
		{"", 7},
		{"3", 3},
		{"30", 7},
		{"0", 7},
		{"-2", 7},
		{"soon", 7},
	}
	for _, tc := range cases {
		t.Setenv("LOG_RETENTION_DAYS", tc.retention)
		if got := Load().LogRetentionDays; got != tc.want {
			t.Errorf("LOG_RETENTION_DAYS=%q: got %d, want %d", tc.retention, got, tc.want)
		}
	}

	t.Setenv("LOG_DIR", "")
	t.Setenv("PORT", "")
	cfg := Load()
	if cfg.LogDir != "storage/logs" || cfg.Port != "8080" {
		t.Fatalf("defaults: log dir %q port %q", cfg.LogDir, cfg.Port)
	}

	t.Setenv("LOG_DIR", "/var/log/portfolio")
	t.Setenv("PORT", "9090")
	cfg = Load()
	if cfg.LogDir != "/var/log/portfolio" || cfg.Port != "9090" {
		t.Fatalf("overrides: log dir %q port %q", cfg.LogDir, cfg.Port)
	}
}
