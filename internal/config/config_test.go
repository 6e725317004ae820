package config

import "testing"

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := LoadConfig("does-not-exist.yaml")
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	if cfg.Server.Port != "5000" {
		t.Errorf("expected default port 5000, got %q", cfg.Server.Port)
	}
	if cfg.JWT.TokenExpiration != "24h" {
		t.Errorf("expected 24h token expiration, got %q", cfg.JWT.TokenExpiration)
	}
	if cfg.Database.DBName != "sentimente" {
		t.Errorf("expected default dbname sentimente, got %q", cfg.Database.DBName)
	}
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("SERVER_PORT", "8080")
	t.Setenv("DB_HOST", "db.internal")

	cfg, err := LoadConfig("does-not-exist.yaml")
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("expected env port 8080, got %q", cfg.Server.Port)
	}
	if cfg.Database.Host != "db.internal" {
		t.Errorf("expected env host db.internal, got %q", cfg.Database.Host)
	}
}

func TestLoadConfigRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	if _, err := LoadConfig("does-not-exist.yaml"); err == nil {
		t.Fatal("expected error when JWT secret is missing")
	}
}

func TestAllowedOrigins(t *testing.T) {
	cfg := &Config{}
	cfg.CORS.AllowedOrigins = "https://sentimente.vercel.app, http://localhost:5173 ,"

	origins := cfg.AllowedOrigins()
	if len(origins) != 2 {
		t.Fatalf("expected 2 origins, got %d: %v", len(origins), origins)
	}
	if origins[0] != "https://sentimente.vercel.app" || origins[1] != "http://localhost:5173" {
		t.Errorf("unexpected origins %v", origins)
	}
}

func TestGetPostgresConnectionString(t *testing.T) {
	cfg := &Config{}
	cfg.Database.User = "postgres"
	cfg.Database.Password = "pw"
	cfg.Database.Host = "localhost"
	cfg.Database.Port = "5432"
	cfg.Database.DBName = "sentimente"

	want := "postgres://postgres:pw@localhost:5432/sentimente?sslmode=disable"
	if got := cfg.GetPostgresConnectionString(); got != want {
		t.Errorf("connection string: got %q, want %q", got, want)
	}
}
