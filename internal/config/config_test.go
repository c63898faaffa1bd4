package config

import (
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"APP_PORT", "MYSQL_HOST", "MYSQL_DB", "REDIS_DB", "IDEMPOTENCY_TTL_SECONDS"} {
		t.Setenv(k, "")
	}
	c := Load()
	if c.AppPort != "8080" {
		t.Fatalf("AppPort = %q, want 8080", c.AppPort)
	}
	if c.MySQLDB != "loan_ledger" {
		t.Fatalf("MySQLDB = %q", c.MySQLDB)
	}
	if c.IdempTTLSecs != 300 {
		t.Fatalf("IdempTTLSecs = %d, want 300", c.IdempTTLSecs)
	}
	if err := c.Validate(); err != nil {
		t.Fatalf("defaults must validate: %v", err)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("MYSQL_HOST", "db.internal")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("IDEMPOTENCY_TTL_SECONDS", "60")

	c := Load()
	if c.AppPort != "9090" || c.MySQLHost != "db.internal" {
		t.Fatalf("overrides not applied: %+v", c)
	}
	if c.RedisDB != 3 || c.IdempTTLSecs != 60 {
		t.Fatalf("numeric overrides not applied: %+v", c)
	}
}

func TestValidate(t *testing.T) {
	c := Load()
	c.MySQLHost = ""
	if err := c.Validate(); err == nil {
		t.Fatal("expected missing-host error")
	}

	c = Load()
	c.MySQLPort = "not-a-port"
	if err := c.Validate(); err == nil {
		t.Fatal("expected invalid-port error")
	}
}

func TestMySQLDSN(t *testing.T) {
	c := &Config{
		MySQLHost: "db", MySQLPort: "3306", MySQLDB: "ledger",
		MySQLUser: "app", MySQLPass: "s3cret",
	}
	dsn := c.MySQLDSN()
	if !strings.HasPrefix(dsn, "app:s3cret@tcp(db:3306)/ledger?") {
		t.Fatalf("unexpected dsn %q", dsn)
	}
	if !strings.Contains(dsn, "parseTime=true") {
		t.Fatalf("dsn must enable parseTime: %q", dsn)
	}
}
