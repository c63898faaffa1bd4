package id

import (
	"regexp"
	"testing"
)

func TestNewID32(t *testing.T) {
	hex32 := regexp.MustCompile(`^[a-f0-9]{32}$`)

	seen := make(map[string]struct{})
	for i := 0; i < 1000; i++ {
		v := NewID32()
		if !hex32.MatchString(v) {
			t.Fatalf("got %q, want 32 lowercase hex chars", v)
		}
		if _, dup := seen[v]; dup {
			t.Fatalf("duplicate id %q after %d draws", v, i)
		}
		seen[v] = struct{}{}
	}
}
