package envutil

import (
	"strings"
	"testing"
)

func TestString(t *testing.T) {
	t.Setenv("DATAPORT_TEST_STRING", "")
	if got := String("DATAPORT_TEST_STRING", "fallback"); got != "fallback" {
		t.Fatalf("expected fallback for unset var, got %q", got)
	}

	t.Setenv("DATAPORT_TEST_STRING", "   ")
	if got := String("DATAPORT_TEST_STRING", "fallback"); got != "fallback" {
		t.Fatalf("expected fallback for blank var, got %q", got)
	}

	t.Setenv("DATAPORT_TEST_STRING", "  value  ")
	if got := String("DATAPORT_TEST_STRING", "fallback"); got != "value" {
		t.Fatalf("expected trimmed value, got %q", got)
	}
}

func TestInt(t *testing.T) {
	t.Setenv("DATAPORT_TEST_INT", "")
	if got := Int("DATAPORT_TEST_INT", 30); got != 30 {
		t.Fatalf("expected default for unset var, got %d", got)
	}

	t.Setenv("DATAPORT_TEST_INT", "45")
	if got := Int("DATAPORT_TEST_INT", 30); got != 45 {
		t.Fatalf("expected parsed value, got %d", got)
	}

	t.Setenv("DATAPORT_TEST_INT", "not-a-number")
	if got := Int("DATAPORT_TEST_INT", 30); got != 30 {
		t.Fatalf("expected default for unparsable var, got %d", got)
	}
}

func TestBool(t *testing.T) {
	cases := []struct {
		raw  string
		def  bool
		want bool
	}{
		{"", true, true},
		{"", false, false},
		{"1", false, true},
		{"true", false, true},
		{"YES", false, true},
		{"on", false, true},
		{"0", true, false},
		{"false", true, false},
		{"No", true, false},
		{"off", true, false},
		{"maybe", true, true},
		{"maybe", false, false},
	}
	for _, c := range cases {
		t.Setenv("DATAPORT_TEST_BOOL", c.raw)
		if got := Bool("DATAPORT_TEST_BOOL", c.def); got != c.want {
			t.Fatalf("Bool(%q, %v) = %v, want %v", c.raw, c.def, got, c.want)
		}
	}
}

func TestRequire(t *testing.T) {
	t.Setenv("DATAPORT_TEST_REQUIRE", "")
	if _, err := Require("DATAPORT_TEST_REQUIRE"); err == nil {
		t.Fatal("expected error for unset var")
	} else if !strings.Contains(err.Error(), "DATAPORT_TEST_REQUIRE") {
		t.Fatalf("expected error to name the variable, got %v", err)
	}

	t.Setenv("DATAPORT_TEST_REQUIRE", "  dsn  ")
	v, err := Require("DATAPORT_TEST_REQUIRE")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != "dsn" {
		t.Fatalf("expected trimmed value, got %q", v)
	}
}
