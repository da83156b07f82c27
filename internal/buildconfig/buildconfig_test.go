package buildconfig

import "testing"

func TestGenerator(t *testing.T) {
	if got, want := Generator(), "mcdaxml dev (unknown)"; got != want {
		t.Errorf("Generator() = %q, want %q", got, want)
	}
}
