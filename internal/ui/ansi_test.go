package ui

import (
	"strings"
	"testing"
)

func TestMonoThemeColorIsNotSticky(t *testing.T) {
	SetColorForcing(true, false)
	t.Cleanup(func() {
		SetColorForcing(false, false)
		SetTheme("classic")
	})

	SetTheme("mono")
	if got := C(fgRed, "x"); got != "x" {
		t.Fatalf("mono theme colored output: %q", got)
	}

	SetTheme("classic")
	if got := C(fgRed, "x"); !strings.Contains(got, "\033[") {
		t.Fatalf("color still off after leaving mono: %q", got)
	}
}
