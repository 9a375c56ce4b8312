package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/Makepad-fr/tada/internal/model"
)

func TestFpanelFramesLines(t *testing.T) {
	SetTheme("mono")
	t.Cleanup(func() {
		SetTheme("classic")
		SetColorForcing(false, false)
	})

	var buf bytes.Buffer
	Fpanel(&buf, []string{"ab", "abcd"})
	want := strings.Join([]string{
		"+------+",
		"| ab   |",
		"| abcd |",
		"+------+",
		"",
	}, "\n")
	if buf.String() != want {
		t.Fatalf("unexpected panel:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestFpanelIgnoresANSIWidth(t *testing.T) {
	SetTheme("classic")
	SetColorForcing(true, false)
	t.Cleanup(func() { SetColorForcing(false, false) })

	var buf bytes.Buffer
	Fpanel(&buf, []string{C(fgRed, "red"), "plain"})
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d", len(lines))
	}
	w := ansi.StringWidth(lines[0])
	for i, ln := range lines {
		if got := ansi.StringWidth(ln); got != w {
			t.Fatalf("line %d width %d, want %d: %q", i, got, w, ln)
		}
	}
}

func TestSummaryLines(t *testing.T) {
	SetColorForcing(false, true)
	t.Cleanup(func() { SetColorForcing(false, false) })
	SetTheme("classic")

	empty := SummaryLines(nil)
	if !strings.Contains(strings.Join(empty, "\n"), "no items") {
		t.Fatalf("empty summary: %q", empty)
	}

	lines := SummaryLines([]model.Item{
		{ID: 1, Text: "buy milk"},
		{ID: 2, Text: strings.Repeat("x", 200)},
	})
	if !strings.Contains(lines[0], "Total 2") {
		t.Fatalf("header: %q", lines[0])
	}
	if lines[2] != " 1. • buy milk" {
		t.Fatalf("first row: %q", lines[2])
	}
	if !strings.HasSuffix(lines[3], "...") || ansi.StringWidth(lines[3]) > 90 {
		t.Fatalf("long row not truncated: %q", lines[3])
	}
}
