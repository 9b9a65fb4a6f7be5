package textgrid

import (
	"bytes"
	"strings"
	"testing"

	"github.com/verte-zerg/matrica/internal/matrix"
)

func TestGridLinesAlignsColumns(t *testing.T) {
	lines := GridLines(matrix.Layout(matrix.Calculate(15, 6, 1990)), "en")
	if len(lines) != 10 {
		t.Fatalf("expected 10 lines, got %d", len(lines))
	}
	if lines[0] != strings.Repeat(" ", 27)+"Temperament" {
		t.Fatalf("unexpected first line: %q", lines[0])
	}
	if lines[2] != "Character  Health  Luck    Goal" {
		t.Fatalf("unexpected label line: %q", lines[2])
	}
	if lines[9] != strings.Repeat(" ", 11)+"3" {
		t.Fatalf("unexpected life value line: %q", lines[9])
	}
}

func TestListLines(t *testing.T) {
	lines := ListLines(matrix.Calculate(15, 6, 1990), "en")
	if len(lines) != 14 {
		t.Fatalf("expected 14 lines, got %d", len(lines))
	}
	if lines[0] != "Temperament    2" {
		t.Fatalf("unexpected first line: %q", lines[0])
	}
}

func TestRenderFallsBackToListWhenNarrow(t *testing.T) {
	r := matrix.Calculate(15, 6, 1990)

	var wide bytes.Buffer
	if err := Render(&wide, r, Options{Lang: "en"}); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := wide.String()
	for _, want := range []string{"Destiny number: 4", "Additional numbers: 31, 4, 29, 2", "Character  Health  Luck    Goal"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if last := lines[len(lines)-1]; last != matrix.Summary(r) {
		t.Fatalf("expected summary as last line, got %q", last)
	}

	var narrow bytes.Buffer
	if err := Render(&narrow, r, Options{Lang: "en", Width: 20}); err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(narrow.String(), "Temperament    2") {
		t.Fatalf("expected list layout in narrow output:\n%s", narrow.String())
	}
	if strings.Contains(narrow.String(), "Character  Health") {
		t.Fatalf("expected grid layout to be replaced in narrow output")
	}
}

func TestPadCell(t *testing.T) {
	if got := padCell("Быт", 5, false); got != "Быт  " {
		t.Fatalf("unexpected left pad: %q", got)
	}
	if got := padCell("7", 3, true); got != "  7" {
		t.Fatalf("unexpected right pad: %q", got)
	}
}
