package pretty

import "testing"

func TestFitToWidthLeavesShortLinesAlone(t *testing.T) {
	text, col := fitToWidth("short line", 3, 80)
	if text != "short line" || col != 3 {
		t.Errorf("fitToWidth = (%q, %d), want (%q, %d)", text, col, "short line", 3)
	}
}

func TestFitToWidthDisabledByNonPositiveWidth(t *testing.T) {
	text, col := fitToWidth("anything at all", 5, 0)
	if text != "anything at all" || col != 5 {
		t.Errorf("fitToWidth with width=0 should be a no-op, got (%q, %d)", text, col)
	}
}

func TestFitToWidthKeepsColumnVisibleWhenTruncating(t *testing.T) {
	line := ""
	for i := 0; i < 200; i++ {
		line += "x"
	}
	col := 150
	text, newCol := fitToWidth(line, col, 40)
	if len(text) > 40+len("… ")+len(" …") {
		t.Fatalf("fitToWidth did not shrink the line: len=%d", len(text))
	}
	if newCol < 1 || newCol > len(text) {
		t.Fatalf("fitToWidth's returned column %d falls outside the truncated line (len %d)", newCol, len(text))
	}
	if text[newCol-1] != 'x' {
		t.Errorf("truncated line at the reported caret column is %q, want the original character", text[newCol-1])
	}
}
