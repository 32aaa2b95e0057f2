package report

import "testing"

func TestFormatTableAlignsColumns(t *testing.T) {
	headers := []string{"Tier", "Words", "Name"}
	rows := [][]string{
		{"grade1", "15", "1st Grade"},
		{"championship", "120", "Championship"},
	}
	rightAlign := map[int]bool{1: true}

	lines := formatTable(headers, rows, rightAlign)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[0] != "Tier         Words Name" {
		t.Fatalf("unexpected header line: %q", lines[0])
	}
	if lines[1] != "grade1          15 1st Grade" {
		t.Fatalf("unexpected row line: %q", lines[1])
	}
	if lines[2] != "championship   120 Championship" {
		t.Fatalf("unexpected row line: %q", lines[2])
	}
}

func TestFormatTableWideRunes(t *testing.T) {
	lines := formatTable([]string{"Icon", "ID"}, [][]string{{"🎯", "none"}}, nil)
	if lines[1] != "🎯   none" {
		t.Fatalf("unexpected wide rune row: %q", lines[1])
	}
}

func TestFormatTableEmpty(t *testing.T) {
	if lines := formatTable(nil, nil, nil); lines != nil {
		t.Fatalf("expected no lines, got %v", lines)
	}
}
