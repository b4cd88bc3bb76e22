package pagination

import (
	"testing"
)

func TestParsePage(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"", 1},
		{"1", 1},
		{"2", 2},
		{" 7 ", 7},
		{"0", 1},
		{"-3", 1},
		{"abc", 1},
		{"2.5", 1},
		{"3abc", 1},
		{"99999999999999999999999", MaxPage},
		{"1024819115206086201", MaxPage},
		{"2147483648", MaxPage},
		{"2147483647", MaxPage},
		{"-99999999999999999999999", 1},
	}
	for _, tt := range tests {
		if got := ParsePage(tt.raw); got != tt.want {
			t.Errorf("ParsePage(%q) = %d, want %d", tt.raw, got, tt.want)
		}
	}
}

func TestRange(t *testing.T) {
	tests := []struct {
		page, size int
		from, to   int
	}{
		{1, 9, 0, 8},
		{2, 9, 9, 17},
		{3, 9, 18, 26},
		{1, 3, 0, 2},
		{0, 9, 0, 8},
		{MaxPage, 9, (MaxPage - 1) * 9, MaxPage*9 - 1},
		{1024819115206086201, 9, (MaxPage - 1) * 9, MaxPage*9 - 1},
	}
	for _, tt := range tests {
		from, to := Range(tt.page, tt.size)
		if from != tt.from || to != tt.to {
			t.Errorf("Range(%d, %d) = [%d, %d], want [%d, %d]", tt.page, tt.size, from, to, tt.from, tt.to)
		}
	}
}

func TestRange_PagesAreContiguous(t *testing.T) {
	const size = 9
	prevTo := -1
	for p := 1; p <= 50; p++ {
		from, to := Range(p, size)
		if from != prevTo+1 {
			t.Fatalf("page %d starts at %d, previous ended at %d", p, from, prevTo)
		}
		if to-from+1 != size {
			t.Fatalf("page %d has %d rows, want %d", p, to-from+1, size)
		}
		prevTo = to
	}
}

func TestHasNext(t *testing.T) {
	if !HasNext(9, 9) {
		t.Error("full page should show Next")
	}
	if HasNext(8, 9) {
		t.Error("short page should not show Next")
	}
	if HasNext(0, 9) {
		t.Error("empty page should not show Next")
	}
	if HasNext(0, 0) {
		t.Error("zero size should never show Next")
	}
}

func TestBuild(t *testing.T) {
	first := Build("/stories", 1, 9, 9)
	if first.HasPrev || first.PrevURL != "" {
		t.Errorf("page 1 should have no Previous, got %+v", first)
	}
	if !first.HasNext || first.NextURL != "/stories?page=2" {
		t.Errorf("full page 1 should link to page 2, got %+v", first)
	}

	last := Build("/stories", 3, 4, 9)
	if !last.HasPrev || last.PrevURL != "/stories?page=2" {
		t.Errorf("page 3 should link back to page 2, got %+v", last)
	}
	if last.HasNext {
		t.Errorf("short page should have no Next, got %+v", last)
	}

	empty := Build("/stories", 4, 0, 9)
	if !empty.HasPrev || empty.HasNext {
		t.Errorf("empty page past the end: %+v", empty)
	}
}
