package questionnaire

import (
	"strings"
	"testing"
)

func TestFrequencyOf(t *testing.T) {
	tests := []struct {
		in   int
		want Frequency
	}{
		{-2, NotAtAll},
		{0, NotAtAll},
		{1, SeveralDays},
		{2, MoreThanHalfTheDays},
		{3, NearlyEveryDay},
		{7, NearlyEveryDay},
	}
	for _, tt := range tests {
		if got := FrequencyOf(tt.in); got != tt.want {
			t.Errorf("FrequencyOf(%d) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestFrequency_String(t *testing.T) {
	want := []string{"Not at all", "Several days", "More than half the days", "Nearly every day"}
	for i, f := range Scale() {
		if f.String() != want[i] {
			t.Errorf("Scale()[%d].String() = %q, want %q", i, f.String(), want[i])
		}
	}
}

func TestProject_RendersInOrder(t *testing.T) {
	s := &Schema{
		Items: []Item{
			{Index: 0, Prompt: "I feel sad"},
			{Index: 1, Prompt: "I worry"},
			{Index: 2, Prompt: "I sleep badly"},
		},
	}

	got := Project([]int{0, 2, 3}, s)
	want := "I feel sad: Not at all I worry: More than half the days I sleep badly: Nearly every day"
	if got != want {
		t.Fatalf("Project() =\n  %q\nwant\n  %q", got, want)
	}
}

func TestProject_SaturatesOutOfRange(t *testing.T) {
	s := &Schema{Items: []Item{{Index: 0, Prompt: "A"}, {Index: 1, Prompt: "B"}}}

	got := Project([]int{9, -1}, s)
	if got != "A: Nearly every day B: Not at all" {
		t.Fatalf("unexpected projection: %q", got)
	}
}

func TestProject_Deterministic(t *testing.T) {
	s := Default()
	resp := make([]int, s.Len())
	for i := range resp {
		resp[i] = i % 4
	}

	first := Project(resp, s)
	for range 5 {
		if Project(resp, s) != first {
			t.Fatal("projection is not deterministic")
		}
	}
	if !strings.HasPrefix(first, "I feel sad, empty, or hopeless: Not at all ") {
		t.Errorf("unexpected prefix: %q", first[:60])
	}
	if strings.Count(first, ": ") != s.Len() {
		t.Errorf("expected %d rendered items", s.Len())
	}
}

func TestProject_Empty(t *testing.T) {
	if got := Project(nil, Default()); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
}
