package txt

import (
	"errors"
	"testing"
)

func TestDominantColonCount(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  int
	}{
		{
			name:  "srt timing wins over decimals",
			lines: []string{"00:00:01,000 --> 00:00:02,000", "1.5 apples", "00:00:03,000 --> 00:00:04,000"},
			want:  2,
		},
		{
			name:  "tie goes to first seen",
			lines: []string{"00:01 a", "1.5 b", "00:02 c", "2.5 d"},
			want:  1,
		},
		{
			name:  "tie goes to first seen decimal",
			lines: []string{"1.5 b", "00:01 a", "2.5 d", "00:02 c"},
			want:  0,
		},
		{
			name:  "frames timecode",
			lines: []string{"00:00:01:05 a", "00:00:02:10 b"},
			want:  3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := dominantColonCount(classifyLines(tt.lines))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestDominantColonCountWithoutTimestamps(t *testing.T) {
	_, err := dominantColonCount(classifyLines([]string{"hello", "world"}))
	if !errors.Is(err, ErrNoTimestampsFound) {
		t.Errorf("expected ErrNoTimestampsFound, got %v", err)
	}
}

func TestDemoteMinorityShapes(t *testing.T) {
	lines := classifyLines([]string{
		"00:00:01,000 --> 00:00:02,000",
		"3.50 dollars",
		"00:00:03,000 --> 00:00:04,000",
	})
	demoted := demoteMinorityShapes(lines, 2)
	if demoted != 1 {
		t.Fatalf("demoted: got %d, want 1", demoted)
	}
	if lines[1].hasStart() {
		t.Error("decimal line should no longer carry a timestamp")
	}
	if !lines[0].hasStart() || !lines[2].hasStart() {
		t.Error("dominant shape lines must keep their timestamps")
	}
}

func TestCountBlankLineStructure(t *testing.T) {
	lines := []string{"A1", "A2", "", "B1", "B2", "", "C1"}
	got := countBlankLineStructure(lines)
	if got.lines != 7 {
		t.Errorf("lines: got %d, want 7", got.lines)
	}
	if got.doubleText != 1 {
		t.Errorf("double text: got %d, want 1", got.doubleText)
	}
	if got.singleBlank != 2 {
		t.Errorf("single blank: got %d, want 2", got.singleBlank)
	}
	if !got.pairedByBlankLines() {
		t.Error("expected blank-line pairing")
	}
}

func TestUsesTimestamps(t *testing.T) {
	tests := []struct {
		timestamped, total int
		want               bool
	}{
		{1, 5, true},
		{2, 10, true},
		{1, 6, false},
		{0, 3, false},
	}
	for _, tt := range tests {
		if got := usesTimestamps(tt.timestamped, tt.total); got != tt.want {
			t.Errorf("usesTimestamps(%d, %d) = %v, want %v",
				tt.timestamped, tt.total, got, tt.want)
		}
	}
}

func TestModeString(t *testing.T) {
	if ModeTimestamped.String() != "timestamped" {
		t.Errorf("got %q", ModeTimestamped.String())
	}
	if Mode(99).String() != "unknown" {
		t.Errorf("got %q", Mode(99).String())
	}
}
