package localtime

import (
	"testing"
	"time"
)

func TestParseDeadline(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{
			name:  "rfc3339 with offset",
			input: "2024-05-01T12:00:00+08:00",
			want:  time.Date(2024, 5, 1, 12, 0, 0, 0, Location),
		},
		{
			name:  "rfc3339 utc",
			input: "2024-05-01T04:00:00Z",
			want:  time.Date(2024, 5, 1, 12, 0, 0, 0, Location),
		},
		{
			name:  "naive with seconds",
			input: "2024-05-01T12:00:00",
			want:  time.Date(2024, 5, 1, 12, 0, 0, 0, Location),
		},
		{
			name:  "naive without seconds",
			input: "2024-05-01T12:00",
			want:  time.Date(2024, 5, 1, 12, 0, 0, 0, Location),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDeadline(tt.input)
			if err != nil {
				t.Fatalf("ParseDeadline(%q) failed: %v", tt.input, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParseDeadline(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNaiveLayoutRoundTrips(t *testing.T) {
	want := time.Date(2024, 5, 1, 12, 30, 45, 0, Location)

	got, err := ParseDeadline(want.Format(NaiveLayout))
	if err != nil {
		t.Fatalf("ParseDeadline failed on a NaiveLayout timestamp: %v", err)
	}
	if !got.Equal(want) {
		t.Errorf("round-trip = %v, want %v", got, want)
	}
}

func TestParseDeadlineRejectsGarbage(t *testing.T) {
	for _, input := range []string{"", "soonish", "12:00", "2024/05/01 12:00"} {
		if _, err := ParseDeadline(input); err == nil {
			t.Errorf("ParseDeadline(%q) succeeded, want error", input)
		}
	}
}
