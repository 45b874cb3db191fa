package calendar

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestWorkingDays(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  []Day
	}{
		{
			name:  "sunday start rolls to monday",
			start: date(2020, time.January, 5), // Sunday
			end:   date(2020, time.January, 11),
			want: []Day{
				{2020, 1, 6}, {2020, 1, 7}, {2020, 1, 8}, {2020, 1, 9}, {2020, 1, 10},
			},
		},
		{
			name:  "saturday start skips weekend",
			start: date(2020, time.January, 4), // Saturday
			end:   date(2020, time.January, 7),
			want:  []Day{{2020, 1, 6}, {2020, 1, 7}},
		},
		{
			name:  "single weekday",
			start: date(2020, time.January, 8),
			end:   date(2020, time.January, 8),
			want:  []Day{{2020, 1, 8}},
		},
		{
			name:  "end before start",
			start: date(2020, time.January, 8),
			end:   date(2020, time.January, 7),
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WorkingDays(tt.start, tt.end)
			if len(got) != len(tt.want) {
				t.Fatalf("WorkingDays() returned %d days, want %d: %v", len(got), len(tt.want), got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("day[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestWorkingDays_NoWeekends(t *testing.T) {
	days := WorkingDays(date(2017, time.August, 1), date(2018, time.August, 1))

	for i, d := range days {
		wd := d.Time().Weekday()
		if wd == time.Saturday || wd == time.Sunday {
			t.Errorf("day %v is a %s", d, wd)
		}
		if i > 0 && !days[i-1].Time().Before(d.Time()) {
			t.Errorf("days not ascending at %d: %v then %v", i, days[i-1], d)
		}
	}
	if len(days) != 262 {
		t.Errorf("len(days) = %d, want 262", len(days))
	}
}

func TestDay_Suffix(t *testing.T) {
	d := DayOf(date(2018, time.March, 7))
	if got := d.Suffix(); got != "2018.03.07" {
		t.Errorf("Suffix() = %q, want %q", got, "2018.03.07")
	}
}
