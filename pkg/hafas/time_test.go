package hafas

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const wallClockLayout = "2006-01-02 15:04:05"

func loadBerlin(t *testing.T) *time.Location {
	t.Helper()

	loc, err := time.LoadLocation(ReferenceTimezone)
	require.NoError(t, err)

	return loc
}

func TestWallClockToTimeRoundTrip(t *testing.T) {
	loc := loadBerlin(t)

	days := []time.Time{
		time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.July, 15, 0, 0, 0, 0, time.UTC),
		time.Date(2023, time.December, 31, 0, 0, 0, 0, time.UTC),
	}

	for _, day := range days {
		for hour := 0; hour < 24; hour++ {
			for _, minute := range []int{0, 17, 59} {
				want := fmt.Sprintf("%04d-%02d-%02d %02d:%02d:42", day.Year(), day.Month(), day.Day(), hour, minute)

				got := WallClockToTime(loc, day.Year(), day.Month(), day.Day(), hour, minute, 42)

				assert.Equal(t, want, got.In(loc).Format(wallClockLayout))
			}
		}
	}
}

func TestWallClockToTimeKnownInstants(t *testing.T) {
	loc := loadBerlin(t)

	t.Run("winter time is UTC+1", func(t *testing.T) {
		got := WallClockToTime(loc, 2024, time.January, 15, 14, 30, 0)
		assert.True(t, got.Equal(time.Date(2024, time.January, 15, 13, 30, 0, 0, time.UTC)), got.UTC().String())
	})

	t.Run("summer time is UTC+2", func(t *testing.T) {
		got := WallClockToTime(loc, 2024, time.July, 15, 14, 30, 0)
		assert.True(t, got.Equal(time.Date(2024, time.July, 15, 12, 30, 0, 0, time.UTC)), got.UTC().String())
	})
}

func TestWallClockToTimeOverflowsOntoNextDay(t *testing.T) {
	loc := loadBerlin(t)

	got := WallClockToTime(loc, 2024, time.January, 15, 25, 5, 0)
	assert.Equal(t, "2024-01-16 01:05:00", got.In(loc).Format(wallClockLayout))

	got = WallClockToTime(loc, 2024, time.January, 31, 24, 30, 0)
	assert.Equal(t, "2024-02-01 00:30:00", got.In(loc).Format(wallClockLayout))

	got = WallClockToTime(loc, 2024, time.December, 31, 26, 0, 0)
	assert.Equal(t, "2025-01-01 02:00:00", got.In(loc).Format(wallClockLayout))
}

func TestWallClockToTimeIgnoresHostTimezone(t *testing.T) {
	loc := loadBerlin(t)
	want := WallClockToTime(loc, 2024, time.July, 15, 8, 15, 0)

	originalLocal := time.Local
	t.Cleanup(func() { time.Local = originalLocal })

	for _, hostZone := range []*time.Location{
		time.UTC,
		time.FixedZone("UTC-7", -7*60*60),
		time.FixedZone("UTC+9", 9*60*60),
	} {
		time.Local = hostZone

		got := WallClockToTime(loc, 2024, time.July, 15, 8, 15, 0)
		assert.True(t, want.Equal(got), "host zone %s", hostZone)
		assert.True(t, want.Equal(ParseDateTime(loc, "20240715", "081500")), "host zone %s", hostZone)
	}
}

func TestParseDateTime(t *testing.T) {
	loc := loadBerlin(t)

	tests := []struct {
		name  string
		date  string
		clock string
		want  time.Time
	}{
		{"seconds precision", "20240115", "143000", time.Date(2024, time.January, 15, 13, 30, 0, 0, time.UTC)},
		{"minute precision", "20240115", "1430", time.Date(2024, time.January, 15, 13, 30, 0, 0, time.UTC)},
		{"hours past midnight", "20240115", "250500", time.Date(2024, time.January, 16, 0, 5, 0, 0, time.UTC)},
		{"day offset prefix", "20240115", "01000500", time.Date(2024, time.January, 15, 23, 5, 0, 0, time.UTC)},
		{"summer time", "20240715", "091245", time.Date(2024, time.July, 15, 7, 12, 45, 0, time.UTC)},
		{"missing date", "", "143000", epoch},
		{"missing clock", "20240115", "", epoch},
		{"short date", "2024011", "143000", epoch},
		{"non numeric date", "2024-1-15", "143000", epoch},
		{"non numeric clock", "20240115", "14:30", epoch},
		{"short clock", "20240115", "143", epoch},
		{"single digit day offset", "20240115", "1000500", time.Date(2024, time.January, 15, 23, 5, 0, 0, time.UTC)},
		{"oversized day offset", "20240115", "123000500", epoch},
		{"overflowing day offset", "20240115", "99999999999999999999000500", epoch},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := ParseDateTime(loc, test.date, test.clock)
			assert.True(t, test.want.Equal(got), "got %s, want %s", got.UTC(), test.want.UTC())
		})
	}
}

func TestParseDateTimeEpochDefault(t *testing.T) {
	loc := loadBerlin(t)

	assert.Equal(t, int64(0), ParseDateTime(loc, "", "").UnixMilli())
}
