package scheduling

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeTimezone(t *testing.T) {
	tests := []struct {
		in         string
		wantOffset int
		wantErr    bool
	}{
		{in: "", wantOffset: 0},
		{in: " utc ", wantOffset: 0},
		{in: "Z", wantOffset: 0},
		{in: "Europe/Moscow", wantOffset: 3 * 3600},
		{in: "+03:00", wantOffset: 3 * 3600},
		{in: "UTC+2", wantOffset: 2 * 3600},
		{in: "GMT-05:30", wantOffset: -(5*3600 + 30*60)},
		{in: "+0530", wantOffset: 5*3600 + 30*60},
		{in: "Mars/Olympus", wantOffset: 0, wantErr: true},
		{in: "+25:00", wantOffset: 0, wantErr: true},
	}

	instant := mustTime("2026-10-20T12:00:00Z")
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			loc, err := NormalizeTimezone(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownTimezone)
			} else {
				require.NoError(t, err)
			}
			require.NotNil(t, loc)
			_, offset := instant.In(loc).Zone()
			assert.Equal(t, tt.wantOffset, offset)
		})
	}
}

func TestFormatParseRoundTrip(t *testing.T) {
	zones := []string{"UTC", "Europe/Moscow", "America/New_York", "Asia/Kolkata", "Australia/Lord_Howe", "+05:45"}
	instants := []string{
		"2026-10-20T12:00:00Z",
		"2026-03-08T06:59:59Z", // до перехода на летнее время в Нью-Йорке
		"2026-03-08T07:00:00Z",
		"2026-11-01T05:30:00Z", // повторяющийся час при переходе на зимнее время
		"2026-11-01T06:30:00Z",
		"2026-12-31T23:59:59Z",
		"2026-04-05T15:15:00Z",
	}

	for _, zone := range zones {
		loc, err := NormalizeTimezone(zone)
		require.NoError(t, err, zone)

		for _, s := range instants {
			instant := mustTime(s).Add(123 * time.Millisecond)

			formatted := FormatIn(instant, loc, LocalLayout)
			back, err := ParseIn(formatted, LocalLayout, loc)

			require.NoError(t, err)
			assert.True(t, instant.Equal(back), "%s in %s: %s -> %s", s, zone, formatted, back)
		}
	}
}

func TestToInstant(t *testing.T) {
	loc, err := NormalizeTimezone("Europe/Moscow")
	require.NoError(t, err)

	local := time.Date(2026, time.October, 20, 9, 0, 0, 0, time.UTC)

	assertInstant(t, "2026-10-20T06:00:00Z", ToInstant(local, loc))
	assert.Equal(t, "2026-10-20 09:00", FormatIn(ToInstant(local, loc), loc, "2006-01-02 15:04"))
}
