package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"09:00", 540},
		{"9:00", 540},
		{"17:30", 1050},
		{"00:00", 0},
		{"23:59", 1439},
		{"9:00 AM", 540},
		{"09:00 AM", 540},
		{"9:00am", 540},
		{"  5:00 pm ", 1020},
		{"12:00 AM", 0},
		{"12:30 PM", 750},
		{"11:59 PM", 1439},
	}
	for _, tc := range cases {
		got, err := ParseTimeOfDay(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got.Minutes(), tc.in)
	}
}

func TestParseTimeOfDayRejectsMalformed(t *testing.T) {
	for _, in := range []string{"", "9", "24:00", "12:60", "13:00 PM", "0:30 AM", "9:0", "ab:cd", "+9:00", "9:00 XM", "9:00:00"} {
		_, err := ParseTimeOfDay(in)
		assert.ErrorIs(t, err, ErrInvalidTime, in)
	}
}

func TestTimeOfDayFormat(t *testing.T) {
	assert.Equal(t, "12:00 AM", TimeOfDay(0).Format())
	assert.Equal(t, "9:00 AM", TimeOfDay(540).Format())
	assert.Equal(t, "12:00 PM", TimeOfDay(720).Format())
	assert.Equal(t, "4:30 PM", TimeOfDay(990).Format())
	assert.Equal(t, "11:59 PM", TimeOfDay(1439).Format())
}

func TestTimeOfDayRoundTrip(t *testing.T) {
	for m := 0; m < MinutesPerDay; m++ {
		tod := TimeOfDay(m)
		parsed, err := ParseTimeOfDay(tod.Format())
		require.NoError(t, err)
		require.Equal(t, tod, parsed)
	}
}

func TestTimeOfDayCompare(t *testing.T) {
	nineAM := MustParseTimeOfDay("9:00 AM")
	assert.Equal(t, 0, nineAM.Compare(MustParseTimeOfDay("09:00")))
	assert.Equal(t, -1, nineAM.Compare(MustParseTimeOfDay("9:30 AM")))
	assert.Equal(t, 1, MustParseTimeOfDay("1:00 PM").Compare(MustParseTimeOfDay("12:59 PM")))
}

func TestTimeOfDayJSON(t *testing.T) {
	out, err := json.Marshal(struct {
		Slot TimeOfDay `json:"slot"`
	}{Slot: 570})
	require.NoError(t, err)
	assert.JSONEq(t, `{"slot":"9:30 AM"}`, string(out))

	var in struct {
		Slot TimeOfDay `json:"slot"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"slot":"14:15"}`), &in))
	assert.Equal(t, 855, in.Slot.Minutes())

	require.NoError(t, json.Unmarshal([]byte(`{"slot":600}`), &in))
	assert.Equal(t, 600, in.Slot.Minutes())

	assert.ErrorIs(t, json.Unmarshal([]byte(`{"slot":"noon"}`), &in), ErrInvalidTime)
}

func TestCalendarDate(t *testing.T) {
	d, err := ParseCalendarDate("2025-06-02")
	require.NoError(t, err)
	assert.Equal(t, Monday, d.Weekday())

	d, err = ParseCalendarDate("2025-06-08T10:15:00+05:30")
	require.NoError(t, err)
	assert.Equal(t, CalendarDate("2025-06-08"), d)
	assert.Equal(t, Sunday, d.Weekday())

	_, err = ParseCalendarDate("06/02/2025")
	assert.ErrorIs(t, err, ErrInvalidDate)

	at := CalendarDate("2025-06-02").At(MustParseTimeOfDay("9:30 AM"), time.UTC)
	assert.Equal(t, time.Date(2025, 6, 2, 9, 30, 0, 0, time.UTC), at)
}

func TestCanTransition(t *testing.T) {
	assert.True(t, CanTransition(StatusScheduled, StatusCancelled))
	assert.True(t, CanTransition(StatusScheduled, StatusCompleted))
	assert.False(t, CanTransition(StatusCancelled, StatusScheduled))
	assert.False(t, CanTransition(StatusCompleted, StatusCancelled))
	assert.False(t, CanTransition(StatusScheduled, StatusScheduled))

	assert.False(t, StatusScheduled.Terminal())
	assert.True(t, StatusCompleted.Terminal())
	assert.True(t, StatusCancelled.Terminal())
}
