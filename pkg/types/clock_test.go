package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Clock
	}{
		{name: "24h", input: "09:30", want: NewClock(9, 30)},
		{name: "24h single digit hour", input: "9:05", want: NewClock(9, 5)},
		{name: "24h with seconds", input: "18:00:00", want: NewClock(18, 0)},
		{name: "midnight", input: "00:00", want: 0},
		{name: "end of day", input: "24:00", want: Clock(MinutesPerDay)},
		{name: "AM", input: "9:30 AM", want: NewClock(9, 30)},
		{name: "PM compact", input: "02:15pm", want: NewClock(14, 15)},
		{name: "PM with dots", input: "2:15 p.m.", want: NewClock(14, 15)},
		{name: "spanish am", input: "9:30 a. m.", want: NewClock(9, 30)},
		{name: "spanish pm", input: "3:00 p. m.", want: NewClock(15, 0)},
		{name: "spanish pm nbsp", input: "3:00 p. m.", want: NewClock(15, 0)},
		{name: "noon", input: "12:00 p. m.", want: NewClock(12, 0)},
		{name: "midnight 12h", input: "12:30 AM", want: NewClock(0, 30)},
		{name: "hour only with meridiem", input: "9 am", want: NewClock(9, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseClock(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseClock_SameMinutesFor12And24HourFormats(t *testing.T) {
	h24, err := ParseClock("16:45")
	require.NoError(t, err)
	h12, err := ParseClock("4:45 p. m.")
	require.NoError(t, err)

	assert.Equal(t, h24, h12)
	assert.Equal(t, 16*60+45, h12.Minutes())
}

func TestParseClock_Errors(t *testing.T) {
	inputs := []string{"", "abc", "9", "25:00", "10:75", "13:00 pm", "0:30 am", "10:5", "1:2:3:4"}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, err := ParseClock(input)
			assert.Error(t, err)
		})
	}
}

func TestClock_AddMinutesClampsToDay(t *testing.T) {
	assert.Equal(t, Clock(0), NewClock(0, 30).AddMinutes(-60))
	assert.Equal(t, Clock(MinutesPerDay), NewClock(23, 30).AddMinutes(60))
	assert.Equal(t, NewClock(11, 0), NewClock(10, 0).AddMinutes(60))
}

func TestClock_RoundUp(t *testing.T) {
	assert.Equal(t, NewClock(10, 30), NewClock(10, 5).RoundUp(30))
	assert.Equal(t, NewClock(10, 30), NewClock(10, 30).RoundUp(30))
	assert.Equal(t, NewClock(11, 0), NewClock(10, 31).RoundUp(30))
	assert.Equal(t, NewClock(10, 7), NewClock(10, 7).RoundUp(0))
}

func TestClock_String(t *testing.T) {
	assert.Equal(t, "09:05", NewClock(9, 5).String())
	assert.Equal(t, "24:00", Clock(MinutesPerDay).String())
}

func TestClock_Scan(t *testing.T) {
	var c Clock

	require.NoError(t, c.Scan([]byte("13:30:00")))
	assert.Equal(t, NewClock(13, 30), c)

	require.NoError(t, c.Scan("08:00"))
	assert.Equal(t, NewClock(8, 0), c)

	require.NoError(t, c.Scan(time.Date(0, 1, 1, 17, 45, 0, 0, time.UTC)))
	assert.Equal(t, NewClock(17, 45), c)

	assert.Error(t, c.Scan(nil))
	assert.Error(t, c.Scan(42))
}

func TestClock_Value(t *testing.T) {
	v, err := NewClock(9, 0).Value()
	require.NoError(t, err)
	assert.Equal(t, "09:00:00", v)
}

func TestClock_JSON(t *testing.T) {
	data, err := json.Marshal(NewClock(7, 15))
	require.NoError(t, err)
	assert.JSONEq(t, `"07:15"`, string(data))

	var c Clock
	require.NoError(t, json.Unmarshal([]byte(`"3:00 p. m."`), &c))
	assert.Equal(t, NewClock(15, 0), c)
}
