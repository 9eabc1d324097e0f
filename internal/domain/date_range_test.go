package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandDates(t *testing.T) {
	tests := []struct {
		name  string
		start CalendarDate
		end   CalendarDate
		want  []string
	}{
		{
			name:  "virada de mês",
			start: NewCalendarDate(2023, time.January, 30),
			end:   NewCalendarDate(2023, time.February, 2),
			want:  []string{"2023-01-30", "2023-01-31", "2023-02-01", "2023-02-02"},
		},
		{
			name:  "um único dia",
			start: NewCalendarDate(2023, time.May, 1),
			end:   NewCalendarDate(2023, time.May, 1),
			want:  []string{"2023-05-01"},
		},
		{
			name:  "ano bissexto e virada de ano",
			start: NewCalendarDate(2023, time.December, 31),
			end:   NewCalendarDate(2024, time.January, 1),
			want:  []string{"2023-12-31", "2024-01-01"},
		},
		{
			name:  "fevereiro bissexto",
			start: NewCalendarDate(2024, time.February, 28),
			end:   NewCalendarDate(2024, time.March, 1),
			want:  []string{"2024-02-28", "2024-02-29", "2024-03-01"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExpandDates(tt.start, tt.end)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExpandDates_IntervaloInvertido(t *testing.T) {
	got, err := ExpandDates(NewCalendarDate(2023, time.February, 2), NewCalendarDate(2023, time.January, 30))

	assert.ErrorIs(t, err, ErrInvalidDateRange)
	assert.Nil(t, got)
}

func TestExpandDates_SemLacunasNemDuplicatas(t *testing.T) {
	start := NewCalendarDate(2014, time.January, 3)
	end := NewCalendarDate(2017, time.December, 30)

	got, err := ExpandDates(start, end)
	require.NoError(t, err)

	assert.Len(t, got, start.DaysUntil(end)+1)
	assert.Equal(t, start.String(), got[0])
	assert.Equal(t, end.String(), got[len(got)-1])

	for i := 1; i < len(got); i++ {
		prev, err := ParseCalendarDate(got[i-1])
		require.NoError(t, err)
		curr, err := ParseCalendarDate(got[i])
		require.NoError(t, err)

		assert.Equal(t, prev.AddDays(1), curr, "gap between %s and %s", got[i-1], got[i])
	}
}

func TestDateRange_ContainsAndExpand(t *testing.T) {
	r := DateRange{
		MinDate: NewCalendarDate(2023, time.January, 30),
		MaxDate: NewCalendarDate(2023, time.February, 2),
	}

	assert.True(t, r.Contains(r.MinDate))
	assert.True(t, r.Contains(r.MaxDate))
	assert.True(t, r.Contains(NewCalendarDate(2023, time.February, 1)))
	assert.False(t, r.Contains(NewCalendarDate(2023, time.January, 29)))
	assert.False(t, r.Contains(NewCalendarDate(2023, time.February, 3)))

	dates, err := r.Expand()
	require.NoError(t, err)
	assert.Len(t, dates, 4)
}
