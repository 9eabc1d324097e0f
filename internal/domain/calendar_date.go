package domain

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// CalendarDate representa uma data de calendário (ano, mês e dia), sem hora nem fuso
type CalendarDate struct {
	Year  int
	Month time.Month
	Day   int
}

// Formatos aceitos na leitura de datas do dataset, do mais comum para o menos comum
var calendarDateLayouts = []string{
	time.DateOnly,
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	time.DateTime,
	"1/2/2006",
}

// NewCalendarDate normaliza a data (ex: 2023-01-32 vira 2023-02-01)
func NewCalendarDate(year int, month time.Month, day int) CalendarDate {
	return CalendarDateOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// CalendarDateOf extrai a data de calendário de t no fuso do próprio t.
// A hora é descartada, portanto "2023-05-01T23:30:00-03:00" continua sendo 2023-05-01.
func CalendarDateOf(t time.Time) CalendarDate {
	y, m, d := t.Date()
	return CalendarDate{Year: y, Month: m, Day: d}
}

func ParseCalendarDate(value string) (CalendarDate, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return CalendarDate{}, fmt.Errorf("%w: empty value", ErrInvalidDate)
	}

	for _, layout := range calendarDateLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return CalendarDateOf(t), nil
		}
	}

	return CalendarDate{}, fmt.Errorf("%w: %q", ErrInvalidDate, value)
}

func (d CalendarDate) IsZero() bool {
	return d == CalendarDate{}
}

// Time retorna a meia-noite UTC da data
func (d CalendarDate) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

func (d CalendarDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Compare retorna -1, 0 ou +1 conforme d seja anterior, igual ou posterior a other
func (d CalendarDate) Compare(other CalendarDate) int {
	switch {
	case d.Year != other.Year:
		return compareInt(d.Year, other.Year)
	case d.Month != other.Month:
		return compareInt(int(d.Month), int(other.Month))
	default:
		return compareInt(d.Day, other.Day)
	}
}

func (d CalendarDate) Before(other CalendarDate) bool {
	return d.Compare(other) < 0
}

func (d CalendarDate) After(other CalendarDate) bool {
	return d.Compare(other) > 0
}

func (d CalendarDate) AddDays(days int) CalendarDate {
	return CalendarDateOf(d.Time().AddDate(0, 0, days))
}

// DaysUntil conta os dias de d até other; negativo quando other é anterior
func (d CalendarDate) DaysUntil(other CalendarDate) int {
	return int(other.Time().Sub(d.Time()).Hours() / 24)
}

func (d CalendarDate) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(strconv.Quote(d.String())), nil
}

func (d *CalendarDate) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*d = CalendarDate{}
		return nil
	}

	raw, err := strconv.Unquote(string(data))
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidDate, data)
	}

	if strings.TrimSpace(raw) == "" {
		*d = CalendarDate{}
		return nil
	}

	parsed, err := ParseCalendarDate(raw)
	if err != nil {
		return err
	}

	*d = parsed
	return nil
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
