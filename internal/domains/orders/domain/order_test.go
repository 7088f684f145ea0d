package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var today = time.Date(2026, time.March, 2, 15, 4, 5, 0, time.UTC) // a Monday

func validOrderArgs() (string, string, time.Time, TimeSlot, Location, Product, int32, string) {
	return "alice", "alice@example.com", today.AddDate(0, 0, 4), Slot10AM, LocationColombo, ProductPhone, 1, "leave at the door"
}

func TestNewOrder_Valid(t *testing.T) {
	owner, email, date, slot, location, product, qty, msg := validOrderArgs()
	order, err := NewOrder(owner, email, date, slot, location, product, qty, msg, today)
	require.NoError(t, err)
	require.Equal(t, "alice", order.Owner)
	require.Equal(t, Slot10AM, order.Time)
	require.True(t, order.Date.Equal(time.Date(2026, time.March, 6, 0, 0, 0, 0, time.UTC)))
}

func TestNewOrder_SameDayIsAllowed(t *testing.T) {
	owner, email, _, slot, location, product, qty, msg := validOrderArgs()
	// Submitted late in the day for the same calendar day.
	date := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)
	_, err := NewOrder(owner, email, date, slot, location, product, qty, msg, today)
	require.NoError(t, err)
}

func TestValidateDate(t *testing.T) {
	cases := []struct {
		name string
		date time.Time
		want error
	}{
		{"yesterday", today.AddDate(0, 0, -1), ErrPastDate},
		{"far past", today.AddDate(-1, 0, 0), ErrPastDate},
		{"next sunday", time.Date(2026, time.March, 8, 0, 0, 0, 0, time.UTC), ErrSundayDate},
		{"future sunday", time.Date(2099, time.January, 4, 0, 0, 0, 0, time.UTC), ErrSundayDate},
		{"friday in 2099", time.Date(2099, time.January, 2, 0, 0, 0, 0, time.UTC), nil},
		{"tomorrow", today.AddDate(0, 0, 1), nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateDate(tc.date, today)
			if tc.want == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, tc.want)
			}
		})
	}
}

func TestValidateDate_ComparesCalendarDaysAcrossZones(t *testing.T) {
	// A same-day date parsed in UTC must be accepted even when the
	// server clock sits west of UTC, where midnight UTC is still the
	// previous evening as an instant.
	westOfUTC := time.FixedZone("UTC-10", -10*60*60)
	localMorning := time.Date(2026, time.March, 2, 8, 0, 0, 0, westOfUTC)
	sameDayUTC := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)
	require.NoError(t, ValidateDate(sameDayUTC, localMorning))

	// East of UTC the local calendar can be a day ahead; yesterday's
	// local date is still past.
	eastOfUTC := time.FixedZone("UTC+14", 14*60*60)
	localTomorrow := time.Date(2026, time.March, 3, 1, 0, 0, 0, eastOfUTC)
	require.ErrorIs(t, ValidateDate(sameDayUTC, localTomorrow), ErrPastDate)
}

func TestValidateDate_PastWinsOverSunday(t *testing.T) {
	// A Sunday in the past must report the past-date violation first.
	lastSunday := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	require.ErrorIs(t, ValidateDate(lastSunday, today), ErrPastDate)
}

func TestNewOrder_FieldViolations(t *testing.T) {
	owner, email, date, slot, location, product, _, msg := validOrderArgs()
	cases := []struct {
		name  string
		build func() (*Order, error)
		want  error
	}{
		{"empty owner", func() (*Order, error) {
			return NewOrder("", email, date, slot, location, product, 1, msg, today)
		}, ErrEmptyOwner},
		{"unknown slot", func() (*Order, error) {
			return NewOrder(owner, email, date, "9 AM", location, product, 1, msg, today)
		}, ErrInvalidTimeSlot},
		{"unknown location", func() (*Order, error) {
			return NewOrder(owner, email, date, slot, "Jaffna", product, 1, msg, today)
		}, ErrInvalidLocation},
		{"unknown product", func() (*Order, error) {
			return NewOrder(owner, email, date, slot, location, "Toaster", 1, msg, today)
		}, ErrInvalidProduct},
		{"zero quantity", func() (*Order, error) {
			return NewOrder(owner, email, date, slot, location, product, 0, msg, today)
		}, ErrInvalidQuantity},
		{"negative quantity", func() (*Order, error) {
			return NewOrder(owner, email, date, slot, location, product, -2, msg, today)
		}, ErrInvalidQuantity},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.build()
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestReference(t *testing.T) {
	order := Order{ID: 42}
	require.Equal(t, "ORD-000042", order.Reference())
}
