//go:build unit

package booking_test

import (
	"testing"

	"tripflow/internal/domain/booking"
	"tripflow/internal/pkg/errs"
	"tripflow/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDraft(t *testing.T) *booking.Draft {
	t.Helper()
	details := builder.NewTripBuilder().MustBuild()
	return booking.NewDraft(details, builder.NewOptionsBuilder().Build())
}

func TestDraftSelection(t *testing.T) {
	t.Run("selects by index", func(t *testing.T) {
		d := newDraft(t)

		require.NoError(t, d.SelectFlight(1))
		require.NoError(t, d.SelectHotel(0))

		f, ok := d.Flight()
		require.True(t, ok)
		assert.Equal(t, "BA456", f.FlightNumber)

		h, ok := d.Hotel()
		require.True(t, ok)
		assert.Equal(t, "Hotel Lumiere", h.Name)
	})

	t.Run("re-selecting the same index is a no-op", func(t *testing.T) {
		d := newDraft(t)

		require.NoError(t, d.SelectFlight(0))
		before := d.SelectedFlight()
		require.NoError(t, d.SelectFlight(0))

		assert.Equal(t, *before, *d.SelectedFlight())
	})

	t.Run("out of range index rejected", func(t *testing.T) {
		d := newDraft(t)

		assert.ErrorIs(t, d.SelectFlight(-1), errs.ErrOptionOutOfRange)
		assert.ErrorIs(t, d.SelectFlight(2), errs.ErrOptionOutOfRange)
		assert.ErrorIs(t, d.SelectHotel(5), errs.ErrOptionOutOfRange)
		assert.Nil(t, d.SelectedFlight())
	})

	t.Run("selection on empty options always rejects", func(t *testing.T) {
		details := builder.NewTripBuilder().MustBuild()
		d := booking.NewDraft(details, builder.NewOptionsBuilder().BuildEmpty())

		assert.ErrorIs(t, d.SelectFlight(0), errs.ErrOptionOutOfRange)
		assert.ErrorIs(t, d.SelectHotel(0), errs.ErrOptionOutOfRange)
	})
}

func TestDraftAdjustments(t *testing.T) {
	t.Run("defaults come from trip details", func(t *testing.T) {
		d := newDraft(t)
		assert.Equal(t, 2, d.Passengers())
		assert.Equal(t, 9, d.Nights())
	})

	t.Run("nights below one rejected", func(t *testing.T) {
		d := newDraft(t)
		assert.ErrorIs(t, d.SetNights(0), errs.ErrInvalidNights)
		require.NoError(t, d.SetNights(3))
		assert.Equal(t, 3, d.Nights())
	})

	t.Run("passengers out of range rejected", func(t *testing.T) {
		d := newDraft(t)
		assert.ErrorIs(t, d.SetPassengers(0), errs.ErrInvalidPassengers)
		assert.ErrorIs(t, d.SetPassengers(11), errs.ErrInvalidPassengers)
		require.NoError(t, d.SetPassengers(4))
		assert.Equal(t, 4, d.Passengers())
	})
}

func TestDraftSubmittable(t *testing.T) {
	d := newDraft(t)
	assert.False(t, d.Submittable())

	require.NoError(t, d.SelectFlight(0))
	assert.False(t, d.Submittable(), "hotel still missing")

	require.NoError(t, d.SelectHotel(0))
	assert.False(t, d.Submittable(), "email still missing")

	assert.ErrorIs(t, d.SetContact("not-an-email", ""), errs.ErrInvalidEmail)
	assert.False(t, d.Submittable())

	require.NoError(t, d.SetContact(" traveler@example.com ", "  late arrival "))
	assert.True(t, d.Submittable())
	assert.Equal(t, "traveler@example.com", d.ContactEmail())
	assert.Equal(t, "late arrival", d.SpecialRequests())
}

func TestDraftQuote(t *testing.T) {
	t.Run("totals are exact in cents", func(t *testing.T) {
		d := newDraft(t)
		require.NoError(t, d.SelectFlight(1)) // $325.50 per person
		require.NoError(t, d.SelectHotel(1))  // $95.75 per night
		require.NoError(t, d.SetPassengers(3))
		require.NoError(t, d.SetNights(7))

		// 325.50*3 + 95.75*7 = 976.50 + 670.25 = 1646.75
		assert.Equal(t, booking.Money(164_675), d.Quote())
		assert.Equal(t, 1646.75, d.Quote().Dollars())
	})

	t.Run("unselected parts contribute zero", func(t *testing.T) {
		d := newDraft(t)
		assert.Equal(t, booking.Money(0), d.Quote())

		require.NoError(t, d.SelectFlight(0)) // $450 per person, 2 passengers
		assert.Equal(t, booking.Money(90_000), d.Quote())
	})
}

func TestMoney(t *testing.T) {
	t.Run("dollars round to the nearest cent", func(t *testing.T) {
		assert.Equal(t, booking.Money(10), booking.MoneyFromDollars(0.1))
		assert.Equal(t, booking.Money(325_50), booking.MoneyFromDollars(325.50))
		assert.Equal(t, booking.Money(3), booking.MoneyFromDollars(0.029))
	})

	t.Run("arithmetic stays integral", func(t *testing.T) {
		total := booking.MoneyFromDollars(0.1).Mul(3).Add(booking.MoneyFromDollars(0.2))
		assert.Equal(t, booking.Money(50), total)
		assert.Equal(t, 0.5, total.Dollars())
	})
}
