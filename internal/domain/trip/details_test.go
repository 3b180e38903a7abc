//go:build unit

package trip_test

import (
	"testing"
	"time"

	"tripflow/internal/domain/trip"
	"tripflow/internal/pkg/errs"
	"tripflow/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDetails(t *testing.T) {
	t.Run("valid details", func(t *testing.T) {
		d, err := builder.NewTripBuilder().BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, "Paris", d.Destination())
		assert.Equal(t, "London", d.Origin())
		assert.Equal(t, 2, d.Passengers())
		assert.Equal(t, int64(300_000), d.BudgetCents())
		assert.True(t, d.HasOrigin())
	})

	t.Run("validation", func(t *testing.T) {
		cases := []struct {
			name   string
			mutate func(*builder.TripBuilder)
			errIs  error
		}{
			{
				name:   "empty destination rejected",
				mutate: func(b *builder.TripBuilder) { b.Destination = "  " },
				errIs:  errs.ErrValidation,
			},
			{
				name: "start after end rejected",
				mutate: func(b *builder.TripBuilder) {
					b.StartDate = b.EndDate.AddDate(0, 0, 5)
				},
				errIs: errs.ErrInvalidDateRange,
			},
			{
				name:   "zero passengers rejected",
				mutate: func(b *builder.TripBuilder) { b.Passengers = 0 },
				errIs:  errs.ErrInvalidPassengers,
			},
			{
				name:   "eleven passengers rejected",
				mutate: func(b *builder.TripBuilder) { b.Passengers = 11 },
				errIs:  errs.ErrInvalidPassengers,
			},
			{
				name:   "negative budget rejected",
				mutate: func(b *builder.TripBuilder) { b.BudgetCents = -1 },
				errIs:  errs.ErrNegativeBudget,
			},
			{
				name:   "missing origin allowed",
				mutate: func(b *builder.TripBuilder) { b.Origin = "" },
			},
			{
				name:   "zero budget allowed",
				mutate: func(b *builder.TripBuilder) { b.BudgetCents = 0 },
			},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				b := builder.NewTripBuilder().With(tc.mutate)
				_, err := b.BuildDomain()
				if tc.errIs != nil {
					assert.ErrorIs(t, err, tc.errIs)
				} else {
					assert.NoError(t, err)
				}
			})
		}
	})
}

func TestDetailsNights(t *testing.T) {
	cases := []struct {
		name   string
		start  time.Time
		end    time.Time
		nights int
		days   int
	}{
		{
			name:   "nine night trip",
			start:  time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
			end:    time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
			nights: 9,
			days:   10,
		},
		{
			name:   "same-day trip still counts one night",
			start:  time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
			end:    time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
			nights: 1,
			days:   2,
		},
		{
			name:   "partial-day timestamps truncate to dates",
			start:  time.Date(2025, 6, 1, 23, 30, 0, 0, time.UTC),
			end:    time.Date(2025, 6, 3, 0, 15, 0, 0, time.UTC),
			nights: 2,
			days:   3,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := builder.NewTripBuilder().With(func(b *builder.TripBuilder) {
				b.StartDate = tc.start
				b.EndDate = tc.end
			}).MustBuild()

			assert.Equal(t, tc.nights, d.Nights())
			assert.Equal(t, tc.days, d.DurationDays())
		})
	}
}

func TestDetailsWithOrigin(t *testing.T) {
	base := builder.NewTripBuilder().With(func(b *builder.TripBuilder) { b.Origin = "" }).MustBuild()
	require.False(t, base.HasOrigin())

	updated := base.WithOrigin("Tokyo")
	assert.Equal(t, "Tokyo", updated.Origin())
	assert.Empty(t, base.Origin(), "original value must not change")
}

func TestDetailsTripName(t *testing.T) {
	d := builder.NewTripBuilder().MustBuild()
	assert.Equal(t, "Trip to Paris", d.TripName())
}

func TestDetails(t *testing.T) {
	t.Run("accessors return constructor values", func(t *testing.T) {
		start := time.Date(2025, 7, 3, 0, 0, 0, 0, time.UTC)
		end := time.Date(2025, 7, 8, 0, 0, 0, 0, time.UTC)
		d, err := trip.NewDetails("Lisbon", "Madrid", start, end, 4, 150_000)
		require.NoError(t, err)

		assert.Equal(t, start, d.StartDate())
		assert.Equal(t, end, d.EndDate())
		assert.Equal(t, 5, d.Nights())
	})
}
