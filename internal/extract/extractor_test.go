//go:build unit

package extract_test

import (
	"testing"
	"time"

	"tripflow/internal/extract"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 5, 20, 15, 4, 0, 0, time.UTC)

func TestExtract(t *testing.T) {
	e := extract.NewExtractor()

	t.Run("fully specified plan response", func(t *testing.T) {
		aiText := "Here is your plan!\nDestination: Paris\n" +
			"Travel dates: 2025-06-01 to 2025-06-10 for 2 passengers with a $3000.00 budget."

		got := e.Extract(aiText, "plan me a trip", "", now)

		want := extract.Result{
			Destination: "Paris",
			StartDate:   time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
			EndDate:     time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
			Passengers:  2,
			BudgetCents: 300_000,

			DestinationSource: extract.SourceText,
			OriginSource:      extract.SourceAbsent,
			StartDateSource:   extract.SourceText,
			EndDateSource:     extract.SourceText,
			PassengersSource:  extract.SourceText,
			BudgetSource:      extract.SourceText,
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Result mismatch (-want +got):\n%s", diff)
		}
		assert.True(t, got.HasDestination())
		assert.True(t, got.NeedsOrigin())
	})

	t.Run("destination from user phrasing", func(t *testing.T) {
		got := e.Extract("I'd be happy to help!", "I'm going to New York for 3 people", "", now)

		assert.Equal(t, "New York", got.Destination)
		assert.Equal(t, extract.SourceText, got.DestinationSource)
		assert.Equal(t, 3, got.Passengers)
	})

	t.Run("origin from user phrasing", func(t *testing.T) {
		got := e.Extract("", "trip to Rome flying from Berlin", "", now)

		assert.Equal(t, "Rome", got.Destination)
		assert.Equal(t, "Berlin", got.Origin)
		assert.Equal(t, extract.SourceText, got.OriginSource)
		assert.False(t, got.NeedsOrigin())
	})

	t.Run("remembered origin fills the gap", func(t *testing.T) {
		got := e.Extract("", "trip to Rome", "London", now)

		assert.Equal(t, "London", got.Origin)
		assert.Equal(t, extract.SourceRemembered, got.OriginSource)
		assert.False(t, got.NeedsOrigin())
	})

	t.Run("incidental place in the response is not a destination", func(t *testing.T) {
		// The fallback over the assistant's reply only accepts explicit trip
		// phrasing; "stay in X" must not fabricate a destination.
		got := e.Extract("You could stay in Montmartre for the views.", "what do you recommend", "", now)

		assert.False(t, got.HasDestination())
	})

	t.Run("explicit trip phrasing in the response still matches", func(t *testing.T) {
		got := e.Extract("A trip to Lyon would suit that budget.", "any ideas?", "", now)

		assert.Equal(t, "Lyon", got.Destination)
		assert.Equal(t, extract.SourceText, got.DestinationSource)
	})

	t.Run("no destination short-circuits everything", func(t *testing.T) {
		got := e.Extract("Could you tell me more?", "what's the weather like", "", now)

		assert.False(t, got.HasDestination())
		assert.Equal(t, extract.SourceAbsent, got.StartDateSource)
		assert.Zero(t, got.Passengers)
	})

	t.Run("defaults", func(t *testing.T) {
		got := e.Extract("", "trip to Lisbon", "", now)

		today := time.Date(2025, 5, 20, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, today, got.StartDate)
		assert.Equal(t, today.AddDate(0, 0, 7), got.EndDate)
		assert.Equal(t, extract.SourceDefaulted, got.StartDateSource)
		assert.Equal(t, extract.SourceDefaulted, got.EndDateSource)
		assert.Equal(t, 1, got.Passengers)
		assert.Equal(t, extract.SourceDefaulted, got.PassengersSource)
		assert.Equal(t, int64(extract.DefaultBudgetCents), got.BudgetCents)
		assert.Equal(t, extract.SourceDefaulted, got.BudgetSource)
	})

	t.Run("single date means same-day trip", func(t *testing.T) {
		got := e.Extract("", "trip to Lisbon on 2025-07-04", "", now)

		assert.Equal(t, time.Date(2025, 7, 4, 0, 0, 0, 0, time.UTC), got.StartDate)
		assert.Equal(t, got.StartDate, got.EndDate)
		assert.Equal(t, extract.SourceText, got.StartDateSource)
		assert.Equal(t, extract.SourceDefaulted, got.EndDateSource)
	})

	t.Run("inverted dates are swapped", func(t *testing.T) {
		got := e.Extract("", "trip to Lisbon 2025-07-10 to 2025-07-04", "", now)

		assert.Equal(t, time.Date(2025, 7, 4, 0, 0, 0, 0, time.UTC), got.StartDate)
		assert.Equal(t, time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC), got.EndDate)
	})

	t.Run("response text beats user text", func(t *testing.T) {
		got := e.Extract("Destination: Tokyo", "going to Paris", "", now)

		assert.Equal(t, "Tokyo", got.Destination)
	})

	t.Run("result materializes into valid details", func(t *testing.T) {
		got := e.Extract("Destination: Kyoto", "for 2 people, $1500 budget", "Osaka", now)

		d, err := got.Details()
		require.NoError(t, err)
		assert.Equal(t, "Kyoto", d.Destination())
		assert.Equal(t, "Osaka", d.Origin())
		assert.Equal(t, 2, d.Passengers())
		assert.Equal(t, int64(150_000), d.BudgetCents())
	})
}

func TestExtractOrigin(t *testing.T) {
	e := extract.NewExtractor()

	cases := []struct {
		name    string
		message string
		origin  string
		ok      bool
	}{
		{"single word", "London", "London", true},
		{"two words", "New York", "New York", true},
		{"surrounding whitespace trimmed", "  Berlin  ", "Berlin", true},
		{"empty message rejected", "   ", "", false},
		{"digits rejected", "Terminal 5", "", false},
		{"punctuation rejected", "London, UK", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			origin, ok := e.ExtractOrigin(tc.message)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.origin, origin)
		})
	}
}
