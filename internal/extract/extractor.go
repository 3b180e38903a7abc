// Package extract is the best-effort trip-detail parser. It pulls structured
// fields out of free-text chat content with independent per-field patterns.
// It is not authoritative: every miss degrades to a default or an absence,
// never to an error.
package extract

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"tripflow/internal/domain/booking"
	"tripflow/internal/domain/trip"
)

type Source string

const (
	SourceAbsent     Source = "absent"
	SourceText       Source = "text"
	SourceRemembered Source = "remembered"
	SourceDefaulted  Source = "defaulted"
)

// Result distinguishes user-specified fields from defaulted ones so downstream
// logic and tests can tell them apart.
type Result struct {
	Destination string
	Origin      string
	StartDate   time.Time
	EndDate     time.Time
	Passengers  int
	BudgetCents int64

	DestinationSource Source
	OriginSource      Source
	StartDateSource   Source
	EndDateSource     Source
	PassengersSource  Source
	BudgetSource      Source
}

// HasDestination reports whether extraction produced a usable trip at all.
// Without a destination the caller performs no state transition.
func (r Result) HasDestination() bool {
	return r.DestinationSource == SourceText
}

// NeedsOrigin reports that a destination was found but no origin could be
// determined from the text or remembered from the session.
func (r Result) NeedsOrigin() bool {
	return r.HasDestination() && r.OriginSource == SourceAbsent
}

// Details materializes the extracted fields as a validated trip record.
func (r Result) Details() (trip.Details, error) {
	return trip.NewDetails(r.Destination, r.Origin, r.StartDate, r.EndDate, r.Passengers, r.BudgetCents)
}

const (
	DefaultBudgetCents = 100_000 // $1000.00
	DefaultPassengers  = 1
	defaultTripDays    = 7
)

// Patterns are checked in a fixed priority order per field; the first
// alternative that matches wins. AI response text takes priority over the
// user's message.
var (
	destinationLabeled = regexp.MustCompile(`(?i)destination[:\s]+([^\n,]+)`)
	destinationPhrase  = regexp.MustCompile(`(?:trip to|going to|visit|to|in)\s+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*)`)
	// AI replies mention places incidentally ("stay in Montmartre"), so the
	// fallback over the reply drops the bare to|in alternatives.
	destinationAIPhrase = regexp.MustCompile(`(?:trip to|going to|visit)\s+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*)`)
	isoDate            = regexp.MustCompile(`\d{4}-\d{2}-\d{2}`)
	passengersPhrase   = regexp.MustCompile(`(?i)(\d+)\s*(?:passenger|person|people|guest)`)
	passengersFallback = regexp.MustCompile(`(?i)(?:for|with)\s+(\d+)\b`)
	budgetAmount       = regexp.MustCompile(`\$(\d+(?:\.\d{2})?)`)
	originPhrase       = regexp.MustCompile(`(?i)(?:from|leaving from|departing from|flying from)\s+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*)`)

	// Whole-message origin candidate: alphabetic words with spaces only.
	originCandidate = regexp.MustCompile(`^[A-Za-z]+(?:\s+[A-Za-z]+)*$`)
	stripPunct      = regexp.MustCompile(`[^\w\s-]`)
)

type Extractor struct{}

func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract scans the AI response text then the user text for trip fields.
// rememberedOrigin seeds the origin when the text has none, carrying over the
// origin of the previous completed trip in this session. Extraction never
// fails; absent fields fall back per the defaulting rules.
func (e *Extractor) Extract(aiText, userText, rememberedOrigin string, now time.Time) Result {
	r := Result{
		DestinationSource: SourceAbsent,
		OriginSource:      SourceAbsent,
		StartDateSource:   SourceAbsent,
		EndDateSource:     SourceAbsent,
		PassengersSource:  SourceAbsent,
		BudgetSource:      SourceAbsent,
	}

	r.Destination, r.DestinationSource = e.findDestination(aiText, userText)
	if r.DestinationSource == SourceAbsent {
		// Deliberate no-op signal: without a destination nothing else matters.
		return r
	}

	e.findDates(&r, aiText, userText, now)
	e.findPassengers(&r, aiText, userText)
	e.findBudget(&r, aiText, userText)
	e.findOrigin(&r, aiText, userText, rememberedOrigin)

	return r
}

// ExtractOrigin treats an entire message as an origin candidate. It accepts
// plain alphabetic-with-spaces replies ("London", "New York") and rejects
// everything else so the caller can re-prompt.
func (e *Extractor) ExtractOrigin(message string) (string, bool) {
	candidate := strings.TrimSpace(message)
	if candidate == "" || !originCandidate.MatchString(candidate) {
		return "", false
	}
	return candidate, true
}

func (e *Extractor) findDestination(aiText, userText string) (string, Source) {
	if m := destinationLabeled.FindStringSubmatch(aiText); m != nil {
		return cleanPlace(m[1]), SourceText
	}
	if m := destinationPhrase.FindStringSubmatch(userText); m != nil {
		return cleanPlace(m[1]), SourceText
	}
	if m := destinationAIPhrase.FindStringSubmatch(aiText); m != nil {
		return cleanPlace(m[1]), SourceText
	}
	return "", SourceAbsent
}

func (e *Extractor) findDates(r *Result, aiText, userText string, now time.Time) {
	dates := isoDate.FindAllString(aiText, -1)
	if len(dates) == 0 {
		dates = isoDate.FindAllString(userText, -1)
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch {
	case len(dates) >= 2:
		r.StartDate, r.StartDateSource = parseOrDefault(dates[0], today)
		r.EndDate, r.EndDateSource = parseOrDefault(dates[1], today)
	case len(dates) == 1:
		r.StartDate, r.StartDateSource = parseOrDefault(dates[0], today)
		// Missing end date with a start date present: same-day trip.
		r.EndDate, r.EndDateSource = r.StartDate, SourceDefaulted
	default:
		r.StartDate, r.StartDateSource = today, SourceDefaulted
		r.EndDate, r.EndDateSource = today.AddDate(0, 0, defaultTripDays), SourceDefaulted
	}

	if r.StartDate.After(r.EndDate) {
		// Inverted ranges are normalized rather than rejected; the parser is
		// best-effort and never errors.
		r.StartDate, r.EndDate = r.EndDate, r.StartDate
	}
}

func (e *Extractor) findPassengers(r *Result, aiText, userText string) {
	for _, text := range []string{aiText, userText} {
		if m := passengersPhrase.FindStringSubmatch(text); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil && n >= 1 {
				r.Passengers, r.PassengersSource = n, SourceText
				return
			}
		}
	}
	if m := passengersFallback.FindStringSubmatch(userText); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil && n >= 1 {
			r.Passengers, r.PassengersSource = n, SourceText
			return
		}
	}
	r.Passengers, r.PassengersSource = DefaultPassengers, SourceDefaulted
}

func (e *Extractor) findBudget(r *Result, aiText, userText string) {
	for _, text := range []string{aiText, userText} {
		if m := budgetAmount.FindStringSubmatch(text); m != nil {
			if dollars, err := strconv.ParseFloat(m[1], 64); err == nil && dollars >= 0 {
				r.BudgetCents = booking.MoneyFromDollars(dollars).Cents()
				r.BudgetSource = SourceText
				return
			}
		}
	}
	r.BudgetCents, r.BudgetSource = DefaultBudgetCents, SourceDefaulted
}

func (e *Extractor) findOrigin(r *Result, aiText, userText, remembered string) {
	for _, text := range []string{aiText, userText} {
		if m := originPhrase.FindStringSubmatch(text); m != nil {
			r.Origin, r.OriginSource = cleanPlace(m[1]), SourceText
			return
		}
	}
	if remembered != "" {
		r.Origin, r.OriginSource = remembered, SourceRemembered
		return
	}
	r.OriginSource = SourceAbsent
}

func parseOrDefault(s string, fallback time.Time) (time.Time, Source) {
	t, err := time.Parse(trip.DateLayout, s)
	if err != nil {
		return fallback, SourceDefaulted
	}
	return t, SourceText
}

func cleanPlace(s string) string {
	return strings.TrimSpace(stripPunct.ReplaceAllString(s, ""))
}
