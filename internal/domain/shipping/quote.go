package shipping

// QuoteOutcome labels how a shipping quote was produced
type QuoteOutcome string

const (
	QuoteOutcomeMatched  QuoteOutcome = "matched"
	QuoteOutcomeFallback QuoteOutcome = "fallback"
	QuoteOutcomeError    QuoteOutcome = "error"
)
