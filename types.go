package drills

import "fmt"

// GreetingRequest is a validated /greetings query.
type GreetingRequest struct {
	Name string
	Race string
}

// SumRequest holds the two addends of a /sum query.
type SumRequest struct {
	A float64
	B float64
}

// SumResult is the /sum result, also its JSON body.
type SumResult struct {
	A   float64 `json:"a"`
	B   float64 `json:"b"`
	Sum float64 `json:"sum"`
}

// String renders the result as "The sum of A and B is S".
func (r SumResult) String() string {
	return fmt.Sprintf("The sum of %s and %s is %s", formatNumber(r.A), formatNumber(r.B), formatNumber(r.Sum))
}

// CipherRequest is a validated /cipher query. Shift is already reduced
// modulo AlphabetSize and may be negative.
type CipherRequest struct {
	Text  string
	Shift int
}

// LottoRequest holds the LottoPicks guesses of a /lotto query.
type LottoRequest struct {
	Guesses []int
}

// LottoResult is one lottery draw scored against the guesses.
type LottoResult struct {
	Guesses        []int  `json:"guesses"`
	WinningNumbers []int  `json:"winning_numbers"`
	Misses         []int  `json:"misses"`
	Message        string `json:"message"`
}

// ResponseFormat selects how an endpoint renders its result.
type ResponseFormat string

// Response formats accepted by the format query parameter.
const (
	FormatText ResponseFormat = "text"
	FormatJSON ResponseFormat = "json"
)

// IsValid reports whether f is a known format.
func (f ResponseFormat) IsValid() bool {
	switch f {
	case FormatText, FormatJSON:
		return true
	default:
		return false
	}
}

// ParseResponseFormat maps the format query value to a ResponseFormat.
// An empty string selects FormatText.
func ParseResponseFormat(s string) (ResponseFormat, error) {
	if s == "" {
		return FormatText, nil
	}
	format := ResponseFormat(s)
	if !format.IsValid() {
		return "", &ValidationError{Field: "format", Message: fmt.Sprintf("invalid format: %s (valid formats: text, json)", s)}
	}
	return format, nil
}
