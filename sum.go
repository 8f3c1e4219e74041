package drills

import "net/url"

// ParseSumRequest validates the a and b query parameters.
// Both are required and must parse as finite numbers.
func ParseSumRequest(q url.Values) (SumRequest, error) {
	rawA, err := requireParam(q, "a")
	if err != nil {
		return SumRequest{}, err
	}

	rawB, err := requireParam(q, "b")
	if err != nil {
		return SumRequest{}, err
	}

	a, err := parseNumber("a", rawA)
	if err != nil {
		return SumRequest{}, err
	}

	b, err := parseNumber("b", rawB)
	if err != nil {
		return SumRequest{}, err
	}

	return SumRequest{A: a, B: b}, nil
}

func Sum(req SumRequest) SumResult {
	return SumResult{A: req.A, B: req.B, Sum: req.A + req.B}
}
