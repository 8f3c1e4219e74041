package drills

import (
	"math/rand/v2"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"time"
)

const (
	// LottoPicks is how many numbers a ticket holds and how many are drawn.
	LottoPicks = 6
	// LottoMin and LottoMax bound the numbers that can be picked, inclusive.
	LottoMin = 1
	LottoMax = 20
)

const (
	MessageJackpot    = "Wow! Unbelievable! You could have won the mega millions!"
	MessageWin100     = "Congratulations! You win $100!"
	MessageFreeTicket = "Congratulations, you win a free ticket!"
	MessageLose       = "Sorry, you lose"
)

// NewRand returns a PCG-backed source seeded with seed.
// A zero seed draws the seed from the wall clock.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// ParseLottoRequest validates the multi-valued numbers query parameter.
//
// Values that are not integers or fall outside [LottoMin, LottoMax] are
// dropped; exactly LottoPicks must remain. Duplicates are kept.
func ParseLottoRequest(q url.Values) (LottoRequest, error) {
	raw := slices.DeleteFunc(slices.Clone(q["numbers"]), func(s string) bool {
		return strings.TrimSpace(s) == ""
	})
	if len(raw) == 0 {
		return LottoRequest{}, errRequired("numbers")
	}

	guesses := make([]int, 0, len(raw))
	for _, s := range raw {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil || n < LottoMin || n > LottoMax {
			continue
		}
		guesses = append(guesses, n)
	}

	if len(guesses) != LottoPicks {
		return LottoRequest{}, &ValidationError{
			Field:   "numbers",
			Message: "numbers must contain " + strconv.Itoa(LottoPicks) + " integers between " + strconv.Itoa(LottoMin) + " and " + strconv.Itoa(LottoMax),
		}
	}

	return LottoRequest{Guesses: guesses}, nil
}

// DrawWinningNumbers picks LottoPicks distinct numbers from [LottoMin, LottoMax].
func DrawWinningNumbers(rng *rand.Rand) []int {
	perm := rng.Perm(LottoMax - LottoMin + 1)
	winning := make([]int, LottoPicks)
	for i := range winning {
		winning[i] = perm[i] + LottoMin
	}
	return winning
}

// CheckLotto compares guesses against the winning numbers. A miss is a
// winning number that was not guessed; the message depends on how many
// there are.
func CheckLotto(guesses, winning []int) LottoResult {
	misses := make([]int, 0, len(winning))
	for _, n := range winning {
		if !slices.Contains(guesses, n) {
			misses = append(misses, n)
		}
	}

	return LottoResult{
		Guesses:        slices.Clone(guesses),
		WinningNumbers: slices.Clone(winning),
		Misses:         misses,
		Message:        lottoMessage(len(misses)),
	}
}

func lottoMessage(misses int) string {
	switch misses {
	case 0:
		return MessageJackpot
	case 1:
		return MessageWin100
	case 2:
		return MessageFreeTicket
	default:
		return MessageLose
	}
}
