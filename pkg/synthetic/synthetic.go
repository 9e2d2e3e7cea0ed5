// Package synthetic generates check-digit valid Norwegian identifiers for
// placeholder test data. National ids use the synthetic month offset (+80)
// so they can never collide with a real person.
package synthetic

import (
	"fmt"
	"math/rand/v2"
	"sync"
	"time"
)

// MonthOffset is added to the birth month of synthetic national ids.
const MonthOffset = 80

var (
	orgNumberWeights = []int{3, 2, 7, 6, 5, 4, 3, 2}
	nationalK1       = []int{3, 7, 6, 1, 8, 9, 4, 5, 2}
	nationalK2       = []int{5, 4, 3, 2, 7, 6, 5, 4, 3, 2}
)

// Generator is safe for concurrent use.
type Generator struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewGenerator returns a generator with a random seed.
func NewGenerator() *Generator {
	return NewSeededGenerator(rand.Uint64(), rand.Uint64())
}

// NewSeededGenerator returns a deterministic generator.
func NewSeededGenerator(seed1, seed2 uint64) *Generator {
	return &Generator{rnd: rand.New(rand.NewPCG(seed1, seed2))}
}

func (g *Generator) intN(n int) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rnd.IntN(n)
}

// OrganizationNumber returns a nine-digit number starting with 8 or 9 whose
// last digit is a valid mod-11 check digit.
func (g *Generator) OrganizationNumber() string {
	for {
		digits := make([]int, 9)
		digits[0] = 8 + g.intN(2)
		for i := 1; i < 8; i++ {
			digits[i] = g.intN(10)
		}
		check, ok := mod11(digits[:8], orgNumberWeights)
		if !ok {
			continue
		}
		digits[8] = check
		return join(digits)
	}
}

// NationalID returns a synthetic national id for a random adult born
// between 1950 and 2005.
func (g *Generator) NationalID() string {
	start := time.Date(1950, 1, 1, 0, 0, 0, 0, time.UTC)
	days := int(time.Date(2005, 12, 31, 0, 0, 0, 0, time.UTC).Sub(start).Hours() / 24)
	id, err := g.NationalIDFor(start.AddDate(0, 0, g.intN(days+1)))
	if err != nil {
		// Unreachable for the range above.
		panic(err)
	}
	return id
}

// NationalIDFor returns a synthetic national id for the given birth date.
// Only births from 1900 through 2039 can be encoded.
func (g *Generator) NationalIDFor(birth time.Time) (string, error) {
	lo, hi, err := individualRange(birth.Year())
	if err != nil {
		return "", err
	}

	month := int(birth.Month()) + MonthOffset
	yy := birth.Year() % 100
	for {
		individual := lo + g.intN(hi-lo+1)
		digits := []int{
			birth.Day() / 10, birth.Day() % 10,
			month / 10, month % 10,
			yy / 10, yy % 10,
			individual / 100, individual / 10 % 10, individual % 10,
		}
		k1, ok := mod11(digits, nationalK1)
		if !ok {
			continue
		}
		digits = append(digits, k1)
		k2, ok := mod11(digits, nationalK2)
		if !ok {
			continue
		}
		return join(append(digits, k2)), nil
	}
}

func individualRange(year int) (int, int, error) {
	switch {
	case year >= 1900 && year <= 1999:
		return 0, 499, nil
	case year >= 2000 && year <= 2039:
		return 500, 999, nil
	default:
		return 0, 0, fmt.Errorf("synthetic: birth year %d cannot be encoded", year)
	}
}

// ValidOrganizationNumber reports whether s is nine digits with a matching check digit.
func ValidOrganizationNumber(s string) bool {
	digits, ok := parseDigits(s, 9)
	if !ok {
		return false
	}
	check, ok := mod11(digits[:8], orgNumberWeights)
	return ok && check == digits[8]
}

// ValidNationalID reports whether s is eleven digits with matching check digits.
func ValidNationalID(s string) bool {
	digits, ok := parseDigits(s, 11)
	if !ok {
		return false
	}
	k1, ok := mod11(digits[:9], nationalK1)
	if !ok || k1 != digits[9] {
		return false
	}
	k2, ok := mod11(digits[:10], nationalK2)
	return ok && k2 == digits[10]
}

// mod11 computes the check digit for digits. A remainder that would need
// the digit 10 has no valid check digit.
func mod11(digits, weights []int) (int, bool) {
	sum := 0
	for i, w := range weights {
		sum += digits[i] * w
	}
	check := 11 - sum%11
	switch check {
	case 11:
		return 0, true
	case 10:
		return 0, false
	default:
		return check, true
	}
}

func parseDigits(s string, n int) ([]int, bool) {
	if len(s) != n {
		return nil, false
	}
	digits := make([]int, n)
	for i := range n {
		c := s[i]
		if c < '0' || c > '9' {
			return nil, false
		}
		digits[i] = int(c - '0')
	}
	return digits, true
}

func join(digits []int) string {
	b := make([]byte, len(digits))
	for i, d := range digits {
		b[i] = byte('0' + d)
	}
	return string(b)
}
