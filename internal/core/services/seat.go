package services

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/custodia-labs/boardseq/internal/core/domain"
)

// seatPattern matches an upper-cased seat token: row letters then digits.
var seatPattern = regexp.MustCompile(`^([A-Z]+)([0-9]+)$`)

// NormalizeSeat parses a seat token such as " b02 " into row "B" and seat
// number 2. It returns false for anything that is not letters followed by a
// positive number, including numbers too large for an int.
func NormalizeSeat(token string) (domain.NormalizedSeat, bool) {
	cleaned := strings.ToUpper(strings.TrimSpace(token))

	m := seatPattern.FindStringSubmatch(cleaned)
	if m == nil {
		return domain.NormalizedSeat{}, false
	}

	n, err := strconv.Atoi(m[2])
	if err != nil || n <= 0 {
		return domain.NormalizedSeat{}, false
	}

	return domain.NormalizedSeat{Row: m[1], Number: n}, true
}
