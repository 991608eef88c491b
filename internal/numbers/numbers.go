// Package numbers parses 1-based selections such as "1,3-5" used to pick
// links from a listing.
package numbers

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidNumber is returned for malformed selections.
var ErrInvalidNumber = errors.New("invalid number")

// maxRange bounds a single "a-b" range.
const maxRange = 1000

// Parse parses a selection: single numbers, comma or space separated lists and
// inclusive ranges. Duplicates are dropped; order of first appearance is kept.
func Parse(input string) ([]int, error) {
	input = strings.ReplaceAll(input, " ", ",")

	var result []int
	seen := make(map[int]bool)
	add := func(n int) {
		if !seen[n] {
			seen[n] = true
			result = append(result, n)
		}
	}

	for _, part := range strings.Split(input, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		start, end, err := parsePart(part)
		if err != nil {
			return nil, err
		}
		for n := start; n <= end; n++ {
			add(n)
		}
	}

	if len(result) == 0 {
		return nil, fmt.Errorf("%w: no numbers given", ErrInvalidNumber)
	}
	return result, nil
}

// ParseArgs joins args and parses them as one selection.
func ParseArgs(args []string) ([]int, error) {
	return Parse(strings.Join(args, ","))
}

func parsePart(part string) (int, int, error) {
	lo, hi, isRange := strings.Cut(part, "-")
	start, err := positive(lo)
	if err != nil {
		return 0, 0, err
	}
	if !isRange {
		return start, start, nil
	}
	end, err := positive(hi)
	if err != nil {
		return 0, 0, err
	}
	if end < start {
		return 0, 0, fmt.Errorf("%w: range %q ends before it starts", ErrInvalidNumber, part)
	}
	if end-start+1 > maxRange {
		return 0, 0, fmt.Errorf("%w: range %q is too large (max %d)", ErrInvalidNumber, part, maxRange)
	}
	return start, end, nil
}

func positive(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, s)
	}
	if n < 1 {
		return 0, fmt.Errorf("%w: %d must be positive", ErrInvalidNumber, n)
	}
	return n, nil
}
