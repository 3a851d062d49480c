package dice

import (
	"math"
	"strconv"
	"strings"
)

// MaxDice caps the total number of dice one expression may roll.
const MaxDice = 1_000_000

// Parse parses a dice notation string into an Expression.
//
// The input is scanned left to right for non-overlapping die groups of the
// form [count]d<sides>[(+|-)<n>]. A signed integer directly after a group's
// sides is consumed with that group and discarded. The modifier actually
// applied comes from a separate check of the whole input: a signed integer
// anchored at the very end of the string. So "2d6+1d8" rolls 2d6 and 1d8 with
// modifier 0, and "2d6+3" rolls 2d6 with modifier +3.
//
// Supported forms include: "d20", "2d6", "3d10+2", "4d8-2", "2d6+1d8".
// Expressions rolling more than MaxDice dice, or whose largest possible
// total does not fit in an int, are rejected.
//
// Postcondition: Returns an Expression with at least one group, or an
// *InvalidNotationError matching ErrInvalidNotation.
func Parse(input string) (Expression, error) {
	groups, err := scanGroups(input)
	if err != nil {
		return Expression{}, err
	}
	if len(groups) == 0 {
		return Expression{}, invalid(input)
	}

	modifier, ok, err := trailingModifier(input)
	if err != nil {
		return Expression{}, err
	}
	if !totalFits(groups, modifier) {
		return Expression{}, invalid(input)
	}

	return Expression{
		Raw:         input,
		Groups:      groups,
		Modifier:    modifier,
		HasModifier: ok,
	}, nil
}

// MustParse parses expr and panics on error. Useful for package-level constants.
//
// Precondition: expr must be a valid dice expression.
func MustParse(expr string) Expression {
	e, err := Parse(expr)
	if err != nil {
		panic("dice: MustParse failed for expression " + expr + ": " + err.Error())
	}
	return e
}

func scanGroups(s string) ([]DieGroup, error) {
	var groups []DieGroup
	total := 0
	for pos := 0; pos < len(s); {
		g, next, ok, err := matchGroup(s, pos)
		if err != nil {
			return nil, err
		}
		if !ok {
			pos++
			continue
		}
		// count <= MaxDice before the sum, so it cannot overflow.
		if g.Count > MaxDice || total+g.Count > MaxDice {
			return nil, invalid(s)
		}
		total += g.Count
		groups = append(groups, g)
		pos = next
	}
	return groups, nil
}

// matchGroup tries to recognise a die group starting exactly at pos.
// On success it returns the group and the offset just past it, including any
// inline modifier.
func matchGroup(s string, pos int) (DieGroup, int, bool, error) {
	sep := skipDigits(s, pos)
	if sep >= len(s) || s[sep] != 'd' {
		return DieGroup{}, 0, false, nil
	}
	end := skipDigits(s, sep+1)
	if end == sep+1 {
		return DieGroup{}, 0, false, nil
	}

	count := 1
	if sep > pos {
		n, err := strconv.Atoi(s[pos:sep])
		if err != nil || n < 1 {
			return DieGroup{}, 0, false, invalid(s)
		}
		count = n
	}
	sides, err := strconv.Atoi(s[sep+1 : end])
	if err != nil || sides < 1 {
		return DieGroup{}, 0, false, invalid(s)
	}

	// Inline modifier: consumed, never applied.
	if end < len(s) && isSign(s[end]) {
		if m := skipDigits(s, end+1); m > end+1 {
			end = m
		}
	}

	return DieGroup{Count: count, Sides: sides}, end, true, nil
}

// totalFits reports whether every possible total, sum(dice) + modifier, is
// representable as an int. The smallest total is Dice()+modifier, which never
// underflows because Dice() >= 1.
func totalFits(groups []DieGroup, modifier int) bool {
	maxSum := 0
	for _, g := range groups {
		if g.Sides > (math.MaxInt-maxSum)/g.Count {
			return false
		}
		maxSum += g.Count * g.Sides
	}
	return modifier <= 0 || maxSum <= math.MaxInt-modifier
}

// trailingModifier reports the signed integer that ends s, if any.
// A single final newline is ignored, as an end-of-string anchor would.
func trailingModifier(s string) (int, bool, error) {
	body := strings.TrimSuffix(s, "\n")
	start := len(body)
	for start > 0 && isDigit(body[start-1]) {
		start--
	}
	if start == len(body) || start == 0 || !isSign(body[start-1]) {
		return 0, false, nil
	}
	n, err := strconv.Atoi(body[start-1:])
	if err != nil {
		return 0, false, invalid(s)
	}
	return n, true, nil
}

func skipDigits(s string, pos int) int {
	for pos < len(s) && isDigit(s[pos]) {
		pos++
	}
	return pos
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isSign(c byte) bool { return c == '+' || c == '-' }
