// Package dice provides dice-notation parsing, roll evaluation, and the
// randomness abstraction used to roll dice.
package dice

import (
	"fmt"
	"strings"
)

// DieGroup is one notation term: Count dice, each numbered 1..Sides.
//
// Invariant: Count >= 1 and Sides >= 1 for every DieGroup produced by Parse.
type DieGroup struct {
	Count int
	Sides int
}

// String returns the group in canonical "NdS" form.
func (g DieGroup) String() string {
	return fmt.Sprintf("%dd%d", g.Count, g.Sides)
}

// Expression is a parsed dice expression ready to be rolled.
//
// Invariant: len(Groups) >= 1 after a successful Parse.
type Expression struct {
	Raw         string     // original input string
	Groups      []DieGroup // die groups in order of appearance
	Modifier    int        // end-anchored trailing modifier; 0 when absent
	HasModifier bool       // true when the input ended in a signed integer
}

// Dice returns the total number of dice across all groups.
func (e Expression) Dice() int {
	n := 0
	for _, g := range e.Groups {
		n += g.Count
	}
	return n
}

// String returns the canonical form of the expression, e.g. "2d6 1d8 +3".
func (e Expression) String() string {
	parts := make([]string, 0, len(e.Groups)+1)
	for _, g := range e.Groups {
		parts = append(parts, g.String())
	}
	if e.HasModifier {
		parts = append(parts, fmt.Sprintf("%+d", e.Modifier))
	}
	return strings.Join(parts, " ")
}

// RollResult holds the full audit trail for a single dice roll evaluation.
//
// Postcondition: Total() == sum(Dice) + Modifier.
type RollResult struct {
	Expression string // original expression string, e.g. "2d6+3"
	Dice       []int  // individual die results in roll order, before modifier
	Modifier   int    // flat modifier (may be negative)
}

// Total returns the sum of all die results plus the modifier.
//
// Postcondition: return value == sum(r.Dice) + r.Modifier.
func (r RollResult) Total() int {
	total := r.Modifier
	for _, d := range r.Dice {
		total += d
	}
	return total
}

// String returns a human-readable audit string in the format:
//
//	"2d6+3 → [4 5] +3 = 12"
//
// Precondition: r.Expression is non-empty.
func (r RollResult) String() string {
	if r.Expression == "" {
		panic("dice: RollResult.String() precondition violated: Expression must be non-empty")
	}
	diceStr := fmt.Sprintf("%v", r.Dice)
	modStr := fmt.Sprintf("%+d", r.Modifier)
	return fmt.Sprintf("%s → %s %s = %d", r.Expression, diceStr, modStr, r.Total())
}

// Source is the randomness provider for dice rolls.
type Source interface {
	// Intn returns a non-negative random int in [0, n).
	//
	// Precondition: n > 0.
	Intn(n int) int
}
