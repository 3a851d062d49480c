package dice_test

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/roll/internal/dice"
)

func TestParse_Valid(t *testing.T) {
	cases := []struct {
		input    string
		groups   []dice.DieGroup
		modifier int
		hasMod   bool
	}{
		{"2d6", []dice.DieGroup{{2, 6}}, 0, false},
		{"3d10+2", []dice.DieGroup{{3, 10}}, 2, true},
		{"4d8-2", []dice.DieGroup{{4, 8}}, -2, true},
		{"d20", []dice.DieGroup{{1, 20}}, 0, false},
		{"1d1", []dice.DieGroup{{1, 1}}, 0, false},
		{"2d6 1d8", []dice.DieGroup{{2, 6}, {1, 8}}, 0, false},
		{"2d6+1d8", []dice.DieGroup{{2, 6}, {1, 8}}, 0, false},
		{"1d8+2d6+3", []dice.DieGroup{{1, 8}, {1, 6}}, 3, true},
		{"12x3d6", []dice.DieGroup{{3, 6}}, 0, false},
		{"roll 2d4 please", []dice.DieGroup{{2, 4}}, 0, false},
		{"2d6 + 3", []dice.DieGroup{{2, 6}}, 0, false},
		{"2d6+3\n", []dice.DieGroup{{2, 6}}, 3, true},
		{"d6d8", []dice.DieGroup{{1, 6}, {1, 8}}, 0, false},
		{"5d", nil, 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			e, err := dice.Parse(tc.input)
			if tc.groups == nil {
				assert.ErrorIs(t, err, dice.ErrInvalidNotation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.input, e.Raw)
			assert.Equal(t, tc.groups, e.Groups)
			assert.Equal(t, tc.modifier, e.Modifier)
			assert.Equal(t, tc.hasMod, e.HasModifier)
		})
	}
}

// An integer after a group's sides only counts as the modifier when it ends
// the whole input; mid-string it is consumed with its group and dropped.
func TestParse_InlineModifierDiscarded(t *testing.T) {
	e, err := dice.Parse("2d6+5 1d4")
	require.NoError(t, err)
	assert.Equal(t, []dice.DieGroup{{2, 6}, {1, 4}}, e.Groups)
	assert.Equal(t, 0, e.Modifier)
	assert.False(t, e.HasModifier)

	// The inline "+3" swallows the next group's count.
	e, err = dice.Parse("2d6+3d8")
	require.NoError(t, err)
	assert.Equal(t, []dice.DieGroup{{2, 6}, {1, 8}}, e.Groups)
	assert.Equal(t, 0, e.Modifier)
}

func TestParse_Invalid(t *testing.T) {
	for _, input := range []string{
		"",
		"abc",
		"d",
		"2d",
		"+3",
		"2D6",
		"0d6",
		"2d0",
		"99999999999999999999d6",
		"2d99999999999999999999",
		"2d6+99999999999999999999",
		"9223372036854775807d6",
		"5000000000000000000d6 5000000000000000000d6",
		"1000001d6",
		"600000d6 400001d4",
		"2d9223372036854775807",
		"d6+9223372036854775807",
		"d4611686018427387904 d4611686018427387904",
	} {
		t.Run(input, func(t *testing.T) {
			_, err := dice.Parse(input)
			require.Error(t, err)
			assert.True(t, errors.Is(err, dice.ErrInvalidNotation))

			var notation *dice.InvalidNotationError
			require.True(t, errors.As(err, &notation))
			assert.Equal(t, input, notation.Input)
			assert.Equal(t, "Invalid dice notation: "+input, err.Error())
		})
	}
}

func TestParse_Limits(t *testing.T) {
	e, err := dice.Parse(fmt.Sprintf("%dd1", dice.MaxDice))
	require.NoError(t, err)
	assert.Equal(t, dice.MaxDice, e.Dice())

	e, err = dice.Parse("600000d6 400000d4")
	require.NoError(t, err)
	assert.Equal(t, dice.MaxDice, e.Dice())

	_, err = dice.Parse(fmt.Sprintf("%dd6 d6", dice.MaxDice))
	assert.ErrorIs(t, err, dice.ErrInvalidNotation, "one die past MaxDice must be rejected")

	// Largest modifier whose maximum total still fits in an int.
	e, err = dice.Parse("d6+9223372036854775801")
	require.NoError(t, err)
	assert.Equal(t, math.MaxInt-6, e.Modifier)

	e, err = dice.Parse("d6-9223372036854775808")
	require.NoError(t, err)
	assert.Equal(t, math.MinInt, e.Modifier)
}

func TestPropertyParse_DiceNeverExceedCap(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		counts := rapid.SliceOfN(rapid.IntRange(1, 2*dice.MaxDice), 1, 4).Draw(rt, "counts")
		terms := make([]string, len(counts))
		sum := 0
		for i, c := range counts {
			terms[i] = fmt.Sprintf("%dd6", c)
			sum += c
		}

		e, err := dice.Parse(strings.Join(terms, " "))
		if sum > dice.MaxDice {
			assert.ErrorIs(rt, err, dice.ErrInvalidNotation)
			return
		}
		require.NoError(rt, err)
		assert.Equal(rt, sum, e.Dice())
	})
}

func TestMustParse_Panics(t *testing.T) {
	assert.Panics(t, func() { dice.MustParse("abc") })
	assert.NotPanics(t, func() { dice.MustParse("2d6") })
}

func TestPropertyParse_RecoversGroupsAndModifier(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		groups := rapid.SliceOfN(rapid.Custom(func(t *rapid.T) dice.DieGroup {
			return dice.DieGroup{
				Count: rapid.IntRange(1, 50).Draw(t, "count"),
				Sides: rapid.IntRange(1, 100).Draw(t, "sides"),
			}
		}), 1, 6).Draw(rt, "groups")
		withMod := rapid.Bool().Draw(rt, "withMod")
		modifier := rapid.IntRange(-500, 500).Draw(rt, "modifier")

		terms := make([]string, len(groups))
		for i, g := range groups {
			terms[i] = g.String()
		}
		input := strings.Join(terms, " ")
		if withMod {
			input += fmt.Sprintf("%+d", modifier)
		} else {
			modifier = 0
		}

		e, err := dice.Parse(input)
		require.NoError(rt, err)
		assert.Equal(rt, groups, e.Groups)
		assert.Equal(rt, modifier, e.Modifier)
		assert.Equal(rt, withMod, e.HasModifier)
	})
}

func TestPropertyParse_Deterministic(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		input := rapid.StringMatching(`[0-9d+\- a-c]{0,24}`).Draw(rt, "input")

		e1, err1 := dice.Parse(input)
		e2, err2 := dice.Parse(input)
		assert.Equal(rt, e1, e2)
		assert.Equal(rt, err1, err2)
	})
}

func TestPropertyParse_NoSeparatorAlwaysFails(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		input := rapid.StringMatching(`[0-9a-ce-z+\- ]{0,24}`).Draw(rt, "input")

		_, err := dice.Parse(input)
		assert.ErrorIs(rt, err, dice.ErrInvalidNotation)
	})
}
