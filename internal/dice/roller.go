package dice

// Roll evaluates an Expression using the given Source and returns a RollResult.
//
// Groups are rolled in order; within a group dice are rolled 1..Count. Each
// die is drawn uniformly from [1, Sides].
//
// Precondition: expr must come from Parse; src must be non-nil.
// Postcondition: len(result.Dice) == expr.Dice();
//
//	result.Total() == sum(result.Dice) + expr.Modifier.
func Roll(expr Expression, src Source) RollResult {
	rolled := make([]int, 0, expr.Dice())
	for _, g := range expr.Groups {
		for i := 0; i < g.Count; i++ {
			rolled = append(rolled, src.Intn(g.Sides)+1)
		}
	}

	return RollResult{
		Expression: expr.Raw,
		Dice:       rolled,
		Modifier:   expr.Modifier,
	}
}

// RollExpr parses expr and rolls it using src in a single call.
//
// Precondition: src must be non-nil.
// Postcondition: Returns a RollResult or an *InvalidNotationError; no dice
// are rolled when parsing fails.
func RollExpr(expr string, src Source) (RollResult, error) {
	e, err := Parse(expr)
	if err != nil {
		return RollResult{}, err
	}
	return Roll(e, src), nil
}
