package dice

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Roller wraps a Source and logger to provide logged dice rolling.
// Every roll is logged at debug level with a roll id, the dice values, the
// modifier, the total, and the RollResult audit string.
type Roller struct {
	src    Source
	logger *zap.Logger
}

// NewLoggedRoller creates a Roller that rolls with src and logs each roll to logger.
//
// Precondition: src and logger must be non-nil.
func NewLoggedRoller(src Source, logger *zap.Logger) *Roller {
	return &Roller{src: src, logger: logger}
}

// Roll evaluates expr and logs the result at debug level.
//
// Precondition: expr must come from Parse.
func (r *Roller) Roll(expr Expression) RollResult {
	result := Roll(expr, r.src)
	r.logger.Debug("dice roll",
		zap.String("roll_id", uuid.New().String()),
		zap.String("expression", result.Expression),
		zap.Stringer("groups", expr),
		zap.Ints("dice", result.Dice),
		zap.Int("modifier", result.Modifier),
		zap.Int("total", result.Total()),
		zap.Stringer("result", result),
	)
	return result
}

// RollExpr parses expr and rolls it, logging the result.
//
// Postcondition: Returns a RollResult or an *InvalidNotationError.
func (r *Roller) RollExpr(expr string) (RollResult, error) {
	e, err := Parse(expr)
	if err != nil {
		r.logger.Debug("dice parse failed",
			zap.String("expression", expr),
			zap.Error(err),
		)
		return RollResult{}, err
	}
	return r.Roll(e), nil
}
