// Package validate implements the shape-linking rule engine. All checks
// are pure functions over the types entities; the only injected state is
// the read-only combination rule table.
package validate

import "github.com/slotcraft/trackline/pkg/types"

// Validator decides whether shapes may link and whether a shape may be
// added to a sequence. Safe for concurrent use: the rule table is
// read-only and the validator holds no other state.
type Validator struct {
	rules types.RuleTable
}

// New returns a Validator backed by the given combination rule table.
func New(rules types.RuleTable) *Validator {
	return &Validator{rules: rules}
}

// ValidateAddShape checks whether shape may be inserted into seq at index
// at. The sequence is not mutated; on a valid result the caller performs
// the insertion. A shape of a terminal kind admits nothing after it.
func (v *Validator) ValidateAddShape(seq *types.Sequence, shape *types.Shape, at int) types.ValidationResult {
	if len(seq.Shapes) == 0 || at <= 0 {
		return types.ValidResult()
	}
	prev := seq.Shapes[at-1]
	if types.Terminal(prev.Kind) {
		return types.InvalidResult(
			"shape %s must be at the end of sequence, no shapes may follow it", prev.Code)
	}
	return types.ValidResult()
}

// ValidateLinkedSequence checks whether next's first shape may directly
// follow prev in a chain. Checks run in fixed order so the caller sees the
// most fundamental failure first:
//
//  1. the code pair must appear in the rule table (either ordering);
//  2. in the default linking mode the orientations must differ, except
//     that fixed-handed kinds are exempt from the comparison;
//  3. in invert-alignment mode the red flags must differ instead.
func (v *Validator) ValidateLinkedSequence(prev *types.Shape, next *types.Sequence) types.ValidationResult {
	first := next.First()
	if first == nil {
		return types.ValidResult()
	}

	if !v.rules.Allowed(prev.Code, first.Code) && !v.rules.Allowed(first.Code, prev.Code) {
		return types.InvalidResult(
			"shapes %s and %s are not an allowed combination", prev.Code, first.Code)
	}

	if next.InvertAlignment {
		if prev.Red == first.Red {
			return types.InvalidResult(
				"shapes %s and %s must have different colors", prev.Code, first.Code)
		}
		return types.ValidResult()
	}

	if types.FixedHanded(prev.Kind) || types.FixedHanded(first.Kind) {
		return types.ValidResult()
	}
	if prev.Orientation == first.Orientation {
		return types.InvalidResult(
			"shapes %s and %s must have different orientations", prev.Code, first.Code)
	}
	return types.ValidResult()
}
