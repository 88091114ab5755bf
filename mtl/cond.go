/*
  cond.go
  Description: evaluation of a field's conditional clause
  -----------------------------------------------------------------------------

  Started on  <Fri Jul 31 09:22:55 2026 Carlos Linares Lopez>
  -----------------------------------------------------------------------------

  Made by Carlos Linares Lopez
  Login   <clinares@atlas>
*/

package mtl

import "strings"

// evalCond evaluates c against v's rendered elements, the way
// pfparser.go's RelationalInterface.Evaluate compares a symbol's bound
// value against a constant: here the "symbol" is the field's own value and
// the "constant" is its conditional's rendered right-hand side. Per
// spec.md §4.6 step 1, the result is true iff ANY (element of L, candidate
// of R) pair satisfies the operator — both sides may be multi-valued.
func evalCond(v MetaValue, c *Cond, env *Variables) (bool, error) {
	if c == nil {
		return !v.IsEmpty(), nil
	}

	rhsList, err := c.RHS.render(env)
	if err != nil {
		return false, err
	}
	if len(rhsList) == 0 {
		rhsList = []string{""}
	}

	items := v.Strings()
	if len(items) == 0 {
		items = []string{""}
	}

	result := false
outer:
	for _, lhs := range items {
		for _, rhs := range rhsList {
			if evalOp(lhs, c.Op, rhs) {
				result = true
				break outer
			}
		}
	}

	if c.Negated {
		result = !result
	}
	return result, nil
}

func evalOp(lhs string, op Op, rhs string) bool {
	switch op {
	case OpContains:
		return strings.Contains(lhs, rhs)
	case OpMatches:
		return lhs == rhs
	case OpStartsWith:
		return strings.HasPrefix(lhs, rhs)
	case OpEndsWith:
		return strings.HasSuffix(lhs, rhs)
	case OpLE:
		return compareValues(lhs, rhs) <= 0
	case OpGE:
		return compareValues(lhs, rhs) >= 0
	case OpLT:
		return compareValues(lhs, rhs) < 0
	case OpGT:
		return compareValues(lhs, rhs) > 0
	case OpEQ:
		return compareValues(lhs, rhs) == 0
	case OpNE:
		return compareValues(lhs, rhs) != 0
	}
	return false
}

/* Local Variables: */
/* mode:go */
/* fill-column:80 */
/* End: */
