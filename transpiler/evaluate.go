// This file is part of tasgen.
//
// tasgen is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// tasgen is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with tasgen.  If not, see <https://www.gnu.org/licenses/>.

package transpiler

import (
	"math"
	"math/big"

	"github.com/hltas/tasgen/curated"
)

// Evaluation is the result of evaluating a sequence of tokens as a postfix
// expression.
type Evaluation struct {
	// false if the tokens are not an expression. the line should be passed
	// through to the output unchanged
	IsExpression bool

	// the stack after all tokens have been consumed. only meaningful if
	// IsExpression is true. values are not limited in size, the range is only
	// checked by Value()
	Stack []*big.Int
}

// Evaluate the tokens as a postfix expression. Integers are pushed onto the
// stack and the + and - operators replace the top two values with their sum or
// difference. The value nearest the top of the stack is the right operand.
//
// Tokens that are neither an operator nor a base-10 integer, or an operator
// without two values to work on, mean the tokens are not an expression. That
// is not an error.
func Evaluate(tokens []string) Evaluation {
	stack := make([]*big.Int, 0, len(tokens))

	for _, tok := range tokens {
		switch tok {
		case "+", "-":
			n := len(stack)
			if n < 2 {
				return Evaluation{}
			}
			l, r := stack[n-2], stack[n-1]
			stack = stack[:n-2]
			v := new(big.Int)
			if tok == "+" {
				v.Add(l, r)
			} else {
				v.Sub(l, r)
			}
			stack = append(stack, v)
		default:
			// optional sign and decimal digits only
			v, ok := new(big.Int).SetString(tok, 10)
			if !ok {
				return Evaluation{}
			}
			stack = append(stack, v)
		}
	}

	return Evaluation{IsExpression: true, Stack: stack}
}

// Value returns the single value left on the stack. It is an error if there is
// not exactly one value, if the value is less than one or if the value does
// not fit in an int. The line argument is used only for the error message.
func (ev Evaluation) Value(line string) (int, error) {
	if len(ev.Stack) != 1 {
		return 0, curated.Errorf(ExpressionArity, line)
	}
	v := ev.Stack[0]
	if v.Sign() < 1 {
		return 0, curated.Errorf(ExpressionBelowMinimum, line)
	}
	if !v.IsInt64() || v.Int64() > math.MaxInt {
		return 0, curated.Errorf(ExpressionTooLarge, line)
	}
	return int(v.Int64()), nil
}
