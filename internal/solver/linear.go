package solver

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/felixgeelhaar/algodrill/internal/domain"
)

// ReplayStack applies ops to an empty stack. It fails on a pop from an
// empty stack.
func ReplayStack(ops []domain.StackOp) ([]int, bool) {
	var stack []int
	for _, op := range ops {
		switch op.Type {
		case domain.StackPush:
			stack = append(stack, op.Value)
		case domain.StackPop:
			if len(stack) == 0 {
				return nil, false
			}
			stack = stack[:len(stack)-1]
		}
	}
	return stack, true
}

// StackTop returns the top of the replayed stack
func StackTop(trace *domain.StackTrace) (int, bool) {
	if trace == nil {
		return 0, false
	}
	stack, ok := ReplayStack(trace.Ops)
	if !ok || len(stack) == 0 {
		return 0, false
	}
	return stack[len(stack)-1], true
}

// QueueHeadAfterDequeue returns the head once the current head leaves
func QueueHeadAfterDequeue(values []int) (int, bool) {
	if len(values) < 2 {
		return 0, false
	}
	return values[1], true
}

// PostfixStep is the operand stack after consuming Token
type PostfixStep struct {
	Token string
	Stack []int
}

// EvalPostfix evaluates a space-separated postfix expression with integer
// arithmetic. Division truncates toward zero.
func EvalPostfix(expr string) (int, error) {
	v, _, err := EvalPostfixSteps(expr)
	return v, err
}

// EvalPostfixSteps evaluates expr and records the stack after every token
func EvalPostfixSteps(expr string) (int, []PostfixStep, error) {
	tokens := strings.Fields(expr)
	if len(tokens) == 0 {
		return 0, nil, fmt.Errorf("evaluate %q: %w", expr, domain.ErrInvalidExpression)
	}

	var (
		stack []int
		steps []PostfixStep
	)
	for _, tok := range tokens {
		if n, err := strconv.Atoi(tok); err == nil {
			stack = append(stack, n)
			steps = append(steps, PostfixStep{Token: tok, Stack: slices.Clone(stack)})
			continue
		}
		if !isOperator(tok) {
			return 0, steps, fmt.Errorf("unknown token %q: %w", tok, domain.ErrInvalidExpression)
		}
		if len(stack) < 2 {
			return 0, steps, fmt.Errorf("operator %q needs two operands: %w", tok, domain.ErrInvalidExpression)
		}
		b, a := stack[len(stack)-1], stack[len(stack)-2]
		stack = stack[:len(stack)-2]

		var r int
		switch tok {
		case "+":
			r = a + b
		case "-":
			r = a - b
		case "*":
			r = a * b
		case "/":
			if b == 0 {
				return 0, steps, fmt.Errorf("division by zero: %w", domain.ErrInvalidExpression)
			}
			r = a / b
		}
		stack = append(stack, r)
		steps = append(steps, PostfixStep{Token: tok, Stack: slices.Clone(stack)})
	}

	if len(stack) != 1 {
		return 0, steps, fmt.Errorf("evaluate %q left %d values: %w", expr, len(stack), domain.ErrInvalidExpression)
	}
	return stack[0], steps, nil
}

func isOperator(tok string) bool {
	switch tok {
	case "+", "-", "*", "/":
		return true
	}
	return false
}
