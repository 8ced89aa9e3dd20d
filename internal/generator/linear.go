package generator

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/felixgeelhaar/algodrill/internal/domain"
)

const pushProbability = 0.6

var postfixOperators = []string{"+", "-", "*"}

// Array returns size values drawn from [1,50]
func (g *Generator) Array(size int) (*domain.ArrayInstance, error) {
	return g.array(size, 1, 51)
}

// HeapArray returns size values drawn from [10,60) for heapify questions
func (g *Generator) HeapArray(size int) (*domain.ArrayInstance, error) {
	return g.array(size, 10, 60)
}

func (g *Generator) array(size, lo, hi int) (*domain.ArrayInstance, error) {
	if size < 1 {
		return nil, fmt.Errorf("generate array of %d: %w", size, domain.ErrInvalidSize)
	}
	values := make([]int, size)
	for i := range values {
		values[i] = g.between(lo, hi)
	}
	return &domain.ArrayInstance{Values: values}, nil
}

// Queue returns size values drawn from [10,100), head first
func (g *Generator) Queue(size int) (*domain.QueueInstance, error) {
	if size < 1 {
		return nil, fmt.Errorf("generate queue of %d: %w", size, domain.ErrInvalidSize)
	}
	values := make([]int, size)
	for i := range values {
		values[i] = g.between(10, 100)
	}
	return &domain.QueueInstance{Values: values}, nil
}

// StackTrace simulates opCount push-biased operations. A pop is never drawn
// on an empty stack.
func (g *Generator) StackTrace(opCount int) (*domain.StackTrace, error) {
	if opCount < 1 {
		return nil, fmt.Errorf("generate stack trace of %d ops: %w", opCount, domain.ErrInvalidSize)
	}

	trace := &domain.StackTrace{Ops: make([]domain.StackOp, 0, opCount)}
	var stack []int
	for i := 0; i < opCount; i++ {
		if len(stack) == 0 || g.chance(pushProbability) {
			v := g.between(1, 100)
			stack = append(stack, v)
			trace.Ops = append(trace.Ops, domain.StackOp{Type: domain.StackPush, Value: v})
			continue
		}
		stack = stack[:len(stack)-1]
		trace.Ops = append(trace.Ops, domain.StackOp{Type: domain.StackPop})
	}
	trace.Result = stack
	return trace, nil
}

// Postfix returns an expression shaped "a b op c op" with operands in [1,9]
func (g *Generator) Postfix() *domain.PostfixInstance {
	a, b, c := g.between(1, 10), g.between(1, 10), g.between(1, 10)
	op1 := postfixOperators[g.intn(len(postfixOperators))]
	op2 := postfixOperators[g.intn(len(postfixOperators))]
	tokens := []string{strconv.Itoa(a), strconv.Itoa(b), op1, strconv.Itoa(c), op2}
	return &domain.PostfixInstance{Expr: strings.Join(tokens, " ")}
}
