package generator

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"
)

// The quiz only ever deals out these three operators. Division is excluded
// so every answer stays an exact integer.
var operators = []string{"+", "*", "-"}

var ErrUnknownOperator = errors.New("unknown operator")

// Generator produces random single-operator arithmetic questions. It is safe
// for concurrent use.
type Generator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func New() *Generator {
	return NewWithSeed(time.Now().UnixNano())
}

// NewWithSeed makes the question sequence reproducible in tests.
func NewWithSeed(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Question returns the rendered expression and its integer answer.
// Operands are uniform over 1..9, the operator uniform over + * -.
func (g *Generator) Question() (string, int) {
	g.mu.Lock()
	left := g.rng.Intn(9) + 1
	right := g.rng.Intn(9) + 1
	op := operators[g.rng.Intn(len(operators))]
	g.mu.Unlock()

	expr := fmt.Sprintf("%d%s%d", left, op, right)
	answer, _ := Eval(left, op, right)
	return expr, answer
}

// Eval computes the answer for the fixed operator set. There is no generic
// expression evaluation anywhere in the quiz.
func Eval(left int, op string, right int) (int, error) {
	switch op {
	case "+":
		return left + right, nil
	case "*":
		return left * right, nil
	case "-":
		return left - right, nil
	default:
		return 0, ErrUnknownOperator
	}
}
