package quiz

import (
	"math/rand"
	"strconv"
	"strings"
)

// Difficulty bounds accepted by Generate. Callers validate the range upstream.
const (
	MinDifficulty = 1
	MaxDifficulty = 4
)

// difficultyConfig maps a difficulty level to the operand count and digit
// width of the numbers in a generated expression.
var difficultyConfig = map[int]struct {
	operands int
	digits   int
}{
	1: {operands: 2, digits: 1},
	2: {operands: 3, digits: 2},
	3: {operands: 4, digits: 3},
	4: {operands: 5, digits: 4},
}

var operators = []string{"+", "-", "*", "/"}

// Generate produces an arithmetic expression for the given difficulty together
// with its correct answer, rounded to 2 decimal places. The expression is built
// left to right; a division at the second operand is made integer-clean by
// scaling the first operand with the divisor. The answer honors standard
// operator precedence.
func Generate(difficulty int, rng *rand.Rand) (string, float64) {
	cfg := difficultyConfig[difficulty]

	nums := make([]int, 0, cfg.operands)
	ops := make([]string, 0, cfg.operands-1)
	nums = append(nums, randomNumber(cfg.digits, rng))

	for i := 1; i < cfg.operands; i++ {
		op := operators[rng.Intn(len(operators))]
		next := randomNumber(cfg.digits, rng)
		if op == "/" {
			if next < 1 {
				next = 1
			}
			if i == 1 {
				// Scale the first operand so the division yields a whole
				// intermediate value.
				nums[0] *= next
			}
		}
		ops = append(ops, op)
		nums = append(nums, next)
	}

	return render(nums, ops), Round2(Evaluate(nums, ops))
}

// randomNumber draws a uniform number with exactly the given digit count,
// e.g. digits=2 yields a value in [10, 99]. The minimum is always >= 1, so a
// generated divisor can never be zero.
func randomNumber(digits int, rng *rand.Rand) int {
	min := 1
	for i := 1; i < digits; i++ {
		min *= 10
	}
	max := min*10 - 1
	return rng.Intn(max-min+1) + min
}

func render(nums []int, ops []string) string {
	var sb strings.Builder
	sb.WriteString(strconv.Itoa(nums[0]))
	for i, op := range ops {
		sb.WriteString(" ")
		sb.WriteString(op)
		sb.WriteString(" ")
		sb.WriteString(strconv.Itoa(nums[i+1]))
	}
	return sb.String()
}
