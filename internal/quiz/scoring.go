package quiz

import (
	"fmt"
	"math"
)

// answerTolerance is the maximum absolute difference for a submitted answer
// to count as correct.
const answerTolerance = 0.01

// Evaluate computes the value of a flat expression given its operands and the
// operators between them, honoring standard precedence: multiplication and
// division bind tighter than addition and subtraction. Division is float
// division.
func Evaluate(nums []int, ops []string) float64 {
	terms := []float64{float64(nums[0])}
	signs := []float64{1}

	for i, op := range ops {
		v := float64(nums[i+1])
		switch op {
		case "*":
			terms[len(terms)-1] *= v
		case "/":
			terms[len(terms)-1] /= v
		case "+":
			terms = append(terms, v)
			signs = append(signs, 1)
		case "-":
			terms = append(terms, v)
			signs = append(signs, -1)
		}
	}

	sum := 0.0
	for i, t := range terms {
		sum += signs[i] * t
	}
	return sum
}

// IsCorrect reports whether a submitted answer matches the correct answer
// within the float tolerance. A difference of exactly 0.01 is incorrect.
func IsCorrect(playerAnswer, correctAnswer float64) bool {
	return math.Abs(playerAnswer-correctAnswer) < answerTolerance
}

// Round2 rounds to 2 decimal places, half away from zero.
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// ScoreString formats a running score as "correct/total".
func ScoreString(correct, total int) string {
	return fmt.Sprintf("%d/%d", correct, total)
}
