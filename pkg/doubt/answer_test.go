package doubt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanAnswerStripsThinking(t *testing.T) {
	in := "<think>The student is confused about fractions.\nLet me simplify.</think>Divide both sides by 2."
	assert.Equal(t, "Divide both sides by 2.", CleanAnswer(in))

	in = "<thinking>hmm</thinking>Answer here."
	assert.Equal(t, "Answer here.", CleanAnswer(in))
}

func TestCleanAnswerMathTokens(t *testing.T) {
	in := `Area = \frac{1}{2} \times b \times h, and c^2 = a^2 + b^2 so c = \sqrt{a^2 + b^2}`
	assert.Equal(t, "Area = (1)/(2) × b × h, and c² = a² + b² so c = √(a² + b²)", CleanAnswer(in))
}

func TestCleanAnswerComparisonTokens(t *testing.T) {
	in := `We need x \ge 3 and x \ne 5, so 3 \le x.`
	assert.Equal(t, "We need x ≥ 3 and x ≠ 5, so 3 ≤ x.", CleanAnswer(in))
}

func TestCleanAnswerPassthrough(t *testing.T) {
	assert.Equal(t, "Plain prose stays as-is.", CleanAnswer("  Plain prose stays as-is.  "))
}
