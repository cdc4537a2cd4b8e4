package ai

import "studypal/pkg/plan/types"

// Message is one turn of prior conversation handed to the doubt solver.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type Client interface {
	// GeneratePlan asks the model for a full study plan. The reply may be a
	// fenced JSON block; implementations handle the extraction.
	GeneratePlan(req types.PlanRequest) (*types.StudyPlan, error)

	// GradeAnswers grades a batch of question/answer pairs, one verdict per
	// item, in input order.
	GradeAnswers(items []types.GradingItem) ([]types.Verdict, error)

	// SolveDoubt answers a free-text question given optional prior context.
	SolveDoubt(question string, context []Message) (string, error)
}
