package serviceImp

import (
	"log"
	"time"

	"studypal/entities"
	"studypal/pkg/ai"
	"studypal/pkg/doubt"
	"studypal/pkg/doubt/repository"
)

type DoubtSvc struct {
	llm      ai.Client
	fallback ai.Client
	repo     repository.DoubtRepository
}

func New(llm ai.Client, repo repository.DoubtRepository) *DoubtSvc {
	return &DoubtSvc{llm: llm, fallback: ai.NewMock(), repo: repo}
}

// Solve answers a doubt, degrading to the offline answer when the model is
// unreachable. The returned text is already display-clean.
func (s *DoubtSvc) Solve(uid, question string, context []ai.Message) (string, error) {
	raw, err := s.llm.SolveDoubt(question, context)
	if err != nil {
		log.Printf("[doubt] model unreachable for %s: %v (using mock)", uid, err)
		raw, err = s.fallback.SolveDoubt(question, context)
		if err != nil {
			return "", err
		}
	}
	answer := doubt.CleanAnswer(raw)
	if err := s.repo.Create(&entities.DoubtLog{
		UserID:    uid,
		Question:  question,
		Answer:    answer,
		CreatedAt: time.Now(),
	}); err != nil {
		log.Printf("[doubt] log not saved for %s: %v", uid, err)
	}
	return answer, nil
}

func (s *DoubtSvc) History(uid string, limit int) ([]entities.DoubtLog, error) {
	return s.repo.ListByUser(uid, limit)
}
