package serviceImp

import (
	"log"
	"time"

	"studypal/entities"
	"studypal/pkg/ai"
	"studypal/pkg/plan/types"
	"studypal/pkg/practice/repository"
	"studypal/pkg/subject"
)

type PracticeSvc struct {
	llm      ai.Client
	fallback ai.Client
	repo     repository.PracticeRepository
}

func New(llm ai.Client, repo repository.PracticeRepository) *PracticeSvc {
	return &PracticeSvc{llm: llm, fallback: ai.NewMock(), repo: repo}
}

// Grade runs a batch through the model grader, degrading to the mock grader
// on failure, and records an attempt summary. A failed summary write never
// fails the grading itself.
func (s *PracticeSvc) Grade(uid, subjectName, chapter string, items []types.GradingItem) ([]types.Verdict, error) {
	verdicts, err := s.llm.GradeAnswers(items)
	if err != nil {
		log.Printf("[practice] model grading failed for %s: %v (using mock)", uid, err)
		verdicts, err = s.fallback.GradeAnswers(items)
		if err != nil {
			return nil, err
		}
	}

	a := &entities.PracticeAttempt{
		UserID:    uid,
		Subject:   subject.Normalize(subjectName),
		Chapter:   chapter,
		Questions: len(items),
		CreatedAt: time.Now(),
	}
	for _, v := range verdicts {
		if v.Correct {
			a.Correct++
		}
		a.MarksAwarded += v.Marks
		a.MarksTotal += v.MaxMarks
	}
	if err := s.repo.Create(a); err != nil {
		log.Printf("[practice] attempt summary not saved for %s: %v", uid, err)
	}
	return verdicts, nil
}

func (s *PracticeSvc) Attempts(uid string, limit int) ([]entities.PracticeAttempt, error) {
	return s.repo.ListByUser(uid, limit)
}
