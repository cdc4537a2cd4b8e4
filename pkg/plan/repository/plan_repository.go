package repository

import "studypal/pkg/plan/types"

type PlanRepository interface {
	// Load returns nil when no plan is stored or the stored blob is
	// unparsable. Parse failures are logged, never propagated.
	Load(uid string) *types.StudyPlan
	Save(uid string, p *types.StudyPlan) error
}
