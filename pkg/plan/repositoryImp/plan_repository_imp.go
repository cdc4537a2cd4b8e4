package repositoryImp

import (
	"encoding/json"
	"errors"
	"log"

	"gorm.io/gorm"

	"studypal/entities"
	"studypal/pkg/plan/repository"
	"studypal/pkg/plan/types"
)

const (
	planKeyPrefix = "study_plan:"
	schemaVersion = 1
)

// envelope wraps the stored plan with a schema version. Version 0 is a bare
// StudyPlan blob from before the envelope existed; Load reads those
// transparently and the next Save rewrites them as version 1.
type envelope struct {
	SchemaVersion int              `json:"schemaVersion"`
	Plan          *types.StudyPlan `json:"plan"`
}

type planRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.PlanRepository { return &planRepo{db} }

func (r *planRepo) Load(uid string) *types.StudyPlan {
	var row entities.KVEntry
	if err := r.db.Where("key = ?", planKeyPrefix+uid).First(&row).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("[plan] load %s: %v", uid, err)
		}
		return nil
	}
	return decode(uid, row.Value)
}

func decode(uid, raw string) *types.StudyPlan {
	var env envelope
	if err := json.Unmarshal([]byte(raw), &env); err == nil && env.Plan != nil {
		return env.Plan
	}
	// version-0 blob: the plan itself, no envelope
	var p types.StudyPlan
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		log.Printf("[plan] unparsable blob for %s: %v", uid, err)
		return nil
	}
	if p.Weeks == nil {
		return nil
	}
	return &p
}

func (r *planRepo) Save(uid string, p *types.StudyPlan) error {
	b, err := json.Marshal(envelope{SchemaVersion: schemaVersion, Plan: p})
	if err != nil {
		return err
	}
	key := planKeyPrefix + uid
	if err := r.put(key, string(b)); err != nil {
		return err
	}
	// Verify-after-write: re-read, retry the write once if the row is
	// missing. Best effort against a flaky store, not a transaction.
	if !r.exists(key) {
		log.Printf("[plan] save verify failed for %s, retrying", uid)
		if err := r.put(key, string(b)); err != nil {
			return err
		}
		if !r.exists(key) {
			log.Printf("[plan] save retry still missing for %s", uid)
		}
	}
	return nil
}

func (r *planRepo) put(key, value string) error {
	row := entities.KVEntry{Key: key, Value: value}
	return r.db.Save(&row).Error
}

func (r *planRepo) exists(key string) bool {
	var n int64
	if err := r.db.Model(&entities.KVEntry{}).Where("key = ?", key).Count(&n).Error; err != nil {
		return false
	}
	return n > 0
}
