package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"wellness_backend/internals/configs"
	"wellness_backend/internals/features/evaluations/evaluations/dto"
	"wellness_backend/internals/features/evaluations/evaluations/model"
	activityModel "wellness_backend/internals/features/programs/activities/model"
	cohortModel "wellness_backend/internals/features/programs/cohorts/model"
	domainService "wellness_backend/internals/features/programs/domains/service"
	participantModel "wellness_backend/internals/features/programs/participants/model"
	sessionModel "wellness_backend/internals/features/programs/sessions/model"
	helper "wellness_backend/internals/helpers"
	"wellness_backend/internals/metrics"
)

type Service struct {
	DB  *gorm.DB
	Now func() time.Time
}

func NewService(db *gorm.DB) *Service {
	return &Service{DB: db, Now: time.Now}
}

type ListFilter struct {
	CohortID      *uuid.UUID
	SessionID     *uuid.UUID
	ParticipantID *uuid.UUID
	Limit         int
	Offset        int
}

/* ===================== snapshots ===================== */

// snapshotDomains freezes catalog data next to the scores. Domains already
// present in prior keep their earlier snapshot so editing scores never
// rewrites history.
func snapshotDomains(norm []NormalizedDomain, cat *domainService.Catalog, prior map[uuid.UUID]model.DomainSnapshot, now time.Time) ([]model.DomainSnapshot, error) {
	out := make([]model.DomainSnapshot, 0, len(norm))
	for _, d := range norm {
		if p, ok := prior[d.DomainID]; ok {
			p.SubTopics = d.SubTopics
			p.Average = d.Average
			out = append(out, p)
			continue
		}
		entry, ok := cat.ByID(d.DomainID)
		if !ok {
			return nil, fmt.Errorf("%w: unknown domain %s", helper.ErrValidation, d.DomainID)
		}
		params := make([]string, 0, len(entry.DomainHappinessParameters))
		for _, p := range entry.Parameters() {
			params = append(params, string(p))
		}
		out = append(out, model.DomainSnapshot{
			DomainID:            entry.DomainID,
			Name:                entry.DomainName,
			Category:            entry.DomainCategory,
			SubTopics:           d.SubTopics,
			Average:             d.Average,
			HappinessParameters: params,
			SnapshotAt:          now,
		})
	}
	return out, nil
}

func domainIDs(in []dto.DomainInput) []uuid.UUID {
	seen := make(map[uuid.UUID]bool, len(in))
	out := make([]uuid.UUID, 0, len(in))
	for _, d := range in {
		if !seen[d.DomainID] {
			seen[d.DomainID] = true
			out = append(out, d.DomainID)
		}
	}
	return out
}

func normalize(in []dto.DomainInput) ([]NormalizedDomain, float64, error) {
	norm, grand := NormalizeDomains(in)
	if len(norm) == 0 {
		return nil, 0, fmt.Errorf("%w: evaluation has no scored sub-topics", helper.ErrValidation)
	}
	return norm, grand, nil
}

/* ===================== reference checks ===================== */

func (s *Service) checkReferences(tx *gorm.DB, req dto.SubmitEvaluationRequest) error {
	var n int64
	if err := tx.Model(&cohortModel.CohortModel{}).Where("cohort_id = ?", req.CohortID).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: cohort %s not found", helper.ErrValidation, req.CohortID)
	}

	var session sessionModel.SessionModel
	if err := tx.Select("session_id", "session_cohort_id").First(&session, "session_id = ?", req.SessionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: session %s not found", helper.ErrValidation, req.SessionID)
		}
		return err
	}
	if session.SessionCohortID != req.CohortID {
		return fmt.Errorf("%w: session %s does not belong to cohort %s", helper.ErrValidation, req.SessionID, req.CohortID)
	}

	if err := tx.Model(&activityModel.ActivityModel{}).Where("activity_id = ?", req.ActivityID).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: activity %s not found", helper.ErrValidation, req.ActivityID)
	}

	if err := tx.Model(&participantModel.ParticipantModel{}).Where("participant_id = ?", req.ParticipantID).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: participant %s not found", helper.ErrValidation, req.ParticipantID)
	}
	return nil
}

/* ===================== Submit ===================== */

// Submit normalizes the scores, snapshots the catalog and stores the
// evaluation.
func (s *Service) Submit(ctx context.Context, req dto.SubmitEvaluationRequest) (m model.EvaluationModel, err error) {
	defer func() { metrics.RecordEvaluationWrite("submit", err) }()

	norm, grand, err := normalize(req.Domains)
	if err != nil {
		return m, err
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.checkReferences(tx, req); err != nil {
			return err
		}
		cat, err := domainService.LoadCatalogByIDs(ctx, tx, domainIDs(req.Domains))
		if err != nil {
			return err
		}
		snaps, err := snapshotDomains(norm, cat, nil, s.Now())
		if err != nil {
			return err
		}
		m = model.EvaluationModel{
			EvaluationCohortID:      req.CohortID,
			EvaluationSessionID:     req.SessionID,
			EvaluationActivityID:    req.ActivityID,
			EvaluationParticipantID: req.ParticipantID,
			EvaluationDomains:       snaps,
			EvaluationGrandAverage:  grand,
		}
		return tx.Create(&m).Error
	})
	if err != nil {
		return model.EvaluationModel{}, err
	}

	configs.Log.WithFields(logrus.Fields{
		"evaluation_id": m.EvaluationID,
		"session_id":    m.EvaluationSessionID,
		"domains":       len(m.EvaluationDomains),
	}).Debug("evaluation submitted")
	return m, nil
}

/* ===================== Edit ===================== */

// Edit recomputes the evaluation exactly as Submit would.
func (s *Service) Edit(ctx context.Context, id uuid.UUID, req dto.EditEvaluationRequest) (m model.EvaluationModel, err error) {
	defer func() { metrics.RecordEvaluationWrite("edit", err) }()

	norm, grand, err := normalize(req.Domains)
	if err != nil {
		return m, err
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&m, "evaluation_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: evaluation %s", helper.ErrNotFound, id)
			}
			return err
		}

		prior := make(map[uuid.UUID]model.DomainSnapshot, len(m.EvaluationDomains))
		for _, d := range m.EvaluationDomains {
			prior[d.DomainID] = d
		}
		var fresh []uuid.UUID
		for _, did := range domainIDs(req.Domains) {
			if _, ok := prior[did]; !ok {
				fresh = append(fresh, did)
			}
		}
		cat, err := domainService.LoadCatalogByIDs(ctx, tx, fresh)
		if err != nil {
			return err
		}
		snaps, err := snapshotDomains(norm, cat, prior, s.Now())
		if err != nil {
			return err
		}

		m.EvaluationDomains = snaps
		m.EvaluationGrandAverage = grand
		return tx.Save(&m).Error
	})
	if err != nil {
		return model.EvaluationModel{}, err
	}
	return m, nil
}

/* ===================== Read / Delete ===================== */

func (s *Service) Get(ctx context.Context, id uuid.UUID) (model.EvaluationModel, error) {
	var m model.EvaluationModel
	if err := s.DB.WithContext(ctx).First(&m, "evaluation_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return m, fmt.Errorf("%w: evaluation %s", helper.ErrNotFound, id)
		}
		return m, err
	}
	return m, nil
}

func (s *Service) List(ctx context.Context, f ListFilter) ([]model.EvaluationModel, int64, error) {
	q := s.DB.WithContext(ctx).Model(&model.EvaluationModel{})
	if f.CohortID != nil {
		q = q.Where("evaluation_cohort_id = ?", *f.CohortID)
	}
	if f.SessionID != nil {
		q = q.Where("evaluation_session_id = ?", *f.SessionID)
	}
	if f.ParticipantID != nil {
		q = q.Where("evaluation_participant_id = ?", *f.ParticipantID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var rows []model.EvaluationModel
	q = q.Order("evaluation_created_at DESC")
	if f.Limit > 0 {
		q = q.Limit(f.Limit).Offset(f.Offset)
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	res := s.DB.WithContext(ctx).Delete(&model.EvaluationModel{}, "evaluation_id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: evaluation %s", helper.ErrNotFound, id)
	}
	return nil
}
