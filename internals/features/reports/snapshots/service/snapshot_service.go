package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"wellness_backend/internals/configs"
	dashboard "wellness_backend/internals/features/reports/dashboard/service"
	reports "wellness_backend/internals/features/reports/reports/service"
	"wellness_backend/internals/features/reports/snapshots/dto"
	"wellness_backend/internals/features/reports/snapshots/model"
	helper "wellness_backend/internals/helpers"
	"wellness_backend/internals/helpers/dbtime"
	"wellness_backend/internals/metrics"
)

type Service struct {
	DB        *gorm.DB
	Reports   *reports.Service
	Dashboard *dashboard.Service
	TTL       time.Duration
	Now       func() time.Time
}

func NewService(db *gorm.DB) *Service {
	store := reports.NewGormStore(db)
	return &Service{
		DB:        db,
		Reports:   reports.NewService(store),
		Dashboard: dashboard.NewService(store),
		TTL:       time.Duration(configs.SnapshotTTLDays) * 24 * time.Hour,
		Now:       time.Now,
	}
}

type ListFilter struct {
	Kind      string
	SubjectID *uuid.UUID
	Limit     int
	Offset    int
}

/* ===================== create ===================== */

func (s *Service) build(ctx context.Context, req dto.CreateSnapshotRequest, q reports.Query) (any, error) {
	switch req.Kind {
	case model.KindCohort:
		return s.Reports.CohortReport(ctx, *req.SubjectID, q)
	case model.KindParticipant:
		return s.Reports.ParticipantReport(ctx, *req.SubjectID, q)
	case model.KindComparison:
		return s.Reports.ComparisonReport(ctx, req.CohortIDs, q)
	case model.KindDashboard:
		return s.Dashboard.Build(ctx, q.Range)
	default:
		return nil, fmt.Errorf("%w: unknown kind %q", helper.ErrValidation, req.Kind)
	}
}

// Create computes the requested report and stores its JSON.
func (s *Service) Create(ctx context.Context, req dto.CreateSnapshotRequest) (model.ReportSnapshotModel, error) {
	start, err := dbtime.ParseDate(req.StartDate)
	if err != nil {
		return model.ReportSnapshotModel{}, fmt.Errorf("%w: invalid start_date", helper.ErrValidation)
	}
	end, err := dbtime.ParseDate(req.EndDate)
	if err != nil {
		return model.ReportSnapshotModel{}, fmt.Errorf("%w: invalid end_date", helper.ErrValidation)
	}
	q := reports.Query{Range: dbtime.DateRange{Start: start, End: end}, ParticipantType: req.ParticipantType}
	if err := q.Range.Validate(); err != nil {
		return model.ReportSnapshotModel{}, err
	}
	if (req.Kind == model.KindCohort || req.Kind == model.KindParticipant) && req.SubjectID == nil {
		return model.ReportSnapshotModel{}, fmt.Errorf("%w: subject_id is required for %s", helper.ErrValidation, req.Kind)
	}
	// The dashboard is program-wide and has no participant type filter.
	if req.Kind == model.KindDashboard && req.ParticipantType != "" {
		return model.ReportSnapshotModel{}, fmt.Errorf("%w: participant_type is not supported for %s", helper.ErrValidation, req.Kind)
	}

	report, err := s.build(ctx, req, q)
	if err != nil {
		return model.ReportSnapshotModel{}, err
	}
	payload, err := sonic.Marshal(report)
	if err != nil {
		return model.ReportSnapshotModel{}, fmt.Errorf("encode %s report: %w", req.Kind, err)
	}

	now := s.Now()
	m := model.ReportSnapshotModel{
		ReportSnapshotKind:            req.Kind,
		ReportSnapshotStartDate:       start,
		ReportSnapshotEndDate:         end,
		ReportSnapshotParticipantType: req.ParticipantType,
		ReportSnapshotPayload:         datatypes.JSON(payload),
		ReportSnapshotCreatedAt:       now,
		ReportSnapshotExpiresAt:       now.Add(s.TTL),
	}
	if req.Kind == model.KindCohort || req.Kind == model.KindParticipant {
		m.ReportSnapshotSubjectID = req.SubjectID
	}
	for _, id := range req.CohortIDs {
		m.ReportSnapshotCohortIDs = append(m.ReportSnapshotCohortIDs, id.String())
	}

	if err := s.DB.WithContext(ctx).Create(&m).Error; err != nil {
		return model.ReportSnapshotModel{}, err
	}
	configs.Log.WithFields(logrus.Fields{
		"snapshot_id": m.ReportSnapshotID,
		"kind":        m.ReportSnapshotKind,
		"bytes":       len(payload),
	}).Info("report snapshot stored")
	return m, nil
}

/* ===================== read ===================== */

func (s *Service) live(ctx context.Context) *gorm.DB {
	return s.DB.WithContext(ctx).Where("report_snapshot_expires_at > ?", s.Now())
}

// Get hides expired snapshots even before the purge removes them.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (model.ReportSnapshotModel, error) {
	var m model.ReportSnapshotModel
	if err := s.live(ctx).First(&m, "report_snapshot_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return m, fmt.Errorf("%w: report snapshot %s", helper.ErrNotFound, id)
		}
		return m, err
	}
	return m, nil
}

func (s *Service) List(ctx context.Context, f ListFilter) ([]model.ReportSnapshotModel, int64, error) {
	q := s.live(ctx).Model(&model.ReportSnapshotModel{})
	if f.Kind != "" {
		q = q.Where("report_snapshot_kind = ?", f.Kind)
	}
	if f.SubjectID != nil {
		q = q.Where("report_snapshot_subject_id = ?", *f.SubjectID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var rows []model.ReportSnapshotModel
	err := q.Omit("report_snapshot_payload").
		Order("report_snapshot_created_at DESC").
		Limit(f.Limit).Offset(f.Offset).
		Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	res := s.DB.WithContext(ctx).Delete(&model.ReportSnapshotModel{}, "report_snapshot_id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: report snapshot %s", helper.ErrNotFound, id)
	}
	return nil
}

/* ===================== purge ===================== */

// Purge hard-deletes snapshots that expired before now.
func (s *Service) Purge(ctx context.Context) (int64, error) {
	res := s.DB.WithContext(ctx).
		Where("report_snapshot_expires_at <= ?", s.Now()).
		Delete(&model.ReportSnapshotModel{})
	if res.Error != nil {
		return 0, res.Error
	}
	metrics.RecordSnapshotsPurged(res.RowsAffected)
	return res.RowsAffected, nil
}
