package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"wellness_backend/internals/configs"
	"wellness_backend/internals/constants"
	cohortModel "wellness_backend/internals/features/programs/cohorts/model"
	participantModel "wellness_backend/internals/features/programs/participants/model"
	sessionModel "wellness_backend/internals/features/programs/sessions/model"
	"wellness_backend/internals/features/reports/aggregation"
	"wellness_backend/internals/features/reports/reports/dto"
	helper "wellness_backend/internals/helpers"
	"wellness_backend/internals/helpers/dbtime"
	"wellness_backend/internals/metrics"
)

// Query is the common report input. Range bounds are inclusive dates.
type Query struct {
	Range           dbtime.DateRange
	ParticipantType string
}

func (q Query) validate() error {
	if err := q.Range.Validate(); err != nil {
		return err
	}
	if q.ParticipantType != "" {
		for _, c := range constants.AllCategories {
			if c == q.ParticipantType {
				return nil
			}
		}
		return fmt.Errorf("%w: unknown participant_type %q", helper.ErrValidation, q.ParticipantType)
	}
	return nil
}

func (q Query) reportRange() dto.ReportRange {
	return dto.ReportRange{
		StartDate:       q.Range.Start.Format(dbtime.DateLayout),
		EndDate:         q.Range.End.Format(dbtime.DateLayout),
		ParticipantType: q.ParticipantType,
	}
}

func (q Query) evaluations() EvaluationQuery {
	return EvaluationQuery{Start: q.Range.Start, End: q.Range.End, ParticipantType: q.ParticipantType}
}

// Service builds reports from a Store.
type Service struct {
	Store Store
	// ComparisonWorkers bounds concurrent per-cohort loads.
	ComparisonWorkers int
}

func NewService(store Store) *Service {
	return &Service{Store: store, ComparisonWorkers: 4}
}

func cohortSummary(c cohortModel.CohortModel) dto.CohortSummary {
	return dto.CohortSummary{CohortID: c.CohortID, CohortName: c.CohortName, CohortCenter: c.CohortCenter}
}

/* ===================== Cohort report ===================== */

func (s *Service) CohortReport(ctx context.Context, cohortID uuid.UUID, q Query) (out dto.CohortReport, err error) {
	start := time.Now()
	defer func() { metrics.ObserveReport("cohort", start, err) }()

	if err := q.validate(); err != nil {
		return out, err
	}
	cohort, err := s.Store.GetCohort(ctx, cohortID)
	if err != nil {
		return out, err
	}

	var (
		participants []participantModel.ParticipantModel
		sessions     []sessionModel.SessionModel
		evals        []aggregation.Evaluation
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		participants, err = s.Store.ListParticipantsByCohort(gctx, cohortID, q.ParticipantType)
		return err
	})
	g.Go(func() error {
		var err error
		sessions, err = s.Store.ListSessions(gctx, cohortID, q.Range.Start, q.Range.End)
		return err
	})
	g.Go(func() error {
		eq := q.evaluations()
		eq.CohortID = &cohortID
		var err error
		evals, err = s.Store.ListEvaluations(gctx, eq)
		return err
	})
	if err := g.Wait(); err != nil {
		return out, err
	}

	if len(sessions) == 0 && len(evals) == 0 {
		return out, fmt.Errorf("%w: no sessions or evaluations for cohort %s in range", helper.ErrNotFound, cohortID)
	}

	ids := make([]uuid.UUID, 0, len(sessions))
	for _, ss := range sessions {
		ids = append(ids, ss.SessionID)
	}
	records, err := s.Store.ListAttendance(ctx, ids)
	if err != nil {
		return out, err
	}

	res := aggregation.Run(evals, aggregation.LevelCohort)
	quarters := aggregation.RunQuarterly(evals, q.Range.Start, q.Range.End, q.ParticipantType, aggregation.LevelCohort)
	attendance, totalPresent := CohortAttendance(participants, sessions, records)

	out = dto.CohortReport{
		Cohort:                              cohortSummary(cohort),
		Range:                               q.reportRange(),
		Attendance:                          attendance,
		TotalAttendance:                     totalPresent,
		TotalNumberOfSessions:               len(sessions),
		GraphDetails:                        dto.FromCenterAverages(res.CenterAverages),
		ParticipantDomainScores:             dto.FromParticipantDomains(res.ParticipantDomains),
		GenderData:                          GenderBreakdown(participants),
		ParticipantTypeData:                 TypeBreakdown(participants),
		AgeData:                             AgeBreakdown(participants, q.Range.End),
		HappinessParameterAverages:          dto.FromParameterAverages(res.Happiness),
		QuarterlyHappinessParameterAverages: dto.FromQuarters(quarters),
	}
	if res.HasOverall {
		avg := res.Overall
		out.AverageForCohort = &avg
	}

	configs.Log.WithField("cohort_id", cohortID).
		WithField("evaluations", len(evals)).
		WithField("sessions", len(sessions)).
		Debug("cohort report built")
	return out, nil
}

/* ===================== Participant report ===================== */

func (s *Service) ParticipantReport(ctx context.Context, participantID uuid.UUID, q Query) (out dto.ParticipantReport, err error) {
	start := time.Now()
	defer func() { metrics.ObserveReport("participant", start, err) }()

	if err := q.validate(); err != nil {
		return out, err
	}
	participant, err := s.Store.GetParticipant(ctx, participantID)
	if err != nil {
		return out, err
	}

	var (
		cohort  *dto.CohortSummary
		records []AttendanceRecord
		evals   []aggregation.Evaluation
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		c, err := s.Store.GetCohort(gctx, participant.ParticipantCohortID)
		if errors.Is(err, helper.ErrNotFound) {
			// A participant whose cohort is gone still has a report.
			configs.Log.WithError(err).WithField("participant_id", participantID).Warn("participant cohort not found")
			return nil
		}
		if err != nil {
			return err
		}
		cs := cohortSummary(c)
		cohort = &cs
		return nil
	})
	g.Go(func() error {
		var err error
		records, err = s.Store.ListParticipantAttendance(gctx, participantID, q.Range.Start, q.Range.End)
		return err
	})
	g.Go(func() error {
		eq := EvaluationQuery{ParticipantID: &participantID, Start: q.Range.Start, End: q.Range.End}
		var err error
		evals, err = s.Store.ListEvaluations(gctx, eq)
		return err
	})
	if err := g.Wait(); err != nil {
		return out, err
	}

	if len(records) == 0 && len(evals) == 0 {
		return out, fmt.Errorf("%w: no sessions or evaluations for participant %s in range", helper.ErrNotFound, participantID)
	}

	res := aggregation.Run(evals, aggregation.LevelParticipant)
	quarters := aggregation.RunQuarterly(evals, q.Range.Start, q.Range.End, "", aggregation.LevelParticipant)

	summary := dto.ParticipantSummary{
		ParticipantID:   participant.ParticipantID,
		ParticipantName: participant.ParticipantName,
		Gender:          participant.ParticipantGender,
		ParticipantType: participant.ParticipantType,
	}
	if participant.ParticipantDateOfBirth != nil && !participant.ParticipantDateOfBirth.After(q.Range.End) {
		age := dbtime.AgeAt(*participant.ParticipantDateOfBirth, q.Range.End)
		summary.Age = &age
	}

	trends := aggregation.DomainTrends(res.Groups, participantID)
	rng := q.reportRange()
	rng.ParticipantType = ""
	out = dto.ParticipantReport{
		Participant:                         summary,
		Cohort:                              cohort,
		Range:                               rng,
		Attendance:                          ParticipantAttendance(records),
		DomainScores:                        dto.FromDomainScores(res.DomainAverages),
		DomainTrends:                        dto.FromTrends(trends),
		HappinessParameterAverages:          dto.FromParameterAverages(res.Happiness),
		QuarterlyHappinessParameterAverages: dto.FromQuarters(quarters),
	}
	// Sessions is the number of sessions that scored the domain.
	sessions := make(map[string]int, len(trends))
	for _, t := range trends {
		sessions[t.Domain] = len(t.Points)
	}
	for i := range out.DomainScores {
		out.DomainScores[i].Sessions = sessions[out.DomainScores[i].Domain]
	}
	for _, p := range res.ParticipantDomains {
		if p.ParticipantID != participantID {
			continue
		}
		if avg, ok := p.Overall(); ok {
			out.AverageScore = &avg
		}
	}
	return out, nil
}

/* ===================== Comparison report ===================== */

// ComparisonReport builds every selected cohort independently, then derives
// program-wide averages from the per-cohort results. cohortIDs empty means
// all cohorts.
func (s *Service) ComparisonReport(ctx context.Context, cohortIDs []uuid.UUID, q Query) (out dto.ComparisonReport, err error) {
	start := time.Now()
	defer func() { metrics.ObserveReport("comparison", start, err) }()

	if err := q.validate(); err != nil {
		return out, err
	}
	cohorts, err := s.Store.ListCohorts(ctx, cohortIDs)
	if err != nil {
		return out, err
	}
	if len(cohorts) == 0 {
		return out, fmt.Errorf("%w: no cohorts", helper.ErrNotFound)
	}
	if len(cohortIDs) > 0 && len(cohorts) != len(dedupe(cohortIDs)) {
		return out, fmt.Errorf("%w: some cohorts do not exist", helper.ErrNotFound)
	}

	results := make([]aggregation.Result, len(cohorts))
	g, gctx := errgroup.WithContext(ctx)
	if s.ComparisonWorkers > 0 {
		g.SetLimit(s.ComparisonWorkers)
	}
	for i, c := range cohorts {
		i, c := i, c
		g.Go(func() error {
			eq := q.evaluations()
			eq.CohortID = &c.CohortID
			evals, err := s.Store.ListEvaluations(gctx, eq)
			if err != nil {
				return fmt.Errorf("cohort %s: %w", c.CohortID, err)
			}
			results[i] = aggregation.Run(evals, aggregation.LevelCohort)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return out, err
	}

	out = dto.ComparisonReport{Range: q.reportRange(), Cohorts: make([]dto.CohortComparison, 0, len(cohorts))}
	var (
		centerSets [][]aggregation.DomainAverage
		ranked     []dto.RankedCohort
	)
	params := make(aggregation.ParameterMap)
	for i, c := range cohorts {
		r := results[i]
		cc := dto.CohortComparison{
			Cohort:                     cohortSummary(c),
			NumberOfSessions:           len(r.Groups),
			DomainAverages:             dto.FromDomainAverages(r.DomainAverages),
			HappinessParameterAverages: dto.FromParameterAverages(r.Happiness),
		}
		if r.HasOverall {
			avg := r.Overall
			cc.AverageForCohort = &avg
			ranked = append(ranked, dto.RankedCohort{Cohort: cc.Cohort, Average: avg})
		}
		out.Cohorts = append(out.Cohorts, cc)
		if len(r.DomainAverages) > 0 {
			centerSets = append(centerSets, r.DomainAverages)
		}
		params.Merge(r.Parameters)
	}

	program := aggregation.DomainAveragesAcross(centerSets)
	out.DomainAverages = dto.FromDomainAverages(program)
	out.HappinessParameterAverages = dto.FromParameterAverages(aggregation.HappinessAverages(program, params))

	score := func(r dto.RankedCohort) float64 { return r.Average }
	out.TopCohorts = aggregation.TopN(ranked, constants.TopCohortsN, score)
	out.BottomCohorts = aggregation.BottomN(ranked, constants.TopCohortsN, score)
	return out, nil
}

func dedupe(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]bool, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
