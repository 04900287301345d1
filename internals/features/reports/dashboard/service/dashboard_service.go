package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"wellness_backend/internals/configs"
	"wellness_backend/internals/constants"
	cohortModel "wellness_backend/internals/features/programs/cohorts/model"
	"wellness_backend/internals/features/reports/aggregation"
	"wellness_backend/internals/features/reports/dashboard/dto"
	reportDTO "wellness_backend/internals/features/reports/reports/dto"
	reports "wellness_backend/internals/features/reports/reports/service"
	"wellness_backend/internals/helpers/dbtime"
	"wellness_backend/internals/metrics"
)

type Service struct {
	Store reports.Store
}

func NewService(store reports.Store) *Service {
	return &Service{Store: store}
}

// Build loads counts and the evaluations of rng concurrently, then ranks
// participants program-wide and cohorts by their overall average.
func (s *Service) Build(ctx context.Context, rng dbtime.DateRange) (out dto.Dashboard, err error) {
	start := time.Now()
	defer func() { metrics.ObserveReport("dashboard", start, err) }()

	if err := rng.Validate(); err != nil {
		return out, err
	}

	entities := []reports.Entity{
		reports.EntityParticipants,
		reports.EntityCohorts,
		reports.EntityActivities,
		reports.EntitySessions,
		reports.EntityEvaluations,
	}
	counts := make([]int64, len(entities))
	var (
		evals   []aggregation.Evaluation
		cohorts []cohortModel.CohortModel
	)

	g, gctx := errgroup.WithContext(ctx)
	for i, e := range entities {
		i, e := i, e
		g.Go(func() error {
			n, err := s.Store.Count(gctx, e)
			counts[i] = n
			return err
		})
	}
	g.Go(func() error {
		var err error
		evals, err = s.Store.ListEvaluations(gctx, reports.EvaluationQuery{Start: rng.Start, End: rng.End})
		return err
	})
	g.Go(func() error {
		var err error
		cohorts, err = s.Store.ListCohorts(gctx, nil)
		return err
	})
	if err := g.Wait(); err != nil {
		return out, err
	}

	res := aggregation.Run(evals, aggregation.LevelCohort)

	var performers []dto.Performer
	for _, p := range res.ParticipantDomains {
		if avg, ok := p.Overall(); ok {
			performers = append(performers, dto.Performer{
				ParticipantID:   p.ParticipantID,
				ParticipantName: p.ParticipantName,
				Average:         avg,
			})
		}
	}
	byAverage := func(p dto.Performer) float64 { return p.Average }

	centers := cohortCenters(evals, cohorts)

	out = dto.Dashboard{
		Range: reportDTO.ReportRange{
			StartDate: rng.Start.Format(dbtime.DateLayout),
			EndDate:   rng.End.Format(dbtime.DateLayout),
		},
		Counts: dto.Counts{
			Participants: counts[0],
			Cohorts:      counts[1],
			Activities:   counts[2],
			Sessions:     counts[3],
			Evaluations:  counts[4],
		},
		TopPerformers:              aggregation.TopN(performers, constants.TopPerformersN, byAverage),
		BottomPerformers:           aggregation.BottomN(performers, constants.TopPerformersN, byAverage),
		TopCenters:                 aggregation.TopN(centers, constants.TopCentersN, func(c dto.Center) float64 { return c.Average }),
		HappinessParameterAverages: reportDTO.FromParameterAverages(res.Happiness),
	}
	if res.HasOverall {
		avg := res.Overall
		out.AverageScore = &avg
	}

	configs.Log.WithField("evaluations", len(evals)).Debug("dashboard built")
	return out, nil
}

// cohortCenters runs the pipeline once per cohort and keeps the cohorts that
// have an overall average. Order follows the first evaluation of each cohort.
func cohortCenters(evals []aggregation.Evaluation, cohorts []cohortModel.CohortModel) []dto.Center {
	byID := make(map[uuid.UUID]cohortModel.CohortModel, len(cohorts))
	for _, c := range cohorts {
		byID[c.CohortID] = c
	}

	var order []uuid.UUID
	groups := make(map[uuid.UUID][]aggregation.Evaluation)
	for _, e := range evals {
		if _, seen := groups[e.CohortID]; !seen {
			order = append(order, e.CohortID)
		}
		groups[e.CohortID] = append(groups[e.CohortID], e)
	}

	centers := make([]dto.Center, 0, len(order))
	for _, id := range order {
		res := aggregation.Run(groups[id], aggregation.LevelCohort)
		if !res.HasOverall {
			continue
		}
		c := byID[id]
		centers = append(centers, dto.Center{
			CohortID:         id,
			CohortName:       c.CohortName,
			CohortCenter:     c.CohortCenter,
			Average:          res.Overall,
			NumberOfSessions: len(res.Groups),
		})
	}
	return centers
}
