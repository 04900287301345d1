package aggregation

import "time"

// Result is everything one pass of the pipeline derives from an evaluation
// set. DomainAverages depends on the level: center averages for a cohort,
// participant-domain averages for a participant.
type Result struct {
	Level              Level
	Groups             []SessionGroup
	SessionDomains     []SessionDomainScores
	ParticipantDomains []ParticipantDomainScores
	CenterAverages     []CenterAverage
	DomainAverages     []DomainAverage
	Overall            float64
	HasOverall         bool
	Parameters         ParameterMap
	Happiness          []ParameterAverage
}

// QuarterResult is the happiness breakdown of one window.
type QuarterResult struct {
	Window
	Happiness []ParameterAverage
}

// Run groups, merges and rolls up evaluations. Stages run in order because
// each consumes the previous one's output.
func Run(evals []Evaluation, level Level) Result {
	groups := GroupBySession(evals)
	sessions := SessionDomainAverages(groups)
	participants := ParticipantDomainAverages(groups)
	centers := CenterAverages(sessions)

	res := Result{
		Level:              level,
		Groups:             groups,
		SessionDomains:     sessions,
		ParticipantDomains: participants,
		CenterAverages:     centers,
		Parameters:         BuildParameterMap(groups),
	}

	switch level {
	case LevelParticipant:
		sets := make([][]DomainAverage, 0, len(participants))
		for _, p := range participants {
			sets = append(sets, p.Domains)
		}
		res.DomainAverages = DomainAveragesAcross(sets)
	default:
		res.DomainAverages = CenterAsDomainAverages(centers)
	}

	res.Overall, res.HasOverall = OverallAverage(groups)
	res.Happiness = HappinessAverages(res.DomainAverages, res.Parameters)
	return res
}

// RunQuarterly repeats the whole pipeline for each window of [start, end].
func RunQuarterly(evals []Evaluation, start, end time.Time, participantType string, level Level) []QuarterResult {
	windows := SplitQuarters(start, end)
	out := make([]QuarterResult, 0, len(windows))
	for _, w := range windows {
		r := Run(FilterEvaluations(evals, w.Filter(participantType)), level)
		out = append(out, QuarterResult{Window: w, Happiness: r.Happiness})
	}
	return out
}
