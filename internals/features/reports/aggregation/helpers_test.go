package aggregation

import (
	"time"

	"github.com/google/uuid"

	"wellness_backend/internals/constants"
)

func testID(name string) uuid.UUID {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(name))
}

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func dom(name string, avg float64, params ...constants.HappinessParameter) DomainScore {
	return DomainScore{
		DomainID:            testID("domain-" + name),
		Name:                name,
		Category:            constants.CategoryGeneral,
		Average:             avg,
		HappinessParameters: params,
	}
}

func eval(session, participant, date string, domains ...DomainScore) Evaluation {
	return Evaluation{
		ID:              uuid.New(),
		CohortID:        testID("cohort"),
		SessionID:       testID("session-" + session),
		SessionName:     session,
		SessionDate:     day(date),
		ParticipantID:   testID("participant-" + participant),
		ParticipantName: participant,
		ParticipantType: constants.CategoryGeneral,
		Domains:         domains,
	}
}

func domainAvg(set []DomainAverage, name string) (float64, bool) {
	for _, d := range set {
		if d.Domain == name {
			return d.Average, true
		}
	}
	return 0, false
}

func paramAvg(set []ParameterAverage, p constants.HappinessParameter) ParameterAverage {
	for _, pa := range set {
		if pa.Parameter == p {
			return pa
		}
	}
	return ParameterAverage{}
}
