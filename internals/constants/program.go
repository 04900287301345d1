package constants

import "fmt"

// HappinessParameter is one of the four wellbeing tags a domain maps into.
type HappinessParameter string

const (
	PositiveEmotions        HappinessParameter = "PositiveEmotions"
	SocialBelonging         HappinessParameter = "SocialBelonging"
	EngagementPurpose       HappinessParameter = "EngagementPurpose"
	SatisfactionWithProgram HappinessParameter = "SatisfactionWithProgram"
)

// AllHappinessParameters is the fixed output order of every parameter list.
var AllHappinessParameters = []HappinessParameter{
	PositiveEmotions,
	SocialBelonging,
	EngagementPurpose,
	SatisfactionWithProgram,
}

func (p HappinessParameter) Valid() bool {
	for _, v := range AllHappinessParameters {
		if v == p {
			return true
		}
	}
	return false
}

// ParseHappinessParameter accepts the canonical value only.
func ParseHappinessParameter(s string) (HappinessParameter, error) {
	p := HappinessParameter(s)
	if !p.Valid() {
		return "", fmt.Errorf("unknown happiness parameter %q", s)
	}
	return p, nil
}

// Domain categories double as participant types: SpecialNeed participants are
// evaluated on SpecialNeed domains.
const (
	CategoryGeneral     = "General"
	CategorySpecialNeed = "SpecialNeed"
)

var AllCategories = []string{CategoryGeneral, CategorySpecialNeed}

const (
	GenderMale   = "Male"
	GenderFemale = "Female"
	GenderOther  = "Other"
)

// Ranking sizes used by the dashboard and the comparison report.
const (
	TopPerformersN = 3
	TopCentersN    = 4
	TopCohortsN    = 3
)
