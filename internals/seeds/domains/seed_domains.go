package domains

import (
	"fmt"
	"os"

	"github.com/bytedance/sonic"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"wellness_backend/internals/configs"
	"wellness_backend/internals/constants"
	"wellness_backend/internals/features/programs/domains/model"
)

type DomainSeed struct {
	Name                string   `json:"name"`
	Category            string   `json:"category"`
	SubTopics           []string `json:"sub_topics"`
	HappinessParameters []string `json:"happiness_parameters"`
}

// SeedDomainsFromJSON inserts catalog entries whose name is not taken yet.
func SeedDomainsFromJSON(db *gorm.DB, filePath string) error {
	configs.Log.Infof("reading domain seed file %s", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("read %s: %w", filePath, err)
	}

	var seeds []DomainSeed
	if err := sonic.Unmarshal(file, &seeds); err != nil {
		return fmt.Errorf("decode %s: %w", filePath, err)
	}

	var existing []string
	if err := db.Model(&model.DomainModel{}).Pluck("domain_name", &existing).Error; err != nil {
		return fmt.Errorf("load existing domains: %w", err)
	}
	taken := make(map[string]bool, len(existing))
	for _, n := range existing {
		taken[n] = true
	}

	var rows []model.DomainModel
	for _, s := range seeds {
		if taken[s.Name] {
			configs.Log.Debugf("domain %q already exists, skipped", s.Name)
			continue
		}
		for _, p := range s.HappinessParameters {
			if _, err := constants.ParseHappinessParameter(p); err != nil {
				return fmt.Errorf("domain %q: %w", s.Name, err)
			}
		}
		subs := make([]model.SubTopic, 0, len(s.SubTopics))
		for _, st := range s.SubTopics {
			subs = append(subs, model.SubTopic{Content: st})
		}
		rows = append(rows, model.DomainModel{
			DomainName:                s.Name,
			DomainCategory:            s.Category,
			DomainSubTopics:           subs,
			DomainHappinessParameters: pq.StringArray(s.HappinessParameters),
		})
		taken[s.Name] = true
	}

	if len(rows) == 0 {
		configs.Log.Info("no new domains to seed")
		return nil
	}
	if err := db.Create(&rows).Error; err != nil {
		return fmt.Errorf("insert domains: %w", err)
	}
	configs.Log.Infof("seeded %d domains", len(rows))
	return nil
}
