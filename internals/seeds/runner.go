package seeds

import (
	"gorm.io/gorm"

	"wellness_backend/internals/configs"
	domains "wellness_backend/internals/seeds/domains"
)

func RunAllSeeds(db *gorm.DB) {

	//* Domain catalog
	if err := domains.SeedDomainsFromJSON(db, configs.DomainSeedFile); err != nil {
		configs.Log.WithError(err).Error("seeding domains failed")
	}

}
