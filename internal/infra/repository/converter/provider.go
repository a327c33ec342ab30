package converter

import (
	"turnera/internal/domain/provider"
	"turnera/internal/infra/query"
	"turnera/internal/pkg/pgconv"
)

func ProviderToInfra(p *provider.Provider) query.CreateProviderParams {
	return query.CreateProviderParams{
		ID:                    p.ID(),
		OwnerID:               p.OwnerID(),
		Code:                  p.Code().Value(),
		ProviderProfileParams: ProfileToInfra(p.Profile()),
	}
}

func ProfileToInfra(profile provider.Profile) query.ProviderProfileParams {
	return query.ProviderProfileParams{
		BusinessName: profile.BusinessName,
		Description:  pgconv.StringPtrToPgtype(profile.Description),
		Category:     pgconv.StringPtrToPgtype(profile.Category),
		Address:      pgconv.StringPtrToPgtype(profile.Address),
		Phone:        pgconv.StringPtrToPgtype(profile.Phone),
		Instagram:    pgconv.StringPtrToPgtype(profile.Instagram),
		Website:      pgconv.StringPtrToPgtype(profile.Website),
		ContactEmail: pgconv.StringPtrToPgtype(profile.ContactEmail),
		TaxID:        pgconv.StringPtrToPgtype(profile.TaxID),
	}
}
