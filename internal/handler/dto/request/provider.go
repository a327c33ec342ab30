package request

import (
	"turnera/internal/domain/provider"
	"turnera/internal/pkg/patch"
	"turnera/internal/usecase/queries"
)

type ActivateProviderRequest struct {
	BusinessName string  `json:"businessName" binding:"required,max=200"`
	Description  *string `json:"description" binding:"omitempty,max=2000"`
	Category     *string `json:"category" binding:"omitempty,max=100"`
	Address      *string `json:"address" binding:"omitempty,max=300"`
	Phone        *string `json:"phone" binding:"omitempty,max=50"`
	Instagram    *string `json:"instagram" binding:"omitempty,max=100"`
	Website      *string `json:"website" binding:"omitempty,max=300"`
	ContactEmail *string `json:"contactEmail" binding:"omitempty,email"`
	TaxID        *string `json:"taxId" binding:"omitempty,max=50"`
}

func (r *ActivateProviderRequest) ToDomain() provider.Profile {
	return provider.Profile{
		BusinessName: r.BusinessName,
		Description:  r.Description,
		Category:     r.Category,
		Address:      r.Address,
		Phone:        r.Phone,
		Instagram:    r.Instagram,
		Website:      r.Website,
		ContactEmail: r.ContactEmail,
		TaxID:        r.TaxID,
	}
}

// UpdateProviderRequest is a partial update; absent fields keep their value.
type UpdateProviderRequest struct {
	BusinessName *string `json:"businessName" binding:"omitempty,max=200"`
	Description  *string `json:"description" binding:"omitempty,max=2000"`
	Category     *string `json:"category" binding:"omitempty,max=100"`
	Address      *string `json:"address" binding:"omitempty,max=300"`
	Phone        *string `json:"phone" binding:"omitempty,max=50"`
	Instagram    *string `json:"instagram" binding:"omitempty,max=100"`
	Website      *string `json:"website" binding:"omitempty,max=300"`
	ContactEmail *string `json:"contactEmail" binding:"omitempty,email"`
	TaxID        *string `json:"taxId" binding:"omitempty,max=50"`
}

func (r *UpdateProviderRequest) ToDomain(existing *queries.ProviderView) provider.Profile {
	return provider.Profile{
		BusinessName: patch.Value(r.BusinessName, existing.BusinessName),
		Description:  patch.Optional(r.Description, existing.Description),
		Category:     patch.Optional(r.Category, existing.Category),
		Address:      patch.Optional(r.Address, existing.Address),
		Phone:        patch.Optional(r.Phone, existing.Phone),
		Instagram:    patch.Optional(r.Instagram, existing.Instagram),
		Website:      patch.Optional(r.Website, existing.Website),
		ContactEmail: patch.Optional(r.ContactEmail, existing.ContactEmail),
		TaxID:        patch.Optional(r.TaxID, existing.TaxID),
	}
}
