package response

import (
	"time"

	"turnera/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ProviderResponse struct {
	ID           uuid.UUID `json:"id"`
	OwnerID      uuid.UUID `json:"ownerId"`
	BusinessName string    `json:"businessName"`
	Description  *string   `json:"description,omitempty"`
	Category     *string   `json:"category,omitempty"`
	Address      *string   `json:"address,omitempty"`
	Phone        *string   `json:"phone,omitempty"`
	Instagram    *string   `json:"instagram,omitempty"`
	Website      *string   `json:"website,omitempty"`
	ContactEmail *string   `json:"contactEmail,omitempty"`
	TaxID        *string   `json:"taxId,omitempty"`
	Code         string    `json:"code"`
	CreatedAt    time.Time `json:"createdAt"`
}

// PublicProviderResponse is the by-code view; it leaves out the owner and tax id.
type PublicProviderResponse struct {
	ID           uuid.UUID `json:"id"`
	BusinessName string    `json:"businessName"`
	Description  *string   `json:"description,omitempty"`
	Category     *string   `json:"category,omitempty"`
	Address      *string   `json:"address,omitempty"`
	Phone        *string   `json:"phone,omitempty"`
	Instagram    *string   `json:"instagram,omitempty"`
	Website      *string   `json:"website,omitempty"`
	Code         string    `json:"code"`
}

type ProviderCodeResponse struct {
	ProviderID uuid.UUID `json:"providerId"`
	Code       string    `json:"code"`
}

func FromProviderView(v *queries.ProviderView) *ProviderResponse {
	res := &ProviderResponse{}
	_ = copier.Copy(res, v)
	return res
}

func FromProviderViewPublic(v *queries.ProviderView) *PublicProviderResponse {
	res := &PublicProviderResponse{}
	_ = copier.Copy(res, v)
	return res
}
