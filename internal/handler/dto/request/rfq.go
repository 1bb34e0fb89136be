package request

import (
	"time"

	"greenrfq/internal/pkg/patch"
	"greenrfq/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateRFQRequest struct {
	Title                  string      `json:"title" binding:"required,max=200"`
	Description            string      `json:"description" binding:"max=5000"`
	Category               string      `json:"category" binding:"max=100"`
	Materials              []string    `json:"materials" binding:"max=50"`
	CertificationsRequired []string    `json:"certifications_required" binding:"max=20"`
	Latitude               *float64    `json:"latitude" binding:"omitempty,min=-90,max=90"`
	Longitude              *float64    `json:"longitude" binding:"omitempty,min=-180,max=180"`
	ProjectAddress         string      `json:"project_address" binding:"max=500"`
	BudgetMaxCents         *int64      `json:"budget_max_cents" binding:"omitempty,min=0"`
	Deadline               *time.Time  `json:"deadline"`
	DirectInvites          []uuid.UUID `json:"direct_invites" binding:"max=50"`
	UseEntitlements        *bool       `json:"use_entitlements"`
}

func (r *CreateRFQRequest) ToInput(buyerID uuid.UUID) commands.CreateRFQInput {
	return commands.CreateRFQInput{
		BuyerID:                buyerID,
		Title:                  r.Title,
		Description:            r.Description,
		Category:               r.Category,
		Materials:              r.Materials,
		CertificationsRequired: r.CertificationsRequired,
		Latitude:               r.Latitude,
		Longitude:              r.Longitude,
		ProjectAddress:         r.ProjectAddress,
		BudgetMaxCents:         r.BudgetMaxCents,
		Deadline:               r.Deadline,
		DirectInvites:          r.DirectInvites,
		UseEntitlements:        patch.Coalesce(r.UseEntitlements, true),
	}
}

// DistributeRequest tunes a distribution run. Omitted flags fall back
// to the behavior used when an RFQ is first created.
type DistributeRequest struct {
	UseEntitlements *bool       `json:"use_entitlements"`
	EnforceQuotas   *bool       `json:"enforce_quotas"`
	Limit           int32       `json:"limit" binding:"omitempty,min=1,max=500"`
	DirectInvites   []uuid.UUID `json:"direct_invites" binding:"max=50"`
}

func (r *DistributeRequest) ToInput(rfqID uuid.UUID) commands.DistributeInput {
	useEntitlements := patch.Coalesce(r.UseEntitlements, true)
	return commands.DistributeInput{
		RFQID:           rfqID,
		UseEntitlements: useEntitlements,
		EnforceQuotas:   patch.Coalesce(r.EnforceQuotas, useEntitlements),
		Limit:           r.Limit,
		DirectInvites:   r.DirectInvites,
	}
}

type SubmitResponseRequest struct {
	PriceCents   *int64 `json:"price_cents" binding:"omitempty,min=0"`
	LeadTimeDays *int32 `json:"lead_time_days" binding:"omitempty,min=0"`
	Message      string `json:"message" binding:"required,max=5000"`
}

func (r *SubmitResponseRequest) ToInput(rfqID, supplierID uuid.UUID) commands.SubmitResponseInput {
	return commands.SubmitResponseInput{
		RFQID:        rfqID,
		SupplierID:   supplierID,
		PriceCents:   r.PriceCents,
		LeadTimeDays: r.LeadTimeDays,
		Message:      r.Message,
	}
}
