package response

import (
	"greenrfq/internal/usecase/commands"
	"greenrfq/internal/usecase/queries"
)

type RFQResponse struct {
	ID                     string              `json:"id"`
	Title                  string              `json:"title"`
	Description            *string             `json:"description,omitempty"`
	Category               *string             `json:"category,omitempty"`
	Materials              []string            `json:"materials"`
	CertificationsRequired []string            `json:"certifications_required"`
	ProjectAddress         *string             `json:"project_address,omitempty"`
	BudgetMaxCents         *int64              `json:"budget_max_cents,omitempty"`
	Deadline               *int64              `json:"deadline,omitempty"`
	Status                 string              `json:"status"`
	CreatedAt              int64               `json:"created_at"`
	Responses              []SupplierQuoteItem `json:"responses,omitempty"`
}

type SupplierQuoteItem struct {
	ID           string  `json:"id"`
	SupplierID   string  `json:"supplier_id"`
	SupplierName string  `json:"supplier_name"`
	ContactEmail *string `json:"contact_email,omitempty"`
	Verified     bool    `json:"verified"`
	PriceCents   *int64  `json:"price_cents,omitempty"`
	LeadTimeDays *int32  `json:"lead_time_days,omitempty"`
	Message      string  `json:"message"`
	CreatedAt    int64   `json:"created_at"`
}

func FromRFQView(v *queries.RFQView) *RFQResponse {
	resp := &RFQResponse{
		ID:                     v.ID.String(),
		Title:                  v.Title,
		Description:            v.Description,
		Category:               v.Category,
		Materials:              v.Materials,
		CertificationsRequired: v.CertificationsRequired,
		ProjectAddress:         v.ProjectAddress,
		BudgetMaxCents:         v.BudgetMaxCents,
		Status:                 v.Status,
		CreatedAt:              v.CreatedAt.Unix(),
	}
	if v.Deadline != nil {
		deadline := v.Deadline.Unix()
		resp.Deadline = &deadline
	}
	resp.Responses = make([]SupplierQuoteItem, len(v.Responses))
	for i, r := range v.Responses {
		resp.Responses[i] = SupplierQuoteItem{
			ID:           r.ID.String(),
			SupplierID:   r.SupplierID.String(),
			SupplierName: r.SupplierName,
			ContactEmail: r.ContactEmail,
			Verified:     r.Verified,
			PriceCents:   r.PriceCents,
			LeadTimeDays: r.LeadTimeDays,
			Message:      r.Message,
			CreatedAt:    r.CreatedAt.Unix(),
		}
	}
	return resp
}

type RFQListItemResponse struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	Category  *string `json:"category,omitempty"`
	Status    string  `json:"status"`
	Deadline  *int64  `json:"deadline,omitempty"`
	CreatedAt int64   `json:"created_at"`
}

func FromRFQList(items []*queries.RFQListItem) []*RFQListItemResponse {
	res := make([]*RFQListItemResponse, len(items))
	for i, it := range items {
		item := &RFQListItemResponse{
			ID:        it.ID.String(),
			Title:     it.Title,
			Category:  it.Category,
			Status:    it.Status,
			CreatedAt: it.CreatedAt.Unix(),
		}
		if it.Deadline != nil {
			deadline := it.Deadline.Unix()
			item.Deadline = &deadline
		}
		res[i] = item
	}
	return res
}

type DistributionSummary struct {
	Admitted       int           `json:"admitted"`
	SkippedByQuota int           `json:"skipped_by_quota"`
	ShadowCount    int           `json:"shadow_count"`
	WaveBreakdown  map[int32]int `json:"wave_breakdown"`
}

type CreateRFQResponse struct {
	ID           string               `json:"id"`
	Distribution *DistributionSummary `json:"distribution,omitempty"`
}

func FromDistributeResult(r *commands.DistributeResult) *DistributionSummary {
	return &DistributionSummary{
		Admitted:       r.Admitted,
		SkippedByQuota: r.SkippedByQuota,
		ShadowCount:    r.ShadowCount,
		WaveBreakdown:  r.WaveBreakdown,
	}
}

func FromCreateRFQResult(r *commands.CreateRFQResult) *CreateRFQResponse {
	resp := &CreateRFQResponse{ID: r.RFQID.String()}
	if r.Distribution != nil {
		resp.Distribution = FromDistributeResult(r.Distribution)
	}
	return resp
}

type SubmitResponseResponse struct {
	ResponseID string `json:"response_id"`
}
