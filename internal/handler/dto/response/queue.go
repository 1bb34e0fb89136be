package response

import (
	"github.com/jinzhu/copier"

	"greenrfq/internal/usecase/queries"
)

type ScoreComponentItem struct {
	Name   string  `json:"name"`
	Points float64 `json:"points"`
	Max    float64 `json:"max"`
	Reason string  `json:"reason"`
}

type QueueEntryItem struct {
	SupplierID    string               `json:"supplier_id"`
	SupplierName  string               `json:"supplier_name"`
	WaveNumber    int32                `json:"wave_number"`
	VisibleAt     int64                `json:"visible_at"`
	ExpiresAt     int64                `json:"expires_at"`
	Status        string               `json:"status"`
	AccessLevel   string               `json:"access_level"`
	MatchScore    float64              `json:"match_score"`
	PriorityScore float64              `json:"priority_score"`
	Breakdown     []ScoreComponentItem `json:"breakdown,omitempty"`
	DistanceKm    *float64             `json:"distance_km,omitempty"`
	WaveReason    *string              `json:"wave_reason,omitempty"`
}

type WaveStatusCountItem struct {
	WaveNumber int32  `json:"wave_number"`
	Status     string `json:"status"`
	Count      int64  `json:"count"`
}

type QueueStatusResponse struct {
	RFQID   string                `json:"rfq_id"`
	Waves   []WaveStatusCountItem `json:"waves"`
	Entries []QueueEntryItem      `json:"entries,omitempty"`
}

func FromQueueStatusView(v *queries.QueueStatusView) *QueueStatusResponse {
	resp := &QueueStatusResponse{
		RFQID: v.RFQID.String(),
		Waves: make([]WaveStatusCountItem, len(v.Waves)),
	}
	// Field-aligned structs; copier fills everything but the ID and
	// timestamp conversions.
	_ = copier.Copy(&resp.Waves, v.Waves)

	resp.Entries = make([]QueueEntryItem, len(v.Entries))
	for i, e := range v.Entries {
		item := QueueEntryItem{
			SupplierID: e.SupplierID.String(),
			VisibleAt:  e.VisibleAt.Unix(),
			ExpiresAt:  e.ExpiresAt.Unix(),
		}
		_ = copier.Copy(&item, e)
		resp.Entries[i] = item
	}
	return resp
}

type InboxItemResponse struct {
	RFQID                  string   `json:"rfq_id"`
	AccessLevel            string   `json:"access_level"`
	Status                 string   `json:"status"`
	VisibleAt              int64    `json:"visible_at"`
	ExpiresAt              int64    `json:"expires_at"`
	MatchScore             float64  `json:"match_score"`
	Title                  *string  `json:"title,omitempty"`
	Category               *string  `json:"category,omitempty"`
	Materials              []string `json:"materials,omitempty"`
	CertificationsRequired []string `json:"certifications_required,omitempty"`
	BudgetMaxCents         *int64   `json:"budget_max_cents,omitempty"`
	Deadline               *int64   `json:"deadline,omitempty"`
	ClaimPrompt            bool     `json:"claim_prompt"`
}

func FromInboxItems(items []*queries.VisibleRFQItem) []*InboxItemResponse {
	res := make([]*InboxItemResponse, len(items))
	for i, it := range items {
		item := &InboxItemResponse{
			RFQID:     it.RFQID.String(),
			VisibleAt: it.VisibleAt.Unix(),
			ExpiresAt: it.ExpiresAt.Unix(),
		}
		_ = copier.Copy(item, it)
		if it.Deadline != nil {
			deadline := it.Deadline.Unix()
			item.Deadline = &deadline
		}
		res[i] = item
	}
	return res
}
