package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type RFQView struct {
	ID                     uuid.UUID      `json:"id"`
	BuyerID                uuid.UUID      `json:"buyer_id"`
	Title                  string         `json:"title"`
	Description            *string        `json:"description,omitempty"`
	Category               *string        `json:"category,omitempty"`
	Materials              []string       `json:"materials"`
	CertificationsRequired []string       `json:"certifications_required"`
	ProjectAddress         *string        `json:"project_address,omitempty"`
	BudgetMaxCents         *int64         `json:"budget_max_cents,omitempty"`
	Deadline               *time.Time     `json:"deadline,omitempty"`
	Status                 string         `json:"status"`
	CreatedAt              time.Time      `json:"created_at"`
	Responses              []ResponseView `json:"responses,omitempty"`
}

type RFQListItem struct {
	ID        uuid.UUID  `json:"id"`
	Title     string     `json:"title"`
	Category  *string    `json:"category,omitempty"`
	Status    string     `json:"status"`
	Deadline  *time.Time `json:"deadline,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// ResponseView carries the shaped supplier identity: unclaimed suppliers
// appear under the anonymous label with contacts withheld.
type ResponseView struct {
	ID           uuid.UUID `json:"id"`
	SupplierID   uuid.UUID `json:"supplier_id"`
	SupplierName string    `json:"supplier_name"`
	ContactEmail *string   `json:"contact_email,omitempty"`
	Verified     bool      `json:"verified"`
	PriceCents   *int64    `json:"price_cents,omitempty"`
	LeadTimeDays *int32    `json:"lead_time_days,omitempty"`
	Message      string    `json:"message"`
	CreatedAt    time.Time `json:"created_at"`
}

// QueueEntryView is the buyer-facing picture of one queue entry.
type QueueEntryView struct {
	SupplierID    uuid.UUID       `json:"supplier_id"`
	SupplierName  string          `json:"supplier_name"`
	WaveNumber    int32           `json:"wave_number"`
	VisibleAt     time.Time       `json:"visible_at"`
	ExpiresAt     time.Time       `json:"expires_at"`
	Status        string          `json:"status"`
	AccessLevel   string          `json:"access_level"`
	MatchScore    float64         `json:"match_score"`
	PriorityScore float64         `json:"priority_score"`
	Breakdown     []ScoreComponent `json:"breakdown,omitempty"`
	DistanceKm    *float64        `json:"distance_km,omitempty"`
	WaveReason    *string         `json:"wave_reason,omitempty"`
}

type ScoreComponent struct {
	Name   string  `json:"name"`
	Points float64 `json:"points"`
	Max    float64 `json:"max"`
	Reason string  `json:"reason"`
}

type WaveStatusCount struct {
	WaveNumber int32  `json:"wave_number"`
	Status     string `json:"status"`
	Count      int64  `json:"count"`
}

type QueueStatusView struct {
	RFQID   uuid.UUID         `json:"rfq_id"`
	Waves   []WaveStatusCount `json:"waves"`
	Entries []QueueEntryView  `json:"entries,omitempty"`
}

// VisibleRFQItem is what a supplier sees in its inbox. Outreach-only
// entries carry no request content, only the claim prompt flag.
type VisibleRFQItem struct {
	RFQID                  uuid.UUID  `json:"rfq_id"`
	AccessLevel            string     `json:"access_level"`
	Status                 string     `json:"status"`
	VisibleAt              time.Time  `json:"visible_at"`
	ExpiresAt              time.Time  `json:"expires_at"`
	MatchScore             float64    `json:"match_score"`
	Title                  *string    `json:"title,omitempty"`
	Category               *string    `json:"category,omitempty"`
	Materials              []string   `json:"materials,omitempty"`
	CertificationsRequired []string   `json:"certifications_required,omitempty"`
	BudgetMaxCents         *int64     `json:"budget_max_cents,omitempty"`
	Deadline               *time.Time `json:"deadline,omitempty"`
	ClaimPrompt            bool       `json:"claim_prompt"`
}

type ClaimStatusView struct {
	ShadowID      uuid.UUID  `json:"shadow_id"`
	CompanyName   string     `json:"company_name"`
	ClaimedStatus string     `json:"claimed_status"`
	OptOutStatus  string     `json:"opt_out_status"`
	LockedUntil   *time.Time `json:"locked_until,omitempty"`
}

type ShadowProductView struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Category    *string   `json:"category,omitempty"`
	Description *string   `json:"description,omitempty"`
	Visibility  string    `json:"visibility"`
}

type ClaimAuditEntry struct {
	Action    string    `json:"action"`
	Actor     *string   `json:"actor,omitempty"`
	Success   bool      `json:"success"`
	Reason    *string   `json:"reason,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
