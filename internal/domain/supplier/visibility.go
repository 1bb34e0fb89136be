package supplier

import "github.com/google/uuid"

type AccessLevel string

const (
	AccessFull         AccessLevel = "full"
	AccessOutreachOnly AccessLevel = "outreach_only"
)

// AnonymousLabel replaces the display name of every unclaimed supplier.
const AnonymousLabel = "Verified sustainable supplier (unclaimed)"

// Identity is the raw supplier identity as stored.
type Identity struct {
	ID           uuid.UUID
	DisplayName  string
	ContactEmail *string
	ContactPhone *string
	Tier         Tier
	Verified     bool
}

// PublicProfile is the only supplier shape that may leave the engine.
type PublicProfile struct {
	ID           uuid.UUID
	DisplayName  string
	ContactEmail *string
	ContactPhone *string
	Tier         Tier
	Verified     bool
	AccessLevel  AccessLevel
}

// Shape applies the anonymization rule at the data boundary. Shadow-tier
// suppliers get a generic label, no contact channels, and outreach-only
// access; everyone else passes through intact.
func Shape(id Identity) PublicProfile {
	if id.Tier.IsShadow() {
		return PublicProfile{
			ID:          id.ID,
			DisplayName: AnonymousLabel,
			Tier:        id.Tier,
			Verified:    false,
			AccessLevel: AccessOutreachOnly,
		}
	}
	return PublicProfile{
		ID:           id.ID,
		DisplayName:  id.DisplayName,
		ContactEmail: id.ContactEmail,
		ContactPhone: id.ContactPhone,
		Tier:         id.Tier,
		Verified:     id.Verified,
		AccessLevel:  AccessFull,
	}
}

// CanReceiveDirect reports whether a supplier may receive full request
// content. Shadow suppliers only ever get an outreach prompt and never
// count toward quota or wave assignment.
func CanReceiveDirect(t Tier) bool {
	return !t.IsShadow()
}
