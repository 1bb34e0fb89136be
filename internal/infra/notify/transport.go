package notify

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// Kind distinguishes full request notifications from the claim prompts
// and verification codes sent to unclaimed directory entries.
type Kind string

const (
	KindRFQAvailable      Kind = "rfq_available"
	KindClaimPrompt       Kind = "claim_prompt"
	KindClaimVerification Kind = "claim_verification"
)

type Message struct {
	SupplierID uuid.UUID
	RFQID      uuid.UUID
	Kind       Kind
	// Recipient overrides the supplier's registered address; used for
	// claim traffic where no account exists yet.
	Recipient string
	Subject   string
	// Body may carry secrets (verification codes) and must never be
	// logged.
	Body string
}

// LogTransport writes notifications to the structured log. Stands in
// for an email or webhook provider in development and tests.
type LogTransport struct {
	logger *slog.Logger
}

func NewLogTransport(logger *slog.Logger) *LogTransport {
	return &LogTransport{logger: logger}
}

func (t *LogTransport) Send(ctx context.Context, msg Message) error {
	t.logger.InfoContext(ctx, "notification sent",
		"supplier_id", msg.SupplierID,
		"rfq_id", msg.RFQID,
		"kind", string(msg.Kind),
		"subject", msg.Subject,
	)
	return nil
}
