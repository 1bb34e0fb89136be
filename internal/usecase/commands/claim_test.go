//go:build unit

package commands_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"greenrfq/internal/domain/shadow"
	"greenrfq/internal/infra/notify"
	"greenrfq/internal/pkg/clock"
	"greenrfq/internal/pkg/config"
	"greenrfq/internal/usecase/commands"
	"greenrfq/internal/usecase/shared"
	"greenrfq/tests/common/builder"
	commandsmock "greenrfq/tests/mock/commands"
	sharedmock "greenrfq/tests/mock/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func claimTestConfig() config.ClaimConfig {
	return config.ClaimConfig{
		TokenExpiry:        72 * time.Hour,
		VerificationExpiry: time.Hour,
		LockoutDuration:    30 * time.Minute,
		MaxFailedAttempts:  5,
		MaxTokensPerDay:    3,
	}
}

// newClaimTxHarness wires a MockTx whose repositories the usecase can
// reach any number of times within a single Within closure.
func newClaimTxHarness(ctrl *gomock.Controller, uow *sharedmock.MockUnitOfWork) (*sharedmock.MockTx, *sharedmock.MockShadowRepository) {
	tx := sharedmock.NewMockTx(ctrl)
	shadows := sharedmock.NewMockShadowRepository(ctrl)
	tx.EXPECT().Shadows().Return(shadows).AnyTimes()
	tx.EXPECT().DB().Return(nil).AnyTimes()
	uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, tx)
		}).AnyTimes()
	return tx, shadows
}

func TestClaimUseCase_StartVerification(t *testing.T) {
	rawToken := "b64-opaque-claim-token"
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	t.Run("the code reaches the transport, never the result", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uow := sharedmock.NewMockUnitOfWork(ctrl)
		transport := commandsmock.NewMockNotifier(ctrl)
		_, shadows := newClaimTxHarness(ctrl, uow)

		shadowSnap := builder.NewShadowBuilder().WithEmail("owner@ecocrete.example").BuildSnapshot()
		tokenSnap := builder.NewShadowBuilder().WithID(shadowSnap.ID).BuildTokenSnapshot(now.Add(time.Hour))

		shadows.EXPECT().TokenByHashForUpdate(gomock.Any(), gomock.Any(), shadow.HashToken(rawToken)).
			Return(tokenSnap, nil)
		shadows.EXPECT().GetForUpdate(gomock.Any(), gomock.Any(), shadowSnap.ID).
			Return(shadowSnap, nil)
		shadows.EXPECT().SetPendingVerification(gomock.Any(), gomock.Any(), shadowSnap.ID).
			Return(true, nil)

		var issuedCode string
		shadows.EXPECT().SetVerificationCode(gomock.Any(), gomock.Any(), tokenSnap.ID, gomock.Any(), now.Add(time.Hour)).
			DoAndReturn(func(_ context.Context, _ any, _ any, code string, _ time.Time) (bool, error) {
				issuedCode = code
				return true, nil
			})
		shadows.EXPECT().AppendAudit(gomock.Any(), gomock.Any(), shadowSnap.ID, "token_validated", "claimant", true, "").
			Return(nil)

		var sent notify.Message
		transport.EXPECT().Send(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, msg notify.Message) error {
				sent = msg
				return nil
			})

		uc := commands.NewClaimUseCase(uow, transport, claimTestConfig(), clock.NewMockClock(now))
		result, err := uc.StartVerification(context.Background(), rawToken, "claimant")
		require.NoError(t, err)

		require.Len(t, issuedCode, 6)
		assert.Equal(t, notify.KindClaimVerification, sent.Kind)
		assert.Equal(t, "owner@ecocrete.example", sent.Recipient)
		assert.True(t, strings.Contains(sent.Body, issuedCode), "the delivered message must carry the code")

		assert.Equal(t, shadowSnap.ID, result.ShadowID)
		assert.Equal(t, now.Add(time.Hour), result.ExpiresAt)
	})

	t.Run("transport failure surfaces as a notification error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uow := sharedmock.NewMockUnitOfWork(ctrl)
		transport := commandsmock.NewMockNotifier(ctrl)
		_, shadows := newClaimTxHarness(ctrl, uow)

		shadowSnap := builder.NewShadowBuilder().BuildSnapshot()
		tokenSnap := builder.NewShadowBuilder().WithID(shadowSnap.ID).BuildTokenSnapshot(now.Add(time.Hour))

		shadows.EXPECT().TokenByHashForUpdate(gomock.Any(), gomock.Any(), gomock.Any()).Return(tokenSnap, nil)
		shadows.EXPECT().GetForUpdate(gomock.Any(), gomock.Any(), shadowSnap.ID).Return(shadowSnap, nil)
		shadows.EXPECT().SetPendingVerification(gomock.Any(), gomock.Any(), shadowSnap.ID).Return(true, nil)
		shadows.EXPECT().SetVerificationCode(gomock.Any(), gomock.Any(), tokenSnap.ID, gomock.Any(), gomock.Any()).Return(true, nil)
		shadows.EXPECT().AppendAudit(gomock.Any(), gomock.Any(), shadowSnap.ID, "token_validated", "claimant", true, "").Return(nil)

		transport.EXPECT().Send(gomock.Any(), gomock.Any()).Return(errors.New("smtp unreachable"))

		uc := commands.NewClaimUseCase(uow, transport, claimTestConfig(), clock.NewMockClock(now))
		result, err := uc.StartVerification(context.Background(), rawToken, "claimant")
		require.Nil(t, result)
		assert.ErrorIs(t, err, commands.ErrNotificationFailed)
	})

	t.Run("expired token still counts a failed attempt", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uow := sharedmock.NewMockUnitOfWork(ctrl)
		transport := commandsmock.NewMockNotifier(ctrl)
		_, shadows := newClaimTxHarness(ctrl, uow)

		shadowSnap := builder.NewShadowBuilder().BuildSnapshot()
		tokenSnap := builder.NewShadowBuilder().WithID(shadowSnap.ID).BuildTokenSnapshot(now.Add(-time.Minute))

		shadows.EXPECT().TokenByHashForUpdate(gomock.Any(), gomock.Any(), gomock.Any()).Return(tokenSnap, nil)
		shadows.EXPECT().GetForUpdate(gomock.Any(), gomock.Any(), shadowSnap.ID).Return(shadowSnap, nil)
		shadows.EXPECT().UpdateClaimAttempts(gomock.Any(), gomock.Any(), shadowSnap.ID, int32(1), gomock.Nil()).Return(nil)
		shadows.EXPECT().AppendAudit(gomock.Any(), gomock.Any(), shadowSnap.ID, "code_rejected", "claimant", false, gomock.Any()).Return(nil)

		uc := commands.NewClaimUseCase(uow, transport, claimTestConfig(), clock.NewMockClock(now))
		_, err := uc.StartVerification(context.Background(), rawToken, "claimant")
		assert.ErrorIs(t, err, shadow.ErrTokenExpired)
	})
}
