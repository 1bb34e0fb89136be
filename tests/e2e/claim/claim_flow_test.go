//go:build e2e

package claim_test

import (
	"net/http"
	"testing"

	"greenrfq/internal/domain/actor"
	"greenrfq/internal/handler/dto/response"
	"greenrfq/tests/common/authtest"
	"greenrfq/tests/common/dbtest"
	"greenrfq/tests/common/httptest"
	"greenrfq/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const claimsURL = "/api/claims"

type ClaimSuite struct {
	e2e.SharedSuite
	jwt *authtest.JWTHelper
}

func (s *ClaimSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwt = authtest.NewJWTHelper(s.Config.JWT)
}

func TestClaimSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(ClaimSuite))
}

// adminToken signs a short-lived operator token; claim tokens are only
// minted by operators.
func (s *ClaimSuite) adminToken() string {
	return s.jwt.GenerateToken(s.T(), uuid.New(), actor.RoleAdmin)
}

func (s *ClaimSuite) createShadow(email string) (uuid.UUID, uuid.UUID) {
	t := s.T()
	supplierID := dbtest.CreateTestSupplier(t, s.DB, email, "scraped")
	shadowID := dbtest.CreateTestShadow(t, s.DB, supplierID, "Shadow "+email, email)
	return supplierID, shadowID
}

// verificationCode reads the code the claim flow would normally deliver
// out of band.
func (s *ClaimSuite) verificationCode(shadowID uuid.UUID) string {
	t := s.T()
	var code string
	err := s.DB.QueryRow(t.Context(),
		`SELECT verification_code FROM shadow_claim_tokens
		 WHERE shadow_supplier_id = $1 AND verification_code IS NOT NULL
		 ORDER BY created_at DESC LIMIT 1`, shadowID).Scan(&code)
	require.NoError(t, err)
	return code
}

// =============================================================================
// TestClaimFlow - token, verification, account creation
// =============================================================================

func (s *ClaimSuite) TestClaimFlow() {
	s.Run("Normal case: full claim flow converts the shadow profile", func() {
		t := s.T()

		_, shadowID := s.createShadow("shadow1@example.com")

		// Profile starts out claimable
		sw := httptest.PerformRequest(t, s.Router, http.MethodGet, claimsURL+"/"+shadowID.String(), nil, "")
		require.Equal(t, http.StatusOK, sw.Code)

		var status response.ClaimStatusResponse
		require.NoError(t, httptest.DecodeResponseBody(t, sw.Body, &status))
		require.Equal(t, "unclaimed", status.ClaimedStatus)
		require.Equal(t, "active", status.OptOutStatus)

		// Token issuance is operator-only
		uw := httptest.PerformRequest(t, s.Router, http.MethodPost, claimsURL+"/"+shadowID.String()+"/token", nil, "")
		require.Equal(t, http.StatusUnauthorized, uw.Code)

		tw := httptest.PerformRequest(t, s.Router, http.MethodPost, claimsURL+"/"+shadowID.String()+"/token", nil, s.adminToken())
		require.Equal(t, http.StatusCreated, tw.Code)

		var issued response.ClaimTokenResponse
		require.NoError(t, httptest.DecodeResponseBody(t, tw.Body, &issued))
		require.NotEmpty(t, issued.Token)

		// Start verification; the code never appears in the response
		vw := httptest.PerformRequest(t, s.Router, http.MethodPost, claimsURL+"/verify",
			map[string]any{"token": issued.Token}, "")
		require.Equal(t, http.StatusOK, vw.Code)

		var started map[string]any
		require.NoError(t, httptest.DecodeResponseBody(t, vw.Body, &started))
		require.NotContains(t, started, "code")

		code := s.verificationCode(shadowID)
		require.Len(t, code, 6)

		// Complete the claim with a fresh account
		cw := httptest.PerformRequest(t, s.Router, http.MethodPost, claimsURL+"/complete", map[string]any{
			"token":    issued.Token,
			"code":     code,
			"email":    "owner1@example.com",
			"password": "str0ng-passphrase",
		}, "")
		require.Equal(t, http.StatusOK, cw.Code)

		var completed response.CompleteClaimResponse
		require.NoError(t, httptest.DecodeResponseBody(t, cw.Body, &completed))
		require.Equal(t, shadowID.String(), completed.ShadowID)
		require.NotEmpty(t, completed.SupplierID)

		// The shadow record now links to the claimed account
		var claimedStatus string
		var linkedID uuid.UUID
		require.NoError(t, s.DB.QueryRow(t.Context(),
			"SELECT claimed_status, linked_supplier_id FROM shadow_suppliers WHERE id = $1", shadowID).
			Scan(&claimedStatus, &linkedID))
		require.Equal(t, "claimed", claimedStatus)
		require.Equal(t, completed.SupplierID, linkedID.String())

		// A second token request on a claimed profile fails
		tw2 := httptest.PerformRequest(t, s.Router, http.MethodPost, claimsURL+"/"+shadowID.String()+"/token", nil, s.adminToken())
		require.Equal(t, http.StatusConflict, tw2.Code)
	})

	s.Run("Error case: wrong verification codes eventually lock the profile", func() {
		t := s.T()

		_, shadowID := s.createShadow("shadow2@example.com")

		tw := httptest.PerformRequest(t, s.Router, http.MethodPost, claimsURL+"/"+shadowID.String()+"/token", nil, s.adminToken())
		require.Equal(t, http.StatusCreated, tw.Code)

		var issued response.ClaimTokenResponse
		require.NoError(t, httptest.DecodeResponseBody(t, tw.Body, &issued))

		vw := httptest.PerformRequest(t, s.Router, http.MethodPost, claimsURL+"/verify",
			map[string]any{"token": issued.Token}, "")
		require.Equal(t, http.StatusOK, vw.Code)

		// Derive a code that is guaranteed not to match the real one.
		wrongCode := "000000"
		if s.verificationCode(shadowID) == wrongCode {
			wrongCode = "000001"
		}
		attempt := map[string]any{
			"token":    issued.Token,
			"code":     wrongCode,
			"email":    "owner2@example.com",
			"password": "str0ng-passphrase",
		}

		// MaxFailedAttempts is 5
		for i := 0; i < 5; i++ {
			cw := httptest.PerformRequest(t, s.Router, http.MethodPost, claimsURL+"/complete", attempt, "")
			require.Equal(t, http.StatusBadRequest, cw.Code)
		}

		cw := httptest.PerformRequest(t, s.Router, http.MethodPost, claimsURL+"/complete", attempt, "")
		require.Equal(t, http.StatusTooManyRequests, cw.Code, "profile should now be locked")

		var lockedStatus response.ClaimStatusResponse
		sw := httptest.PerformRequest(t, s.Router, http.MethodGet, claimsURL+"/"+shadowID.String(), nil, "")
		require.Equal(t, http.StatusOK, sw.Code)
		require.NoError(t, httptest.DecodeResponseBody(t, sw.Body, &lockedStatus))
		require.NotNil(t, lockedStatus.LockedUntil)
	})

	s.Run("Error case: token requests stop after the daily limit", func() {
		t := s.T()

		_, shadowID := s.createShadow("shadow3@example.com")
		url := claimsURL + "/" + shadowID.String() + "/token"

		for i := 0; i < 3; i++ {
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, url, nil, s.adminToken())
			require.Equal(t, http.StatusCreated, w.Code)
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, url, nil, s.adminToken())
		require.Equal(t, http.StatusTooManyRequests, w.Code)
	})

	s.Run("Error case: unknown shadow profile", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, claimsURL+"/"+uuid.NewString()+"/token", nil, s.adminToken())
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

// =============================================================================
// TestOptOut - removal requests
// =============================================================================

func (s *ClaimSuite) TestOptOut() {
	s.Run("Normal case: opt-out invalidates outstanding tokens", func() {
		t := s.T()

		_, shadowID := s.createShadow("shadow4@example.com")

		tw := httptest.PerformRequest(t, s.Router, http.MethodPost, claimsURL+"/"+shadowID.String()+"/token", nil, s.adminToken())
		require.Equal(t, http.StatusCreated, tw.Code)

		var issued response.ClaimTokenResponse
		require.NoError(t, httptest.DecodeResponseBody(t, tw.Body, &issued))

		ow := httptest.PerformRequest(t, s.Router, http.MethodPost, claimsURL+"/"+shadowID.String()+"/opt-out",
			map[string]any{"reason": "no longer trading"}, "")
		require.Equal(t, http.StatusNoContent, ow.Code)

		// Outstanding token is dead
		vw := httptest.PerformRequest(t, s.Router, http.MethodPost, claimsURL+"/verify",
			map[string]any{"token": issued.Token}, "")
		require.Equal(t, http.StatusBadRequest, vw.Code)

		// New tokens are refused
		tw2 := httptest.PerformRequest(t, s.Router, http.MethodPost, claimsURL+"/"+shadowID.String()+"/token", nil, s.adminToken())
		require.Equal(t, http.StatusConflict, tw2.Code)

		var status response.ClaimStatusResponse
		sw := httptest.PerformRequest(t, s.Router, http.MethodGet, claimsURL+"/"+shadowID.String(), nil, "")
		require.Equal(t, http.StatusOK, sw.Code)
		require.NoError(t, httptest.DecodeResponseBody(t, sw.Body, &status))
		require.Equal(t, "opted_out", status.OptOutStatus)
	})

	s.Run("Normal case: opting out twice is a no-op", func() {
		t := s.T()

		_, shadowID := s.createShadow("shadow5@example.com")
		url := claimsURL + "/" + shadowID.String() + "/opt-out"

		w1 := httptest.PerformRequest(t, s.Router, http.MethodPost, url, nil, "")
		require.Equal(t, http.StatusNoContent, w1.Code)

		w2 := httptest.PerformRequest(t, s.Router, http.MethodPost, url, nil, "")
		require.Equal(t, http.StatusNoContent, w2.Code)
	})
}
