//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"greenrfq/internal/domain/actor"
	"greenrfq/internal/domain/shadow"
	"greenrfq/internal/handler/api"
	resdto "greenrfq/internal/handler/dto/response"
	"greenrfq/internal/usecase/commands"
	"greenrfq/internal/usecase/queries"
	"greenrfq/tests/common/builder"
	"greenrfq/tests/common/httptest"
	"greenrfq/tests/common/testutil"
	commandsmock "greenrfq/tests/mock/commands"
	queriesmock "greenrfq/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ClaimHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockClaimCommands
	mockQueries  *queriesmock.MockShadowQueries
	handler      *api.ClaimHandler
}

func (s *ClaimHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockClaimCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockShadowQueries(s.mockCtrl)
	s.handler = api.NewClaimHandler(s.mockCommands, s.mockQueries)

	// Mock authentication middleware for testing
	adminMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("actor_id", uuid.New())
		c.Set("actor_role", actor.RoleAdmin)
		c.Next()
	}

	// Claim endpoints are public except token issuance, which mints a
	// claim credential and stays behind the operator gate.
	s.router.GET("/claims/:id", s.handler.Status)
	s.router.POST("/claims/:id/token", adminMiddleware, s.handler.RequestToken)
	s.router.POST("/claims/:id/opt-out", s.handler.OptOut)
	s.router.POST("/claims/verify", s.handler.StartVerification)
	s.router.POST("/claims/complete", s.handler.Complete)
}

func (s *ClaimHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestClaimHandlerSuite(t *testing.T) {
	suite.Run(t, new(ClaimHandlerTestSuite))
}

// ================================================================================
// TestRequestToken
// ================================================================================

func (s *ClaimHandlerTestSuite) TestRequestToken() {
	shadowID := uuid.New()
	url := "/claims/" + shadowID.String() + "/token"

	expiresAt := time.Now().Add(72 * time.Hour)
	expectedResult := &commands.ClaimTokenResult{
		ShadowID:  shadowID,
		RawToken:  "b64-opaque-claim-token",
		ExpiresAt: expiresAt,
	}

	s.Run("success: returns 201 Created with the raw token", func() {
		s.mockCommands.EXPECT().RequestClaim(gomock.Any(), shadowID, gomock.Any()).
			Return(expectedResult, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "admin-token")

		var body resdto.ClaimTokenResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(shadowID.String(), body.ShadowID)
		s.Equal("b64-opaque-claim-token", body.Token)
		s.Equal(expiresAt.Unix(), body.ExpiresAt)
	})

	s.Run("error: 401 Unauthorized without a bearer token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/claims/not-a-uuid/token", nil, "admin-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: maps claim errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "shadow profile not found",
				commandsError:  commands.ErrShadowNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Not found",
			},
			{
				name:           "profile already claimed",
				commandsError:  shadow.ErrAlreadyClaimed,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Profile already claimed",
			},
			{
				name:           "profile opted out",
				commandsError:  shadow.ErrOptedOut,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Profile opted out",
			},
			{
				name:           "token limit reached",
				commandsError:  shadow.ErrTokenLimitReached,
				expectedStatus: http.StatusTooManyRequests,
				expectedMsg:    "Token limit reached",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Claim operation failed",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().RequestClaim(gomock.Any(), shadowID, gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "admin-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestStartVerification
// ================================================================================

func (s *ClaimHandlerTestSuite) TestStartVerification() {
	url := "/claims/verify"
	shadowID := uuid.New()

	reqBody := map[string]any{"token": "b64-opaque-claim-token"}
	expiresAt := time.Now().Add(15 * time.Minute)
	expectedResult := &commands.VerificationResult{
		ShadowID:  shadowID,
		ExpiresAt: expiresAt,
	}

	s.Run("success: returns 200 OK without the verification code", func() {
		s.mockCommands.EXPECT().StartVerification(gomock.Any(), "b64-opaque-claim-token", gomock.Any()).
			Return(expectedResult, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(shadowID.String(), body["shadow_id"])
		s.NotContains(body, "code", "verification code must never appear in the response")
	})

	s.Run("error: 400 Bad Request when token is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 400 Bad Request for expired or unknown tokens", func() {
		testCases := []struct {
			name          string
			commandsError error
		}{
			{name: "unknown token", commandsError: commands.ErrClaimTokenInvalid},
			{name: "expired token", commandsError: shadow.ErrTokenExpired},
			{name: "already used token", commandsError: shadow.ErrTokenAlreadyUsed},
			{name: "invalidated token", commandsError: shadow.ErrTokenInvalidated},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().StartVerification(gomock.Any(), "b64-opaque-claim-token", gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid or expired claim credentials")
			})
		}
	})
}

// ================================================================================
// TestComplete
// ================================================================================

func (s *ClaimHandlerTestSuite) TestComplete() {
	url := "/claims/complete"
	shadowID := uuid.New()
	supplierID := uuid.New()

	reqBody := map[string]any{
		"token":    "b64-opaque-claim-token",
		"code":     "482913",
		"email":    "owner@ecocrete.example",
		"password": "str0ng-passphrase",
	}
	expectedResult := &commands.CompleteClaimResult{
		ShadowID:   shadowID,
		SupplierID: supplierID,
	}

	s.Run("success: returns 200 OK with the new supplier ID", func() {
		s.mockCommands.EXPECT().CompleteClaim(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, in commands.CompleteClaimInput) (*commands.CompleteClaimResult, error) {
				s.Equal("482913", in.Code)
				s.Equal("owner@ecocrete.example", in.Email)
				return expectedResult, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var body resdto.CompleteClaimResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(shadowID.String(), body.ShadowID)
		s.Equal(supplierID.String(), body.SupplierID)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: token (required)", mutate: testutil.Field("token", nil)},
			{name: "code length invalid (5 digits)", mutate: testutil.Field("code", "12345")},
			{name: "invalid email", mutate: testutil.Field("email", "not-an-email")},
			{name: "password too short (7 chars)", mutate: testutil.Field("password", "short77")},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
			})
		}
	})

	s.Run("error: 400 Bad Request on code mismatch", func() {
		s.mockCommands.EXPECT().CompleteClaim(gomock.Any(), gomock.Any()).
			Return(nil, shadow.ErrCodeMismatch).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid or expired claim credentials")
	})

	s.Run("error: 429 Too Many Requests after repeated failures", func() {
		s.mockCommands.EXPECT().CompleteClaim(gomock.Any(), gomock.Any()).
			Return(nil, shadow.ErrLockedOut).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusTooManyRequests, "Too many failed attempts")
	})
}

// ================================================================================
// TestOptOut
// ================================================================================

func (s *ClaimHandlerTestSuite) TestOptOut() {
	shadowID := uuid.New()
	url := "/claims/" + shadowID.String() + "/opt-out"

	s.Run("success: returns 204 No Content with a reason", func() {
		s.mockCommands.EXPECT().OptOut(gomock.Any(), shadowID, "we closed the business", gomock.Any()).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"reason": "we closed the business"}, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusNoContent, nil)
	})

	s.Run("success: returns 204 No Content without a body", func() {
		s.mockCommands.EXPECT().OptOut(gomock.Any(), shadowID, "", gomock.Any()).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusNoContent, nil)
	})

	s.Run("error: 404 Not Found for unknown shadow profile", func() {
		s.mockCommands.EXPECT().OptOut(gomock.Any(), shadowID, "", gomock.Any()).
			Return(commands.ErrShadowNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Not found")
	})
}

// ================================================================================
// TestStatus
// ================================================================================

func (s *ClaimHandlerTestSuite) TestStatus() {
	shadowID := uuid.New()
	url := "/claims/" + shadowID.String()

	returnView := builder.NewShadowBuilder().WithID(shadowID).BuildClaimStatusView()

	s.Run("success: returns 200 OK with claim status", func() {
		s.mockQueries.EXPECT().ClaimStatus(gomock.Any(), shadowID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(shadowID.String(), body["shadow_id"])
		s.Equal(string(shadow.StatusUnclaimed), body["claimed_status"])
		s.NotContains(body, "company_name", "the public status view must not leak the company identity")
	})

	s.Run("error: 404 Not Found for unknown shadow profile", func() {
		s.mockQueries.EXPECT().ClaimStatus(gomock.Any(), shadowID).
			Return(nil, queries.ErrShadowNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Not found")
	})

	s.Run("error: 500 Internal Server Error on query failure", func() {
		s.mockQueries.EXPECT().ClaimStatus(gomock.Any(), shadowID).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Failed to load claim status")
	})
}
