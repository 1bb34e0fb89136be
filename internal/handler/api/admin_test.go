//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"greenrfq/internal/domain/actor"
	"greenrfq/internal/handler/api"
	resdto "greenrfq/internal/handler/dto/response"
	"greenrfq/internal/usecase/commands"
	"greenrfq/tests/common/httptest"
	commandsmock "greenrfq/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AdminHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockCtrl         *gomock.Controller
	mockIngest       *commandsmock.MockIngestionCommands
	mockMetrics      *commandsmock.MockMetricsCommands
	mockEntitlements *commandsmock.MockEntitlementCommands
	mockDispatch     *commandsmock.MockDispatchCommands
	mockDistribution *commandsmock.MockDistributionCommands
	handler          *api.AdminHandler
}

func (s *AdminHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockIngest = commandsmock.NewMockIngestionCommands(s.mockCtrl)
	s.mockMetrics = commandsmock.NewMockMetricsCommands(s.mockCtrl)
	s.mockEntitlements = commandsmock.NewMockEntitlementCommands(s.mockCtrl)
	s.mockDispatch = commandsmock.NewMockDispatchCommands(s.mockCtrl)
	s.mockDistribution = commandsmock.NewMockDistributionCommands(s.mockCtrl)
	s.handler = api.NewAdminHandler(s.mockIngest, s.mockMetrics, s.mockEntitlements, s.mockDispatch, s.mockDistribution)

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

	s.router.POST("/admin/rfqs/:id/distribute", adminMiddleware, s.handler.Distribute)
	s.router.POST("/admin/dispatch/notify", adminMiddleware, s.handler.NotifyDue)
}

func (s *AdminHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAdminHandlerSuite(t *testing.T) {
	suite.Run(t, new(AdminHandlerTestSuite))
}

// ================================================================================
// TestDistribute
// ================================================================================

func (s *AdminHandlerTestSuite) TestDistribute() {
	rfqID := uuid.New()
	url := "/admin/rfqs/" + rfqID.String() + "/distribute"

	expectedResult := &commands.DistributeResult{
		RFQID:          rfqID,
		Admitted:       3,
		SkippedByQuota: 1,
		ShadowCount:    1,
		WaveBreakdown:  map[int32]int{1: 2, 2: 1},
	}

	s.Run("success: empty body falls back to create-time defaults", func() {
		s.mockDistribution.EXPECT().Distribute(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, in commands.DistributeInput) (*commands.DistributeResult, error) {
				s.Equal(rfqID, in.RFQID)
				s.True(in.UseEntitlements)
				s.True(in.EnforceQuotas)
				s.Zero(in.Limit)
				s.Empty(in.DirectInvites)
				return expectedResult, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "admin-token")

		var body resdto.DistributionSummary
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(3, body.Admitted)
		s.Equal(1, body.SkippedByQuota)
	})

	s.Run("success: explicit flags and limit reach the usecase untouched", func() {
		inviteeID := uuid.New()
		reqBody := map[string]any{
			"use_entitlements": true,
			"enforce_quotas":   false,
			"limit":            25,
			"direct_invites":   []string{inviteeID.String()},
		}

		s.mockDistribution.EXPECT().Distribute(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, in commands.DistributeInput) (*commands.DistributeResult, error) {
				s.True(in.UseEntitlements)
				s.False(in.EnforceQuotas)
				s.Equal(int32(25), in.Limit)
				s.Equal([]uuid.UUID{inviteeID}, in.DirectInvites)
				return expectedResult, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "admin-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/rfqs/not-a-uuid/distribute", nil, "admin-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: 404 Not Found for unknown RFQ", func() {
		s.mockDistribution.EXPECT().Distribute(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrRFQNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "admin-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "RFQ not found")
	})

	s.Run("error: 409 Conflict when the RFQ is not open", func() {
		s.mockDistribution.EXPECT().Distribute(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrRFQNotDistributable).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "admin-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "RFQ cannot be distributed")
	})
}

// ================================================================================
// TestNotifyDue
// ================================================================================

func (s *AdminHandlerTestSuite) TestNotifyDue() {
	url := "/admin/dispatch/notify"

	expectedResult := &commands.DispatchResult{
		Selected: 5,
		Notified: 4,
		Failed:   1,
	}

	s.Run("success: no query parameter means the configured batch size", func() {
		s.mockDispatch.EXPECT().NotifyDue(gomock.Any(), 0).
			Return(expectedResult, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "admin-token")

		var body map[string]int64
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(int64(4), body["notified"])
	})

	s.Run("success: limit query parameter caps the batch", func() {
		s.mockDispatch.EXPECT().NotifyDue(gomock.Any(), 10).
			Return(expectedResult, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url+"?limit=10", nil, "admin-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 401 Unauthorized without a bearer token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}
