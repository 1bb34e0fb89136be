//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"greenrfq/internal/domain/actor"
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

type RFQHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockRFQCommands
	mockDispatch *commandsmock.MockDispatchCommands
	mockQueries  *queriesmock.MockRFQQueries
	mockQueueQ   *queriesmock.MockQueueQueries
	handler      *api.RFQHandler
	actorID      uuid.UUID
}

func (s *RFQHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockRFQCommands(s.mockCtrl)
	s.mockDispatch = commandsmock.NewMockDispatchCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockRFQQueries(s.mockCtrl)
	s.mockQueueQ = queriesmock.NewMockQueueQueries(s.mockCtrl)
	s.handler = api.NewRFQHandler(s.mockCommands, s.mockDispatch, s.mockQueries, s.mockQueueQ)
	s.actorID = uuid.New()

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("actor_id", s.actorID)
		c.Set("actor_role", actor.RoleArchitect)
		c.Next()
	}

	// Setup routes
	s.router.POST("/rfqs", authMiddleware, s.handler.Create)
	s.router.GET("/rfqs", authMiddleware, s.handler.List)
	s.router.GET("/rfqs/:id", authMiddleware, s.handler.Get)
	s.router.GET("/rfqs/:id/queue", authMiddleware, s.handler.QueueStatus)
	s.router.POST("/rfqs/:id/close", authMiddleware, s.handler.Close)
	s.router.GET("/inbox", authMiddleware, s.handler.Inbox)
	s.router.POST("/inbox/:id/respond", authMiddleware, s.handler.Respond)
	s.router.POST("/inbox/:id/viewed", authMiddleware, s.handler.MarkViewed)
}

func (s *RFQHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRFQHandlerSuite(t *testing.T) {
	suite.Run(t, new(RFQHandlerTestSuite))
}

type testCaseRFQ struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *RFQHandlerTestSuite) TestCreate() {
	url := "/rfqs"

	reqBody := builder.NewRFQBuilder().BuildCreateRequestDTO()
	rfqID := uuid.New()
	expectedResult := &commands.CreateRFQResult{
		RFQID: rfqID,
		Distribution: &commands.DistributeResult{
			RFQID:          rfqID,
			Admitted:       4,
			SkippedByQuota: 1,
			ShadowCount:    2,
			WaveBreakdown:  map[int32]int{1: 2, 2: 2},
		},
	}

	// Validation boundary cases
	bound := []testCaseRFQ{
		{name: "title length OK (200 chars)", mutate: testutil.Field("title", strings.Repeat("a", 200)), expectCode: http.StatusCreated},
		{name: "title length invalid (201 chars)", mutate: testutil.Field("title", strings.Repeat("a", 201)), expectCode: http.StatusBadRequest},
		{name: "latitude boundary OK (90)", mutate: testutil.Field("latitude", 90), expectCode: http.StatusCreated},
		{name: "latitude boundary invalid (91)", mutate: testutil.Field("latitude", 91), expectCode: http.StatusBadRequest},
		{name: "longitude boundary invalid (-181)", mutate: testutil.Field("longitude", -181), expectCode: http.StatusBadRequest},
		{name: "budget invalid (negative)", mutate: testutil.Field("budget_max_cents", -1), expectCode: http.StatusBadRequest},
	}

	missing := []testCaseRFQ{
		{name: "missing field: title (required)", mutate: testutil.Field("title", nil), expectCode: http.StatusBadRequest},
	}

	allValidationTestCases := [][]testCaseRFQ{bound, missing}

	s.Run("success: returns 201 Created with distribution summary", func() {
		s.mockCommands.EXPECT().CreateRFQ(gomock.Any(), gomock.Any()).
			Return(expectedResult, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body resdto.CreateRFQResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(rfqID.String(), body.ID)
		s.Require().NotNil(body.Distribution)
		s.Equal(4, body.Distribution.Admitted)
		s.Equal(2, body.Distribution.ShadowCount)
	})

	s.Run("success: buyer ID is taken from the token, not the body", func() {
		s.mockCommands.EXPECT().CreateRFQ(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, in commands.CreateRFQInput) (*commands.CreateRFQResult, error) {
				s.Equal(s.actorID, in.BuyerID)
				s.True(in.UseEntitlements)
				return expectedResult, nil
			}).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		for _, testCaseGroup := range allValidationTestCases {
			for _, tc := range testCaseGroup {
				s.Run(tc.name, func() {
					requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)

					if tc.expectCode == http.StatusCreated {
						s.mockCommands.EXPECT().CreateRFQ(gomock.Any(), gomock.Any()).
							Return(expectedResult, nil).Times(1)
					}
					rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
					if tc.expectCode == http.StatusCreated {
						httptest.AssertSuccessResponse(s.T(), rec, tc.expectCode, nil)
					} else {
						httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
					}
				})
			}
		}
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: 400 Bad Request when the usecase rejects the request", func() {
		s.mockCommands.EXPECT().CreateRFQ(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("title must not be empty")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Create RFQ failed")
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *RFQHandlerTestSuite) TestGet() {
	rfqID := uuid.New()
	url := "/rfqs/" + rfqID.String()

	returnView := builder.NewRFQBuilder().BuildView()
	returnView.ID = rfqID

	s.Run("success: returns 200 OK with RFQResponse", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.actorID, rfqID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.RFQResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(rfqID.String(), response.ID)
		s.Equal(returnView.Title, response.Title)
		s.Equal(returnView.Status, response.Status)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		invalidURL := "/rfqs/invalid-uuid"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, invalidURL, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			queriesError   error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "rfq not found",
				queriesError:   queries.ErrRFQNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "RFQ not found",
			},
			{
				name:           "rfq belongs to another buyer",
				queriesError:   queries.ErrRFQAccess,
				expectedStatus: http.StatusForbidden,
				expectedMsg:    "Access denied",
			},
			{
				name:           "internal server error",
				queriesError:   errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Failed to load RFQ",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockQueries.EXPECT().GetByID(gomock.Any(), s.actorID, rfqID).
					Return(nil, tc.queriesError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestList
// ================================================================================

func (s *RFQHandlerTestSuite) TestList() {
	url := "/rfqs"

	items := []*queries.RFQListItem{
		builder.NewRFQBuilder().BuildListItem(),
		builder.NewRFQBuilder().WithTitle("Hempcrete blocks for residential build").AsClosed().BuildListItem(),
	}

	s.Run("success: returns 200 OK with the caller's RFQs", func() {
		s.mockQueries.EXPECT().ListByBuyer(gomock.Any(), s.actorID, 50).
			Return(items, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response []resdto.RFQListItemResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 2)
		s.Equal(items[0].ID.String(), response[0].ID)
		s.Equal("Hempcrete blocks for residential build", response[1].Title)
	})

	s.Run("success: limit query parameter is honored", func() {
		s.mockQueries.EXPECT().ListByBuyer(gomock.Any(), s.actorID, 10).
			Return(items[:1], nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?limit=10", nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 500 Internal Server Error on query failure", func() {
		s.mockQueries.EXPECT().ListByBuyer(gomock.Any(), s.actorID, 50).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Failed to load RFQs")
	})
}

// ================================================================================
// TestQueueStatus
// ================================================================================

func (s *RFQHandlerTestSuite) TestQueueStatus() {
	rfqID := uuid.New()
	url := "/rfqs/" + rfqID.String() + "/queue"

	returnView := &queries.QueueStatusView{
		RFQID: rfqID,
		Waves: []queries.WaveStatusCount{
			{WaveNumber: 1, Status: "notified", Count: 3},
			{WaveNumber: 2, Status: "pending", Count: 5},
		},
		Entries: []queries.QueueEntryView{
			builder.NewQueueEntryBuilder().WithRFQID(rfqID).BuildEntryView("Duurzaam Hout BV"),
		},
	}

	s.Run("success: returns 200 OK with wave counts and entries", func() {
		s.mockQueueQ.EXPECT().StatusByRFQ(gomock.Any(), s.actorID, rfqID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.QueueStatusResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(rfqID.String(), response.RFQID)
		s.Require().Len(response.Waves, 2)
		s.EqualValues(1, response.Waves[0].WaveNumber)
		s.Require().Len(response.Entries, 1)
		s.Equal("Duurzaam Hout BV", response.Entries[0].SupplierName)
	})

	s.Run("error: 404 Not Found for missing RFQ", func() {
		s.mockQueueQ.EXPECT().StatusByRFQ(gomock.Any(), s.actorID, rfqID).
			Return(nil, queries.ErrRFQNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "RFQ not found")
	})

	s.Run("error: 403 Forbidden for another buyer's RFQ", func() {
		s.mockQueueQ.EXPECT().StatusByRFQ(gomock.Any(), s.actorID, rfqID).
			Return(nil, queries.ErrRFQAccess).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Access denied")
	})
}

// ================================================================================
// TestClose
// ================================================================================

func (s *RFQHandlerTestSuite) TestClose() {
	rfqID := uuid.New()
	url := "/rfqs/" + rfqID.String() + "/close"

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().CloseRFQ(gomock.Any(), rfqID, s.actorID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusNoContent, nil)
	})

	s.Run("error: 404 Not Found for missing RFQ", func() {
		s.mockCommands.EXPECT().CloseRFQ(gomock.Any(), rfqID, s.actorID).
			Return(commands.ErrRFQNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "RFQ not found")
	})

	s.Run("error: 409 Conflict when the RFQ is already closed", func() {
		s.mockCommands.EXPECT().CloseRFQ(gomock.Any(), rfqID, s.actorID).
			Return(commands.ErrRFQClosed).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "RFQ is closed")
	})
}

// ================================================================================
// TestRespond
// ================================================================================

func (s *RFQHandlerTestSuite) TestRespond() {
	rfqID := uuid.New()
	url := "/inbox/" + rfqID.String() + "/respond"

	priceCents := int64(4_200_000)
	leadTimeDays := int32(21)
	reqBody := map[string]any{
		"price_cents":    priceCents,
		"lead_time_days": leadTimeDays,
		"message":        "We can deliver FSC-certified stock within three weeks.",
	}
	responseID := uuid.New()
	expectedResult := &commands.SubmitResponseResult{ResponseID: responseID}

	s.Run("success: returns 201 Created with the quote ID", func() {
		s.mockCommands.EXPECT().SubmitResponse(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, in commands.SubmitResponseInput) (*commands.SubmitResponseResult, error) {
				s.Equal(rfqID, in.RFQID)
				s.Equal(s.actorID, in.SupplierID)
				s.Require().NotNil(in.PriceCents)
				s.Equal(priceCents, *in.PriceCents)
				return expectedResult, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body resdto.SubmitResponseResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(responseID.String(), body.ResponseID)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []testCaseRFQ{
			{name: "missing field: message (required)", mutate: testutil.Field("message", nil), expectCode: http.StatusBadRequest},
			{name: "empty message", mutate: testutil.Field("message", ""), expectCode: http.StatusBadRequest},
			{name: "price invalid (negative)", mutate: testutil.Field("price_cents", -100), expectCode: http.StatusBadRequest},
			{name: "lead time invalid (negative)", mutate: testutil.Field("lead_time_days", -1), expectCode: http.StatusBadRequest},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "rfq not in inbox",
				commandsError:  commands.ErrEntryNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "RFQ is not in your inbox",
			},
			{
				name:           "rfq closed",
				commandsError:  commands.ErrRFQClosed,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "RFQ is closed",
			},
			{
				name:           "duplicate quote",
				commandsError:  commands.ErrDuplicateResponse,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Quote already submitted",
			},
			{
				name:           "wave not visible yet",
				commandsError:  commands.ErrNotVisibleYet,
				expectedStatus: http.StatusForbidden,
				expectedMsg:    "RFQ is not visible to you yet",
			},
			{
				name:           "response window expired",
				commandsError:  commands.ErrEntryExpired,
				expectedStatus: http.StatusGone,
				expectedMsg:    "RFQ window expired",
			},
			{
				name:           "outbound quota exhausted",
				commandsError:  commands.ErrQuotaExhausted,
				expectedStatus: http.StatusTooManyRequests,
				expectedMsg:    "Monthly quote limit reached",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().SubmitResponse(gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestInbox
// ================================================================================

func (s *RFQHandlerTestSuite) TestInbox() {
	url := "/inbox"

	items := []*queries.VisibleRFQItem{
		builder.NewQueueEntryBuilder().BuildVisibleItem("Reclaimed timber for office fit-out"),
		builder.NewQueueEntryBuilder().AsOutreachOnly().BuildVisibleItem("Recycled steel beams"),
	}

	s.Run("success: returns 200 OK with visible RFQs", func() {
		s.mockQueueQ.EXPECT().InboxForSupplier(gomock.Any(), s.actorID, 50).
			Return(items, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response []resdto.InboxItemResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 2)
		s.Require().NotNil(response[0].Title)
		s.Equal("Reclaimed timber for office fit-out", *response[0].Title)
		s.False(response[0].ClaimPrompt)
		s.Nil(response[1].Title, "outreach-only entries must not expose the title")
		s.True(response[1].ClaimPrompt)
	})

	s.Run("error: 500 Internal Server Error on query failure", func() {
		s.mockQueueQ.EXPECT().InboxForSupplier(gomock.Any(), s.actorID, 50).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Failed to load inbox")
	})
}

// ================================================================================
// TestMarkViewed
// ================================================================================

func (s *RFQHandlerTestSuite) TestMarkViewed() {
	rfqID := uuid.New()
	url := "/inbox/" + rfqID.String() + "/viewed"

	s.Run("success: returns 204 No Content", func() {
		s.mockDispatch.EXPECT().MarkViewed(gomock.Any(), rfqID, s.actorID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusNoContent, nil)
	})

	s.Run("error: 404 Not Found when the entry does not exist", func() {
		s.mockDispatch.EXPECT().MarkViewed(gomock.Any(), rfqID, s.actorID).
			Return(commands.ErrEntryNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Not found")
	})

	s.Run("error: 409 Conflict when the entry already progressed", func() {
		s.mockDispatch.EXPECT().MarkViewed(gomock.Any(), rfqID, s.actorID).
			Return(commands.ErrInvalidTransition).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Entry already progressed")
	})

	s.Run("error: 410 Gone when the entry window already passed", func() {
		s.mockDispatch.EXPECT().MarkViewed(gomock.Any(), rfqID, s.actorID).
			Return(commands.ErrEntryExpired).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusGone, "RFQ window expired")
	})
}
