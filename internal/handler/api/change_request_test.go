//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"tournament-billing/internal/domain/actor"
	"tournament-billing/internal/handler/api"
	reqdto "tournament-billing/internal/handler/dto/request"
	resdto "tournament-billing/internal/handler/dto/response"
	"tournament-billing/internal/usecase/commands"
	"tournament-billing/tests/common/httptest"
	"tournament-billing/tests/common/testutil"
	commandsmock "tournament-billing/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ChangeRequestHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockRequestCommands
	handler      *api.ChangeRequestHandler
}

func (s *ChangeRequestHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockRequestCommands(s.mockCtrl)
	s.handler = api.NewChangeRequestHandler(s.mockCommands)

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
			return
		}
		c.Set("actor", actor.New(uuid.New(), actor.RoleSponsor))
		c.Next()
	}

	s.router.POST("/requests/process", authMiddleware, s.handler.ProcessRequests)
}

func (s *ChangeRequestHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestChangeRequestHandlerSuite(t *testing.T) {
	suite.Run(t, new(ChangeRequestHandlerTestSuite))
}

func (s *ChangeRequestHandlerTestSuite) TestProcessRequests() {
	url := "/requests/process"

	reqBody := reqdto.ProcessRequestsRequest{
		Decisions: []reqdto.RequestDecision{
			{RequestID: uuid.New(), Approve: true},
			{RequestID: uuid.New(), Approve: false},
		},
	}

	s.Run("success: returns 200 with per-item outcome counts", func() {
		failedID := uuid.New()
		result := &commands.BatchResult{
			ProcessedCount: 2,
			FailedCount:    1,
			Errors: []commands.BatchItemError{
				{RequestID: failedID, Message: "request not found"},
			},
		}
		s.mockCommands.EXPECT().ProcessBatch(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body resdto.ProcessRequestsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(2, body.ProcessedCount)
		s.Equal(1, body.FailedCount)
		s.Require().Len(body.Errors, 1)
		s.Equal(failedID, body.Errors[0].RequestID)
		s.Contains(body.Errors[0].Message, "not found")
	})

	s.Run("success: all-clean batch has an empty error list", func() {
		result := &commands.BatchResult{ProcessedCount: 2}
		s.mockCommands.EXPECT().ProcessBatch(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body resdto.ProcessRequestsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(2, body.ProcessedCount)
		s.Zero(body.FailedCount)
		s.Empty(body.Errors)
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})

	s.Run("error: 400 on missing decisions", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("decisions", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: 400 on empty decisions", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("decisions", []any{}))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: 403 when the actor cannot resolve requests", func() {
		s.mockCommands.EXPECT().ProcessBatch(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrPermissionDenied).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Permission denied")
	})

	s.Run("error: 500 on unexpected failure", func() {
		s.mockCommands.EXPECT().ProcessBatch(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("connection refused")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}
