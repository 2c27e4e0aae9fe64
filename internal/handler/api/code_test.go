//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"veritag/internal/domain/user"
	"veritag/internal/handler/api"
	resdto "veritag/internal/handler/dto/response"
	"veritag/internal/usecase/commands"
	"veritag/internal/usecase/queries"
	"veritag/tests/common/builder"
	"veritag/tests/common/httptest"
	"veritag/tests/common/testutil"
	commandsmock "veritag/tests/mock/commands"
	queriesmock "veritag/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CodeHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCodeCommands
	mockQueries  *queriesmock.MockCodeQueries
	handler      *api.CodeHandler
	issuerID     uuid.UUID
}

func (s *CodeHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCodeCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockCodeQueries(s.mockCtrl)
	s.handler = api.NewCodeHandler(s.mockCommands, s.mockQueries)
	s.issuerID = uuid.New()

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", s.issuerID)
		c.Set("user_role", user.RoleIssuer)
		c.Next()
	}

	s.router.POST("/admin/generate-codes", authMiddleware, s.handler.GenerateCodes)
	s.router.GET("/user/search/:code", authMiddleware, s.handler.Search)
	s.router.POST("/user/use-code/:code", authMiddleware, s.handler.UseCode)
}

func (s *CodeHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCodeHandlerSuite(t *testing.T) {
	suite.Run(t, new(CodeHandlerTestSuite))
}

func (s *CodeHandlerTestSuite) principal() commands.Principal {
	return commands.Principal{ID: s.issuerID, Role: user.RoleIssuer}
}

func (s *CodeHandlerTestSuite) TestGenerateCodes() {
	url := "/admin/generate-codes"
	productID := uuid.New()
	reqBody := map[string]any{
		"product_id":   productID.String(),
		"batch_number": "LOT-2026-001",
	}

	s.Run("success: returns 200 with minted codes", func() {
		result := &commands.IssueBatchResult{
			ProductID:   productID,
			BatchNumber: "LOT-2026-001",
			Count:       3,
			Values:      []string{uuid.NewString(), uuid.NewString(), uuid.NewString()},
			IssuedAt:    time.Now(),
		}
		s.mockCommands.EXPECT().
			IssueBatch(gomock.Any(), productID, "LOT-2026-001", s.principal()).
			Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")

		var response resdto.GenerateCodesResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(3, response.Count)
		s.Len(response.Codes, 3)
		s.Equal("LOT-2026-001", response.BatchNumber)
	})

	s.Run("error: 401 without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: 400 on validation errors", func() {
		cases := []struct {
			name       string
			mutate     func(m map[string]any)
			expectCode int
		}{
			{name: "missing product_id", mutate: testutil.Field("product_id", nil), expectCode: http.StatusBadRequest},
			{name: "malformed product_id", mutate: testutil.Field("product_id", "not-a-uuid"), expectCode: http.StatusBadRequest},
			{name: "missing batch_number", mutate: testutil.Field("batch_number", nil), expectCode: http.StatusBadRequest},
			{name: "batch_number too long", mutate: testutil.Field("batch_number", strings.Repeat("x", 65)), expectCode: http.StatusBadRequest},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "token")
				s.Equal(tc.expectCode, rec.Code)
			})
		}
	})

	s.Run("error: 404 when the product is missing or not owned", func() {
		for _, cmdErr := range []error{commands.ErrProductNotFound, commands.ErrNotOwner} {
			s.mockCommands.EXPECT().
				IssueBatch(gomock.Any(), productID, "LOT-2026-001", s.principal()).
				Return(nil, cmdErr).Times(1)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Product not found")
		}
	})

	s.Run("error: 400 when the batch was already issued", func() {
		s.mockCommands.EXPECT().
			IssueBatch(gomock.Any(), productID, "LOT-2026-001", s.principal()).
			Return(nil, commands.ErrBatchAlreadyIssued).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "already issued")
	})

	s.Run("error: 503 when the store is unavailable", func() {
		s.mockCommands.EXPECT().
			IssueBatch(gomock.Any(), productID, "LOT-2026-001", s.principal()).
			Return(nil, commands.ErrStoreUnavailable).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusServiceUnavailable, "temporarily unavailable")
	})

	s.Run("error: 500 on unexpected failures", func() {
		s.mockCommands.EXPECT().
			IssueBatch(gomock.Any(), productID, "LOT-2026-001", s.principal()).
			Return(nil, errors.New("boom")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "")
	})
}

func (s *CodeHandlerTestSuite) TestSearch() {
	value := uuid.NewString()
	url := "/user/search/" + value

	s.Run("success: returns 200 OK with product details", func() {
		view := builder.NewCodeBuilder().WithValue(value).BuildView()
		s.mockQueries.EXPECT().FindByValue(gomock.Any(), value).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "token")

		var response resdto.CodeLookupResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(value, response.Value)
		s.Equal("issued", response.State)
		s.Nil(response.UsedAt)
	})

	s.Run("success: used code includes usedAt", func() {
		usedAt := time.Now().Add(-time.Hour)
		view := builder.NewCodeBuilder().WithValue(value).AsUsed(usedAt).BuildView()
		s.mockQueries.EXPECT().FindByValue(gomock.Any(), value).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "token")

		var response resdto.CodeLookupResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("used", response.State)
		s.NotNil(response.UsedAt)
	})

	s.Run("error: 404 for unknown code", func() {
		s.mockQueries.EXPECT().FindByValue(gomock.Any(), value).Return(nil, queries.ErrCodeNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Code not found")
	})
}

func (s *CodeHandlerTestSuite) TestUseCode() {
	value := uuid.NewString()
	url := "/user/use-code/" + value

	s.Run("success: returns 200 OK with the used record", func() {
		usedAt := time.Now()
		snap := builder.NewCodeBuilder().WithValue(value).AsUsed(usedAt).BuildSnapshot()
		s.mockCommands.EXPECT().
			Redeem(gomock.Any(), value, s.principal()).
			Return(snap, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "token")

		var response resdto.RedeemResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("used", response.State)
		s.NotNil(response.UsedAt)
	})

	s.Run("error: 404 for invalid code", func() {
		s.mockCommands.EXPECT().
			Redeem(gomock.Any(), value, s.principal()).
			Return(nil, commands.ErrInvalidCode).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Code not found")
	})

	s.Run("error: 503 when the store is unavailable", func() {
		s.mockCommands.EXPECT().
			Redeem(gomock.Any(), value, s.principal()).
			Return(nil, commands.ErrStoreUnavailable).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusServiceUnavailable, "temporarily unavailable")
	})
}
