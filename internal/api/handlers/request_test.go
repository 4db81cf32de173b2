package handlers_test

import (
	"errors"
	"net/http"
	"testing"

	"house-rental-backend/internal/api/handlers"
	"house-rental-backend/internal/auth"
	apperrors "house-rental-backend/internal/errors"
	"house-rental-backend/internal/mocks"
	"house-rental-backend/internal/service"
	"house-rental-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// RequestHandlerTestSuite defines the test suite for RequestHandler
type RequestHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockRequestServiceInterface
	httpSuite   *testutils.HTTPTestSuite
	ownerID     uuid.UUID
}

func (suite *RequestHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockRequestServiceInterface(suite.ctrl)
	suite.httpSuite = testutils.SetupHTTPTest()
	suite.ownerID = uuid.New()

	handler := handlers.NewRequestHandler(suite.mockService)
	router := suite.httpSuite.Router
	router.POST("/request-house", handler.CreateRequest)
	router.GET("/api/owner-requests", func(c *gin.Context) {
		c.Set(auth.ContextOwnerID, suite.ownerID)
		c.Next()
	}, handler.ListOwnerRequests)
	router.GET("/anonymous/api/owner-requests", handler.ListOwnerRequests)
}

func (suite *RequestHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *RequestHandlerTestSuite) TestCreateRequest() {
	houseID := uuid.New()
	fields := map[string]string{
		"houseId":       houseID.String(),
		"tenantName":    "Tina Tenant",
		"tenantContact": "tina@example.com",
		"contactMethod": "email",
	}

	suite.T().Run("Success", func(t *testing.T) {
		suite.mockService.EXPECT().
			CreateRequest(gomock.Any(), &service.CreateTenantRequest{
				HouseID:       houseID.String(),
				TenantName:    "Tina Tenant",
				TenantContact: "tina@example.com",
				ContactMethod: "email",
			}).
			Return(&service.TenantRequestResponse{ID: uuid.New()}, nil).
			Times(1)

		recorder := suite.httpSuite.Do(testutils.NewFormRequest(http.MethodPost, "/request-house", fields))

		testutils.AssertTextResponse(t, recorder, http.StatusOK, "Request submitted successfully")
	})

	suite.T().Run("House not found", func(t *testing.T) {
		suite.mockService.EXPECT().
			CreateRequest(gomock.Any(), gomock.Any()).
			Return(nil, apperrors.ErrHouseNotFound).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/request-house", fields)

		testutils.AssertTextResponse(t, recorder, http.StatusNotFound, "House not found")
	})

	suite.T().Run("Validation error", func(t *testing.T) {
		suite.mockService.EXPECT().
			CreateRequest(gomock.Any(), gomock.Any()).
			Return(nil, apperrors.NewValidationError("tenantName", "is required")).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/request-house", map[string]string{"houseId": houseID.String()})

		testutils.AssertTextResponse(t, recorder, http.StatusInternalServerError, "Error submitting request")
	})

	suite.T().Run("Service error", func(t *testing.T) {
		suite.mockService.EXPECT().
			CreateRequest(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("db down")).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/request-house", fields)

		testutils.AssertTextResponse(t, recorder, http.StatusInternalServerError, "Error submitting request")
	})
}

func (suite *RequestHandlerTestSuite) TestListOwnerRequests() {
	suite.T().Run("Success with deleted listing", func(t *testing.T) {
		house := &service.HouseResponse{ID: uuid.New(), Title: "Sunny flat"}
		suite.mockService.EXPECT().
			ListOwnerRequests(suite.ownerID).
			Return([]service.TenantRequestResponse{
				{ID: uuid.New(), House: house, OwnerID: suite.ownerID, TenantName: "Tina"},
				{ID: uuid.New(), House: nil, OwnerID: suite.ownerID, TenantName: "Tom"},
			}, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/owner-requests", nil)

		var requests []map[string]interface{}
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &requests)
		require.Len(t, requests, 2)
		attached, ok := requests[0]["houseId"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "Sunny flat", attached["title"])
		assert.Nil(t, requests[1]["houseId"])
	})

	suite.T().Run("No session", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/anonymous/api/owner-requests", nil)
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	suite.T().Run("Service error", func(t *testing.T) {
		suite.mockService.EXPECT().
			ListOwnerRequests(suite.ownerID).
			Return(nil, errors.New("db down")).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/owner-requests", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusInternalServerError, "Error fetching requests")
	})
}

func TestRequestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(RequestHandlerTestSuite))
}
