package handlers_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"house-rental-backend/internal/api/handlers"
	"house-rental-backend/internal/auth"
	apperrors "house-rental-backend/internal/errors"
	"house-rental-backend/internal/mocks"
	"house-rental-backend/internal/service"
	"house-rental-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// OwnerHandlerTestSuite defines the test suite for OwnerHandler
type OwnerHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockOwnerServiceInterface
	sessions    *auth.SessionManager
	store       *auth.MemorySessionStore
	httpSuite   *testutils.HTTPTestSuite
}

func (suite *OwnerHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockOwnerServiceInterface(suite.ctrl)

	suite.store = auth.NewMemorySessionStore()
	sessions, err := auth.NewSessionManager(suite.store, auth.SessionConfig{Secret: "test-secret", TTL: time.Hour, CookieName: "sid"})
	suite.Require().NoError(err)
	suite.sessions = sessions

	suite.newRouter(handlers.OwnerHandlerConfig{LoginRedirectURL: "/display.html", ResetTokenInResponse: true})
}

func (suite *OwnerHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *OwnerHandlerTestSuite) newRouter(config handlers.OwnerHandlerConfig) {
	handler := handlers.NewOwnerHandler(suite.mockService, suite.sessions, config)
	suite.httpSuite = testutils.SetupHTTPTest()
	router := suite.httpSuite.Router
	router.POST("/signup-owner", handler.Signup)
	router.POST("/login-owner", handler.Login)
	router.POST("/logout-owner", handler.Logout)
	router.POST("/forgot-password", handler.ForgotPassword)
	router.POST("/reset-password", handler.ResetPassword)
}

func (suite *OwnerHandlerTestSuite) TestSignup() {
	suite.T().Run("Form post", func(t *testing.T) {
		suite.mockService.EXPECT().
			Signup(&service.SignupRequest{FullName: "Ann Owner", Email: "ann@example.com", Username: "ann", Password: "secret"}).
			Return(&service.OwnerResponse{ID: uuid.New(), Username: "ann"}, nil).
			Times(1)

		req := testutils.NewFormRequest(http.MethodPost, "/signup-owner", map[string]string{
			"fullname": "Ann Owner",
			"email":    "ann@example.com",
			"username": "ann",
			"password": "secret",
		})
		recorder := suite.httpSuite.Do(req)

		testutils.AssertTextResponse(t, recorder, http.StatusOK, "Owner registered successfully")
	})

	suite.T().Run("JSON body", func(t *testing.T) {
		suite.mockService.EXPECT().
			Signup(gomock.Any()).
			DoAndReturn(func(req *service.SignupRequest) (*service.OwnerResponse, error) {
				assert.Equal(t, "bob", req.Username)
				assert.Equal(t, "Bob", req.FullName)
				return &service.OwnerResponse{ID: uuid.New()}, nil
			}).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/signup-owner", map[string]string{
			"fullname": "Bob",
			"email":    "bob@example.com",
			"username": "bob",
			"password": "secret",
		})

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	suite.T().Run("Duplicate", func(t *testing.T) {
		suite.mockService.EXPECT().
			Signup(gomock.Any()).
			Return(nil, apperrors.ErrOwnerExists).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/signup-owner", map[string]string{"username": "ann"})

		testutils.AssertTextResponse(t, recorder, http.StatusBadRequest, "Username or email already exists")
	})

	suite.T().Run("Validation error", func(t *testing.T) {
		suite.mockService.EXPECT().
			Signup(gomock.Any()).
			Return(nil, apperrors.NewValidationError("email", "must be a valid email address")).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/signup-owner", map[string]string{"email": "nope"})

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Invalid signup details")
	})

	suite.T().Run("Service error", func(t *testing.T) {
		suite.mockService.EXPECT().
			Signup(gomock.Any()).
			Return(nil, errors.New("connection refused")).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/signup-owner", map[string]string{"username": "ann"})

		testutils.AssertTextResponse(t, recorder, http.StatusInternalServerError, "Error registering owner")
	})
}

func (suite *OwnerHandlerTestSuite) TestLogin() {
	suite.T().Run("Success sets session cookie", func(t *testing.T) {
		ownerID := uuid.New()
		suite.mockService.EXPECT().
			Login(&service.LoginRequest{Username: "ann", Password: "secret"}).
			Return(&service.OwnerResponse{ID: ownerID, Username: "ann"}, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/login-owner", map[string]string{"username": "ann", "password": "secret"})

		var body map[string]interface{}
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &body)
		assert.Equal(t, "Login successful", body["message"])
		assert.Equal(t, "/display.html", body["redirectUrl"])

		cookies := recorder.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, "sid", cookies[0].Name)
		assert.Equal(t, 1, suite.store.Len())
	})

	suite.T().Run("Invalid credentials", func(t *testing.T) {
		suite.mockService.EXPECT().
			Login(gomock.Any()).
			Return(nil, apperrors.ErrInvalidCredentials).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/login-owner", map[string]string{"username": "ann", "password": "wrong"})

		testutils.AssertTextResponse(t, recorder, http.StatusUnauthorized, "Invalid username or password")
		assert.Empty(t, recorder.Result().Cookies())
	})

	suite.T().Run("Service error", func(t *testing.T) {
		suite.mockService.EXPECT().
			Login(gomock.Any()).
			Return(nil, errors.New("db down")).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/login-owner", map[string]string{"username": "ann", "password": "secret"})

		testutils.AssertTextResponse(t, recorder, http.StatusInternalServerError, "Error logging in")
	})
}

func (suite *OwnerHandlerTestSuite) TestLogout() {
	session, err := suite.store.Create(uuid.New(), time.Hour)
	suite.Require().NoError(err)

	// Log in through the handler to obtain a signed cookie for the session.
	suite.mockService.EXPECT().
		Login(gomock.Any()).
		Return(&service.OwnerResponse{ID: session.OwnerID}, nil).
		Times(1)
	login := suite.httpSuite.MakeRequest(http.MethodPost, "/login-owner", map[string]string{"username": "ann", "password": "secret"})
	cookies := login.Result().Cookies()
	suite.Require().Len(cookies, 1)
	suite.Equal(2, suite.store.Len())

	req := testutils.NewFormRequest(http.MethodPost, "/logout-owner", nil)
	req.AddCookie(cookies[0])
	recorder := suite.httpSuite.Do(req)

	var body map[string]interface{}
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &body)
	suite.Equal("Logout successful", body["message"])
	suite.Equal(1, suite.store.Len())
}

func (suite *OwnerHandlerTestSuite) TestForgotPassword() {
	suite.T().Run("Token returned", func(t *testing.T) {
		suite.mockService.EXPECT().
			RequestPasswordReset(gomock.Any(), &service.ForgotPasswordRequest{Email: "ann@example.com"}).
			Return(&service.PasswordResetToken{Token: "abc123", ExpiresAt: time.Now().Add(time.Hour)}, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/forgot-password", map[string]string{"email": "ann@example.com"})

		var body map[string]interface{}
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &body)
		assert.Equal(t, true, body["success"])
		assert.Equal(t, "abc123", body["token"])
	})

	suite.T().Run("Unknown email", func(t *testing.T) {
		suite.mockService.EXPECT().
			RequestPasswordReset(gomock.Any(), gomock.Any()).
			Return(nil, apperrors.ErrOwnerNotFound).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/forgot-password", map[string]string{"email": "nobody@example.com"})

		assert.Equal(t, http.StatusNotFound, recorder.Code)
		assert.JSONEq(t, `{"message":"Email not found"}`, recorder.Body.String())
	})

	suite.T().Run("Service error", func(t *testing.T) {
		suite.mockService.EXPECT().
			RequestPasswordReset(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("db down")).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/forgot-password", map[string]string{"email": "ann@example.com"})

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
		assert.JSONEq(t, `{"message":"Error generating reset token"}`, recorder.Body.String())
	})
}

func (suite *OwnerHandlerTestSuite) TestForgotPasswordTokenHidden() {
	suite.newRouter(handlers.OwnerHandlerConfig{ResetTokenInResponse: false})
	suite.mockService.EXPECT().
		RequestPasswordReset(gomock.Any(), gomock.Any()).
		Return(&service.PasswordResetToken{Token: "abc123"}, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/forgot-password", map[string]string{"email": "ann@example.com"})

	suite.Equal(http.StatusOK, recorder.Code)
	suite.JSONEq(`{"success":true}`, recorder.Body.String())
}

func (suite *OwnerHandlerTestSuite) TestResetPassword() {
	suite.T().Run("Success", func(t *testing.T) {
		suite.mockService.EXPECT().
			ResetPassword(gomock.Any(), &service.ResetPasswordRequest{Token: "abc123", NewPassword: "newsecret"}).
			Return(nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/reset-password", map[string]string{"token": "abc123", "newPassword": "newsecret"})

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.JSONEq(t, `{"message":"Password reset successful","success":true}`, recorder.Body.String())
	})

	suite.T().Run("Invalid token", func(t *testing.T) {
		suite.mockService.EXPECT().
			ResetPassword(gomock.Any(), gomock.Any()).
			Return(apperrors.ErrInvalidResetToken).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/reset-password", map[string]string{"token": "expired", "newPassword": "x"})

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.JSONEq(t, `{"message":"Invalid or expired token"}`, recorder.Body.String())
	})

	suite.T().Run("Service error", func(t *testing.T) {
		suite.mockService.EXPECT().
			ResetPassword(gomock.Any(), gomock.Any()).
			Return(errors.New("db down")).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/reset-password", map[string]string{"token": "abc123", "newPassword": "x"})

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
		assert.JSONEq(t, `{"message":"Error resetting password"}`, recorder.Body.String())
	})
}

func TestOwnerHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(OwnerHandlerTestSuite))
}
