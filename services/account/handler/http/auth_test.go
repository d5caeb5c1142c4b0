package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/rakibhasan/coursehub/internal/pkg/models"
	"github.com/rakibhasan/coursehub/services/account"
	"github.com/rakibhasan/coursehub/services/account/mocks"
)

func newJSONContext(e *echo.Echo, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestRegister_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockAccountUC(ctrl)
	handler := NewAuthHandler(mockUC)

	e := echo.New()
	c, rec := newJSONContext(e, http.MethodPost, "/api/register",
		`{"name":"Rakib Hasan","email":"rakib@example.com","password":"secret123"}`)

	mockUC.EXPECT().
		Register(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, req *models.RegisterRequest) (*models.AuthResponse, error) {
			assert.Equal(t, "Rakib Hasan", req.Name)
			assert.Equal(t, "rakib@example.com", req.Email)
			return &models.AuthResponse{
				Token: "signed-token",
				User: models.UserSummary{
					Name:    req.Name,
					Email:   req.Email,
					Courses: []string{},
				},
			}, nil
		})

	err := handler.Register(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, true, response["success"])

	data, ok := response["data"].(map[string]interface{})
	assert.True(t, ok)
	assert.Equal(t, "signed-token", data["token"])
}

func TestRegister_DuplicateEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockAccountUC(ctrl)
	handler := NewAuthHandler(mockUC)

	e := echo.New()
	c, rec := newJSONContext(e, http.MethodPost, "/api/register",
		`{"name":"Rakib Hasan","email":"rakib@example.com","password":"secret123"}`)

	mockUC.EXPECT().
		Register(gomock.Any(), gomock.Any()).
		Return(nil, account.ErrEmailExists)

	err := handler.Register(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, false, response["success"])
}

func TestLogin_InvalidCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockAccountUC(ctrl)
	handler := NewAuthHandler(mockUC)

	e := echo.New()
	c, rec := newJSONContext(e, http.MethodPost, "/api/login",
		`{"email":"rakib@example.com","password":"wrong"}`)

	mockUC.EXPECT().
		Login(gomock.Any(), gomock.Any()).
		Return(nil, account.ErrInvalidCredentials)

	err := handler.Login(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestVerifyOTP_ErrorMapping(t *testing.T) {
	testCases := []struct {
		name     string
		ucErr    error
		wantCode int
	}{
		{"not found", account.ErrOTPNotFound, http.StatusBadRequest},
		{"mismatch", account.ErrOTPMismatch, http.StatusBadRequest},
		{"expired", account.ErrOTPExpired, http.StatusBadRequest},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockUC := mocks.NewMockAccountUC(ctrl)
			handler := NewOTPHandler(mockUC)

			e := echo.New()
			c, rec := newJSONContext(e, http.MethodPost, "/api/verify-otp",
				`{"email":"rakib@example.com","otp":"1234"}`)

			mockUC.EXPECT().
				VerifyOTP(gomock.Any(), "rakib@example.com", "1234").
				Return(tc.ucErr)

			err := handler.VerifyOTP(c)
			assert.NoError(t, err)
			assert.Equal(t, tc.wantCode, rec.Code)
		})
	}
}

func TestForgotPassword_UnknownEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockAccountUC(ctrl)
	handler := NewOTPHandler(mockUC)

	e := echo.New()
	c, rec := newJSONContext(e, http.MethodPost, "/api/forgot-password",
		`{"email":"nobody@example.com"}`)

	mockUC.EXPECT().
		IssueResetOTP(gomock.Any(), "nobody@example.com").
		Return(account.ErrUserNotFound)

	err := handler.ForgotPassword(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
