package account

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/milicamilutinovic/naprednebaze/internal/errors"
	"github.com/milicamilutinovic/naprednebaze/internal/middleware"
	"github.com/milicamilutinovic/naprednebaze/internal/model"
)

// MockUserService 是 UserServiceInterface 的模拟实现
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Register(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserService) Login(ctx context.Context, email, password string) (*model.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserService) LoginByUsername(ctx context.Context, username, password string) (*model.User, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserService) GetUserByID(ctx context.Context, id string) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserService) UpdateUser(ctx context.Context, id string, upd *model.UserUpdate) (*model.User, error) {
	args := m.Called(ctx, id, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserService) DeleteUser(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserService) SearchUsernames(ctx context.Context, query string) ([]string, error) {
	args := m.Called(ctx, query)
	return args.Get(0).([]string), args.Error(1)
}

func setupAuthRouter(mockService *MockUserService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewAuthHandler(mockService)
	r.POST("/account/register", h.Register)
	r.POST("/account/login", h.Login)
	r.POST("/account/logout", h.Logout)
	return r
}

// TestRegisterHandler 测试注册接口返回 201
func TestRegisterHandler(t *testing.T) {
	mockService := new(MockUserService)
	r := setupAuthRouter(mockService)

	mockService.On("Register", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)

	body := map[string]string{
		"username": "alice",
		"email":    "alice@x.com",
		"password": "secret",
		"fullName": "Alice A",
	}
	jsonBody, _ := json.Marshal(body)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/account/register", bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockService.AssertExpectations(t)
}

// TestRegisterHandlerDuplicate 测试重复注册返回 409
func TestRegisterHandlerDuplicate(t *testing.T) {
	mockService := new(MockUserService)
	r := setupAuthRouter(mockService)

	mockService.On("Register", mock.Anything, mock.AnythingOfType("*model.User")).
		Return(errors.New(errors.ErrUserExists, "username already exists"))

	body := map[string]string{
		"username": "alice",
		"email":    "alice@x.com",
		"password": "secret",
	}
	jsonBody, _ := json.Marshal(body)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/account/register", bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

// TestRegisterHandlerInvalidBody 测试缺少必填字段返回 400
func TestRegisterHandlerInvalidBody(t *testing.T) {
	mockService := new(MockUserService)
	r := setupAuthRouter(mockService)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/account/register", strings.NewReader(`{"username":"alice"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
}

// TestLoginHandler 测试登录成功时签发会话 Cookie
func TestLoginHandler(t *testing.T) {
	mockService := new(MockUserService)
	r := setupAuthRouter(mockService)

	user := &model.User{ID: "u-1", Username: "alice", Email: "alice@x.com"}
	mockService.On("LoginByUsername", mock.Anything, "alice", "secret").Return(user, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/account/login",
		strings.NewReader(`{"username":"alice","password":"secret"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp errors.SuccessResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.NoError(t, err)
	data, ok := resp.Data.(map[string]interface{})
	assert.True(t, ok)
	assert.NotEmpty(t, data["token"])

	// 会话 Cookie 必须设置
	found := false
	for _, c := range w.Result().Cookies() {
		if c.Name == middleware.AuthCookieName {
			found = true
			assert.NotEmpty(t, c.Value)
			assert.True(t, c.HttpOnly)
		}
	}
	assert.True(t, found)
}

// TestLoginHandlerWrongPassword 测试凭证错误返回 401
func TestLoginHandlerWrongPassword(t *testing.T) {
	mockService := new(MockUserService)
	r := setupAuthRouter(mockService)

	mockService.On("LoginByUsername", mock.Anything, "alice", "wrong").
		Return(nil, errors.New(errors.ErrInvalidCredentials, "invalid credentials"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/account/login",
		strings.NewReader(`{"username":"alice","password":"wrong"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// TestLogoutHandler 测试登出清除会话 Cookie
func TestLogoutHandler(t *testing.T) {
	mockService := new(MockUserService)
	r := setupAuthRouter(mockService)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/account/logout", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	for _, c := range w.Result().Cookies() {
		if c.Name == middleware.AuthCookieName {
			assert.Empty(t, c.Value)
			assert.True(t, c.MaxAge < 0)
		}
	}
}
