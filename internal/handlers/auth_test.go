package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/copilot-demo/task-manager/internal/constants"
	"github.com/copilot-demo/task-manager/internal/models"
	"github.com/copilot-demo/task-manager/internal/repository"
	"github.com/copilot-demo/task-manager/internal/services"
)

// AuthHandlerTestSuite defines the test suite for AuthHandler.
type AuthHandlerTestSuite struct {
	suite.Suite
	db      *gorm.DB
	service *services.AuthService
	handler *AuthHandler
}

// SetupTest runs before each test.
func (suite *AuthHandlerTestSuite) SetupTest() {
	var err error
	suite.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	suite.Require().NoError(err)

	err = suite.db.AutoMigrate(&models.User{})
	suite.Require().NoError(err)

	tokens := services.NewTokenManager(services.TokenConfig{
		SecretKey:      "test-secret-key",
		AccessTokenTTL: time.Hour,
		Issuer:         "task-manager-test",
	})
	suite.service = services.NewAuthService(repository.NewUserRepository(suite.db), tokens)
	suite.handler = NewAuthHandler(suite.service)

	gin.SetMode(gin.TestMode)
}

// TearDownTest runs after each test.
func (suite *AuthHandlerTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

func (suite *AuthHandlerTestSuite) createJSONContext(method, url string, payload map[string]interface{}) (*gin.Context, *httptest.ResponseRecorder) {
	body, err := json.Marshal(payload)
	suite.Require().NoError(err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	return c, w
}

func (suite *AuthHandlerTestSuite) registerUser(username, email, password string) *models.User {
	user, err := suite.service.Register(services.RegisterInput{
		Username: username,
		Email:    email,
		Password: password,
	})
	suite.Require().NoError(err)
	return user
}

// TestRegister_Success tests successful account creation.
func (suite *AuthHandlerTestSuite) TestRegister_Success() {
	c, w := suite.createJSONContext("POST", "/api/auth/register", map[string]interface{}{
		"username":   "alice_dev",
		"email":      "alice@example.com",
		"password":   "correcthorse",
		"first_name": "Alice",
	})

	suite.handler.Register(c)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "alice_dev", response["username"])
	assert.Equal(suite.T(), "USER", response["role"])
	assert.NotContains(suite.T(), w.Body.String(), "password")
}

// TestRegister_DuplicateUsername tests registration with a taken username.
func (suite *AuthHandlerTestSuite) TestRegister_DuplicateUsername() {
	suite.registerUser("bob_dev", "bob@example.com", "correcthorse")

	c, w := suite.createJSONContext("POST", "/api/auth/register", map[string]interface{}{
		"username": "bob_dev",
		"email":    "other@example.com",
		"password": "correcthorse",
	})

	suite.handler.Register(c)

	assert.Equal(suite.T(), http.StatusConflict, w.Code)
}

// TestRegister_InvalidEmail tests registration with a malformed email.
func (suite *AuthHandlerTestSuite) TestRegister_InvalidEmail() {
	c, w := suite.createJSONContext("POST", "/api/auth/register", map[string]interface{}{
		"username": "carol_dev",
		"email":    "not-an-email",
		"password": "correcthorse",
	})

	suite.handler.Register(c)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

// TestRegister_ShortPassword tests registration with a too-short password.
func (suite *AuthHandlerTestSuite) TestRegister_ShortPassword() {
	c, w := suite.createJSONContext("POST", "/api/auth/register", map[string]interface{}{
		"username": "dave_dev",
		"email":    "dave@example.com",
		"password": "short",
	})

	suite.handler.Register(c)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

// TestLogin_Success tests login returning a bearer token.
func (suite *AuthHandlerTestSuite) TestLogin_Success() {
	suite.registerUser("erin_dev", "erin@example.com", "correcthorse")

	c, w := suite.createJSONContext("POST", "/api/auth/login", map[string]interface{}{
		"username": "erin_dev",
		"password": "correcthorse",
	})

	suite.handler.Login(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.NotEmpty(suite.T(), response["access_token"])
	assert.Equal(suite.T(), "Bearer", response["token_type"])

	user := response["user"].(map[string]interface{})
	assert.Equal(suite.T(), "erin_dev", user["username"])
}

// TestLogin_WrongPassword tests login with bad credentials.
func (suite *AuthHandlerTestSuite) TestLogin_WrongPassword() {
	suite.registerUser("frank_dev", "frank@example.com", "correcthorse")

	c, w := suite.createJSONContext("POST", "/api/auth/login", map[string]interface{}{
		"username": "frank_dev",
		"password": "wrongpassword",
	})

	suite.handler.Login(c)

	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)
}

// TestLogin_UnknownUser tests login for a user that does not exist.
func (suite *AuthHandlerTestSuite) TestLogin_UnknownUser() {
	c, w := suite.createJSONContext("POST", "/api/auth/login", map[string]interface{}{
		"username": "nobody",
		"password": "correcthorse",
	})

	suite.handler.Login(c)

	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)
}

// TestGetCurrentUser_Success tests the /me endpoint.
func (suite *AuthHandlerTestSuite) TestGetCurrentUser_Success() {
	user := suite.registerUser("grace_dev", "grace@example.com", "correcthorse")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/api/auth/me", nil)
	c.Set(constants.ContextKeyUserID, user.ID)
	c.Set(constants.ContextKeyRole, user.Role)

	suite.handler.GetCurrentUser(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "grace_dev", response["username"])
}

// TestGetCurrentUser_Unauthorized tests /me without an actor in context.
func (suite *AuthHandlerTestSuite) TestGetCurrentUser_Unauthorized() {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/api/auth/me", nil)

	suite.handler.GetCurrentUser(c)

	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)
}

// TestAuthHandlerTestSuite runs the test suite.
func TestAuthHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}
