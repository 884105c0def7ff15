// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/shopledger/backend/internal/application/usecase/auth"
	"github.com/shopledger/backend/internal/application/usecase/expense"
	"github.com/shopledger/backend/internal/application/usecase/insights"
	"github.com/shopledger/backend/internal/application/usecase/report"
	"github.com/shopledger/backend/internal/application/usecase/sale"
	"github.com/shopledger/backend/internal/infra/server/router"
	"github.com/shopledger/backend/internal/integration/adapters"
	"github.com/shopledger/backend/internal/integration/email"
	"github.com/shopledger/backend/internal/integration/email/templates"
	"github.com/shopledger/backend/internal/integration/entrypoint/controller"
	"github.com/shopledger/backend/internal/integration/entrypoint/middleware"
	"github.com/shopledger/backend/internal/integration/persistence"
	"github.com/shopledger/backend/internal/integration/persistence/model"
	"github.com/shopledger/backend/test/integration/mock"
)

const testJWTSecret = "test-jwt-secret-key-for-testing-purposes"

var tags string

func init() {
	flag.StringVar(&tags, "scenarios", "", "tags to run")
}

func TestFeatures(t *testing.T) {
	flag.Parse()

	suite := godog.TestSuite{
		ScenarioInitializer: func(s *godog.ScenarioContext) {
			InitializeScenario(s)
		},
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"../features"},
			Tags:     tags,
			Strict:   true,
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}

type testContext struct {
	uri           string
	headers       map[string]string
	client        *http.Client
	response      *response
	db            *mock.Db
	serverPort    int
	accessToken   string
	refreshToken  string
	currentUserID uuid.UUID
	lastSaleID    uuid.UUID
	lastExpenseID uuid.UUID
}

type response struct {
	status int
	body   any
}

var serverInit sync.Once
var testDB *mock.Db
var testEmailSender *email.MockEmailSender
var testServerPort int
var portInit sync.Once

func initializePort() {
	portInit.Do(func() {
		testServerPort = findAvailablePort()
		_ = os.Setenv("SERVER_PORT", strconv.Itoa(testServerPort))
		_ = os.Setenv("ENV", "test")
	})
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	initializePort()

	test := &testContext{
		uri:        fmt.Sprintf("http://localhost:%d", testServerPort),
		client:     &http.Client{Timeout: 10 * time.Second},
		serverPort: testServerPort,
		db: mock.NewDb(map[string]any{
			"users":          &model.UserModel{},
			"refresh_tokens": &model.RefreshTokenModel{},
			"sales":          &model.SaleModel{},
			"expenses":       &model.ExpenseModel{},
		}),
	}

	testDB = test.db

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		test.before()
		return ctx, nil
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)

	// User setup steps
	ctx.Given(`^a user exists with email "([^"]*)"$`, test.aUserExistsWithEmail)
	ctx.Given(`^a user exists with email "([^"]*)" and password "([^"]*)"$`, test.aUserExistsWithEmailAndPassword)
	ctx.Given(`^I am logged in as "([^"]*)"$`, test.iAmLoggedInAs)
	ctx.Given(`^the user is logged in with valid tokens$`, test.theUserIsLoggedInWithValidTokens)

	// Ledger setup steps
	ctx.Given(`^a sale exists with item "([^"]*)" quantity (\d+) and price "([^"]*)"$`, test.aSaleExistsWithItemQuantityAndPrice)
	ctx.Given(`^a sale of "([^"]*)" was recorded (\d+) days ago$`, test.aSaleWasRecordedDaysAgo)
	ctx.Given(`^an expense exists with name "([^"]*)" category "([^"]*)" and amount "([^"]*)"$`, test.anExpenseExistsWithNameCategoryAndAmount)

	// Header steps
	ctx.Given(`^the header is empty$`, test.theHeaderIsEmpty)
	ctx.Given(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Then(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, test.theDbShouldContainObjectsInWithTheValues)

	// Email assertion steps
	ctx.Then(`^(\d+) emails should have been sent$`, test.emailsShouldHaveBeenSent)
}

func findAvailablePort() int {
	listener, err := net.Listen("tcp", ":0")
	if err != nil {
		panic(err)
	}
	defer listener.Close()
	return listener.Addr().(*net.TCPAddr).Port
}

func (t *testContext) before() {
	t.headers = make(map[string]string)
	t.accessToken = ""
	t.refreshToken = ""
	t.currentUserID = uuid.Nil
	t.lastSaleID = uuid.Nil
	t.lastExpenseID = uuid.Nil

	if t.db != nil {
		_ = t.db.ClearDB()
	}
	_ = mock.ClearRedis(mock.NewRedis())
	if testEmailSender != nil {
		testEmailSender.Reset()
	}
}

func (t *testContext) startServer() {
	serverInit.Do(func() {
		go func() {
			gin.SetMode(gin.TestMode)

			// Create repositories
			userRepo := persistence.NewUserRepository(testDB.DbConn)
			tokenRepo := persistence.NewTokenRepository(testDB.DbConn)
			saleRepo := persistence.NewSaleRepository(testDB.DbConn)
			expenseRepo := persistence.NewExpenseRepository(testDB.DbConn)
			insightsCache := persistence.NewInsightsCache(mock.NewRedis())

			// Create adapters/services
			passwordService := adapters.NewPasswordService()
			tokenService := adapters.NewTokenService(testJWTSecret, tokenRepo)
			advisor := adapters.NewGeminiAdvisor("")

			// Create auth use cases
			registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
			loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
			refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
			logoutUseCase := auth.NewLogoutUserUseCase(tokenService)

			// Create sale use cases
			createSaleUseCase := sale.NewCreateSaleUseCase(saleRepo, insightsCache)
			updateSaleUseCase := sale.NewUpdateSaleUseCase(saleRepo, insightsCache)
			deleteSaleUseCase := sale.NewDeleteSaleUseCase(saleRepo, insightsCache)
			listSalesUseCase := sale.NewListSalesUseCase(saleRepo)
			clearSalesUseCase := sale.NewClearSalesUseCase(saleRepo, insightsCache)

			// Create expense use cases
			createExpenseUseCase := expense.NewCreateExpenseUseCase(expenseRepo, insightsCache)
			updateExpenseUseCase := expense.NewUpdateExpenseUseCase(expenseRepo, insightsCache)
			deleteExpenseUseCase := expense.NewDeleteExpenseUseCase(expenseRepo, insightsCache)
			listExpensesUseCase := expense.NewListExpensesUseCase(expenseRepo)
			clearExpensesUseCase := expense.NewClearExpensesUseCase(expenseRepo, insightsCache)

			// Create insights and report use cases
			getInsightsUseCase := insights.NewGetInsightsUseCase(saleRepo, expenseRepo, insightsCache, time.Minute)
			getAdviceUseCase := insights.NewGetAdviceUseCase(getInsightsUseCase, userRepo, advisor)

			renderer, err := templates.NewRenderer()
			if err != nil {
				panic(fmt.Sprintf("failed to parse report templates: %v", err))
			}
			testEmailSender = email.NewMockEmailSender()
			sendWeeklyUseCase := report.NewSendWeeklyReportUseCase(getInsightsUseCase, userRepo, renderer, testEmailSender)

			// Create controllers
			healthController := controller.NewHealthController(
				func() bool { return testDB != nil && testDB.DbConn != nil },
				func() bool { return true },
			)
			authController := controller.NewAuthController(
				registerUseCase,
				loginUseCase,
				refreshTokenUseCase,
				logoutUseCase,
			)
			saleController := controller.NewSaleController(
				createSaleUseCase,
				updateSaleUseCase,
				deleteSaleUseCase,
				listSalesUseCase,
				clearSalesUseCase,
			)
			expenseController := controller.NewExpenseController(
				createExpenseUseCase,
				updateExpenseUseCase,
				deleteExpenseUseCase,
				listExpensesUseCase,
				clearExpensesUseCase,
			)
			insightsController := controller.NewInsightsController(getInsightsUseCase, getAdviceUseCase)
			reportController := controller.NewReportController(sendWeeklyUseCase)

			// Create middleware
			loginRateLimiter := middleware.NewRateLimiter()
			authMiddleware := middleware.NewAuthMiddleware(tokenService)

			r := router.NewRouter(
				healthController,
				authController,
				saleController,
				expenseController,
				insightsController,
				reportController,
				loginRateLimiter,
				authMiddleware,
			)
			engine := r.Setup("test")

			addr := fmt.Sprintf(":%d", testServerPort)
			server := &http.Server{
				Addr:    addr,
				Handler: engine,
			}

			_ = server.ListenAndServe()
		}()
	})

	// Wait for server to be ready
	for i := 0; i < 50; i++ {
		resp, err := http.Get(t.uri + "/health")
		if err == nil && resp.StatusCode == http.StatusOK {
			resp.Body.Close()
			return
		}
		time.Sleep(100 * time.Millisecond)
	}
}

func (t *testContext) theAPIServerIsRunning() error {
	t.startServer()
	return nil
}

func (t *testContext) aUserExistsWithEmail(userEmail string) error {
	return t.createUser(userEmail, "SecurePass123!", "Test Owner")
}

func (t *testContext) aUserExistsWithEmailAndPassword(userEmail, password string) error {
	return t.createUser(userEmail, password, "Test Owner")
}

func (t *testContext) createUser(userEmail, password, name string) error {
	userID := uuid.New()
	t.currentUserID = userID

	now := time.Now().UTC()
	user := &model.UserModel{
		ID:           userID,
		Email:        userEmail,
		Name:         name,
		ShopName:     "Test Shop",
		Currency:     "USD",
		PasswordHash: hashPassword(password),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	return t.db.DbConn.Create(user).Error
}

func hashPassword(password string) string {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		panic(fmt.Sprintf("failed to hash password: %v", err))
	}
	return string(hashedBytes)
}

// iAmLoggedInAs ensures the user exists and issues fresh tokens for them.
func (t *testContext) iAmLoggedInAs(userEmail string) error {
	var userModel model.UserModel
	if err := t.db.DbConn.Where("email = ?", userEmail).First(&userModel).Error; err != nil {
		if err := t.createUser(userEmail, "SecurePass123!", "Test Owner"); err != nil {
			return err
		}
		if err := t.db.DbConn.Where("email = ?", userEmail).First(&userModel).Error; err != nil {
			return fmt.Errorf("user not found: %w", err)
		}
	}

	t.currentUserID = userModel.ID
	return t.issueTokens(userEmail)
}

func (t *testContext) theUserIsLoggedInWithValidTokens() error {
	return t.issueTokens("test@example.com")
}

func (t *testContext) issueTokens(userEmail string) error {
	now := time.Now().UTC()

	accessTokenString, err := signToken(t.currentUserID, userEmail, "access", now, 15*time.Minute)
	if err != nil {
		return fmt.Errorf("failed to generate access token: %w", err)
	}
	t.accessToken = accessTokenString

	refreshTokenString, err := signToken(t.currentUserID, userEmail, "refresh", now, 7*24*time.Hour)
	if err != nil {
		return fmt.Errorf("failed to generate refresh token: %w", err)
	}
	t.refreshToken = refreshTokenString

	refreshTokenModel := &model.RefreshTokenModel{
		ID:          uuid.New(),
		Token:       t.refreshToken,
		UserID:      t.currentUserID,
		Invalidated: false,
		ExpiresAt:   now.Add(7 * 24 * time.Hour),
		CreatedAt:   now,
	}

	return t.db.DbConn.Create(refreshTokenModel).Error
}

func signToken(userID uuid.UUID, userEmail, tokenType string, now time.Time, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id":    userID.String(),
		"email":      userEmail,
		"token_type": tokenType,
		"exp":        jwt.NewNumericDate(now.Add(duration)),
		"iat":        jwt.NewNumericDate(now),
		"nbf":        jwt.NewNumericDate(now),
		"iss":        "shopledger",
		"sub":        userID.String(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(testJWTSecret))
}

func (t *testContext) aSaleExistsWithItemQuantityAndPrice(item string, quantity int, price string) error {
	priceDecimal, err := decimal.NewFromString(price)
	if err != nil {
		return fmt.Errorf("invalid price %q: %w", price, err)
	}
	return t.createSale(item, quantity, priceDecimal, time.Now().UTC())
}

func (t *testContext) aSaleWasRecordedDaysAgo(item string, days int) error {
	date := time.Now().UTC().AddDate(0, 0, -days)
	return t.createSale(item, 1, decimal.NewFromInt(10), date)
}

func (t *testContext) createSale(item string, quantity int, price decimal.Decimal, date time.Time) error {
	saleID := uuid.New()
	t.lastSaleID = saleID

	now := time.Now().UTC()
	saleModel := &model.SaleModel{
		ID:            saleID,
		UserID:        t.currentUserID,
		ItemName:      item,
		Quantity:      quantity,
		Price:         price,
		Total:         price.Mul(decimal.NewFromInt(int64(quantity))),
		PaymentMethod: "Cash",
		Date:          date,
		Discount:      decimal.Zero,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	return t.db.DbConn.Create(saleModel).Error
}

func (t *testContext) anExpenseExistsWithNameCategoryAndAmount(name, category, amount string) error {
	amountDecimal, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", amount, err)
	}

	expenseID := uuid.New()
	t.lastExpenseID = expenseID

	now := time.Now().UTC()
	expenseModel := &model.ExpenseModel{
		ID:        expenseID,
		UserID:    t.currentUserID,
		Name:      name,
		Category:  category,
		Amount:    amountDecimal,
		Date:      now,
		CreatedAt: now,
		UpdatedAt: now,
	}

	return t.db.DbConn.Create(expenseModel).Error
}

func (t *testContext) theHeaderIsEmpty() error {
	t.headers = make(map[string]string)
	t.accessToken = "" // Clear access token to simulate unauthenticated request
	return nil
}

func (t *testContext) theHeaderContainsTheKeyWith(key, value string) error {
	t.headers[key] = value
	return nil
}

func (t *testContext) iSendARequestTo(method, path string) error {
	path = t.replacePlaceholders(path)
	return t.executeRequest(method, path, nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	path = t.replacePlaceholders(path)

	var payload []byte
	if body != nil && body.Content != "" {
		payload = []byte(t.replacePlaceholders(body.Content))
	}
	return t.executeRequest(method, path, payload)
}

func (t *testContext) replacePlaceholders(content string) string {
	content = strings.ReplaceAll(content, "{{refresh_token}}", t.refreshToken)
	content = strings.ReplaceAll(content, "{{access_token}}", t.accessToken)
	content = strings.ReplaceAll(content, "{{sale_id}}", t.lastSaleID.String())
	content = strings.ReplaceAll(content, "{{expense_id}}", t.lastExpenseID.String())
	return content
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	var req *http.Request
	var err error

	url := t.uri + path

	if payload != nil {
		req, err = http.NewRequest(method, url, bytes.NewReader(payload))
	} else {
		req, err = http.NewRequest(method, url, nil)
	}
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")

	if t.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+t.accessToken)
	}

	for key, value := range t.headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	t.response = &response{
		status: resp.StatusCode,
	}

	var responseBody map[string]any
	if err := json.Unmarshal(bodyBytes, &responseBody); err != nil {
		t.response.body = string(bodyBytes)
		return nil
	}
	t.response.body = responseBody

	// Capture record IDs from create responses
	if idStr, ok := responseBody["id"].(string); ok {
		if id, err := uuid.Parse(idStr); err == nil {
			if _, isSale := responseBody["item_name"]; isSale {
				t.lastSaleID = id
			} else if _, isExpense := responseBody["category"]; isExpense {
				t.lastExpenseID = id
			}
		}
	}

	// Capture tokens from auth responses
	if token, ok := responseBody["access_token"].(string); ok && token != "" {
		t.accessToken = token
	}
	if token, ok := responseBody["refresh_token"].(string); ok && token != "" {
		t.refreshToken = token
	}

	return nil
}

func (t *testContext) theResponseStatusShouldBe(expectedStatus int) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if t.response.status != expectedStatus {
		return fmt.Errorf("expected status %d, got %d (body: %v)", expectedStatus, t.response.status, t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldBeJSON() error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if _, ok := t.response.body.(map[string]any); !ok {
		return fmt.Errorf("response is not JSON: %v", t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldContain(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	if _, exists := body[field]; !exists {
		return fmt.Errorf("response does not contain field '%s': %v", field, body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expectedValue string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	value := getFieldValue(body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}

	actualValue := fmt.Sprintf("%v", value)
	if actualValue != expectedValue {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expectedValue, actualValue)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	if getFieldValue(body, field) == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}
	return nil
}

func (t *testContext) theDbShouldContainObjectsInTheTable(quantity int, table string) error {
	if entity, ok := t.db.GetModel(table); ok {
		entityType := reflect.TypeOf(entity).Elem()
		entitySlice := reflect.MakeSlice(reflect.SliceOf(entityType), 0, 0)
		entitySlicePtr := reflect.New(entitySlice.Type())
		entitySlicePtr.Elem().Set(entitySlice)

		result := t.db.DbConn.Unscoped().Find(entitySlicePtr.Interface())
		if result.Error != nil {
			return result.Error
		}

		count := entitySlicePtr.Elem().Len()
		if count != quantity {
			return fmt.Errorf("expected %d objects in '%s', got %d", quantity, table, count)
		}
		return nil
	}
	return fmt.Errorf("table '%s' not found in models", table)
}

func (t *testContext) theDbShouldContainObjectsInWithTheValues(quantity int, table string, content *godog.DocString) error {
	var criteria map[string]any
	if err := json.Unmarshal([]byte(t.replacePlaceholders(content.Content)), &criteria); err != nil {
		return err
	}

	if entity, ok := t.db.GetModel(table); ok {
		entityType := reflect.TypeOf(entity).Elem()
		entitySlice := reflect.MakeSlice(reflect.SliceOf(entityType), 0, 0)
		entitySlicePtr := reflect.New(entitySlice.Type())
		entitySlicePtr.Elem().Set(entitySlice)

		query := t.db.DbConn.Unscoped()
		for key, value := range criteria {
			query = query.Where(fmt.Sprintf("%s = ?", key), value)
		}

		result := query.Find(entitySlicePtr.Interface())
		if result.Error != nil && !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return result.Error
		}

		count := entitySlicePtr.Elem().Len()
		if count != quantity {
			return fmt.Errorf("expected %d objects in '%s' with criteria %v, got %d", quantity, table, criteria, count)
		}
		return nil
	}
	return fmt.Errorf("table '%s' not found in models", table)
}

func (t *testContext) emailsShouldHaveBeenSent(quantity int) error {
	if testEmailSender == nil {
		return errors.New("email sender not initialized")
	}
	if len(testEmailSender.SentEmails) != quantity {
		return fmt.Errorf("expected %d sent emails, got %d", quantity, len(testEmailSender.SentEmails))
	}
	return nil
}

func getFieldValue(object any, dotSeparatedField string) any {
	if object == nil {
		return nil
	}

	var objectMap map[string]any
	switch v := object.(type) {
	case map[string]any:
		objectMap = v
	default:
		objectJSON, _ := json.Marshal(object)
		if err := json.Unmarshal(objectJSON, &objectMap); err != nil {
			return nil
		}
	}

	fields := strings.Split(dotSeparatedField, ".")
	var field any = objectMap

	for _, currentField := range fields {
		if field == nil {
			return nil
		}

		if i, err := strconv.Atoi(currentField); err == nil {
			if arr, ok := field.([]any); ok && i < len(arr) {
				field = arr[i]
			} else {
				return nil
			}
		} else {
			if m, ok := field.(map[string]any); ok {
				field = m[currentField]
			} else {
				return nil
			}
		}
	}

	return field
}
