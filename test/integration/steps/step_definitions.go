package steps

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/cucumber/godog"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/moneytrail/backend/config"
	"github.com/moneytrail/backend/internal/domain/entity"
	"github.com/moneytrail/backend/internal/infra/dependency"
	"github.com/moneytrail/backend/internal/integration/persistence/model"
	"github.com/moneytrail/backend/test/integration/mock"
)

const testJWTSecret = "test-jwt-secret-key-for-testing-purposes"

var testServerPort int
var envInit sync.Once

// initializeEnvironment picks a free port and pins the test configuration
// before the server or any config.Load call runs.
func initializeEnvironment() {
	envInit.Do(func() {
		testServerPort = findAvailablePort()
		_ = os.Setenv("SERVER_PORT", strconv.Itoa(testServerPort))
		_ = os.Setenv("ENV", "test")
		_ = os.Setenv("JWT_SECRET", testJWTSecret)
		_ = os.Setenv("UNLOCK_PASSPHRASE", testPassphrase)
		_ = os.Setenv("ALERT_WORKER_ENABLED", "false")
		_ = os.Setenv("ALERT_RECIPIENT_EMAIL", "owner@example.com")
		_ = os.Setenv("RESEND_API_KEY", "")
		_ = os.Setenv("GEMINI_API_KEY", "")
	})
}

func findAvailablePort() int {
	listener, err := net.Listen("tcp", ":0")
	if err != nil {
		panic(err)
	}
	defer listener.Close()
	return listener.Addr().(*net.TCPAddr).Port
}

// startServer boots the API once for the whole suite, wired against the
// shared test database and miniredis.
func (t *testContext) startServer() {
	serverInit.Do(func() {
		go func() {
			cfg := config.Load()
			redisClient := mock.NewRedis()

			injector, err := dependency.NewInjector(cfg, testDB.DbConn, redisClient)
			if err != nil {
				panic("failed to wire test dependencies: " + err.Error())
			}

			engine := injector.Router.Setup("test")

			server := &http.Server{
				Addr:    fmt.Sprintf(":%d", testServerPort),
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

// theUnlockPassphraseIsConfigured seeds the settings row with the bcrypt
// hash of the test passphrase.
func (t *testContext) theUnlockPassphraseIsConfigured() error {
	var existing model.SettingsModel
	err := t.db.DbConn.Where("id = ?", model.SettingsRowID).First(&existing).Error
	if err == nil {
		existing.PassphraseHash = hashPassphrase(testPassphrase)
		existing.UpdatedAt = time.Now().UTC()
		return t.db.DbConn.Save(&existing).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	settings := entity.DefaultSettings()
	settings.PassphraseHash = hashPassphrase(testPassphrase)
	settings.UpdatedAt = time.Now().UTC()
	return t.db.DbConn.Create(model.SettingsFromEntity(settings)).Error
}

// theSessionIsUnlocked configures the passphrase and unlocks over HTTP,
// capturing the issued token pair.
func (t *testContext) theSessionIsUnlocked() error {
	t.startServer()

	if err := t.theUnlockPassphraseIsConfigured(); err != nil {
		return err
	}

	payload := fmt.Sprintf(`{"passphrase": %q}`, testPassphrase)
	resp, err := t.client.Post(t.uri+"/api/v1/auth/unlock", "application/json", strings.NewReader(payload))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unlock failed with status %d: %s", resp.StatusCode, body)
	}

	var tokens struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
	}
	if err := json.Unmarshal(body, &tokens); err != nil {
		return fmt.Errorf("failed to parse unlock response: %w", err)
	}

	t.accessToken = tokens.AccessToken
	t.refreshToken = tokens.RefreshToken
	return nil
}

func hashPassphrase(passphrase string) string {
	hashed, err := bcrypt.GenerateFromPassword([]byte(passphrase), bcrypt.DefaultCost)
	if err != nil {
		panic(fmt.Sprintf("failed to hash passphrase: %v", err))
	}
	return string(hashed)
}

// aTransactionExists seeds one transaction. The date "today" resolves to the
// current day so current-month scenarios stay deterministic.
func (t *testContext) aTransactionExists(name string, amount int, txnType, tag, person, date string) error {
	occurredAt, err := parseSeedDate(date)
	if err != nil {
		return err
	}

	transactionID := uuid.New()
	t.lastTransactionID = transactionID
	t.transactionIDs = append(t.transactionIDs, transactionID)

	now := time.Now().UTC()
	transaction := &model.TransactionModel{
		ID:         transactionID,
		OccurredAt: occurredAt,
		Amount:     int64(amount),
		Type:       txnType,
		Name:       name,
		Tag:        tag,
		Person:     person,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	return t.db.DbConn.Create(transaction).Error
}

// aBudgetExists seeds one monthly budget. The month "current" resolves to
// the current month.
func (t *testContext) aBudgetExists(name string, amount int, tag, month string) error {
	if month == "current" {
		month = time.Now().UTC().Format("2006-01")
	}

	budgetID := uuid.New()
	t.budgetID = budgetID

	now := time.Now().UTC()
	budget := &model.BudgetModel{
		ID:        budgetID,
		Name:      name,
		Amount:    int64(amount),
		Type:      string(entity.BudgetTypeMonthly),
		Category:  string(entity.BudgetCategoryNeeds),
		Tags:      pq.StringArray{tag},
		Month:     &month,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return t.db.DbConn.Create(budget).Error
}

func (t *testContext) anInvestmentGoalExists(name string, target int) error {
	goalID := uuid.New()
	t.goalID = goalID

	now := time.Now().UTC()
	goal := &model.InvestmentGoalModel{
		ID:           goalID,
		Name:         name,
		TargetAmount: int64(target),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	return t.db.DbConn.Create(goal).Error
}

func parseSeedDate(date string) (time.Time, error) {
	if date == "today" {
		now := time.Now().UTC()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid seed date %q: %w", date, err)
	}
	return parsed, nil
}

func (t *testContext) theHeaderIsEmpty() error {
	t.headers = make(map[string]string)
	t.accessToken = "" // Clear access token to simulate an unauthenticated request
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
	content = strings.ReplaceAll(content, "{{access_token}}", t.accessToken)
	content = strings.ReplaceAll(content, "{{refresh_token}}", t.refreshToken)
	content = strings.ReplaceAll(content, "{{transaction_id}}", t.lastTransactionID.String())
	content = strings.ReplaceAll(content, "{{budget_id}}", t.budgetID.String())
	content = strings.ReplaceAll(content, "{{goal_id}}", t.goalID.String())
	content = strings.ReplaceAll(content, "{{current_month}}", time.Now().UTC().Format("2006-01"))

	if len(t.transactionIDs) > 0 {
		ids := make([]string, len(t.transactionIDs))
		for i, id := range t.transactionIDs {
			ids[i] = fmt.Sprintf("%q", id.String())
		}
		content = strings.ReplaceAll(content, "{{transaction_ids}}", "["+strings.Join(ids, ", ")+"]")
	}

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
	t.captureIDs(responseBody)

	return nil
}

// captureIDs records created resource IDs so later steps can reference them
// through placeholders. The resource kind is inferred from sibling fields.
func (t *testContext) captureIDs(body map[string]any) {
	idStr, ok := body["id"].(string)
	if !ok {
		return
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return
	}

	if _, hasTarget := body["target_amount"]; hasTarget {
		t.goalID = id
		return
	}
	if _, hasTags := body["tags"]; hasTags {
		t.budgetID = id
		return
	}

	t.lastTransactionID = id
	t.transactionIDs = append(t.transactionIDs, id)
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
	entityModel, ok := t.db.GetModel(table)
	if !ok {
		return fmt.Errorf("table '%s' not found in models", table)
	}

	entityType := reflect.TypeOf(entityModel).Elem()
	entitySlicePtr := reflect.New(reflect.SliceOf(entityType))

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

func (t *testContext) theDbShouldContainObjectsInWithTheValues(quantity int, table string, content *godog.DocString) error {
	var criteria map[string]any
	if err := json.Unmarshal([]byte(content.Content), &criteria); err != nil {
		return err
	}

	entityModel, ok := t.db.GetModel(table)
	if !ok {
		return fmt.Errorf("table '%s' not found in models", table)
	}

	entityType := reflect.TypeOf(entityModel).Elem()
	entitySlicePtr := reflect.New(reflect.SliceOf(entityType))

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

func getFieldValue(object any, dotSeparatedField string) any {
	if object == nil {
		return nil
	}

	objectMap, ok := object.(map[string]any)
	if !ok {
		return nil
	}

	fields := strings.Split(dotSeparatedField, ".")
	var field any = objectMap

	for _, currentField := range fields {
		if field == nil {
			return nil
		}

		if i, err := strconv.Atoi(currentField); err == nil {
			arr, ok := field.([]any)
			if !ok || i >= len(arr) {
				return nil
			}
			field = arr[i]
			continue
		}

		m, ok := field.(map[string]any)
		if !ok {
			return nil
		}
		field = m[currentField]
	}

	return field
}
