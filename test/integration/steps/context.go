// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/moneytrail/backend/internal/integration/persistence/model"
	"github.com/moneytrail/backend/test/integration/mock"
)

// testPassphrase unlocks the session in every scenario.
const testPassphrase = "correct-horse-battery"

// testContext holds the test state for each scenario.
type testContext struct {
	uri        string
	headers    map[string]string
	client     *http.Client
	response   *response
	db         *mock.Db
	serverPort int

	accessToken  string
	refreshToken string

	budgetID          uuid.UUID
	goalID            uuid.UUID
	transactionIDs    []uuid.UUID
	lastTransactionID uuid.UUID
}

type response struct {
	status int
	body   any
}

var serverInit sync.Once
var testDB *mock.Db

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
		initializeEnvironment()
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	initializeEnvironment()

	test := &testContext{
		uri:        fmt.Sprintf("http://localhost:%d", testServerPort),
		client:     &http.Client{Timeout: 10 * time.Second},
		serverPort: testServerPort,
		db: mock.NewDb(map[string]any{
			"transactions":     &model.TransactionModel{},
			"budgets":          &model.BudgetModel{},
			"settings":         &model.SettingsModel{},
			"tag_categories":   &model.TagCategoryModel{},
			"investment_goals": &model.InvestmentGoalModel{},
			"alert_queue":      &model.AlertJobModel{},
		}),
	}

	testDB = test.db

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		test.before()
		return ctx, nil
	})

	// Background steps
	ctx.Step(`^the API server is running$`, test.theAPIServerIsRunning)

	// Session setup steps
	ctx.Step(`^the unlock passphrase is configured$`, test.theUnlockPassphraseIsConfigured)
	ctx.Step(`^the session is unlocked$`, test.theSessionIsUnlocked)

	// Data seeding steps
	ctx.Step(`^a transaction exists with name "([^"]*)", amount (\d+), type "([^"]*)", tag "([^"]*)" and person "([^"]*)" on "([^"]*)"$`, test.aTransactionExists)
	ctx.Step(`^a budget exists named "([^"]*)" with amount (\d+) for tag "([^"]*)" in month "([^"]*)"$`, test.aBudgetExists)
	ctx.Step(`^an investment goal exists named "([^"]*)" with target (\d+)$`, test.anInvestmentGoalExists)

	// Header steps
	ctx.Step(`^the header is empty$`, test.theHeaderIsEmpty)
	ctx.Step(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)

	// Request steps
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Response assertion steps
	ctx.Step(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Step(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Step(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Step(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)

	// Database assertion steps
	ctx.Step(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Step(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, test.theDbShouldContainObjectsInWithTheValues)
}

func (t *testContext) before() {
	t.headers = make(map[string]string)
	t.accessToken = ""
	t.refreshToken = ""
	t.budgetID = uuid.Nil
	t.goalID = uuid.Nil
	t.transactionIDs = nil
	t.lastTransactionID = uuid.Nil
	t.response = nil

	if t.db != nil {
		_ = t.db.ClearDB()
	}
}
