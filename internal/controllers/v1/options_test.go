package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	v1 "github.com/kasku/backend/internal/controllers/v1"
	"github.com/kasku/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestOptionsHeaderResources() {
	session := registerTestUser(suite.T())

	optionsHeaderTests := []struct {
		path     string
		response string
	}{
		{"http://example.com/v1", "OPTIONS, GET"},
		{"http://example.com/v1/auth/register", "OPTIONS, POST"},
		{"http://example.com/v1/auth/login", "OPTIONS, POST"},
		{"http://example.com/v1/auth/logout", "OPTIONS, POST"},
		{"http://example.com/v1/auth/me", "OPTIONS, GET"},
		{"http://example.com/v1/profile", "OPTIONS, GET, PATCH, DELETE"},
		{"http://example.com/v1/categories", "OPTIONS, GET, POST"},
		{"http://example.com/v1/transactions", "OPTIONS, GET, POST"},
		{"http://example.com/v1/targets", "OPTIONS, GET, POST"},
		{"http://example.com/v1/targets/summary", "OPTIONS, GET"},
		{"http://example.com/v1/dashboard", "OPTIONS, GET"},
		{"http://example.com/v1/export", "OPTIONS, GET"},
	}

	for _, tt := range optionsHeaderTests {
		suite.T().Run(tt.path, func(t *testing.T) {
			recorder := test.Request(t, http.MethodOptions, tt.path, "", session)

			assert.Equal(t, http.StatusNoContent, recorder.Code)
			assert.Equal(t, tt.response, recorder.Header().Get("allow"))
		})
	}
}

func (suite *TestSuiteStandard) TestOptionsRequireSession() {
	recorder := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/categories", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusUnauthorized)
}

func (suite *TestSuiteStandard) TestOptionsDetail() {
	session := registerTestUser(suite.T())
	other := registerTestUser(suite.T())

	category := createTestCategory(suite.T(), session, v1.CategoryEditable{})
	transaction := createTestTransaction(suite.T(), session, v1.TransactionCreate{})
	target := createTestTarget(suite.T(), session, v1.TargetEditable{})

	tests := []struct {
		name     string
		path     string
		response string
	}{
		{"Category", fmt.Sprintf("http://example.com/v1/categories/%s", category.Data.ID), "OPTIONS, GET, PATCH, DELETE"},
		{"Transaction", fmt.Sprintf("http://example.com/v1/transactions/%s", transaction.Data.ID), "OPTIONS, GET, PATCH, DELETE"},
		{"Target", fmt.Sprintf("http://example.com/v1/targets/%s", target.Data.ID), "OPTIONS, GET, PATCH, DELETE"},
		{"Target allocations", fmt.Sprintf("http://example.com/v1/targets/%s/allocations", target.Data.ID), "OPTIONS, GET"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodOptions, tt.path, "", session)
			assert.Equal(t, http.StatusNoContent, recorder.Code)
			assert.Equal(t, tt.response, recorder.Header().Get("allow"))

			// Resources of other users do not exist for this session
			recorder = test.Request(t, http.MethodOptions, tt.path, "", other)
			assert.Equal(t, http.StatusNotFound, recorder.Code)
		})
	}
}

func (suite *TestSuiteStandard) TestOptionsDetailFails() {
	session := registerTestUser(suite.T())

	tests := []struct {
		path   string
		status int
	}{
		{fmt.Sprintf("http://example.com/v1/categories/%s", uuid.New()), http.StatusNotFound},
		{fmt.Sprintf("http://example.com/v1/transactions/%s", uuid.New()), http.StatusNotFound},
		{fmt.Sprintf("http://example.com/v1/targets/%s", uuid.New()), http.StatusNotFound},
		{fmt.Sprintf("http://example.com/v1/targets/%s/allocations", uuid.New()), http.StatusNotFound},
		{"http://example.com/v1/categories/not-a-uuid", http.StatusBadRequest},
		{"http://example.com/v1/transactions/not-a-uuid", http.StatusBadRequest},
		{"http://example.com/v1/targets/not-a-uuid", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.path, func(t *testing.T) {
			recorder := test.Request(t, http.MethodOptions, tt.path, "", session)
			assert.Equal(t, tt.status, recorder.Code)
		})
	}
}
