package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	v1 "github.com/kasku/backend/internal/controllers/v1"
	"github.com/kasku/backend/internal/models"
	"github.com/kasku/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestCategoriesCreate() {
	session := registerTestUser(suite.T())

	c := createTestCategory(suite.T(), session, v1.CategoryEditable{Name: " Kopi ", Type: models.TypeExpense})
	suite.Assert().Equal("Kopi", c.Data.Name)
	suite.Assert().Equal("#6b7280", c.Data.Color, "Default color is set")
	suite.Assert().Equal("📦", c.Data.Icon, "Default icon is set")
	suite.Assert().Equal(fmt.Sprintf("http://example.com/v1/categories/%s", c.Data.ID), c.Data.Links.Self)
	suite.Assert().Equal(fmt.Sprintf("http://example.com/v1/transactions?category=%s", c.Data.ID), c.Data.Links.Transactions)
}

func (suite *TestSuiteStandard) TestCategoriesCreateFails() {
	session := registerTestUser(suite.T())

	tests := []struct {
		name     string
		category v1.CategoryEditable
		err      string
	}{
		{"No name", v1.CategoryEditable{Name: " ", Type: models.TypeExpense}, models.ErrCategoryNameEmpty.Error()},
		{"Invalid type", v1.CategoryEditable{Name: "Kopi", Type: "transfer"}, models.ErrTransactionTypeInvalid.Error()},
		{"Duplicate name", v1.CategoryEditable{Name: "Makanan", Type: models.TypeExpense}, models.ErrCategoryNameNotUnique.Error()},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/categories", []v1.CategoryEditable{tt.category}, session)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)

			var response v1.CategoryCreateResponse
			test.DecodeResponse(t, &r, &response)
			assert.Equal(t, tt.err, *response.Data[0].Error)
		})
	}

	// The same name is fine for the other type
	createTestCategory(suite.T(), session, v1.CategoryEditable{Name: "Makanan", Type: models.TypeIncome})

	// And for other users
	createTestCategory(suite.T(), registerTestUser(suite.T()), v1.CategoryEditable{Name: "Kopi", Type: models.TypeExpense})
}

func (suite *TestSuiteStandard) TestCategoriesCreatePartial() {
	session := registerTestUser(suite.T())

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/categories", []v1.CategoryEditable{
		{Name: "Kopi", Type: models.TypeExpense},
		{Name: "", Type: models.TypeExpense},
	}, session)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response v1.CategoryCreateResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Len(response.Data, 2)
	suite.Assert().Equal("Kopi", response.Data[0].Data.Name)
	suite.Assert().Nil(response.Data[0].Error)
	suite.Assert().Equal(models.ErrCategoryNameEmpty.Error(), *response.Data[1].Error)
}

func (suite *TestSuiteStandard) TestCategoriesGetFilter() {
	session := registerTestUser(suite.T())
	createTestCategory(suite.T(), session, v1.CategoryEditable{Name: "Kopi Susu", Type: models.TypeExpense})
	createTestCategory(suite.T(), registerTestUser(suite.T()), v1.CategoryEditable{Name: "Kopi Hitam", Type: models.TypeExpense})

	tests := []struct {
		name   string
		query  string
		length int
		status int
	}{
		{"All", "", len(models.DefaultCategories) + 1, http.StatusOK},
		{"Income", "type=income", 4, http.StatusOK},
		{"Expense", "type=expense", 9, http.StatusOK},
		{"Name", "name=Gaji", 1, http.StatusOK},
		{"Name twice", "name=Lainnya", 2, http.StatusOK},
		{"Name and type", "name=Lainnya&type=expense", 1, http.StatusOK},
		{"Search", "search=kopi", 1, http.StatusOK},
		{"Search no match", "search=tidak-ada", 0, http.StatusOK},
		{"Invalid type", "type=transfer", 0, http.StatusBadRequest},
		{"Empty type", "type=", 0, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/categories?%s", tt.query), nil, session)
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v1.CategoryListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.length)
		})
	}
}

func (suite *TestSuiteStandard) TestCategoriesGetOrder() {
	session := registerTestUser(suite.T())

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/categories?type=income", nil, session)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.CategoryListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	var names []string
	for _, c := range response.Data {
		names = append(names, c.Name)
	}
	suite.Assert().Equal([]string{"Bonus", "Gaji", "Investasi", "Lainnya"}, names)
}

func (suite *TestSuiteStandard) TestCategoriesGetSingle() {
	session := registerTestUser(suite.T())
	c := createTestCategory(suite.T(), session, v1.CategoryEditable{})
	foreign := createTestCategory(suite.T(), registerTestUser(suite.T()), v1.CategoryEditable{})

	tests := []struct {
		name   string
		id     string
		status int
		method string
	}{
		{"GET Existing Category", c.Data.ID.String(), http.StatusOK, http.MethodGet},
		{"GET Category of another user", foreign.Data.ID.String(), http.StatusNotFound, http.MethodGet},
		{"GET ID nil", uuid.Nil.String(), http.StatusNotFound, http.MethodGet},
		{"GET No Category with this ID", uuid.New().String(), http.StatusNotFound, http.MethodGet},
		{"GET Invalid ID (positive number)", "23", http.StatusBadRequest, http.MethodGet},
		{"GET Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodGet},
		{"PATCH Category of another user", foreign.Data.ID.String(), http.StatusNotFound, http.MethodPatch},
		{"PATCH Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodPatch},
		{"DELETE Category of another user", foreign.Data.ID.String(), http.StatusNotFound, http.MethodDelete},
		{"DELETE Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodDelete},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, tt.method, fmt.Sprintf("http://example.com/v1/categories/%s", tt.id), map[string]any{"name": "Diubah"}, session)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestCategoriesUpdate() {
	session := registerTestUser(suite.T())
	c := createTestCategory(suite.T(), session, v1.CategoryEditable{Name: "Kopi", Type: models.TypeExpense, Color: "#000000"})

	tests := []struct {
		name   string
		body   any
		status int
		check  func(t *testing.T, c v1.Category)
	}{
		{"Name", map[string]any{"name": " Kopi Susu "}, http.StatusOK, func(t *testing.T, c v1.Category) {
			assert.Equal(t, "Kopi Susu", c.Name)
			assert.Equal(t, "#000000", c.Color, "Color is kept")
		}},
		{"Color and icon", map[string]any{"color": "#ffffff", "icon": "☕"}, http.StatusOK, func(t *testing.T, c v1.Category) {
			assert.Equal(t, "Kopi Susu", c.Name)
			assert.Equal(t, "#ffffff", c.Color)
			assert.Equal(t, "☕", c.Icon)
		}},
		{"Same type", map[string]any{"type": "expense"}, http.StatusOK, nil},
		{"Empty name", map[string]any{"name": ""}, http.StatusBadRequest, nil},
		{"Type change", map[string]any{"type": "income"}, http.StatusBadRequest, nil},
		{"Name in use", map[string]any{"name": "Makanan"}, http.StatusBadRequest, nil},
		{"Broken body", `{ "name": 2 }`, http.StatusBadRequest, nil},
		{"No body", "", http.StatusBadRequest, nil},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPatch, c.Data.Links.Self, tt.body, session)
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v1.CategoryResponse
			test.DecodeResponse(t, &r, &response)

			if tt.check != nil {
				tt.check(t, *response.Data)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestCategoriesDelete() {
	session := registerTestUser(suite.T())
	unused := createTestCategory(suite.T(), session, v1.CategoryEditable{Type: models.TypeExpense})
	used := createTestCategory(suite.T(), session, v1.CategoryEditable{Type: models.TypeExpense})
	createTestTransaction(suite.T(), session, v1.TransactionCreate{
		TransactionEditable: v1.TransactionEditable{CategoryID: used.Data.ID, Type: models.TypeExpense},
	})

	r := test.Request(suite.T(), http.MethodDelete, used.Data.Links.Self, nil, session)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response map[string]string
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal(models.ErrCategoryInUse.Error(), response["error"])

	r = test.Request(suite.T(), http.MethodDelete, unused.Data.Links.Self, nil, session)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, unused.Data.Links.Self, nil, session)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

// TestCategoriesDBClosed verifies that errors are processed correctly when
// the database is closed.
func (suite *TestSuiteStandard) TestCategoriesDBClosed() {
	session := registerTestUser(suite.T())
	suite.CloseDB()

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/categories", nil, session)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)

	var response v1.CategoryListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Contains(*response.Error, models.ErrGeneral.Error())
}
