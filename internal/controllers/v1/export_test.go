package v1_test

import (
	"bytes"
	"net/http"
	"time"

	v1 "github.com/kasku/backend/internal/controllers/v1"
	"github.com/kasku/backend/internal/export"
	"github.com/kasku/backend/internal/models"
	"github.com/kasku/backend/test"
	"github.com/xuri/excelize/v2"
)

func (suite *TestSuiteStandard) TestExport() {
	session := registerTestUser(suite.T())
	createTestTarget(suite.T(), session, v1.TargetEditable{Name: "Laptop", InitialInvestment: amount(3_000_000)})
	createTestTransaction(suite.T(), session, v1.TransactionCreate{TransactionEditable: v1.TransactionEditable{
		Amount:      amount(5_000_000),
		Description: "Gaji Maret",
		Date:        time.Date(2026, 3, 25, 9, 0, 0, 0, time.UTC),
	}})
	createTestTransaction(suite.T(), session, v1.TransactionCreate{TransactionEditable: v1.TransactionEditable{
		Type:   models.TypeExpense,
		Amount: amount(1_000_000),
		Date:   time.Date(2026, 4, 2, 9, 0, 0, 0, time.UTC),
	}})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/export", nil, session)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	suite.Assert().Equal(export.ContentType, r.Header().Get("Content-Type"))
	suite.Assert().Contains(r.Header().Get("Content-Disposition"), "attachment; filename=\"Laporan_Keuangan_")

	f, err := excelize.OpenReader(bytes.NewReader(r.Body.Bytes()))
	suite.Require().Nil(err)
	defer f.Close()

	suite.Assert().Equal([]string{export.SheetTransactions, export.SheetTargets, export.SheetSummary}, f.GetSheetList())

	rows, err := f.GetRows(export.SheetTransactions)
	suite.Require().Nil(err)
	suite.Require().Len(rows, 3)
	suite.Assert().Equal("Pengeluaran", rows[1][0], "Newest transaction first")
	suite.Assert().Equal("-", rows[1][2])
	suite.Assert().Equal([]string{"Pemasukan", rows[2][1], "Gaji Maret", "5000000", "25/03/2026"}, rows[2])

	rows, err = f.GetRows(export.SheetTargets)
	suite.Require().Nil(err)
	suite.Require().Len(rows, 2)
	suite.Assert().Equal("Laptop", rows[1][0])
	suite.Assert().Equal("25.0%", rows[1][3])
	suite.Assert().Equal("Sekarat", rows[1][5])
	suite.Assert().Equal("∞", rows[1][6])

	value, err := f.GetCellValue(export.SheetSummary, "B2")
	suite.Require().Nil(err)
	suite.Assert().Equal("Semua", value)

	value, err = f.GetCellValue(export.SheetSummary, "B5")
	suite.Require().Nil(err)
	suite.Assert().Equal("4000000", value)
}

func (suite *TestSuiteStandard) TestExportMonth() {
	session := registerTestUser(suite.T())
	createTestTransaction(suite.T(), session, v1.TransactionCreate{TransactionEditable: v1.TransactionEditable{
		Date: time.Date(2026, 3, 25, 9, 0, 0, 0, time.UTC),
	}})
	createTestTransaction(suite.T(), session, v1.TransactionCreate{TransactionEditable: v1.TransactionEditable{
		Date: time.Date(2026, 4, 2, 9, 0, 0, 0, time.UTC),
	}})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/export?month=3&year=2026", nil, session)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	f, err := excelize.OpenReader(bytes.NewReader(r.Body.Bytes()))
	suite.Require().Nil(err)
	defer f.Close()

	rows, err := f.GetRows(export.SheetTransactions)
	suite.Require().Nil(err)
	suite.Assert().Len(rows, 2)

	value, err := f.GetCellValue(export.SheetSummary, "B2")
	suite.Require().Nil(err)
	suite.Assert().Equal("Maret 2026", value)
}

func (suite *TestSuiteStandard) TestExportFails() {
	session := registerTestUser(suite.T())

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/export?month=3", nil, session)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	suite.CloseDB()
	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/export", nil, session)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
}
