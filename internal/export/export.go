// Package export writes transactions and savings targets to an XLSX workbook.
package export

import (
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// Sheet names of the workbook, in order.
const (
	SheetTransactions = "Transaksi"
	SheetTargets      = "Target Tabungan"
	SheetSummary      = "Ringkasan"
)

// ContentType is the media type of the workbook.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

const dateFormat = "02/01/2006"

// Transaction is one row of the transaction sheet.
type Transaction struct {
	Income      bool
	Category    string
	Description string
	Amount      decimal.Decimal
	Date        time.Time
}

// Target is one row of the savings target sheet.
type Target struct {
	Name          string
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
	Progress      decimal.Decimal // in percent
	TargetDate    time.Time
	Status        string
	ETA           string
}

// Summary is the block on the summary sheet.
type Summary struct {
	Period       string
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
	Balance      decimal.Decimal
	TotalSavings decimal.Decimal
	SavingsRate  decimal.Decimal
}

// Filename is the name the workbook is downloaded as.
func Filename(now time.Time) string {
	return fmt.Sprintf("Laporan_Keuangan_%s.xlsx", now.Format("02_01_2006"))
}

// Write writes the workbook to w.
func Write(w io.Writer, summary Summary, transactions []Transaction, targets []Target) error {
	f, err := Workbook(summary, transactions, targets)
	if err != nil {
		return err
	}
	defer f.Close()

	return f.Write(w)
}

// Workbook builds the workbook. The caller must close it.
func Workbook(summary Summary, transactions []Transaction, targets []Target) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", SheetTransactions); err != nil {
		f.Close()
		return nil, err
	}

	for _, name := range []string{SheetTargets, SheetSummary} {
		if _, err := f.NewSheet(name); err != nil {
			f.Close()
			return nil, err
		}
	}

	header, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		f.Close()
		return nil, err
	}

	rows := map[string][][]any{
		SheetTransactions: transactionRows(transactions),
		SheetTargets:      targetRows(targets),
		SheetSummary:      summaryRows(summary),
	}

	for sheet, r := range rows {
		if err := writeRows(f, sheet, r, header); err != nil {
			f.Close()
			return nil, fmt.Errorf("writing sheet %s: %w", sheet, err)
		}
	}

	return f, nil
}

func writeRows(f *excelize.File, sheet string, rows [][]any, header int) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}

		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}

	return f.SetRowStyle(sheet, 1, 1, header)
}

func transactionRows(transactions []Transaction) [][]any {
	rows := [][]any{{"Tipe", "Kategori", "Deskripsi", "Nominal", "Tanggal"}}
	for _, t := range transactions {
		kind := "Pengeluaran"
		if t.Income {
			kind = "Pemasukan"
		}

		description := t.Description
		if description == "" {
			description = "-"
		}

		rows = append(rows, []any{kind, t.Category, description, t.Amount.InexactFloat64(), t.Date.Format(dateFormat)})
	}

	return rows
}

func targetRows(targets []Target) [][]any {
	rows := [][]any{{"Target Tabungan", "Target Jumlah", "Terkumpul", "Progress", "Tanggal Target", "Status", "Estimasi"}}
	for _, t := range targets {
		rows = append(rows, []any{
			t.Name,
			t.TargetAmount.InexactFloat64(),
			t.CurrentAmount.InexactFloat64(),
			t.Progress.StringFixed(1) + "%",
			t.TargetDate.Format(dateFormat),
			t.Status,
			t.ETA,
		})
	}

	return rows
}

func summaryRows(s Summary) [][]any {
	return [][]any{
		{"Item", "Jumlah"},
		{"Periode", s.Period},
		{"Total Pemasukan", s.TotalIncome.InexactFloat64()},
		{"Total Pengeluaran", s.TotalExpense.InexactFloat64()},
		{"Saldo", s.Balance.InexactFloat64()},
		{"Total Tabungan", s.TotalSavings.InexactFloat64()},
		{"Rasio Tabungan", s.SavingsRate.StringFixed(1) + "%"},
	}
}
