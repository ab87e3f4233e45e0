package service

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/mvoronin/estate-keeper/internal/logger"
)

const ledgerSheet = "Invoices"

var ledgerHeader = []string{
	"Invoice Number", "Client", "Client Email", "Status",
	"Subtotal", "Tax Rate (%)", "Tax Amount", "Total",
	"Due Date", "Created",
}

// ExportLedger renders every invoice of the manager as an xlsx workbook,
// one row per invoice with a totals row at the bottom. Returns the encoded
// workbook bytes ready to be served as an attachment.
func (i *invoiceService) ExportLedger(ctx context.Context, managerID string) ([]byte, error) {
	log := logger.FromContext(ctx)

	invoices, err := i.ListInvoices(ctx, managerID)
	if err != nil {
		return nil, fmt.Errorf("invoice listing ended with error: %w", err)
	}

	workbook := excelize.NewFile()
	defer func() {
		if err := workbook.Close(); err != nil {
			log.Err(err).Msg("workbook close failed")
		}
	}()

	if err := workbook.SetSheetName(workbook.GetSheetName(0), ledgerSheet); err != nil {
		return nil, fmt.Errorf("ledger sheet setup ended with error: %w", err)
	}

	for col, title := range ledgerHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, fmt.Errorf("ledger header layout ended with error: %w", err)
		}
		if err := workbook.SetCellValue(ledgerSheet, cell, title); err != nil {
			return nil, fmt.Errorf("ledger header write ended with error: %w", err)
		}
	}

	var grandTotal float64
	for idx, invoice := range invoices {
		row := idx + 2
		values := []any{
			invoice.InvoiceNumber,
			invoice.ClientName,
			invoice.ClientEmail,
			string(invoice.Status),
			invoice.Subtotal,
			invoice.TaxRate,
			invoice.TaxAmount,
			invoice.Total,
			formatLedgerDate(invoice.DueDate),
			invoice.CreatedAt.Format("2006-01-02"),
		}

		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return nil, fmt.Errorf("ledger row layout ended with error: %w", err)
			}
			if err := workbook.SetCellValue(ledgerSheet, cell, value); err != nil {
				return nil, fmt.Errorf("ledger row write ended with error: %w", err)
			}
		}

		grandTotal += invoice.Total
	}

	totalsRow := len(invoices) + 2
	if err := workbook.SetCellValue(ledgerSheet, fmt.Sprintf("A%d", totalsRow), "Total"); err != nil {
		return nil, fmt.Errorf("ledger totals write ended with error: %w", err)
	}
	if err := workbook.SetCellValue(ledgerSheet, fmt.Sprintf("H%d", totalsRow), grandTotal); err != nil {
		return nil, fmt.Errorf("ledger totals write ended with error: %w", err)
	}

	var buf bytes.Buffer
	if err := workbook.Write(&buf); err != nil {
		return nil, fmt.Errorf("ledger encoding ended with error: %w", err)
	}

	log.Info().Str("manager_id", managerID).Int("invoices", len(invoices)).Msg("invoice ledger exported")

	return buf.Bytes(), nil
}

func formatLedgerDate(date *time.Time) string {
	if date == nil {
		return ""
	}

	return date.Format("2006-01-02")
}
