package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/mvoronin/estate-keeper/internal/service"
	"github.com/mvoronin/estate-keeper/internal/store"
	"github.com/mvoronin/estate-keeper/models"
)

func TestSendInvoice_NoContent(t *testing.T) {
	svcs, router := newTestRouter(t)

	svcs.invoices.EXPECT().
		SendInvoice(gomock.Any(), "inv-1").
		Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/invoices/inv-1/send", nil)
	authorize(svcs, req)

	recorder := doRequest(router, req)
	assert.Equal(t, http.StatusNoContent, recorder.Code)
}

func TestMarkInvoicePaid_InvalidTransitionConflict(t *testing.T) {
	svcs, router := newTestRouter(t)

	svcs.invoices.EXPECT().
		MarkInvoicePaid(gomock.Any(), "inv-1").
		Return(service.ErrInvalidStatusTransition)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/invoices/inv-1/paid", nil)
	authorize(svcs, req)

	recorder := doRequest(router, req)
	assert.Equal(t, http.StatusConflict, recorder.Code)
}

func TestViewInvoice_DraftHidden(t *testing.T) {
	svcs, router := newTestRouter(t)

	svcs.invoices.EXPECT().
		GetInvoiceByNumber(gomock.Any(), "I-2026-DRFT").
		Return(models.InvoiceWithItems{}, store.ErrInvoiceNotFound)

	recorder := doRequest(router, httptest.NewRequest(http.MethodGet, "/api/invoice/I-2026-DRFT", nil))
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestExportInvoiceLedger_SetsWorkbookHeaders(t *testing.T) {
	svcs, router := newTestRouter(t)

	workbook := []byte("PK\x03\x04stub-workbook")
	svcs.invoices.EXPECT().
		ExportLedger(gomock.Any(), testManagerID).
		Return(workbook, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/invoices/export", nil)
	authorize(svcs, req)

	recorder := doRequest(router, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", recorder.Header().Get("Content-Type"))
	assert.Contains(t, recorder.Header().Get("Content-Disposition"), "invoices.xlsx")
	assert.Equal(t, workbook, recorder.Body.Bytes())
}
