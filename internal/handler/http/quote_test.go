package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mvoronin/estate-keeper/internal/service"
	"github.com/mvoronin/estate-keeper/internal/store"
	"github.com/mvoronin/estate-keeper/models"
)

func TestCreateQuote_PassesAuthenticatedManager(t *testing.T) {
	svcs, router := newTestRouter(t)

	svcs.quotes.EXPECT().
		CreateQuote(gomock.Any(), testManagerID, gomock.Any()).
		Return(models.QuoteWithItems{Quote: models.Quote{QuoteID: "quote-1", QuoteNumber: "Q-2026-AB12"}}, nil)

	body := `{"client_name":"Alexander Thompson","items":[{"name":"Relocation concierge","price":3000}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/admin/quotes", strings.NewReader(body))
	authorize(svcs, req)

	recorder := doRequest(router, req)

	assert.Equal(t, http.StatusCreated, recorder.Code)

	var created models.QuoteWithItems
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &created))
	assert.Equal(t, "Q-2026-AB12", created.QuoteNumber)
}

func TestUpdateQuote_NotDraftConflict(t *testing.T) {
	svcs, router := newTestRouter(t)

	svcs.quotes.EXPECT().
		UpdateQuote(gomock.Any(), gomock.Any()).
		Return(models.QuoteWithItems{}, service.ErrNotDraft)

	req := httptest.NewRequest(http.MethodPut, "/api/admin/quotes/quote-1", strings.NewReader(`{"client_name":"A"}`))
	authorize(svcs, req)

	recorder := doRequest(router, req)
	assert.Equal(t, http.StatusConflict, recorder.Code)
}

func TestConvertQuote_NotAcceptedConflict(t *testing.T) {
	svcs, router := newTestRouter(t)

	svcs.quotes.EXPECT().
		ConvertToInvoice(gomock.Any(), "quote-1").
		Return(models.InvoiceWithItems{}, service.ErrQuoteNotAccepted)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/quotes/quote-1/convert", nil)
	authorize(svcs, req)

	recorder := doRequest(router, req)
	assert.Equal(t, http.StatusConflict, recorder.Code)
}

func TestViewQuote_PublicRead(t *testing.T) {
	svcs, router := newTestRouter(t)

	svcs.quotes.EXPECT().
		ViewQuoteByNumber(gomock.Any(), "Q-2026-AB12").
		Return(models.QuoteWithItems{Quote: models.Quote{QuoteNumber: "Q-2026-AB12", Status: models.QuoteStatusViewed}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/quote/Q-2026-AB12", nil)
	recorder := doRequest(router, req)

	assert.Equal(t, http.StatusOK, recorder.Code)

	var quote models.QuoteWithItems
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &quote))
	assert.Equal(t, models.QuoteStatusViewed, quote.Status)
}

func TestViewQuote_DraftHidden(t *testing.T) {
	svcs, router := newTestRouter(t)

	svcs.quotes.EXPECT().
		ViewQuoteByNumber(gomock.Any(), "Q-2026-DRFT").
		Return(models.QuoteWithItems{}, store.ErrQuoteNotFound)

	req := httptest.NewRequest(http.MethodGet, "/api/quote/Q-2026-DRFT", nil)
	recorder := doRequest(router, req)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestRespondToQuote_AcceptAndDecline(t *testing.T) {
	svcs, router := newTestRouter(t)

	svcs.quotes.EXPECT().
		RespondToQuote(gomock.Any(), "Q-2026-AB12", true).
		Return(models.QuoteWithItems{Quote: models.Quote{Status: models.QuoteStatusAccepted}}, nil)
	svcs.quotes.EXPECT().
		RespondToQuote(gomock.Any(), "Q-2026-AB12", false).
		Return(models.QuoteWithItems{Quote: models.Quote{Status: models.QuoteStatusDeclined}}, nil)

	recorder := doRequest(router, httptest.NewRequest(http.MethodPost, "/api/quote/Q-2026-AB12/accept", nil))
	assert.Equal(t, http.StatusOK, recorder.Code)

	recorder = doRequest(router, httptest.NewRequest(http.MethodPost, "/api/quote/Q-2026-AB12/decline", nil))
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestRespondToQuote_ExpiredGone(t *testing.T) {
	svcs, router := newTestRouter(t)

	svcs.quotes.EXPECT().
		RespondToQuote(gomock.Any(), "Q-2025-OLD1", true).
		Return(models.QuoteWithItems{}, service.ErrQuoteExpired)

	recorder := doRequest(router, httptest.NewRequest(http.MethodPost, "/api/quote/Q-2025-OLD1/accept", nil))
	assert.Equal(t, http.StatusGone, recorder.Code)
}
