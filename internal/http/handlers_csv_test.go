package http

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Anand123098sitare/Fin--Track/internal/core"
)

func uploadCSV(t *testing.T, srv *Server, filename, content string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := fw.Write([]byte(content)); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/import/csv", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rr := httptest.NewRecorder()
	srv.Server.Handler.ServeHTTP(rr, req)
	return rr
}

func TestExportCSVHeadersAndContent(t *testing.T) {
	srv := newTestServer(t)
	createTransaction(t, srv, map[string]any{
		"amount": 50.00, "category": "Food & Dining", "type": "expense", "date": "2024-03-15", "notes": "=SUM(A1)",
	})

	rr := doRequest(t, srv, http.MethodGet, "/api/export/csv", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("export status=%d", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
		t.Errorf("Content-Type = %q, want text/csv", ct)
	}
	if cd := rr.Header().Get("Content-Disposition"); !strings.Contains(cd, "transactions_") || !strings.Contains(cd, ".csv") {
		t.Errorf("Content-Disposition = %q", cd)
	}

	body := rr.Body.String()
	if !strings.HasPrefix(body, "ID,Amount,Category,Type,Date,Notes,Created At") {
		t.Errorf("missing header row: %q", body)
	}
	// formula-bearing note is neutralized in the export only
	if !strings.Contains(body, "'=SUM(A1)") {
		t.Errorf("formula note not escaped: %q", body)
	}
}

func TestExportCSVFilenameEmbedsRange(t *testing.T) {
	srv := newTestServer(t)

	rr := doRequest(t, srv, http.MethodGet, "/api/export/csv?start_date=2024-01-01&end_date=2024-03-31", nil)
	cd := rr.Header().Get("Content-Disposition")
	if !strings.Contains(cd, "transactions_2024-01-01_to_2024-03-31.csv") {
		t.Errorf("Content-Disposition = %q", cd)
	}
}

func TestImportCSVPartialSuccess(t *testing.T) {
	srv := newTestServer(t)

	csvData := `ID,Amount,Category,Type,Date,Notes,Created At
1,50.00,Groceries,expense,2024-03-15,ok,
2,abc,Groceries,expense,2024-03-15,bad amount,
3,10,Groceries,transfer,2024-03-15,bad type,
4,10,Groceries,expense,2024-13-40,bad date,
5,25,Salary,Income,2024-03-01,,
`
	rr := uploadCSV(t, srv, "transactions.csv", csvData)
	if rr.Code != http.StatusOK {
		t.Fatalf("import status=%d body=%s", rr.Code, rr.Body.String())
	}

	var resp struct {
		Success  bool `json:"success"`
		Imported int  `json:"imported"`
		Skipped  int  `json:"skipped"`
	}
	decodeBody(t, rr, &resp)
	if !resp.Success || resp.Imported != 2 || resp.Skipped != 3 {
		t.Fatalf("unexpected result: %+v", resp)
	}

	var list []core.Transaction
	rr = doRequest(t, srv, http.MethodGet, "/api/transactions", nil)
	decodeBody(t, rr, &list)
	if len(list) != 2 {
		t.Fatalf("expected 2 imported transactions, got %d", len(list))
	}
	// type normalized to lowercase
	for _, tr := range list {
		if tr.Type != core.Income && tr.Type != core.Expense {
			t.Errorf("unnormalized type %q", tr.Type)
		}
	}
}

func TestImportCSVRejectsBadUploads(t *testing.T) {
	srv := newTestServer(t)

	// wrong extension
	rr := uploadCSV(t, srv, "data.xlsx", "ID,Amount\n")
	if rr.Code != http.StatusBadRequest {
		t.Errorf("wrong extension status=%d, want 400", rr.Code)
	}

	// no multipart body at all
	req := httptest.NewRequest(http.MethodPost, "/api/import/csv", nil)
	rec := httptest.NewRecorder()
	srv.Server.Handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("missing file status=%d, want 400", rec.Code)
	}

	// unreadable file content imports nothing
	rr = uploadCSV(t, srv, "broken.csv", "ID,Amount\n\"unterminated")
	if rr.Code != http.StatusBadRequest {
		t.Errorf("broken file status=%d, want 400", rr.Code)
	}
	var list []core.Transaction
	lr := doRequest(t, srv, http.MethodGet, "/api/transactions", nil)
	decodeBody(t, lr, &list)
	if len(list) != 0 {
		t.Errorf("broken file imported %d rows", len(list))
	}
}

func TestExportImportRoundTripThroughStore(t *testing.T) {
	srv := newTestServer(t)

	seed := []map[string]any{
		{"amount": 50.00, "category": "Food & Dining", "type": "expense", "date": "2024-03-15", "notes": "lunch"},
		{"amount": 1234.56, "category": "Salary", "type": "income", "date": "2024-03-01"},
		{"amount": 0.99, "category": "Shopping", "type": "expense", "date": "2024-02-28", "notes": "gum"},
	}
	for _, row := range seed {
		createTransaction(t, srv, row)
	}

	exported := doRequest(t, srv, http.MethodGet, "/api/export/csv", nil)
	if exported.Code != http.StatusOK {
		t.Fatalf("export status=%d", exported.Code)
	}

	var before []core.Transaction
	lr := doRequest(t, srv, http.MethodGet, "/api/transactions", nil)
	decodeBody(t, lr, &before)

	// import into a fresh instance
	fresh := newTestServer(t)
	rr := uploadCSV(t, fresh, "export.csv", exported.Body.String())
	if rr.Code != http.StatusOK {
		t.Fatalf("import status=%d body=%s", rr.Code, rr.Body.String())
	}

	var after []core.Transaction
	lr = doRequest(t, fresh, http.MethodGet, "/api/transactions", nil)
	decodeBody(t, lr, &after)

	if len(after) != len(before) {
		t.Fatalf("round-trip count mismatch: %d != %d", len(after), len(before))
	}
	for i := range before {
		b, a := before[i], after[i]
		if a.Amount != b.Amount || a.Category != b.Category || a.Type != b.Type ||
			a.Date != b.Date || a.Notes != b.Notes {
			t.Errorf("row %d mismatch:\nbefore %+v\nafter  %+v", i, b, a)
		}
	}
}
