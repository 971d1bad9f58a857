package internal

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func testSheetsServer(t *testing.T, status int, body string) *SheetsClient {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Path, "/sheet-1/values/") {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if r.URL.Query().Get("key") != "key-1" {
			t.Errorf("missing api key in query: %q", r.URL.RawQuery)
		}
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	return &SheetsClient{
		SpreadsheetID: "sheet-1",
		APIKey:        "key-1",
		HTTPClient:    srv.Client(),
		BaseURL:       srv.URL,
	}
}

func TestNewSheetsClientCredentials(t *testing.T) {
	t.Setenv(EnvSpreadsheetID, "")
	t.Setenv(EnvAPIKey, "")

	if _, err := NewSheetsClient("", ""); err == nil {
		t.Error("expected error with no credentials")
	}
	if _, err := NewSheetsClient("sheet", ""); err == nil {
		t.Error("expected error with missing API key")
	}

	c, err := NewSheetsClient("sheet", "key")
	if err != nil {
		t.Fatalf("explicit credentials: %v", err)
	}
	if c.SpreadsheetID != "sheet" || c.APIKey != "key" {
		t.Errorf("client = %q %q", c.SpreadsheetID, c.APIKey)
	}

	// environment variables fill in missing values
	t.Setenv(EnvSpreadsheetID, "env-sheet")
	t.Setenv(EnvAPIKey, "env-key")
	c, err = NewSheetsClient("", "")
	if err != nil {
		t.Fatalf("env credentials: %v", err)
	}
	if c.SpreadsheetID != "env-sheet" || c.APIKey != "env-key" {
		t.Errorf("client = %q %q, want env values", c.SpreadsheetID, c.APIKey)
	}
}

func TestFetchRows(t *testing.T) {
	client := testSheetsServer(t, http.StatusOK, `{
		"values": [
			["Name", "Amount", "Currency", "Frequency", "Day of Month", "Color", "Logo", "Start Date", "End Date"],
			["Netflix", "4.33", "€", "monthly", "7", "#E50914", "N", "2021-01-01", ""]
		]
	}`)

	rows, err := client.FetchRows(context.Background())
	if err != nil {
		t.Fatalf("FetchRows: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("%d rows, want 2", len(rows))
	}
	if rows[1][0] != "Netflix" {
		t.Errorf("first data row = %v", rows[1])
	}
}

func TestFetchRowsAPIError(t *testing.T) {
	client := testSheetsServer(t, http.StatusForbidden, `{
		"error": {"code": 403, "message": "The caller does not have permission"}
	}`)

	_, err := client.FetchRows(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "403") || !strings.Contains(err.Error(), "permission") {
		t.Errorf("error %q does not surface the API error", err)
	}
}

func TestFetchRowsEmptySheet(t *testing.T) {
	client := testSheetsServer(t, http.StatusOK, `{"values": [["Name", "Amount"]]}`)
	if _, err := client.FetchRows(context.Background()); err == nil {
		t.Error("expected error for a header-only sheet")
	}

	client = testSheetsServer(t, http.StatusOK, `{}`)
	if _, err := client.FetchRows(context.Background()); err == nil {
		t.Error("expected error for an empty sheet")
	}
}

func TestFetchSubscriptions(t *testing.T) {
	client := testSheetsServer(t, http.StatusOK, `{
		"values": [
			["Name", "Amount", "Currency", "Frequency", "Day of Month", "Color", "Logo", "Start Date", "End Date"],
			["Netflix", "4.33", "€", "monthly", "7", "#E50914", "N", "2021-01-01", ""],
			["Airbnb", "12.99", "€", "yearly", "12", "#FF5A5F", "A", "2022-07-12", ""]
		]
	}`)

	subs, err := client.FetchSubscriptions(context.Background(), testIngestor())
	if err != nil {
		t.Fatalf("FetchSubscriptions: %v", err)
	}
	if len(subs) != 2 {
		t.Fatalf("%d subscriptions, want 2", len(subs))
	}
	if subs[1].Name != "Airbnb" || subs[1].Frequency != FreqYearly {
		t.Errorf("second sub = %q %s", subs[1].Name, subs[1].Frequency)
	}
}

func TestFetchRowsContextCancel(t *testing.T) {
	client := testSheetsServer(t, http.StatusOK, `{"values": []}`)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := client.FetchRows(ctx); err == nil {
		t.Error("expected error from cancelled context")
	}
}
