package internal

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"time"
)

// Environment variables used as credential fallbacks when the config file
// carries no spreadsheet ID or API key.
const (
	EnvSpreadsheetID = "SHEETS_SPREADSHEET_ID"
	EnvAPIKey        = "SHEETS_API_KEY"
)

const sheetsAPIBase = "https://sheets.googleapis.com/v4/spreadsheets"

// defaultSheetRange covers the nine subscription columns.
const defaultSheetRange = "A:I"

// SheetsClient fetches raw subscription rows from the Google Sheets values
// API. It is a thin transport: all row validation and normalization happens
// in the ingestion step.
type SheetsClient struct {
	SpreadsheetID string
	APIKey        string
	HTTPClient    *http.Client
	BaseURL       string // overridable for tests
}

// NewSheetsClient builds a client from explicit credentials, falling back
// to the SHEETS_SPREADSHEET_ID and SHEETS_API_KEY environment variables.
func NewSheetsClient(spreadsheetID, apiKey string) (*SheetsClient, error) {
	if spreadsheetID == "" {
		spreadsheetID = os.Getenv(EnvSpreadsheetID)
	}
	if apiKey == "" {
		apiKey = os.Getenv(EnvAPIKey)
	}
	if spreadsheetID == "" || apiKey == "" {
		return nil, fmt.Errorf("missing spreadsheet ID or API key (set them in the config file or via %s/%s)",
			EnvSpreadsheetID, EnvAPIKey)
	}
	return &SheetsClient{
		SpreadsheetID: spreadsheetID,
		APIKey:        apiKey,
		HTTPClient:    &http.Client{Timeout: 30 * time.Second},
		BaseURL:       sheetsAPIBase,
	}, nil
}

type sheetValuesResponse struct {
	Values [][]string `json:"values"`
	Error  *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// FetchRows retrieves the raw rows (header first) from the spreadsheet.
func (c *SheetsClient) FetchRows(ctx context.Context) ([][]string, error) {
	u := fmt.Sprintf("%s/%s/values/%s?key=%s",
		c.BaseURL,
		url.PathEscape(c.SpreadsheetID),
		url.PathEscape(defaultSheetRange),
		url.QueryEscape(c.APIKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching spreadsheet: %w", err)
	}
	defer resp.Body.Close()

	var body sheetValuesResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		if body.Error != nil {
			return nil, fmt.Errorf("sheets API request failed with status %d, error code %d: %s",
				resp.StatusCode, body.Error.Code, body.Error.Message)
		}
		return nil, fmt.Errorf("sheets API request failed with status %d", resp.StatusCode)
	}

	if len(body.Values) <= 1 {
		return nil, fmt.Errorf("no data found in the spreadsheet")
	}
	return body.Values, nil
}

// FetchSubscriptions fetches rows and normalizes them in one step.
func (c *SheetsClient) FetchSubscriptions(ctx context.Context, ing Ingestor) ([]Subscription, error) {
	rows, err := c.FetchRows(ctx)
	if err != nil {
		return nil, err
	}
	return ing.RowsToSubscriptions(rows)
}
