package gsheets

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

var ErrSpreadsheetIDRequired = errors.New("gsheets: spreadsheet id is required")

// Writer writes tabular data to a spreadsheet.
type Writer interface {
	Write(ctx context.Context, req WriteRequest) (WriteResult, error)
}

// Client wraps the Google Sheets API service bound to one spreadsheet.
type Client struct {
	service       *sheets.Service
	spreadsheetID string
}

// NewClientFromCredentialsFile creates a Sheets client from a Service Account JSON file path.
func NewClientFromCredentialsFile(ctx context.Context, credentialsPath, spreadsheetID string) (*Client, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	return NewClientFromCredentialsJSON(ctx, data, spreadsheetID)
}

// NewClientFromCredentialsJSON creates a Sheets client from raw Service Account JSON bytes.
func NewClientFromCredentialsJSON(ctx context.Context, credentialsJSON []byte, spreadsheetID string) (*Client, error) {
	if spreadsheetID == "" {
		return nil, ErrSpreadsheetIDRequired
	}

	config, err := google.JWTConfigFromJSON(credentialsJSON, sheets.SpreadsheetsScope)
	if err != nil {
		return nil, fmt.Errorf("unsupported credentials format: %w", err)
	}

	svc, err := sheets.NewService(ctx, option.WithTokenSource(config.TokenSource(ctx)))
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}
	return &Client{service: svc, spreadsheetID: spreadsheetID}, nil
}

// NewClientFromHTTP creates a Sheets client from a pre-configured HTTP client.
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client, spreadsheetID string) (*Client, error) {
	if spreadsheetID == "" {
		return nil, ErrSpreadsheetIDRequired
	}

	svc, err := sheets.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}
	return &Client{service: svc, spreadsheetID: spreadsheetID}, nil
}

// Write clears the target tab and writes req.Rows from A1.
func (c *Client) Write(ctx context.Context, req WriteRequest) (WriteResult, error) {
	sheet := req.SheetName
	if sheet == "" {
		sheet = "Sheet1"
	}

	if _, err := c.service.Spreadsheets.Values.
		Clear(c.spreadsheetID, sheet, &sheets.ClearValuesRequest{}).
		Context(ctx).
		Do(); err != nil {
		return WriteResult{}, fmt.Errorf("failed to clear sheet %q: %w", sheet, err)
	}

	resp, err := c.service.Spreadsheets.Values.
		Update(c.spreadsheetID, sheet+"!A1", &sheets.ValueRange{Values: req.Rows}).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		return WriteResult{}, fmt.Errorf("failed to write sheet %q: %w", sheet, err)
	}

	return WriteResult{
		SpreadsheetID: resp.SpreadsheetId,
		UpdatedRange:  resp.UpdatedRange,
		UpdatedRows:   resp.UpdatedRows,
		UpdatedCells:  resp.UpdatedCells,
	}, nil
}
