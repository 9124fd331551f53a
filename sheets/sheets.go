// Package sheets implements store.Store over a Google Spreadsheet, one
// worksheet tab per record kind.
package sheets

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	sheetsv4 "google.golang.org/api/sheets/v4"

	"github.com/rferraz1/interfacefinalvasco/store"
)

// Client talks to one spreadsheet.
type Client struct {
	svc           *sheetsv4.Service
	spreadsheetID string
}

// New builds a client authenticated with a service-account credentials file.
func New(ctx context.Context, spreadsheetID, credentialsFile string) (*Client, error) {
	svc, err := sheetsv4.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(sheetsv4.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("sheets service: %w", err)
	}
	return &Client{svc: svc, spreadsheetID: spreadsheetID}, nil
}

// NewFromJSON builds a client from inline service-account JSON, for
// deployments that inject credentials through the environment instead of a
// mounted file.
func NewFromJSON(ctx context.Context, spreadsheetID string, credentials []byte) (*Client, error) {
	cfg, err := google.JWTConfigFromJSON(credentials, sheetsv4.SpreadsheetsScope)
	if err != nil {
		return nil, fmt.Errorf("parse credentials: %w", err)
	}
	svc, err := sheetsv4.NewService(ctx, option.WithHTTPClient(cfg.Client(ctx)))
	if err != nil {
		return nil, fmt.Errorf("sheets service: %w", err)
	}
	return &Client{svc: svc, spreadsheetID: spreadsheetID}, nil
}

// Read implements store.Store. The first row of the tab is the header; data
// rows are keyed by it. Cells beyond a short row read as empty.
func (c *Client) Read(ctx context.Context, tab string) ([]map[string]string, error) {
	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, tab).Context(ctx).Do()
	if err != nil {
		if isMissingTab(err) {
			return nil, store.ErrTabNotFound
		}
		return nil, fmt.Errorf("sheets read %q: %w", tab, err)
	}
	if len(resp.Values) < 2 {
		return nil, nil
	}

	header := make([]string, len(resp.Values[0]))
	for i, cell := range resp.Values[0] {
		header[i] = asString(cell)
	}

	rows := make([]map[string]string, 0, len(resp.Values)-1)
	for _, raw := range resp.Values[1:] {
		row := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(raw) {
				row[col] = asString(raw[i])
			} else {
				row[col] = ""
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// Append implements store.Store, adding rows after the last data row with
// user-entered value parsing, the same semantics the dashboard always used.
func (c *Client) Append(ctx context.Context, tab string, rows [][]string) error {
	values := make([][]interface{}, len(rows))
	for i, row := range rows {
		cells := make([]interface{}, len(row))
		for j, cell := range row {
			cells[j] = cell
		}
		values[i] = cells
	}

	_, err := c.svc.Spreadsheets.Values.
		Append(c.spreadsheetID, tab, &sheetsv4.ValueRange{Values: values}).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).Do()
	if err != nil {
		if isMissingTab(err) {
			return store.ErrTabNotFound
		}
		return fmt.Errorf("sheets append %q: %w", tab, err)
	}
	return nil
}

// Delete implements store.Store, removing the row at a 1-based position.
func (c *Client) Delete(ctx context.Context, tab string, pos int) error {
	if pos < 2 {
		return fmt.Errorf("row position %d is not a data row", pos)
	}
	sheetID, err := c.sheetID(ctx, tab)
	if err != nil {
		return err
	}

	req := &sheetsv4.BatchUpdateSpreadsheetRequest{
		Requests: []*sheetsv4.Request{{
			DeleteDimension: &sheetsv4.DeleteDimensionRequest{
				Range: &sheetsv4.DimensionRange{
					SheetId:    sheetID,
					Dimension:  "ROWS",
					StartIndex: int64(pos - 1),
					EndIndex:   int64(pos),
				},
			},
		}},
	}
	if _, err := c.svc.Spreadsheets.BatchUpdate(c.spreadsheetID, req).Context(ctx).Do(); err != nil {
		return fmt.Errorf("sheets delete row %d of %q: %w", pos, tab, err)
	}
	return nil
}

func (c *Client) sheetID(ctx context.Context, tab string) (int64, error) {
	ss, err := c.svc.Spreadsheets.Get(c.spreadsheetID).
		Fields(googleapi.Field("sheets(properties(sheetId,title))")).
		Context(ctx).Do()
	if err != nil {
		return 0, fmt.Errorf("sheets metadata: %w", err)
	}
	for _, s := range ss.Sheets {
		if s.Properties != nil && s.Properties.Title == tab {
			return s.Properties.SheetId, nil
		}
	}
	return 0, store.ErrTabNotFound
}

// isMissingTab recognizes the API's answer to a range naming a tab that does
// not exist.
func isMissingTab(err error) bool {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		return gerr.Code == http.StatusBadRequest && strings.Contains(gerr.Message, "Unable to parse range")
	}
	return false
}

func asString(cell interface{}) string {
	if s, ok := cell.(string); ok {
		return s
	}
	return fmt.Sprint(cell)
}
