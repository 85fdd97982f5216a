package sheet

import (
	"context"
	"fmt"
	"os"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// valueInputOption lets the spreadsheet coerce typed values the same way a
// human entry would (numbers stay numeric, TRUE becomes a boolean cell).
const valueInputOption = "USER_ENTERED"

// SheetsStore is the Google Sheets implementation of Store.
type SheetsStore struct {
	svc           *sheets.Service
	spreadsheetID string
}

// NewSheetsStore builds a store over the given spreadsheet. Exactly one of
// credentialsJSON or credentialsPath must identify a service-account key.
func NewSheetsStore(ctx context.Context, spreadsheetID, credentialsJSON, credentialsPath string) (*SheetsStore, error) {
	if spreadsheetID == "" {
		return nil, fmt.Errorf("no spreadsheet id configured")
	}

	var opts []option.ClientOption
	switch {
	case credentialsJSON != "":
		opts = append(opts, option.WithCredentialsJSON([]byte(credentialsJSON)))
	case credentialsPath != "":
		if _, err := os.Stat(credentialsPath); err != nil {
			return nil, fmt.Errorf("credentials file %s: %w", credentialsPath, err)
		}
		opts = append(opts, option.WithCredentialsFile(credentialsPath))
	default:
		return nil, fmt.Errorf("no google credentials configured")
	}
	opts = append(opts, option.WithScopes(sheets.SpreadsheetsScope))

	svc, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	return &SheetsStore{svc: svc, spreadsheetID: spreadsheetID}, nil
}

// Read returns all rows in the range.
func (s *SheetsStore) Read(ctx context.Context, r Range) ([][]interface{}, error) {
	resp, err := s.svc.Spreadsheets.Values.Get(s.spreadsheetID, r.String()).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", r, err)
	}
	return resp.Values, nil
}

// Append adds rows after the last data row of the range.
func (s *SheetsStore) Append(ctx context.Context, r Range, rows [][]interface{}) error {
	body := &sheets.ValueRange{Values: rows}
	_, err := s.svc.Spreadsheets.Values.Append(s.spreadsheetID, r.String(), body).
		ValueInputOption(valueInputOption).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to append to %s: %w", r, err)
	}
	return nil
}

// Update overwrites cells positionally starting at the range's first cell.
func (s *SheetsStore) Update(ctx context.Context, r Range, rows [][]interface{}) error {
	body := &sheets.ValueRange{Values: rows}
	_, err := s.svc.Spreadsheets.Values.Update(s.spreadsheetID, r.String(), body).
		ValueInputOption(valueInputOption).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to update %s: %w", r, err)
	}
	return nil
}

// Clear empties the range.
func (s *SheetsStore) Clear(ctx context.Context, r Range) error {
	_, err := s.svc.Spreadsheets.Values.Clear(s.spreadsheetID, r.String(), &sheets.ClearValuesRequest{}).
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to clear %s: %w", r, err)
	}
	return nil
}
