package sheets

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	gsheets "google.golang.org/api/sheets/v4"
)

// Google is a Sheet backed by the Google Sheets API.
type Google struct {
	svc           *gsheets.Service
	spreadsheetID string
	sheetName     string
	g             grid
}

// NewGoogle authenticates with service-account credentials and binds to one
// tab of a spreadsheet. An empty sheetName selects the first tab.
func NewGoogle(ctx context.Context, credentialsJSON []byte, spreadsheetID, sheetName string) (*Google, error) {
	conf, err := google.JWTConfigFromJSON(credentialsJSON, gsheets.SpreadsheetsScope)
	if err != nil {
		return nil, fmt.Errorf("parse service account credentials: %w", err)
	}

	svc, err := gsheets.NewService(ctx, option.WithTokenSource(conf.TokenSource(ctx)))
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}

	return NewGoogleWithService(svc, spreadsheetID, sheetName), nil
}

// NewGoogleWithService wraps an already configured service.
func NewGoogleWithService(svc *gsheets.Service, spreadsheetID, sheetName string) *Google {
	return &Google{svc: svc, spreadsheetID: spreadsheetID, sheetName: sheetName}
}

func (s *Google) resolveSheetName(ctx context.Context) error {
	if s.sheetName != "" {
		return nil
	}
	ss, err := s.svc.Spreadsheets.Get(s.spreadsheetID).Fields("sheets.properties.title").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("get spreadsheet: %w", err)
	}
	if len(ss.Sheets) == 0 || ss.Sheets[0].Properties == nil {
		return errors.New("spreadsheet has no sheets")
	}
	s.sheetName = ss.Sheets[0].Properties.Title
	return nil
}

func (s *Google) quotedName() string {
	return "'" + strings.ReplaceAll(s.sheetName, "'", "''") + "'"
}

func (s *Google) Reload(ctx context.Context) error {
	if err := s.resolveSheetName(ctx); err != nil {
		return err
	}

	vr, err := s.svc.Spreadsheets.Values.Get(s.spreadsheetID, s.quotedName()).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("get values: %w", err)
	}

	values := make([][]string, 0, len(vr.Values))
	for _, row := range vr.Values {
		cells := make([]string, 0, len(row))
		for _, c := range row {
			cells = append(cells, fmt.Sprint(c))
		}
		values = append(values, cells)
	}
	s.g = newGrid(values)
	return nil
}

func (s *Google) Records() []Record {
	return s.g.records()
}

func (s *Google) SetField(ctx context.Context, rec Record, header, value string) error {
	col, exists := s.g.column(header)
	if !exists {
		if err := s.writeCell(ctx, ColumnName(col)+"1", header); err != nil {
			return fmt.Errorf("append header %q: %w", header, err)
		}
		s.g.appendHeader(header)
	}

	cell := fmt.Sprintf("%s%d", ColumnName(col), rec.Row())
	if err := s.writeCell(ctx, cell, value); err != nil {
		return fmt.Errorf("write %s: %w", cell, err)
	}

	return s.Reload(ctx)
}

func (s *Google) writeCell(ctx context.Context, cell, value string) error {
	vr := &gsheets.ValueRange{Values: [][]interface{}{{value}}}
	_, err := s.svc.Spreadsheets.Values.Update(s.spreadsheetID, s.quotedName()+"!"+cell, vr).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	return err
}
