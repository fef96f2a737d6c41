// sheets/client.go - Google Sheets client
package sheets

import (
	"context"
	"fmt"
	"time"

	"github.com/seangjr/ythwknd25/models"
	"google.golang.org/api/option"
	sheetsv4 "google.golang.org/api/sheets/v4"
)

// SheetRange is where registration rows land in the bookkeeping spreadsheet.
const SheetRange = "Registrations!A:V"

type Client struct {
	srv           *sheetsv4.Service
	spreadsheetID string
}

// NewClient builds an authenticated client from decoded service-account JSON.
func NewClient(ctx context.Context, credentials []byte, spreadsheetID string) (*Client, error) {
	if spreadsheetID == "" {
		return nil, fmt.Errorf("spreadsheet ID is empty")
	}
	srv, err := sheetsv4.NewService(ctx,
		option.WithCredentialsJSON(credentials),
		option.WithScopes(sheetsv4.SpreadsheetsScope),
	)
	if err != nil {
		return nil, err
	}
	return &Client{srv: srv, spreadsheetID: spreadsheetID}, nil
}

func (c *Client) SpreadsheetID() string { return c.spreadsheetID }

// AppendRegistration appends one registration as a spreadsheet row.
func (c *Client) AppendRegistration(reg models.Registration) error {
	ym := "No"
	if reg.YMMember {
		ym = "Yes"
	}
	row := []interface{}{
		reg.LineNumber,
		reg.GroupNumber,
		reg.Email,
		reg.FullName,
		reg.Age,
		reg.Gender,
		reg.NricPassport,
		reg.ContactNumber,
		reg.InstagramHandle,
		reg.SchoolName,
		ym,
		reg.CGLeader,
		reg.HeroID,
		reg.EmergencyContactName,
		reg.EmergencyContactRelationship,
		reg.EmergencyContactPhone,
		reg.EmergencyContactEmail,
		reg.IsChristian,
		reg.EventSource,
		reg.OtherEventSource,
		reg.InvitedByFriend,
		time.Now().UTC().Format(time.RFC3339),
	}

	vr := &sheetsv4.ValueRange{Values: [][]interface{}{row}}
	_, err := c.srv.Spreadsheets.Values.Append(c.spreadsheetID, SheetRange, vr).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Do()
	return err
}
