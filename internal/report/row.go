// Package report turns pending sales orders into the paged, sorted table the
// sales dashboard shows, and into spreadsheet exports of the same rows.
package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/white/fluxx-sales/internal/models"
)

// Amount keeps the order amount exactly as the store returned it. Sorting
// reads it as a number; display leaves a non-numeric value untouched.
type Amount string

// UnmarshalJSON accepts a JSON number, a string or null.
func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*a = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = Amount(s)
		return nil
	}
	*a = Amount(data)
	return nil
}

// Value parses the amount. Anything that is not a number counts as zero.
func (a Amount) Value() decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(string(a)))
	if err != nil {
		return decimal.Zero
	}
	return d
}

// Numeric reports whether the amount parses as a number.
func (a Amount) Numeric() bool {
	_, err := decimal.NewFromString(strings.TrimSpace(string(a)))
	return err == nil
}

// Row is one pending sales order as it enters the table.
type Row struct {
	ID            int64  `json:"id"`
	DateCreated   string `json:"date_created"`
	CompanyName   string `json:"companyname"`
	ContactPerson string `json:"contactperson"`
	SONumber      string `json:"sonumber"`
	SOAmount      Amount `json:"soamount"`
	Status        string `json:"activitystatus"`
	Remarks       string `json:"remarks"`
}

// FromOrders converts stored orders into table rows.
func FromOrders(orders []models.PendingSalesOrder) []Row {
	rows := make([]Row, 0, len(orders))
	for _, o := range orders {
		row := Row{
			ID:            o.ID,
			CompanyName:   o.CompanyName,
			ContactPerson: o.ContactPerson,
			SONumber:      o.SONumber,
			Status:        o.ActivityStatus,
			Remarks:       o.Remarks,
		}
		if o.DateCreated != nil {
			row.DateCreated = o.DateCreated.UTC().Format(time.RFC3339)
		}
		if o.SOAmount.Valid {
			row.SOAmount = Amount(o.SOAmount.String)
		}
		rows = append(rows, row)
	}
	return rows
}
