package models

import (
	"database/sql"
	"time"
)

// PendingSalesOrder is a display-only sales-order row. SOAmount is read as
// text so a non-numeric value in the column cannot fail the whole query.
// Table: progress
type PendingSalesOrder struct {
	ID             int64          `gorm:"column:id;primaryKey" json:"id"`
	ReferenceID    string         `gorm:"column:referenceid" json:"referenceid"`
	DateCreated    *time.Time     `gorm:"column:date_created" json:"date_created"`
	CompanyName    string         `gorm:"column:companyname" json:"companyname"`
	ContactPerson  string         `gorm:"column:contactperson" json:"contactperson"`
	SONumber       string         `gorm:"column:sonumber" json:"sonumber"`
	SOAmount       sql.NullString `gorm:"column:soamount" json:"soamount"`
	ActivityStatus string         `gorm:"column:activitystatus" json:"activitystatus"`
	Remarks        string         `gorm:"column:remarks" json:"remarks"`
}

func (PendingSalesOrder) TableName() string { return "progress" }
