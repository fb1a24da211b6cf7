package models

import (
	"time"
)

// ActivityRecord is one logged employee activity. Rows are written once and
// never updated.
// Table: activity
type ActivityRecord struct {
	ID              string    `gorm:"column:id;primaryKey" json:"id"`
	ReferenceID     string    `gorm:"column:referenceid;index" json:"referenceid"`
	Manager         string    `gorm:"column:manager" json:"manager"`
	TSM             string    `gorm:"column:tsm" json:"tsm"`
	ActivityStatus  string    `gorm:"column:activitystatus" json:"activitystatus"`
	ActivityRemarks string    `gorm:"column:activityremarks" json:"activityremarks"`
	StartDate       time.Time `gorm:"column:startdate" json:"startdate"`
	EndDate         time.Time `gorm:"column:enddate" json:"enddate"`
	SelfieURL       string    `gorm:"column:selfie_url" json:"selfieUrl,omitempty"`
	DateCreated     time.Time `gorm:"column:date_created" json:"date_created"`
}

func (ActivityRecord) TableName() string { return "activity" }

// ActivityPayload is the JSON body posted by the activity form.
type ActivityPayload struct {
	ReferenceID     string `json:"referenceid"`
	Manager         string `json:"manager"`
	TSM             string `json:"tsm"`
	ActivityStatus  string `json:"activitystatus"`
	ActivityRemarks string `json:"activityremarks"`
	StartDate       string `json:"startdate"`
	EndDate         string `json:"enddate"`
	SelfieURL       string `json:"selfieUrl,omitempty"`
}
