package model

import (
	"crowd/shared/model"
)

const (
	TableName  = "requests"
	EntityName = "request"

	FieldRequestID        = "request_id"
	FieldName             = "name"
	FieldPhone            = "phone"
	FieldAge              = "age"
	FieldAgeGroup         = "age_group"
	FieldRequestType      = "request_type"
	FieldUserType         = "user_type"
	FieldInputCity        = "input_city"
	FieldInputPostalCode  = "input_postal_code"
	FieldAssignedCenterID = "assigned_center_id"
	FieldAssignedDate     = "assigned_date"
	FieldAssignedTimeSlot = "assigned_time_slot"
	FieldStatus           = "status"
	FieldCreatedAt        = "created_at"
	FieldModifiedAt       = "modified_at"
)

const (
	UserTypeScheduled = "Scheduled"
	UserTypeWalkin    = "Walk-in"
)

// Confirmed may later become Rescheduled; every other status is final.
const (
	StatusConfirmed      = "Confirmed"
	StatusDecongested    = "De-congested (Next Day)"
	StatusDeferredWalkin = "Deferred Walk-in"
	StatusRescheduled    = "Rescheduled (Admin)"
	StatusCompleted      = "Completed"
)

const (
	AgeGroupChild  = "Child (0-18)"
	AgeGroupAdult  = "Adult (18-60)"
	AgeGroupSenior = "Senior (60+)"
)

// Request is one booking decision in the request ledger.
type Request struct {
	RequestID        string `db:"request_id"`
	Name             string `db:"name"`
	Phone            string `db:"phone"`
	Age              int    `db:"age"`
	AgeGroup         string `db:"age_group"`
	RequestType      string `db:"request_type"`
	UserType         string `db:"user_type"`
	InputCity        string `db:"input_city"`
	InputPostalCode  string `db:"input_postal_code"`
	AssignedCenterID string `db:"assigned_center_id"`
	AssignedDate     string `db:"assigned_date"`
	AssignedTimeSlot string `db:"assigned_time_slot"`
	Status           string `db:"status"`
	model.Metadata
}

func (r Request) IsWalkIn() bool {
	return r.UserType == UserTypeWalkin
}

func AgeGroup(age int) string {
	switch {
	case age < 18:
		return AgeGroupChild
	case age < 60:
		return AgeGroupAdult
	default:
		return AgeGroupSenior
	}
}

// Status derives the status of a fresh booking. Deferred means the slot is not on the request day.
func Status(walkIn, deferred bool) string {
	switch {
	case !deferred:
		return StatusConfirmed
	case walkIn:
		return StatusDeferredWalkin
	default:
		return StatusDecongested
	}
}
