package dto

import (
	"crowd/internal/domains/booking/model"
	"crowd/shared/constant"
	gDto "crowd/shared/dto"
	gModel "crowd/shared/model"
	"net/http"
	"slices"
	"time"
)

const (
	StatusFilterPending = "Pending"
	StatusFilterDone    = "Done"

	dashboardLogLimit = 50
)

type CreateBookingRequest struct {
	RequestType string `json:"request_type" validate:"required,max=64"`
	UserType    string `json:"user_type"    validate:"required,oneof=Scheduled Walk-in"`
	City        string `json:"city"         validate:"omitempty,max=128"`
	PostalCode  string `json:"postal_code"  validate:"omitempty,postalcode"`
	Name        string `json:"name"         validate:"required,max=255"`
	Phone       string `json:"phone"        validate:"required,phone"`
	Age         *int   `json:"age"          validate:"required,gte=0,lte=130"`
}

func (c *CreateBookingRequest) IsWalkIn() bool {
	return c.UserType == model.UserTypeWalkin
}

// ToModel fills the applicant half of a record. Assignment fields are set by the caller.
func (c *CreateBookingRequest) ToModel(requestID string, now time.Time) model.Request {
	age := 0
	if c.Age != nil {
		age = *c.Age
	}

	return model.Request{
		RequestID:       requestID,
		Name:            c.Name,
		Phone:           c.Phone,
		Age:             age,
		AgeGroup:        model.AgeGroup(age),
		RequestType:     c.RequestType,
		UserType:        c.UserType,
		InputCity:       c.City,
		InputPostalCode: c.PostalCode,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
		},
	}
}

type BookingResponse struct {
	RequestID        string `json:"request_id"`
	Name             string `json:"name"`
	Phone            string `json:"phone"`
	Age              int    `json:"age"`
	AgeGroup         string `json:"age_group"`
	RequestType      string `json:"request_type"`
	UserType         string `json:"user_type"`
	InputCity        string `json:"input_city"`
	InputPostalCode  string `json:"input_postal_code"`
	AssignedCenterID string `json:"assigned_center_id"`
	AssignedDate     string `json:"assigned_date"`
	AssignedTimeSlot string `json:"assigned_time_slot"`
	Status           string `json:"status"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Request) {
	r.RequestID = model.RequestID
	r.Name = model.Name
	r.Phone = model.Phone
	r.Age = model.Age
	r.AgeGroup = model.AgeGroup
	r.RequestType = model.RequestType
	r.UserType = model.UserType
	r.InputCity = model.InputCity
	r.InputPostalCode = model.InputPostalCode
	r.AssignedCenterID = model.AssignedCenterID
	r.AssignedDate = model.AssignedDate
	r.AssignedTimeSlot = model.AssignedTimeSlot
	r.Status = model.Status
	r.Metadata.FromModel(model.Metadata)
}

// BookingResult is returned for every processed request. Success is false when no slot was
// found; that outcome is not an error.
type BookingResult struct {
	Success    bool             `json:"success"`
	Data       *BookingResponse `json:"data,omitempty"`
	CenterName string           `json:"center_name,omitempty"`
	Message    string           `json:"message"`
}

type TrackResponse struct {
	RequestID  string `json:"request_id"`
	Name       string `json:"name"`
	Status     string `json:"status"`
	UserType   string `json:"user_type"`
	CenterID   string `json:"center_id"`
	CenterName string `json:"center_name"`
	Date       string `json:"date"`
	TimeSlot   string `json:"time_slot"`
}

func (r *TrackResponse) FromModel(model model.Request, centerName string) {
	r.RequestID = model.RequestID
	r.Name = model.Name
	r.Status = model.Status
	r.UserType = model.UserType
	r.CenterID = model.AssignedCenterID
	r.CenterName = centerName
	r.Date = model.AssignedDate
	r.TimeSlot = model.AssignedTimeSlot
}

type RedistributeRequest struct {
	CenterID string `json:"center_id" validate:"required,max=32"`
}

type RedistributeResponse struct {
	Count   int    `json:"count"`
	Message string `json:"message"`
}

type DashboardRequest struct {
	Region   string `json:"region"    validate:"omitempty,max=128"`
	Status   string `json:"status"    validate:"omitempty,oneof=All Pending Done"`
	AgeGroup string `json:"age_group" validate:"omitempty,max=32"`
}

func isAll(value string) bool {
	return value == constant.Empty || value == constant.FilterAll
}

// ToFilter narrows the ledger by region (substring of the applicant city), status and age group.
func (d *DashboardRequest) ToFilter() gDto.FilterGroup {
	filters := []any{}

	if !isAll(d.Region) {
		filters = append(filters, gDto.Filter{Field: model.FieldInputCity, Value: d.Region, Operator: gDto.FilterOperatorLike})
	}

	switch d.Status {
	case StatusFilterPending:
		filters = append(filters, gDto.Filter{Field: model.FieldStatus, Value: model.StatusConfirmed, Operator: gDto.FilterOperatorEq})
	case StatusFilterDone:
		filters = append(filters, gDto.Filter{Field: model.FieldStatus, Value: model.StatusCompleted, Operator: gDto.FilterOperatorEq})
	}

	if !isAll(d.AgeGroup) {
		filters = append(filters, gDto.Filter{Field: model.FieldAgeGroup, Value: d.AgeGroup, Operator: gDto.FilterOperatorEq})
	}

	return gDto.FilterGroup{Filters: filters, Operator: gDto.FilterGroupOperatorAnd}
}

// LogParams selects the latest entries shown on the dashboard.
func (d *DashboardRequest) LogParams() gDto.QueryParams {
	return gDto.QueryParams{
		Limit:   dashboardLogLimit,
		SortBy:  model.FieldCreatedAt,
		SortDir: gDto.SortDirDesc,
	}
}

// FromQuery reads the filters of the request list from the URL query.
func (d *DashboardRequest) FromQuery(r *http.Request) {
	query := r.URL.Query()

	d.Region = query.Get(constant.RequestParamRegion)
	d.Status = query.Get(constant.RequestParamStatus)
	d.AgeGroup = query.Get(constant.RequestParamAgeGroup)
}

var sortableFields = []string{
	model.FieldCreatedAt,
	model.FieldAssignedDate,
	model.FieldRequestID,
	model.FieldName,
}

// NormalizeListParams keeps the sort column to an indexed whitelist, newest first by default.
func NormalizeListParams(params gDto.QueryParams) gDto.QueryParams {
	if !slices.Contains(sortableFields, params.SortBy) {
		params.SortBy = constant.DefaultValueSortBy
	}

	if params.SortDir == constant.Empty {
		params.SortDir = constant.DefaultValueSortDir
	}

	return params
}

type GetRequestsResponse struct {
	Requests  []BookingResponse `json:"requests"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetRequestsResponse) FromModels(models []model.Request, totalData, totalPage int) {
	r.Requests = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Requests[i].FromModel(mod)
	}

	r.TotalData = totalData
	r.TotalPage = totalPage
}

type DashboardResponse struct {
	TotalReq          int               `json:"total_req"`
	TodayReq          int               `json:"today_req"`
	OverloadRedirects int               `json:"overload_redirects"`
	Logs              []BookingResponse `json:"logs"`
}

func (r *DashboardResponse) FromModels(models []model.Request) {
	r.Logs = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Logs[i].FromModel(mod)
	}
}

type ExportResponse struct {
	URL  string `json:"url"`
	Rows int    `json:"rows"`
}
