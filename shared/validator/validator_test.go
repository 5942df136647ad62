package validator_test

import (
	"crowd/shared/failure"
	"crowd/shared/validator"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type applicant struct {
	Name       string `json:"name"        validate:"required"`
	Phone      string `json:"phone"       validate:"required,phone"`
	Age        *int   `json:"age"         validate:"required,gte=0,lte=130"`
	UserType   string `json:"user_type"   validate:"required,oneof=Scheduled Walk-in"`
	PostalCode string `json:"postal_code" validate:"omitempty,postalcode"`
}

func intPtr(v int) *int {
	return &v
}

func validApplicant() applicant {
	return applicant{
		Name:       "Asha",
		Phone:      "9876543210",
		Age:        intPtr(34),
		UserType:   "Scheduled",
		PostalCode: "110001",
	}
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(a *applicant)
		expectedMsg string
	}{
		{
			name:   "valid applicant",
			mutate: func(*applicant) {},
		},
		{
			name:        "missing name",
			mutate:      func(a *applicant) { a.Name = "" },
			expectedMsg: "name is required",
		},
		{
			name:        "missing age",
			mutate:      func(a *applicant) { a.Age = nil },
			expectedMsg: "age is required",
		},
		{
			name:        "zero age is allowed",
			mutate:      func(a *applicant) { a.Age = intPtr(0) },
			expectedMsg: "",
		},
		{
			name:        "negative age",
			mutate:      func(a *applicant) { a.Age = intPtr(-1) },
			expectedMsg: "age must be greater than or equal to 0",
		},
		{
			name:        "unknown user type",
			mutate:      func(a *applicant) { a.UserType = "VIP" },
			expectedMsg: "user_type must be one of Scheduled Walk-in",
		},
		{
			name:        "bad postal code",
			mutate:      func(a *applicant) { a.PostalCode = "11A001" },
			expectedMsg: "postal_code must be a 6 digit postal code",
		},
		{
			name:        "empty postal code is optional",
			mutate:      func(a *applicant) { a.PostalCode = "" },
			expectedMsg: "",
		},
		{
			name:        "bad phone",
			mutate:      func(a *applicant) { a.Phone = "12ab" },
			expectedMsg: "phone must be a valid phone number",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := validApplicant()
			tt.mutate(&data)

			err := validator.ValidateStruct(&data)
			if tt.expectedMsg == "" {
				assert.NoError(t, err)

				return
			}

			assert.EqualError(t, err, tt.expectedMsg)
			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		})
	}
}

func TestValidateVar(t *testing.T) {
	tests := []struct {
		name        string
		field       any
		tag         string
		expectError bool
	}{
		{name: "valid required string", field: "ASK001", tag: "required"},
		{name: "empty required string", field: "", tag: "required", expectError: true},
		{name: "valid postal code", field: "560038", tag: "postalcode"},
		{name: "short postal code", field: "5600", tag: "postalcode", expectError: true},
		{name: "padded postal code", field: " 560038", tag: "postalcode", expectError: true},
		{name: "valid day", field: "2026-03-01", tag: "datetime=2006-01-02"},
		{name: "invalid day", field: "01/03/2026", tag: "datetime=2006-01-02", expectError: true},
		{name: "optional day", field: "", tag: "omitempty,datetime=2006-01-02"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateVar(tt.field, tt.tag)

			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateVar_Message(t *testing.T) {
	err := validator.ValidateVar("03-03-2026", "omitempty,datetime=2006-01-02")

	assert.EqualError(t, err, "value must match the 2006-01-02 layout")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		jsonBody    string
		expectError bool
	}{
		{
			name:     "valid JSON",
			jsonBody: `{"name":"Asha","phone":"+919876543210","age":34,"user_type":"Walk-in","postal_code":"110001"}`,
		},
		{
			name:        "invalid field",
			jsonBody:    `{"name":"Asha","phone":"+919876543210","age":34,"user_type":"Later"}`,
			expectError: true,
		},
		{
			name:        "age not a number",
			jsonBody:    `{"name":"Asha","phone":"+919876543210","age":"old","user_type":"Scheduled"}`,
			expectError: true,
		},
		{
			name:        "malformed JSON",
			jsonBody:    `{"name":"Asha","phone":}`,
			expectError: true,
		},
		{
			name:        "empty JSON",
			jsonBody:    `{}`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var data applicant
			err := validator.Validate(strings.NewReader(tt.jsonBody), &data)

			if tt.expectError {
				assert.Error(t, err)
				assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
