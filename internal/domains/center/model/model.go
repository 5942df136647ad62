package model

const (
	TableName  = "centers"
	EntityName = "center"

	FieldCenterID        = "center_id"
	FieldName            = "name"
	FieldCity            = "city"
	FieldPostalCode      = "postal_code"
	FieldCapacityPerHour = "capacity_per_hour"
)

type Center struct {
	CenterID        string `db:"center_id"`
	Name            string `db:"name"`
	City            string `db:"city"`
	PostalCode      string `db:"postal_code"`
	CapacityPerHour int    `db:"capacity_per_hour"`
}
