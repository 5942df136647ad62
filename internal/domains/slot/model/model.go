package model

import "time"

const (
	TableName  = "load_cells"
	EntityName = "load_cell"

	FieldCenterID       = "center_id"
	FieldSlotDate       = "slot_date"
	FieldSlotHour       = "slot_hour"
	FieldScheduledCount = "scheduled_count"
	FieldWalkinCount    = "walkin_count"
)

// LoadCell is the capacity accounting unit of one center for one hour of one day.
// SlotDate is formatted with constant.DayFormat.
type LoadCell struct {
	CenterID       string `db:"center_id"`
	SlotDate       string `db:"slot_date"`
	SlotHour       int    `db:"slot_hour"`
	ScheduledCount int    `db:"scheduled_count"`
	WalkinCount    int    `db:"walkin_count"`
}

func (c LoadCell) Total() int {
	return c.ScheduledCount + c.WalkinCount
}

// Key addresses a load cell inside one center.
type Key struct {
	Date string
	Hour int
}

func (c LoadCell) Key() Key {
	return Key{Date: c.SlotDate, Hour: c.SlotHour}
}

// Reservation asks for one more unit in a cell. Limit bounds the scheduled count for
// scheduled requests, Capacity bounds the total for both kinds. At stamps the cell.
type Reservation struct {
	CenterID string
	Date     string
	Hour     int
	WalkIn   bool
	Limit    int
	Capacity int
	At       time.Time
}
