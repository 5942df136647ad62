package dto

import (
	"crowd/internal/domains/center/model"
	slotModel "crowd/internal/domains/slot/model"
	"crowd/internal/domains/slot/policy"
	"crowd/shared/constant"
	"fmt"
)

type CenterResponse struct {
	CenterID        string `json:"center_id"`
	Name            string `json:"name"`
	City            string `json:"city"`
	PostalCode      string `json:"postal_code"`
	CapacityPerHour int    `json:"capacity_per_hour"`
}

func (r *CenterResponse) FromModel(model model.Center) {
	r.CenterID = model.CenterID
	r.Name = model.Name
	r.City = model.City
	r.PostalCode = model.PostalCode
	r.CapacityPerHour = model.CapacityPerHour
}

type GetCentersResponse struct {
	Centers   []CenterResponse `json:"centers"`
	TotalData int              `json:"total_data"`
}

func (r *GetCentersResponse) FromModels(models []model.Center) {
	r.TotalData = len(models)

	r.Centers = make([]CenterResponse, len(models))
	for i, mod := range models {
		r.Centers[i].FromModel(mod)
	}
}

type SlotLoad struct {
	Hour           int    `json:"hour"`
	TimeSlot       string `json:"time_slot"`
	ScheduledCount int    `json:"scheduled_count"`
	WalkinCount    int    `json:"walkin_count"`
	Available      int    `json:"available"`
	ScheduledOpen  bool   `json:"scheduled_open"`
	WalkinOpen     bool   `json:"walkin_open"`
}

// CenterLoadResponse lists every service hour of one day, including hours with no stored cell.
type CenterLoadResponse struct {
	CenterID       string     `json:"center_id"`
	Date           string     `json:"date"`
	Capacity       int        `json:"capacity"`
	ScheduledLimit int        `json:"scheduled_limit"`
	Slots          []SlotLoad `json:"slots"`
}

// FromCells fills the hours of window. The open flags tell whether one more request of each
// kind would fit, using the same rule as slot search.
func (r *CenterLoadResponse) FromCells(center model.Center, date string, buffer policy.Buffer, window policy.Window, cells []slotModel.LoadCell) {
	r.CenterID = center.CenterID
	r.Date = date
	r.Capacity = center.CapacityPerHour
	r.ScheduledLimit = buffer.ScheduledLimit(center.CapacityPerHour)

	byHour := make(map[int]slotModel.LoadCell, len(cells))
	for _, cell := range cells {
		byHour[cell.SlotHour] = cell
	}

	r.Slots = make([]SlotLoad, 0, window.Close-window.Open)
	for hour := window.Open; hour < window.Close; hour++ {
		cell := byHour[hour]

		r.Slots = append(r.Slots, SlotLoad{
			Hour:           hour,
			TimeSlot:       fmt.Sprintf(constant.TimeSlotFormat, hour),
			ScheduledCount: cell.ScheduledCount,
			WalkinCount:    cell.WalkinCount,
			Available:      max(center.CapacityPerHour-cell.Total(), 0),
			ScheduledOpen:  buffer.Open(cell, center.CapacityPerHour, false),
			WalkinOpen:     buffer.Open(cell, center.CapacityPerHour, true),
		})
	}
}
