package dto

import (
	"crowd/shared/constant"
	"crowd/shared/model"
	"crowd/shared/timezone"
)

// Metadata renders record timestamps in the application timezone. ModifiedAt is left empty
// for records that were never changed after creation.
type Metadata struct {
	CreatedAt  string `json:"created_at"`
	ModifiedAt string `json:"modified_at,omitempty"`
}

func (m *Metadata) FromModel(model model.Metadata) {
	m.CreatedAt = timezone.Format(model.CreatedAt, constant.DateFormat)

	if model.ModifiedAt.IsZero() || model.ModifiedAt.Equal(model.CreatedAt) {
		return
	}

	m.ModifiedAt = timezone.Format(model.ModifiedAt, constant.DateFormat)
}
