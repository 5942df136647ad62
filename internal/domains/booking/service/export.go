package service

import (
	"bytes"
	"context"
	"crowd/infras/s3"
	"crowd/internal/domains/booking/model"
	"crowd/internal/domains/booking/model/dto"
	"crowd/shared/constant"
	gDto "crowd/shared/dto"
	"crowd/shared/failure"
	"encoding/csv"
	"errors"
	"fmt"
	"strconv"

	"github.com/rs/zerolog/log"
)

const (
	exportDirectory  = "exports"
	exportFileLayout = "requests-20060102T150405.csv"
)

var exportHeader = []string{
	model.FieldRequestID,
	model.FieldName,
	model.FieldPhone,
	model.FieldAge,
	model.FieldAgeGroup,
	model.FieldRequestType,
	model.FieldUserType,
	model.FieldInputCity,
	model.FieldInputPostalCode,
	model.FieldAssignedCenterID,
	model.FieldAssignedDate,
	model.FieldAssignedTimeSlot,
	model.FieldStatus,
	model.FieldCreatedAt,
	model.FieldModifiedAt,
}

// Export uploads a CSV snapshot of the whole request ledger, oldest first.
func (s *serviceImpl) Export(ctx context.Context) (res dto.ExportResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".request.Export")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	records, err := s.repo.GetAll(ctx, gDto.QueryParams{SortBy: model.FieldCreatedAt, SortDir: gDto.SortDirAsc}, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get requests for export")

		return res, fmt.Errorf("failed to get requests for export: %w", err)
	}

	data, err := encodeCSV(records)
	if err != nil {
		return res, err
	}

	now := s.now()

	url, err := s.s3.UploadFileBytes(ctx, s.cfg.External.S3.BucketName, exportDirectory, now.Format(exportFileLayout), constant.ContentTypeCSV, data)
	if errors.Is(err, s3.ErrNotConfigured) {
		return res, failure.ServiceUnavailable("ledger export is not configured") // nolint:wrapcheck
	}

	if err != nil {
		log.Error().Err(err).Msg("failed to upload ledger export")

		return res, fmt.Errorf("failed to upload ledger export: %w", err)
	}

	log.Info().Str("url", url).Int("rows", len(records)).Msg("ledger exported")

	return dto.ExportResponse{URL: url, Rows: len(records)}, nil
}

func encodeCSV(records []model.Request) ([]byte, error) {
	var buf bytes.Buffer

	writer := csv.NewWriter(&buf)

	if err := writer.Write(exportHeader); err != nil {
		return nil, fmt.Errorf("failed to write export header: %w", err)
	}

	for _, r := range records {
		row := []string{
			r.RequestID,
			r.Name,
			r.Phone,
			strconv.Itoa(r.Age),
			r.AgeGroup,
			r.RequestType,
			r.UserType,
			r.InputCity,
			r.InputPostalCode,
			r.AssignedCenterID,
			r.AssignedDate,
			r.AssignedTimeSlot,
			r.Status,
			r.CreatedAt.Format(constant.DateFormat),
			r.ModifiedAt.Format(constant.DateFormat),
		}

		if err := writer.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write export row %s: %w", r.RequestID, err)
		}
	}

	writer.Flush()

	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush export: %w", err)
	}

	return buf.Bytes(), nil
}
