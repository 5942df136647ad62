package service_test

import (
	"context"
	"crowd/config"
	"crowd/infras/database"
	"crowd/infras/database/dbtest"
	"crowd/infras/events"
	eventsMocks "crowd/infras/events/mocks"
	"crowd/infras/otel/mocks"
	"crowd/infras/s3"
	s3Mocks "crowd/infras/s3/mocks"
	bookingMocks "crowd/internal/domains/booking/mocks"
	"crowd/internal/domains/booking/model"
	"crowd/internal/domains/booking/model/dto"
	"crowd/internal/domains/booking/repository"
	"crowd/internal/domains/booking/service"
	centerRepository "crowd/internal/domains/center/repository"
	centerService "crowd/internal/domains/center/service"
	"crowd/internal/domains/slot/policy"
	slotRepository "crowd/internal/domains/slot/repository"
	"crowd/shared/cache"
	gDto "crowd/shared/dto"
	"crowd/shared/failure"
	gModel "crowd/shared/model"
	"crowd/shared/timezone"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	tinyCenterID = "ASK900"
	tinyPostal   = "999001"
)

type fixture struct {
	conn    *database.Connection
	repo    repository.Booking
	centers centerService.Center
	svc     service.Booking
}

type options struct {
	fraction string
	repo     repository.Booking
	s3       s3.S3
	events   events.Publisher
}

func newCfg() *config.Config {
	cfg := &config.Config{}
	cfg.Allocation.HorizonDays = 3
	cfg.Allocation.OpenHour = 9
	cfg.Allocation.CloseHour = 17
	cfg.Allocation.RequestIDPrefix = "REQ"

	return cfg
}

func at(hour, minute int) time.Time {
	return time.Date(2026, 3, 2, hour, minute, 0, 0, time.UTC)
}

func newFixture(t *testing.T, now time.Time, opts options) fixture {
	t.Helper()

	conn := dbtest.NewSQLite(t)
	otl := mocks.NewOtel()

	// a one-seat center makes the horizon small enough to exhaust
	_, err := conn.Write.Exec(`INSERT INTO centers (center_id, name, city, postal_code, capacity_per_hour) VALUES (?, 'ASK Test - Tiny', 'Tinytown', ?, 1)`, tinyCenterID, tinyPostal)
	require.NoError(t, err)

	if opts.fraction == "" {
		opts.fraction = "0.20"
	}

	cfg := newCfg()
	clock := timezone.Fixed(now)
	buffer := policy.MustParseBuffer(opts.fraction)
	slotRepo := slotRepository.New(conn, otl)

	centers, err := centerService.New(centerRepository.New(conn, otl), slotRepo, buffer, cfg, otl, clock)
	require.NoError(t, err)

	repo := repository.New(conn, otl)
	svcRepo := opts.repo
	if svcRepo == nil {
		svcRepo = repo
	}

	store := opts.s3
	if store == nil {
		store = s3.New(cfg, otl)
	}

	publisher := opts.events
	if publisher == nil {
		publisher = events.NewNoop()
	}

	svc := service.New(conn, svcRepo, slotRepo, centers, buffer, cfg, cache.NewRedisCache(nil, otl), otl, publisher, store, clock)

	return fixture{conn: conn, repo: repo, centers: centers, svc: svc}
}

func (f fixture) count(t *testing.T, query string, args ...any) int {
	t.Helper()

	var n int
	require.NoError(t, f.conn.Read.Get(&n, query, args...))

	return n
}

func (f fixture) insert(t *testing.T, records ...model.Request) {
	t.Helper()

	require.NoError(t, f.conn.WithTx(context.Background(), func(tx *sqlx.Tx) error {
		for _, r := range records {
			if err := f.repo.InsertTx(context.Background(), tx, r); err != nil {
				return err
			}
		}

		return nil
	}))
}

func applicant(userType, city, postal string) dto.CreateBookingRequest {
	age := 34

	return dto.CreateBookingRequest{
		RequestType: "Aadhaar Update",
		UserType:    userType,
		City:        city,
		PostalCode:  postal,
		Name:        "Asha Rao",
		Phone:       "+919812345678",
		Age:         &age,
	}
}

func record(id, centerID, date, status string, created time.Time) model.Request {
	return model.Request{
		RequestID:        id,
		Name:             "Applicant " + id,
		Phone:            "9812345678",
		Age:              30,
		AgeGroup:         model.AgeGroupAdult,
		RequestType:      "New Enrolment",
		UserType:         model.UserTypeScheduled,
		InputCity:        "New Delhi",
		InputPostalCode:  "110001",
		AssignedCenterID: centerID,
		AssignedDate:     date,
		AssignedTimeSlot: "11:00",
		Status:           status,
		Metadata:         gModel.Metadata{CreatedAt: created, ModifiedAt: created},
	}
}

func TestBookingService_Process(t *testing.T) {
	f := newFixture(t, at(10, 30), options{})

	res, err := f.svc.Process(context.Background(), applicant(model.UserTypeScheduled, "noida", ""))
	require.NoError(t, err)
	require.True(t, res.Success)
	require.NotNil(t, res.Data)

	assert.Equal(t, "ASK Noida - Sector 18", res.CenterName)
	assert.Equal(t, "ASK003", res.Data.AssignedCenterID)
	assert.Equal(t, "2026-03-02", res.Data.AssignedDate)
	assert.Equal(t, "11:00", res.Data.AssignedTimeSlot)
	assert.Equal(t, model.StatusConfirmed, res.Data.Status)
	assert.Equal(t, model.AgeGroupAdult, res.Data.AgeGroup)
	assert.Regexp(t, `^REQ[0-9A-F]{10}$`, res.Data.RequestID)
	assert.Equal(t,
		"Dear Citizen, your appointment at ASK Noida - Sector 18 is confirmed for 2026-03-02 at 11:00. Request ID: "+res.Data.RequestID+". Please carry your documents.",
		res.Message)

	assert.Equal(t, 1, f.count(t, `SELECT COUNT(*) FROM requests WHERE request_id = ?`, res.Data.RequestID))
	assert.Equal(t, 1, f.count(t, `SELECT scheduled_count FROM load_cells WHERE center_id = 'ASK003' AND slot_date = '2026-03-02' AND slot_hour = 11`))

	second, err := f.svc.Process(context.Background(), applicant(model.UserTypeScheduled, "noida", ""))
	require.NoError(t, err)
	assert.NotEqual(t, res.Data.RequestID, second.Data.RequestID)
}

func TestBookingService_FindSlotSkipsElapsedHours(t *testing.T) {
	tests := []struct {
		name         string
		now          time.Time
		walkIn       bool
		wantDate     string
		wantHour     int
		wantDeferred bool
	}{
		{name: "scheduled skips the current hour", now: at(10, 30), wantDate: "2026-03-02", wantHour: 11},
		{name: "walk-in may use the current hour", now: at(10, 30), walkIn: true, wantDate: "2026-03-02", wantHour: 10},
		{name: "before opening", now: at(7, 0), wantDate: "2026-03-02", wantHour: 9},
		{name: "scheduled after the last slot moves to tomorrow", now: at(16, 10), wantDate: "2026-03-03", wantHour: 9, wantDeferred: true},
		{name: "walk-in in the last slot", now: at(16, 10), walkIn: true, wantDate: "2026-03-02", wantHour: 16},
		{name: "walk-in after closing moves to tomorrow", now: at(18, 0), walkIn: true, wantDate: "2026-03-03", wantHour: 9, wantDeferred: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, tt.now, options{})

			center, ok := f.centers.Find("ASK001")
			require.True(t, ok)

			slot, err := f.svc.FindSlot(context.Background(), center, tt.walkIn)
			require.NoError(t, err)

			assert.Equal(t, tt.wantDate, slot.Date)
			assert.Equal(t, tt.wantHour, slot.Hour)
			assert.Equal(t, tt.wantDeferred, slot.Deferred)
		})
	}
}

func TestBookingService_ScheduledSkipsHourFilledByWalkins(t *testing.T) {
	f := newFixture(t, at(8, 0), options{fraction: "0"})

	walkIn, err := f.svc.Process(context.Background(), applicant(model.UserTypeWalkin, "", tinyPostal))
	require.NoError(t, err)
	require.True(t, walkIn.Success)
	assert.Equal(t, "09:00", walkIn.Data.AssignedTimeSlot)

	scheduled, err := f.svc.Process(context.Background(), applicant(model.UserTypeScheduled, "", tinyPostal))
	require.NoError(t, err)
	require.True(t, scheduled.Success, scheduled.Message)
	assert.Equal(t, tinyCenterID, scheduled.Data.AssignedCenterID)
	assert.Equal(t, "2026-03-02", scheduled.Data.AssignedDate)
	assert.Equal(t, "10:00", scheduled.Data.AssignedTimeSlot)
	assert.Equal(t, model.StatusConfirmed, scheduled.Data.Status)

	assert.Equal(t, 2, f.count(t, `SELECT COUNT(*) FROM load_cells WHERE center_id = ?`, tinyCenterID))
}

func TestBookingService_FindSlotSkipsFullCells(t *testing.T) {
	f := newFixture(t, at(8, 0), options{})

	// ASK004 holds 25 per hour, 20 of them bookable by scheduled requests
	_, err := f.conn.Write.Exec(`INSERT INTO load_cells (center_id, slot_date, slot_hour, scheduled_count, walkin_count) VALUES
		('ASK004', '2026-03-02', 9, 5, 20),
		('ASK004', '2026-03-02', 10, 20, 0),
		('ASK004', '2026-03-02', 11, 19, 6)`)
	require.NoError(t, err)

	center, ok := f.centers.Find("ASK004")
	require.True(t, ok)

	scheduled, err := f.svc.FindSlot(context.Background(), center, false)
	require.NoError(t, err)
	assert.Equal(t, 12, scheduled.Hour)

	walkIn, err := f.svc.FindSlot(context.Background(), center, true)
	require.NoError(t, err)
	assert.Equal(t, 10, walkIn.Hour)
}

func TestBookingService_ProcessStampsCellWithClock(t *testing.T) {
	f := newFixture(t, at(8, 0), options{fraction: "0"})

	res, err := f.svc.Process(context.Background(), applicant(model.UserTypeScheduled, "", tinyPostal))
	require.NoError(t, err)
	require.True(t, res.Success)

	var stamps struct {
		CreatedAt  time.Time `db:"created_at"`
		ModifiedAt time.Time `db:"modified_at"`
	}

	require.NoError(t, f.conn.Read.Get(&stamps, `SELECT created_at, modified_at FROM load_cells WHERE center_id = ?`, tinyCenterID))
	assert.True(t, at(8, 0).Equal(stamps.CreatedAt), stamps.CreatedAt)
	assert.True(t, at(8, 0).Equal(stamps.ModifiedAt), stamps.ModifiedAt)
}

func TestBookingService_FindSlotIsReadOnly(t *testing.T) {
	f := newFixture(t, at(10, 30), options{})

	center, _ := f.centers.Find("ASK002")

	first, err := f.svc.FindSlot(context.Background(), center, false)
	require.NoError(t, err)

	second, err := f.svc.FindSlot(context.Background(), center, false)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Zero(t, f.count(t, `SELECT COUNT(*) FROM load_cells`))
	assert.Zero(t, f.count(t, `SELECT COUNT(*) FROM requests`))
}

func TestBookingService_CapacityOneNeverDoubleBooks(t *testing.T) {
	f := newFixture(t, at(15, 30), options{fraction: "0"})

	req := applicant(model.UserTypeScheduled, "", tinyPostal)

	// 16:00 today plus two full days
	const horizonCells = 1 + 2*8

	seen := map[string]bool{}

	for i := range horizonCells {
		res, err := f.svc.Process(context.Background(), req)
		require.NoError(t, err)
		require.True(t, res.Success, "booking %d", i)

		key := res.Data.AssignedDate + " " + res.Data.AssignedTimeSlot
		assert.False(t, seen[key], "cell %s booked twice", key)
		seen[key] = true

		if i == 0 {
			assert.Equal(t, model.StatusConfirmed, res.Data.Status)
		} else {
			assert.Equal(t, model.StatusDecongested, res.Data.Status)
		}
	}

	requests := f.count(t, `SELECT COUNT(*) FROM requests`)
	cells := f.count(t, `SELECT COUNT(*) FROM load_cells`)

	res, err := f.svc.Process(context.Background(), req)
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Nil(t, res.Data)
	assert.Equal(t, "System Overload. All nearby centers are full for the next 3 days. Please try again later.", res.Message)

	assert.Equal(t, requests, f.count(t, `SELECT COUNT(*) FROM requests`))
	assert.Equal(t, cells, f.count(t, `SELECT COUNT(*) FROM load_cells`))
	assert.Zero(t, f.count(t, `SELECT COUNT(*) FROM load_cells WHERE scheduled_count + walkin_count > 1`))

	// the current hour is still open to walk-ins
	walkIn, err := f.svc.Process(context.Background(), applicant(model.UserTypeWalkin, "", tinyPostal))
	require.NoError(t, err)
	require.True(t, walkIn.Success)
	assert.Equal(t, "2026-03-02", walkIn.Data.AssignedDate)
	assert.Equal(t, "15:00", walkIn.Data.AssignedTimeSlot)
	assert.Equal(t, model.StatusConfirmed, walkIn.Data.Status)
}

func TestBookingService_WalkinBufferIsReserved(t *testing.T) {
	f := newFixture(t, at(16, 30), options{})

	// capacity 1 leaves no scheduled seats once 20% is held back
	res, err := f.svc.Process(context.Background(), applicant(model.UserTypeScheduled, "", tinyPostal))
	require.NoError(t, err)
	assert.False(t, res.Success)

	first, err := f.svc.Process(context.Background(), applicant(model.UserTypeWalkin, "", tinyPostal))
	require.NoError(t, err)
	require.True(t, first.Success)
	assert.Equal(t, "16:00", first.Data.AssignedTimeSlot)
	assert.Equal(t, model.StatusConfirmed, first.Data.Status)

	second, err := f.svc.Process(context.Background(), applicant(model.UserTypeWalkin, "", tinyPostal))
	require.NoError(t, err)
	require.True(t, second.Success)
	assert.Equal(t, "2026-03-03", second.Data.AssignedDate)
	assert.Equal(t, "09:00", second.Data.AssignedTimeSlot)
	assert.Equal(t, model.StatusDeferredWalkin, second.Data.Status)
}

func TestBookingService_ConcurrentProcessKeepsCapacity(t *testing.T) {
	f := newFixture(t, at(15, 30), options{fraction: "0"})

	const callers = 30

	results := make(chan dto.BookingResult, callers)
	errs := make(chan error, callers)

	for range callers {
		go func() {
			res, err := f.svc.Process(context.Background(), applicant(model.UserTypeScheduled, "", tinyPostal))
			if err != nil {
				errs <- err

				return
			}

			results <- res
		}()
	}

	var booked, overloaded int

	for range callers {
		select {
		case err := <-errs:
			t.Fatalf("unexpected error: %v", err)
		case res := <-results:
			if res.Success {
				booked++
			} else {
				overloaded++
			}
		}
	}

	assert.Equal(t, 17, booked)
	assert.Equal(t, callers-17, overloaded)
	assert.Equal(t, 17, f.count(t, `SELECT COUNT(*) FROM requests`))
	assert.Zero(t, f.count(t, `SELECT COUNT(*) FROM load_cells WHERE scheduled_count + walkin_count > 1`))
}

func TestBookingService_CommitRollsBackOnPersistenceFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	f := newFixture(t, at(10, 30), options{repo: mockRepo})

	mockRepo.EXPECT().
		InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("disk full"))

	res, err := f.svc.Process(context.Background(), applicant(model.UserTypeScheduled, "Mumbai", ""))
	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	assert.False(t, res.Success)

	assert.Zero(t, f.count(t, `SELECT COUNT(*) FROM load_cells`))
	assert.Zero(t, f.count(t, `SELECT COUNT(*) FROM requests`))
}

func TestBookingService_Redistribute(t *testing.T) {
	f := newFixture(t, at(10, 30), options{})
	created := at(8, 0)

	f.insert(t,
		record("REQ0000000001", "ASK001", "2026-03-02", model.StatusConfirmed, created),
		record("REQ0000000002", "ASK001", "2026-03-02", model.StatusConfirmed, created),
		record("REQ0000000003", "ASK001", "2026-03-02", model.StatusConfirmed, created),
		record("REQ0000000004", "ASK001", "2026-03-03", model.StatusConfirmed, created),
		record("REQ0000000005", "ASK001", "2026-03-02", model.StatusDeferredWalkin, created),
		record("REQ0000000006", "ASK002", "2026-03-02", model.StatusConfirmed, created),
		record("REQ0000000007", "ASK001", "2026-03-01", model.StatusConfirmed, created),
		record("REQ0000000008", "ASK001", "2026-03-01", model.StatusConfirmed, created),
		record("REQ0000000009", "ASK001", "2026-03-02", model.StatusCompleted, created),
	)

	cells := f.count(t, `SELECT COUNT(*) FROM load_cells`)

	res, err := f.svc.Redistribute(context.Background(), dto.RedistributeRequest{CenterID: "ASK001"})
	require.NoError(t, err)
	assert.Equal(t, 3, res.Count)
	assert.Equal(t, "3 appointments shifted to tomorrow.", res.Message)

	assert.Equal(t, 3, f.count(t, `SELECT COUNT(*) FROM requests WHERE status = ? AND assigned_date = '2026-03-03'`, model.StatusRescheduled))

	untouched := []struct {
		id     string
		date   string
		status string
	}{
		{id: "REQ0000000004", date: "2026-03-03", status: model.StatusConfirmed},
		{id: "REQ0000000005", date: "2026-03-02", status: model.StatusDeferredWalkin},
		{id: "REQ0000000006", date: "2026-03-02", status: model.StatusConfirmed},
		{id: "REQ0000000007", date: "2026-03-01", status: model.StatusConfirmed},
		{id: "REQ0000000008", date: "2026-03-01", status: model.StatusConfirmed},
		{id: "REQ0000000009", date: "2026-03-02", status: model.StatusCompleted},
	}

	for _, row := range untouched {
		assert.Equal(t, 1, f.count(t, `SELECT COUNT(*) FROM requests WHERE request_id = ? AND assigned_date = ? AND status = ?`, row.id, row.date, row.status), row.id)
	}

	assert.Equal(t, cells, f.count(t, `SELECT COUNT(*) FROM load_cells`))

	again, err := f.svc.Redistribute(context.Background(), dto.RedistributeRequest{CenterID: "ASK001"})
	require.NoError(t, err)
	assert.Zero(t, again.Count)
	assert.Equal(t, "0 appointments shifted to tomorrow.", again.Message)

	_, err = f.svc.Redistribute(context.Background(), dto.RedistributeRequest{CenterID: "ASK999"})
	assert.True(t, failure.IsNotFound(err))
}

func TestBookingService_Track(t *testing.T) {
	f := newFixture(t, at(10, 30), options{})

	booked, err := f.svc.Process(context.Background(), applicant(model.UserTypeWalkin, "Bengaluru", ""))
	require.NoError(t, err)

	res, err := f.svc.Track(context.Background(), booked.Data.RequestID)
	require.NoError(t, err)
	assert.Equal(t, booked.Data.RequestID, res.RequestID)
	assert.Equal(t, "ASK008", res.CenterID)
	assert.Equal(t, "ASK Bengaluru - Indiranagar", res.CenterName)
	assert.Equal(t, "10:00", res.TimeSlot)
	assert.Equal(t, model.StatusConfirmed, res.Status)

	_, err = f.svc.Track(context.Background(), "REQ404")
	assert.True(t, failure.IsNotFound(err))
}

func TestBookingService_Dashboard(t *testing.T) {
	f := newFixture(t, at(10, 30), options{})

	child := record("REQ0000000004", "ASK006", "2026-03-02", model.StatusConfirmed, at(9, 4))
	child.InputCity = "Mumbai"
	child.Age = 12
	child.AgeGroup = model.AgeGroupChild

	done := record("REQ0000000005", "ASK006", "2026-02-27", model.StatusCompleted, at(9, 5))
	done.InputCity = "Navi Mumbai"

	f.insert(t,
		record("REQ0000000001", "ASK001", "2026-03-02", model.StatusConfirmed, at(9, 1)),
		record("REQ0000000002", "ASK001", "2026-03-03", model.StatusDecongested, at(9, 2)),
		record("REQ0000000003", "ASK001", "2026-03-03", model.StatusRescheduled, at(9, 3)),
		child,
		done,
	)

	tests := []struct {
		name      string
		req       dto.DashboardRequest
		total     int
		today     int
		redirects int
		firstLog  string
	}{
		{name: "everything", req: dto.DashboardRequest{Region: "All", Status: "All", AgeGroup: "All"}, total: 5, today: 2, redirects: 2, firstLog: "REQ0000000005"},
		{name: "region is a case-insensitive substring", req: dto.DashboardRequest{Region: "mumbai"}, total: 2, today: 1, firstLog: "REQ0000000005"},
		{name: "pending means confirmed", req: dto.DashboardRequest{Status: dto.StatusFilterPending}, total: 2, today: 2, firstLog: "REQ0000000004"},
		{name: "done means completed", req: dto.DashboardRequest{Status: dto.StatusFilterDone}, total: 1, firstLog: "REQ0000000005"},
		{name: "age group", req: dto.DashboardRequest{AgeGroup: model.AgeGroupChild}, total: 1, today: 1, firstLog: "REQ0000000004"},
		{name: "region with redirects", req: dto.DashboardRequest{Region: "delhi"}, total: 3, today: 1, redirects: 2, firstLog: "REQ0000000003"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := f.svc.Dashboard(context.Background(), tt.req)
			require.NoError(t, err)

			assert.Equal(t, tt.total, res.TotalReq)
			assert.Equal(t, tt.today, res.TodayReq)
			assert.Equal(t, tt.redirects, res.OverloadRedirects)
			require.Len(t, res.Logs, tt.total)
			assert.Equal(t, tt.firstLog, res.Logs[0].RequestID)
		})
	}
}

func TestBookingService_List(t *testing.T) {
	f := newFixture(t, at(10, 30), options{})

	f.insert(t,
		record("REQ0000000001", "ASK001", "2026-03-02", model.StatusConfirmed, at(9, 1)),
		record("REQ0000000002", "ASK001", "2026-03-03", model.StatusConfirmed, at(9, 2)),
		record("REQ0000000003", "ASK001", "2026-03-03", model.StatusRescheduled, at(9, 3)),
		record("REQ0000000004", "ASK006", "2026-03-02", model.StatusConfirmed, at(9, 4)),
		record("REQ0000000005", "ASK006", "2026-03-04", model.StatusCompleted, at(9, 5)),
	)

	tests := []struct {
		name      string
		params    gDto.QueryParams
		req       dto.DashboardRequest
		want      []string
		totalData int
		totalPage int
	}{
		{
			name:      "newest first by default",
			params:    gDto.QueryParams{Page: 1, Limit: 2},
			want:      []string{"REQ0000000005", "REQ0000000004"},
			totalData: 5,
			totalPage: 3,
		},
		{
			name:      "explicit sort and page",
			params:    gDto.QueryParams{Page: 2, Limit: 2, SortBy: model.FieldRequestID, SortDir: gDto.SortDirAsc},
			want:      []string{"REQ0000000003", "REQ0000000004"},
			totalData: 5,
			totalPage: 3,
		},
		{
			name:      "unknown sort column falls back to creation time",
			params:    gDto.QueryParams{Page: 1, Limit: 10, SortBy: "phone; DROP TABLE requests", SortDir: gDto.SortDirAsc},
			want:      []string{"REQ0000000001", "REQ0000000002", "REQ0000000003", "REQ0000000004", "REQ0000000005"},
			totalData: 5,
			totalPage: 1,
		},
		{
			name:      "filtered",
			params:    gDto.QueryParams{Page: 1, Limit: 10},
			req:       dto.DashboardRequest{Status: dto.StatusFilterPending},
			want:      []string{"REQ0000000004", "REQ0000000002", "REQ0000000001"},
			totalData: 3,
			totalPage: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := f.svc.List(context.Background(), tt.params, tt.req)
			require.NoError(t, err)

			ids := make([]string, len(res.Requests))
			for i, r := range res.Requests {
				ids[i] = r.RequestID
			}

			assert.Equal(t, tt.want, ids)
			assert.Equal(t, tt.totalData, res.TotalData)
			assert.Equal(t, tt.totalPage, res.TotalPage)
		})
	}

	assert.Equal(t, 5, f.count(t, `SELECT COUNT(*) FROM requests`))
}

func TestBookingService_Reset(t *testing.T) {
	f := newFixture(t, at(10, 30), options{})

	for range 3 {
		_, err := f.svc.Process(context.Background(), applicant(model.UserTypeScheduled, "Gurugram", ""))
		require.NoError(t, err)
	}

	require.NoError(t, f.svc.Reset(context.Background()))

	assert.Zero(t, f.count(t, `SELECT COUNT(*) FROM requests`))
	assert.Zero(t, f.count(t, `SELECT COUNT(*) FROM load_cells`))
	assert.Equal(t, 9, f.count(t, `SELECT COUNT(*) FROM centers`))

	res, err := f.svc.Process(context.Background(), applicant(model.UserTypeScheduled, "Gurugram", ""))
	require.NoError(t, err)
	assert.Equal(t, "11:00", res.Data.AssignedTimeSlot)
}

func TestBookingService_Export(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockS3 := s3Mocks.NewMockS3(ctrl)
	f := newFixture(t, at(10, 30), options{s3: mockS3})

	f.insert(t,
		record("REQ0000000001", "ASK001", "2026-03-02", model.StatusConfirmed, at(9, 1)),
		record("REQ0000000002", "ASK002", "2026-03-02", model.StatusConfirmed, at(9, 2)),
	)

	var uploaded []byte

	mockS3.EXPECT().
		UploadFileBytes(gomock.Any(), gomock.Any(), "exports", "requests-20260302T103000.csv", "text/csv", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _, _, _ string, data []byte) (string, error) {
			uploaded = data

			return "https://files.example.com/exports/requests-20260302T103000.csv", nil
		})

	res, err := f.svc.Export(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, res.Rows)
	assert.Equal(t, "https://files.example.com/exports/requests-20260302T103000.csv", res.URL)
	assert.Contains(t, string(uploaded), "request_id,name,phone,age,age_group")
	assert.Contains(t, string(uploaded), "REQ0000000002,Applicant REQ0000000002,9812345678,30,Adult (18-60)")

	t.Run("storage not configured", func(t *testing.T) {
		unconfigured := newFixture(t, at(10, 30), options{})

		_, err := unconfigured.svc.Export(context.Background())
		assert.Equal(t, http.StatusServiceUnavailable, failure.GetCode(err))
	})
}

func TestBookingService_ProcessPublishesConfirmation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	published := make(chan []events.Notification, 1)

	publisher := eventsMocks.NewMockPublisher(ctrl)
	publisher.EXPECT().
		Publish(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, notifications ...events.Notification) error {
			published <- notifications

			return nil
		})

	f := newFixture(t, at(10, 30), options{events: publisher})

	res, err := f.svc.Process(context.Background(), applicant(model.UserTypeScheduled, "Noida", "201301"))
	require.NoError(t, err)
	require.True(t, res.Success)

	select {
	case notifications := <-published:
		require.Len(t, notifications, 1)
		assert.Equal(t, events.TypeBookingConfirmed, notifications[0].Type)
		assert.Equal(t, res.Data.RequestID, notifications[0].RequestID)
		assert.Equal(t, "+919812345678", notifications[0].Phone)
		assert.Equal(t, res.Message, notifications[0].Message)
	case <-time.After(2 * time.Second):
		t.Fatal("confirmation was not published")
	}
}
