package ingest

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/iajwork/smart-attendance-platform/internal/domain/employee"
	"github.com/iajwork/smart-attendance-platform/internal/domain/ingest"
	"github.com/iajwork/smart-attendance-platform/internal/domain/location"
	"github.com/iajwork/smart-attendance-platform/internal/domain/punch"
	"github.com/iajwork/smart-attendance-platform/internal/pkg/geo"
	"github.com/iajwork/smart-attendance-platform/internal/pkg/tabular"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type passthroughTx struct{}

func (passthroughTx) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeEmployeeRepo struct {
	byCode  map[string]employee.Employee
	created []employee.Employee
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{byCode: make(map[string]employee.Employee)}
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	f.byCode[emp.Code] = emp
	f.created = append(f.created, emp)
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByCode(ctx context.Context, code string) (*employee.Employee, error) {
	emp, ok := f.byCode[code]
	if !ok {
		return nil, nil
	}
	return &emp, nil
}

func (f *fakeEmployeeRepo) List(ctx context.Context) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, emp := range f.byCode {
		out = append(out, emp)
	}
	return out, nil
}

func (f *fakeEmployeeRepo) Deactivate(ctx context.Context, id string) error { return nil }

type fakeLocationRepo struct {
	locations []location.Location
}

func (f *fakeLocationRepo) Create(ctx context.Context, loc location.Location) (location.Location, error) {
	f.locations = append(f.locations, loc)
	return loc, nil
}

func (f *fakeLocationRepo) GetDefault(ctx context.Context) (*location.Location, error) {
	if len(f.locations) == 0 {
		return nil, nil
	}
	return &f.locations[0], nil
}

func (f *fakeLocationRepo) GetByID(ctx context.Context, id string) (location.Location, error) {
	for _, loc := range f.locations {
		if loc.ID == id {
			return loc, nil
		}
	}
	return location.Location{}, location.ErrLocationNotFound
}

func (f *fakeLocationRepo) List(ctx context.Context) ([]location.Location, error) {
	return f.locations, nil
}

type fakePunchRepo struct {
	inserted  []punch.Punch
	insertErr error
}

func (f *fakePunchRepo) Insert(ctx context.Context, p punch.Punch) (punch.Punch, error) {
	if f.insertErr != nil {
		return punch.Punch{}, f.insertErr
	}
	f.inserted = append(f.inserted, p)
	return p, nil
}

func (f *fakePunchRepo) ListByTimeRange(ctx context.Context, from, to time.Time) ([]punch.Punch, error) {
	return f.inserted, nil
}

const officeUpload = `Acme Corp Punch Report,,,,,,,
Generated,2026-02-26,,,,,,
,,,,,,,
Employee Number,Employee Name,Time Stamp,Punch Status,Device Identifier,Latitude,Longitude,Address
e1,Asha Rao,2026-02-25 09:00:00,IN,DEV-1,19.0760,72.8777,Mumbai
E1,Asha Rao,2026-02-25 18:00:00,OUT,DEV-1,19.0760,72.8777,Mumbai
E2,Vikram Shah,not-a-timestamp,IN,DEV-2,19.0760,72.8777,Mumbai
,No Code,2026-02-25 10:00:00,IN,DEV-3,19.0760,72.8777,Mumbai
`

func officeLocation() location.Location {
	return location.Location{
		ID:           "loc-1",
		Name:         "HQ",
		Latitude:     19.0760,
		Longitude:    72.8777,
		RadiusMeters: 100,
	}
}

func newService(locs ...location.Location) (*IngestServiceImpl, *fakeEmployeeRepo, *fakeLocationRepo, *fakePunchRepo) {
	employees := newFakeEmployeeRepo()
	locations := &fakeLocationRepo{locations: locs}
	punches := &fakePunchRepo{}
	svc := NewIngestService(passthroughTx{}, employees, locations, punches).(*IngestServiceImpl)
	return svc, employees, locations, punches
}

func TestProcessUpload_NormalizesAndClassifies(t *testing.T) {
	svc, employees, _, punches := newService(officeLocation())

	result, err := svc.ProcessUpload(context.Background(), "punches.csv", strings.NewReader(officeUpload))
	require.NoError(t, err)

	// Only the two parseable E1 rows survive; the bad timestamp and the
	// missing code are dropped, not errored.
	assert.Equal(t, "success", result.Status)
	assert.Equal(t, 2, result.RecordsProcessed)
	require.Len(t, punches.inserted, 2)

	first := punches.inserted[0]
	assert.Equal(t, geo.StatusInOffice, first.LocationStatus)
	assert.True(t, first.Valid)
	assert.Equal(t, punch.DirectionIn, first.Direction)
	assert.Equal(t, time.Date(2026, 2, 25, 9, 0, 0, 0, time.UTC), first.Timestamp)

	// Lower-cased code in the file resolves to the same employee.
	require.Len(t, employees.created, 1)
	created := employees.created[0]
	assert.Equal(t, "E1", created.Code)
	assert.Equal(t, "Asha Rao", created.Name)
	assert.True(t, created.Active)
	require.NotNil(t, created.LocationID)
	assert.Equal(t, "loc-1", *created.LocationID)
	assert.Equal(t, first.EmployeeID, punches.inserted[1].EmployeeID)
}

func TestProcessUpload_HeaderNotFound(t *testing.T) {
	svc, _, _, punches := newService(officeLocation())

	input := "just,some,rows\nwithout,a,header\n"
	_, err := svc.ProcessUpload(context.Background(), "punches.csv", strings.NewReader(input))

	assert.ErrorIs(t, err, ingest.ErrHeaderNotFound)
	assert.Empty(t, punches.inserted)
}

func TestProcessUpload_RejectsUnknownExtension(t *testing.T) {
	svc, _, _, _ := newService(officeLocation())

	_, err := svc.ProcessUpload(context.Background(), "punches.pdf", strings.NewReader("x"))
	assert.ErrorIs(t, err, tabular.ErrUnsupportedFormat)
}

func TestProcessUpload_ExistingEmployeeIsNotOverwritten(t *testing.T) {
	svc, employees, _, _ := newService(officeLocation())
	employees.byCode["E1"] = employee.Employee{ID: "emp-1", Code: "E1", Name: "Original Name", Active: true}

	_, err := svc.ProcessUpload(context.Background(), "punches.csv", strings.NewReader(officeUpload))
	require.NoError(t, err)

	// Name drift in the upload is ignored for known codes.
	assert.Empty(t, employees.created)
	assert.Equal(t, "Original Name", employees.byCode["E1"].Name)
}

func TestProcessUpload_NoAssignedLocationFailsafesToRemote(t *testing.T) {
	// No reference locations at all: employees are created unassigned and
	// every punch classifies REMOTE.
	svc, employees, _, punches := newService()

	result, err := svc.ProcessUpload(context.Background(), "punches.csv", strings.NewReader(officeUpload))
	require.NoError(t, err)

	assert.Equal(t, 2, result.RecordsProcessed)
	require.Len(t, employees.created, 1)
	assert.Nil(t, employees.created[0].LocationID)
	for _, p := range punches.inserted {
		assert.Equal(t, geo.StatusRemote, p.LocationStatus)
		// Coordinates were real, so the punch itself stays valid.
		assert.True(t, p.Valid)
	}
}

func TestProcessUpload_MissingCoordinatesAreInvalid(t *testing.T) {
	svc, _, _, punches := newService(officeLocation())

	input := "Employee Number,Employee Name,Time Stamp,Latitude,Longitude\n" +
		"E9,No Fix,2026-02-25 09:00:00,not-a-number,72.8777\n"
	result, err := svc.ProcessUpload(context.Background(), "punches.csv", strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, 1, result.RecordsProcessed)
	require.Len(t, punches.inserted, 1)
	assert.Equal(t, geo.StatusRemote, punches.inserted[0].LocationStatus)
	assert.False(t, punches.inserted[0].Valid)
}

func TestProcessUpload_InsertFailureAbortsUpload(t *testing.T) {
	svc, _, _, punches := newService(officeLocation())
	punches.insertErr = errors.New("disk full")

	_, err := svc.ProcessUpload(context.Background(), "punches.csv", strings.NewReader(officeUpload))
	assert.Error(t, err)
}
