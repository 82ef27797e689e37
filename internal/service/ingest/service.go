package ingest

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/iajwork/smart-attendance-platform/internal/domain/employee"
	"github.com/iajwork/smart-attendance-platform/internal/domain/ingest"
	"github.com/iajwork/smart-attendance-platform/internal/domain/location"
	"github.com/iajwork/smart-attendance-platform/internal/domain/punch"
	"github.com/iajwork/smart-attendance-platform/internal/pkg/geo"
	"github.com/iajwork/smart-attendance-platform/internal/pkg/tabular"
)

// TxRunner executes fn atomically; production wiring is postgresql.NewTxManager.
type TxRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type IngestServiceImpl struct {
	tx TxRunner
	employee.EmployeeRepository
	location.LocationRepository
	punch.PunchRepository
}

func NewIngestService(
	tx TxRunner,
	employeeRepo employee.EmployeeRepository,
	locationRepo location.LocationRepository,
	punchRepo punch.PunchRepository,
) ingest.IngestService {
	return &IngestServiceImpl{
		tx:                 tx,
		EmployeeRepository: employeeRepo,
		LocationRepository: locationRepo,
		PunchRepository:    punchRepo,
	}
}

// ProcessUpload implements ingest.IngestService.
func (s *IngestServiceImpl) ProcessUpload(ctx context.Context, filename string, file io.Reader) (ingest.UploadResponse, error) {
	rows, err := tabular.Decode(filename, file)
	if err != nil {
		return ingest.UploadResponse{}, err
	}

	headerIdx, found := tabular.FindHeaderRow(rows, headerMarker)
	if !found {
		return ingest.UploadResponse{}, ingest.ErrHeaderNotFound
	}

	cols := tabular.MapColumns(rows[headerIdx])
	candidates, dropped := normalizeRows(rows[headerIdx+1:], cols)
	if dropped > 0 {
		slog.Info("dropped unparseable punch rows", "file", filename, "dropped", dropped)
	}

	// Employees and punches commit together; a corrupt file never leaves a
	// half-ingested log.
	inserted := 0
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		directory, err := s.syncDirectory(txCtx, candidates)
		if err != nil {
			return err
		}

		for _, c := range candidates {
			resolved, ok := directory[c.EmployeeCode]
			if !ok {
				continue
			}

			officeLat, officeLon := 0.0, 0.0
			if resolved.OfficeLat != nil && resolved.OfficeLon != nil {
				officeLat, officeLon = *resolved.OfficeLat, *resolved.OfficeLon
			}
			status := geo.Classify(c.Latitude, c.Longitude, officeLat, officeLon, resolved.RadiusMeters)

			_, err := s.PunchRepository.Insert(txCtx, punch.Punch{
				ID:             uuid.NewString(),
				EmployeeID:     resolved.EmployeeID,
				Timestamp:      c.Timestamp,
				Latitude:       c.Latitude,
				Longitude:      c.Longitude,
				Direction:      c.Direction,
				DeviceID:       c.DeviceID,
				Address:        c.Address,
				LocationStatus: status,
				Valid:          geo.CoordinatesPresent(c.Latitude, c.Longitude),
			})
			if err != nil {
				return err
			}
			inserted++
		}
		return nil
	})
	if err != nil {
		return ingest.UploadResponse{}, fmt.Errorf("failed to ingest upload: %w", err)
	}

	return ingest.UploadResponse{Status: "success", RecordsProcessed: inserted}, nil
}

// syncDirectory reconciles the batch's employee codes against the directory
// and returns the explicit lookup table used by the insertion stage. Codes
// already present are left untouched; name or location drift in later
// uploads is ignored.
func (s *IngestServiceImpl) syncDirectory(ctx context.Context, candidates []ingest.PunchCandidate) (map[string]ingest.ResolvedEmployee, error) {
	defaultLoc, err := s.LocationRepository.GetDefault(ctx)
	if err != nil {
		return nil, err
	}

	directory := make(map[string]ingest.ResolvedEmployee)
	for _, c := range candidates {
		if _, done := directory[c.EmployeeCode]; done {
			continue
		}

		existing, err := s.EmployeeRepository.GetByCode(ctx, c.EmployeeCode)
		if err != nil {
			return nil, err
		}

		if existing == nil {
			newEmp := employee.Employee{
				ID:     uuid.NewString(),
				Code:   c.EmployeeCode,
				Name:   c.EmployeeName,
				Active: true,
			}
			if defaultLoc != nil {
				newEmp.LocationID = &defaultLoc.ID
			}
			created, err := s.EmployeeRepository.Create(ctx, newEmp)
			if err != nil {
				return nil, err
			}
			existing = &created
		}

		directory[c.EmployeeCode] = s.resolveOffice(ctx, *existing)
	}

	return directory, nil
}

// resolveOffice attaches the employee's effective geofence. Employees with
// no assigned location resolve to nil office coordinates and the default
// radius; the classifier then fail-safes their punches to REMOTE.
func (s *IngestServiceImpl) resolveOffice(ctx context.Context, emp employee.Employee) ingest.ResolvedEmployee {
	resolved := ingest.ResolvedEmployee{
		EmployeeID:   emp.ID,
		RadiusMeters: geo.DefaultRadiusMeters,
	}

	if emp.LocationID == nil {
		return resolved
	}

	loc, err := s.LocationRepository.GetByID(ctx, *emp.LocationID)
	if err != nil {
		slog.Warn("assigned location could not be loaded, treating employee as unassigned",
			"employee_code", emp.Code, "location_id", *emp.LocationID, "error", err)
		return resolved
	}

	resolved.OfficeLat = &loc.Latitude
	resolved.OfficeLon = &loc.Longitude
	resolved.RadiusMeters = loc.RadiusMeters
	return resolved
}
