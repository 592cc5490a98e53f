package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/bikeworks/assembly-tracker/internal/core/domain"
	"github.com/bikeworks/assembly-tracker/internal/core/ports"
	"github.com/bikeworks/assembly-tracker/internal/pkg/metrics"
)

type SessionService struct {
	repo ports.SessionRepository
	log  zerolog.Logger
}

func NewSessionService(repo ports.SessionRepository, log zerolog.Logger) *SessionService {
	return &SessionService{repo: repo, log: log}
}

// Logout closes the employee's most recent open assembly record. The logged
// duration is only computed for the employee role.
func (s *SessionService) Logout(ctx context.Context, employeeID int64) error {
	record, err := s.repo.FindOpenSession(ctx, employeeID)
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			metrics.LogoutsTotal.WithLabelValues("not_found").Inc()
			return err
		}
		metrics.LogoutsTotal.WithLabelValues("error").Inc()
		s.log.Error().Err(err).Int64("employee_id", employeeID).Msg("failed to select active login session")
		return domain.NewPersistenceError("Failed to logout.", err)
	}
	if !record.IsOpen() {
		metrics.LogoutsTotal.WithLabelValues("not_found").Inc()
		return domain.ErrSessionNotFound
	}

	seconds, err := s.repo.CloseSession(ctx, record.ID)
	if err != nil {
		// Closed concurrently between the select and the update.
		if errors.Is(err, domain.ErrSessionNotFound) {
			metrics.LogoutsTotal.WithLabelValues("not_found").Inc()
			return err
		}
		metrics.LogoutsTotal.WithLabelValues("error").Inc()
		s.log.Error().Err(err).Int64("record_id", record.ID).Msg("failed to close login session")
		return domain.NewPersistenceError("Failed to logout.", err)
	}

	if seconds != nil && record.AccruesDuration() {
		metrics.SessionDuration.Observe(float64(*seconds))
	}
	metrics.LogoutsTotal.WithLabelValues("success").Inc()

	s.log.Info().
		Int64("employee_id", employeeID).
		Int64("record_id", record.ID).
		Msg("employee logged out")
	return nil
}

// ReassignBike moves the employee's active records to another bike. Matching
// zero rows is not an error.
func (s *SessionService) ReassignBike(ctx context.Context, employeeID int64, bikeID string) error {
	n, err := s.repo.ReassignBike(ctx, employeeID, bikeID)
	if err != nil {
		metrics.BikeReassignmentsTotal.WithLabelValues("error").Inc()
		s.log.Error().Err(err).Int64("employee_id", employeeID).Str("bike_id", bikeID).Msg("failed to update bike id")
		return domain.NewPersistenceError("Failed to update bike ID.", err)
	}

	if n == 0 {
		metrics.BikeReassignmentsTotal.WithLabelValues("no_active_session").Inc()
		s.log.Debug().Int64("employee_id", employeeID).Msg("bike reassignment matched no active session")
		return nil
	}

	metrics.BikeReassignmentsTotal.WithLabelValues("updated").Inc()
	s.log.Info().Int64("employee_id", employeeID).Str("bike_id", bikeID).Int64("rows", n).Msg("bike reassigned")
	return nil
}
