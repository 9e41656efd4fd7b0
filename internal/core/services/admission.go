package services

import (
	"go.uber.org/zap"

	"github.com/srgjo27/hotel_reservation/internal/core/domain"
)

type admissionState string

const (
	stateRequested  admissionState = "requested"
	stateValidating admissionState = "validating"
	stateAdmitted   admissionState = "admitted"
	stateRejected   admissionState = "rejected"
)

// admission tracks one booking request through Requested -> Validating -> Admitted | Rejected.
// Admitted and Rejected are terminal; a rejected request is never retried here.
type admission struct {
	state  admissionState
	logger *zap.Logger
}

func newAdmission(logger *zap.Logger, req CreateReservationRequest) *admission {
	return &admission{
		state: stateRequested,
		logger: logger.With(
			zap.String("hotel_id", req.HotelID.String()),
			zap.String("room_type_id", req.RoomTypeID.String()),
			zap.String("user_id", req.UserID.String()),
			zap.Time("check_in", req.CheckIn),
			zap.Time("check_out", req.CheckOut),
			zap.Int("room_count", req.RoomCount),
		),
	}
}

func (a *admission) to(next admissionState) {
	a.logger.Debug("admission state change",
		zap.String("from", string(a.state)),
		zap.String("to", string(next)))
	a.state = next
}

func (a *admission) reject(err error) error {
	a.to(stateRejected)

	if domain.KindOf(err) == domain.KindStorageUnavailable {
		a.logger.Error("admission failed", zap.Error(err))
	} else {
		a.logger.Info("admission rejected",
			zap.String("reason", string(domain.KindOf(err))),
			zap.Error(err))
	}

	return err
}

func (a *admission) admit(r *domain.Reservation) {
	a.to(stateAdmitted)
	a.logger.Info("reservation confirmed",
		zap.String("reservation_id", r.ID.String()),
		zap.Int64("total_price", r.TotalPrice))
}
