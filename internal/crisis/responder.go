package crisis

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"MindAlchemy/internal/models"
	"MindAlchemy/pkg/logger"
	"MindAlchemy/pkg/metrics"
	"MindAlchemy/pkg/notification"
)

// Evaluation is the outcome of screening one user message.
type Evaluation struct {
	IsCrisis        bool
	RiskLevel       RiskLevel
	Response        string
	AlertID         uint
	EmergencyNumber string
}

// Responder runs the full crisis pipeline: detect, record a durable
// alert, compose the reply, and notify authorities best-effort.
type Responder struct {
	notifier *notification.EmergencyNotifier
	timeout  time.Duration
}

func NewResponder(notifier *notification.EmergencyNotifier, timeout time.Duration) *Responder {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Responder{notifier: notifier, timeout: timeout}
}

// EvaluateMessage screens a message and, when it signals a crisis,
// persists a pending alert before anything else, then attempts to
// notify authorities. A notification failure never fails the call:
// the alert simply stays pending and the composed reply is returned.
func (r *Responder) EvaluateMessage(ctx context.Context, db *gorm.DB, user *models.User, message string, lat, lng *float64) (*Evaluation, error) {
	isCrisis, level := Detect(message)
	if !isCrisis {
		return &Evaluation{RiskLevel: RiskNone}, nil
	}

	entry := Resolve(user.Country)
	alert := &models.CrisisAlert{
		UserID:          user.ID,
		RiskLevel:       string(level),
		UserMessage:     message,
		LocationLat:     lat,
		LocationLng:     lng,
		Country:         user.Country,
		EmergencyNumber: entry.Emergency,
	}
	if err := models.CreateCrisisAlert(db, alert); err != nil {
		return nil, err
	}
	metrics.CountCrisisAlert(string(level))

	eval := &Evaluation{
		IsCrisis:        true,
		RiskLevel:       level,
		Response:        ComposeResponse(user.Country),
		AlertID:         alert.ID,
		EmergencyNumber: entry.Emergency,
	}

	notifyCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	result, err := r.notifier.NotifyAuthorities(notifyCtx, notification.DispatchRequest{
		UserID:          user.ID,
		UserEmail:       user.Email,
		UserName:        user.FullName,
		Country:         user.Country,
		EmergencyNumber: entry.Emergency,
		RiskLevel:       string(level),
		UserMessage:     message,
		Latitude:        lat,
		Longitude:       lng,
	})
	if err != nil {
		logger.Error("crisis notification failed, alert stays pending",
			zap.Uint("alertId", alert.ID),
			zap.Error(err))
		return eval, nil
	}

	services, _ := json.Marshal(result.NotifiedServices)
	if err := models.MarkAlertNotified(db, alert.ID, string(services)); err != nil {
		logger.Error("failed to mark alert notified",
			zap.Uint("alertId", alert.ID),
			zap.Error(err))
	}
	return eval, nil
}
