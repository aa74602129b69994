package notification

import (
	"context"

	"MindAlchemy/pkg/logger"

	"go.uber.org/zap"
)

// DispatchRequest describes a crisis event to hand to emergency services.
type DispatchRequest struct {
	UserID          uint
	UserEmail       string
	UserName        string
	Country         string
	EmergencyNumber string
	RiskLevel       string
	UserMessage     string
	Latitude        *float64
	Longitude       *float64
}

// DispatchResult reports what the dispatch attempt actually reached.
type DispatchResult struct {
	Status           string   `json:"status"`
	NotifiedServices []string `json:"notified_services"`
	Message          string   `json:"message"`
}

// AuthorityClient is the injectable transport to a real emergency-services
// integration (country-specific APIs, SMS gateways, webhooks).
type AuthorityClient interface {
	Dispatch(ctx context.Context, req DispatchRequest) (DispatchResult, error)
}

// EmergencyNotifier wraps an optional AuthorityClient. With no client wired
// in it degrades to logging the alert, which is the current production
// behavior: the alert trail lives in the database, nothing is dispatched.
type EmergencyNotifier struct {
	cli AuthorityClient
}

func NewEmergencyNotifier(cli AuthorityClient) *EmergencyNotifier {
	return &EmergencyNotifier{cli: cli}
}

// NotifyAuthorities attempts a dispatch. Callers must treat this as
// best-effort: bound it with a context timeout and never fail the enclosing
// request on error.
func (n *EmergencyNotifier) NotifyAuthorities(ctx context.Context, req DispatchRequest) (DispatchResult, error) {
	if n.cli != nil {
		return n.cli.Dispatch(ctx, req)
	}

	preview := req.UserMessage
	if len(preview) > 100 {
		preview = preview[:100]
	}
	fields := []zap.Field{
		zap.Uint("user_id", req.UserID),
		zap.String("country", req.Country),
		zap.String("risk_level", req.RiskLevel),
		zap.String("emergency_number", req.EmergencyNumber),
		zap.String("message", preview),
	}
	if req.Latitude != nil && req.Longitude != nil {
		fields = append(fields, zap.Float64("lat", *req.Latitude), zap.Float64("lng", *req.Longitude))
	}
	logger.Error("CRISIS ALERT", fields...)

	return DispatchResult{
		Status:           "logged",
		NotifiedServices: []string{"internal_logging"},
		Message:          "Crisis alert logged. In production, this would automatically notify authorities.",
	}, nil
}
