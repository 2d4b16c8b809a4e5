package email

import (
	"context"
	"log/slog"

	"airportops/internal/domain"
)

// Sender delivers travel suggestion emails. The demo sender only logs;
// swapping in SMTP is a drop-in replacement.
type Sender struct{}

func NewSender() *Sender {
	return &Sender{}
}

func (s *Sender) SendRecommendation(ctx context.Context, to string, rec domain.Recommendation) error {
	slog.Info("sending travel suggestion email",
		"to", to,
		"flight_id", rec.FlightID,
		"type", rec.RecommendationType,
		"score", rec.Score,
		"reason", rec.Reason)
	return nil
}
