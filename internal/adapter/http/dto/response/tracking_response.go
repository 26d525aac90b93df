package response

import (
	"time"

	"sama-store/internal/domain/entities"
	"sama-store/internal/usecase"
)

// TrackingResponse is the public projection of an order. It deliberately
// carries no customer, item, or payment fields since the tracking endpoint
// is unauthenticated.
type TrackingResponse struct {
	ID         string                  `json:"id"`
	TrackingID string                  `json:"tracking_id"`
	Status     string                  `json:"status"`
	CreatedAt  time.Time               `json:"created_at"`
	UpdatedAt  time.Time               `json:"updated_at"`
	History    []StatusHistoryResponse `json:"history"`
}

type StatusHistoryResponse struct {
	Status    string    `json:"status"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

func FromTrackingProjection(p usecase.OrderTrackingProjection, history []entities.OrderStatusHistory) TrackingResponse {
	timeline := make([]StatusHistoryResponse, 0, len(history))
	for _, h := range history {
		timeline = append(timeline, StatusHistoryResponse{
			Status:    string(h.Status),
			Message:   h.Message,
			CreatedAt: h.CreatedAt,
		})
	}
	return TrackingResponse{
		ID:         p.ID,
		TrackingID: p.TrackingID,
		Status:     string(p.Status),
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
		History:    timeline,
	}
}
