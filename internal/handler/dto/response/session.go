package response

import (
	"time"

	"rebate-ledger/internal/usecase/commands"

	"github.com/google/uuid"
)

type SessionResponse struct {
	OwnerID   uuid.UUID `json:"ownerId"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

func FromSessionResult(r *commands.SessionResult) *SessionResponse {
	return &SessionResponse{
		OwnerID:   r.OwnerID,
		Token:     r.Token,
		ExpiresAt: r.ExpiresAt,
	}
}
