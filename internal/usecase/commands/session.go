package commands

import (
	"context"
	"time"

	"rebate-ledger/internal/pkg/errs"
	"rebate-ledger/internal/pkg/jwt"

	"github.com/google/uuid"
)

var ErrTokenGeneration = errs.New("token generation failed")

type IssueSessionRequest struct {
	// Nil starts a fresh owner
	OwnerID *uuid.UUID
}

type SessionResult struct {
	OwnerID   uuid.UUID
	Token     string
	ExpiresAt time.Time
}

type SessionCommands interface {
	IssueSession(ctx context.Context, req IssueSessionRequest) (*SessionResult, error)
}

type sessionCommandsImpl struct {
	jwtService *jwt.Service
}

func NewSessionCommands(jwtService *jwt.Service) SessionCommands {
	return &sessionCommandsImpl{jwtService: jwtService}
}

// IssueSession signs a token for an owner id. The owner id plays the role of
// a device-local storage namespace, so presenting it resumes that namespace.
func (s *sessionCommandsImpl) IssueSession(_ context.Context, req IssueSessionRequest) (*SessionResult, error) {
	owner := uuid.New()
	if req.OwnerID != nil && *req.OwnerID != uuid.Nil {
		owner = *req.OwnerID
	}

	token, expiresAt, err := s.jwtService.GenerateToken(owner)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	return &SessionResult{OwnerID: owner, Token: token, ExpiresAt: expiresAt}, nil
}
