package request

import (
	"rebate-ledger/internal/usecase/commands"

	"github.com/google/uuid"
)

type IssueSessionRequest struct {
	// Optional; resumes an existing owner namespace
	OwnerID *uuid.UUID `json:"ownerId,omitempty"`
}

func (r IssueSessionRequest) ToCommand() commands.IssueSessionRequest {
	return commands.IssueSessionRequest{OwnerID: r.OwnerID}
}
