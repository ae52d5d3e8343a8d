//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	reqdto "rebate-ledger/internal/handler/dto/request"
	resdto "rebate-ledger/internal/handler/dto/response"
	"rebate-ledger/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// StartSession opens a fresh owner session through the API.
func StartSession(t *testing.T, router *gin.Engine) resdto.SessionResponse {
	t.Helper()
	return issue(t, router, reqdto.IssueSessionRequest{})
}

// ResumeSession issues a new token for an existing owner.
func ResumeSession(t *testing.T, router *gin.Engine, ownerID uuid.UUID) resdto.SessionResponse {
	t.Helper()
	return issue(t, router, reqdto.IssueSessionRequest{OwnerID: &ownerID})
}

func issue(t *testing.T, router *gin.Engine, body reqdto.IssueSessionRequest) resdto.SessionResponse {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/sessions", body, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var session resdto.SessionResponse
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &session)
	require.NotEmpty(t, session.Token, "session token is empty")
	require.NotEqual(t, uuid.Nil, session.OwnerID)
	return session
}
