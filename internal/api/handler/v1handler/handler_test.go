package v1handler_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"outreach/internal/api/handler/v1handler"
	"outreach/internal/api/specs/v1specs"
	"testing"

	"outreach/pkg/logger"
	"outreach/pkg/serrors"

	"github.com/ogen-go/ogen/ogenerrors"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	// Initialize logger to avoid nil pointer deref during tests
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func TestNewError_InternalOnPlainError(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})
	ctx := context.Background()

	res := h.NewError(ctx, errors.New("boom"))
	require.NotNil(t, res)
	require.Equal(t, 500, res.StatusCode)
	require.Equal(t, serrors.ErrInternal.Error(), res.Response.Code)
	require.Equal(t, "internal error", res.Response.Message)
}

func TestNewError_KindSentinelDirect_NotFound(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})
	ctx := context.Background()

	// Pass the Kind sentinel directly
	res := h.NewError(ctx, serrors.ErrNotFound)
	require.Equal(t, 404, res.StatusCode)
	require.Equal(t, serrors.ErrNotFound.Error(), res.Response.Code)
	require.Equal(t, "resource not found", res.Response.Message)
}

func TestNewError_SemanticWithMessage_BadRequest(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})
	ctx := context.Background()

	err := serrors.With(serrors.ErrBadRequest, "invalid payload: missing url")
	res := h.NewError(ctx, err)
	require.Equal(t, 400, res.StatusCode)
	require.Equal(t, serrors.ErrBadRequest.Error(), res.Response.Code)
	require.Equal(t, "invalid payload: missing url", res.Response.Message)
}

func TestNewError_SemanticWrap_Unauthorized(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})
	ctx := context.Background()

	cause := errors.New("bad token")
	err := serrors.Wrap(serrors.ErrUnauthorized, cause, "unauthorized")
	res := h.NewError(ctx, err)
	require.Equal(t, 401, res.StatusCode)
	require.Equal(t, serrors.ErrUnauthorized.Error(), res.Response.Code)
	// Should include provided message, not the cause
	require.Equal(t, "unauthorized", res.Response.Message)
}

func TestNewError_InternalKind_GeneratesInternal(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})
	ctx := context.Background()

	res := h.NewError(ctx, serrors.KindOnly(serrors.ErrInternal))
	require.Equal(t, 500, res.StatusCode)
	require.Equal(t, serrors.ErrInternal.Error(), res.Response.Code)
	require.Equal(t, "internal error", res.Response.Message)
}

func TestNewError_DeadlineExceeded_Timeout(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})

	res := h.NewError(context.Background(), fmt.Errorf("could not list campaigns: %w", context.DeadlineExceeded))
	require.Equal(t, 504, res.StatusCode)
	require.Equal(t, serrors.ErrTimeout.Error(), res.Response.Code)
	require.Equal(t, "request timed out", res.Response.Message)
}

func TestNewError_WrappedSemanticKeepsMessage(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})

	err := fmt.Errorf("could not launch: %w", serrors.With(serrors.ErrBadRequest, "campaign has no contacts to launch"))
	res := h.NewError(context.Background(), err)
	require.Equal(t, 400, res.StatusCode)
	require.Equal(t, "campaign has no contacts to launch", res.Response.Message)
}

func TestNewError_MissingBearerToken(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})

	err := &ogenerrors.SecurityError{
		Security: "BearerAuth",
		Err:      ogenerrors.ErrSecurityRequirementIsNotSatisfied,
	}
	res := h.NewError(context.Background(), err)
	require.Equal(t, 401, res.StatusCode)
	require.Equal(t, v1specs.Error{Code: "UNAUTHORIZED", Message: "missing bearer token"}, res.Response)
}

func TestNewError_RejectedBearerToken(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})

	err := &ogenerrors.SecurityError{
		Security: "BearerAuth",
		Err:      serrors.Wrap(serrors.ErrUnauthorized, errors.New("expired"), "invalid token"),
	}
	res := h.NewError(context.Background(), err)
	require.Equal(t, 401, res.StatusCode)
	require.Equal(t, "invalid token", res.Response.Message)
}

func TestNewError_DecodeErrors(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})
	ctx := context.Background()

	res := h.NewError(ctx, &ogenerrors.DecodeParamError{
		Name: "campaignID",
		In:   "path",
		Err:  errors.New("invalid uuid"),
	})
	require.Equal(t, 400, res.StatusCode)
	require.Equal(t, `invalid path parameter "campaignID"`, res.Response.Message)

	res = h.NewError(ctx, &ogenerrors.DecodeRequestError{Err: errors.New("unexpected EOF")})
	require.Equal(t, 400, res.StatusCode)
	require.Equal(t, "invalid request body", res.Response.Message)
}

func TestNewError_BodyTooLarge(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})

	res := h.NewError(context.Background(), &ogenerrors.DecodeRequestError{Err: &http.MaxBytesError{Limit: 256}})
	require.Equal(t, 400, res.StatusCode)
	require.Equal(t, "request body exceeds 256 bytes", res.Response.Message)
}

func TestHandleError_WritesErrorBody(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})
	rec := httptest.NewRecorder()

	h.HandleError(context.Background(), rec, httptest.NewRequest(http.MethodPost, "/v1/campaigns", nil),
		&ogenerrors.DecodeRequestError{Err: errors.New("bad json")})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	require.JSONEq(t, `{"code":"BAD_REQUEST","message":"invalid request body"}`, rec.Body.String())
}

func TestNotFoundAndMethodNotAllowed(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})

	rec := httptest.NewRecorder()
	h.NotFound(rec, httptest.NewRequest(http.MethodGet, "/v1/nope", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.JSONEq(t, `{"code":"NOT_FOUND","message":"no route for GET /v1/nope"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	h.MethodNotAllowed(rec, httptest.NewRequest(http.MethodPut, "/v1/campaigns", nil), "GET,POST")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "GET,POST", rec.Header().Get("Allow"))
	require.JSONEq(t, `{"code":"BAD_REQUEST","message":"method PUT not allowed, use GET,POST"}`, rec.Body.String())
}
