// Package v1handler implements the generated v1 API server interfaces.
package v1handler

import (
	"context"
	"errors"
	"net/http"
	"outreach/internal/api/specs/v1specs"
	"outreach/internal/campaign"
	"outreach/internal/inbox"
	"outreach/pkg/logger"
	"outreach/pkg/serrors"

	"github.com/go-faster/jx"
	"github.com/ogen-go/ogen/ogenerrors"
	"go.uber.org/zap"
)

type Deps struct {
	Campaigns campaign.Service
	Inbox     inbox.Service
}

type Handler struct {
	deps Deps
}

// Ensure Handler implements v1specs.Handler.
var _ v1specs.Handler = (*Handler)(nil)

func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

var defaultMessages = map[serrors.Kind]string{ //nolint: gochecknoglobals
	serrors.ErrNotFound:     "resource not found",
	serrors.ErrUnauthorized: "unauthorized",
	serrors.ErrForbidden:    "forbidden",
	serrors.ErrBadRequest:   "bad request",
	serrors.ErrConflict:     "conflict",
	serrors.ErrInternal:     "internal error",
	serrors.ErrTimeout:      "request timed out",
	serrors.ErrUnavailable:  "service unavailable",
	serrors.ErrRateLimited:  "too many requests",
	serrors.ErrUpstream:     "upstream service failed",
}

// semantic gives errors raised by the generated server a kind of their own:
// oversized bodies, undecodable requests and missing credentials.
func semantic(err error) error {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return serrors.Wrap(serrors.ErrBadRequest, err, "request body exceeds %d bytes", tooLarge.Limit)
	}
	if serrors.KindOf(err) != serrors.ErrInternal {
		return err
	}

	var (
		paramsErr  *ogenerrors.DecodeParamError
		requestErr *ogenerrors.DecodeRequestError
	)
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return serrors.Wrap(serrors.ErrTimeout, err, "")
	case errors.Is(err, ogenerrors.ErrSecurityRequirementIsNotSatisfied):
		return serrors.Wrap(serrors.ErrUnauthorized, err, "missing bearer token")
	case errors.As(err, &paramsErr):
		return serrors.Wrap(serrors.ErrBadRequest, err, "invalid %s parameter %q", paramsErr.In, paramsErr.Name)
	case errors.As(err, &requestErr):
		return serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body")
	}

	return err
}

// NewError converts err into the response sent to the client. Only messages
// of semantic errors are exposed; anything else becomes an internal error.
func (h Handler) NewError(ctx context.Context, err error) *v1specs.ErrorStatusCode {
	err = semantic(err)
	kind := serrors.KindOf(err)
	status := serrors.HTTPStatus(kind)

	var msg string
	var se *serrors.Error
	if kind != serrors.ErrInternal && errors.As(err, &se) {
		msg = se.Message()
	}
	if msg == "" {
		msg = defaultMessages[kind]
	}

	if status >= http.StatusInternalServerError {
		logger.Error(ctx, "request failed", zap.Error(err))
	} else {
		logger.Debug(ctx, "request rejected", zap.Error(err))
	}

	return &v1specs.ErrorStatusCode{
		StatusCode: status,
		Response: v1specs.Error{
			Code:    kind.Error(),
			Message: msg,
		},
	}
}

func (h Handler) writeError(ctx context.Context, w http.ResponseWriter, err error) {
	res := h.NewError(ctx, err)

	e := jx.GetEncoder()
	defer jx.PutEncoder(e)
	res.Response.Encode(e)

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(res.StatusCode)
	if _, err := w.Write(e.Bytes()); err != nil {
		logger.Warn(ctx, "could not write error response", zap.Error(err))
	}
}

// HandleError renders errors the generated server does not route through
// NewError in the same shape as every other failed response.
func (h Handler) HandleError(ctx context.Context, w http.ResponseWriter, _ *http.Request, err error) {
	h.writeError(ctx, w, err)
}

// NotFound answers requests that match no v1 route.
func (h Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.writeError(r.Context(), w, serrors.With(serrors.ErrNotFound, "no route for %s %s", r.Method, r.URL.Path))
}

// MethodNotAllowed answers known paths requested with an unsupported method.
func (h Handler) MethodNotAllowed(w http.ResponseWriter, r *http.Request, allowed string) {
	w.Header().Set("Allow", allowed)
	h.writeError(r.Context(), w, serrors.With(serrors.ErrBadRequest, "method %s not allowed, use %s", r.Method, allowed))
}

func badRequest(format string, args ...any) error {
	return serrors.With(serrors.ErrBadRequest, format, args...)
}
