package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	pkgerrors "github.com/orgball2608/insta-shop-sync/pkg/errors"
)

type errorResponse struct {
	Error string `json:"error"`
}

func statusFor(err error) int {
	switch {
	case pkgerrors.IsInvalidArgument(err):
		return http.StatusBadRequest
	case pkgerrors.IsNotFound(err):
		return http.StatusNotFound
	case pkgerrors.IsAuthExpired(err):
		return http.StatusUnauthorized
	case pkgerrors.Is(err, pkgerrors.ErrUpstream), pkgerrors.Is(err, pkgerrors.ErrNetwork):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) respondError(c *gin.Context, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("Request failed", "path", c.FullPath(), "error", err)
	}
	c.AbortWithStatusJSON(status, errorResponse{Error: pkgerrors.GetMessage(err)})
}
