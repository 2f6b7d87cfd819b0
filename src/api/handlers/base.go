package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"bankapi/src/api/controllers"
	"bankapi/src/utils"
)

type Handler struct {
	Controller  controllers.IController
	ServiceName string
}

func NewHandler(controller controllers.IController, serviceName string) *Handler {
	return &Handler{Controller: controller, ServiceName: serviceName}
}

func (h *Handler) respond(w http.ResponseWriter, _ *http.Request, data interface{}, status int) {
	res, err := json.Marshal(data)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_, _ = w.Write(res)
}

// HandleErrors normalizes err into an HTTPError and lets utils.WriteError
// render the {"detail": ...} body.
func (h *Handler) HandleErrors(w http.ResponseWriter, err error) {
	var httpErr *utils.HTTPError
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		httpErr = &utils.HTTPError{Code: http.StatusGatewayTimeout, Detail: "Request timed out"}
	case errors.As(err, &httpErr):
	case err != nil:
		httpErr = &utils.HTTPError{Code: http.StatusInternalServerError, Detail: err.Error()}
	default:
		httpErr = &utils.HTTPError{Code: http.StatusInternalServerError, Detail: "Unhandled error"}
	}
	utils.WriteError(w, httpErr)
}
