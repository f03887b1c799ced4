package draw

import (
	"context"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"slot_machine/internal/config"
	"slot_machine/internal/converter"
	"slot_machine/internal/service"
	"slot_machine/internal/worker"
	"slot_machine/pkg/resp"
)

type HandlerDeps struct {
	Serv     service.DrawService
	Messages config.Messages
	Log      *zap.Logger
}

type Handler struct {
	serv     service.DrawService
	messages config.Messages
	log      *zap.Logger
}

func NewHandler(deps HandlerDeps) *Handler {
	log := deps.Log
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{
		serv:     deps.Serv,
		messages: deps.Messages,
		log:      log,
	}
}

// Screen отдает начальное состояние экрана
func (h *Handler) Screen(w http.ResponseWriter, r *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToScreenResponse(converter.ToIdleScreen(h.messages)))
}

// Spin делает один спин и отдает символы, вердикт и сообщение
func (h *Handler) Spin(w http.ResponseWriter, r *http.Request) {
	result, err := h.serv.Spin(r.Context())
	if err != nil {
		status := spinErrorStatus(err)
		if status == http.StatusInternalServerError {
			h.log.Error("spin failed", zap.Error(err))
		} else {
			h.log.Warn("spin not served", zap.Error(err))
		}
		resp.WriteJSONError(w, status, http.StatusText(status))
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSpinResponse(*result, h.messages))
}

func (h *Handler) Symbols(w http.ResponseWriter, r *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSymbolsResponse(h.serv.Symbols()))
}

func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStatsResponse(h.serv.Stats()))
}

func spinErrorStatus(err error) int {
	switch {
	case errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, worker.ErrClosed),
		errors.Is(err, worker.ErrOverloaded):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
