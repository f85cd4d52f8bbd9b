package game

import (
	"net/http"

	"rtp_casino/internal/api"
	dto "rtp_casino/internal/api/dto/game"
	"rtp_casino/internal/apperr"
	"rtp_casino/internal/converter"
	"rtp_casino/internal/service"
	"rtp_casino/pkg/req"
	"rtp_casino/pkg/resp"
)

type HandlerDeps struct {
	Serv service.GameService
}

type Handler struct {
	serv service.GameService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// ListSettings - GET /games, настройки всех игр
func (h *Handler) ListSettings(w http.ResponseWriter, r *http.Request) {
	configs, err := h.serv.ListSettings(r.Context())
	if err != nil {
		api.WriteError(w, r, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToListSettingsResponse(configs))
}

// Handle - POST /games, операция выбирается полем action
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	body, err := req.Decode[dto.Request](r.Body)
	if err != nil {
		api.BadBody(w, r, err)
		return
	}

	switch body.Action {
	case "play":
		h.play(w, r, body)
	case "history":
		h.history(w, r, body)
	case "update_settings":
		h.updateSettings(w, r, body)
	default:
		api.WriteError(w, r, apperr.ErrInvalidAction)
	}
}

func (h *Handler) play(w http.ResponseWriter, r *http.Request, body dto.Request) {
	result, err := h.serv.Play(r.Context(), converter.ToSettlementRequest(body))
	if err != nil {
		api.WriteError(w, r, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToPlayResponse(result))
}

func (h *Handler) history(w http.ResponseWriter, r *http.Request, body dto.Request) {
	records, err := h.serv.History(r.Context(), body.UserID, body.Limit)
	if err != nil {
		api.WriteError(w, r, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToHistoryResponse(records))
}

// updateSettings - административная правка настроек.
// TODO: проверять is_admin, когда появится проверка токена
func (h *Handler) updateSettings(w http.ResponseWriter, r *http.Request, body dto.Request) {
	cfg, err := h.serv.UpdateSettings(r.Context(), body.GameName, body.Updates)
	if err != nil {
		api.WriteError(w, r, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, dto.UpdateSettingsResponse{Settings: converter.ToSettingsResponse(*cfg)})
}
