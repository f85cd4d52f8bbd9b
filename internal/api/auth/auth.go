package auth

import (
	"net/http"

	"rtp_casino/internal/api"
	dto "rtp_casino/internal/api/dto/auth"
	"rtp_casino/internal/apperr"
	"rtp_casino/internal/converter"
	"rtp_casino/internal/service"
	"rtp_casino/pkg/req"
	"rtp_casino/pkg/resp"
)

type HandlerDeps struct {
	Serv service.AuthService
}

type Handler struct {
	serv service.AuthService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// Handle выбирает операцию по полю action
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	body, err := req.Decode[dto.Request](r.Body)
	if err != nil {
		api.BadBody(w, r, err)
		return
	}

	switch body.Action {
	case "register":
		h.register(w, r, &body)
	case "login":
		h.login(w, r, &body)
	case "get_user":
		h.getUser(w, r, &body)
	case "update_balance":
		h.updateBalance(w, r, &body)
	default:
		api.WriteError(w, r, apperr.ErrInvalidAction)
	}
}

// register создаёт пользователя со стартовым балансом и возвращает токен
func (h *Handler) register(w http.ResponseWriter, r *http.Request, body *dto.Request) {
	data, err := h.serv.Register(r.Context(), converter.RegisterRequestToUserModel(body))
	if err != nil {
		api.WriteError(w, r, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToAuthResponse(data))
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request, body *dto.Request) {
	data, err := h.serv.Login(r.Context(), body.Username, body.Password)
	if err != nil {
		api.WriteError(w, r, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToAuthResponse(data))
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request, body *dto.Request) {
	user, err := h.serv.GetUser(r.Context(), body.UserID)
	if err != nil {
		api.WriteError(w, r, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, dto.GetUserResponse{User: converter.ToUserResponse(user)})
}

// updateBalance - знаковое изменение баланса, amount обязателен
func (h *Handler) updateBalance(w http.ResponseWriter, r *http.Request, body *dto.Request) {
	if body.Amount == nil {
		api.WriteError(w, r, apperr.Validation("User ID and amount required"))
		return
	}

	balance, err := h.serv.UpdateBalance(r.Context(), body.UserID, *body.Amount)
	if err != nil {
		api.WriteError(w, r, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, dto.BalanceResponse{Balance: balance.InexactFloat64()})
}
