package converter

import (
	"encoding/json"

	dto "rtp_casino/internal/api/dto/game"
	"rtp_casino/internal/model"
)

var emptyObject = json.RawMessage(`{}`)

func ToSettlementRequest(req dto.Request) model.SettlementRequest {
	return model.SettlementRequest{
		UserID:    req.UserID,
		GameName:  req.GameName,
		BetAmount: req.BetAmount,
		GameData:  req.GameData,
	}
}

func ToSettingsResponse(c model.GameConfig) dto.SettingsResponse {
	custom := c.CustomConfig
	if len(custom) == 0 {
		custom = emptyObject
	}
	return dto.SettingsResponse{
		ID:           c.ID,
		GameName:     c.GameName,
		Enabled:      c.Enabled,
		RTPPercent:   c.RTPPercent.InexactFloat64(),
		MinBet:       c.MinBet.InexactFloat64(),
		MaxBet:       c.MaxBet.InexactFloat64(),
		CustomConfig: custom,
		UpdatedAt:    c.UpdatedAt,
	}
}

func ToListSettingsResponse(configs []model.GameConfig) dto.ListSettingsResponse {
	out := make([]dto.SettingsResponse, 0, len(configs))
	for _, c := range configs {
		out = append(out, ToSettingsResponse(c))
	}
	return dto.ListSettingsResponse{Settings: out}
}

func ToPlayResponse(res *model.PlayResult) dto.PlayResponse {
	return dto.PlayResponse{
		Success:    true,
		WinAmount:  res.Outcome.Payout.InexactFloat64(),
		Multiplier: res.Outcome.Multiplier.InexactFloat64(),
		Balance:    res.Balance.InexactFloat64(),
		Result:     res.Outcome.Data,
	}
}

func ToHistoryResponse(records []model.HistoryRecord) dto.HistoryResponse {
	out := make([]dto.HistoryRecordResponse, 0, len(records))
	for _, r := range records {
		data := json.RawMessage(r.ResultData)
		if len(data) == 0 {
			data = json.RawMessage("null")
		}
		out = append(out, dto.HistoryRecordResponse{
			ID:         r.ID,
			UserID:     r.UserID,
			GameName:   r.GameName,
			BetAmount:  r.BetAmount.InexactFloat64(),
			WinAmount:  r.WinAmount.InexactFloat64(),
			Multiplier: r.Multiplier.InexactFloat64(),
			ResultData: data,
			PlayedAt:   r.PlayedAt,
		})
	}
	return dto.HistoryResponse{History: out}
}
