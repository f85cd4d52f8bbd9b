package req

import (
	"bytes"
	"encoding/json"
	"io"
)

// Decode читает JSON из тела запроса. Пустое тело трактуется как {}
func Decode[T any](body io.Reader) (T, error) {
	var payload T
	raw, err := io.ReadAll(body)
	if err != nil {
		return payload, err
	}
	return DecodeBytes[T](raw)
}

func DecodeBytes[T any](raw []byte) (T, error) {
	var payload T
	if len(bytes.TrimSpace(raw)) == 0 {
		raw = []byte("{}")
	}
	err := json.Unmarshal(raw, &payload)
	return payload, err
}
