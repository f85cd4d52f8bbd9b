package req

import (
	"strings"
	"testing"
)

type actionBody struct {
	Action string `json:"action"`
	UserID int    `json:"user_id"`
}

func TestDecode(t *testing.T) {
	got, err := Decode[actionBody](strings.NewReader(`{"action":"get_user","user_id":5}`))
	if err != nil {
		t.Fatal(err)
	}
	if got.Action != "get_user" || got.UserID != 5 {
		t.Errorf("got %+v", got)
	}
}

func TestDecodeEmptyBody(t *testing.T) {
	got, err := Decode[actionBody](strings.NewReader("  "))
	if err != nil {
		t.Fatal(err)
	}
	if got.Action != "" {
		t.Errorf("got %+v", got)
	}
}

func TestDecodeMalformed(t *testing.T) {
	if _, err := Decode[actionBody](strings.NewReader(`{"user_id":"abc"}`)); err == nil {
		t.Error("expected error")
	}
}
