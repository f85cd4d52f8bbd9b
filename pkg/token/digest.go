package token

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"time"
)

// DigestIssuer - sha256("<user_id>:<unix seconds>") в hex.
// Это непрозрачный маркер: подписи нет, сервер его не проверяет
type DigestIssuer struct {
	now func() time.Time
}

func NewDigestIssuer(now func() time.Time) *DigestIssuer {
	if now == nil {
		now = time.Now
	}
	return &DigestIssuer{now: now}
}

func (d *DigestIssuer) Issue(userID int) (string, error) {
	data := strconv.Itoa(userID) + ":" + strconv.FormatInt(d.now().Unix(), 10)
	h := sha256.Sum256([]byte(data))
	return hex.EncodeToString(h[:]), nil
}
