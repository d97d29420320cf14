package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"
)

const webAppDataKey = "WebAppData"

var (
	ErrInvalidInitData = errors.New("invalid telegram init data")
	ErrInitDataExpired = errors.New("telegram init data has expired")
)

type TelegramUser struct {
	ID           int64  `json:"id"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Username     string `json:"username"`
	LanguageCode string `json:"language_code"`
}

// InitDataVerifier checks the init data a Telegram mini app sends with every
// request. The data is trusted only when its hash matches the bot token.
type InitDataVerifier struct {
	secret []byte
	maxAge time.Duration
	now    func() time.Time
}

// NewInitDataVerifier returns a verifier for botToken. A positive maxAge also
// rejects init data whose auth_date is older than maxAge.
func NewInitDataVerifier(botToken string, maxAge time.Duration) *InitDataVerifier {
	v := &InitDataVerifier{maxAge: maxAge, now: time.Now}
	if botToken != "" {
		v.secret = sign([]byte(webAppDataKey), []byte(botToken))
	}
	return v
}

func (v *InitDataVerifier) Verify(initData string) (*TelegramUser, error) {
	if len(v.secret) == 0 || initData == "" {
		return nil, ErrInvalidInitData
	}
	values, err := url.ParseQuery(initData)
	if err != nil {
		return nil, ErrInvalidInitData
	}
	hash := values.Get("hash")
	if hash == "" {
		return nil, ErrInvalidInitData
	}

	expected := hex.EncodeToString(sign(v.secret, []byte(dataCheckString(values))))
	if !hmac.Equal([]byte(expected), []byte(strings.ToLower(hash))) {
		return nil, ErrInvalidInitData
	}

	if v.maxAge > 0 {
		authDate, err := strconv.ParseInt(values.Get("auth_date"), 10, 64)
		if err != nil {
			return nil, ErrInvalidInitData
		}
		if v.now().Sub(time.Unix(authDate, 0)) > v.maxAge {
			return nil, ErrInitDataExpired
		}
	}

	var user TelegramUser
	if err := json.Unmarshal([]byte(values.Get("user")), &user); err != nil || user.ID == 0 {
		return nil, ErrInvalidInitData
	}
	return &user, nil
}

// dataCheckString joins every field except hash as key=value lines sorted by key.
func dataCheckString(values url.Values) string {
	keys := make([]string, 0, len(values))
	for k := range values {
		if k == "hash" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, k+"="+values.Get(k))
	}
	return strings.Join(lines, "\n")
}

func sign(key, data []byte) []byte {
	mac := hmac.New(sha256.New, key)
	mac.Write(data)
	return mac.Sum(nil)
}
