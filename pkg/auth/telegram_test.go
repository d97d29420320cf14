package auth

import (
	"encoding/hex"
	"net/url"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testBotToken = "123456:TEST-TOKEN"

// signInitData builds init data the way Telegram does for the given bot token.
func signInitData(botToken string, fields map[string]string) string {
	values := url.Values{}
	for k, v := range fields {
		values.Set(k, v)
	}
	secret := sign([]byte(webAppDataKey), []byte(botToken))
	values.Set("hash", hex.EncodeToString(sign(secret, []byte(dataCheckString(values)))))
	return values.Encode()
}

func TestInitDataVerifier_Verify(t *testing.T) {
	now := time.Unix(1700000000, 0)
	fresh := strconv.FormatInt(now.Add(-time.Minute).Unix(), 10)
	stale := strconv.FormatInt(now.Add(-48*time.Hour).Unix(), 10)
	user := `{"id":42,"first_name":"Ann","username":"ann"}`

	tests := []struct {
		name        string
		initData    string
		maxAge      time.Duration
		expectedErr error
		expectedID  int64
	}{
		{
			name:       "Valid init data",
			initData:   signInitData(testBotToken, map[string]string{"auth_date": fresh, "query_id": "AAE", "user": user}),
			maxAge:     time.Hour,
			expectedID: 42,
		},
		{
			name:       "Stale init data without max age",
			initData:   signInitData(testBotToken, map[string]string{"auth_date": stale, "user": user}),
			expectedID: 42,
		},
		{
			name:        "Stale init data with max age",
			initData:    signInitData(testBotToken, map[string]string{"auth_date": stale, "user": user}),
			maxAge:      time.Hour,
			expectedErr: ErrInitDataExpired,
		},
		{
			name:        "Signed by another bot",
			initData:    signInitData("999:OTHER", map[string]string{"auth_date": fresh, "user": user}),
			expectedErr: ErrInvalidInitData,
		},
		{
			name:        "Tampered field",
			initData:    signInitData(testBotToken, map[string]string{"auth_date": fresh, "user": user}) + "&extra=1",
			expectedErr: ErrInvalidInitData,
		},
		{
			name:        "Missing hash",
			initData:    "auth_date=" + fresh + "&user=" + url.QueryEscape(user),
			expectedErr: ErrInvalidInitData,
		},
		{
			name:        "Empty",
			initData:    "",
			expectedErr: ErrInvalidInitData,
		},
		{
			name:        "No user",
			initData:    signInitData(testBotToken, map[string]string{"auth_date": fresh}),
			expectedErr: ErrInvalidInitData,
		},
		{
			name:        "User without id",
			initData:    signInitData(testBotToken, map[string]string{"auth_date": fresh, "user": `{"first_name":"Ann"}`}),
			expectedErr: ErrInvalidInitData,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewInitDataVerifier(testBotToken, tt.maxAge)
			v.now = func() time.Time { return now }

			got, err := v.Verify(tt.initData)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedID, got.ID)
		})
	}
}

func TestInitDataVerifier_NoBotToken(t *testing.T) {
	v := NewInitDataVerifier("", 0)

	_, err := v.Verify(signInitData("", map[string]string{"user": `{"id":1}`}))

	assert.ErrorIs(t, err, ErrInvalidInitData)
}
