package pagination

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeToken(t *testing.T) {
	ts := time.Date(2023, 5, 15, 14, 30, 45, 123456789, time.UTC)

	token := EncodeToken(ts, 42)
	assert.NotEmpty(t, token, "Token should not be empty")

	decodedTS, decodedID, err := DecodeToken(token)
	require.NoError(t, err)
	assert.Equal(t, ts, decodedTS)
	assert.Equal(t, int64(42), decodedID)

	// Zero values
	zeroToken := EncodeToken(time.Time{}, 0)
	decodedTS, decodedID, err = DecodeToken(zeroToken)
	require.NoError(t, err)
	assert.True(t, decodedTS.IsZero())
	assert.Equal(t, int64(0), decodedID)
}

func TestDecodeTokenError(t *testing.T) {
	_, _, err := DecodeToken("this is not base64!")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "base64 decode")

	noSep := base64.StdEncoding.EncodeToString([]byte("2023-05-15T00:00:00Z"))
	_, _, err = DecodeToken(noSep)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "split")

	badDate := base64.StdEncoding.EncodeToString([]byte("notadate|7"))
	_, _, err = DecodeToken(badDate)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "timestamp parse")

	badID := base64.StdEncoding.EncodeToString([]byte("2023-05-15T00:00:00Z|seven"))
	_, _, err = DecodeToken(badID)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "id parse")
}
