package pagination

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDecodeToken(t *testing.T) {
	transactionDate := time.Date(2026, 5, 15, 0, 0, 0, 0, time.UTC)
	createdAt := time.Date(2026, 5, 15, 14, 30, 45, 123456789, time.UTC)

	token := EncodeToken(transactionDate, createdAt)
	assert.NotEmpty(t, token, "Token should not be empty")

	decodedDate, decodedCreatedAt, err := DecodeToken(token)
	assert.NoError(t, err, "Decoding should not return an error")
	assert.Equal(t, transactionDate, decodedDate, "Transaction date should match after decode")
	assert.Equal(t, createdAt, decodedCreatedAt, "Created at time should match after decode")

	zeroTime := time.Time{}
	zeroToken := EncodeToken(zeroTime, zeroTime)
	decodedZeroDate, decodedZeroTime, err := DecodeToken(zeroToken)
	assert.NoError(t, err, "Decoding zero time should not return an error")
	assert.Equal(t, zeroTime, decodedZeroDate)
	assert.Equal(t, zeroTime, decodedZeroTime)

	now := time.Now().UTC()
	nowToken := EncodeToken(now, now)
	decodedNowDate, decodedNowTime, err := DecodeToken(nowToken)
	assert.NoError(t, err, "Decoding current time should not return an error")
	assert.True(t, now.Equal(decodedNowDate), "Current date should match after decode")
	assert.True(t, now.Equal(decodedNowTime), "Current time should match after decode")
}

func TestDecodeTokenError(t *testing.T) {
	_, _, err := DecodeToken("this is not base64!")
	assert.Error(t, err, "Should return an error for invalid base64")
	assert.Contains(t, err.Error(), "base64 decode")

	_, _, err = DecodeToken(EncodeMultiFieldToken("only-one-field"))
	assert.Error(t, err, "Should return an error when the separator is missing")
	assert.Contains(t, err.Error(), "split")

	_, _, err = DecodeToken(EncodeMultiFieldToken("not-a-date", "also-not-a-date"))
	assert.Error(t, err, "Should return an error for unparseable dates")
}

func TestEncodeDecodeDateBasedToken(t *testing.T) {
	date := time.Date(2026, 2, 28, 9, 0, 0, 0, time.UTC)

	token := EncodeDateBasedToken(date)
	assert.NotEmpty(t, token)

	decoded, err := DecodeDateBasedToken(token)
	assert.NoError(t, err)
	assert.Equal(t, date, decoded)

	_, err = DecodeDateBasedToken("!!bad!!")
	assert.Error(t, err)

	_, err = DecodeDateBasedToken(EncodeMultiFieldToken("not-a-date"))
	assert.Error(t, err)
}

func TestEncodeDecodeMultiFieldToken(t *testing.T) {
	fields := []string{"2026-05-15T00:00:00Z", "txn-abc", "42"}

	token := EncodeMultiFieldToken(fields...)
	decoded, err := DecodeMultiFieldToken(token)
	assert.NoError(t, err)
	assert.Equal(t, fields, decoded)

	single, err := DecodeMultiFieldToken(EncodeMultiFieldToken("solo"))
	assert.NoError(t, err)
	assert.Equal(t, []string{"solo"}, single)

	_, err = DecodeMultiFieldToken("not base64 at all!")
	assert.Error(t, err)
}
