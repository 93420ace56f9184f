package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOffsetTokenRoundTrip(t *testing.T) {
	token := EncodeOffsetToken("company-1", 40)
	offset, err := DecodeOffsetToken(token, "company-1")
	require.NoError(t, err)
	assert.Equal(t, 40, offset)
}

func TestDecodeOffsetToken_Errors(t *testing.T) {
	_, err := DecodeOffsetToken("%%%", "company-1")
	assert.Error(t, err)

	_, err = DecodeOffsetToken(EncodeOffsetToken("company-2", 10), "company-1")
	assert.Error(t, err, "token from another company")

	_, err = DecodeOffsetToken(EncodeOffsetToken("company-1", -5), "company-1")
	assert.Error(t, err, "negative offset")
}

func TestNextOffsetToken(t *testing.T) {
	assert.Empty(t, NextOffsetToken("c", 0, 20, 20))
	assert.Empty(t, NextOffsetToken("c", 0, 0, 100))

	token := NextOffsetToken("c", 20, 20, 45)
	offset, err := DecodeOffsetToken(token, "c")
	require.NoError(t, err)
	assert.Equal(t, 40, offset)
}
