package impl

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReferralCode_Format(t *testing.T) {
	code := newReferralCode()

	require.True(t, strings.HasPrefix(code, "REF-"))
	assert.Len(t, code, len("REF-")+referralCodeLength)

	for _, r := range strings.TrimPrefix(code, "REF-") {
		assert.Contains(t, referralCodeCharset, string(r))
	}
}

func TestNewReferralCode_Unique(t *testing.T) {
	seen := make(map[string]struct{})
	for range 1000 {
		code := newReferralCode()
		_, duplicate := seen[code]
		require.False(t, duplicate, "generated duplicate code %s", code)
		seen[code] = struct{}{}
	}
}
