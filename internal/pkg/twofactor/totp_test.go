package twofactor

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidate(t *testing.T) {
	key, err := Generate("NairaXchange", "ada@example.com")
	require.NoError(t, err)
	assert.NotEmpty(t, key.Secret)
	assert.Contains(t, key.URL, "otpauth://totp/NairaXchange")

	now := time.Now()
	code, err := Code(key.Secret, now)
	require.NoError(t, err)

	step, ok := Match(code, key.Secret, now)
	assert.True(t, ok)
	assert.Equal(t, now.Unix()/30, step)

	late, ok := Match(code, key.Secret, now.Add(30*time.Second))
	assert.True(t, ok)
	assert.Equal(t, step, late, "a code late by one period still reports its own step")

	_, ok = Match(code, key.Secret, now.Add(5*time.Minute))
	assert.False(t, ok)
	_, ok = Match("", key.Secret, now)
	assert.False(t, ok)
	_, ok = Match(code, "", now)
	assert.False(t, ok)
}
