package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateRandomHex(t *testing.T) {
	for _, length := range []int{1, 8, 63, 64} {
		got, err := GenerateRandomHex(length)
		require.NoError(t, err)
		assert.Len(t, got, length)
		assert.Regexp(t, `^[0-9a-f]*$`, got)
	}

	a, _ := GenerateRandomHex(64)
	b, _ := GenerateRandomHex(64)
	assert.NotEqual(t, a, b)
}

func TestSanitizeText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain", input: "paid via GTBank", want: "paid via GTBank"},
		{name: "control chars", input: "sent\x00 \x07now", want: "sent now"},
		{name: "keeps newlines", input: "line one\r\n  line   two ", want: "line one\nline two"},
		{name: "blank", input: " \t ", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeText(tt.input))
		})
	}
}

func TestMaskTail(t *testing.T) {
	assert.Equal(t, "*******8901", MaskTail("22345678901", 4))
	assert.Equal(t, "123", MaskTail("123", 4))
	assert.Equal(t, "***", MaskTail("abc", -1))
}

func TestMaskEmail(t *testing.T) {
	assert.Equal(t, "ad***@example.com", MaskEmail("adamu@example.com"))
	assert.Equal(t, "ab@example.com", MaskEmail("ab@example.com"))
	assert.Equal(t, "not-an-email", MaskEmail("not-an-email"))
}
