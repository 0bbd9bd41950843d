package logx_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"miles_watch/pkg/logx"
)

func TestSensitiveDataMasker(t *testing.T) {
	rq := require.New(t)

	masker := logx.NewSensitiveDataMasker()

	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Bearer header",
			input:    "Authorization: Bearer abc.def.ghi\r\n",
			expected: "Authorization: Bearer [MASKED]\r\n",
		},
		{
			name:     "Bot token in URL path",
			input:    "POST /bot123456:AAE-abcDEF/sendMessage HTTP/1.1",
			expected: "POST /bot[MASKED]/sendMessage HTTP/1.1",
		},
		{
			name:     "Token JSON field",
			input:    `{"token":"secret","text":"hello"}`,
			expected: `{"token":"[MASKED]","text":"hello"}`,
		},
		{
			name:     "Nothing sensitive",
			input:    `{"miles":12345}`,
			expected: `{"miles":12345}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			rq.Equal(tc.expected, string(masker.Mask([]byte(tc.input))))
		})
	}
}

func TestNopSensitiveDataMasker(t *testing.T) {
	rq := require.New(t)

	masker := logx.NewNopSensitiveDataMasker()

	input := `{"token":"secret"}`
	rq.Equal(input, string(masker.Mask([]byte(input))))
}
