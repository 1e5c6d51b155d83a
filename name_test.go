package saxml

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadName(t *testing.T) {
	testCases := []struct {
		Input    string
		Expected string
		Error    ErrorCode
	}{
		{Input: "foo bar", Expected: "foo"},
		{Input: "space:local>", Expected: "space:local"},
		{Input: "tag-name.v2/", Expected: "tag-name.v2"},
		{Input: "_leading>", Expected: "_leading"},
		{Input: "0sub>", Error: Malformed},
		{Input: "", Error: PrematureEOF},
	}
	for _, tc := range testCases {
		t.Run(tc.Input, func(t *testing.T) {
			src := newByteSource(stringReader(tc.Input))
			name, err := readName(src)
			if tc.Error != 0 {
				assert.Error(t, err)
				assert.Equal(t, tc.Error, err.(*Error).Code)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.Expected, name)
		})
	}
}

func TestIsNameStartChar(t *testing.T) {
	assert.True(t, isNameStartChar('a'))
	assert.True(t, isNameStartChar('Z'))
	assert.True(t, isNameStartChar('_'))
	assert.True(t, isNameStartChar(':'))
	assert.False(t, isNameStartChar('0'))
	assert.False(t, isNameStartChar('-'))
}

func TestIsNameChar(t *testing.T) {
	assert.True(t, isNameChar('a'))
	assert.True(t, isNameChar('0'))
	assert.True(t, isNameChar('-'))
	assert.True(t, isNameChar('.'))
	assert.False(t, isNameChar(' '))
	assert.False(t, isNameChar('>'))
}
