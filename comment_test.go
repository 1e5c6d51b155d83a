package saxml

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSkipComment(t *testing.T) {
	testCases := []struct {
		Name  string
		Input string
		Error ErrorCode
	}{
		{Name: "simple", Input: "hello world-->"},
		{Name: "permissive double dash inside", Input: "a--b--c-->"},
		{Name: "unterminated", Input: "no terminator", Error: PrematureEOF},
	}
	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			src := newByteSource(stringReader(tc.Input))
			err := skipComment(src)
			if tc.Error != 0 {
				assert.Error(t, err)
				assert.Equal(t, tc.Error, err.(*Error).Code)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestSkipCommentLeavesCursorAfterTerminator(t *testing.T) {
	src := newByteSource(stringReader("hello-->trailing"))
	assert.NoError(t, skipComment(src))
	rest, err := readCharData(src)
	assert.NoError(t, err)
	assert.Equal(t, "trailing", rest)
}
