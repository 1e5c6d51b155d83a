package saxml

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNext(t *testing.T) {
	testCases := []struct {
		Name     string
		Input    string
		Expected production
		Error    ErrorCode
	}{
		{Name: "char data", Input: "hello", Expected: prodCharData},
		{Name: "eof", Input: "", Expected: prodEOF},
		{Name: "start tag", Input: "<root>", Expected: prodStartTag},
		{Name: "end tag", Input: "</root>", Expected: prodEndTag},
		{Name: "proc inst", Input: "<?xml?>", Expected: prodProcInst},
		{Name: "comment", Input: "<!--c-->", Expected: prodComment},
		{Name: "cdata", Input: "<![CDATA[x]]>", Expected: prodCDATA},
		{Name: "markup decl", Input: "<!DOCTYPE root>", Expected: prodMarkupDecl},
		{Name: "bad char after lt", Input: "<9bad>", Error: Malformed},
		{Name: "truncated comment prefix", Input: "<!-x", Error: Malformed},
		{Name: "truncated cdata prefix", Input: "<![CDAT", Error: PrematureEOF},
		{Name: "lone lt at eof", Input: "<", Error: PrematureEOF},
	}
	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			src := newByteSource(stringReader(tc.Input))
			prod, err := next(src)
			if tc.Error != 0 {
				assert.Error(t, err)
				assert.Equal(t, tc.Error, err.(*Error).Code)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.Expected, prod)
		})
	}
}

func TestNextConsumesDelimitersOnly(t *testing.T) {
	src := newByteSource(stringReader(`<?xml version="1.0"?>`))
	prod, err := next(src)
	assert.NoError(t, err)
	assert.Equal(t, prodProcInst, prod)
	target, body, err := readProcInst(src)
	assert.NoError(t, err)
	assert.Equal(t, "xml", target)
	assert.Equal(t, `version="1.0"`, body)
}
