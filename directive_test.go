package saxml

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadMarkupDeclaration(t *testing.T) {
	testCases := []struct {
		Name            string
		Input           string
		ExpectedKeyword string
		ExpectedBody    string
		Error           ErrorCode
	}{
		{
			Name:            "doctype",
			Input:           `DOCTYPE greeting SYSTEM "hello.dtd">`,
			ExpectedKeyword: "DOCTYPE",
			ExpectedBody:    `greeting SYSTEM "hello.dtd"`,
		},
		{
			Name:            "element",
			Input:           `ELEMENT br EMPTY>`,
			ExpectedKeyword: "ELEMENT",
			ExpectedBody:    "br EMPTY",
		},
		{
			Name:            "notation",
			Input:           `NOTATION usdruvs PUBLIC argh>`,
			ExpectedKeyword: "NOTATION",
			ExpectedBody:    "usdruvs PUBLIC argh",
		},
		{
			Name:            "nested internal subset brackets",
			Input:           `DOCTYPE root [ <!ELEMENT root (#PCDATA)> ]>`,
			ExpectedKeyword: "DOCTYPE",
			ExpectedBody:    `root [ <!ELEMENT root (#PCDATA)> ]`,
		},
		{
			Name:  "unterminated",
			Input: `DOCTYPE root`,
			Error: PrematureEOF,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			src := newByteSource(stringReader(tc.Input))
			keyword, body, err := readMarkupDeclaration(src)
			if tc.Error != 0 {
				assert.Error(t, err)
				assert.Equal(t, tc.Error, err.(*Error).Code)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.ExpectedKeyword, keyword)
			assert.Equal(t, tc.ExpectedBody, body)
		})
	}
}
