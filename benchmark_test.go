package saxml

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"testing"
)

// genBenchmarkDocument synthesizes an in-memory XML document standing in
// for the gzip-compressed SwissProt fixture the teacher's benchmark_test.go
// loaded from disk (not present in this retrieval pack): a shallow root
// with many repeated sibling records, enough to make per-call overhead
// visible without requiring an external file.
func genBenchmarkDocument(records int) []byte {
	var buf bytes.Buffer
	buf.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n<dataset>\n")
	for i := 0; i < records; i++ {
		fmt.Fprintf(&buf, "  <record id=\"%d\" kind=\"sample\"><name>entry-%d</name><value><![CDATA[payload-%d]]></value></record>\n", i, i, i)
	}
	buf.WriteString("</dataset>\n")
	return buf.Bytes()
}

func BenchmarkStdlibDecoder(b *testing.B) {
	data := genBenchmarkDocument(2000)
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		d := xml.NewDecoder(bytes.NewReader(data))
		for {
			_, err := d.RawToken()
			if err == io.EOF {
				break
			} else if err != nil {
				b.Fatalf("unexpected error: %v", err)
			}
		}
	}
}

func BenchmarkParser(b *testing.B) {
	data := genBenchmarkDocument(2000)
	p := New()
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		if _, err := p.Parse(bytes.NewReader(data)); err != nil {
			b.Fatalf("unexpected error: %v", err)
		}
	}
}

func BenchmarkParserAttributes(b *testing.B) {
	data := genBenchmarkDocument(2000)
	p := New()
	p.OnStartElement(func(name string, attrs *AttributeIterator) error {
		for {
			_, ok, err := attrs.Next()
			if err != nil {
				return err
			}
			if !ok {
				return nil
			}
		}
	})
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		if _, err := p.Parse(bytes.NewReader(data)); err != nil {
			b.Fatalf("unexpected error: %v", err)
		}
	}
}
