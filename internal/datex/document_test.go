package datex

import (
	"encoding/xml"
	"strings"
	"testing"
)

func TestParseDocument(t *testing.T) {
	doc, err := ParseDocument(strings.NewReader(`
		<root xmlns:a="http://example.com/a">
			<a:item>first</a:item>
			<group>
				<a:item>second</a:item>
				<other>ignored</other>
			</group>
			<a:item>  third  </a:item>
		</root>`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	name := xml.Name{Space: "http://example.com/a", Local: "item"}

	items := doc.FindAll(name)
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}
	if items[0].TrimmedText() != "first" {
		t.Errorf("expected first item in document order, got %q", items[0].TrimmedText())
	}
	if items[1].TrimmedText() != "second" {
		t.Errorf("expected nested item found recursively, got %q", items[1].TrimmedText())
	}
	if items[2].TrimmedText() != "third" {
		t.Errorf("expected trimmed text, got %q", items[2].TrimmedText())
	}

	if doc.Child(name) != items[0] {
		t.Error("expected Child to return the first direct child")
	}
	if got := len(doc.ChildrenNamed(name)); got != 2 {
		t.Errorf("expected 2 direct children, got %d", got)
	}
}

func TestParseDocumentMalformed(t *testing.T) {
	if _, err := ParseDocument(strings.NewReader("<root><unclosed></root>")); err == nil {
		t.Fatal("expected error for malformed document")
	}
}

func TestParseDocumentEmpty(t *testing.T) {
	if _, err := ParseDocument(strings.NewReader("")); err == nil {
		t.Fatal("expected error for empty document")
	}
}
