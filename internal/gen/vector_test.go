package gen

import (
	"strings"
	"testing"
)

func TestGenerateVectorStore(t *testing.T) {
	code := GenerateVectorStore("DocumentStore", "Searchable document snippets", []MetadataFieldSpec{
		{Name: "author", Type: "string"},
		{Name: "created", Type: "timestamp"},
	})

	for _, want := range []string{
		"class DocumentStore(gl.Contract):",
		"Searchable document snippets",
		"store: VecDB[np.float32, typing.Literal[384], str]",
		"def add_text(self, text: str) -> u256:",
		"def search_similar(self, query: str, top_k: u256 = u256(5)) -> str:",
		"def get_store_info(self) -> str:",
		// Metadata fields are documented, not stored.
		"- author: str",
		"- created: u256",
	} {
		if !strings.Contains(code, want) {
			t.Errorf("vector store missing %q", want)
		}
	}
}

func TestGenerateVectorStoreNoMetadata(t *testing.T) {
	code := GenerateVectorStore("BareStore", "No metadata", nil)
	if strings.Contains(code, "Metadata fields:") {
		t.Error("docstring should omit the metadata section when no fields are given")
	}
	if !strings.Contains(code, "class BareStore(gl.Contract):") {
		t.Error("contract class missing")
	}
}

func TestGenerateVectorStoreTopKBounded(t *testing.T) {
	code := GenerateVectorStore("S", "d", nil)
	if !strings.Contains(code, "self.store.knn(embedding, int(top_k))") {
		t.Error("search_similar should delegate to a top_k-bounded knn search")
	}
}
