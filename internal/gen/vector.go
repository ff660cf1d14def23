package gen

import (
	"fmt"
	"strings"
)

// vectorStoreTemplate wraps a 384-dimension VecDB keyed by embedding.
// Metadata fields are documented in the class docstring but not threaded
// into the storage type; entries carry their raw text only.
// %s order: name, description, metadata doc lines, name, description.
const vectorStoreTemplate = `# { "Depends": "py-genlayer:test" }
from genlayer import *

import json
import typing
import numpy as np


class %s(gl.Contract):
    """%s
%s    """

    store: VecDB[np.float32, typing.Literal[384], str]
    entry_count: u256

    def __init__(self):
        self.entry_count = u256(0)

    @gl.public.write
    def add_text(self, text: str) -> u256:
        def run() -> str:
            return gl.nondet.exec_prompt(
                "Return the embedding for the following text as a JSON array "
                "of 384 floats.\n\nText: " + text
            )

        raw = gl.eq_principle_strict_eq(run)
        embedding = np.array(json.loads(raw), dtype=np.float32)
        self.store.insert(embedding, text)
        self.entry_count = u256(self.entry_count + u256(1))
        return self.entry_count

    @gl.public.write
    def search_similar(self, query: str, top_k: u256 = u256(5)) -> str:
        def run() -> str:
            return gl.nondet.exec_prompt(
                "Return the embedding for the following text as a JSON array "
                "of 384 floats.\n\nText: " + query
            )

        raw = gl.eq_principle_strict_eq(run)
        embedding = np.array(json.loads(raw), dtype=np.float32)
        matches = []
        for item in self.store.knn(embedding, int(top_k)):
            matches.append({
                "text": item.value,
                "distance": float(item.distance),
            })
        return json.dumps(matches)

    @gl.public.view
    def get_store_info(self) -> str:
        return json.dumps({
            "name": "%s",
            "description": "%s",
            "entries": str(self.entry_count),
            "dimensions": 384,
        })
`

// GenerateVectorStore renders a text vector-store contract. Metadata fields
// are echoed into the docstring for documentation; the store itself keys
// embeddings to raw text.
func GenerateVectorStore(name, description string, metadataFields []MetadataFieldSpec) string {
	return fmt.Sprintf(vectorStoreTemplate,
		name, description, metadataDocLines(metadataFields), name, description)
}

func metadataDocLines(fields []MetadataFieldSpec) string {
	if len(fields) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("\n    Metadata fields:\n")
	for _, f := range fields {
		fmt.Fprintf(&b, "      - %s: %s\n", f.Name, MapType(f.Type))
	}
	return b.String()
}
