package gen

import (
	"strings"
	"testing"
)

func TestAddLLMCapabilities(t *testing.T) {
	base := BuildBaseContract("Assistant", nil)
	code := AddLLMCapabilities(base, "Answer customer questions politely")

	for _, want := range []string{
		"def process_prompt(self, prompt: str, prompt_type: str = \"general\") -> str:",
		"Contract requirements: Answer customer questions politely",
		`if prompt_type == "analysis":`,
		`elif prompt_type == "classification":`,
		"general processing",
		"def analyze_sentiment(self, text: str) -> str:",
		"gl.eq_principle_prompt_non_comparative",
		"'positive', 'negative' or 'neutral'",
		"def generate_response(self, context: str, question: str) -> str:",
		`json.loads(raw)["answer"]`,
	} {
		if !strings.Contains(code, want) {
			t.Errorf("LLM block missing %q", want)
		}
	}
}

func TestAddWebAccess(t *testing.T) {
	base := BuildBaseContract("Fetcher", nil)
	code := AddWebAccess(base, "https://api.example.com/{id}", "Extract the price field")

	for _, want := range []string{
		"def fetch_web_data(self, url: str, mode: str = \"text\") -> str:",
		`if mode not in ["text", "html", "screenshot"]:`,
		"URL template: https://api.example.com/{id}",
		"Extract the price field",
		"def fetch_multiple_urls(self, urls: DynArray[str], mode: str = \"text\") -> str:",
		"def fetch_with_consensus(self, url: str, mode: str = \"text\") -> str:",
		"within 10% of each other",
	} {
		if !strings.Contains(code, want) {
			t.Errorf("web block missing %q", want)
		}
	}
}

// Every generated web method wraps its fetch+process logic in try/except
// and carries both JSON envelopes: the failure envelope
// {error, url, mode, status: "failed"} and the parse fallback
// {raw_response, status: "json_parse_error"}.
func TestAddWebAccessEnvelopesPerMethod(t *testing.T) {
	code := AddWebAccess(BuildBaseContract("Fetcher", nil), "https://api.example.com/{id}", "Extract the price field")

	methods := []string{"fetch_web_data", "fetch_multiple_urls", "fetch_with_consensus"}
	for i, method := range methods {
		start := strings.Index(code, "def "+method)
		if start < 0 {
			t.Fatalf("method %s missing", method)
		}
		end := len(code)
		if i+1 < len(methods) {
			end = strings.Index(code, "def "+methods[i+1])
		}
		body := code[start:end]

		if !strings.Contains(body, "try:") || !strings.Contains(body, "except Exception as e:") {
			t.Errorf("%s lacks a try/except wrapper", method)
		}
		for _, field := range []string{`"error": str(e),`, `"url": url,`, `"mode": mode,`, `"status": "failed",`} {
			if !strings.Contains(body, field) {
				t.Errorf("%s failure envelope missing %q", method, field)
			}
		}
		for _, field := range []string{`"raw_response": result,`, `"status": "json_parse_error",`} {
			if !strings.Contains(body, field) {
				t.Errorf("%s parse fallback envelope missing %q", method, field)
			}
		}
	}
}

// Augmenters append unconditionally: applying one twice duplicates its block.
func TestAugmentersAppendNotIdempotent(t *testing.T) {
	base := BuildBaseContract("Doubled", nil)
	once := AddLLMCapabilities(base, "reqs")
	twice := AddLLMCapabilities(once, "reqs")

	if got := strings.Count(twice, "def process_prompt"); got != 2 {
		t.Errorf("expected process_prompt twice after double append, got %d", got)
	}
}

func TestAugmentersTrimTrailingWhitespace(t *testing.T) {
	code := AddLLMCapabilities("class X(gl.Contract):\n    pass\n\n\n", "reqs")
	if strings.Contains(code, "pass\n\n\n\n") {
		t.Error("trailing whitespace should be trimmed before appending")
	}
	if !strings.HasPrefix(code, "class X(gl.Contract):\n    pass\n\n") {
		t.Errorf("unexpected prefix:\n%s", code[:60])
	}
}

func TestAugmentersCompose(t *testing.T) {
	base := BuildBaseContract("Both", []FieldSpec{{Name: "data", Type: "string"}})
	code := AddWebAccess(AddLLMCapabilities(base, "do things"), "https://example.com", "extract data")

	if !strings.Contains(code, "def process_prompt") || !strings.Contains(code, "def fetch_web_data") {
		t.Error("both capability blocks should be present")
	}
	if strings.Index(code, "def process_prompt") > strings.Index(code, "def fetch_web_data") {
		t.Error("blocks should appear in application order")
	}
}
