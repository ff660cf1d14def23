package gen

import (
	"fmt"
	"strings"
)

// llmMethodsBlock is appended by AddLLMCapabilities. The single %s receives
// the caller's requirements text (docstring only; the method bodies are
// fixed).
const llmMethodsBlock = `

    # --- LLM processing ---

    @gl.public.write
    def process_prompt(self, prompt: str, prompt_type: str = "general") -> str:
        """Process a prompt through the validator set.

        Contract requirements: %s
        """
        def run() -> str:
            if prompt_type == "analysis":
                task = "Analyze the following and report the key findings: " + prompt
            elif prompt_type == "classification":
                task = "Classify the following input into appropriate categories: " + prompt
            else:
                task = "Perform general processing on the following input: " + prompt
            return gl.nondet.exec_prompt(task)

        return gl.eq_principle_prompt_comparative(
            run, "The responses convey the same meaning"
        )

    @gl.public.write
    def analyze_sentiment(self, text: str) -> str:
        def run() -> str:
            task = (
                "Classify the sentiment of the following text as exactly one of "
                "'positive', 'negative' or 'neutral'. Respond with the single "
                "word only.\n\nText: " + text
            )
            return gl.nondet.exec_prompt(task)

        return gl.eq_principle_prompt_non_comparative(
            run,
            task="Classify sentiment as positive, negative or neutral",
            criteria="The result is exactly one of the three labels",
        )

    @gl.public.write
    def generate_response(self, context: str, question: str) -> str:
        def run() -> str:
            task = f"""Given the following context, answer the question.

Context: {context}
Question: {question}

Respond ONLY with JSON in this exact shape:
{{"answer": "<your answer>"}}
"""
            result = gl.nondet.exec_prompt(task)
            return result.replace("` + "```" + `json", "").replace("` + "```" + `", "").strip()

        raw = gl.eq_principle_prompt_comparative(
            run, "The answers convey the same meaning"
        )
        return json.loads(raw)["answer"]
`

// webMethodsBlock is appended by AddWebAccess. The first %s receives the
// URL template (docstring); the second and third receive the processing
// instruction embedded in the single-URL and multi-URL fetch prompts.
// All three methods return the same failure envelope
// {error, url, mode, status: "failed"} and fall back to
// {raw_response, status: "json_parse_error"} when the model output is not
// valid JSON.
const webMethodsBlock = `

    # --- Web data access ---

    @gl.public.write
    def fetch_web_data(self, url: str, mode: str = "text") -> str:
        """Fetch a single URL through the validator set.

        URL template: %s
        """
        if mode not in ["text", "html", "screenshot"]:
            raise Exception("Unsupported mode: " + mode)

        def run() -> str:
            try:
                page = gl.nondet.web.render(url, mode=mode)
                task = f"""%s

Page content:
{page}

Respond ONLY with JSON."""
                result = gl.nondet.exec_prompt(task)
                result = result.replace("` + "```" + `json", "").replace("` + "```" + `", "").strip()
                try:
                    json.loads(result)
                    return result
                except json.JSONDecodeError:
                    return json.dumps({
                        "raw_response": result,
                        "status": "json_parse_error",
                    })
            except Exception as e:
                return json.dumps({
                    "error": str(e),
                    "url": url,
                    "mode": mode,
                    "status": "failed",
                })

        return gl.eq_principle_prompt_comparative(
            run, "The extracted data matches across validators"
        )

    @gl.public.write
    def fetch_multiple_urls(self, urls: DynArray[str], mode: str = "text") -> str:
        def run() -> str:
            results = []
            for url in urls:
                try:
                    page = gl.nondet.web.render(url, mode=mode)
                    task = f"""%s

Page content:
{page}

Respond ONLY with JSON."""
                    result = gl.nondet.exec_prompt(task)
                    result = result.replace("` + "```" + `json", "").replace("` + "```" + `", "").strip()
                    try:
                        results.append({"url": url, "data": json.loads(result)})
                    except json.JSONDecodeError:
                        results.append({
                            "raw_response": result,
                            "status": "json_parse_error",
                        })
                except Exception as e:
                    results.append({
                        "error": str(e),
                        "url": url,
                        "mode": mode,
                        "status": "failed",
                    })
            return json.dumps(results)

        return gl.eq_principle_prompt_comparative(
            run, "The aggregated results match across validators"
        )

    @gl.public.write
    def fetch_with_consensus(self, url: str, mode: str = "text") -> str:
        """Fetch a numeric value accepted when validators agree within 10%%."""
        def run() -> str:
            try:
                page = gl.nondet.web.render(url, mode=mode)
                task = (
                    "Extract the primary numeric value from the page. "
                    "Respond with the number only.\n\n" + page
                )
                result = gl.nondet.exec_prompt(task)
                result = result.replace("` + "```" + `json", "").replace("` + "```" + `", "").strip()
                try:
                    json.loads(result)
                    return result
                except json.JSONDecodeError:
                    return json.dumps({
                        "raw_response": result,
                        "status": "json_parse_error",
                    })
            except Exception as e:
                return json.dumps({
                    "error": str(e),
                    "url": url,
                    "mode": mode,
                    "status": "failed",
                })

        return gl.eq_principle_prompt_comparative(
            run, "The numeric results are within 10%% of each other"
        )
`

// AddLLMCapabilities appends the LLM processing methods to an existing
// contract source. The input is not parsed or validated; the block is
// appended unconditionally, so applying it twice yields the methods twice.
func AddLLMCapabilities(code, requirements string) string {
	return strings.TrimRight(code, " \t\n") + fmt.Sprintf(llmMethodsBlock, requirements)
}

// AddWebAccess appends the web data-access methods to an existing contract
// source. urlTemplate documents the expected URL shape; processingLogic is
// embedded in the prompt that interprets fetched pages. Like
// AddLLMCapabilities, this is an unconditional append.
func AddWebAccess(code, urlTemplate, processingLogic string) string {
	return strings.TrimRight(code, " \t\n") + fmt.Sprintf(webMethodsBlock, urlTemplate, processingLogic, processingLogic)
}
