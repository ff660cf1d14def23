package gen

import "sort"

// Concept tags accepted by ExplainConcept.
const (
	ConceptEquivalencePrinciple = "equivalence_principle"
	ConceptOptimisticDemocracy  = "optimistic_democracy"
	ConceptLLMIntegration       = "llm_integration"
	ConceptWebAccess            = "web_access"
	ConceptVectorStores         = "vector_stores"
	ConceptPredictionMarkets    = "prediction_markets"
	ConceptStorage              = "storage"
	ConceptDeployment           = "deployment"
)

const explainEquivalencePrinciple = `## Equivalence Principle

Intelligent contracts can call non-deterministic operations (LLM prompts,
web fetches). The Equivalence Principle is how validators agree on their
results: each validator runs the operation independently, and the leader's
result is accepted only if the validators judge it equivalent.

Two flavors:

- **Strict equality** (` + "`gl.eq_principle_strict_eq`" + `): results must match
  byte-for-byte. Use for deterministic decisions (ACCEPT/REJECT verdicts,
  extracted numbers after normalization).
- **Prompt-based** (` + "`gl.eq_principle_prompt_comparative`" + ` /
  ` + "`gl.eq_principle_prompt_non_comparative`" + `): an LLM judges whether the
  results agree. Comparative compares leader and validator outputs directly;
  non-comparative checks the leader's output against task criteria alone.
  Use for free-text or subjective outputs.`

const explainOptimisticDemocracy = `## Optimistic Democracy

GenLayer's consensus model. A randomly selected leader executes each
transaction and proposes the result; a validator committee re-executes and
votes. If a majority agrees (under the Equivalence Principle for
non-deterministic steps), the result is accepted optimistically. Disputed
results escalate to a larger committee. Contract code does not manage any of
this — it only chooses which equivalence wrapper to route results through.`

const explainLLMIntegration = `## LLM Integration

Contracts call models through ` + "`gl.nondet.exec_prompt(task)`" + ` inside a
nested function handed to an equivalence wrapper:

` + "```python" + `
@gl.public.write
def classify(self, text: str) -> str:
    def run() -> str:
        return gl.nondet.exec_prompt("Classify: " + text)
    return gl.eq_principle_prompt_non_comparative(
        run, task="Classify input", criteria="One known label"
    )
` + "```" + `

Prompts should demand a constrained output shape (single word, strict JSON)
so validator agreement is achievable.`

const explainWebAccess = `## Web Access

` + "`gl.nondet.web.render(url, mode=...)`" + ` fetches a URL during execution.
Modes: ` + "`text`" + ` (extracted text), ` + "`html`" + ` (raw markup),
` + "`screenshot`" + ` (rendered image). Fetched content is non-deterministic, so
it must flow through an equivalence wrapper like any LLM result. Fetch
errors should be caught inside the contract and returned as structured JSON
envelopes rather than raised, so the consensus round can still complete.`

const explainVectorStores = `## Vector Stores

` + "`VecDB[np.float32, typing.Literal[N], V]`" + ` is an on-chain vector index:
fixed-dimension float keys mapped to arbitrary values. ` + "`insert`" + ` adds an
embedding, ` + "`knn`" + ` returns the nearest entries. Embeddings themselves come
from a model call and therefore go through strict equality before insertion,
so every validator indexes identical vectors.`

const explainPredictionMarkets = `## Prediction Markets

A yes/no market holds staked bets per bettor (` + "`TreeMap[Address, u256]`" + `),
resolves to one outcome, and pays winners proportionally:

    payout = user_bet * total_pool // winning_pool

Resolution against external data sources is where intelligent contracts
shine — validators fetch the configured sources and agree on the outcome via
the Equivalence Principle.`

const explainStorage = `## Storage

Contract fields are declared as class annotations and persist between calls.
Core types: ` + "`str`" + `, ` + "`u256`" + `, ` + "`f64`" + `, ` + "`bool`" + `,
` + "`Address`" + `, ` + "`bytes`" + `, ` + "`DynArray[T]`" + ` (dynamic array) and
` + "`TreeMap[K, V]`" + ` (ordered map). Fields must be initialized in
` + "`__init__`" + `; containers default to their empty constructors.`

const explainDeployment = `## Deployment

Contracts deploy through genlayer-js: read the contract source, create a
client for the target chain (studionet, testnet or a localnet), call
` + "`deployContract`" + ` with constructor args, then wait for a FINALIZED
receipt to obtain the contract address. GenLayer Studio offers the same flow
interactively for development.`

// conceptExplanations is the closed lookup set behind ExplainConcept.
var conceptExplanations = map[string]string{
	ConceptEquivalencePrinciple: explainEquivalencePrinciple,
	ConceptOptimisticDemocracy:  explainOptimisticDemocracy,
	ConceptLLMIntegration:       explainLLMIntegration,
	ConceptWebAccess:            explainWebAccess,
	ConceptVectorStores:         explainVectorStores,
	ConceptPredictionMarkets:    explainPredictionMarkets,
	ConceptStorage:              explainStorage,
	ConceptDeployment:           explainDeployment,
}

// ExplainConcept returns the Markdown explanation for a GenLayer concept.
// The second return reports whether the concept is known.
func ExplainConcept(concept string) (string, bool) {
	text, ok := conceptExplanations[concept]
	return text, ok
}

// Concepts returns the sorted list of explainable concept tags.
func Concepts() []string {
	names := make([]string, 0, len(conceptExplanations))
	for name := range conceptExplanations {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
