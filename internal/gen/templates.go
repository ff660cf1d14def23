package gen

import "fmt"

// Template tags accepted by GenerateFromTemplate. Any other tag (including
// "basic") falls back to an empty base contract.
const (
	TemplateDAOGovernance     = "dao_governance"
	TemplateContentModeration = "content_moderation"
	TemplateSentimentTracker  = "sentiment_tracker"
	TemplateMultiOracle       = "multi_oracle"
)

// TemplateTags lists the recognized template tags in dispatch order.
func TemplateTags() []string {
	return []string{
		TemplateDAOGovernance,
		TemplateContentModeration,
		TemplateSentimentTracker,
		TemplateMultiOracle,
	}
}

// GenerateFromTemplate renders one of the named full-contract templates.
// Unrecognized tags fall back to BuildBaseContract(name, nil) — the caller
// gets a valid empty skeleton rather than an error.
func GenerateFromTemplate(templateType, name string, params TemplateParams) string {
	switch templateType {
	case TemplateDAOGovernance:
		return generateDAOGovernance(name, params)
	case TemplateContentModeration:
		return generateContentModeration(name, params)
	case TemplateSentimentTracker:
		return generateSentimentTracker(name, params)
	case TemplateMultiOracle:
		return generateMultiOracle(name, params)
	default:
		return BuildBaseContract(name, nil)
	}
}

// daoGovernanceTemplate expects strict validator agreement: proposal
// admission is a deterministic ACCEPT/REJECT decision.
// %s order: name, description, charter (description again in the prompt).
const daoGovernanceTemplate = contractHeader + `class %s(gl.Contract):
    description: str
    proposals: TreeMap[u256, str]
    proposal_votes: TreeMap[u256, u256]
    proposal_count: u256

    def __init__(self):
        self.description = "%s"
        self.proposal_count = u256(0)

    @gl.public.write
    def create_proposal(self, text: str) -> u256:
        def run() -> str:
            task = f"""Decide whether the following DAO proposal is well-formed
and actionable under this governance charter: %s

Proposal: {text}

Respond with exactly ACCEPT or REJECT."""
            return gl.nondet.exec_prompt(task)

        verdict = gl.eq_principle_strict_eq(run)
        if verdict != "ACCEPT":
            raise Exception("Proposal rejected by validator consensus")
        proposal_id = self.proposal_count
        self.proposals[proposal_id] = text
        self.proposal_votes[proposal_id] = u256(0)
        self.proposal_count = u256(self.proposal_count + u256(1))
        return proposal_id

    @gl.public.write
    def vote(self, proposal_id: u256) -> None:
        self.proposal_votes[proposal_id] = u256(self.proposal_votes[proposal_id] + u256(1))

    @gl.public.view
    def get_proposal(self, proposal_id: u256) -> str:
        return self.proposals[proposal_id]

    @gl.public.view
    def get_votes(self, proposal_id: u256) -> u256:
        return self.proposal_votes[proposal_id]

    @gl.public.view
    def get_proposal_count(self) -> u256:
        return self.proposal_count
`

func generateDAOGovernance(name string, params TemplateParams) string {
	return fmt.Sprintf(daoGovernanceTemplate, name, params.Description, params.Description)
}

// contentModerationTemplate uses non-comparative consensus: moderation is a
// qualitative judgment checked against the caller's criteria rather than an
// exact-match result.
// %s order: name, description, criteria (field), criteria (prompt).
const contentModerationTemplate = contractHeader + `class %s(gl.Contract):
    description: str
    criteria: str
    moderated_count: u256
    last_verdict: str

    def __init__(self):
        self.description = "%s"
        self.criteria = "%s"
        self.moderated_count = u256(0)
        self.last_verdict = ""

    @gl.public.write
    def moderate_content(self, content: str) -> str:
        def run() -> str:
            task = f"""Moderate the following content against these criteria: %s

Content: {content}

Respond with exactly one of APPROVED, REJECTED or FLAGGED."""
            return gl.nondet.exec_prompt(task)

        verdict = gl.eq_principle_prompt_non_comparative(
            run,
            task="Moderate content against the configured criteria",
            criteria="The verdict is exactly one of APPROVED, REJECTED or FLAGGED",
        )
        self.last_verdict = verdict
        self.moderated_count = u256(self.moderated_count + u256(1))
        return verdict

    @gl.public.view
    def get_moderation_stats(self) -> str:
        return json.dumps({
            "moderated_count": str(self.moderated_count),
            "last_verdict": self.last_verdict,
        })
`

func generateContentModeration(name string, params TemplateParams) string {
	return fmt.Sprintf(contentModerationTemplate, name, params.Description, params.Criteria, params.Criteria)
}

// sentimentTrackerTemplate records one sentiment label per submission. The
// timestamp in each entry is a constant placeholder; block time is not
// available to the generated contract.
// %s order: name, topic, topic (prompt).
const sentimentTrackerTemplate = contractHeader + `class %s(gl.Contract):
    topic: str
    history: DynArray[str]
    positive_count: u256
    negative_count: u256
    neutral_count: u256

    def __init__(self):
        self.topic = "%s"
        self.positive_count = u256(0)
        self.negative_count = u256(0)
        self.neutral_count = u256(0)

    @gl.public.write
    def record_sentiment(self, text: str) -> str:
        def run() -> str:
            task = f"""Classify the sentiment of the following text about %s
as exactly one of 'positive', 'negative' or 'neutral'. Respond with the
single word only.

Text: {text}"""
            return gl.nondet.exec_prompt(task)

        label = gl.eq_principle_prompt_non_comparative(
            run,
            task="Classify sentiment about the tracked topic",
            criteria="The result is exactly one of the three labels",
        )
        if label == "positive":
            self.positive_count = u256(self.positive_count + u256(1))
        elif label == "negative":
            self.negative_count = u256(self.negative_count + u256(1))
        else:
            self.neutral_count = u256(self.neutral_count + u256(1))
        self.history.append(json.dumps({
            "label": label,
            "timestamp": "pending-block-timestamp",
        }))
        return label

    @gl.public.view
    def get_sentiment_totals(self) -> str:
        return json.dumps({
            "topic": self.topic,
            "positive": str(self.positive_count),
            "negative": str(self.negative_count),
            "neutral": str(self.neutral_count),
        })
`

func generateSentimentTracker(name string, params TemplateParams) string {
	return fmt.Sprintf(sentimentTrackerTemplate, name, params.Topic, params.Topic)
}

// multiOracleTemplate expects deterministic agreement on the reported value,
// so it routes through strict equality.
// %s order: name, description, source-append lines.
const multiOracleTemplate = contractHeader + `class %s(gl.Contract):
    description: str
    sources: DynArray[str]
    last_value: str

    def __init__(self):
        self.description = "%s"
        self.sources = DynArray[str]()
%s        self.last_value = ""

    @gl.public.write
    def report_value(self) -> str:
        def run() -> str:
            readings = []
            for source in self.sources:
                page = gl.nondet.web.render(source, mode="text")
                task = (
                    "Extract the primary numeric value from the page. "
                    "Respond with the number only.\n\n" + page
                )
                readings.append(gl.nondet.exec_prompt(task))
            readings.sort()
            return readings[len(readings) // 2]

        value = gl.eq_principle_strict_eq(run)
        self.last_value = value
        return value

    @gl.public.view
    def get_last_value(self) -> str:
        return self.last_value

    @gl.public.view
    def get_sources(self) -> str:
        return json.dumps([s for s in self.sources])
`

func generateMultiOracle(name string, params TemplateParams) string {
	return fmt.Sprintf(multiOracleTemplate, name, params.Description, sourceAppendLines("sources", params.Sources))
}

// sourceAppendLines renders one append call per source URL for constructor
// bodies. URLs are interpolated verbatim.
func sourceAppendLines(field string, sources []string) string {
	lines := ""
	for _, source := range sources {
		lines += fmt.Sprintf("        self.%s.append(\"%s\")\n", field, source)
	}
	return lines
}
