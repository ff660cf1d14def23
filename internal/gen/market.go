package gen

import "fmt"

// predictionMarketTemplate tracks yes/no stakes per bettor and pays winners
// proportionally. resolve_market is a placeholder: it always resolves to the
// yes outcome without consulting the configured web sources (see README —
// resolution logic is not implemented yet). claim_winnings divides by the
// winning pool without a zero guard, mirroring the on-chain behavior.
// %s order: name, description, criteria, source-append lines.
const predictionMarketTemplate = contractHeader + `class %s(gl.Contract):
    description: str
    resolution_criteria: str
    web_sources: DynArray[str]
    resolved: bool
    outcome: bool
    yes_bets: TreeMap[Address, u256]
    no_bets: TreeMap[Address, u256]
    total_yes: u256
    total_no: u256
    claimed: TreeMap[Address, bool]

    def __init__(self):
        self.description = "%s"
        self.resolution_criteria = "%s"
        self.web_sources = DynArray[str]()
%s        self.resolved = False
        self.outcome = False
        self.total_yes = u256(0)
        self.total_no = u256(0)

    @gl.public.write.payable
    def place_bet(self, prediction: bool) -> None:
        if self.resolved:
            raise Exception("Market already resolved")
        amount = gl.message.value
        sender = gl.message.sender_address
        if prediction:
            self.yes_bets[sender] = u256(self.yes_bets.get(sender, u256(0)) + amount)
            self.total_yes = u256(self.total_yes + amount)
        else:
            self.no_bets[sender] = u256(self.no_bets.get(sender, u256(0)) + amount)
            self.total_no = u256(self.total_no + amount)

    @gl.public.write
    def resolve_market(self) -> str:
        if self.resolved:
            raise Exception("Market already resolved")
        # Placeholder: web-source analysis is not implemented; the market
        # always resolves to the yes outcome.
        self.resolved = True
        self.outcome = True
        return "resolved"

    @gl.public.write
    def claim_winnings(self) -> u256:
        if not self.resolved:
            raise Exception("Market not resolved")
        sender = gl.message.sender_address
        if self.claimed.get(sender, False):
            raise Exception("Winnings already claimed")
        if self.outcome:
            user_bet = self.yes_bets.get(sender, u256(0))
            winning_pool = self.total_yes
        else:
            user_bet = self.no_bets.get(sender, u256(0))
            winning_pool = self.total_no
        total_pool = u256(self.total_yes + self.total_no)
        payout = u256(user_bet * total_pool // winning_pool)
        self.claimed[sender] = True
        return payout

    @gl.public.view
    def get_market_info(self) -> str:
        return json.dumps({
            "description": self.description,
            "resolution_criteria": self.resolution_criteria,
            "web_sources": [s for s in self.web_sources],
            "resolved": self.resolved,
            "total_yes": str(self.total_yes),
            "total_no": str(self.total_no),
        })
`

// GeneratePredictionMarket renders a yes/no prediction market contract.
// Name, description, criteria and source URLs are interpolated verbatim.
func GeneratePredictionMarket(name, description, resolutionCriteria string, webSources []string) string {
	return fmt.Sprintf(predictionMarketTemplate,
		name, description, resolutionCriteria,
		sourceAppendLines("web_sources", webSources))
}
