package gen

import (
	"strings"
	"testing"
)

func TestGeneratePredictionMarket(t *testing.T) {
	code := GeneratePredictionMarket(
		"BitcoinPriceMarket",
		"Bitcoin price prediction",
		"Bitcoin price must be above $100,000 on January 1, 2025",
		[]string{"https://api.coindesk.com/v1/bpi/currentprice.json"},
	)

	for _, want := range []string{
		"class BitcoinPriceMarket(gl.Contract):",
		"def place_bet(self, prediction: bool) -> None:",
		"def resolve_market(self) -> str:",
		"def claim_winnings(self) -> u256:",
		"def get_market_info(self) -> str:",
		`self.web_sources.append("https://api.coindesk.com/v1/bpi/currentprice.json")`,
		"Bitcoin price must be above $100,000 on January 1, 2025",
		"@gl.public.write.payable",
		// Proportional payout, floor division, no zero-pool guard.
		"payout = u256(user_bet * total_pool // winning_pool)",
	} {
		if !strings.Contains(code, want) {
			t.Errorf("prediction market missing %q", want)
		}
	}
}

func TestGeneratePredictionMarketPlaceholderResolution(t *testing.T) {
	code := GeneratePredictionMarket("AnyMarket", "d", "criteria long enough here", nil)

	// resolve_market does not consult the web sources; it always resolves
	// to the yes outcome.
	body := code[strings.Index(code, "def resolve_market"):]
	body = body[:strings.Index(body, "def claim_winnings")]
	if strings.Contains(body, "web.render") || strings.Contains(body, "exec_prompt") {
		t.Error("resolve_market should be a placeholder without web-source analysis")
	}
	if !strings.Contains(body, "self.outcome = True") {
		t.Error("resolve_market placeholder should fix the outcome")
	}
}

func TestGeneratePredictionMarketMultipleSources(t *testing.T) {
	code := GeneratePredictionMarket("MultiMarket", "d", "criteria", []string{
		"https://one.example.com",
		"https://two.example.com",
	})
	first := strings.Index(code, "https://one.example.com")
	second := strings.Index(code, "https://two.example.com")
	if first == -1 || second == -1 || first > second {
		t.Error("web sources should be appended in input order")
	}
}
