package queue

import (
	"strings"
	"testing"
)

func TestRenderPledge(t *testing.T) {
	body, err := RenderPledge(PledgeCreatedEvent{
		InvestmentID:  7,
		InvestorName:  "Ada Lovelace",
		InvestorEmail: "ada@example.com",
		Amount:        "50000",
		Percentage:    "0.01",
		PaymentMethod: "usdt",
		CreatedAt:     "2025-01-02T03:04:05Z",
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, want := range []string{"Ada Lovelace", "ada@example.com", "50000", "0.01%", "usdt"} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q", want)
		}
	}
}

// Investor-controlled fields are rendered into mail read by admins, so
// they must come out escaped.
func TestRenderShareSaleEscapes(t *testing.T) {
	body, err := RenderShareSale(ShareSaleRequestedEvent{
		RequestID:    3,
		InvestorName: "<script>alert(1)</script>",
		Percentage:   "0.02",
		Wallet:       "TXyz123",
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(body, "<script>") {
		t.Error("investor name was not escaped")
	}
	if !strings.Contains(body, "TXyz123") {
		t.Error("wallet missing from body")
	}
}
