// Package queue defines message payloads exchanged over the message
// broker and the consumer that turns them into admin notifications.
package queue

// Queue names for admin notification events.
const (
	PledgeQueueName    = "pledge.created"
	ShareSaleQueueName = "sharesale.created"
)

// PledgeCreatedEvent is published when an investor submits a new
// pledge. It carries enough information for the notification consumer
// to render the admin email without querying back for the investment.
type PledgeCreatedEvent struct {
	InvestmentID  uint64 `json:"investment_id"`
	ProfileID     uint64 `json:"profile_id"`
	InvestorEmail string `json:"investor_email"`
	InvestorName  string `json:"investor_name"`
	Amount        string `json:"amount"`
	Percentage    string `json:"percentage"`
	PaymentMethod string `json:"payment_method"`
	CreatedAt     string `json:"created_at"`
}

// ShareSaleRequestedEvent is published when an investor asks to resell
// part of their equity share.
type ShareSaleRequestedEvent struct {
	RequestID     uint64 `json:"request_id"`
	ProfileID     uint64 `json:"profile_id"`
	InvestorEmail string `json:"investor_email"`
	InvestorName  string `json:"investor_name"`
	Percentage    string `json:"percentage"`
	Wallet        string `json:"wallet"`
	CreatedAt     string `json:"created_at"`
}
