package queue

import (
	"bytes"
	"html/template"
)

// The two fixed notification templates live next to the event types
// they render. Investor-controlled fields pass through html/template so
// they arrive escaped in admin inboxes.

var pledgeTmpl = template.Must(template.New("pledge").Parse(`<h2>New investment pledge</h2>
<p><strong>{{.InvestorName}}</strong> ({{.InvestorEmail}}) submitted a pledge.</p>
<table border="1" cellpadding="5" style="border-collapse: collapse;">
<tr><td>Pledge ID</td><td>{{.InvestmentID}}</td></tr>
<tr><td>Amount</td><td>{{.Amount}}</td></tr>
<tr><td>Percentage</td><td>{{.Percentage}}%</td></tr>
<tr><td>Payment method</td><td>{{.PaymentMethod}}</td></tr>
<tr><td>Created</td><td>{{.CreatedAt}}</td></tr>
</table>
<p>Review it in the admin console.</p>`))

var shareSaleTmpl = template.Must(template.New("sharesale").Parse(`<h2>New share sale request</h2>
<p><strong>{{.InvestorName}}</strong> ({{.InvestorEmail}}) wants to sell part of their share.</p>
<table border="1" cellpadding="5" style="border-collapse: collapse;">
<tr><td>Request ID</td><td>{{.RequestID}}</td></tr>
<tr><td>Percentage</td><td>{{.Percentage}}%</td></tr>
<tr><td>Payout wallet</td><td>{{.Wallet}}</td></tr>
<tr><td>Created</td><td>{{.CreatedAt}}</td></tr>
</table>
<p>Review it in the admin console.</p>`))

// RenderPledge produces the HTML body for a pledge-created event.
func RenderPledge(ev PledgeCreatedEvent) (string, error) {
	var buf bytes.Buffer
	if err := pledgeTmpl.Execute(&buf, ev); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderShareSale produces the HTML body for a share-sale event.
func RenderShareSale(ev ShareSaleRequestedEvent) (string, error) {
	var buf bytes.Buffer
	if err := shareSaleTmpl.Execute(&buf, ev); err != nil {
		return "", err
	}
	return buf.String(), nil
}
