// Package quotation implements the quotation lifecycle at the heart of the
// marketplace: customers publish quotation requests, vendors answer with
// priced quotations, and the two sides negotiate within strict bounds until
// one of them accepts, rejects, or the quotation expires.
//
// The package holds two aggregates:
//   - Request: a customer's call for offers with creation guards
//   - Quotation: a vendor's offer, its line items, its negotiation history
//     and the status state machine
//
// Negotiation rules enforced by the Quotation aggregate:
//   - only quotations in pending, sent or negotiating status and within
//     their validity window are negotiable
//   - at most MaxNegotiationEntries entries, strictly alternating between
//     customer and vendor
//   - each counter offer must stay within NegotiationBand of the latest
//     proposed amount and above NegotiationFloor of the original total
package quotation
