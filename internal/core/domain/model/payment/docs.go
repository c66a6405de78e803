// Package payment contains the payment and invoicing aggregates. A Payment
// moves through a gateway-shaped lifecycle (pending, initiated, processing,
// completed, failed, cancelled, refunded) with a history entry per change;
// an Invoice carries the GST charge breakdown for an order with computed
// subtotal, tax and total.
package payment
