// Package order provides domain entities and business logic for freight
// order management. It implements the Order aggregate root with lifecycle
// management, role-gated state transitions and OTP-confirmed delivery.
//
// The package includes:
//   - Order: The aggregate root holding the booking, parties, schedule and OTP
//   - Status: A state machine enforcing lifecycle transitions per actor role
//   - Role: The acting user's role, which gates transitions
//   - HistoryEntry: An audit record appended on every status change
//
// Key business rules:
//   - Orders exist only as conversions of accepted quotations, 1:1
//   - Status follows created -> confirmed -> driver_assigned -> pickup ->
//     picked_up -> in_transit -> delivered -> completed, with cancellation
//     allowed up to and including pickup
//   - Each role may only perform its own transitions; admins may perform any
//   - Completion is gated on the customer presenting the delivery OTP
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
