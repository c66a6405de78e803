// Package enquiry implements the customer enquiry workflow: a customer
// submits a transport enquiry, matched vendor routes are aggregated into
// price ranges, the customer selects a range, a manager fans the enquiry out
// to vendors, vendors respond, and the manager confirms a winner.
//
// The package holds three aggregates:
//   - Enquiry: the customer's request and its status machine
//   - PriceRange: a grouped price estimate generated from matched routes
//   - VendorRequest: a manager's request to one vendor with a 24 hour validity
package enquiry
