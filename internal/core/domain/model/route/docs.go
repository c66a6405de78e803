// Package route contains the vendor corridor aggregate: a Route between two
// cities with ordered intermediate stops and per truck type segment pricing.
// Routes are the supply side of enquiry matching and price range generation.
package route
