// Package truck contains the vendor fleet aggregates: truck types, trucks and
// drivers. Trucks and drivers carry an availability flag that order
// progression flips as vehicles are dispatched and released.
package truck
