// Package order contains the ServiceOrder aggregate and its status catalog.
//
// ServiceOrder is the root aggregate of the system: one customer's
// design-and-installation engagement, from the initial request through
// consulting, sketching, price negotiation, design, payment, delivery,
// installation and confirmation.
//
// The status catalog is a fixed, closed set of statuses with a hand-coded
// transition graph. Every edge carries the set of actor roles permitted to
// drive it. All mutation of a ServiceOrder's status goes through Apply, which
// validates the edge, the acting role and the edge's business preconditions
// before committing any change. A failed Apply leaves the order untouched.
//
// Numeric status codes are part of the catalog because callers of the legacy
// system pass statuses as both integers and names; StatusFromCode and
// StatusFromName provide the boundary lookup in both directions.
package order
