// Package services contains stateless domain services that coordinate rules
// spanning more than one aggregate or entity.
//
// Three services live here:
//
//   - RevisionPhaseTracker owns the phase arithmetic over an order's revision
//     history: which iteration a new submission lands on, when the 3-phase
//     ceiling is hit, and which record is the currently selected one.
//
//   - PriceApprovalGate drives the design-price negotiation between designer
//     and manager: propose, approve, reject with rationale, resubmit with an
//     adjusted price and/or a fresh sketch batch.
//
//   - WorkTaskCoordinator keeps a field WorkTask and its owning ServiceOrder
//     moving together: every task status change maps to exactly one order
//     status and both aggregates mutate in memory or neither does. It also
//     guards on-site starts against the booked appointment window.
//
// Services here mutate aggregates in memory only. Persistence and transaction
// boundaries belong to the application layer's unit of work.
package services
