// Package order contains the Order aggregate: the per-seller result of a
// checkout, its immutable line items with price snapshots, and the status
// state machine that governs fulfilment.
//
// An Order is created exactly once, by the checkout workflow, for exactly one
// seller. After creation only its status changes; line items and totals are
// frozen at checkout time so historical orders are decoupled from later
// price changes on the product catalog.
package order
