// Package aforro models a small portfolio of Portuguese savings certificates
// (Certificados de Aforro) and aggregates their current valuation against
// the amount invested.
//
// Subscriptions are loaded from a JSON file, valued one by one through the
// IGCP simulator API (package igcp), and summarized into a single
// current/invested ratio rendered as a static HTML report (package
// renderer). The whole run is sequential and stateless: nothing is persisted
// between runs.
package aforro
