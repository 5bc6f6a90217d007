// Package artlot extracts structured auction-lot records from fragments of
// auction-house listing pages. Per-field parsers turn noisy text into typed
// values and a per-house schema composes them into one record per page.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, rod/).
package artlot
