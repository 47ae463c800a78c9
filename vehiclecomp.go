// Package vehiclecomp answers used-vehicle price questions for the Sri Lankan
// market by aggregating live listings from multiple classifieds sites. It
// fans a search query out to site-specific scrapers, standardizes the raw
// results into a canonical listing shape, deduplicates and ranks them, and
// can compute cross-query price comparisons.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, redis/).
package vehiclecomp
