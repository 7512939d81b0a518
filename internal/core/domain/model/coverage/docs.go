// Package coverage holds the delivery reference data: the airport directory used for
// pickup orders and the region tables that define doorstep coverage.
//
// The data is loaded once at startup by a ports.ReferenceDataSource adapter and handed
// to NewDirectory. A Directory is immutable after construction, so it can be shared by
// every request goroutine without locking.
//
// # Region names
//
// Each region table is identified by a raw key (a workbook sheet name such as
// "HOUSTON IAH 77001"). The public region name is derived by CleanRegionName:
//
//	"NEW YORK 10001" -> "NEW YORK"
//	"CHICAGO 60601"  -> "CHICAGO"
//	"CHICAGO"        -> "CHICAGO"
//
// Raw keys containing one of SpecialPricingMarkers put the region in the discounted
// doorstep pricing tier.
//
// # ZIP membership
//
// Every non-empty cell of a region table is a candidate ZIP code. Cells are compared in
// canonical form (see CanonicalCell), and a ZIP -> tables index is built at load time so
// resolution is a map lookup instead of a scan over every sheet.
package coverage
