package coverage

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"mangoshop/internal/pkg/errs"
)

var (
	ErrNoRegionTables = errors.New("reference data has no region tables")
	ErrNoAirports     = errors.New("reference data has no complete airport rows")
)

// RegionTable is one raw region table: a key (sheet name) and its cells.
type RegionTable struct {
	Key  string
	Rows [][]string
}

// Resolution is the outcome of a ZIP membership check.
type Resolution struct {
	valid  bool
	reason string
}

func (r Resolution) IsValid() bool {
	return r.valid
}

// Reason explains an invalid resolution and is empty otherwise.
func (r Resolution) Reason() string {
	return r.reason
}

type regionEntry struct {
	region Region
	zips   map[string]struct{}
}

// Directory is the immutable reference data store.
//
// Lookups by region name use the first table (in load order) whose cleaned name matches,
// so duplicated cleaned names never change an answer once loaded.
type Directory struct {
	airports       []Airport
	airportsByCode map[string]Airport

	regions  []regionEntry
	zipIndex map[string][]int
}

// NewDirectory validates and indexes the raw reference data.
//
// Airport rows missing any field are skipped. It fails when no complete airport row
// remains, when there are no region tables, or when a table key is blank, duplicated,
// or cleans to an empty name.
func NewDirectory(airportRows []AirportRow, tables []RegionTable) (*Directory, error) {
	d := &Directory{
		airportsByCode: make(map[string]Airport),
		zipIndex:       make(map[string][]int),
	}

	for _, row := range airportRows {
		airport, err := NewAirport(row.Name, row.Code, row.Zip)
		if err != nil {
			continue
		}
		code := strings.ToUpper(airport.Code())
		if _, exists := d.airportsByCode[code]; !exists {
			d.airportsByCode[code] = airport
		}
		d.airports = append(d.airports, airport)
	}
	if len(d.airports) == 0 {
		return nil, ErrNoAirports
	}

	if len(tables) == 0 {
		return nil, ErrNoRegionTables
	}

	seen := make(map[string]struct{}, len(tables))
	for i, table := range tables {
		key := strings.TrimSpace(table.Key)
		name := CleanRegionName(key)
		if name == "" {
			return nil, errs.NewValueIsRequiredErrorWithCause(
				"region table key", fmt.Errorf("table #%d has a blank key", i+1))
		}
		if _, dup := seen[key]; dup {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				"region table key", fmt.Errorf("duplicate table %q", key))
		}
		seen[key] = struct{}{}

		entry := regionEntry{
			region: Region{name: name, key: key, special: IsSpecialPricingKey(key)},
			zips:   make(map[string]struct{}),
		}
		for _, row := range table.Rows {
			for _, cell := range row {
				zip := CanonicalCell(cell)
				if zip == "" {
					continue
				}
				if _, dup := entry.zips[zip]; dup {
					continue
				}
				entry.zips[zip] = struct{}{}
				d.zipIndex[zip] = append(d.zipIndex[zip], i)
			}
		}
		d.regions = append(d.regions, entry)
	}

	return d, nil
}

// Airports returns the complete airport rows in source order.
func (d *Directory) Airports() []Airport {
	return slices.Clone(d.airports)
}

// Airport looks up an airport by code, ignoring case. The first row with a code wins.
func (d *Directory) Airport(code string) (Airport, bool) {
	a, ok := d.airportsByCode[strings.ToUpper(strings.TrimSpace(code))]
	return a, ok
}

// Regions returns the cleaned region names in table order, each name once.
func (d *Directory) Regions() []string {
	names := make([]string, 0, len(d.regions))
	for _, entry := range d.regions {
		if !slices.Contains(names, entry.region.name) {
			names = append(names, entry.region.name)
		}
	}
	return names
}

// SpecialRegions returns the cleaned names of the discounted tier regions in table order.
func (d *Directory) SpecialRegions() []string {
	var names []string
	for _, entry := range d.regions {
		if entry.region.special && !slices.Contains(names, entry.region.name) {
			names = append(names, entry.region.name)
		}
	}
	return names
}

// Region returns the first region whose cleaned name equals name exactly.
func (d *Directory) Region(name string) (Region, bool) {
	idx, ok := d.regionIndex(name)
	if !ok {
		return Region{}, false
	}
	return d.regions[idx].region, true
}

// ZipCodes returns the sorted canonical ZIP codes of the named region.
func (d *Directory) ZipCodes(name string) ([]string, bool) {
	idx, ok := d.regionIndex(name)
	if !ok {
		return nil, false
	}
	zips := make([]string, 0, len(d.regions[idx].zips))
	for zip := range d.regions[idx].zips {
		zips = append(zips, zip)
	}
	slices.Sort(zips)
	return zips, true
}

// ResolveZip checks that zip belongs to the claimed region.
//
// When it does not, the reason names the first other region (in load order) that
// contains the ZIP, or states that the ZIP is not covered at all.
func (d *Directory) ResolveZip(zip, claimedRegion string) Resolution {
	claimed, ok := d.regionIndex(claimedRegion)
	if !ok {
		return Resolution{reason: fmt.Sprintf("Region %s is not available for doorstep delivery", claimedRegion)}
	}

	zip = CanonicalCell(zip)
	owners := d.zipIndex[zip]
	if slices.Contains(owners, claimed) {
		return Resolution{valid: true}
	}
	for _, idx := range owners {
		if other := d.regions[idx].region.name; other != claimedRegion {
			return Resolution{reason: fmt.Sprintf("Zipcode %s belongs to %s, not %s", zip, other, claimedRegion)}
		}
	}
	return Resolution{reason: fmt.Sprintf("Zipcode %s is not available for doorstep delivery", zip)}
}

func (d *Directory) regionIndex(name string) (int, bool) {
	for i, entry := range d.regions {
		if entry.region.name == name {
			return i, true
		}
	}
	return 0, false
}
