// Package network holds the catalog of supported card networks and the
// detection policy that maps a card number to a network.
//
// The catalog is ordered. Detection walks networks in catalog order and the
// first match wins, so results never depend on map iteration.
package network

import (
	"fmt"
	"slices"
	"strconv"

	"cardforge/pkg/domain"
	"cardforge/pkg/serrors"

	"github.com/samber/lo"
)

// RangeRule claims numbers of an exact Length whose leading Digits digits,
// read as an integer, fall inside [Low, High]. It covers issuer ranges that
// are impractical to list as literal prefixes.
type RangeRule struct {
	Length int
	Digits int
	Low    int
	High   int
}

func (r RangeRule) matches(number string) bool {
	if len(number) != r.Length || len(number) < r.Digits {
		return false
	}
	lead, err := strconv.Atoi(number[:r.Digits])
	if err != nil {
		return false
	}

	return lead >= r.Low && lead <= r.High
}

// Definition is a network together with its range exceptions.
type Definition struct {
	domain.Network
	Ranges []RangeRule
}

// Catalog is an immutable ordered set of networks. The zero value is empty;
// use New or Default.
type Catalog struct {
	defs  []Definition
	index map[domain.NetworkID]int
}

// New validates defs and builds a catalog preserving their order. Every BIN
// must be non-empty digits, every network needs at least one length, and IDs
// must be unique and differ from domain.RandomNetwork.
func New(defs ...Definition) (*Catalog, error) {
	c := &Catalog{
		defs:  make([]Definition, 0, len(defs)),
		index: make(map[domain.NetworkID]int, len(defs)),
	}
	for _, def := range defs {
		if def.ID == "" || def.ID == domain.RandomNetwork {
			return nil, fmt.Errorf("invalid network id %q", def.ID)
		}
		if _, dup := c.index[def.ID]; dup {
			return nil, fmt.Errorf("duplicate network id %q", def.ID)
		}
		if len(def.Lengths) == 0 {
			return nil, fmt.Errorf("network %q has no valid lengths", def.ID)
		}
		for _, bin := range def.BINs {
			if bin == "" || !isDigits(bin) {
				return nil, fmt.Errorf("network %q has non-digit bin %q", def.ID, bin)
			}
		}
		c.index[def.ID] = len(c.defs)
		c.defs = append(c.defs, clone(def))
	}

	return c, nil
}

var defaultCatalog = lo.Must(New(builtin()...)) //nolint: gochecknoglobals

// Default returns the process-wide built-in catalog.
func Default() *Catalog { return defaultCatalog }

// Lookup returns the network registered under id. The "random" pseudo entry
// is not a network and is reported as unknown.
func (c *Catalog) Lookup(id domain.NetworkID) (domain.Network, error) {
	i, ok := c.index[id]
	if !ok {
		return domain.Network{}, serrors.With(serrors.ErrUnknownNetwork, "unknown network: %s", id)
	}

	return clone(c.defs[i]).Network, nil
}

// Detect returns the first network, in catalog order, that claims number.
// A network claims a number when a BIN prefix matches and the length is valid
// for it, or when one of its range rules matches.
func (c *Catalog) Detect(number string) (domain.Network, bool) {
	for _, def := range c.defs {
		if def.MatchesBIN(number) && def.IsValidLength(len(number)) {
			return clone(def).Network, true
		}
		for _, r := range def.Ranges {
			if r.matches(number) {
				return clone(def).Network, true
			}
		}
	}

	return domain.Network{}, false
}

// Networks returns the concrete networks in catalog order.
func (c *Catalog) Networks() []domain.Network {
	return lo.Map(c.defs, func(def Definition, _ int) domain.Network {
		return clone(def).Network
	})
}

// IDs returns the concrete network identifiers in catalog order.
func (c *Catalog) IDs() []domain.NetworkID {
	return lo.Map(c.defs, func(def Definition, _ int) domain.NetworkID {
		return def.ID
	})
}

// List returns the selectable entries: the "random" pseudo entry first,
// followed by every network in catalog order.
func (c *Catalog) List() []domain.NetworkEntry {
	entries := []domain.NetworkEntry{{ID: domain.RandomNetwork, Name: "Random"}}

	return append(entries, lo.Map(c.defs, func(def Definition, _ int) domain.NetworkEntry {
		return domain.NetworkEntry{ID: def.ID, Name: def.Name}
	})...)
}

func clone(def Definition) Definition {
	def.BINs = slices.Clone(def.BINs)
	def.Lengths = slices.Clone(def.Lengths)
	def.Ranges = slices.Clone(def.Ranges)

	return def
}

func isDigits(s string) bool {
	return lo.EveryBy([]byte(s), func(b byte) bool { return b >= '0' && b <= '9' })
}
