// Package contracts holds the static directory of known governance contract
// addresses. The interpreter core consults it to substitute friendly names
// for raw addresses and to suppress already-identified contracts from the
// list of addresses needing off-chain name resolution.
package contracts

import "strings"

// Contract describes one known on-chain contract.
type Contract struct {
	Address     string
	Name        string
	Description string
}

// Directory is an immutable address -> contract lookup table. Build one with
// NewDirectory (or use Nouns for the compiled-in mainnet set) and share it
// freely; it is never mutated after construction.
type Directory struct {
	byAddress map[string]Contract
	list      []Contract
}

// NewDirectory builds a Directory from an ordered contract list. Later
// entries win when two share an address.
func NewDirectory(list []Contract) *Directory {
	d := &Directory{
		byAddress: make(map[string]Contract, len(list)),
		list:      make([]Contract, len(list)),
	}
	copy(d.list, list)
	for _, c := range list {
		d.byAddress[strings.ToLower(c.Address)] = c
	}
	return d
}

// Lookup returns the contract registered at addr, matching case-insensitively.
func (d *Directory) Lookup(addr string) (Contract, bool) {
	if d == nil {
		return Contract{}, false
	}
	c, ok := d.byAddress[strings.ToLower(addr)]
	return c, ok
}

// Contains reports whether addr belongs to a known contract.
func (d *Directory) Contains(addr string) bool {
	_, ok := d.Lookup(addr)
	return ok
}

// Name returns the friendly name for addr, or the empty string when unknown.
func (d *Directory) Name(addr string) string {
	c, _ := d.Lookup(addr)
	return c.Name
}

// All returns the directory entries in registration order.
func (d *Directory) All() []Contract {
	if d == nil {
		return nil
	}
	out := make([]Contract, len(d.list))
	copy(out, d.list)
	return out
}
