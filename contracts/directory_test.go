package contracts_test

import (
	"strings"
	"testing"

	"github.com/nounish/govscope/contracts"
)

func TestDirectoryLookupIsCaseInsensitive(t *testing.T) {
	d := contracts.Nouns()

	c, ok := d.Lookup(strings.ToUpper(contracts.TreasuryAddress))
	if !ok {
		t.Fatal("upper-cased treasury address should resolve")
	}
	if c.Name != "Nouns DAO Treasury" {
		t.Errorf("want Nouns DAO Treasury, got %q", c.Name)
	}
	if !d.Contains(strings.ToLower(contracts.AuctionHouseAddress)) {
		t.Error("lower-cased auction house address should resolve")
	}
}

func TestDirectoryUnknownAddress(t *testing.T) {
	d := contracts.Nouns()
	if d.Contains("0x0000000000000000000000000000000000000001") {
		t.Error("unknown address should not resolve")
	}
	if name := d.Name("0x0000000000000000000000000000000000000001"); name != "" {
		t.Errorf("unknown address: want empty name, got %q", name)
	}
}

func TestDirectoryNilSafety(t *testing.T) {
	var d *contracts.Directory
	if d.Contains(contracts.TreasuryAddress) {
		t.Error("nil directory should contain nothing")
	}
	if got := d.All(); got != nil {
		t.Errorf("nil directory: want nil list, got %v", got)
	}
}

func TestDirectoryLaterEntriesWin(t *testing.T) {
	d := contracts.NewDirectory([]contracts.Contract{
		{Address: "0xabc0000000000000000000000000000000000000", Name: "First", Description: ""},
		{Address: "0xABC0000000000000000000000000000000000000", Name: "Second", Description: ""},
	})
	if name := d.Name("0xabc0000000000000000000000000000000000000"); name != "Second" {
		t.Errorf("later registration should win, got %q", name)
	}
}

func TestSearchExactAddressFirst(t *testing.T) {
	d := contracts.Nouns()
	got := d.Search(contracts.PayerAddress)
	if len(got) != 1 || got[0].Name != "Nouns Payer" {
		t.Errorf("exact address search: want [Nouns Payer], got %v", got)
	}
}

func TestSearchFuzzyName(t *testing.T) {
	d := contracts.Nouns()
	got := d.Search("treasury")
	if len(got) == 0 {
		t.Fatal("fuzzy search for treasury returned nothing")
	}
	found := false
	for _, c := range got {
		if c.Address == contracts.TreasuryAddress {
			found = true
		}
	}
	if !found {
		t.Errorf("treasury not among matches: %v", got)
	}
}

func TestIndexQuery(t *testing.T) {
	idx, err := contracts.NewIndex(contracts.Nouns())
	if err != nil {
		t.Fatalf("build index: %s", err)
	}
	defer idx.Close()

	got, err := idx.Query("auctions", 5)
	if err != nil {
		t.Fatalf("query: %s", err)
	}
	found := false
	for _, c := range got {
		if c.Address == contracts.AuctionHouseAddress {
			found = true
		}
	}
	if !found {
		t.Errorf("auction house not among matches: %v", got)
	}
}
