package txinterpreter

import (
	"fmt"

	"github.com/nounish/govscope/abis"
	"github.com/nounish/govscope/contracts"
)

// Descriptor interprets calls on the on-chain artwork descriptor.
type Descriptor struct {
	base
}

func NewDescriptor(dir *contracts.Directory) *Descriptor {
	return &Descriptor{newBase(dir, contracts.DescriptorAddress,
		"Nouns Descriptor", "On-chain artwork parts and rendering configuration",
		abis.Descriptor(), CategoryArt, map[string]string{
			"setArt":               "Change the contract storing the artwork parts",
			"setRenderer":          "Change the SVG renderer contract",
			"setArtDescriptor":     "Point the art contract at a new descriptor",
			"setArtInflator":       "Change the decompression contract for artwork data",
			"setPalette":           "Replace one color palette",
			"addBackground":        "Add a background color",
			"addManyBackgrounds":   "Add several background colors",
			"setBaseURI":           "Change the token metadata base URI",
			"toggleDataURIEnabled": "Toggle between on-chain and base-URI metadata",
			"lockParts":            "Permanently freeze the artwork parts",
			"transferOwnership":    "Transfer ownership of the descriptor",
			"renounceOwnership":    "Renounce ownership, leaving the descriptor unowned",
		})}
}

func (d *Descriptor) Interpret(c TxContext) *InterpretedTx {
	return d.interpretWith(c, d.dispatch)
}

func (d *Descriptor) ExtractAddresses(c TxContext) []string {
	return d.Interpret(c).AddressesToResolve
}

func (d *Descriptor) dispatch(c TxContext, fn *call) *InterpretedTx {
	switch fn.Name {
	case "setArt", "setRenderer", "setArtDescriptor", "setArtInflator":
		labels := map[string]string{
			"setArt":           "art contract",
			"setRenderer":      "renderer",
			"setArtDescriptor": "art descriptor",
			"setArtInflator":   "art inflator",
		}
		summary := fmt.Sprintf("Set the %s to %s", labels[fn.Name], d.recipientDisplay(fn, 0))
		return d.assemble(c, fn, summary, CategoryArt, SeverityElevated)

	case "setPalette":
		summary := fmt.Sprintf("Replace color palette %s", fn.bigAt(0).String())
		return d.assemble(c, fn, summary, CategoryArt, SeverityNormal)

	case "addBackground", "addManyBackgrounds":
		return d.assemble(c, fn, "Add artwork backgrounds", CategoryArt, SeverityNormal)

	case "setBaseURI":
		return d.assemble(c, fn, "Set the metadata base URI", CategoryConfiguration, SeverityNormal)

	case "toggleDataURIEnabled":
		return d.assemble(c, fn, "Toggle on-chain metadata", CategoryConfiguration, SeverityNormal)

	case "lockParts":
		return d.assemble(c, fn, "Permanently lock the artwork parts", CategoryArt, SeverityCritical)

	case "transferOwnership":
		summary := fmt.Sprintf("Transfer descriptor ownership to %s", d.recipientDisplay(fn, 0))
		return d.assemble(c, fn, summary, CategoryOwnership, SeverityCritical)

	case "renounceOwnership":
		return d.assemble(c, fn, "Renounce descriptor ownership", CategoryOwnership, SeverityCritical)
	}
	return nil
}
