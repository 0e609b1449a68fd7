package txinterpreter

import (
	"strings"

	"github.com/nounish/govscope/contracts"
)

// Registry resolves each transaction to the interpreter pinned to its target
// address, falling back to the generic interpreter. It is immutable after
// construction and safe for concurrent use.
type Registry struct {
	interpreters map[string]Interpreter // keyed by lower-cased address
	dir          *contracts.Directory
	supplier     ABISupplier
}

// Option configures a Registry at construction.
type Option func(*Registry)

// WithDirectory replaces the default Nouns contract directory.
func WithDirectory(dir *contracts.Directory) Option {
	return func(r *Registry) { r.dir = dir }
}

// WithABISupplier hands the fallback interpreter a source of parameter
// schemas for unknown targets.
func WithABISupplier(s ABISupplier) Option {
	return func(r *Registry) { r.supplier = s }
}

// NewRegistry builds a registry over the given interpreters. Registration
// order is significant only when two interpreters claim the same address: the
// last one wins.
func NewRegistry(interpreters []Interpreter, opts ...Option) *Registry {
	r := &Registry{
		interpreters: map[string]Interpreter{},
		dir:          contracts.Nouns(),
	}
	for _, opt := range opts {
		opt(r)
	}
	for _, in := range interpreters {
		r.register(in)
	}
	return r
}

func (r *Registry) register(in Interpreter) {
	addr := strings.ToLower(in.Address())
	if addr == "" {
		return
	}
	r.interpreters[addr] = in
}

// InterpreterFor returns the interpreter owning the context's target: the
// exact registered match, a fallback pre-seeded with the directory identity
// when the target is known by name, or the bare fallback.
func (r *Registry) InterpreterFor(c TxContext) Interpreter {
	if in, ok := r.interpreters[strings.ToLower(c.Target)]; ok {
		return in
	}
	if known, ok := r.dir.Lookup(c.Target); ok {
		return NewGenericNamed(r.dir, r.supplier, known.Name, known.Description)
	}
	return NewGeneric(r.dir, r.supplier)
}

// Interpret describes the transaction. It never fails; decode problems
// surface only as a less detailed result.
func (r *Registry) Interpret(c TxContext) *InterpretedTx {
	return r.InterpreterFor(c).Interpret(c)
}

// ExtractAddresses returns the addresses the transaction references that need
// off-chain name resolution, without requiring the full interpretation.
func (r *Registry) ExtractAddresses(c TxContext) []string {
	return r.InterpreterFor(c).ExtractAddresses(c)
}

// NounsInterpreters builds the full set of contract-specific interpreters
// over the given directory, in registration order.
func NounsInterpreters(dir *contracts.Directory) []Interpreter {
	return []Interpreter{
		NewTreasury(dir),
		NewDAOAdmin(dir),
		NewAuction(dir),
		NewToken(dir),
		NewDescriptor(dir),
		NewStreamFactory(dir),
		NewTokenBuyer(dir),
		NewRewards(dir),
		NewPayer(dir),
	}
}

// NewNounsRegistry is the standard construction: every Nouns interpreter over
// the compiled-in mainnet directory.
func NewNounsRegistry(opts ...Option) *Registry {
	r := NewRegistry(nil, opts...)
	for _, in := range NounsInterpreters(r.dir) {
		r.register(in)
	}
	return r
}
