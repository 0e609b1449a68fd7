package contracts

import (
	"fmt"
	"strings"

	"github.com/blevesearch/bleve"
	"github.com/blevesearch/bleve/analysis/lang/en"
	"github.com/blevesearch/bleve/mapping"
	"github.com/sahilm/fuzzy"
)

// fuzzySource adapts a contract list to the fuzzy matcher. Spaces in names
// are folded to underscores so multi-word names match as a single token.
type fuzzySource []Contract

func (s fuzzySource) Len() int {
	return len(s)
}

func (s fuzzySource) String(i int) string {
	return fmt.Sprintf("%s_%s", strings.Replace(s[i].Name, " ", "_", -1), s[i].Address)
}

// Search finds directory entries matching query. An exact address lookup
// takes priority; otherwise the query is fuzzy-matched against contract
// names, best matches first, capped at 10 results.
func (d *Directory) Search(query string) []Contract {
	if c, ok := d.Lookup(query); ok {
		return []Contract{c}
	}
	source := fuzzySource(d.All())
	matches := fuzzy.FindFrom(strings.Replace(query, " ", "_", -1), source)
	result := []Contract{}
	for i := 0; i < 10 && i < len(matches); i++ {
		result = append(result, source[matches[i].Index])
	}
	return result
}

// Index is a bleve full-text index over a Directory, for free-form queries
// ("payment stream", "auction reserve") where fuzzy name matching is too
// literal. The index lives in memory and is rebuilt per process; the
// directory is small enough that this costs nothing noticeable.
type Index struct {
	idx bleve.Index
	dir *Directory
}

type indexedContract struct {
	Address     string `json:"address"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

func indexMapping() *mapping.IndexMappingImpl {
	textField := bleve.NewTextFieldMapping()
	textField.Analyzer = en.AnalyzerName

	doc := bleve.NewDocumentMapping()
	doc.AddFieldMappingsAt("name", textField)
	doc.AddFieldMappingsAt("description", textField)

	m := bleve.NewIndexMapping()
	m.DefaultMapping = doc
	return m
}

// NewIndex builds an in-memory full-text index over the directory.
func NewIndex(d *Directory) (*Index, error) {
	idx, err := bleve.NewMemOnly(indexMapping())
	if err != nil {
		return nil, fmt.Errorf("creating contract index: %w", err)
	}
	batch := idx.NewBatch()
	for _, c := range d.All() {
		err = batch.Index(strings.ToLower(c.Address), indexedContract{
			Address:     c.Address,
			Name:        c.Name,
			Description: c.Description,
		})
		if err != nil {
			return nil, fmt.Errorf("indexing %s: %w", c.Address, err)
		}
	}
	if err = idx.Batch(batch); err != nil {
		return nil, fmt.Errorf("committing contract index: %w", err)
	}
	return &Index{idx: idx, dir: d}, nil
}

// Query runs a full-text match query against indexed names and descriptions,
// returning up to limit contracts ranked by relevance.
func (i *Index) Query(query string, limit int) ([]Contract, error) {
	if limit <= 0 {
		limit = 10
	}
	q := bleve.NewMatchQuery(query)
	req := bleve.NewSearchRequestOptions(q, limit, 0, false)
	res, err := i.idx.Search(req)
	if err != nil {
		return nil, fmt.Errorf("searching contracts: %w", err)
	}
	var out []Contract
	for _, hit := range res.Hits {
		if c, ok := i.dir.Lookup(hit.ID); ok {
			out = append(out, c)
		}
	}
	return out, nil
}

// Close releases the underlying index resources.
func (i *Index) Close() error {
	return i.idx.Close()
}
