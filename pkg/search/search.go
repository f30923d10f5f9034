// Package search ranks catalog entries against a free-form query
// using fzf's fuzzy matching algorithm.
//
// The scope is bounded to the most recently updated entries. At
// catalog scale an in-memory match over that window is fast enough;
// a dedicated search engine would be overkill.
package search

import (
	"context"
	"sort"
	"strings"
	"unicode"

	"github.com/junegunn/fzf/src/algo"
	"github.com/junegunn/fzf/src/util"
	"github.com/lumendata/govcat/pkg/domain"
	kdbcontract "github.com/lumendata/govcat/pkg/domain/contract/db"
	kdbproduct "github.com/lumendata/govcat/pkg/domain/product/db"
)

// ScopeLimit bounds how many recent entries are considered per query.
const ScopeLimit = 1000

func init() {
	algo.Init("default")
}

type Interface interface {
	// Contracts returns contract summaries matching query, best match
	// first. An empty query returns the scope in recency order.
	Contracts(ctx context.Context, query string) ([]domain.ContractSummary, error)

	// Products is the product counterpart of Contracts.
	Products(ctx context.Context, query string) ([]domain.ProductSummary, error)
}

type impl struct {
	contracts kdbcontract.ContractInterface
	products  kdbproduct.ProductInterface
}

func New(contracts kdbcontract.ContractInterface, products kdbproduct.ProductInterface) Interface {
	return &impl{contracts: contracts, products: products}
}

func (i *impl) Contracts(ctx context.Context, query string) ([]domain.ContractSummary, error) {
	scope, _, err := i.contracts.List(ctx, 1, ScopeLimit)
	if err != nil {
		return nil, err
	}
	return rank(scope, query, func(c domain.ContractSummary) []*string {
		return []*string{c.Name, c.Domain, c.DataProduct, c.DescriptionPurpose}
	}), nil
}

func (i *impl) Products(ctx context.Context, query string) ([]domain.ProductSummary, error) {
	scope, _, err := i.products.List(ctx, 1, ScopeLimit)
	if err != nil {
		return nil, err
	}
	return rank(scope, query, func(p domain.ProductSummary) []*string {
		return []*string{p.Name, p.Domain, p.DescriptionPurpose}
	}), nil
}

type scored[T any] struct {
	entry T
	score int
}

// rank filters entries to those matching query and sorts them by
// score, best first. Ties keep the incoming recency order.
//
// When the fuzzy pass finds nothing, the query is retried word by word
// within a bounded edit distance, so transposed or dropped letters
// still find entries. fzf matches subsequences only and a transposition
// breaks the subsequence.
func rank[T any](entries []T, query string, fieldsOf func(T) []*string) []T {
	pattern := []rune(strings.ToLower(strings.TrimSpace(query)))
	if len(pattern) == 0 {
		return entries
	}

	matched := fuzzyPass(entries, pattern, fieldsOf)
	if len(matched) == 0 {
		matched = approxPass(entries, strings.Fields(string(pattern)), fieldsOf)
	}

	sort.SliceStable(matched, func(a, b int) bool {
		return matched[b].score < matched[a].score
	})

	out := make([]T, 0, len(matched))
	for _, m := range matched {
		out = append(out, m.entry)
	}
	return out
}

func fuzzyPass[T any](entries []T, pattern []rune, fieldsOf func(T) []*string) []scored[T] {
	slab := util.MakeSlab(100*1024, 2048)

	matched := []scored[T]{}
	for _, entry := range entries {
		best := 0
		for _, field := range fieldsOf(entry) {
			if field == nil || *field == "" {
				continue
			}
			if s := matchScore(*field, pattern, slab); best < s {
				best = s
			}
		}
		if 0 < best {
			matched = append(matched, scored[T]{entry: entry, score: best})
		}
	}
	return matched
}

func matchScore(text string, pattern []rune, slab *util.Slab) int {
	chars := util.ToChars([]byte(text))
	result, _ := algo.FuzzyMatchV2(false, true, true, &chars, pattern, false, slab)
	if result.Score < 0 {
		return 0
	}
	return result.Score
}

// approxPass matches each query token against the words of an entry's
// fields by edit distance. Every token must land within its budget of
// some word; entries with fewer total edits rank higher.
func approxPass[T any](entries []T, tokens []string, fieldsOf func(T) []*string) []scored[T] {
	matched := []scored[T]{}
	for _, entry := range entries {
		words := fieldWords(fieldsOf(entry))

		total := 0
		hit := true
		for _, token := range tokens {
			runes := []rune(token)
			budget := distanceBudget(len(runes))

			best := budget + 1
			for _, word := range words {
				if d := editDistance(runes, word); d < best {
					best = d
				}
			}
			if budget < best {
				hit = false
				break
			}
			total += best
		}
		if hit {
			matched = append(matched, scored[T]{entry: entry, score: -total})
		}
	}
	return matched
}

// distanceBudget is how many edits a query token may be away from a
// word and still count. Short tokens get little slack so that they do
// not match everything.
func distanceBudget(n int) int {
	budget := n/4 + 1
	if 3 < budget {
		budget = 3
	}
	return budget
}

func fieldWords(fields []*string) [][]rune {
	words := [][]rune{}
	for _, field := range fields {
		if field == nil {
			continue
		}
		split := strings.FieldsFunc(strings.ToLower(*field), func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		})
		for _, w := range split {
			words = append(words, []rune(w))
		}
	}
	return words
}

// editDistance is the Levenshtein distance between a and b, computed
// with a single reused row of the distance matrix.
func editDistance(a, b []rune) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}
	if len(b) < len(a) {
		a, b = b, a
	}

	previous := make([]int, len(a)+1)
	for i := range previous {
		previous[i] = i
	}

	current := make([]int, len(a)+1)
	for j := 1; j <= len(b); j++ {
		current[0] = j
		for i := 1; i <= len(a); i++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}

			deletion := previous[i] + 1
			insertion := current[i-1] + 1
			substitution := previous[i-1] + cost

			current[i] = min(deletion, min(insertion, substitution))
		}
		previous, current = current, previous
	}

	return previous[len(a)]
}
