package validator

import (
	"regexp"
	"strings"

	"github.com/schemalens/schemalens/schemamodel"
)

var tokenRe = regexp.MustCompile(`[a-z0-9]+`)

// stopWords are discarded during tokenization alongside tokens of length <= 2.
var stopWords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "and": {}, "or": {}, "but": {},
	"in": {}, "on": {}, "at": {}, "to": {}, "for": {},
}

// SemanticScore computes the Jaccard similarity of the lexical token sets of
// two tables, drawn from column names and non-empty descriptions. The score
// is advisory only: it drives warnings, never errors. Symmetric by
// construction; 0.0 when either token set is empty or a table is missing.
func (v *Validator) SemanticScore(table1, table2 string) float64 {
	t1, ok := v.model.Table(table1)
	if !ok {
		return 0.0
	}

	t2, ok := v.model.Table(table2)
	if !ok {
		return 0.0
	}

	tokens1 := tableTokens(t1)
	tokens2 := tableTokens(t2)

	if len(tokens1) == 0 || len(tokens2) == 0 {
		return 0.0
	}

	intersection := 0
	for token := range tokens1 {
		if _, ok := tokens2[token]; ok {
			intersection++
		}
	}

	union := len(tokens1) + len(tokens2) - intersection

	return float64(intersection) / float64(union)
}

func tableTokens(table *schemamodel.Table) map[string]struct{} {
	tokens := make(map[string]struct{})

	for _, col := range table.Columns {
		tokenize(col.Name, tokens)

		if col.Description != "" {
			tokenize(col.Description, tokens)
		}
	}

	return tokens
}

// tokenize lower-cases text, splits on non-alphanumeric boundaries, and adds
// meaningful tokens to the set.
func tokenize(text string, tokens map[string]struct{}) {
	for _, token := range tokenRe.FindAllString(strings.ToLower(text), -1) {
		if len(token) <= 2 {
			continue
		}

		if _, stop := stopWords[token]; stop {
			continue
		}

		tokens[token] = struct{}{}
	}
}
