package validator

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/schemalens/schemalens"
	"github.com/schemalens/schemalens/schemamodel"
)

// Options controls optional validation behavior.
type Options struct {
	// MinSemanticScore is the threshold below which a semantic relevance
	// warning is emitted for a join.
	MinSemanticScore float64
	// Semantic enables the advisory semantic relevance check.
	Semantic bool
}

// OptionsFromConfig derives validator options from application configuration.
func OptionsFromConfig(config *schemalens.Config) Options {
	return Options{
		MinSemanticScore: config.Validation.MinSemanticScore,
		Semantic:         !config.Validation.DisableSemantic,
	}
}

// Validator runs a fixed, ordered sequence of checks against view
// specifications. It is stateless apart from the read-only schema model and
// safe for concurrent use.
type Validator struct {
	model *schemamodel.Model
	opts  Options
}

// New creates a validator bound to a schema model.
func New(model *schemamodel.Model, opts Options) *Validator {
	return &Validator{model: model, opts: opts}
}

var qualifiedRefRe = regexp.MustCompile(`(\w+)\.(\w+)`)

var orderSuffixRe = regexp.MustCompile(`(?i)\s+(DESC|ASC)$`)

// Validate runs all checks against one view specification and returns the
// verdict. Errors are accumulated so the caller sees every violation at
// once; only a missing base table short-circuits, since no later check is
// meaningful without it. Warnings never affect the verdict.
func (v *Validator) Validate(view *schemalens.ViewDefinition) schemalens.ValidationResult {
	result := schemalens.ValidationResult{ViewName: view.Name}

	baseTable := tableName(view.Query.From)

	if !v.model.HasTable(baseTable) {
		result.Errors = append(result.Errors,
			fmt.Sprintf("Base table '%s' does not exist in schema", baseTable))

		return result
	}

	// Tables available for reference resolution: the base table plus every
	// join target, in declared order. Aliases are not tracked; qualifiers
	// resolve against literal table names only.
	tablesInQuery := []string{baseTable}

	for i, join := range view.Query.Joins {
		joinNum := i + 1
		joinTable := tableName(join.Table)
		tablesInQuery = appendTable(tablesInQuery, joinTable)

		if !v.model.HasTable(joinTable) {
			result.Errors = append(result.Errors,
				fmt.Sprintf("Join #%d: Table '%s' does not exist in schema", joinNum, joinTable))

			continue
		}

		joinErrors, joinWarnings := v.checkJoin(baseTable, joinTable, join, joinNum)
		result.Errors = append(result.Errors, joinErrors...)
		result.Warnings = append(result.Warnings, joinWarnings...)

		if v.opts.Semantic {
			result.Warnings = append(result.Warnings,
				v.checkSemanticRelevance(baseTable, joinTable, joinNum)...)
		}
	}

	result.Errors = append(result.Errors,
		v.checkSelectList(view.Query.Select, tablesInQuery)...)
	result.Errors = append(result.Errors,
		v.checkConditions(view.Query.Where, tablesInQuery, "WHERE")...)
	result.Errors = append(result.Errors,
		v.checkColumnList(view.Query.GroupBy, tablesInQuery, "GROUP BY")...)
	result.Errors = append(result.Errors,
		v.checkConditions(view.Query.Having, tablesInQuery, "HAVING")...)
	result.Errors = append(result.Errors,
		v.checkColumnList(view.Query.OrderBy, tablesInQuery, "ORDER BY")...)

	if len(result.Errors) == 0 {
		sql, err := Compile(&view.Query)
		if err != nil {
			result.Errors = append(result.Errors,
				fmt.Sprintf("SQL compilation failed: %v", err))
		} else {
			result.SQL = sql
		}
	}

	result.IsValid = len(result.Errors) == 0

	return result
}

// checkJoin validates relational reachability and the shape of the ON
// condition. Reachability is existence-only: the path's hops are not
// required to match the literal ON condition.
func (v *Validator) checkJoin(baseTable, joinTable string, join schemalens.JoinSpec, joinNum int) ([]string, []string) {
	var errors, warnings []string

	if _, ok := v.model.JoinPath(baseTable, joinTable); !ok {
		errors = append(errors,
			fmt.Sprintf("Join #%d: No foreign key path exists between '%s' and '%s'",
				joinNum, baseTable, joinTable))

		return errors, warnings
	}

	// The ON condition must be a single equality
	sides := strings.Split(join.On, "=")
	if len(sides) != 2 {
		errors = append(errors,
			fmt.Sprintf("Join #%d: Invalid join condition format: '%s'. "+
				"Expected format: 'table.column = table.column'", joinNum, join.On))

		return errors, warnings
	}

	left := strings.TrimSpace(sides[0])
	right := strings.TrimSpace(sides[1])

	if len(strings.Split(left, ".")) != 2 || len(strings.Split(right, ".")) != 2 {
		warnings = append(warnings,
			fmt.Sprintf("Join #%d: Join condition should use qualified names "+
				"(table.column = table.column)", joinNum))
	}

	return errors, warnings
}

// checkSemanticRelevance emits an advisory warning when two joined tables
// share few lexical tokens. Never an error.
func (v *Validator) checkSemanticRelevance(baseTable, joinTable string, joinNum int) []string {
	score := v.SemanticScore(baseTable, joinTable)
	if score < v.opts.MinSemanticScore {
		return []string{fmt.Sprintf(
			"Join #%d: Low semantic similarity (%.3f) between '%s' and '%s'. "+
				"Tables may not be semantically related.",
			joinNum, score, baseTable, joinTable)}
	}

	return nil
}

// checkSelectList validates every qualified reference in the select list.
// Unqualified expressions cannot be resolved without alias tracking and are
// not checked.
func (v *Validator) checkSelectList(selectList, tables []string) []string {
	var errors []string

	for _, expr := range selectList {
		if !strings.Contains(expr, ".") {
			continue
		}

		parts := strings.Split(expr, ".")
		qualifier := strings.TrimSpace(parts[0])
		column := strings.TrimSpace(parts[1])

		// Drop a trailing alias ("col AS alias" or "col alias")
		if fields := strings.Fields(column); len(fields) > 0 {
			column = fields[0]
		}

		errors = append(errors, v.resolveReference(qualifier, column, tables, "SELECT")...)
	}

	return errors
}

// checkConditions scans condition strings for table.column references and
// validates each one.
func (v *Validator) checkConditions(conditions, tables []string, clause string) []string {
	var errors []string

	for _, condition := range conditions {
		for _, match := range qualifiedRefRe.FindAllStringSubmatch(condition, -1) {
			errors = append(errors, v.resolveReference(match[1], match[2], tables, clause)...)
		}
	}

	return errors
}

// checkColumnList validates GROUP BY / ORDER BY entries, ignoring a trailing
// ASC/DESC token.
func (v *Validator) checkColumnList(columns, tables []string, clause string) []string {
	var errors []string

	for _, expr := range columns {
		expr = strings.TrimSpace(orderSuffixRe.ReplaceAllString(expr, ""))
		if !strings.Contains(expr, ".") {
			continue
		}

		parts := strings.Split(expr, ".")
		errors = append(errors, v.resolveReference(
			strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]), tables, clause)...)
	}

	return errors
}

// resolveReference checks a qualified table.column reference against the
// tables available in the query. The qualifier must match one of them
// case-insensitively; aliases are deliberately not distinguished from
// literal table names.
func (v *Validator) resolveReference(qualifier, column string, tables []string, clause string) []string {
	for _, table := range tables {
		if !strings.EqualFold(table, qualifier) {
			continue
		}

		if !v.model.HasColumn(table, column) {
			return []string{fmt.Sprintf("%s: Column '%s' does not exist in table '%s'",
				clause, column, table)}
		}

		return nil
	}

	return []string{fmt.Sprintf("%s: Unknown table reference '%s'", clause, qualifier)}
}

// tableName extracts the table name from a "table" or "table alias" reference.
func tableName(tableRef string) string {
	fields := strings.Fields(tableRef)
	if len(fields) == 0 {
		return ""
	}

	return fields[0]
}

func appendTable(tables []string, name string) []string {
	for _, t := range tables {
		if t == name {
			return tables
		}
	}

	return append(tables, name)
}
