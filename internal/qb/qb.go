// Package qb builds parameterized SQL statements from ordered
// column/value associations.
//
// It covers exactly the statement shapes the registry needs:
// SELECT with an optional column projection, INSERT, UPDATE, and
// DELETE, all filtered by equality predicates combined with AND.
//
// Values are always bound through `?` placeholders so the driver does
// the quoting; table and column names are interpolated directly into
// the statement text. Identifiers are trusted inputs: they come from
// resource descriptors and from callers that own the schema, never
// from request payload values.
package qb

import "strings"

// Pair associates a column name with a scalar value.
type Pair struct {
	Column string
	Value  any
}

// Pairs is an ordered association list of column/value pairs. It stands
// in wherever iteration order decides placeholder order: columns render
// in insertion order, and Set on an existing column replaces the value
// without moving the pair.
type Pairs []Pair

// Set assigns value to column, appending a new pair when the column is
// not present yet and replacing the value in place when it is.
func (p *Pairs) Set(column string, value any) {
	for i := range *p {
		if (*p)[i].Column == column {
			(*p)[i].Value = value
			return
		}
	}
	*p = append(*p, Pair{Column: column, Value: value})
}

// Get returns the value for column and whether the column is present.
func (p Pairs) Get(column string) (any, bool) {
	for _, pair := range p {
		if pair.Column == column {
			return pair.Value, true
		}
	}
	return nil, false
}

// Has reports whether column is present.
func (p Pairs) Has(column string) bool {
	_, ok := p.Get(column)
	return ok
}

// Delete removes column and reports whether it was present. The
// remaining pairs keep their relative order.
func (p *Pairs) Delete(column string) bool {
	for i := range *p {
		if (*p)[i].Column == column {
			*p = append((*p)[:i], (*p)[i+1:]...)
			return true
		}
	}
	return false
}

// Columns returns the column names in pair order.
func (p Pairs) Columns() []string {
	columns := make([]string, len(p))
	for i, pair := range p {
		columns[i] = pair.Column
	}
	return columns
}

// Values returns the values in pair order.
func (p Pairs) Values() []any {
	values := make([]any, len(p))
	for i, pair := range p {
		values[i] = pair.Value
	}
	return values
}

// Statement is a parameterized query together with the arguments bound
// to its placeholders. The number of placeholders in Query equals
// len(Args), and argument order matches placeholder order. A Statement
// is built once, executed once, and never mutated.
type Statement struct {
	Query string
	Args  []any
}

// BuildSelect builds a SELECT over table. An empty columns slice
// selects every column (`*`); filters become an ANDed WHERE clause in
// pair order, or no clause at all when empty. An empty table name
// yields a statement the database will reject; the builder does not
// check identifiers.
func BuildSelect(table string, columns []string, filters Pairs) Statement {
	projection := "*"
	if len(columns) > 0 {
		projection = strings.Join(columns, ", ")
	}
	where, args := whereClause(filters)
	return Statement{
		Query: "SELECT " + projection + " FROM " + table + where,
		Args:  args,
	}
}

// BuildInsert builds an INSERT of one row into table. Columns and
// placeholders render in pair order and the arguments follow the same
// order. An empty values list degenerates to `INSERT INTO t () VALUES ()`,
// which the database rejects; callers avoid it.
func BuildInsert(table string, values Pairs) Statement {
	placeholders := make([]string, len(values))
	for i := range values {
		placeholders[i] = "?"
	}
	return Statement{
		Query: "INSERT INTO " + table +
			" (" + strings.Join(values.Columns(), ", ") + ")" +
			" VALUES (" + strings.Join(placeholders, ", ") + ")",
		Args: values.Values(),
	}
}

// BuildUpdate builds an UPDATE of table. SET assignments render in
// value order, the WHERE clause in filter order, and the arguments are
// the values followed by the filters. Empty values degenerate to a bare
// SET; empty filters update every row.
func BuildUpdate(table string, values Pairs, filters Pairs) Statement {
	assignments := make([]string, len(values))
	for i, pair := range values {
		assignments[i] = pair.Column + " = ?"
	}
	where, whereArgs := whereClause(filters)
	return Statement{
		Query: "UPDATE " + table + " SET " + strings.Join(assignments, ", ") + where,
		Args:  append(values.Values(), whereArgs...),
	}
}

// BuildDelete builds a DELETE from table. Empty filters produce a
// statement with no WHERE clause that deletes every row in the table;
// that is intended behavior, and guarding against unintended full-table
// deletes is the caller's job, not the builder's.
func BuildDelete(table string, filters Pairs) Statement {
	where, args := whereClause(filters)
	return Statement{
		Query: "DELETE FROM " + table + where,
		Args:  args,
	}
}

// whereClause renders the ANDed equality predicates in pair order. An
// empty filter set yields no clause and no arguments.
func whereClause(filters Pairs) (string, []any) {
	if len(filters) == 0 {
		return "", []any{}
	}
	predicates := make([]string, len(filters))
	for i, pair := range filters {
		predicates[i] = pair.Column + " = ?"
	}
	return " WHERE " + strings.Join(predicates, " AND "), filters.Values()
}
