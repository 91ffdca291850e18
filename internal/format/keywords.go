package format

var keywords = toSet(
	"ADD", "ALL", "ALTER", "AND", "ANY", "AS", "ASC", "BEGIN", "BETWEEN", "BY",
	"CASCADE", "CASE", "CHECK", "COLUMN", "COMMIT", "CONSTRAINT", "CREATE",
	"CROSS", "DATABASE", "DEFAULT", "DELETE", "DESC", "DISTINCT", "DROP", "ELSE",
	"END", "EXCEPT", "EXISTS", "FALSE", "FETCH", "FIRST", "FOR", "FOREIGN", "FROM",
	"FULL", "GRANT", "GROUP", "HAVING", "IF", "ILIKE", "IN", "INDEX", "INNER",
	"INSERT", "INTERSECT", "INTO", "IS", "JOIN", "KEY", "LATERAL", "LEFT", "LIKE",
	"LIMIT", "NATURAL", "NEXT", "NOT", "NULL", "OFFSET", "ON", "ONLY", "OR",
	"ORDER", "OUTER", "OVER", "PARTITION", "PRIMARY", "REFERENCES", "RETURNING",
	"REVOKE", "RIGHT", "ROLLBACK", "ROW", "ROWS", "SELECT", "SET", "TABLE",
	"THEN", "TO", "TRANSACTION", "TRUE", "TRUNCATE", "UNION", "UNIQUE", "UPDATE",
	"USING", "VALUES", "VIEW", "WHEN", "WHERE", "WINDOW", "WITH",
)

// operandKeywords can stand on the left of a binary operator.
var operandKeywords = toSet("NULL", "TRUE", "FALSE", "END")

// clauseKeywords start a new line when reindenting.
var clauseKeywords = toSet(
	"SELECT", "FROM", "WHERE", "GROUP", "ORDER", "HAVING", "LIMIT", "OFFSET",
	"UNION", "INTERSECT", "EXCEPT", "VALUES", "SET", "RETURNING", "INSERT",
	"UPDATE", "DELETE", "WINDOW", "JOIN",
)

var joinModifiers = toSet("LEFT", "RIGHT", "INNER", "OUTER", "FULL", "CROSS", "NATURAL")

// listClauses break after each comma when reindenting.
var listClauses = toSet("SELECT", "GROUP", "ORDER")

// conditionClauses break before AND / OR when reindenting.
var conditionClauses = toSet("WHERE", "HAVING", "JOIN")

func toSet(words ...string) map[string]bool {
	m := make(map[string]bool, len(words))
	for _, w := range words {
		m[w] = true
	}
	return m
}
