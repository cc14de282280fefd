package sqlguard

import "regexp"

// denyRule pairs a pattern with the category named in the denial reason.
// All patterns are written against the normalized (upper-cased) statement.
type denyRule struct {
	pattern  *regexp.Regexp
	category string
}

// catastrophicRules are evaluated before the whitelist and apply in both
// read-only and write mode. First match wins.
var catastrophicRules = []denyRule{
	{regexp.MustCompile(`^DROP\s+(DATABASE|SCHEMA|TABLESPACE)\b`), "drops an entire database, schema, or tablespace"},
	{regexp.MustCompile(`^SHUTDOWN\b`), "shuts down the database server"},
	{regexp.MustCompile(`^KILL\b`), "kills a server connection or process"},
	{regexp.MustCompile(`\bLOAD_FILE\s*\(`), "reads files from the server filesystem"},
	{regexp.MustCompile(`\bINTO\s+(OUT|DUMP)FILE\b`), "writes query results to the server filesystem"},
	{regexp.MustCompile(`\bLOAD\s+DATA\b`), "bulk-loads a local file into a table"},
	{regexp.MustCompile(`^\\!`), "invokes a shell from the database session"},
	{regexp.MustCompile(`\bCOPY\b.*\bPROGRAM\b`), "pipes data through a server-side program"},
	{regexp.MustCompile(`\bXP_CMDSHELL\b`), "invokes a shell from the database session"},
	{regexp.MustCompile(`^GRANT\b`), "grants database privileges"},
	{regexp.MustCompile(`^CREATE\s+USER\b`), "creates a database user"},
	{regexp.MustCompile(`^SET\s+(GLOBAL|SESSION)\b`), "mutates server or session configuration"},
	{regexp.MustCompile(`^SET\s+@@`), "mutates server or session configuration"},
	{regexp.MustCompile(`^UNION\s+SELECT\b`), "bare UNION SELECT is a known injection shape"},
	{regexp.MustCompile(`@@(DATADIR|BASEDIR|TMPDIR|SECURE_FILE_PRIV|PLUGIN_DIR)\b`), "discloses server filesystem layout"},
	{regexp.MustCompile(`^SHOW\s+GRANTS\b`), "discloses privilege assignments"},
}

// readOnlyRules is the whitelist consulted when write mode is off.
// Leading WITH is handled separately because of the deny-vocabulary scan.
var readOnlyRules = []*regexp.Regexp{
	regexp.MustCompile(`^SELECT\b`),
	regexp.MustCompile(`^SHOW\s+(FULL\s+)?TABLES\b`),
	regexp.MustCompile(`^SHOW\s+(DATABASES|SCHEMAS)\b`),
	regexp.MustCompile(`^SHOW\s+(FULL\s+)?COLUMNS\b`),
	regexp.MustCompile(`^SHOW\s+(INDEX|INDEXES|KEYS)\b`),
	regexp.MustCompile(`^SHOW\s+TABLE\s+STATUS\b`),
	regexp.MustCompile(`^SHOW\s+(GLOBAL\s+|SESSION\s+)?STATUS\b`),
	regexp.MustCompile(`^SHOW\s+(GLOBAL\s+|SESSION\s+)?VARIABLES\b`),
	regexp.MustCompile(`^SHOW\s+(FULL\s+)?PROCESSLIST\b`),
	regexp.MustCompile(`^SHOW\s+(STORAGE\s+)?ENGINES\b`),
	regexp.MustCompile(`^SHOW\s+(CHARACTER\s+SET|CHARSET)\b`),
	regexp.MustCompile(`^SHOW\s+COLLATION\b`),
	regexp.MustCompile(`^SHOW\s+CREATE\s+(TABLE|DATABASE|SCHEMA|VIEW)\b`),
	regexp.MustCompile(`^SHOW\s+(GRANTS|PRIVILEGES)\b`),
	regexp.MustCompile(`^(DESCRIBE|DESC)\b`),
	regexp.MustCompile(`^EXPLAIN\b`),
	regexp.MustCompile(`^\\(D[A-Z+]*|L\+?|Z\+?|TIMING)( |$)`),
	regexp.MustCompile(`^SELECT\b.*\bFROM\s+(INFORMATION_SCHEMA|PERFORMANCE_SCHEMA|MYSQL|PG_CATALOG|PG_)`),
}

// cteDenyKeywords is scanned as raw substrings anywhere after a leading WITH.
// This deliberately over-blocks (a column alias like DELETE_FLAG is denied):
// for a statement the whitelist cannot fully vouch for, a false denial is the
// acceptable failure mode.
var cteDenyKeywords = []string{
	"INSERT", "UPDATE", "DELETE", "CREATE", "DROP", "ALTER", "TRUNCATE",
	"REPLACE", "MERGE", "GRANT", "REVOKE", "SET", "RESET", "CALL", "EXECUTE",
	"COPY", "VACUUM", "CLUSTER", "REINDEX", "LOAD", "IMPORT", "FLUSH",
	"OPTIMIZE", "REPAIR", "CHECKSUM", "BEGIN", "COMMIT", "ROLLBACK",
	"SAVEPOINT", "START TRANSACTION", "RENAME", "COMMENT", "HANDLER",
	"LOCK", "UNLOCK",
}
