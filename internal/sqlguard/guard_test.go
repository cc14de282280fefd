package sqlguard

import (
	"strings"
	"testing"
)

func TestValidate_StackedStatements(t *testing.T) {
	queries := []string{
		"SELECT 1; DROP TABLE users",
		"select 1 ; select 2",
		"INSERT INTO t VALUES (1); INSERT INTO t VALUES (2)",
	}

	for _, query := range queries {
		for _, allowWrite := range []bool{false, true} {
			cls := Validate(query, allowWrite)
			if cls.Allowed {
				t.Errorf("Validate(%q, %v): expected denial", query, allowWrite)
			}
			if cls.Verdict != VerdictDenied {
				t.Errorf("Validate(%q, %v): verdict %s, want %s", query, allowWrite, cls.Verdict, VerdictDenied)
			}
			if !strings.Contains(cls.Reason, "multiple statements detected") {
				t.Errorf("Validate(%q, %v): reason %q missing 'multiple statements detected'", query, allowWrite, cls.Reason)
			}
		}
	}
}

func TestValidate_Catastrophic(t *testing.T) {
	queries := []string{
		"DROP DATABASE mysql",
		"drop schema public",
		"DROP TABLESPACE ts1",
		"SHUTDOWN",
		"KILL 42",
		"SELECT LOAD_FILE('/etc/passwd')",
		"SELECT * FROM users INTO OUTFILE '/tmp/x'",
		"SELECT 'x' INTO DUMPFILE '/tmp/x'",
		"LOAD DATA LOCAL INFILE '/etc/passwd' INTO TABLE t",
		"\\! rm -rf /",
		"COPY t FROM PROGRAM 'ls'",
		"EXEC xp_cmdshell 'dir'",
		"GRANT ALL PRIVILEGES ON *.* TO 'x'@'%'",
		"CREATE USER 'evil'@'%' IDENTIFIED BY 'pw'",
		"SET GLOBAL max_connections = 1",
		"SET SESSION sql_mode = ''",
		"SET @@global.general_log = 'ON'",
		"UNION SELECT username, password FROM users",
		"SELECT @@datadir",
		"SELECT @@secure_file_priv",
		"SHOW GRANTS FOR CURRENT_USER",
	}

	for _, query := range queries {
		for _, allowWrite := range []bool{false, true} {
			cls := Validate(query, allowWrite)
			if cls.Allowed {
				t.Errorf("Validate(%q, %v): expected catastrophic denial", query, allowWrite)
				continue
			}
			if cls.Verdict != VerdictCatastrophic {
				t.Errorf("Validate(%q, %v): verdict %s, want %s", query, allowWrite, cls.Verdict, VerdictCatastrophic)
			}
			if !strings.Contains(cls.Reason, "catastrophic") {
				t.Errorf("Validate(%q, %v): reason %q missing 'catastrophic'", query, allowWrite, cls.Reason)
			}
		}
	}
}

func TestValidate_ReadOnlyWhitelist(t *testing.T) {
	queries := []string{
		"SELECT 1 AS x",
		"  select   1  ",
		"SeLeCt 1",
		"-- evil\nSELECT 1",
		"/* x */ SELECT 1",
		"SELECT * FROM information_schema.tables",
		"SELECT * FROM pg_catalog.pg_tables",
		"SHOW TABLES",
		"show full tables",
		"SHOW DATABASES",
		"SHOW SCHEMAS",
		"SHOW COLUMNS FROM users",
		"SHOW INDEX FROM users",
		"SHOW TABLE STATUS",
		"SHOW GLOBAL STATUS",
		"SHOW VARIABLES LIKE 'version%'",
		"SHOW FULL PROCESSLIST",
		"SHOW ENGINES",
		"SHOW STORAGE ENGINES",
		"SHOW CHARACTER SET",
		"SHOW CHARSET",
		"SHOW COLLATION",
		"SHOW CREATE TABLE users",
		"SHOW CREATE VIEW v",
		"SHOW PRIVILEGES",
		"DESCRIBE users",
		"DESC users",
		"EXPLAIN SELECT * FROM users",
		"EXPLAIN ANALYZE SELECT * FROM users",
		"EXPLAIN FORMAT=JSON SELECT 1",
		"\\dt",
		"\\l",
		"\\d users",
		"\\dn",
		"\\df",
		"\\du",
		"\\timing",
		"WITH x AS (SELECT 1) SELECT * FROM x",
	}

	for _, query := range queries {
		cls := Validate(query, false)
		if !cls.Allowed {
			t.Errorf("Validate(%q, false): denied with reason %q, want allowed", query, cls.Reason)
			continue
		}
		if cls.Verdict != VerdictAllowed {
			t.Errorf("Validate(%q, false): verdict %s, want %s", query, cls.Verdict, VerdictAllowed)
		}
		if cls.Reason != "" {
			t.Errorf("Validate(%q, false): allowed classification carries reason %q", query, cls.Reason)
		}
	}
}

func TestValidate_WriteGated(t *testing.T) {
	queries := []string{
		"INSERT INTO t VALUES (1)",
		"UPDATE t SET a = 1",
		"DELETE FROM t WHERE id = 1",
		"CREATE TABLE t (id INT)",
		"ALTER TABLE t ADD COLUMN b INT",
		"DROP TABLE t",
		"TRUNCATE TABLE t",
	}

	for _, query := range queries {
		readOnly := Validate(query, false)
		if readOnly.Allowed {
			t.Errorf("Validate(%q, false): expected denial", query)
		} else {
			if readOnly.Verdict != VerdictDenied {
				t.Errorf("Validate(%q, false): verdict %s, want %s", query, readOnly.Verdict, VerdictDenied)
			}
			if !strings.Contains(readOnly.Reason, "whitelist") {
				t.Errorf("Validate(%q, false): reason %q missing 'whitelist'", query, readOnly.Reason)
			}
			if !strings.Contains(readOnly.Reason, "write") {
				t.Errorf("Validate(%q, false): reason %q should mention write mode", query, readOnly.Reason)
			}
		}

		write := Validate(query, true)
		if !write.Allowed {
			t.Errorf("Validate(%q, true): denied with reason %q, want allowed", query, write.Reason)
		}
	}
}

func TestValidate_CTESmuggling(t *testing.T) {
	cls := Validate("WITH x AS (DELETE FROM t RETURNING *) SELECT * FROM x", false)
	if cls.Allowed {
		t.Error("expected CTE with embedded DELETE to be denied in read-only mode")
	}
	if !strings.Contains(cls.Reason, "whitelist") {
		t.Errorf("reason %q missing 'whitelist'", cls.Reason)
	}

	// The deny vocabulary is a substring scan: a harmless mention of a
	// denied keyword inside the CTE is over-blocked on purpose.
	cls = Validate("WITH x AS (SELECT delete_flag FROM t) SELECT * FROM x", false)
	if cls.Allowed {
		t.Error("expected conservative denial for CTE mentioning a deny keyword")
	}

	// A CTE that never reaches a SELECT is not whitelisted either.
	cls = Validate("WITH x AS (TABLE t) TABLE x", false)
	if cls.Allowed {
		t.Error("expected denial for WITH without SELECT")
	}
}

func TestValidate_EmptyInput(t *testing.T) {
	for _, query := range []string{"", "   ", "-- just a comment", "/* only a comment */"} {
		cls := Validate(query, false)
		if !cls.Allowed {
			t.Errorf("Validate(%q, false): denied with reason %q, want vacuously allowed", query, cls.Reason)
		}
	}
}

func TestValidate_NeverPanics(t *testing.T) {
	inputs := []string{
		"\x00\x01\x02\xff",
		strings.Repeat("a", 1<<20),
		strings.Repeat(";", 10000),
		"/*",
		"--",
		"\\",
	}

	for _, input := range inputs {
		for _, allowWrite := range []bool{false, true} {
			// Classification content is irrelevant here; Validate must
			// return for any input.
			_ = Validate(input, allowWrite)
		}
	}
}

func TestValidate_Deterministic(t *testing.T) {
	query := "SeLeCt 1"
	first := Validate(query, false)
	for range 5 {
		if got := Validate(query, false); got != first {
			t.Fatalf("Validate not deterministic: %+v != %+v", got, first)
		}
	}
}

func TestNewGuard_ExtraDenyPatterns(t *testing.T) {
	guard, err := NewGuard(`^TRUNCATE\b`)
	if err != nil {
		t.Fatalf("NewGuard() failed: %v", err)
	}

	// The extra pattern joins the catastrophic table: blocked in both modes.
	for _, allowWrite := range []bool{false, true} {
		cls := guard.Validate("TRUNCATE TABLE t", allowWrite)
		if cls.Allowed {
			t.Errorf("expected extra deny pattern to block, allowWrite=%v", allowWrite)
		}
		if cls.Verdict != VerdictCatastrophic {
			t.Errorf("verdict %s, want %s", cls.Verdict, VerdictCatastrophic)
		}
	}

	// Built-in rules still apply.
	if cls := guard.Validate("SELECT 1", false); !cls.Allowed {
		t.Errorf("SELECT denied by guard with extra patterns: %q", cls.Reason)
	}
}

func TestNewGuard_InvalidPattern(t *testing.T) {
	if _, err := NewGuard(`[`); err == nil {
		t.Error("expected error for invalid deny pattern")
	}
}
