// Package sqlguard classifies SQL statements submitted by external agents
// before they reach a database connection. It is a fast, conservative,
// pattern-based gatekeeper, not a SQL parser: every statement is normalized
// and then evaluated against ordered rule tables (stacked-statement denial,
// catastrophic denial, read-only whitelist) with first match winning.
package sqlguard

import (
	"fmt"
	"regexp"
	"strings"
)

type Verdict string

const (
	VerdictAllowed      Verdict = "allowed"
	VerdictDenied       Verdict = "denied"
	VerdictCatastrophic Verdict = "catastrophic"
)

// Classification is the single output of Validate. Reason is empty when the
// statement is allowed. Callers pattern-match on reason content: ordinary
// denials contain "whitelist", catastrophic denials contain "catastrophic".
type Classification struct {
	Allowed bool    `json:"allowed"`
	Verdict Verdict `json:"verdict"`
	Reason  string  `json:"reason,omitempty"`
}

// Guard evaluates statements against the built-in rule tables plus any
// deployment-specific deny patterns. A Guard is immutable after construction
// and safe for concurrent use.
type Guard struct {
	catastrophic []denyRule
}

// NewGuard builds a Guard with the given extra deny patterns appended to the
// catastrophic table. Patterns are matched against the normalized
// (upper-cased) statement.
func NewGuard(extraDenyPatterns ...string) (*Guard, error) {
	rules := make([]denyRule, len(catastrophicRules), len(catastrophicRules)+len(extraDenyPatterns))
	copy(rules, catastrophicRules)
	for _, p := range extraDenyPatterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("invalid deny pattern %q: %w", p, err)
		}
		rules = append(rules, denyRule{pattern: re, category: "blocked by local policy"})
	}
	return &Guard{catastrophic: rules}, nil
}

var defaultGuard = &Guard{catastrophic: catastrophicRules}

// Validate classifies a statement using the built-in rule tables only.
func Validate(query string, allowWrite bool) Classification {
	return defaultGuard.Validate(query, allowWrite)
}

// Validate classifies one submitted query. It is a pure function of the
// query text and the write flag, never panics, and always returns a
// definite Classification.
func (g *Guard) Validate(query string, allowWrite bool) Classification {
	norm := Normalize(query)

	// Stage A: stacked statements are rejected outright, whatever the parts
	// look like in isolation and whatever the write mode is.
	if norm.Statements > 1 {
		return Classification{
			Verdict: VerdictDenied,
			Reason:  "multiple statements detected: stacked queries are rejected; submit a single whitelisted statement per call",
		}
	}

	// Empty or comment-only input has nothing to execute.
	if norm.Text == "" {
		return Classification{Allowed: true, Verdict: VerdictAllowed}
	}

	// Stage B: catastrophic operations are blocked in both modes.
	for _, r := range g.catastrophic {
		if r.pattern.MatchString(norm.Text) {
			return Classification{
				Verdict: VerdictCatastrophic,
				Reason: fmt.Sprintf(
					"catastrophic operation blocked: statement %s; it is never permitted, even with write operations enabled",
					r.category,
				),
			}
		}
	}

	// Stage C: write mode admits anything that survived stage B.
	if allowWrite {
		return Classification{Allowed: true, Verdict: VerdictAllowed}
	}

	if readOnlyAllowed(norm.Text) {
		return Classification{Allowed: true, Verdict: VerdictAllowed}
	}

	return Classification{
		Verdict: VerdictDenied,
		Reason: "query is not in the whitelist of safe read-only operations " +
			"(SELECT, SHOW, DESCRIBE, EXPLAIN, and introspection commands); " +
			"enable write operations (allow_write_operations) to run data-modifying statements",
	}
}

func readOnlyAllowed(text string) bool {
	for _, re := range readOnlyRules {
		if re.MatchString(text) {
			return true
		}
	}
	if strings.HasPrefix(text, "WITH ") {
		return cteIsReadOnly(strings.TrimPrefix(text, "WITH "))
	}
	return false
}

// cteIsReadOnly guards against a write smuggled inside a CTE body. The body
// must still reach a SELECT, and no deny-vocabulary keyword may appear
// anywhere after the WITH.
func cteIsReadOnly(body string) bool {
	for _, kw := range cteDenyKeywords {
		if strings.Contains(body, kw) {
			return false
		}
	}
	return strings.Contains(body, "SELECT")
}
