package validation

import (
	"fmt"
	"regexp"
	"strings"
)

// BlockedKeywords are the verbs a generated statement may never contain as a whole word.
var BlockedKeywords = []string{"DROP", "DELETE", "INSERT", "UPDATE", "ALTER", "CREATE", "TRUNCATE", "EXEC", "EXECUTE"}

var (
	// A fence line that carries nothing but an optional language tag.
	fenceLineRe = regexp.MustCompile("(?m)^[ \t]*```[A-Za-z0-9_+-]*[ \t]*\r?$")
	// Fences left inline, e.g. "```sql SELECT 1;```".
	fenceInlineRe = regexp.MustCompile("(?i)```(?:sql\\b)?")
	labelRe       = regexp.MustCompile(`(?im)^[ \t]*(?:SQL|Query|Answer):[ \t]*`)

	blockedKeywordRes = compileKeywordPatterns(BlockedKeywords)
)

func compileKeywordPatterns(keywords []string) map[string]*regexp.Regexp {
	out := make(map[string]*regexp.Regexp, len(keywords))
	for _, kw := range keywords {
		out[kw] = regexp.MustCompile(`\b` + regexp.QuoteMeta(kw) + `\b`)
	}
	return out
}

// RejectedSQLError reports a candidate that must never reach the database.
type RejectedSQLError struct {
	SQL     string
	Keyword string // set when a blocked keyword was found
	Reason  string
}

func (e *RejectedSQLError) Error() string {
	return e.Reason
}

// SanitizeSQL reduces raw model output to a single semicolon-terminated SELECT
// statement, or rejects it with *RejectedSQLError. Its output is a fixed point:
// sanitizing an already sanitized statement returns it unchanged.
func SanitizeSQL(raw string) (string, error) {
	sql := fenceLineRe.ReplaceAllString(raw, "")
	sql = fenceInlineRe.ReplaceAllString(sql, "")
	sql = labelRe.ReplaceAllString(sql, "")
	// Blocked verbs are matched against the whole candidate, before line
	// selection and truncation.
	candidate := strings.ToUpper(sql)

	sql = pickStatementLine(sql)

	if idx := strings.Index(sql, ";"); idx >= 0 {
		sql = sql[:idx+1]
	} else {
		sql += ";"
	}

	for _, kw := range BlockedKeywords {
		if blockedKeywordRes[kw].MatchString(candidate) {
			return "", &RejectedSQLError{
				SQL:     sql,
				Keyword: kw,
				Reason:  fmt.Sprintf("Dangerous SQL keyword detected: %s", kw),
			}
		}
	}

	if !strings.HasPrefix(strings.ToUpper(sql), "SELECT") {
		return "", &RejectedSQLError{SQL: sql, Reason: "Only SELECT queries are allowed"}
	}

	return sql, nil
}

// pickStatementLine returns the first trimmed line starting with SELECT, falling
// back to the first non-empty line. A non-SELECT fallback is rejected later.
func pickStatementLine(s string) string {
	var first string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.HasPrefix(strings.ToUpper(line), "SELECT") {
			return line
		}
		if first == "" {
			first = line
		}
	}
	return first
}
