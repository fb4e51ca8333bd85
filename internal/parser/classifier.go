package parser

import (
	"regexp"
	"strings"
)

// Negative patterns: structural noise that can never be a transaction.
var (
	pageFooterPattern = regexp.MustCompile(`(?i)^page\s+\d+(\s+of\s+\d+)?$`)
	bareNumberPattern = regexp.MustCompile(`^\d{1,4}$`)
	separatorPattern  = regexp.MustCompile(`^[-=_*.\s]+$`)
)

// transactionKeywords accept a line even without a date or amount token.
// The classifier is intentionally permissive: a false positive just hands
// the line to parsers that will reject it, a false negative loses data.
var transactionKeywords = []string{
	"fee", "charge", "withdrawal", "deposit", "transfer", "payment",
}

// IsTransactionLine decides whether a raw statement line is worth handing
// to the parser chain at all.
func IsTransactionLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return false
	}
	if pageFooterPattern.MatchString(trimmed) {
		return false
	}
	if bareNumberPattern.MatchString(trimmed) {
		return false
	}
	if separatorPattern.MatchString(trimmed) {
		return false
	}
	if isColumnHeader(trimmed) {
		return false
	}

	if hasDateToken(trimmed) || hasAmountToken(trimmed) {
		return true
	}

	lower := strings.ToLower(trimmed)
	for _, keyword := range transactionKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}

// isColumnHeader spots table header rows: several column words and no
// numeric content.
func isColumnHeader(line string) bool {
	if hasAmountToken(line) || hasDateToken(line) {
		return false
	}

	lower := strings.ToLower(line)
	hits := 0
	for _, word := range []string{
		"date", "details", "description", "debit", "credit", "balance",
		"service fee", "paid out", "paid in", "money out", "money in",
		"amount", "reference",
	} {
		if strings.Contains(lower, word) {
			hits++
		}
	}
	return hits >= 3
}
