// Package rules holds the account classification conventions the trial
// balance computation depends on: which account types are debit-normal and
// which are credit-normal, keyed by explicit chart tags or account-code
// prefixes. Conventions load once at startup and are passed by reference.
package rules

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/sthwalo/acc-sub020/internal/domain"
)

type CategoryConfig struct {
	Name          string   `yaml:"name"`
	NormalBalance string   `yaml:"normal_balance"`
	CodePrefixes  []string `yaml:"code_prefixes"`
	Aliases       []string `yaml:"aliases"`
}

type Config struct {
	Categories []CategoryConfig `yaml:"categories"`
}

// Rules resolves an account to its normal balance side. Immutable after
// construction.
type Rules struct {
	byTag    map[string]domain.NormalBalance
	byPrefix map[string]domain.NormalBalance
}

// Load reads a YAML rules file and builds the lookup tables.
func Load(path string) (*Rules, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rules file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse rules file: %w", err)
	}

	return FromConfig(config)
}

func FromConfig(config Config) (*Rules, error) {
	rules := &Rules{
		byTag:    make(map[string]domain.NormalBalance),
		byPrefix: make(map[string]domain.NormalBalance),
	}

	// Literal side tags always resolve, whatever the chart calls its types.
	rules.byTag["debit"] = domain.NormalBalanceDebit
	rules.byTag["d"] = domain.NormalBalanceDebit
	rules.byTag["credit"] = domain.NormalBalanceCredit
	rules.byTag["c"] = domain.NormalBalanceCredit

	for _, category := range config.Categories {
		side, err := parseSide(category.NormalBalance)
		if err != nil {
			return nil, fmt.Errorf("category %q: %w", category.Name, err)
		}

		rules.byTag[normalizeTag(category.Name)] = side
		for _, alias := range category.Aliases {
			rules.byTag[normalizeTag(alias)] = side
		}
		for _, prefix := range category.CodePrefixes {
			rules.byPrefix[strings.TrimSpace(prefix)] = side
		}
	}

	return rules, nil
}

// Default returns the conventional chart layout: 1xxx assets, 2xxx
// liabilities, 3xxx equity, 4xxx-5xxx revenue, 6xxx-9xxx expenses.
func Default() *Rules {
	rules, err := FromConfig(Config{
		Categories: []CategoryConfig{
			{Name: "asset", NormalBalance: "debit", CodePrefixes: []string{"1"}, Aliases: []string{"assets"}},
			{Name: "liability", NormalBalance: "credit", CodePrefixes: []string{"2"}, Aliases: []string{"liabilities"}},
			{Name: "equity", NormalBalance: "credit", CodePrefixes: []string{"3"}},
			{Name: "revenue", NormalBalance: "credit", CodePrefixes: []string{"4", "5"}, Aliases: []string{"income", "sales"}},
			{Name: "expense", NormalBalance: "debit", CodePrefixes: []string{"6", "7", "8", "9"}, Aliases: []string{"expenses", "cogs"}},
		},
	})
	if err != nil {
		panic(err)
	}
	return rules
}

// NormalBalanceFor resolves one account. An explicit chart tag wins over
// the code prefix; unmapped accounts fall back to debit-normal.
func (r *Rules) NormalBalanceFor(accountCode, accountType string) domain.NormalBalance {
	if tag := normalizeTag(accountType); tag != "" {
		if side, ok := r.byTag[tag]; ok {
			return side
		}
	}

	code := strings.TrimSpace(accountCode)
	for length := len(code); length > 0; length-- {
		if side, ok := r.byPrefix[code[:length]]; ok {
			return side
		}
	}

	return domain.NormalBalanceDebit
}

func parseSide(raw string) (domain.NormalBalance, error) {
	switch normalizeTag(raw) {
	case "debit", "d":
		return domain.NormalBalanceDebit, nil
	case "credit", "c":
		return domain.NormalBalanceCredit, nil
	default:
		return "", fmt.Errorf("normal_balance must be debit or credit, got %q", raw)
	}
}

func normalizeTag(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}
