package ledger

import "strings"

// Classification is the balance sheet bucket an account reports under.
type Classification string

const (
	ClassificationCurrentAsset      Classification = "CURRENT_ASSET"
	ClassificationFixedAsset        Classification = "FIXED_ASSET"
	ClassificationOtherAsset        Classification = "OTHER_ASSET"
	ClassificationCurrentLiability  Classification = "CURRENT_LIABILITY"
	ClassificationLongTermLiability Classification = "LONG_TERM_LIABILITY"
	ClassificationCapital           Classification = "CAPITAL"
	ClassificationRetainedEarnings  Classification = "RETAINED_EARNINGS"
	ClassificationRevenue           Classification = "REVENUE"
	ClassificationExpense           Classification = "EXPENSE"
	ClassificationUnclassified      Classification = "UNCLASSIFIED"
)

// IsAsset reports whether the classification sits on the asset side.
func (c Classification) IsAsset() bool {
	switch c {
	case ClassificationCurrentAsset, ClassificationFixedAsset, ClassificationOtherAsset:
		return true
	}
	return false
}

// IsLiability reports whether the classification sits on the liability side.
func (c Classification) IsLiability() bool {
	switch c {
	case ClassificationCurrentLiability, ClassificationLongTermLiability:
		return true
	}
	return false
}

// IsEquity reports whether the classification is an equity bucket.
func (c Classification) IsEquity() bool {
	switch c {
	case ClassificationCapital, ClassificationRetainedEarnings:
		return true
	}
	return false
}

// Rule is one step of the classification chain. The first rule whose
// Applies predicate matches decides the account's classification.
type Rule struct {
	Name     string
	Applies  func(Account) bool
	Classify func(Account) Classification
}

// Classifier buckets accounts for financial statements by walking an
// ordered rule chain: numeric code ranges first, name keywords second,
// the declared account type last. Missing code/name fields simply fail to
// match and fall through to later rules.
type Classifier struct {
	rules []Rule
}

// NewClassifier creates a classifier with the default rule chain.
func NewClassifier() *Classifier {
	return NewClassifierWithRules(DefaultRules())
}

// NewClassifierWithRules creates a classifier with a custom rule chain.
// The slice is copied; rules are immutable after construction.
func NewClassifierWithRules(rules []Rule) *Classifier {
	c := &Classifier{rules: make([]Rule, len(rules))}
	copy(c.rules, rules)
	return c
}

// Classify returns the first matching rule's classification, or
// ClassificationUnclassified when nothing matches.
func (c *Classifier) Classify(a Account) Classification {
	for _, r := range c.rules {
		if r.Applies(a) {
			return r.Classify(a)
		}
	}
	return ClassificationUnclassified
}

// DefaultRules returns the standard chart-of-accounts rule chain:
//
//	1xxx current assets, 2xxx current liabilities, 3xxx equity (split
//	into capital and retained earnings by name), 4xxx revenue, 5xxx-7xxx
//	expenses.
//
// Code ranges win regardless of name; the source chart does not carve
// fixed assets or long-term liabilities out of the 1xxx/2xxx ranges, so
// those buckets are only reachable through the keyword and account-type
// stages for accounts coded outside the ranges.
func DefaultRules() []Rule {
	return []Rule{
		codeRangeRule("code-1xxx-current-assets", '1', ClassificationCurrentAsset),
		codeRangeRule("code-2xxx-current-liabilities", '2', ClassificationCurrentLiability),
		{
			Name:     "code-3xxx-equity",
			Applies:  func(a Account) bool { return codeInRange(a.Code, '3') },
			Classify: splitEquity,
		},
		codeRangeRule("code-4xxx-revenue", '4', ClassificationRevenue),
		{
			Name: "code-5xxx-7xxx-expenses",
			Applies: func(a Account) bool {
				return codeInRange(a.Code, '5') || codeInRange(a.Code, '6') || codeInRange(a.Code, '7')
			},
			Classify: fixedClass(ClassificationExpense),
		},
		keywordRule("name-fixed-assets", ClassificationFixedAsset,
			"fixed asset", "equipment", "machinery", "furniture", "vehicle", "building", "plant"),
		keywordRule("name-long-term-liabilities", ClassificationLongTermLiability,
			"long term", "long-term", "term loan", "debenture", "mortgage"),
		keywordRule("name-capital", ClassificationCapital, "capital"),
		keywordRule("name-retained-earnings", ClassificationRetainedEarnings, "retained"),
		keywordRule("name-current-assets", ClassificationCurrentAsset,
			"cash", "bank", "receivable", "inventory"),
		keywordRule("name-current-liabilities", ClassificationCurrentLiability, "payable"),
		{
			Name:     "account-type-fallback",
			Applies:  func(a Account) bool { return fallbackClass(a.AccountType) != ClassificationUnclassified },
			Classify: func(a Account) Classification { return fallbackClass(a.AccountType) },
		},
	}
}

func codeRangeRule(name string, lead byte, class Classification) Rule {
	return Rule{
		Name:     name,
		Applies:  func(a Account) bool { return codeInRange(a.Code, lead) },
		Classify: fixedClass(class),
	}
}

func keywordRule(name string, class Classification, keywords ...string) Rule {
	return Rule{
		Name: name,
		Applies: func(a Account) bool {
			lower := strings.ToLower(a.Name)
			for _, kw := range keywords {
				if strings.Contains(lower, kw) {
					return true
				}
			}
			return false
		},
		Classify: fixedClass(class),
	}
}

func fixedClass(class Classification) func(Account) Classification {
	return func(Account) Classification { return class }
}

// codeInRange matches four-digit codes by their leading digit ("1101" is
// in range '1').
func codeInRange(code string, lead byte) bool {
	if len(code) != 4 {
		return false
	}
	for i := 0; i < len(code); i++ {
		if code[i] < '0' || code[i] > '9' {
			return false
		}
	}
	return code[0] == lead
}

// splitEquity separates share capital from retained earnings by name.
// Equity accounts matching neither keyword report under capital.
func splitEquity(a Account) Classification {
	lower := strings.ToLower(a.Name)
	if strings.Contains(lower, "retained") {
		return ClassificationRetainedEarnings
	}
	return ClassificationCapital
}

func fallbackClass(t AccountType) Classification {
	switch t {
	case AccountTypeAsset:
		return ClassificationOtherAsset
	case AccountTypeLiability:
		return ClassificationCurrentLiability
	case AccountTypeEquity:
		return ClassificationCapital
	case AccountTypeIncome:
		return ClassificationRevenue
	case AccountTypeExpense:
		return ClassificationExpense
	}
	return ClassificationUnclassified
}
