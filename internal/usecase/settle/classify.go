package settle

import "strings"

// LabelCategory buckets a free-text agent column value from an import.
type LabelCategory string

const (
	LabelNoAgent LabelCategory = "NO_AGENT"
	LabelHouse   LabelCategory = "HOUSE"
	LabelDirect  LabelCategory = "DIRECT"
	LabelAgent   LabelCategory = "AGENT"
)

type labelRule struct {
	match    func(label string) bool
	category LabelCategory
}

// LabelClassifier resolves free-text agent labels into categories. Rules are
// evaluated in order with first match winning; later rules may overlap
// earlier ones, so order matters. Unmatched labels fall through to the
// default category.
type LabelClassifier struct {
	rules    []labelRule
	fallback LabelCategory
}

// NewLabelClassifier builds the classifier used when resolving imported
// metric rows to entities.
func NewLabelClassifier() *LabelClassifier {
	return &LabelClassifier{
		rules: []labelRule{
			{func(l string) bool { return l == "" || l == "-" }, LabelNoAgent},
			{oneOf("sem agente", "sem agencia", "no agent"), LabelNoAgent},
			{oneOf("casa", "house", "liga", "league"), LabelHouse},
			{func(l string) bool { return strings.Contains(l, "direto") || strings.Contains(l, "direct") }, LabelDirect},
		},
		fallback: LabelAgent,
	}
}

func oneOf(values ...string) func(string) bool {
	return func(label string) bool {
		for _, v := range values {
			if label == v {
				return true
			}
		}
		return false
	}
}

func (c *LabelClassifier) Classify(label string) LabelCategory {
	normalized := strings.ToLower(strings.TrimSpace(label))
	for _, r := range c.rules {
		if r.match(normalized) {
			return r.category
		}
	}
	return c.fallback
}
