package settle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLabelClassifier(t *testing.T) {
	c := NewLabelClassifier()

	tests := []struct {
		label string
		want  LabelCategory
	}{
		{"", LabelNoAgent},
		{"-", LabelNoAgent},
		{"Sem Agente", LabelNoAgent},
		{"  no agent  ", LabelNoAgent},
		{"Casa", LabelHouse},
		{"LIGA", LabelHouse},
		{"Jogador Direto", LabelDirect},
		{"direct deal", LabelDirect},
		{"Agencia do Pedro", LabelAgent},
		{"XYZ", LabelAgent},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, c.Classify(tt.label), "label=%q", tt.label)
	}
}

func TestLabelClassifierOrderMatters(t *testing.T) {
	c := NewLabelClassifier()
	// The house rule matches exact labels only, so a compound label falls
	// through to the broader contains-based direct rule.
	assert.Equal(t, LabelHouse, c.Classify("liga"))
	assert.Equal(t, LabelDirect, c.Classify("liga direto"))
}
