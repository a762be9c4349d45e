package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalRelation(t *testing.T) {
	tests := []struct {
		in   string
		want Relation
	}{
		{"self", RelationSelf},
		{"Self", RelationSelf},
		{"wife", RelationSpouse},
		{"HUSBAND", RelationSpouse},
		{"spouse", RelationSpouse},
		{"son", RelationChild},
		{"daughter", RelationChild},
		{"father", RelationParent},
		{"mother", RelationParent},
		{"brother", RelationSibling},
		{"sister", RelationSibling},
		{"  wife  ", RelationSpouse},
		{"cousin", RelationOther},
		{"", RelationOther},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CanonicalRelation(tt.in), "input %q", tt.in)
	}
}

func TestAdmissibleRelation(t *testing.T) {
	assert.True(t, AdmissibleRelation(RelationSelf))
	assert.True(t, AdmissibleRelation(RelationSpouse))
	assert.True(t, AdmissibleRelation(RelationChild))
	assert.True(t, AdmissibleRelation(RelationParent))
	assert.False(t, AdmissibleRelation(RelationSibling))
	assert.False(t, AdmissibleRelation(RelationOther))
}
