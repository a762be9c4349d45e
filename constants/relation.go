package constants

import "strings"

// Relation is the patient's relation to the policyholder.
type Relation string

const (
	RelationSelf    Relation = "Self"
	RelationSpouse  Relation = "Spouse"
	RelationChild   Relation = "Child"
	RelationParent  Relation = "Parent"
	RelationSibling Relation = "Sibling"
	RelationOther   Relation = "Other"
)

// relationSynonyms maps relation words found in documents to canonical values.
var relationSynonyms = map[string]Relation{
	"self":     RelationSelf,
	"wife":     RelationSpouse,
	"husband":  RelationSpouse,
	"spouse":   RelationSpouse,
	"son":      RelationChild,
	"daughter": RelationChild,
	"child":    RelationChild,
	"father":   RelationParent,
	"mother":   RelationParent,
	"parent":   RelationParent,
	"brother":  RelationSibling,
	"sister":   RelationSibling,
	"sibling":  RelationSibling,
}

// CanonicalRelation maps a raw relation token to its canonical value.
// Unknown tokens map to Other.
func CanonicalRelation(input string) Relation {
	if rel, ok := relationSynonyms[strings.ToLower(strings.TrimSpace(input))]; ok {
		return rel
	}
	return RelationOther
}

// AdmissibleRelation reports whether the relation qualifies for
// reimbursement under policy. Sibling and Other are excluded categories.
func AdmissibleRelation(r Relation) bool {
	switch r {
	case RelationSelf, RelationSpouse, RelationChild, RelationParent:
		return true
	default:
		return false
	}
}

// Gender as stated on the document, when detected.
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)
