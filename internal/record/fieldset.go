package record

import (
	"errors"
	"fmt"
)

// Kind names a record shape that has its own designated field set.
type Kind string

const (
	KindContact      Kind = "contact"
	KindSearchResult Kind = "searchResult"
)

var ErrOverlappingPaths = errors.New("field set paths overlap")

// FieldSet lists the designated PII paths of one record kind. Scalars hold a
// single string each; Lists hold a sequence of strings whose elements are
// transformed one by one. The two lists never overlap.
type FieldSet struct {
	Kind    Kind
	Scalars []Path
	Lists   []Path
}

// NewFieldSet validates that no path is designated twice or nested inside
// another designated path.
func NewFieldSet(kind Kind, scalars, lists []Path) (FieldSet, error) {
	all := make([]Path, 0, len(scalars)+len(lists))
	all = append(all, scalars...)
	all = append(all, lists...)

	for i := range all {
		for j := i + 1; j < len(all); j++ {
			if all[i].overlaps(all[j]) {
				return FieldSet{}, fmt.Errorf("%w: %q and %q in %s", ErrOverlappingPaths, all[i], all[j], kind)
			}
		}
	}

	return FieldSet{Kind: kind, Scalars: scalars, Lists: lists}, nil
}

func mustFieldSet(kind Kind, scalars, lists []Path) FieldSet {
	fs, err := NewFieldSet(kind, scalars, lists)
	if err != nil {
		panic(err)
	}
	return fs
}

// FieldSets maps every record kind to its designated fields.
//
// Search results expose only the name, so only the name is decrypted there.
var FieldSets = map[Kind]FieldSet{
	KindContact: mustFieldSet(KindContact,
		[]Path{"name", "address", "bornAddress", "gender", "linkedin", "wechat", "facebook", "github", "bornAt"},
		[]Path{"emails", "phones"},
	),
	KindSearchResult: mustFieldSet(KindSearchResult,
		[]Path{"name"},
		nil,
	),
}

// Lookup returns the field set registered for kind.
func Lookup(kind Kind) (FieldSet, bool) {
	fs, ok := FieldSets[kind]
	return fs, ok
}
