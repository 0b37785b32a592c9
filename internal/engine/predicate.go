// Package engine implements the condition-matching engine that scores
// activities against weather facts. It is pure and synchronous: parsing and
// evaluation are side-effect-free, and the only shared state is a write-once
// clause cache, so concurrent callers need no locking.
package engine

// Tri is a three-valued predicate outcome. Unknown means a required fact was
// absent from the snapshot, which is distinct from a fact that is present but
// fails the predicate.
type Tri int

const (
	False Tri = iota
	True
	Unknown
)

func (t Tri) String() string {
	switch t {
	case True:
		return "true"
	case False:
		return "false"
	default:
		return "unknown"
	}
}

// Predicate evaluates one parsed condition clause against a fact snapshot.
type Predicate func(FactSnapshot) Tri

// allOf combines predicates with three-valued AND: any false wins, otherwise
// any unknown wins, otherwise true.
func allOf(preds []Predicate) Predicate {
	if len(preds) == 1 {
		return preds[0]
	}
	return func(facts FactSnapshot) Tri {
		out := True
		for _, p := range preds {
			switch p(facts) {
			case False:
				return False
			case Unknown:
				out = Unknown
			}
		}
		return out
	}
}

// anyOf combines predicates with three-valued OR: any true wins, otherwise
// any unknown wins, otherwise false.
func anyOf(preds []Predicate) Predicate {
	if len(preds) == 1 {
		return preds[0]
	}
	return func(facts FactSnapshot) Tri {
		out := False
		for _, p := range preds {
			switch p(facts) {
			case True:
				return True
			case Unknown:
				out = Unknown
			}
		}
		return out
	}
}

// alwaysFalse is the fail-closed predicate used for unparseable clauses.
func alwaysFalse(FactSnapshot) Tri { return False }
