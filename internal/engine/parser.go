package engine

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
)

// ParseError describes a clause that matched no recognized grammar. The
// clause still gets a fail-closed (always-false) predicate so evaluation of
// sibling clauses is never aborted.
type ParseError struct {
	Raw    string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("unparseable clause %q: %s", e.Raw, e.Reason)
}

// clauseCache memoizes parsed clauses keyed by the raw string. Entries are
// write-once and never invalidated, so concurrent readers are safe.
var clauseCache sync.Map // string -> parsedClause

type parsedClause struct {
	pred Predicate
	err  error
}

// ParseClause parses a raw condition clause into a predicate, caching the
// result per clause string. The returned predicate is always usable: if the
// clause is unparseable, it fails closed (never matches) and the error
// reports why, for data-quality diagnostics.
//
// Grammar, in order of binding strength:
//
//	clause      = term { "&" term }            conjunction
//	term        = alt { " or " alt }           inner OR group
//	alt         = key "=" range | comparison | key "=" value | range | value
//	range       = number ".." number           inclusive both ends
//	comparison  = key ("<" | ">" | "<=" | ">=") number
//
// An alternative without an explicit key (e.g. the second half of
// "temperature=0..5 or 20..25") inherits the key of the preceding alternative.
func ParseClause(raw string) (Predicate, error) {
	if cached, ok := clauseCache.Load(raw); ok {
		pc := cached.(parsedClause)
		return pc.pred, pc.err
	}

	pred, err := parseClause(raw)
	if err != nil {
		pred = alwaysFalse
	}

	// Under a concurrent first parse the same pure result wins either way.
	actual, _ := clauseCache.LoadOrStore(raw, parsedClause{pred: pred, err: err})
	pc := actual.(parsedClause)
	return pc.pred, pc.err
}

func parseClause(raw string) (Predicate, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, &ParseError{Raw: raw, Reason: "empty clause"}
	}

	parts := strings.Split(trimmed, "&")
	terms := make([]Predicate, 0, len(parts))

	for _, part := range parts {
		term, err := parseTerm(raw, part)
		if err != nil {
			return nil, err
		}
		terms = append(terms, term)
	}

	return allOf(terms), nil
}

// parseTerm parses one &-separated term, which may contain an inner OR group.
func parseTerm(raw, term string) (Predicate, error) {
	alts := strings.Split(term, " or ")

	var (
		preds   = make([]Predicate, 0, len(alts))
		lastKey string
	)

	for _, alt := range alts {
		alt = strings.TrimSpace(alt)
		if alt == "" {
			return nil, &ParseError{Raw: raw, Reason: "empty alternative in OR group"}
		}

		pred, key, err := parseLeaf(raw, alt, lastKey)
		if err != nil {
			return nil, err
		}
		preds = append(preds, pred)
		lastKey = key
	}

	return anyOf(preds), nil
}

// parseLeaf parses a single predicate leaf. inheritKey is the key of the
// preceding alternative in an OR group, used when the leaf has no key of its
// own. It returns the key the leaf resolved to so later alternatives can
// inherit it.
func parseLeaf(raw, leaf, inheritKey string) (Predicate, string, error) {
	// Comparisons first: "<=" and ">=" before their single-char prefixes.
	for _, op := range []string{"<=", ">=", "<", ">"} {
		key, rest, found := strings.Cut(leaf, op)
		if !found {
			continue
		}
		key = strings.TrimSpace(key)
		if key == "" {
			return nil, "", &ParseError{Raw: raw, Reason: "comparison without a fact key"}
		}
		n, err := strconv.ParseFloat(strings.TrimSpace(rest), 64)
		if err != nil {
			return nil, "", &ParseError{Raw: raw, Reason: fmt.Sprintf("comparison %q has non-numeric bound", leaf)}
		}
		return comparePredicate(key, op, n), key, nil
	}

	if key, rest, found := strings.Cut(leaf, "="); found {
		key = strings.TrimSpace(key)
		rest = strings.TrimSpace(rest)
		if key == "" || rest == "" {
			return nil, "", &ParseError{Raw: raw, Reason: fmt.Sprintf("malformed equality %q", leaf)}
		}
		pred, err := parseValueExpr(raw, key, rest)
		if err != nil {
			return nil, "", err
		}
		return pred, key, nil
	}

	// Bare range or value: inherits the key of the previous OR alternative.
	if inheritKey == "" {
		return nil, "", &ParseError{Raw: raw, Reason: fmt.Sprintf("alternative %q has no fact key to inherit", leaf)}
	}
	pred, err := parseValueExpr(raw, inheritKey, leaf)
	if err != nil {
		return nil, "", err
	}
	return pred, inheritKey, nil
}

// parseValueExpr parses the right-hand side of an equality: an inclusive
// range "a..b", a numeric exact match, or a categorical value.
func parseValueExpr(raw, key, expr string) (Predicate, error) {
	if lo, hi, found := strings.Cut(expr, ".."); found {
		loN, loErr := strconv.ParseFloat(strings.TrimSpace(lo), 64)
		hiN, hiErr := strconv.ParseFloat(strings.TrimSpace(hi), 64)
		if loErr != nil || hiErr != nil {
			return nil, &ParseError{Raw: raw, Reason: fmt.Sprintf("range %q has non-numeric bounds", expr)}
		}
		if hiN < loN {
			return nil, &ParseError{Raw: raw, Reason: fmt.Sprintf("range %q is inverted", expr)}
		}
		return rangePredicate(key, loN, hiN), nil
	}

	if n, err := strconv.ParseFloat(expr, 64); err == nil {
		// Exact numeric equality, tolerance 0.
		return rangePredicate(key, n, n), nil
	}

	return equalsPredicate(key, expr), nil
}

// rangePredicate matches a numeric fact in [lo, hi], inclusive both ends.
// A categorical fact under the same key is present but can never satisfy a
// numeric bound, so it evaluates false rather than unknown.
func rangePredicate(key string, lo, hi float64) Predicate {
	return func(facts FactSnapshot) Tri {
		f, ok := facts.Lookup(key)
		if !ok {
			return Unknown
		}
		if !f.IsNum {
			return False
		}
		if f.Num >= lo && f.Num <= hi {
			return True
		}
		return False
	}
}

func comparePredicate(key, op string, bound float64) Predicate {
	return func(facts FactSnapshot) Tri {
		f, ok := facts.Lookup(key)
		if !ok {
			return Unknown
		}
		if !f.IsNum {
			return False
		}

		var match bool
		switch op {
		case "<":
			match = f.Num < bound
		case ">":
			match = f.Num > bound
		case "<=":
			match = f.Num <= bound
		case ">=":
			match = f.Num >= bound
		}
		if match {
			return True
		}
		return False
	}
}

// equalsPredicate matches a categorical fact exactly.
func equalsPredicate(key, value string) Predicate {
	return func(facts FactSnapshot) Tri {
		f, ok := facts.Lookup(key)
		if !ok {
			return Unknown
		}
		if f.IsNum {
			return False
		}
		if f.Str == value {
			return True
		}
		return False
	}
}
