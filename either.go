package promise

// Tag distinguishes which alternative an Either currently holds.
type Tag int

const (
	// First marks an Either holding its A alternative.
	First Tag = iota
	// Second marks an Either holding its B alternative.
	Second
)

// Either holds exactly one of two disjoint alternatives, A or B, tagged by
// which one is present. Result[T, E] is the specialization of Either where
// the first alternative means success and the second means failure.
type Either[A, B any] struct {
	tag    Tag
	first  A
	second B
}

// OfFirst constructs an Either holding the first alternative.
func OfFirst[A, B any](a A) Either[A, B] {
	return Either[A, B]{tag: First, first: a}
}

// OfSecond constructs an Either holding the second alternative.
func OfSecond[A, B any](b B) Either[A, B] {
	return Either[A, B]{tag: Second, second: b}
}

// EitherTag returns which alternative e currently holds.
func EitherTag[A, B any](e Either[A, B]) Tag {
	return e.tag
}

// MatchEither is exhaustive by construction: exactly one of onFirst,
// onSecond runs, selected by e's tag, and its result is returned.
func MatchEither[A, B, R any](e Either[A, B], onFirst func(A) R, onSecond func(B) R) R {
	if e.tag == First {
		return onFirst(e.first)
	}
	return onSecond(e.second)
}

// VisitEither applies whichever of onFirst, onSecond matches e's tag and
// returns its result. It is the optional form of MatchEither spec.md
// names separately from match, but the contract is identical: exactly
// one handler runs, and its result is what VisitEither returns.
func VisitEither[A, B, R any](e Either[A, B], onFirst func(A) R, onSecond func(B) R) R {
	if e.tag == First {
		return onFirst(e.first)
	}
	return onSecond(e.second)
}
