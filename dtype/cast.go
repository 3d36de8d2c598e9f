package dtype

// CastingMode parameterizes is_allowed_data_type_cast (spec §4.5). EQUIV is
// deliberately absent: the specification text itself collapses it into NO
// since no byte-order tag distinguishes them (spec §9).
type CastingMode uint8

const (
	NoCasting CastingMode = iota
	SafeCasting
	SameKindCasting
	UnsafeCasting
)

// numTypes is the span of the registry excluding UserDefinedBase, used to
// size the casting bitsets.
const numTypes = int(Generic) + 1

// safeCasts[from] has bit `to` set iff a SAFE (value-preserving) cast from
// `from` to `to` is permitted. Built once at init from byte width and kind,
// since this registry's tag layout does not match the original C table
// this spec distills (spec §9 Open Question 2) and a hand-transcribed
// table would silently encode the wrong pairs.
var safeCasts [numTypes]uint32
var sameKindCasts [numTypes]uint32

func init() {
	for _, from := range All() {
		for _, to := range All() {
			if isSafeCast(from, to) {
				safeCasts[from] |= 1 << uint(to)
			}
			// Signed and unsigned integers form one kind for SAME_KIND.
			fk, tk := KindOf(from), KindOf(to)
			if fk == KindUint {
				fk = KindInt
			}
			if tk == KindUint {
				tk = KindInt
			}
			if fk == tk {
				sameKindCasts[from] |= 1 << uint(to)
			}
		}
	}
}

// isSafeCast implements value-preserving promotion rules: identity is
// always safe; within a kind, casting to an equal-or-wider width is safe;
// integers may safely widen into a float with enough mantissa bits is not
// modeled precisely (this is a systems-level registry, not an exhaustive
// numeric-analysis table) so the conservative rule used here is: integer ->
// float of strictly greater byte width, unsigned -> signed of strictly
// greater width, float -> complex whose width is at least twice the float's,
// and any numeric kind -> itself at equal-or-greater width. Integers never
// safe-cast to complex.
func isSafeCast(from, to Type) bool {
	if from == to {
		return true
	}
	fk, tk := KindOf(from), KindOf(to)
	fw, tw := ByteWidth(from), ByteWidth(to)
	switch {
	case fk == KindBool:
		return tk == KindInt || tk == KindUint || tk == KindFloat || tk == KindComplex
	case fk == KindInt && tk == KindInt:
		return tw >= fw
	case fk == KindUint && (tk == KindUint || tk == KindInt):
		if tk == KindInt {
			return tw > fw
		}
		return tw >= fw
	case fk == KindInt && tk == KindFloat:
		return tw > fw
	case fk == KindUint && tk == KindFloat:
		return tw > fw
	case fk == KindFloat && tk == KindFloat:
		return tw >= fw
	case fk == KindFloat && tk == KindComplex:
		return tw >= 2*fw
	case fk == KindComplex && tk == KindComplex:
		return tw >= fw
	default:
		return false
	}
}

// SafeCast reports whether from may be SAFE-cast to to.
func SafeCast(from, to Type) bool {
	mustValid(from)
	mustValid(to)
	return safeCasts[from]&(1<<uint(to)) != 0
}

// SameKindCast reports whether from and to share a casting kind (signed and
// unsigned integers count as one kind).
func SameKindCast(from, to Type) bool {
	mustValid(from)
	mustValid(to)
	return sameKindCasts[from]&(1<<uint(to)) != 0
}

// IsAllowedCast implements spec §4.5's is_allowed_data_type_cast exactly:
// UNSAFE always allows; identity always allows; NO allows only identity;
// SAFE/SAME_KIND defer to the matrices above.
func IsAllowedCast(from, to Type, mode CastingMode) bool {
	if mode == UnsafeCasting {
		return true
	}
	if from == to {
		return true
	}
	switch mode {
	case NoCasting:
		return false
	case SafeCasting:
		return SafeCast(from, to)
	case SameKindCasting:
		return SameKindCast(from, to)
	default:
		return false
	}
}
