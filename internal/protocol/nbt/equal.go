package nbt

// Equal compares two tags structurally: Compound equality is per-key
// (order-independent, since the backing map carries no order), List
// equality is positional. Byte-level round-trip equality is NOT guaranteed
// for Compound and must never be asserted by callers.
func Equal(a, b Tag) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.tagType() != b.tagType() {
		return false
	}
	switch av := a.(type) {
	case List:
		bv := b.(List)
		if av.ElementType != bv.ElementType || len(av.Items) != len(bv.Items) {
			return false
		}
		for i := range av.Items {
			if !Equal(av.Items[i], bv.Items[i]) {
				return false
			}
		}
		return true
	case Compound:
		bv := b.(Compound)
		if len(av) != len(bv) {
			return false
		}
		for k, v := range av {
			other, ok := bv[k]
			if !ok || !Equal(v, other) {
				return false
			}
		}
		return true
	case ByteArray:
		bv := b.(ByteArray)
		if len(av) != len(bv) {
			return false
		}
		for i := range av {
			if av[i] != bv[i] {
				return false
			}
		}
		return true
	case IntArray:
		bv := b.(IntArray)
		if len(av) != len(bv) {
			return false
		}
		for i := range av {
			if av[i] != bv[i] {
				return false
			}
		}
		return true
	case LongArray:
		bv := b.(LongArray)
		if len(av) != len(bv) {
			return false
		}
		for i := range av {
			if av[i] != bv[i] {
				return false
			}
		}
		return true
	default:
		return a == b
	}
}
