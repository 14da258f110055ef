package hashfn

// A Hasher pairs a hash function over K with the equality that hash must
// respect: Equal(a, b) implies Hash(a) == Hash(b).
//
// Hash must be deterministic and total. It may return any integer; the
// tables normalize the result into slot range themselves, so negative output
// is fine. No collision freedom is required.
type Hasher[K any] interface {
	Hash(K) int64
	Equal(a, b K) bool
}

// Func adapts a plain hash function over a comparable key type into a
// Hasher that compares keys with ==.
type Func[K comparable] func(K) int64

func (f Func[K]) Hash(key K) int64 { return f(key) }

func (f Func[K]) Equal(a, b K) bool { return a == b }

// Integer is the set of built-in integer types.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Identity returns a Hasher that uses the key itself as its hash value.
// Useful for dense integer ids, and for tests that need to place keys in
// known slots.
func Identity[K Integer]() Hasher[K] {
	return Func[K](func(key K) int64 {
		return int64(key)
	})
}

// String returns a byte-folding Hasher for string keys.
func String[K ~string]() Hasher[K] {
	return Func[K](func(key K) int64 {
		// djb2 but multiply by 17000069 rather than 33
		var h = int64(5381)
		k := int64(17000069)
		for i := 0; i < len(key); i++ {
			h = (h * k) + int64(key[i])
		}
		return h
	})
}

// Mod returns n modulo m normalized into [0, m), even when n is negative.
// Go's % keeps the sign of n, which would produce a negative slot index for
// a negative hash. m must be positive.
func Mod(n int64, m int64) int64 {
	return ((n % m) + m) % m
}
