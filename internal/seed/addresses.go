package seed

// Early-block coinbase addresses seeded unconditionally. The genesis output
// in particular is not spendable and some nodes report its script as
// non-standard, so address decoding cannot be relied on for these blocks.
var fallbackAddresses = map[uint64]string{
	0: "1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa",
	1: "12c6DSiU4Rq3P4ZxziKxzrL5LmMBrzjrJX",
	2: "1HLoD9E4SDFFPDiYfNYnkBLQ85Y51J3Zb1",
}

// FallbackAddresses returns the early-block addresses keyed by height.
func FallbackAddresses() map[uint64]string {
	out := make(map[uint64]string, len(fallbackAddresses))
	for h, addr := range fallbackAddresses {
		out[h] = addr
	}
	return out
}
