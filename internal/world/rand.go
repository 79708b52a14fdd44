package world

// mulberry32Increment is the Weyl-sequence step of the generator.
const mulberry32Increment = 0x6D2B79F5

// NextMulberry32 advances a mulberry32 state and returns a value in [0, 1)
// together with the new state. All arithmetic wraps modulo 2^32.
func NextMulberry32(state uint32) (float64, uint32) {
	state += mulberry32Increment
	t := (state ^ state>>15) * (state | 1)
	t = (t + (t^t>>7)*(t|61)) ^ t
	return float64(t^t>>14) / (1 << 32), state
}

// Mulberry32 is a small deterministic generator. A seed always yields the
// same sequence, so a (size, seed) pair always yields the same maze.
type Mulberry32 struct {
	state uint32
}

// NewMulberry32 seeds a generator. Seeds are reduced to 32 bits.
func NewMulberry32(seed int64) *Mulberry32 {
	return &Mulberry32{state: uint32(seed)}
}

// Float64 returns the next value in [0, 1).
func (r *Mulberry32) Float64() float64 {
	v, next := NextMulberry32(r.state)
	r.state = next
	return v
}

// Intn returns floor(Float64()*n), a value in [0, n). n must be positive.
func (r *Mulberry32) Intn(n int) int {
	return int(r.Float64() * float64(n))
}
