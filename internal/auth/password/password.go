package password

import "golang.org/x/crypto/bcrypt"

// DefaultCost is deliberately above bcrypt's minimum so hashing stays slow.
const DefaultCost = 10

// Hasher wraps bcrypt with a configured cost factor.
type Hasher struct {
	cost int
}

func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost {
		cost = DefaultCost
	}
	return &Hasher{cost: cost}
}

// Hash generates a salted hash from a plaintext password.
func (h *Hasher) Hash(plaintext string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	return string(bytes), err
}

// Check reports whether plaintext matches the stored hash.
func (h *Hasher) Check(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
