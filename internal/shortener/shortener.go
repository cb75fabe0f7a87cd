package shortener

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

// DefaultLength is the length of a generated short code.
const DefaultLength = 6

// alphabet holds the 62 URL-safe alphanumeric characters codes are drawn from.
const alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// ErrCodeSpaceExhausted is returned when no free code was found within the attempt budget.
var ErrCodeSpaceExhausted = errors.New("no free short code available")

// reservedCodes collide with fixed GET routes and can never be handed out.
var reservedCodes = map[string]struct{}{
	"all":    {},
	"health": {},
}

// GenerateShortCode returns length characters picked uniformly at random from the alphabet.
// It is not cryptographically secure and does not check for collisions; that is the caller's job.
func GenerateShortCode(length int) string {
	b := make([]byte, length)
	for i := range b {
		b[i] = alphabet[rand.IntN(len(alphabet))]
	}
	return string(b)
}

// IsValidShortCode reports whether code could have been produced by GenerateShortCode.
func IsValidShortCode(code string) bool {
	if code == "" {
		return false
	}
	for i := 0; i < len(code); i++ {
		c := code[i]
		if !('a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9') {
			return false
		}
	}
	return true
}

// Allocator finds a short code that is not yet taken.
type Allocator struct {
	Length      int // Initial code length
	MaxAttempts int // Attempts per length before growing the code
	MaxLength   int

	// Generate produces a candidate of the given length. Defaults to GenerateShortCode.
	Generate func(length int) string
}

// NewAllocator returns an Allocator using the random generator.
func NewAllocator(length, maxAttempts, maxLength int) *Allocator {
	return &Allocator{
		Length:      length,
		MaxAttempts: maxAttempts,
		MaxLength:   maxLength,
		Generate:    GenerateShortCode,
	}
}

// Allocate draws candidates until taken reports one as free. After MaxAttempts
// collisions at one length it moves on to the next longer length, up to MaxLength.
func (a *Allocator) Allocate(taken func(code string) (bool, error)) (string, error) {
	generate := a.Generate
	if generate == nil {
		generate = GenerateShortCode
	}

	for length := a.Length; length <= a.MaxLength; length++ {
		for attempt := 0; attempt < a.MaxAttempts; attempt++ {
			code := generate(length)
			if _, reserved := reservedCodes[code]; reserved {
				continue
			}

			used, err := taken(code)
			if err != nil {
				return "", fmt.Errorf("check short code %q: %w", code, err)
			}
			if !used {
				return code, nil
			}
		}
	}
	return "", fmt.Errorf("%w after %d attempts per length %d..%d",
		ErrCodeSpaceExhausted, a.MaxAttempts, a.Length, a.MaxLength)
}
