package order

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"time"
)

// TokenPrefix heads every pickup token. The rest is numeric so counter staff
// can read the token aloud.
const TokenPrefix = "CTN"

// GeneratePickupToken mints a candidate pickup token: prefix, four digits
// derived from the clock, three from crypto/rand. Uniqueness is enforced by
// the orders table; a unique-constraint violation on persist triggers exactly
// one regeneration with fresh randomness.
func GeneratePickupToken(now time.Time) (string, error) {
	var buf [4]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return "", fmt.Errorf("failed to read randomness for pickup token: %w", err)
	}
	random := binary.BigEndian.Uint32(buf[:]) % 1000
	timed := now.Unix() % 10000
	return fmt.Sprintf("%s-%04d%03d", TokenPrefix, timed, random), nil
}
