package service

import "math/rand/v2"

const userIDLength = 10

// GenerateUserID returns a fresh 10-character numeric identifier, each digit
// drawn independently and uniformly from 0-9. Repeated calls are independent;
// collisions are tolerated and resolved by upsert semantics at the store
// layer, so no uniqueness bookkeeping happens here.
func GenerateUserID() string {
	var b [userIDLength]byte
	for i := range b {
		b[i] = '0' + byte(rand.IntN(10))
	}
	return string(b[:])
}
