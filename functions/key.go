package functions

import (
	"encoding/hex"
	"fmt"
	"reflect"

	"golang.org/x/crypto/blake2b"
)

// cacheKey is the BLAKE2b-256 digest of a serialized argument list.
type cacheKey [blake2b.Size256]byte

// keyOf serializes args (count, then the dynamic type and Go-syntax value of
// each argument) and digests the result. Two argument lists map to the same
// key when they print identically. Pointers are keyed by address.
func keyOf[A any](args []A) cacheKey {
	// New256 only fails for keys longer than 64 bytes.
	h, _ := blake2b.New256(nil)
	fmt.Fprintf(h, "%d", len(args))
	for _, arg := range args {
		if v := reflect.ValueOf(arg); v.Kind() == reflect.Pointer {
			// %#v prints the pointee of struct pointers.
			fmt.Fprintf(h, "\x00%T\x1f%#x", arg, v.Pointer())
			continue
		}
		fmt.Fprintf(h, "\x00%T\x1f%#v", arg, arg)
	}

	var key cacheKey
	h.Sum(key[:0])
	return key
}

// String returns a short hex prefix of the key, for logs.
func (k cacheKey) String() string {
	return hex.EncodeToString(k[:6])
}
