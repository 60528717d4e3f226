package crypto

import (
	"crypto/subtle"
	"encoding/binary"
)

// frame prepends the associated data to plaintext as
// uvarint(len(aad)) ‖ aad ‖ plaintext, for ciphers without native AAD.
func frame(aad, plaintext []byte) []byte {
	out := make([]byte, 0, binary.MaxVarintLen64+len(aad)+len(plaintext))
	out = binary.AppendUvarint(out, uint64(len(aad)))
	out = append(out, aad...)
	return append(out, plaintext...)
}

// unframe checks the embedded associated data against aad and returns the
// plaintext that follows it.
func unframe(framed, aad []byte) ([]byte, error) {
	n, read := binary.Uvarint(framed)
	if read <= 0 {
		return nil, ErrAuthentication
	}

	rest := framed[read:]
	if n > uint64(len(rest)) || n != uint64(len(aad)) {
		return nil, ErrAuthentication
	}

	if subtle.ConstantTimeCompare(rest[:n], aad) != 1 {
		return nil, ErrAuthentication
	}

	return rest[n:], nil
}
