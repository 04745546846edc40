// Package identity validates and canonicalizes principal identifiers.
//
// A principal is the opaque, externally issued token naming a user or account.
// Its text form is lowercase base32 of a CRC-32 checksum followed by the raw
// identifier bytes, rendered in dash-separated groups of five characters, e.g.
// "uxrrr-q7777-77774-qaaaq-cai". Validation is purely syntactic: no I/O, no
// allocation beyond the decode buffer, safe to run on every keystroke.
package identity

import (
	"encoding/base32"
	"encoding/binary"
	"hash/crc32"
	"strings"

	dErrors "givegate/pkg/domain-errors"
)

// maxRawLen bounds the identifier payload. Longer blobs are not valid
// principals regardless of checksum.
const maxRawLen = 29

const checksumLen = 4

const groupLen = 5

// lowercase RFC 4648 alphabet; the text form never uses padding.
var encoding = base32.NewEncoding("abcdefghijklmnopqrstuvwxyz234567").WithPadding(base32.NoPadding)

// Principal is a parsed, checksum-verified identifier. The zero value is not a
// valid principal; obtain one through Parse or FromRaw.
type Principal struct {
	raw string
}

// Parse is the authoritative grammar check. It accepts only the canonical text
// form: correct grouping, lowercase base32, matching checksum, payload within
// bounds. Any malformation yields a CodeInvalidIdentity error; Parse never
// panics on untrusted input.
func Parse(text string) (Principal, error) {
	if text == "" {
		return Principal{}, dErrors.New(dErrors.CodeInvalidIdentity, "principal is empty")
	}
	for _, group := range strings.Split(text, "-") {
		if len(group) == 0 || len(group) > groupLen {
			return Principal{}, dErrors.New(dErrors.CodeInvalidIdentity, "malformed principal grouping")
		}
	}

	compact := strings.ReplaceAll(text, "-", "")
	decoded, err := encoding.DecodeString(compact)
	if err != nil {
		return Principal{}, dErrors.Wrap(err, dErrors.CodeInvalidIdentity, "principal is not valid base32")
	}
	if len(decoded) < checksumLen || len(decoded) > checksumLen+maxRawLen {
		return Principal{}, dErrors.New(dErrors.CodeInvalidIdentity, "principal has invalid length")
	}

	raw := decoded[checksumLen:]
	want := binary.BigEndian.Uint32(decoded[:checksumLen])
	if crc32.ChecksumIEEE(raw) != want {
		return Principal{}, dErrors.New(dErrors.CodeInvalidIdentity, "principal checksum mismatch")
	}

	p := Principal{raw: string(raw)}
	// Round-trip guards against non-canonical grouping or stray padding bits.
	if p.String() != text {
		return Principal{}, dErrors.New(dErrors.CodeInvalidIdentity, "principal is not in canonical form")
	}
	return p, nil
}

// FromRaw builds a principal from identifier bytes. Used to construct fixtures
// and to re-derive the canonical text of identifiers received in binary form.
func FromRaw(raw []byte) (Principal, error) {
	if len(raw) > maxRawLen {
		return Principal{}, dErrors.New(dErrors.CodeInvalidIdentity, "principal payload too long")
	}
	return Principal{raw: string(raw)}, nil
}

// MustParse panics on invalid input. Reserve it for compile-time-known fixtures.
func MustParse(text string) Principal {
	p, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return p
}

// String renders the canonical text form.
func (p Principal) String() string {
	buf := make([]byte, checksumLen+len(p.raw))
	binary.BigEndian.PutUint32(buf, crc32.ChecksumIEEE([]byte(p.raw)))
	copy(buf[checksumLen:], p.raw)

	encoded := encoding.EncodeToString(buf)
	var b strings.Builder
	b.Grow(len(encoded) + len(encoded)/groupLen)
	for i, r := range encoded {
		if i > 0 && i%groupLen == 0 {
			b.WriteByte('-')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Equal reports identifier equality. Ownership checks compare principals only
// through this method so canonicalization stays in one place.
func (p Principal) Equal(other Principal) bool {
	return p.raw == other.raw
}

// IsValid is the total validation function: a cheap charset pre-filter followed
// by the authoritative grammar parse. Strings containing characters outside
// [a-z0-9-] are rejected before the parser runs.
func IsValid(text string) bool {
	if text == "" {
		return false
	}
	for i := 0; i < len(text); i++ {
		c := text[i]
		if (c < 'a' || c > 'z') && (c < '0' || c > '9') && c != '-' {
			return false
		}
	}
	_, err := Parse(text)
	return err == nil
}
