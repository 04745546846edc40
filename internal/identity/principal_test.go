package identity

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	dErrors "givegate/pkg/domain-errors"
)

type PrincipalSuite struct {
	suite.Suite
}

func TestPrincipalSuite(t *testing.T) {
	suite.Run(t, new(PrincipalSuite))
}

// Known-good identifiers: a service id, the anonymous principal, and the
// zero-payload principal.
var validTexts = []string{
	"uxrrr-q7777-77774-qaaaq-cai",
	"2vxsx-fae",
	"aaaaa-aa",
}

func (s *PrincipalSuite) TestParse() {
	s.Run("accepts known-good identifiers", func() {
		for _, text := range validTexts {
			p, err := Parse(text)
			s.Require().NoError(err, text)
			s.Equal(text, p.String())
		}
	})

	s.Run("round-trips arbitrary payloads", func() {
		payloads := [][]byte{
			{},
			{0x04},
			{0x00, 0x01, 0x02, 0x03},
			[]byte(strings.Repeat("x", 29)),
		}
		for _, raw := range payloads {
			p, err := FromRaw(raw)
			s.Require().NoError(err)

			parsed, err := Parse(p.String())
			s.Require().NoError(err)
			s.True(parsed.Equal(p))
		}
	})

	s.Run("rejects empty input", func() {
		_, err := Parse("")
		s.Require().Error(err)
		s.Equal(dErrors.CodeInvalidIdentity, dErrors.CodeOf(err))
	})

	s.Run("rejects checksum damage", func() {
		// Swap one character in a valid identifier; the CRC no longer matches.
		_, err := Parse("uxrrr-q7777-77774-qaaaq-cbi")
		s.Require().Error(err)
		s.Equal(dErrors.CodeInvalidIdentity, dErrors.CodeOf(err))
	})

	s.Run("rejects non-canonical grouping", func() {
		for _, text := range []string{
			"uxrrrq-7777-77774-qaaaq-cai",
			"uxrrr-q777777774-qaaaq-cai",
			"uxrrr--q7777-77774-qaaaq-cai",
			"-uxrrr-q7777-77774-qaaaq-cai",
		} {
			_, err := Parse(text)
			s.Error(err, text)
		}
	})

	s.Run("rejects oversized payloads", func() {
		_, err := FromRaw([]byte(strings.Repeat("x", 30)))
		s.Require().Error(err)
	})
}

func (s *PrincipalSuite) TestIsValid() {
	s.Run("true for grammar-accepted strings", func() {
		for _, text := range validTexts {
			s.True(IsValid(text), text)
		}
	})

	s.Run("false outside restricted charset", func() {
		for _, text := range []string{
			"UXRRR-Q7777-77774-QAAAQ-CAI",
			"uxrrr q7777",
			"uxrrr_q7777",
			"uxrrr-q7777!",
			"принципал",
		} {
			s.False(IsValid(text), text)
		}
	})

	s.Run("false for charset-clean but ungrammatical strings", func() {
		// 0, 1, 8, 9 pass the charset pre-filter but are outside the base32
		// alphabet, so the parse must catch them.
		s.False(IsValid("00000-11111"))
		s.False(IsValid("abcde"))
	})

	s.Run("false for empty string", func() {
		s.False(IsValid(""))
	})

	s.Run("total under malformed input", func() {
		s.NotPanics(func() {
			IsValid(strings.Repeat("-", 1024))
			IsValid(strings.Repeat("a", 1024))
		})
	})
}
