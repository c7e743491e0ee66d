package pdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeFilename_StripsIllegalCharacters(t *testing.T) {
	assert.Equal(t, "3p_입찰참가신청서.pdf", SanitizeFilename(`3p_입찰:참가*신청서?.pdf`))
	assert.Equal(t, "ab", SanitizeFilename(`a\/*?:"<>|b`))
}

func TestSanitizeFilename_Idempotent(t *testing.T) {
	inputs := []string{
		`3p_입찰참가신청서.pdf`,
		`a\b/c*d?e:f"g<h>i|j`,
		"",
		"plain-name.pdf",
	}
	for _, in := range inputs {
		once := SanitizeFilename(in)
		assert.Equal(t, once, SanitizeFilename(once), "sanitize must be idempotent for %q", in)
	}
}

func TestSanitizeFilename_KeepsUnicode(t *testing.T) {
	assert.Equal(t, "청렴계약 이행각서", SanitizeFilename("청렴계약 이행각서"))
}

func TestCandidateFilename_Deterministic(t *testing.T) {
	a := CandidateFilename(3, "입찰참가신청서")
	b := CandidateFilename(3, "입찰참가신청서")
	assert.Equal(t, a, b)
	assert.Equal(t, "3p_입찰참가신청서.pdf", a)
}

func TestCandidateFilename_SanitizesTitle(t *testing.T) {
	assert.Equal(t, "7p_가격제안서.pdf", CandidateFilename(7, `가격*제안서?`))
}

func TestCandidateFilename_EmptyTitleUsesDefault(t *testing.T) {
	assert.Equal(t, "2p_서식.pdf", CandidateFilename(2, "  "))
	assert.Equal(t, "2p_서식.pdf", CandidateFilename(2, `\/:*`))
}
