package parser

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seosik/internal/domain"
)

var snapshot = []domain.AnalyzedFile{
	{Filename: "a.pdf", Path: "/tmp/a.pdf", Size: 1024, Timestamp: 1700000000},
}

func TestParse_SingleObject(t *testing.T) {
	raw := `{"doc":"a.pdf","forms":[{"page":3,"title":"입찰참가신청서","filename":"3p_입찰참가신청서.pdf","requires_input":true}]}`

	result := Parse(raw, snapshot, "a.pdf")

	require.Len(t, result.Forms, 1)
	assert.Equal(t, "a.pdf", result.Doc)
	assert.Equal(t, 3, result.Forms[0].Page)
	assert.Equal(t, "입찰참가신청서", result.Forms[0].Title)
	assert.True(t, result.Forms[0].RequiresInput)
	assert.Equal(t, snapshot, result.AnalyzedFiles)
	assert.Empty(t, result.Error)
}

func TestParse_SingleObject_BackfillsDoc(t *testing.T) {
	raw := `{"forms":[{"page":1,"title":"견적서","requires_input":true}]}`

	result := Parse(raw, snapshot, "a.pdf")

	assert.Equal(t, "a.pdf", result.Doc)
	require.Len(t, result.Forms, 1)
}

func TestParse_MultiDocArray_FlattensForms(t *testing.T) {
	raw := `[
		{"doc":"a.pdf","forms":[{"page":3,"title":"입찰참가신청서","requires_input":true}]},
		{"doc":"b.pdf","forms":[{"page":7,"title":"청렴계약 이행각서","requires_input":true}]}
	]`

	result := Parse(raw, snapshot, "a.pdf")

	require.Len(t, result.Forms, 2)
	assert.Equal(t, "a.pdf", result.Doc)
	assert.Equal(t, "a.pdf", result.Forms[0].Doc)
	assert.Equal(t, "b.pdf", result.Forms[1].Doc)

	// Original per-document array must survive for audit.
	require.NotNil(t, result.MultiDocResult)
	var multi []map[string]any
	require.NoError(t, json.Unmarshal(result.MultiDocResult, &multi))
	assert.Len(t, multi, 2)
}

func TestParse_MultiDocArray_FirstNonEmptyDocWins(t *testing.T) {
	raw := `[
		{"doc":"","forms":[]},
		{"doc":"b.pdf","forms":[{"page":2,"title":"가격제안서","requires_input":true}]}
	]`

	result := Parse(raw, snapshot, "a.pdf")

	assert.Equal(t, "b.pdf", result.Doc)
	require.Len(t, result.Forms, 1)
}

func TestParse_JSONWithSurroundingProse(t *testing.T) {
	raw := "분석 결과는 다음과 같습니다.\n" +
		`{"doc":"a.pdf","forms":[{"page":5,"title":"견적서","requires_input":true}]}` +
		"\n이상입니다."

	result := Parse(raw, snapshot, "a.pdf")

	require.Len(t, result.Forms, 1)
	assert.Equal(t, 5, result.Forms[0].Page)
}

func TestParse_NoJSON_FallsBackToPatterns(t *testing.T) {
	raw := "이 문서에는 별지 제2호 서식이 포함되어 있습니다."

	result := Parse(raw, snapshot, "a.pdf")

	require.NotNil(t, result.Forms)
	require.Len(t, result.Forms, 1)
	assert.Equal(t, "별지 제2호 서식", result.Forms[0].Title)
	assert.Zero(t, result.Forms[0].Page)
	assert.Empty(t, result.Error)
}

func TestParse_NoParseableContent_NeverNilForms(t *testing.T) {
	result := Parse("아무 내용 없음", snapshot, "a.pdf")

	require.NotNil(t, result.Forms)
	assert.Empty(t, result.Forms)
	assert.Equal(t, snapshot, result.AnalyzedFiles)
	assert.NotEmpty(t, result.Error)
}

func TestParse_MalformedJSON_FallsBack(t *testing.T) {
	raw := `{"doc":"a.pdf","forms":[{"page":3,` // truncated

	result := Parse(raw, snapshot, "a.pdf")

	require.NotNil(t, result.Forms)
	assert.Equal(t, snapshot, result.AnalyzedFiles)
}

func TestParse_UndecodableSegmentNoFallback_SetsError(t *testing.T) {
	// Braced but undecodable, and nothing for the pattern tier to recover.
	raw := `{invalid json}`

	result := Parse(raw, snapshot, "a.pdf")

	require.NotNil(t, result.Forms)
	assert.Empty(t, result.Forms)
	assert.NotEmpty(t, result.Error)
}

func TestParse_EmptyFormsArray_StaysEmpty(t *testing.T) {
	raw := `[{"doc":"a.pdf","forms":[]}]`

	result := Parse(raw, snapshot, "a.pdf")

	require.NotNil(t, result.Forms)
	assert.Empty(t, result.Forms)
	assert.Empty(t, result.Error)
}

func TestExtractJSONSegment(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
		ok   bool
	}{
		{"bare object", `{"a":1}`, `{"a":1}`, true},
		{"bare array", `[1]`, `[1]`, true},
		{"prose around object", `before {"a":1} after`, `{"a":1}`, true},
		{"no json", "plain prose", "", false},
		{"open bracket only", "start [ nothing", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := extractJSONSegment(tt.in)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, string(got))
			}
		})
	}
}
