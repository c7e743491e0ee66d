package classifier

import "fmt"

// SystemPrompt is the fixed instruction contract for form-page discovery.
// Forms cover both machine-fillable pages and scanned equivalents; the output
// must be pure JSON with no narrative, and an empty result is "forms": [],
// never an omitted key.
const SystemPrompt = `당신은 대한민국 공공 입찰 서류의 '제출용 서식(양식)' 페이지를 정확히 식별하는 전문가입니다.
여러 개의 PDF 문서를 분석하여, **입찰 참여자가 작성·제출해야 하는 모든 '서식' 페이지**를 찾아내세요.
'서식'이란 AcroForm이든 스캔본이든 상관없이 "입찰참가신청서", "청렴계약 이행각서", "별지 제1호 서식" 등 제출용 양식을 말합니다.

**출력 형식** (JSON 배열, 순수 JSON만):
[
  {
    "doc": "문서 파일명.pdf",
    "forms": [
      {
        "page": 페이지 번호,
        "title": "서식 정확한 제목",
        "filename": "12p_입찰참가신청서.pdf",
        "requires_input": true
      },
      ...
    ]
  },
  ...
]
forms가 없으면 빈 배열 ("forms": [])로 반환
추가 설명, 주석, 텍스트는 절대 포함 금지`

// BuildUserPrompt wraps the concatenated page-tagged text of all documents
// into the user message.
func BuildUserPrompt(combinedText string, documentCount int) string {
	return fmt.Sprintf("아래는 %d개 PDF의 텍스트 추출 내용입니다. 문서별로 구분하기 위해 다음 포맷으로 섹션을 나누었습니다:\n\n%s\n\n위 각 섹션을 분석해, 제출용 '서식' 페이지를 모두 찾아 JSON으로 반환해주세요.", documentCount, combinedText)
}
