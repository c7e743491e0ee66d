package service

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"seosik/internal/domain"
	"seosik/internal/parser"
	"seosik/internal/pdf"
	"seosik/internal/port"
	"seosik/internal/resolver"
)

// AnalyzeInput carries one analysis run's parameters.
type AnalyzeInput struct {
	// Paths are the source PDF files, in order. The first path anchors
	// destination resolution.
	Paths []string
	// FolderHint, when set, names the bid folder under the shared root
	// and pins the remote destination regardless of local mirror state.
	FolderHint string
	// Observer receives progress and log events. Nil is allowed.
	Observer port.RunObserver
}

// AnalyzeService runs the form discovery pipeline over a set of bid PDFs.
type AnalyzeService interface {
	AnalyzeForms(ctx context.Context, input AnalyzeInput) (*domain.ExtractionResult, error)
}

type analyzeService struct {
	texts      port.TextExtractor
	slicer     port.PageSlicer
	classifier port.Classifier
	resolver   *resolver.Resolver
	persister  *ResultPersister
}

// NewAnalyzeService wires the pipeline stages together.
func NewAnalyzeService(
	texts port.TextExtractor,
	slicer port.PageSlicer,
	classifier port.Classifier,
	res *resolver.Resolver,
	persister *ResultPersister,
) AnalyzeService {
	return &analyzeService{
		texts:      texts,
		slicer:     slicer,
		classifier: classifier,
		resolver:   res,
		persister:  persister,
	}
}

// AnalyzeForms extracts text from every source PDF, classifies the combined
// text, slices out the identified form pages and persists the artifacts.
// It returns an error only when there is nothing to analyze; every failure
// past that point is recorded on the result instead so callers always get
// a well formed audit record.
func (s *analyzeService) AnalyzeForms(ctx context.Context, input AnalyzeInput) (*domain.ExtractionResult, error) {
	if len(input.Paths) == 0 {
		return nil, domain.ErrNoInputDocuments
	}
	obs := input.Observer
	if obs == nil {
		obs = port.NopObserver{}
	}

	docs := make([]domain.SourceDocument, 0, len(input.Paths))
	analyzed := make([]domain.AnalyzedFile, 0, len(input.Paths))
	for _, p := range input.Paths {
		doc := domain.SourceDocument{Path: p, Filename: filepath.Base(p)}
		docs = append(docs, doc)
		af := domain.AnalyzedFile{
			Filename:  doc.Filename,
			Path:      doc.Path,
			Timestamp: time.Now().Unix(),
		}
		if fi, err := os.Stat(p); err == nil {
			af.Size = fi.Size()
		}
		analyzed = append(analyzed, af)
	}
	primaryDoc := docs[0].Filename

	workDir, err := os.MkdirTemp("", "seosik-")
	if err != nil {
		log.Printf("analyze: temp dir: %v", err)
		workDir = ""
	}

	// Stage 1: text extraction, 0-30.
	log.Printf("analyze: stage %s, %d documents", domain.StageExtracting, len(input.Paths))
	obs.Log(fmt.Sprintf("%d개 PDF에서 텍스트 추출 중...", len(input.Paths)))
	var combined strings.Builder
	for i, doc := range docs {
		if ctx.Err() != nil {
			result := domain.NewExtractionResult(primaryDoc, analyzed)
			result.Error = ctx.Err().Error()
			return result, nil
		}
		text, err := s.texts.ExtractText(doc.Path)
		if err != nil {
			text = fmt.Sprintf("[Error extracting text: %v]", err)
		}
		combined.WriteString(fmt.Sprintf("\n=== FILE: %s ===\n", doc.Filename))
		combined.WriteString(text)
		obs.Progress((i + 1) * 30 / len(docs))
	}

	// Stage 2: classification, 30-60.
	log.Printf("analyze: stage %s", domain.StageClassifying)
	obs.Progress(30)
	obs.Log("AI 분석 요청 중...")
	raw, err := s.classifier.Classify(ctx, port.ClassifyInput{
		CombinedText:  combined.String(),
		DocumentCount: len(input.Paths),
	})
	if err != nil {
		log.Printf("analyze: classification failed: %v", err)
		obs.Log(fmt.Sprintf("분석 실패: %v", err))
		result := domain.NewExtractionResult(primaryDoc, analyzed)
		result.Error = err.Error()
		obs.Progress(100)
		return result, nil
	}
	obs.Progress(60)

	// Stage 3: response parsing, 60-70.
	log.Printf("analyze: stage %s", domain.StageParsing)
	result := parser.Parse(raw, analyzed, primaryDoc)
	obs.Progress(70)

	if ctx.Err() != nil {
		result.Error = ctx.Err().Error()
		return result, nil
	}

	// Stage 4: destination resolution and page extraction, 70-90.
	log.Printf("analyze: stage %s", domain.StageResolving)
	target, err := s.resolver.Resolve(input.Paths[0], input.FolderHint, workDir)
	if err != nil {
		log.Printf("analyze: resolve destination: %v", err)
		result.Error = err.Error()
		return result, nil
	}
	result.FormsDir = target.LocalDir
	result.RemoteDir = target.RemotePath

	log.Printf("analyze: stage %s, %d candidates", domain.StageSlicing, len(result.Forms))
	materialized := make([]domain.FormCandidate, 0, len(result.Forms))
	for i, cand := range result.Forms {
		if ctx.Err() != nil {
			break
		}
		if out, ok := s.extractCandidate(cand, docs, *target, obs); ok {
			materialized = append(materialized, out)
		}
		if len(result.Forms) > 0 {
			obs.Progress(70 + (i+1)*20/len(result.Forms))
		}
	}
	canceled := ctx.Err() != nil
	result.Forms = materialized
	result.FormsGenerated = len(materialized)
	if canceled {
		result.Error = ctx.Err().Error()
		return result, nil
	}
	obs.Progress(90)

	// Stage 5: persistence, 90-95.
	log.Printf("analyze: stage %s", domain.StagePersisting)
	obs.Log("분석 결과 저장 중...")
	written := s.persister.Persist(ctx, result, *target)
	obs.Progress(95)
	if written > 0 {
		obs.Log(fmt.Sprintf("서식 %d건 업로드 완료", written))
	}

	log.Printf("analyze: stage %s, %d forms generated", domain.StageDone, result.FormsGenerated)
	obs.Log(fmt.Sprintf("분석 완료: 서식 %d건", result.FormsGenerated))
	obs.Progress(100)
	return result, nil
}

// extractCandidate slices the candidate's page into its own PDF under the
// target directory. It returns the updated candidate and whether a page
// was actually written.
func (s *analyzeService) extractCandidate(cand domain.FormCandidate, docs []domain.SourceDocument, target domain.StorageTarget, obs port.RunObserver) (domain.FormCandidate, bool) {
	if cand.Page < 1 {
		obs.Log(fmt.Sprintf("서식 '%s': 페이지 번호 없음, 건너뜀", cand.Title))
		return cand, false
	}
	filename := cand.Filename
	if filename == "" {
		filename = pdf.CandidateFilename(cand.Page, cand.Title)
	}
	filename = pdf.SanitizeFilename(filename)
	dst := filepath.Join(target.LocalDir, filename)

	for _, src := range candidateSources(cand, docs) {
		count, err := s.slicer.PageCount(src.Path)
		if err != nil {
			log.Printf("analyze: page count %s: %v", src.Path, err)
			continue
		}
		if cand.Page > count {
			continue
		}
		if err := s.slicer.ExtractPage(src.Path, cand.Page, dst); err != nil {
			log.Printf("analyze: extract page %d from %s: %v", cand.Page, src.Path, err)
			continue
		}
		cand.Filename = filename
		cand.SourcePDF = src.Filename
		cand.OutputPath = dst
		cand.FinalPath = dst
		if target.RemotePath != "" {
			cand.RemotePath = target.RemotePath + "/" + filename
		}
		obs.Log(fmt.Sprintf("서식 생성: %s (%s %dp)", filename, cand.SourcePDF, cand.Page))
		return cand, true
	}
	obs.Log(fmt.Sprintf("서식 '%s': %dp 범위 밖, 건너뜀", cand.Title, cand.Page))
	return cand, false
}

// candidateSources orders the source documents to try for a candidate.
// When the classifier named a document that matches one of the inputs,
// only that document is searched; otherwise every input is tried in order.
func candidateSources(cand domain.FormCandidate, docs []domain.SourceDocument) []domain.SourceDocument {
	if cand.Doc != "" {
		for _, doc := range docs {
			if doc.Filename == cand.Doc {
				return []domain.SourceDocument{doc}
			}
		}
	}
	return docs
}
