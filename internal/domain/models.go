package domain

import "encoding/json"

// SourceDocument is one input PDF for a single analysis run. It is built once
// when the run receives its path list and not mutated afterwards.
type SourceDocument struct {
	Path     string
	Filename string
}

// AnalyzedFile is the audit snapshot of one input file, captured at run start.
type AnalyzedFile struct {
	Filename  string `json:"filename"`
	Path      string `json:"path"`
	Size      int64  `json:"size"`
	Timestamp int64  `json:"timestamp"`
}

// FormCandidate is one page believed to be a submittable form. Page numbers
// are 1-based; a zero Page means the candidate was recovered from prose and
// carries no page reference.
type FormCandidate struct {
	Page          int    `json:"page,omitempty"`
	Title         string `json:"title"`
	Filename      string `json:"filename,omitempty"`
	RequiresInput bool   `json:"requires_input"`
	Doc           string `json:"doc,omitempty"`

	// Set once the candidate has been materialized as a single-page PDF.
	SourcePDF  string `json:"source_pdf,omitempty"`
	OutputPath string `json:"output_path,omitempty"`
	FinalPath  string `json:"final_path,omitempty"`
	RemotePath string `json:"remote_path,omitempty"`
}

// ExtractionResult is the aggregate result of one analysis run. Forms and
// AnalyzedFiles are never nil, even when every downstream stage failed.
type ExtractionResult struct {
	Doc            string          `json:"doc"`
	Forms          []FormCandidate `json:"forms"`
	AnalyzedFiles  []AnalyzedFile  `json:"analyzed_files"`
	MultiDocResult json.RawMessage `json:"multi_doc_result,omitempty"`
	FormsDir       string          `json:"forms_dir,omitempty"`
	RemoteDir      string          `json:"remote_dir,omitempty"`
	FormsGenerated int             `json:"forms_generated"`
	Error          string          `json:"error,omitempty"`
}

// NewExtractionResult returns a well-formed empty result for the given inputs.
func NewExtractionResult(doc string, analyzed []AnalyzedFile) *ExtractionResult {
	if analyzed == nil {
		analyzed = []AnalyzedFile{}
	}
	return &ExtractionResult{
		Doc:           doc,
		Forms:         []FormCandidate{},
		AnalyzedFiles: analyzed,
	}
}

// StorageTarget is the resolved destination for one run's artifacts. LocalDir
// is always usable; RemotePath is empty when no remote destination could be
// composed. When both are set the local directory is authoritative and the
// remote path is a mirror.
type StorageTarget struct {
	LocalDir   string
	RemotePath string
	// LocalIsMirror reports whether LocalDir sits inside a synced mirror of
	// the remote store, as opposed to a temporary staging directory.
	LocalIsMirror bool
}

// RunStage identifies the pipeline stage a run is currently in.
type RunStage string

const (
	StageExtracting  RunStage = "extracting_texts"
	StageClassifying RunStage = "classifying"
	StageParsing     RunStage = "parsing"
	StageResolving   RunStage = "resolving_destination"
	StageSlicing     RunStage = "extracting_pages"
	StagePersisting  RunStage = "persisting"
	StageDone        RunStage = "done"
)
