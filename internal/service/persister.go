package service

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"os"
	"path/filepath"

	"seosik/internal/domain"
	"seosik/internal/port"
	"seosik/internal/resolver"
)

// ResultFileName is the analysis record written next to the sliced forms.
const ResultFileName = "서식분석결과.json"

// ResultPersister writes an extraction result to its local directory and,
// when a remote path is resolved, mirrors forms and record to object storage.
type ResultPersister struct {
	remote     port.RemoteStorage
	sharedRoot string
}

// NewResultPersister returns a persister. remote may be nil, in which case
// only the local record is written.
func NewResultPersister(remote port.RemoteStorage, sharedRoot string) *ResultPersister {
	return &ResultPersister{remote: remote, sharedRoot: sharedRoot}
}

// Persist writes the result JSON into the target's local directory and
// uploads produced form PDFs plus the record when a remote path is set.
// Sink failures are logged, never fatal. It returns how many form
// artifacts were uploaded.
func (p *ResultPersister) Persist(ctx context.Context, result *domain.ExtractionResult, target domain.StorageTarget) int {
	if target.LocalDir != "" {
		if err := writeResultJSON(filepath.Join(target.LocalDir, ResultFileName), result); err != nil {
			log.Printf("persister: write local record: %v", err)
		}
	}
	if target.RemotePath == "" || p.remote == nil {
		return 0
	}

	uploaded := 0
	for _, form := range result.Forms {
		if ctx.Err() != nil {
			break
		}
		if form.OutputPath == "" {
			continue
		}
		body, err := os.ReadFile(form.OutputPath)
		if err != nil {
			log.Printf("persister: read %s: %v", form.OutputPath, err)
			continue
		}
		remotePath := target.RemotePath + "/" + filepath.Base(form.OutputPath)
		if _, err := p.remote.Upload(ctx, remotePath, body); err != nil {
			log.Printf("persister: upload %s: %v", remotePath, err)
			continue
		}
		uploaded++
	}
	if err := p.remote.UploadJSON(ctx, target.RemotePath+"/"+ResultFileName, result); err != nil {
		log.Printf("persister: upload record: %v", err)
	}
	return uploaded
}

// PersistTo uploads a result's forms and record under the named bid folder
// in the shared root, independent of any local mirror.
func (p *ResultPersister) PersistTo(ctx context.Context, result *domain.ExtractionResult, folder string) int {
	target := domain.StorageTarget{
		LocalDir:   result.FormsDir,
		RemotePath: resolver.RemoteFormsPath(p.sharedRoot, folder),
	}
	return p.Persist(ctx, result, target)
}

func writeResultJSON(path string, result *domain.ExtractionResult) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}
