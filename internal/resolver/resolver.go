// Package resolver decides where extracted form artifacts and the analysis
// result live: inside a locally-synced mirror of the shared cloud folder, in
// a staging directory that only exists to feed a remote upload, or plainly
// beside the source files. The policy is a fixed strategy order; the
// environment-specific parts (mirror display names, well-known roots) come
// from configuration.
package resolver

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"seosik/internal/config"
	"seosik/internal/domain"
)

// FormsDirName is the per-bid subdirectory that holds extracted form pages.
const FormsDirName = "서식"

// Resolver computes the storage target for one analysis run.
type Resolver struct {
	sharedRoot  string
	mirrorNames []string
	wellKnown   []string
	maxAscend   int
}

// New creates a Resolver. sharedRoot is the logical top-level bid folder name
// shared by the remote store and any local mirror of it.
func New(cfg *config.ResolverConfig, sharedRoot string) *Resolver {
	maxAscend := cfg.MaxAscend
	if maxAscend <= 0 {
		maxAscend = 5
	}
	mirrorNames := cfg.MirrorNames
	if len(mirrorNames) == 0 {
		mirrorNames = []string{"Dropbox", "드롭박스"}
	}
	return &Resolver{
		sharedRoot:  sharedRoot,
		mirrorNames: mirrorNames,
		wellKnown:   defaultWellKnownRoots(cfg.WellKnownRoots),
		maxAscend:   maxAscend,
	}
}

func defaultWellKnownRoots(configured []string) []string {
	roots := make([]string, 0, len(configured)+2)
	roots = append(roots, configured...)
	if home, err := os.UserHomeDir(); err == nil {
		roots = append(roots, filepath.Join(home, "Dropbox"), filepath.Join(home, "Documents", "Dropbox"))
	}
	return roots
}

// Resolve computes the destination for artifacts produced from firstSource.
// folderHint, when non-empty, is the logical remote folder name; a remote
// path is then always constructible by pure string composition, independent
// of local filesystem state. workDir is the run's temporary directory, used
// as a local staging area when no mirror is found. The returned target always
// has a created, writable LocalDir.
func (r *Resolver) Resolve(firstSource, folderHint, workDir string) (*domain.StorageTarget, error) {
	target := &domain.StorageTarget{}

	if folderHint != "" {
		target.RemotePath = RemoteFormsPath(r.sharedRoot, folderHint)
	}

	srcDir := filepath.Dir(firstSource)
	if root := r.findMirrorRoot(srcDir); root != "" {
		localDir, folderName, err := r.mirrorFormsDir(root, srcDir, firstSource)
		if err == nil {
			target.LocalDir = localDir
			target.LocalIsMirror = true
			if target.RemotePath == "" {
				target.RemotePath = RemoteFormsPath(r.sharedRoot, folderName)
			}
			return target, nil
		}
		log.Printf("resolver: mirror root %s found but unusable: %v", root, err)
	}

	// No usable mirror. With a hint the local side is a staging dir inside
	// the run's working directory; without one, the 서식 folder goes directly
	// beside the source files and no remote destination is assumed.
	var localDir string
	if folderHint != "" && workDir != "" {
		localDir = filepath.Join(workDir, FormsDirName)
	} else {
		localDir = filepath.Join(srcDir, FormsDirName)
	}
	if err := os.MkdirAll(localDir, 0o755); err != nil {
		if workDir == "" {
			return nil, fmt.Errorf("creating forms directory %s: %w", localDir, err)
		}
		// Last resort: the working directory is always writable.
		localDir = filepath.Join(workDir, FormsDirName)
		if err := os.MkdirAll(localDir, 0o755); err != nil {
			return nil, fmt.Errorf("creating staging forms directory %s: %w", localDir, err)
		}
	}
	target.LocalDir = localDir
	return target, nil
}

// RemoteFormsPath composes the remote forms directory for a bid folder.
// Purely string-based; never touches I/O.
func RemoteFormsPath(sharedRoot, folder string) string {
	return "/" + sharedRoot + "/" + folder + "/" + FormsDirName
}

// findMirrorRoot locates the root of a locally-synced mirror, first by
// ascending from start, then through the well-known roots. A directory
// qualifies by carrying a mirror display name or by containing the shared
// bid folder.
func (r *Resolver) findMirrorRoot(start string) string {
	dir := start
	for i := 0; i <= r.maxAscend; i++ {
		if r.isMirrorName(filepath.Base(dir)) {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	for _, root := range r.wellKnown {
		info, err := os.Stat(root)
		if err != nil || !info.IsDir() {
			continue
		}
		if r.isMirrorName(filepath.Base(root)) {
			return root
		}
		if shared, err := os.Stat(filepath.Join(root, r.sharedRoot)); err == nil && shared.IsDir() {
			return root
		}
	}
	return ""
}

func (r *Resolver) isMirrorName(name string) bool {
	for _, m := range r.mirrorNames {
		if name == m {
			return true
		}
	}
	return false
}

// mirrorFormsDir relocates the source's relative path under the mirror root
// and creates the 서식 directory there. It returns the created directory and
// the bid folder name, which doubles as the remote folder.
func (r *Resolver) mirrorFormsDir(root, srcDir, firstSource string) (string, string, error) {
	sharedDir := filepath.Join(root, r.sharedRoot)
	if err := os.MkdirAll(sharedDir, 0o755); err != nil {
		return "", "", fmt.Errorf("creating shared folder %s: %w", sharedDir, err)
	}

	targetDir := ""
	rel, err := filepath.Rel(root, srcDir)
	if err == nil && rel != "." && !strings.HasPrefix(rel, "..") {
		parts := strings.Split(rel, string(filepath.Separator))
		if parts[0] == r.sharedRoot {
			// Already inside the shared bid folder; keep the layout.
			targetDir = filepath.Join(root, rel)
		} else if last := parts[len(parts)-1]; last != "" {
			// Inside the mirror but outside the bid folder: adopt the
			// source's own directory name under the shared folder.
			targetDir = filepath.Join(sharedDir, last)
		}
	}
	if targetDir == "" {
		// Outside the mirror entirely: the source filename names the folder.
		targetDir = filepath.Join(sharedDir, sourceStem(firstSource))
	}

	formsDir := filepath.Join(targetDir, FormsDirName)
	if err := os.MkdirAll(formsDir, 0o755); err != nil {
		return "", "", fmt.Errorf("creating forms directory %s: %w", formsDir, err)
	}
	return formsDir, filepath.Base(targetDir), nil
}

func sourceStem(path string) string {
	name := filepath.Base(path)
	return strings.TrimSuffix(name, filepath.Ext(name))
}
