package fileingest

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// FileMeta holds metadata about a resume file queued for import.
type FileMeta struct {
	Path    string
	Name    string
	Size    int64
	ModTime time.Time
}

// resumeExtensions are the plain-text formats the importer accepts. PDF and
// DOCX extraction happens before files reach this tool.
var resumeExtensions = map[string]bool{
	".txt": true,
	".md":  true,
}

// ReadFileContent reads the entire content of the file at the given path.
func ReadFileContent(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// DiscoverResumeFiles recursively finds all .txt and .md files under rootDir
// and returns their metadata. Files that cannot be stat'd are skipped.
func DiscoverResumeFiles(ctx context.Context, rootDir string) ([]FileMeta, error) {
	var files []FileMeta
	err := filepath.WalkDir(rootDir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if d.IsDir() {
			return nil
		}
		if !resumeExtensions[strings.ToLower(filepath.Ext(d.Name()))] {
			return nil
		}
		meta, metaErr := ExtractFileMeta(path)
		if metaErr != nil {
			return nil
		}
		files = append(files, meta)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

// ExtractFileMeta stats path and returns its FileMeta.
func ExtractFileMeta(path string) (FileMeta, error) {
	info, err := os.Stat(path)
	if err != nil {
		return FileMeta{}, err
	}
	return FileMeta{
		Path:    path,
		Name:    info.Name(),
		Size:    info.Size(),
		ModTime: info.ModTime(),
	}, nil
}
