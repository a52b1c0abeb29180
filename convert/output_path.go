package convert

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gosimple/slug"
	"go.uber.org/zap"

	"ia2amp/article"
	"ia2amp/config"
	"ia2amp/state"
)

const outputExt = ".amp.html"

// buildOutputPath returns constructed output file path/name. It uses either
// default naming scheme (slug of article title, source file name when title
// is empty) or user-defined template and takes into account whether to
// preserve source directory structure on the output.
func buildOutputPath(a *article.Article, src, dst string, env *state.LocalEnv) string {
	outDir := determineOutputDir(src, dst, env)
	defaultFile := buildDefaultFileName(a, src)

	if env.Cfg.Document.OutputNameTemplate == "" {
		return filepath.Join(outDir, defaultFile)
	}

	expandedName := expandOutputNameTemplate(a, src, env)
	if expandedName == "" {
		// fallback to default name if template expansion failed
		return filepath.Join(outDir, defaultFile)
	}

	return assemblePathWithSubdirs(outDir, expandedName)
}

func determineOutputDir(src, dst string, env *state.LocalEnv) string {
	if env.NoDirs {
		return dst
	}
	return filepath.Join(dst, filepath.Dir(src))
}

func buildDefaultFileName(a *article.Article, src string) string {
	name := slug.Make(a.Header.Title.AsPlainText())
	if name == "" {
		name = slug.Make(strings.TrimSuffix(filepath.Base(src), filepath.Ext(src)))
	}
	if name == "" {
		name = a.ID
	}
	return config.CleanFileName(name) + outputExt
}

func expandOutputNameTemplate(a *article.Article, src string, env *state.LocalEnv) string {
	expandedName, err := expandTemplate(a, src, config.OutputNameTemplateFieldName, env.Cfg.Document.OutputNameTemplate)
	if err != nil {
		env.Log.Warn("Unable to prepare output filename", zap.Error(err))
		return ""
	}
	return strings.TrimSpace(filepath.FromSlash(expandedName))
}

// assemblePathWithSubdirs takes an expanded template name (which may contain
// path separators for subdirectories) and assembles it into a full output
// path, cleaning segments as needed.
func assemblePathWithSubdirs(outDir, expandedName string) string {
	pathSegments := splitAndCleanPath(expandedName)
	if len(pathSegments) == 0 {
		return outDir
	}

	dirParts := make([]string, 0, len(pathSegments)+1)
	dirParts = append(dirParts, outDir)
	for _, segment := range pathSegments[:len(pathSegments)-1] {
		dirParts = append(dirParts, config.CleanFileName(segment))
	}
	dirParts = append(dirParts, config.CleanFileName(pathSegments[len(pathSegments)-1])+outputExt)
	return filepath.Join(dirParts...)
}

func splitAndCleanPath(path string) []string {
	path = strings.TrimSuffix(path, string(os.PathSeparator))
	segments := make([]string, 0, 8)

	for head, tail := filepath.Split(path); tail != ""; head, tail = filepath.Split(head) {
		if tail != "." && tail != ".." {
			segments = slices.Insert(segments, 0, tail)
		}
		head = strings.TrimSuffix(head, string(os.PathSeparator))
		if head == "" {
			break
		}
	}
	return segments
}
