package convert

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"ia2amp/amp"
	"ia2amp/archive"
	"ia2amp/article"
	"ia2amp/state"
	"ia2amp/style"
)

// Converter renders single article, *amp.Converter satisfies it.
type Converter interface {
	Convert(ctx context.Context, a *article.Article) (*amp.Result, error)
}

var articleExts = []string{".yaml", ".yml", ".json"}

func Run(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("convert")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no input article has been specified")
	}
	if src, err = filepath.Abs(src); err != nil {
		return err
	}

	dst := cmd.Args().Get(1)
	if len(dst) == 0 {
		if dst, err = os.Getwd(); err != nil {
			return fmt.Errorf("unable to get working directory: %w", err)
		}
	}
	if dst, err = filepath.Abs(dst); err != nil {
		return err
	}
	if cmd.Args().Len() > 2 {
		log.Warn("Mailformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	env.NoDirs, env.Overwrite, env.Style = cmd.Bool("nodirs"), cmd.Bool("overwrite"), cmd.String("style")

	conv, err := newConverter(env, log)
	if err != nil {
		return err
	}

	log.Info("Processing starting", zap.String("source", src), zap.String("destination", dst))
	defer func(start time.Time) {
		log.Info("Processing completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	return process(ctx, src, dst, conv, log)
}

// newConverter builds converter from configuration, style requested on
// command line is forced for every article.
func newConverter(env *state.LocalEnv, log *zap.Logger) (*amp.Converter, error) {
	var opts []amp.Option
	if env.Style != "" {
		desc, err := style.Load(env.Cfg.Document.StylesDir, env.Style)
		if err != nil {
			return nil, fmt.Errorf("unable to load requested style %q: %w", env.Style, err)
		}
		sheet, err := style.LoadStylesheet(env.Cfg.Document.StylesDir, env.Style)
		if err != nil {
			return nil, fmt.Errorf("unable to load stylesheet of requested style %q: %w", env.Style, err)
		}
		opts = append(opts, amp.WithStyle(desc, sheet))
	}
	conv, err := amp.New(&env.Cfg.Document, log, opts...)
	if err != nil {
		return nil, fmt.Errorf("unable to prepare converter: %w", err)
	}
	return conv, nil
}

func isArticleFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range articleExts {
		if ext == e {
			return true
		}
	}
	return false
}

// process handles the core conversion logic independently of CLI framework.
// Source is a single article file, a directory which is walked recursively
// or a zip bundle optionally followed by path inside it.
func process(ctx context.Context, src, dst string, conv Converter, log *zap.Logger) error {
	var head, tail string
	for head = src; len(head) != 0; head, tail = filepath.Split(head) {
		if err := ctx.Err(); err != nil {
			return err
		}

		head = strings.TrimSuffix(head, string(filepath.Separator))

		fi, err := os.Stat(head)
		if err != nil {
			// does not exist - probably path in bundle
			continue
		}

		if fi.IsDir() {
			if len(tail) != 0 {
				// directory cannot have tail - it would be simple file
				return fmt.Errorf("input source was not found (%s) => (%s)", head, strings.TrimPrefix(src, head))
			}
			if err := processDir(ctx, head, dst, conv, log); err != nil {
				return fmt.Errorf("unable to process directory: %w", err)
			}
			return nil
		}

		if !fi.Mode().IsRegular() {
			return fmt.Errorf("unexpected path mode for (%s) => (%s)", head, strings.TrimPrefix(src, head))
		}

		bundle, err := archive.IsArchive(head)
		if err != nil {
			return fmt.Errorf("unable to check bundle type: %w", err)
		}
		if bundle {
			inside := filepath.ToSlash(strings.TrimPrefix(strings.TrimPrefix(src, head), string(filepath.Separator)))
			if err := processArchive(ctx, head, inside, "", dst, conv, log); err != nil {
				return fmt.Errorf("unable to process bundle: %w", err)
			}
			return nil
		}

		if len(tail) == 0 && isArticleFile(head) {
			if err := processArticle(ctx, head, filepath.Base(head), dst, conv, log); err != nil {
				log.Error("Unable to process file", zap.String("file", head), zap.Error(err))
			}
			return nil
		}
		return fmt.Errorf("input was not recognized as article (%s)", head)
	}
	return fmt.Errorf("input source was not found (%s)", src)
}

// processDir walks directory tree finding article files and processes them.
func processDir(ctx context.Context, dir, dst string, conv Converter, log *zap.Logger) (err error) {
	count := 0
	defer func() {
		if err == nil && count == 0 {
			log.Debug("Nothing to process", zap.String("dir", dir))
		}
	}()

	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err != nil {
			log.Warn("Skipping path", zap.String("path", path), zap.Error(err))
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}

		src := strings.TrimPrefix(strings.TrimPrefix(path, dir), string(filepath.Separator))

		bundle, err := archive.IsArchive(path)
		if err != nil {
			log.Warn("Skipping file", zap.String("file", path), zap.Error(err))
			return nil
		}
		if bundle {
			count++
			if err := processArchive(ctx, path, "", filepath.Dir(src), dst, conv, log); err != nil {
				log.Error("Unable to process bundle", zap.String("file", path), zap.Error(err))
			}
			return nil
		}

		if !isArticleFile(path) {
			log.Debug("Skipping file, not recognized as article", zap.String("file", path))
			return nil
		}

		count++

		if err := processArticle(ctx, path, src, dst, conv, log); err != nil {
			log.Error("Unable to process file", zap.String("file", path), zap.Error(err))
		}
		return nil
	})
}

// processArchive converts articles found in bundle under "pathIn", output
// keeps bundle structure under "pathOut".
func processArchive(ctx context.Context, bundle, pathIn, pathOut, dst string, conv Converter, log *zap.Logger) (err error) {
	count := 0
	defer func() {
		if err == nil && count == 0 {
			log.Debug("Nothing to process", zap.String("bundle", bundle))
		}
	}()

	return archive.Walk(bundle, pathIn, isArticleFile, func(e archive.Entry) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		count++

		src := filepath.Join(pathOut, filepath.FromSlash(e.Name))
		if err := processEntry(ctx, e, src, dst, conv, log); err != nil {
			log.Error("Unable to process file in bundle",
				zap.String("bundle", bundle), zap.String("file", e.Name), zap.Error(err))
		}
		return nil
	})
}

func processEntry(ctx context.Context, e archive.Entry, src, dst string, conv Converter, log *zap.Logger) error {
	r, err := e.Open()
	if err != nil {
		return err
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	return convertArticle(ctx, data, src, dst, conv, log)
}

// processArticle converts single article file. "path" is where article is
// read from, "src" is the same path relative to the original source (base
// file name when single file was requested).
func processArticle(ctx context.Context, path, src, dst string, conv Converter, log *zap.Logger) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return convertArticle(ctx, data, src, dst, conv, log)
}

// convertArticle converts article document "data". "src" is relative source
// path (including file name), "dst" is the destination directory where the
// converted file should be written.
func convertArticle(ctx context.Context, data []byte, src, dst string, conv Converter, log *zap.Logger) (rerr error) {
	env := state.EnvFromContext(ctx)

	var id, outputName string
	var warnings int

	log.Info("Conversion starting", zap.String("from", src))
	defer func(start time.Time) {
		if r := recover(); r != nil {
			log.Error("Conversion ended with panic",
				zap.Any("panic", r), zap.Duration("elapsed", time.Since(start)), zap.String("to", outputName), zap.ByteString("stack", debug.Stack()))
			rerr = fmt.Errorf("conversion panic: %v", r)
		} else if rerr == nil {
			log.Info("Conversion completed", zap.Duration("elapsed", time.Since(start)), zap.String("to", outputName), zap.String("id", id), zap.Int("warnings", warnings))
		}
	}(time.Now())

	a, err := article.Load(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("unable to load article (%s): %w", src, err)
	}
	id = a.ID

	// Store source for debugging
	if env.Rpt != nil {
		env.Rpt.StoreData(fmt.Sprintf("source-%s%s", id, filepath.Ext(src)), data)
	}

	res, err := conv.Convert(ctx, a)
	if err != nil {
		return fmt.Errorf("unable to convert article (%s): %w", src, err)
	}
	warnings = len(res.Warnings)
	for _, w := range res.Warnings {
		log.Debug("Conversion warning", zap.String("article", id), zap.Any("context", w.Context), zap.Error(w))
	}
	if env.Rpt != nil {
		env.Rpt.StoreData(fmt.Sprintf("article-%s.txt", id), []byte(debugDump(a, res)))
	}

	outputName = buildOutputPath(a, src, dst, env)

	if _, err := os.Stat(outputName); err == nil {
		if !env.Overwrite {
			return fmt.Errorf("output file already exists: %s", outputName)
		}
		log.Warn("Overwriting existing file", zap.String("file", outputName))
	} else if !os.IsNotExist(err) {
		return err
	} else if err := os.MkdirAll(filepath.Dir(outputName), 0755); err != nil {
		return fmt.Errorf("unable to create output directory: %w", err)
	}

	if err := os.WriteFile(outputName, []byte(res.HTML), 0644); err != nil {
		return fmt.Errorf("unable to write output: %w", err)
	}

	// Store conversion result for debugging
	if env.Rpt != nil {
		env.Rpt.Store(fmt.Sprintf("result-%s%s", id, outputExt), outputName)
	}
	return nil
}
