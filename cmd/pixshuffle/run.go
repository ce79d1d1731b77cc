package main

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"golang.org/x/image/font"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/pixshuffle/permute"
	"github.com/katalvlaran/pixshuffle/source"
	"github.com/katalvlaran/pixshuffle/watermark"
)

// runner processes a batch of sources in one direction.
type runner struct {
	cfg     config
	dir     permute.Direction
	engine  *permute.Engine
	fetcher source.Fetcher
	decoder source.Decoder
	face    font.Face // nil unless watermarking
	log     zerolog.Logger
}

// run processes srcs concurrently, at most cfg.jobs at a time. The first
// failure cancels sources that have not started yet. outs[i] is the output
// path of the i-th distinct source, or "" if it was not written. Distinct
// sources always get distinct output paths (see outputPaths).
func (r *runner) run(ctx context.Context, srcs []string) ([]string, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	srcs = lo.Uniq(srcs)
	paths := r.outputPaths(srcs)
	outs := make([]string, len(srcs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(r.cfg.jobs, 1))
	for i, src := range srcs {
		g.Go(func() error {
			out, err := r.process(ctx, src, paths[i])
			if err != nil {
				return fmt.Errorf("%s: %w", src, err)
			}
			outs[i] = out
			return nil
		})
	}
	err := g.Wait()
	if err != nil {
		r.log.Error().Err(err).Msg("batch failed")
	}

	return outs, err
}

// process loads, transforms and writes a single source to out.
func (r *runner) process(ctx context.Context, src, out string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	start := time.Now()

	fctx, cancel := context.WithTimeout(ctx, r.cfg.timeout)
	img, err := source.Load(fctx, r.fetcher, r.decoder, src)
	cancel()
	if err != nil {
		return "", err
	}

	var res *image.NRGBA
	if r.dir == permute.Forward {
		res, err = r.engine.EncryptImage(img)
	} else {
		res, err = r.engine.DecryptImage(img)
	}
	if err != nil {
		return "", err
	}
	if r.face != nil {
		res = r.stamp(res, src)
	}

	if err := writePNG(out, res); err != nil {
		return "", err
	}
	r.log.Info().
		Str("src", src).
		Str("out", out).
		Stringer("direction", r.dir).
		Int("width", res.Rect.Dx()).
		Int("height", res.Rect.Dy()).
		Dur("elapsed", time.Since(start)).
		Msg("done")

	return out, nil
}

// stamp watermarks res; a failure is logged and the unmarked image kept.
func (r *runner) stamp(res *image.NRGBA, src string) *image.NRGBA {
	token := watermark.RandomToken(watermark.DefaultTokenLength)
	stamped, err := watermark.Stamp(res, token, watermark.WithFace(r.face))
	if err != nil {
		r.log.Warn().Err(err).Str("src", src).Msg("watermark skipped")
		return res
	}
	r.log.Debug().Str("src", src).Str("token", token).Msg("watermark stamped")

	return stamped
}

// outputPaths assigns every source <dir>/<stem><suffix>.png, where dir is
// cfg.outDir, the directory of a file source, or the working directory.
// A path already claimed by an earlier source is retried as
// <stem>-<i><suffix>.png with increasing i.
func (r *runner) outputPaths(srcs []string) []string {
	paths := make([]string, len(srcs))
	taken := make(map[string]bool, len(srcs))
	for i, src := range srcs {
		dir, stem := r.outputDir(src), source.BaseName(src, i)
		p := filepath.Join(dir, stem+r.cfg.suffix+".png")
		for n := i; taken[p]; n++ {
			p = filepath.Join(dir, fmt.Sprintf("%s-%d%s.png", stem, n, r.cfg.suffix))
		}
		taken[p] = true
		paths[i] = p
	}

	return paths
}

func (r *runner) outputDir(src string) string {
	dir := r.cfg.outDir
	if dir == "" && source.IsFile(src) {
		dir = filepath.Dir(strings.TrimPrefix(src, source.SchemeFile))
	}

	return lo.Ternary(dir == "", ".", dir)
}

// writePNG encodes img to path through a temporary file so a failed encode
// never leaves a truncated result behind.
func writePNG(path string, img image.Image) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".pixshuffle-*.png")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if err := png.Encode(tmp, img); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), path)
}
