package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	logpkg "github.com/kailas-cloud/querydsl/internal/logger"
	"github.com/kailas-cloud/querydsl/internal/metrics"
	"github.com/kailas-cloud/querydsl/internal/template"
)

type renderOptions struct {
	Pretty bool
	Indent string
	Strict bool
}

// renderFiles writes every template in order and keeps going past failures.
// The returned error joins all per-file failures.
func renderFiles(ctx context.Context, w io.Writer, paths []string, opts renderOptions) error {
	logger := logpkg.FromContext(ctx)

	var errs []error
	for _, path := range paths {
		start := time.Now()
		n, err := renderFile(w, path, opts)
		metrics.ObserveRender("boosting", n, err)
		if err != nil {
			logger.Warn("Render failed", zap.String("template", path), zap.Error(err))
			errs = append(errs, err)
			continue
		}
		logger.Info("Rendered template",
			zap.String("template", path),
			zap.Int("bytes", n),
			zap.Duration("latency", time.Since(start)),
		)
	}
	return errors.Join(errs...)
}

func renderFile(w io.Writer, path string, opts renderOptions) (int, error) {
	q, err := template.ParseFile(path)
	if err != nil {
		return 0, err
	}
	if opts.Strict {
		if err := q.ValidateNegativeBoost(); err != nil {
			return 0, fmt.Errorf("%s: %w", path, err)
		}
	}

	data, err := q.MarshalJSON()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", path, err)
	}
	if opts.Pretty {
		var buf bytes.Buffer
		if err := json.Indent(&buf, data, "", opts.Indent); err != nil {
			return 0, fmt.Errorf("%s: indent: %w", path, err)
		}
		data = buf.Bytes()
	}
	data = append(data, '\n')

	n, err := w.Write(data)
	if err != nil {
		return n, fmt.Errorf("%s: write: %w", path, err)
	}
	return n, nil
}
