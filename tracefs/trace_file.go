package tracefs

import (
	"context"
	"io"

	vfs "github.com/mnguyen284/go-vfs"
	"go.opentelemetry.io/otel/trace"
)

// traceFile is an existing file whose Open method hands back instrumented
// content streams. All other metadata accessors pass through.
type traceFile struct {
	vfs.FileInfo

	ctx    context.Context
	tracer trace.Tracer
	path   string
}

var _ vfs.FileInfo = (*traceFile)(nil)

func (f *traceFile) Open() (io.ReadCloser, error) {
	_, span := f.tracer.Start(f.ctx, "file.Open", trace.WithAttributes(Path(f.path)))
	defer span.End()

	rc, err := f.FileInfo.Open()
	if err != nil {
		return nil, recordError(span, err)
	}

	return &traceReader{rc: rc, ctx: f.ctx, tracer: f.tracer, path: f.path}, nil
}

type traceReader struct {
	rc     io.ReadCloser
	ctx    context.Context
	tracer trace.Tracer
	path   string
}

var _ io.ReadCloser = (*traceReader)(nil)

func (r *traceReader) Read(p []byte) (int, error) {
	_, span := r.tracer.Start(r.ctx, "file.Read", trace.WithAttributes(Path(r.path)))
	defer span.End()

	n, err := r.rc.Read(p)

	span.SetAttributes(FileBytesRead(n))

	return n, recordError(span, err)
}

func (r *traceReader) Close() error {
	_, span := r.tracer.Start(r.ctx, "file.Close", trace.WithAttributes(Path(r.path)))
	defer span.End()

	return recordError(span, r.rc.Close())
}
