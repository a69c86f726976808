// Package tracefs instruments a FileProvider for distributed tracing
// operations. The OpenTelemetry API is supported.
//
// This is not a file provider in its own right, but a wrapper around an
// existing one: call [New] with a base provider, and every operation on the
// returned provider - including reads of the content streams it opens - is
// reported as a trace span.
//
// In order to report traces, an OTel [trace.TracerProvider] must first be
// set up. The details of this are outside the scope of this module, but see
// the vfscli example in this repository's examples directory for one
// approach. A [trace.TracerProvider] can optionally be passed to [New] using
// [WithTracerProvider].
//
// By default, the global [propagation.TextMapPropagator] is used to extract
// trace information from the context. This can be overridden by passing a
// [propagation.TextMapPropagator] to [WithPropagators].
package tracefs

import (
	"context"
	"fmt"

	vfs "github.com/mnguyen284/go-vfs"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

type traceFS struct {
	ctx         context.Context
	provider    vfs.FileProvider
	tracer      trace.Tracer
	propagators propagation.TextMapPropagator
}

const tracerName = "github.com/mnguyen284/go-vfs/tracefs"

// New returns a FileProvider that instruments the given provider, adding
// trace spans for each operation. The given context will be used for the
// root span. Options can be provided to configure the behaviour of the
// instrumented provider.
func New(ctx context.Context, provider vfs.FileProvider, opts ...Option) (vfs.FileProvider, error) {
	cfg := config{}
	for _, opt := range opts {
		opt.apply(&cfg)
	}

	if cfg.tp == nil {
		cfg.tp = otel.GetTracerProvider()
	}

	if cfg.propagators == nil {
		cfg.propagators = otel.GetTextMapPropagator()
	}

	tfsys := traceFS{
		ctx:         ctx,
		provider:    provider,
		tracer:      cfg.tp.Tracer(tracerName),
		propagators: cfg.propagators,
	}

	return &tfsys, nil
}

var _ vfs.FileProvider = (*traceFS)(nil)

func attribs(provider vfs.FileProvider, name string) trace.SpanStartEventOption {
	return trace.WithAttributes(Path(name), Type(fmt.Sprintf("%T", provider)))
}

func (f *traceFS) GetFile(subpath string) vfs.FileInfo {
	_, span := f.tracer.Start(f.ctx, "vfs.GetFile", attribs(f.provider, subpath))
	defer span.End()

	fi := f.provider.GetFile(subpath)

	span.SetAttributes(Found(fi.Exists()))

	if p := fi.PhysicalPath(); p != "" {
		span.SetAttributes(PhysicalPath(p))
	}

	if !fi.Exists() {
		return fi
	}

	return &traceFile{
		FileInfo: fi,
		ctx:      f.ctx,
		tracer:   f.tracer,
		path:     subpath,
	}
}

func (f *traceFS) GetDirectory(subpath string) vfs.DirContents {
	_, span := f.tracer.Start(f.ctx, "vfs.GetDirectory", attribs(f.provider, subpath))
	defer span.End()

	dir := f.provider.GetDirectory(subpath)

	span.SetAttributes(
		Found(dir.Exists()),
		DirEntries(len(dir.Files())),
	)

	return dir
}

func (f *traceFS) Watch(pattern string) vfs.ChangeToken {
	_, span := f.tracer.Start(f.ctx, "vfs.Watch",
		trace.WithAttributes(Pattern(pattern), Type(fmt.Sprintf("%T", f.provider))))
	defer span.End()

	return f.provider.Watch(pattern)
}

// recordError records the given error on the span, and returns it. It does
// not set the span's status to error.
func recordError(span trace.Span, err error) error {
	span.RecordError(err)

	return err
}
