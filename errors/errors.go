/*
Package errors provides the error type returned by the fixtures packages. Every error carries a Category
and a Type so that callers can branch on what went wrong without matching strings:

	v, err := enums.Parse(ctx, "value3")
	var e errors.Error
	if errors.As(err, &e) && e.Type == errors.TypeUnknownLabel {
		// handle the bad label
	}

Errors created with E() are recorded on the active OpenTelemetry span found in the Context, if
that span is recording. Error.Log() writes the error with its attributes to telemetry/log.Default().

Note: constructors return the concrete Error type. Functions and methods returning the value should
always return the error interface and never the concrete type.
*/
package errors

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"runtime/debug"
	"time"

	"github.com/gostdlib/fixtures/telemetry/log"

	"github.com/go-json-experiment/json"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

//go:generate stringer -type=Category -linecomment

// Category represents the category of the error.
type Category uint32

const (
	// CatUnknown represents an unknown category. This should not be used.
	CatUnknown Category = 0 // Unknown
	// CatRequest represents an error caused by input provided by the caller.
	CatRequest Category = 1 // Request
	// CatInternal represents an error caused by a bug or invalid internal state.
	CatInternal Category = 2 // Internal
)

//go:generate stringer -type=Type -linecomment

// Type represents the type of the error. This is a subcategory of the Category.
type Type uint16

const (
	// TypeUnknown represents an unknown type.
	TypeUnknown Type = 0 // Unknown
	// TypeUnknownLabel represents a label that does not name any variant of an enumeration.
	TypeUnknownLabel Type = 1 // UnknownLabel
	// TypeInvalidVariant represents an enumeration value that is not one of its defined variants.
	TypeInvalidVariant Type = 2 // InvalidVariant
	// TypeBadJSON represents JSON input that could not be decoded.
	TypeBadJSON Type = 3 // BadJSON
)

// LogAttrer is an interface that can be implemented by an error to return a list of attributes
// used in logging.
type LogAttrer interface {
	// LogAttrs returns a []slog.Attr that will be used in logging.
	LogAttrs(ctx context.Context) []slog.Attr
}

type errImplements interface {
	error
	LogAttrer

	Is(target error) bool
	Unwrap() error
}

// Validate we implement the correct interfaces.
var _ errImplements = Error{}

// Error represents an error that has a category and a type. Created with E().
type Error struct {
	// Category is the category of the error.
	Category Category
	// Type is the type of the error.
	Type Type
	// Msg is the message of the error.
	Msg error

	// File is the file that the error was created in. Filled in by E().
	File string
	// Line is the line that the error was created on. Filled in by E().
	Line int
	// ErrTime is the time that the error was created, in UTC. Filled in by E().
	ErrTime time.Time
	// StackTrace is filled in by E() if WithStackTrace() is used.
	StackTrace string
}

type eOpts struct {
	suppressTraceErr bool
	callNum          int
	stackTrace       bool
}

// EOption is an optional argument for E().
type EOption func(eOpts) eOpts

// WithSuppressTraceErr will prevent the span from being given an error status.
// The span still receives the error event.
func WithSuppressTraceErr() EOption {
	return func(e eOpts) eOpts {
		e.suppressTraceErr = true
		return e
	}
}

// WithCallNum sets the number of stack frames to skip when finding the file and line of the error.
// Use this when wrapping E() in a helper. This defaults to 1, the caller of E().
func WithCallNum(i int) EOption {
	return func(e eOpts) eOpts {
		e.callNum = i
		return e
	}
}

// WithStackTrace will add a stack trace to the error.
func WithStackTrace() EOption {
	return func(e eOpts) eOpts {
		e.stackTrace = true
		return e
	}
}

var now = time.Now

// E creates a new Error with the given parameters. If the message is already an Error, it will be returned instead.
func E(ctx context.Context, c Category, t Type, msg error, options ...EOption) Error {
	if e, ok := msg.(Error); ok {
		return e
	}

	opts := eOpts{callNum: 1}
	for _, o := range options {
		opts = o(opts)
	}

	_, filename, line, ok := runtime.Caller(opts.callNum)
	if !ok {
		filename = "unknown"
	}

	if msg == nil {
		msg = errors.New("bug: nil error")
	}

	var st string
	if opts.stackTrace {
		st = string(debug.Stack())
	}

	e := Error{
		Category:   c,
		Type:       t,
		Msg:        msg,
		File:       filename,
		Line:       line,
		ErrTime:    now().UTC(),
		StackTrace: st,
	}

	e.trace(ctx, opts.suppressTraceErr)
	return e
}

// Error implements the error interface.
func (e Error) Error() string {
	if e.Msg == nil {
		return "error message not provided"
	}
	return e.Msg.Error()
}

// Is implements the errors.Is() interface. An Error is equal to another Error if the category and type are the same.
// Otherwise the wrapped message is checked against target.
func (e Error) Is(target error) bool {
	if target == nil {
		return false
	}
	if targetE, ok := target.(Error); ok {
		return e.Category == targetE.Category && e.Type == targetE.Type
	}
	if e.Msg == nil {
		return false
	}
	return errors.Is(e.Msg, target)
}

// Unwrap unwraps the error.
func (e Error) Unwrap() error {
	return e.Msg
}

// LogAttrs implements the LogAttrer.LogAttrs() interface.
func (e Error) LogAttrs(ctx context.Context) []slog.Attr {
	traceID := ""
	if sc := trace.SpanContextFromContext(ctx); sc.HasTraceID() {
		traceID = sc.TraceID().String()
	}

	attrs := []slog.Attr{
		slog.String("Category", e.Category.String()),
		slog.String("Type", e.Type.String()),
		slog.String("ErrSrc", e.File),
		slog.Int("ErrLine", e.Line),
		slog.Time("ErrTime", e.ErrTime.UTC()),
		slog.String("TraceID", traceID),
	}
	if e.StackTrace != "" {
		attrs = append(attrs, slog.String("StackTrace", e.StackTrace))
	}
	return attrs
}

// traceAttrs are the attributes attached to the span event. Time and trace ID are already on the span.
func (e Error) traceAttrs() []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String("Category", e.Category.String()),
		attribute.String("Type", e.Type.String()),
		attribute.String("ErrSrc", e.File),
		attribute.Int("ErrLine", e.Line),
	}
}

// trace adds the error to the span in ctx. This is automatically done when the error is created.
func (e Error) trace(ctx context.Context, suppressTraceErr bool) {
	if ctx == nil {
		return
	}

	s := trace.SpanFromContext(ctx)
	if !s.IsRecording() {
		return
	}

	s.RecordError(
		e,
		trace.WithAttributes(e.traceAttrs()...),
		trace.WithTimestamp(e.ErrTime),
	)
	if !suppressTraceErr {
		s.SetStatus(codes.Error, e.Error())
	}
}

// Log logs the error at error level to log.Default() with any extra attributes passed. req is the
// input that caused the error, such as the label given to enums.Parse(). It is JSON encoded and logged
// as "Request"; a []byte is logged as is, since it is usually the JSON that failed to decode.
// Attributes from the error and from any wrapped error implementing LogAttrer are included.
func (e Error) Log(ctx context.Context, req any, extra ...slog.Attr) {
	// Ignore serialization errors, it just means we log less information.
	var reqStr string
	switch v := req.(type) {
	case nil:
	case []byte:
		reqStr = string(v)
	default:
		b, err := json.Marshal(req)
		if err != nil {
			reqStr = fmt.Sprintf("unable to marshal request %T object due to error: %s", req, err)
		} else {
			reqStr = string(b)
		}
	}

	logAttrs := e.LogAttrs(ctx)
	attrs := make([]slog.Attr, 0, 1+len(extra)+len(logAttrs))
	if reqStr != "" {
		attrs = append(attrs, slog.String("Request", reqStr))
	}
	attrs = append(attrs, extra...)
	attrs = append(attrs, logAttrs...)

	for err := e.Msg; err != nil; err = errors.Unwrap(err) {
		if f, ok := err.(LogAttrer); ok {
			attrs = append(attrs, f.LogAttrs(ctx)...)
		}
	}

	log.Default().LogAttrs(ctx, slog.LevelError, e.Error(), attrs...)
}
