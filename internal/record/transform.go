// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package record

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-contact-keeper/internal/crypto"
	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/internal/metrics"
)

// Op selects the direction of a transform.
type Op int

const (
	Encrypt Op = iota + 1
	Decrypt
)

func (o Op) String() string {
	switch o {
	case Encrypt:
		return "encrypt"
	case Decrypt:
		return "decrypt"
	}
	return "op(" + strconv.Itoa(int(o)) + ")"
}

// ErrNotString is recorded for a designated field whose value is neither a
// string nor empty.
var ErrNotString = errors.New("designated field is not a string")

// ErrNotList is recorded for a designated list path holding a non-list value.
var ErrNotList = errors.New("designated list field is not a list")

// FieldError describes one designated field that kept its original value.
// List elements carry their index in the path, e.g. "emails.1".
type FieldError struct {
	Path string
	Err  error
}

func (e FieldError) Error() string {
	return e.Path + ": " + e.Err.Error()
}

func (e FieldError) Unwrap() error {
	return e.Err
}

// Result summarizes one Apply call. Failed is the number of fields that
// kept their pre-transform value because of an error.
type Result struct {
	Processed int
	Skipped   int
	Failed    int
	Errors    []FieldError
}

// Merge adds the counters of other to r.
func (r *Result) Merge(other Result) {
	r.Processed += other.Processed
	r.Skipped += other.Skipped
	r.Failed += other.Failed
	r.Errors = append(r.Errors, other.Errors...)
}

// Err joins all field errors, or returns nil.
func (r Result) Err() error {
	if len(r.Errors) == 0 {
		return nil
	}
	errs := make([]error, len(r.Errors))
	for i := range r.Errors {
		errs[i] = r.Errors[i]
	}
	return errors.Join(errs...)
}

// Transformer applies a [crypto.FieldCipher] to the designated fields of a
// record in place.
//
// A field that fails keeps its value and never aborts the rest of the
// record. Apply itself never fails.
type Transformer struct {
	cipher      crypto.FieldCipher
	log         *logger.Logger
	metrics     metrics.CryptoMetrics
	concurrency int
}

// Option configures a Transformer.
type Option func(*Transformer)

// WithLogger sets the logger of per-field failures.
func WithLogger(l *logger.Logger) Option {
	return func(t *Transformer) {
		t.log = l
	}
}

// WithMetrics sets the field outcome sink.
func WithMetrics(m metrics.CryptoMetrics) Option {
	return func(t *Transformer) {
		t.metrics = m
	}
}

// WithConcurrency bounds the number of fields processed at once. Values
// below 2 process fields sequentially.
func WithConcurrency(n int) Option {
	return func(t *Transformer) {
		t.concurrency = n
	}
}

// NewTransformer creates a Transformer bound to cipher.
func NewTransformer(cipher crypto.FieldCipher, opts ...Option) *Transformer {
	t := &Transformer{
		cipher:      cipher,
		log:         logger.Nop(),
		metrics:     metrics.NoopCryptoMetrics(),
		concurrency: 1,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// task is one designated string value waiting to be transformed. set writes
// the result back into the record and is only ever called sequentially.
type task struct {
	path  string
	value string
	set   func(string)
}

type outcome struct {
	value string
	err   error
}

// Apply transforms the designated fields of rec in place according to op.
//
// Absent, nil and empty values are skipped. Every other non-string value is
// a per-field error. Fields outside fs are never touched.
func (t *Transformer) Apply(ctx context.Context, rec map[string]any, fs FieldSet, op Op) Result {
	var res Result
	if rec == nil {
		return res
	}
	start := time.Now()

	tasks := t.collect(ctx, rec, fs, op, &res)
	outcomes := t.run(tasks, op)

	for i, tk := range tasks {
		out := outcomes[i]
		if out.err != nil {
			t.fail(ctx, fs.Kind, op, tk.path, out.err, &res)
			continue
		}
		tk.set(out.value)
		res.Processed++
		t.metrics.RecordField(ctx, op.String(), string(fs.Kind), metrics.StatusSuccess)
	}

	t.metrics.RecordTransform(ctx, op.String(), string(fs.Kind), time.Since(start))
	return res
}

func (t *Transformer) collect(ctx context.Context, rec map[string]any, fs FieldSet, op Op, res *Result) []task {
	var tasks []task

	for _, p := range fs.Scalars {
		v, ok := Get(rec, p)
		if !ok || v == nil {
			continue
		}
		s, ok := v.(string)
		if !ok {
			t.fail(ctx, fs.Kind, op, string(p), fmt.Errorf("%w: %T", ErrNotString, v), res)
			continue
		}
		if s == "" {
			t.skip(ctx, fs.Kind, op, res)
			continue
		}
		tasks = append(tasks, task{
			path:  string(p),
			value: s,
			set:   func(out string) { Set(rec, p, out) },
		})
	}

	for _, p := range fs.Lists {
		v, ok := Get(rec, p)
		if !ok || v == nil {
			continue
		}

		switch list := v.(type) {
		case []any:
			for i, el := range list {
				elPath := string(p) + "." + strconv.Itoa(i)
				if el == nil {
					t.skip(ctx, fs.Kind, op, res)
					continue
				}
				s, ok := el.(string)
				if !ok {
					t.fail(ctx, fs.Kind, op, elPath, fmt.Errorf("%w: %T", ErrNotString, el), res)
					continue
				}
				if s == "" {
					t.skip(ctx, fs.Kind, op, res)
					continue
				}
				tasks = append(tasks, task{path: elPath, value: s, set: func(out string) { list[i] = out }})
			}
		case []string:
			for i, s := range list {
				if s == "" {
					t.skip(ctx, fs.Kind, op, res)
					continue
				}
				elPath := string(p) + "." + strconv.Itoa(i)
				tasks = append(tasks, task{path: elPath, value: s, set: func(out string) { list[i] = out }})
			}
		default:
			t.fail(ctx, fs.Kind, op, string(p), fmt.Errorf("%w: %T", ErrNotList, v), res)
		}
	}

	return tasks
}

// run computes every task. With concurrency enabled the cipher calls run in
// parallel, but outcomes stay indexed by task so the write-back order and
// the observable result match a sequential run.
func (t *Transformer) run(tasks []task, op Op) []outcome {
	outcomes := make([]outcome, len(tasks))

	if t.concurrency < 2 || len(tasks) < 2 {
		for i, tk := range tasks {
			outcomes[i] = t.transform(tk.value, op)
		}
		return outcomes
	}

	var g errgroup.Group
	g.SetLimit(t.concurrency)
	for i, tk := range tasks {
		g.Go(func() error {
			outcomes[i] = t.transform(tk.value, op)
			return nil
		})
	}
	_ = g.Wait()

	return outcomes
}

func (t *Transformer) transform(value string, op Op) outcome {
	switch op {
	case Encrypt:
		v, err := t.cipher.Encrypt(value)
		return outcome{value: v, err: err}
	case Decrypt:
		v, err := t.cipher.Decrypt(value)
		return outcome{value: v, err: err}
	}
	return outcome{err: fmt.Errorf("unknown transform %s", op)}
}

func (t *Transformer) skip(ctx context.Context, kind Kind, op Op, res *Result) {
	res.Skipped++
	t.metrics.RecordField(ctx, op.String(), string(kind), metrics.StatusSkipped)
}

// fail records a field that keeps its value. Decrypt failures are routine
// (legacy plaintext) and go to Debug; encrypt failures mean plaintext is
// about to leave the process and go to Warn.
func (t *Transformer) fail(ctx context.Context, kind Kind, op Op, path string, err error, res *Result) {
	res.Failed++
	res.Errors = append(res.Errors, FieldError{Path: path, Err: err})
	t.metrics.RecordField(ctx, op.String(), string(kind), metrics.StatusError)

	log := logger.FromContextOr(ctx, t.log)
	ev := log.Debug()
	if op == Encrypt {
		ev = log.Warn()
	}
	ev.Err(err).
		Str("func", "Transformer.Apply").
		Str("kind", string(kind)).
		Str("op", op.String()).
		Str("path", path).
		Msg("field left unchanged")
}
