// Package cerr builds errors that carry structured context.
//
// A chain reads left to right: collect fields, optionally wrap a cause, then
// finish with a message.
//
//	cerr.Field("path", p).Wrap(err).Error("Failed to trim file")
//
// Fields attached anywhere in the chain are recovered by Log.
package cerr

import (
	"fmt"

	"github.com/apex/log"
	"github.com/cockroachdb/errors"
)

type F = map[string]any

type Context struct {
	fields F
	cause  error
}

func Field(key string, value any) Context {
	return Context{}.Field(key, value)
}

func Fields(fields F) Context {
	return Context{}.Fields(fields)
}

func Wrap(err error) Context {
	return Context{}.Wrap(err)
}

func Error(msg string) error {
	return Context{}.errorWithDepth(1, msg)
}

func (c Context) Field(key string, value any) Context {
	return c.Fields(F{key: value})
}

func (c Context) Fields(fields F) Context {
	merged := make(F, len(c.fields)+len(fields))
	for k, v := range c.fields {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}

	return Context{fields: merged, cause: c.cause}
}

func (c Context) Wrap(err error) Context {
	return Context{fields: c.fields, cause: err}
}

func (c Context) Error(msg string) error {
	return c.errorWithDepth(1, msg)
}

func (c Context) errorWithDepth(depth int, msg string) error {
	var err error
	if c.cause != nil {
		err = errors.WrapWithDepth(depth+1, c.cause, msg)
	} else {
		err = errors.NewWithDepth(depth+1, msg)
	}

	if len(c.fields) == 0 {
		return err
	}

	return &fieldsError{cause: err, fields: c.fields}
}

type fieldsError struct {
	cause  error
	fields F
}

func (f *fieldsError) Error() string { return f.cause.Error() }
func (f *fieldsError) Cause() error  { return f.cause }
func (f *fieldsError) Unwrap() error { return f.cause }

func (f *fieldsError) Format(s fmt.State, verb rune) { errors.FormatError(f, s, verb) }

// CollectFields returns every field attached along the cause chain of err.
// When the same key appears more than once the outermost value wins.
func CollectFields(err error) F {
	collected := F{}
	for cur := err; cur != nil; cur = errors.UnwrapOnce(cur) {
		fe, ok := cur.(*fieldsError)
		if !ok {
			continue
		}

		for k, v := range fe.fields {
			if _, exists := collected[k]; !exists {
				collected[k] = v
			}
		}
	}

	return collected
}

func Log(err error) {
	if err == nil {
		return
	}

	log.WithFields(log.Fields(CollectFields(err))).
		WithError(err).
		Error("Error occurred")
}
