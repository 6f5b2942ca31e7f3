package i18n

import (
	"errors"
	"fmt"
	"sync"
)

// TranslatableError represents an error that can be translated
type TranslatableError interface {
	error
	Key() string
	Args() []interface{}
	Unwrap() error
	WithArgs(args ...interface{}) TranslatableError
	Wrap(err error) TranslatableError
}

// MessageProvider returns the message format for a translation key
type MessageProvider interface {
	GetMessage(key string) string
}

// TrError is a translatable error with optional format arguments and a wrapped cause.
// Copies made by WithArgs and Wrap keep the sentinel, so errors.Is matches them
// against the value returned by NewError.
//
//	var ErrNoCommand = i18n.NewError("dispatch.error.no_command")
//	err := ErrUnknown.WithArgs("bogus")
//	errors.Is(err, ErrUnknown) // true
type TrError struct {
	sentinel error
	key      string
	args     []interface{}
	wrapped  error
	provider MessageProvider
}

type bundleProvider struct {
	bundle *Bundle
}

func (p bundleProvider) GetMessage(key string) string {
	return p.bundle.Message(key)
}

// NewError creates a new translatable error with a key
func NewError(key string) *TrError {
	return &TrError{
		sentinel: errors.New(key),
		key:      key,
	}
}

// Error returns the message in the current default language, formatted with args if provided
func (e *TrError) Error() string {
	p := e.provider
	if p == nil {
		p = getDefaultProvider()
	}

	msg := p.GetMessage(e.key)
	if len(e.args) > 0 {
		msg = fmt.Sprintf(msg, e.args...)
	}
	if e.wrapped != nil {
		return fmt.Sprintf("%s: %v", msg, e.wrapped)
	}

	return msg
}

// WithArgs returns a copy of the error with format arguments
func (e *TrError) WithArgs(args ...interface{}) TranslatableError {
	return &TrError{
		sentinel: e.sentinel,
		key:      e.key,
		args:     args,
		wrapped:  e.wrapped,
		provider: e.provider,
	}
}

// Wrap returns a copy of the error wrapping err
func (e *TrError) Wrap(err error) TranslatableError {
	return &TrError{
		sentinel: e.sentinel,
		key:      e.key,
		args:     e.args,
		wrapped:  err,
		provider: e.provider,
	}
}

// Is implements errors.Is for comparison with the sentinel error
func (e *TrError) Is(target error) bool {
	if t, ok := target.(*TrError); ok {
		return e.sentinel == t.sentinel
	}

	return target == e.sentinel
}

// Key returns the translation key
func (e *TrError) Key() string {
	return e.key
}

// Args returns the format arguments
func (e *TrError) Args() []interface{} {
	return e.args
}

// Unwrap returns the wrapped error
func (e *TrError) Unwrap() error {
	return e.wrapped
}

var (
	defaultProvider    MessageProvider
	defaultProviderMux sync.RWMutex
)

// SetDefaultMessageProvider replaces the provider used by errors created with NewError.
// Passing nil restores the default bundle.
func SetDefaultMessageProvider(p MessageProvider) {
	defaultProviderMux.Lock()
	defer defaultProviderMux.Unlock()
	defaultProvider = p
}

func getDefaultProvider() MessageProvider {
	defaultProviderMux.RLock()
	defer defaultProviderMux.RUnlock()

	if defaultProvider != nil {
		return defaultProvider
	}

	return bundleProvider{bundle: Default()}
}
