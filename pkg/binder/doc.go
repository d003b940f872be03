// Package binder turns HTTP requests into validator.InputData.
//
// Input accepts query strings, application/x-www-form-urlencoded and
// multipart/form-data posts, and JSON objects of scalars. DecodeJSON is the
// strict JSON decoder shared with handlers that take structured bodies.
// Failures wrap ErrUnsupportedMediaType, ErrInvalidForm, ErrInvalidJSON or
// ErrBodyTooLarge.
package binder
