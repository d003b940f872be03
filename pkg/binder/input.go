package binder

import (
	"errors"
	"fmt"
	"mime"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/dmitrymomot/formrules/pkg/validator"
)

// MaxMemory is the multipart memory limit; larger parts spill to disk.
const MaxMemory = 10 << 20

// MaxFormSize caps urlencoded and multipart request bodies.
const MaxFormSize = 32 << 20

const (
	mediaJSON       = "application/json"
	mediaURLEncoded = "application/x-www-form-urlencoded"
	mediaMultipart  = "multipart/form-data"
)

// Input reads the submitted fields of r as flat input data.
//
// Requests without a body use the query string. Form posts use the parsed form,
// where body values win over query values; for multipart bodies an uploaded
// file contributes its file name, so required works on file inputs. JSON bodies
// must be an object of scalars.
func Input(r *http.Request) (validator.InputData, error) {
	return InputLimit(r, MaxFormSize)
}

// InputLimit is Input with a custom cap on form bodies. A larger body fails
// with ErrBodyTooLarge. JSON bodies are always capped at MaxJSONSize.
func InputLimit(r *http.Request, limit int64) (validator.InputData, error) {
	if !hasBody(r) {
		return validator.FromValues(r.URL.Query()), nil
	}

	mediaType, params, err := contentType(r)
	if err != nil {
		return nil, err
	}

	switch mediaType {
	case mediaURLEncoded:
		r.Body = http.MaxBytesReader(nil, r.Body, limit)
		if err := r.ParseForm(); err != nil {
			return nil, formError(err, limit)
		}
		return validator.FromValues(r.Form), nil

	case mediaMultipart:
		if params["boundary"] == "" {
			return nil, errors.Join(ErrInvalidForm, errors.New("missing multipart boundary"))
		}
		r.Body = http.MaxBytesReader(nil, r.Body, limit)
		if err := r.ParseMultipartForm(min(MaxMemory, limit)); err != nil {
			return nil, formError(err, limit)
		}
		data := validator.FromValues(r.Form)
		for name, files := range r.MultipartForm.File {
			if _, set := data[name]; !set && len(files) > 0 {
				data[name] = files[0].Filename
			}
		}
		return data, nil

	case mediaJSON:
		var obj map[string]any
		if err := DecodeJSON(r, &obj); err != nil {
			return nil, err
		}
		return Scalars(obj)
	}

	return nil, errors.Join(ErrUnsupportedMediaType, fmt.Errorf("got %q", mediaType))
}

func formError(err error, limit int64) error {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) || errors.Is(err, multipart.ErrMessageTooLarge) {
		return errors.Join(ErrBodyTooLarge, fmt.Errorf("max %d bytes", limit))
	}
	return errors.Join(ErrInvalidForm, err)
}

func hasBody(r *http.Request) bool {
	if r.Body == nil || r.Body == http.NoBody {
		return false
	}
	return r.ContentLength != 0 || r.Header.Get("Content-Type") != ""
}

func contentType(r *http.Request) (string, map[string]string, error) {
	ct := r.Header.Get("Content-Type")
	if ct == "" {
		return "", nil, errors.Join(ErrUnsupportedMediaType, errors.New("missing content type"))
	}
	mediaType, params, err := mime.ParseMediaType(ct)
	if err != nil {
		return "", nil, errors.Join(ErrUnsupportedMediaType, err)
	}
	return strings.ToLower(mediaType), params, nil
}

func requireMediaType(r *http.Request, want string) error {
	got, _, err := contentType(r)
	if err != nil {
		return err
	}
	if got != want {
		return errors.Join(ErrUnsupportedMediaType, fmt.Errorf("got %q, expected %q", got, want))
	}
	return nil
}
