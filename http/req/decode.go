package req

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gorilla/schema"
	"github.com/kestrel-web/kestrel"
)

func newQueryParamDecoder() *schema.Decoder {
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)

	return dec
}

// translateDecoderError converts an error returned by *schema.Decoder into standardized errors.
// Some *schema.Decoder errors are issues with calling code;
// some errors are unexpected issues;
// still some are issues with mismatches between a request's query params and the expected shape.
func translateDecoderError(err error) error {
	if strings.Contains(err.Error(), "schema: interface must be a pointer to struct") {
		return fmt.Errorf("%w: called with non-pointer: %s", kestrel.ErrBadAny, err)
	}

	var pkgErrs schema.MultiError
	// NOTE: In testing the schema package, outside other errors handled above,
	// the package appears to always use MultiError to wrap errors up.
	// This is the "happy path".
	if !errors.As(err, &pkgErrs) {
		return fmt.Errorf("%w: %s", kestrel.ErrBadFormat, err)
	}

	var validErrs ValidationErrors
	for _, pkgErr := range pkgErrs {
		switch err := pkgErr.(type) {
		case schema.ConversionError:
			// NOTE: for non-slice values, err.Index is -1.
			idx := err.Index
			if idx < 0 {
				idx = 0
			}

			validErrs = append(validErrs, ValidationError{
				Field: err.Key,
				Got:   fmt.Sprintf("bad value at index %d", idx),
				Rule:  fmt.Sprintf("must be %s", err.Type),
			})

		case schema.EmptyFieldError:
			return fmt.Errorf(`%w: use validate pkg to set "required" fields, not schema`, kestrel.ErrNotImplemented)

		case schema.UnknownKeyError:
			// NOTE: We are currently accepting unknown keys,
			// as set in the default configuration for schema.Decoder.
			// That configuration can change.
			// We should gracefully handle that situation changing.
			validErrs = append(validErrs, ValidationError{
				Field: err.Key,
				Got:   "value is set",
				Rule:  "unexpected key should not be set",
			})

		default:
			// NOTE: a field of a type without a schema.Converter registered
			// will not raise an error until a url.Values has the key set for it.
			if strings.Contains(err.Error(), "schema: converter not found for") {
				return fmt.Errorf("%w: cannot convert values into unsupported type", kestrel.ErrNotImplemented)
			}

			// NOTE: anything else is likely a programming error, and thus a show-stopper.
			// Surface these immediately.
			return fmt.Errorf("%w: %s", kestrel.ErrUnexpected, err)
		}
	}

	return validErrs
}
