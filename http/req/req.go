package req

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/gorilla/schema"
	"github.com/kestrel-web/kestrel"
)

// formatParam is the query parameter selecting the dispatch format.
const formatParam = "format"

// Format reports the dispatch format the request selects
// through its "format" query parameter.
//
// Unknown selectors - the missing parameter included - are kestrel.FormatDefault.
func Format(r *http.Request) kestrel.Format {
	return kestrel.ParseFormat(r.URL.Query().Get(formatParam))
}

type Parser struct {
	decoder *schema.Decoder
	validator
}

func NewParser() *Parser {
	return &Parser{
		decoder:   newQueryParamDecoder(),
		validator: newValidator(),
	}
}

// ParseBody decodes into a pointer to a struct the JSON data in *http.Request.Body.
// If successful, ParseBody runs validation against the contents,
// returning an ErrNotValid if the data fails validation rules.
//
// ParseBody reads the entire r.Body and can't be read from again.
// Use a [io.TeeReader] if r.Body needs to be reused after calling ParseBody.
func (p *Parser) ParseBody(body io.Reader, structPtr any) error {
	var ourFault *json.InvalidUnmarshalError
	err := json.NewDecoder(body).Decode(structPtr)
	if errors.As(err, &ourFault) {
		return fmt.Errorf("kestrel/http/req: %w: ParseBody called with non-pointer: %s", kestrel.ErrBadAny, err)
	}

	if err != nil {
		return fmt.Errorf("kestrel/http/req: %w: failed decoding request body: %s", kestrel.ErrBadFormat, err)
	}

	if err := p.validate(structPtr); err != nil {
		return fmt.Errorf("kestrel/http/req: %T failed validation: %w", structPtr, err)
	}

	return nil
}

// ParseQueryParams decodes into a pointer to a struct the query param data in *http.Request.URL.Query.
// If successful, ParseQueryParams runs validation against the contents,
// returning an ErrNotValid if the data fails validation rules.
func (p *Parser) ParseQueryParams(params url.Values, structPtr any) error {
	if err := p.decoder.Decode(structPtr, params); err != nil {
		return fmt.Errorf("kestrel/http/req: failed decoding request query params: %w", translateDecoderError(err))
	}

	if err := p.validate(structPtr); err != nil {
		return fmt.Errorf("kestrel/http/req: %T failed validation: %w", structPtr, err)
	}

	return nil
}
