package resp

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/kestrel-web/kestrel"
)

const (
	// KestrelKey is the reserved rendered-context key signaling to a
	// template that it is being rendered in the "kestrel html" mode.
	//
	// Whatever a caller put under KestrelKey is stripped before rendering;
	// only the FormatHTML branch re-adds it, always with KestrelHTML.
	KestrelKey = "kestrel"

	// KestrelHTML is the marker value set under KestrelKey for FormatHTML.
	KestrelHTML = "html"

	// flashesKey carries session flashes into directly rendered contexts.
	flashesKey = "flashes"

	// fragmentContentType is what the "json" format responds with.
	//
	// NOTE: text/plain, not application/json - the historical kestrel
	// client contract sniffs the JSON wrapper itself. Do not "fix" this.
	fragmentContentType = "text/plain"
)

// A fragment is the JSON document the "json" dispatch format responds with.
type fragment struct {
	Html string `json:"html"`
}

// Dispatch renders the page set by Page (or the Responder's default page)
// and responds in the representation format selects:
//
//	kestrel.FormatJSON     a JSON document {"html": <rendered fragment>}, content-type text/plain
//	kestrel.FormatHTML     the rendered page, with the kestrel marker set in the rendered context
//	kestrel.FormatDefault  the rendered page, no marker
//
// The template lookup key is always the page identifier suffixed with ".html".
//
// The rendered context is assembled fresh for every call: context injector
// values, then kestrel.RenderProps from the request context, then the data
// map applied through Data. The caller's map is never mutated. The reserved
// KestrelKey entry is stripped from the assembled context before branching.
//
// Rendering and serialization failures return unmodified; Dispatch performs
// no retry and writes no fallback response.
func (doer *Responder) Dispatch(w http.ResponseWriter, r *http.Request, format kestrel.Format, opts ...Fn) error {
	rr, err := doer.do(w, r, opts...)
	if err != nil {
		return err
	}

	if rr.closeBody {
		defer r.Body.Close()
	}

	name := rr.page + htmlSuffix
	rc := doer.assembleContext(w, r, rr, format)

	if format == kestrel.FormatJSON {
		return doer.dispatchFragment(w, r, rr, name, rc)
	}

	// FormatHTML and FormatDefault render the page directly;
	// assembleContext already set the marker for FormatHTML.
	html, err := doer.render([]string{name}, rc)
	if err != nil {
		return err
	}

	if rr.code != 0 {
		w.WriteHeader(rr.code)
	}

	if _, err := w.Write([]byte(html)); err != nil {
		return err
	}

	return nil
}

// dispatchFragment renders the page into a JSON-wrapped HTML fragment.
func (doer *Responder) dispatchFragment(w http.ResponseWriter, r *http.Request, rr *Response, name string, rc map[string]any) error {
	html, cached := doer.cachedFragment(r.Context(), name, rc)
	if !cached {
		var err error
		html, err = doer.render([]string{name}, rc)
		if err != nil {
			return err
		}

		doer.cacheFragment(r.Context(), name, rc, html)
	}

	b := doer.pool.Get().(*bytes.Buffer)
	b.Reset()
	defer doer.pool.Put(b)

	if err := json.NewEncoder(b).Encode(fragment{Html: html}); err != nil {
		return err
	}

	w.Header().Set("Content-Type", fragmentContentType)
	if rr.code != 0 {
		w.WriteHeader(rr.code)
	}

	if _, err := b.WriteTo(w); err != nil {
		return err
	}

	return nil
}

// assembleContext builds the rendered context for a response.
//
// A fresh map is allocated per call; nothing the caller handed in is mutated.
// Assembly order, later entries winning key collisions:
// injector values, RenderProps from the request context, the Data map.
// The reserved KestrelKey entry is stripped before the format is consulted.
// Session flashes join directly rendered contexts only, keeping fragments
// cacheable.
func (doer *Responder) assembleContext(w http.ResponseWriter, r *http.Request, rr *Response, format kestrel.Format) map[string]any {
	rc := make(map[string]any)
	doer.injector.Inject(rc, r.Context())

	for k, v := range kestrel.RenderPropsFromContext(r.Context()) {
		rc[k] = v
	}

	switch t := rr.data.(type) {
	case map[string]any:
		for k, v := range t {
			rc[k] = v
		}
	case kestrel.RenderProps:
		for k, v := range t {
			rc[k] = v
		}
	case nil:
	default:
		rc["data"] = rr.data
	}

	delete(rc, KestrelKey)

	if format == kestrel.FormatJSON {
		return rc
	}

	if format == kestrel.FormatHTML {
		rc[KestrelKey] = KestrelHTML
	}

	if s, err := doer.Session(r.Context()); err == nil {
		if flashes := s.Flashes(w, r); len(flashes) > 0 {
			rc[flashesKey] = flashes
		}
	}

	return rc
}
