/*

The resp package provides a high-level API for responding to HTTP requests
with an easy way to configure the responses application-wide.

resp provides four main ways of responding to an HTTP request:
- dispatching a page render according to a kestrel.Format
- rendering HTML templates
- rendering JSON data
- redirecting

Dispatch is the workhorse: given a page identifier and a data map, it renders
the page's template and answers in the representation the request asked for.
The "json" format wraps the rendered HTML fragment in a JSON document; the
"html" format marks the rendered context with the kestrel marker before
rendering directly; any other format renders directly without the marker.

*/
package resp
