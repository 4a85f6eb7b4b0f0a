/*
The middleware package defines what a middleware is in kestrel and a set of basic middlewares.

The available middlewares are:
- CORS
- DispatchFormat
- ForceHTTPS
- InjectIPAddress
- InjectResponder
- InjectSession
- LogRequest
- RateLimit
- RequestID

Due to the amount of configuration required, middleware does not provide a default middleware chain.
Instead, the following can be copy-pasted:

	vs := middleware.NewVisitors()
	adpts := []middleware.Adapter{
		middleware.RateLimit(vs),
		middleware.ForceHTTPS(env),
		middleware.RequestID(),
		middleware.InjectIPAddress(),
		middleware.LogRequest(log),
		middleware.InjectSession(sessionStore),
		middleware.DispatchFormat(),
	}
*/
package middleware
