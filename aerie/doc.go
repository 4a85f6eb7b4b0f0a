/*
Package aerie initializes and manages a kestrel app with sane defaults.

# Aerie

The main entrypoint to package aerie is the [Aerie] type.
An [Aerie] ought to be constructed with [New].

[*Aerie.Guide] begins a kestrel app's web server.
By default, [*Aerie.Guide] listens on [DefaultHost]:[DefaultPort] (localhost:3000),
assuming either a reverse proxy proxies requests
or only a client application makes direct requests to the kestrel web server.

Upon calling [*Aerie.Guide], all routes configured up to that point are now active.
Stop that web server with [*Aerie.Shutdown]
or send a signal [*Aerie.Guide] listens for.

# Configuration

A developer configures a kestrel app through environment variables
and by passing [AerieOption] values to [New].
Environment variables ought to be set in a file called ".env"
found at the same directory the application is executed from.

Here are the available environment variables.
  - APP_DESCRIPTION: a short description of the application
  - APP_TITLE: a short title for the application; also names the session cookie
  - BASE_URL: the base URL the application runs on; replaces HOST & PORT
  - CONTACT_US_EMAIL: the email address end users can reach the application's operators at
  - ENVIRONMENT: the environment the application is running in; cf. [kestrel.Environment]
  - HOST: the host the application is running on; default: localhost
  - LOG_LEVEL: the level at which to begin logging; default: INFO; cf. [logger.LogLevel]
  - PORT: the port the application should listen on; default: :3000
  - REDIS_URL: the address of a Redis backend for sessions and the fragment cache
  - REDIS_PASSWORD: the password for authenticating to the Redis backend
  - SENTRY_DSN: the DSN panics and error logs report to; cf. [logger.SentryLogger]
  - SERVER_IDLE_TIMEOUT: the timeout - as understood by [time.ParseDuration] - for idling between requests when using keep-alives; default: 120s
  - SERVER_READ_TIMEOUT: the timeout - as understood by [time.ParseDuration] - for reading HTTP requests; default: 5s
  - SERVER_WRITE_TIMEOUT: the timeout - as understood by [time.ParseDuration] - for writing HTTP responses; default: 5s
  - SESSION_AUTH_KEY: a hex-encoded key for authenticating cookies; cf. [encoding/hex]
  - SESSION_ENCRYPTION_KEY: a hex-encoded key for encrypting cookies; cf. [encoding/hex]
*/
package aerie
