/*

Package session manages web sessions for a kestrel app by lightly wrapping
gorilla/sessions. Sessions are stored in cookies by default or in Redis with
[WithRedis]. The package's main job in kestrel is carrying [Flash] messages
between requests so rendered pages can surface them.

*/
package session
