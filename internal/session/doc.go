// Package session keeps per-browser state for the storefront.
//
// Sessions live server-side in a [Store]. The browser only holds a cookie
// whose value is an HS256-signed token naming the session id; [Manager]
// reads, writes and clears that cookie and keeps the store in sync.
package session
