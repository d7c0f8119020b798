// Package client provides the HTTP client used to probe the server under test.
//
// Every request is a single attempt bounded by a timeout (5 seconds by default).
// Keep-alives are disabled, so each request opens and closes its own connection, and
// response bodies are read completely and closed before Get returns.
//
// # Client Interface
//
// The Client interface abstracts the transport, making it easy to mock requests in
// unit tests (see core/client/mocks).
//
// # Usage
//
//	c := client.NewClient("http://127.0.0.1:8081", client.Config{Timeout: 5 * time.Second})
//	resp, err := c.Get(ctx, "/image")
package client
