// Package requestid tags every HTTP request with a correlation id.
//
// Middleware keeps a client supplied X-Request-ID when it is made of letters,
// digits, '-' and '_' (at most 128 bytes) and otherwise generates a UUIDv4. The
// id is echoed in the response and stored in the request context, where
// FromContext reads it and LoggerExtractor adds it to every log record.
package requestid
