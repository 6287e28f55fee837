// Package responsewriter wraps http.ResponseWriter so the access log and the
// request metrics can observe the status code and body size after a handler
// has run.
package responsewriter

import "net/http"

// ResponseWriter records the status and byte count of a response as it is
// written. The zero value is not usable; construct it with Wrap.
type ResponseWriter struct {
	http.ResponseWriter
	status      int
	written     int
	wroteHeader bool
}

// Wrap returns a recording writer around w. Until WriteHeader is called the
// reported status is 200, matching net/http's implicit header write.
func Wrap(w http.ResponseWriter) *ResponseWriter {
	return &ResponseWriter{ResponseWriter: w, status: http.StatusOK}
}

// WriteHeader forwards the first status code and ignores any later calls,
// mirroring the duplicate-WriteHeader behaviour of the standard library.
func (w *ResponseWriter) WriteHeader(status int) {
	if w.wroteHeader {
		return
	}
	w.status = status
	w.wroteHeader = true
	w.ResponseWriter.WriteHeader(status)
}

// Write sends body bytes to the client and adds them to the running total.
func (w *ResponseWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.written += n
	return n, err
}

// StatusCode reports the status sent to the client.
func (w *ResponseWriter) StatusCode() int {
	return w.status
}

// BytesWritten reports how many body bytes were sent.
func (w *ResponseWriter) BytesWritten() int {
	return w.written
}

// Unwrap exposes the underlying writer for http.ResponseController.
func (w *ResponseWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
