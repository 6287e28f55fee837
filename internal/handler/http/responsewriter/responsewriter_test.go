package responsewriter

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap_Defaults(t *testing.T) {
	w := Wrap(httptest.NewRecorder())

	assert.Equal(t, http.StatusOK, w.StatusCode())
	assert.Equal(t, 0, w.BytesWritten())
}

func TestWriteHeader_RecordsStatus(t *testing.T) {
	for _, status := range []int{
		http.StatusCreated,
		http.StatusPaymentRequired,
		http.StatusNotFound,
		http.StatusInternalServerError,
	} {
		rec := httptest.NewRecorder()
		w := Wrap(rec)

		w.WriteHeader(status)

		assert.Equal(t, status, w.StatusCode())
		assert.Equal(t, status, rec.Code)
	}
}

func TestWriteHeader_SecondCallIgnored(t *testing.T) {
	rec := httptest.NewRecorder()
	w := Wrap(rec)

	w.WriteHeader(http.StatusAccepted)
	w.WriteHeader(http.StatusInternalServerError)

	assert.Equal(t, http.StatusAccepted, w.StatusCode())
	assert.Equal(t, http.StatusAccepted, rec.Code)
}

func TestWrite_AccumulatesBytes(t *testing.T) {
	rec := httptest.NewRecorder()
	w := Wrap(rec)

	n, err := w.Write([]byte(`{"status":"approved"`))
	require.NoError(t, err)
	assert.Equal(t, 20, n)

	_, err = w.Write([]byte(`}`))
	require.NoError(t, err)

	assert.Equal(t, 21, w.BytesWritten())
	assert.Equal(t, `{"status":"approved"}`, rec.Body.String())
}

func TestWrite_ImpliesOK(t *testing.T) {
	rec := httptest.NewRecorder()
	w := Wrap(rec)

	_, err := w.Write([]byte("body"))
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, w.StatusCode())
	// a later WriteHeader must not override the implicit 200
	w.WriteHeader(http.StatusNotFound)
	assert.Equal(t, http.StatusOK, w.StatusCode())
}

func TestUnwrap(t *testing.T) {
	rec := httptest.NewRecorder()
	assert.Equal(t, http.ResponseWriter(rec), Wrap(rec).Unwrap())
}

func TestWrap_InsideMiddleware(t *testing.T) {
	var status, size int
	observe := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := Wrap(w)
			next.ServeHTTP(ww, r)
			status = ww.StatusCode()
			size = ww.BytesWritten()
		})
	}

	handler := observe(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("article not found"))
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/articles/99", nil))

	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, 17, size)
	assert.Equal(t, "article not found", rec.Body.String())
}
