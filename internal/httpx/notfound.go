package httpx

import "net/http"

var probeMethods = []string{
	http.MethodGet,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
}

// NotFoundJSON serves mux, answering requests no pattern matches with a
// 404 fail envelope. Paths registered for other methods still get the
// mux's 405.
func NotFoundJSON(mux *http.ServeMux) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, pattern := mux.Handler(r); pattern == "" && !pathKnown(mux, r) {
			JSONFail(w, http.StatusNotFound, "resource not found")
			return
		}
		mux.ServeHTTP(w, r)
	})
}

func pathKnown(mux *http.ServeMux, r *http.Request) bool {
	for _, method := range probeMethods {
		if method == r.Method {
			continue
		}
		alt := r.Clone(r.Context())
		alt.Method = method
		if _, pattern := mux.Handler(alt); pattern != "" {
			return true
		}
	}
	return false
}
