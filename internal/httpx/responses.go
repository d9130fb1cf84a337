package httpx

import (
	"io"
	"log"
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

const (
	StatusSuccess = "success"
	StatusFail    = "fail"
	StatusError   = "error"
)

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

// Response is the envelope of every JSON body the API returns.
type Response struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func writeJSON(w http.ResponseWriter, statusCode int, body Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := jsonAPI.NewEncoder(w).Encode(body); err != nil {
		log.Printf("encode response: status=%d error=%v", statusCode, err)
	}
}

// JSONSuccess writes a 200 success envelope.
func JSONSuccess(w http.ResponseWriter, message string, data interface{}) {
	writeJSON(w, http.StatusOK, Response{Status: StatusSuccess, Message: message, Data: data})
}

// JSONSuccessCreated writes a 201 success envelope.
func JSONSuccessCreated(w http.ResponseWriter, message string, data interface{}) {
	writeJSON(w, http.StatusCreated, Response{Status: StatusSuccess, Message: message, Data: data})
}

// JSONFail writes a client error envelope (4xx).
func JSONFail(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, Response{Status: StatusFail, Message: message})
}

// JSONError writes a 500 error envelope.
func JSONError(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusInternalServerError, Response{Status: StatusError, Message: message})
}

// DecodeJSON reads the whole request body and unmarshals it into v.
// A body cut off by RequestSizeLimitMiddleware yields an error for which
// IsBodyTooLarge reports true.
func DecodeJSON(r *http.Request, v interface{}) error {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return err
	}
	return jsonAPI.Unmarshal(body, v)
}
