// Package respond writes JSON API responses.
package respond

import (
	"encoding/json"
	"net/http"

	"github.com/wb-go/wbf/zlog"
)

type result struct {
	Result interface{} `json:"result"`
}

type failure struct {
	Error string `json:"error"`
}

// JSON writes v with the given status code.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to encode response")
	}
}

// OK writes {"result": v} with status 200.
func OK(w http.ResponseWriter, v interface{}) {
	JSON(w, http.StatusOK, result{Result: v})
}

// Created writes {"result": v} with status 201.
func Created(w http.ResponseWriter, v interface{}) {
	JSON(w, http.StatusCreated, result{Result: v})
}

// NoContent writes an empty 204 response.
func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)

	// gin holds the status back until the first write.
	if f, ok := w.(interface{ WriteHeaderNow() }); ok {
		f.WriteHeaderNow()
	}
}

// Fail writes {"error": err} with the given status code.
func Fail(w http.ResponseWriter, status int, err error) {
	JSON(w, status, failure{Error: err.Error()})
}
