// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package rpc

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
)

type testRequest struct {
	Version string            `json:"jsonrpc"`
	Method  string            `json:"method"`
	Params  []json.RawMessage `json:"params"`
	ID      uint64            `json:"id"`
}

// handlerFunc answers a request with a result or an error.
// Returning a nil result and a nil error answers with a null result.
type handlerFunc func(method string, params []json.RawMessage) (result interface{}, rpcErr *Error)

// newTestServer starts a websocket JSON-RPC server answering each
// request concurrently using handler, and returns its ws:// endpoint.
func newTestServer(t *testing.T, handler handlerFunc) (endpoint string) {
	t.Helper()

	upgrader := websocket.Upgrader{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		var writeMutex sync.Mutex
		for {
			_, data, err := conn.ReadMessage()
			if err != nil {
				return
			}

			var request testRequest
			err = json.Unmarshal(data, &request)
			if err != nil {
				return
			}

			go func() {
				result, rpcErr := handler(request.Method, request.Params)
				response := map[string]interface{}{
					"jsonrpc": "2.0",
					"id":      request.ID,
				}
				if rpcErr != nil {
					response["error"] = rpcErr
				} else {
					response["result"] = result
				}

				writeMutex.Lock()
				defer writeMutex.Unlock()
				_ = conn.WriteJSON(response)
			}()
		}
	}))
	t.Cleanup(server.Close)

	return strings.Replace(server.URL, "http", "ws", 1)
}

func decodeParam(t *testing.T, param json.RawMessage, target interface{}) {
	t.Helper()
	err := json.Unmarshal(param, target)
	require.NoError(t, err)
}
