// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package rpc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/ChainSafe/chainfork/internal/log"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var logger = log.NewFromGlobal(log.AddContext("pkg", "rpc"))

var (
	ErrResponseVersion = errors.New("unexpected response version received")
	ErrResponseError   = errors.New("response error received")
	ErrClientClosed    = errors.New("rpc client is closed")
)

var requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: "chainfork_rpc",
	Name:      "request_duration_seconds",
	Help:      "duration of the JSON-RPC requests sent to the node",
}, []string{"method"})

// Client is a JSON-RPC 2.0 client talking to a node over a single
// websocket connection. It is safe for concurrent use: requests are
// multiplexed on the connection and matched to their response by id.
type Client struct {
	conn    *websocket.Conn
	writeMu sync.Mutex

	mutex    sync.Mutex
	pending  map[uint64]chan *Response
	closed   chan struct{}
	closeErr error

	nextID    uint64
	closeOnce sync.Once
	logger    log.LeveledLogger
}

// Dial connects to the node websocket endpoint, for example ws://127.0.0.1:9944.
func Dial(ctx context.Context, endpoint string) (*Client, error) {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("dialing %s: %w", endpoint, err)
	}

	logger.Debugf("connected to %s", endpoint)
	return newClient(conn, logger), nil
}

func newClient(conn *websocket.Conn, logger log.LeveledLogger) *Client {
	c := &Client{
		conn:    conn,
		pending: make(map[uint64]chan *Response),
		closed:  make(chan struct{}),
		logger:  logger,
	}
	go c.readLoop()
	return c
}

// Call sends a request with the method and positional parameters given,
// waits for its response and decodes its result into result, if result is not nil.
func (c *Client) Call(ctx context.Context, result interface{}, method string, params ...interface{}) (err error) {
	timer := prometheus.NewTimer(requestDuration.WithLabelValues(method))
	defer timer.ObserveDuration()

	if params == nil {
		params = []interface{}{}
	}

	id := atomic.AddUint64(&c.nextID, 1)
	responseCh := make(chan *Response, 1)

	c.mutex.Lock()
	if c.closeErr != nil {
		err = c.closeErr
		c.mutex.Unlock()
		return err
	}
	c.pending[id] = responseCh
	c.mutex.Unlock()

	defer func() {
		c.mutex.Lock()
		delete(c.pending, id)
		c.mutex.Unlock()
	}()

	data, err := json.Marshal(Request{
		Version: jsonRPCVersion,
		Method:  method,
		Params:  params,
		ID:      id,
	})
	if err != nil {
		return fmt.Errorf("encoding %s request: %w", method, err)
	}

	c.writeMu.Lock()
	err = c.conn.WriteMessage(websocket.TextMessage, data)
	c.writeMu.Unlock()
	if err != nil {
		return fmt.Errorf("sending %s request: %w", method, err)
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-c.closed:
		return fmt.Errorf("waiting for %s response: %w", method, c.closeErr)
	case response := <-responseCh:
		return decodeResponse(response, method, result)
	}
}

func decodeResponse(response *Response, method string, result interface{}) error {
	if response.Version != jsonRPCVersion {
		return fmt.Errorf("%w: %s", ErrResponseVersion, response.Version)
	}

	if response.Error != nil {
		return fmt.Errorf("%w: %s: %s (error code %d)",
			ErrResponseError, method, response.Error.Message, response.Error.ErrorCode)
	}

	if result == nil {
		return nil
	}

	err := json.Unmarshal(response.Result, result)
	if err != nil {
		return fmt.Errorf("cannot decode %s result: %w", method, err)
	}
	return nil
}

func (c *Client) readLoop() {
	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			c.fail(fmt.Errorf("%w: %s", ErrClientClosed, err))
			return
		}

		var response Response
		err = json.Unmarshal(data, &response)
		if err != nil {
			c.logger.Debugf("ignoring malformed message: %s", err)
			continue
		}

		if response.ID == nil {
			c.logger.Tracef("ignoring notification for method %s", response.Method)
			continue
		}

		c.mutex.Lock()
		responseCh, ok := c.pending[*response.ID]
		c.mutex.Unlock()
		if !ok {
			c.logger.Debugf("ignoring response with unknown id %d", *response.ID)
			continue
		}

		select {
		case responseCh <- &response:
		default:
			c.logger.Debugf("ignoring duplicate response with id %d", *response.ID)
		}
	}
}

func (c *Client) fail(err error) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if c.closeErr != nil {
		return
	}
	c.closeErr = err
	close(c.closed)
}

// Close closes the connection to the node. Calls waiting for
// a response return an error wrapping ErrClientClosed.
func (c *Client) Close() (err error) {
	c.closeOnce.Do(func() {
		c.fail(ErrClientClosed)

		c.writeMu.Lock()
		_ = c.conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
		c.writeMu.Unlock()

		err = c.conn.Close()
	})
	return err
}
