package mcp

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rpcResponse struct {
	ID     int `json:"id"`
	Result struct {
		Content []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"content"`
		IsError bool `json:"isError"`
	} `json:"result"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func TestServer_runStdioMode(t *testing.T) {
	server, _ := newTestServer(t)

	requests := []string{
		`{"jsonrpc":"2.0","id":1,"method":"initialize","params":{"protocolVersion":"2024-11-05",` +
			`"capabilities":{},"clientInfo":{"name":"test-client","version":"1.0.0"}}}`,
		`{"jsonrpc":"2.0","method":"notifications/initialized"}`,
		`{"jsonrpc":"2.0","id":2,"method":"tools/call","params":{"name":"irdai_identify_forms",` +
			`"arguments":{"path":"filing.pdf"}}}`,
		`{"jsonrpc":"2.0","id":3,"method":"tools/call","params":{"name":"irdai_parse_filing",` +
			`"arguments":{"path":"missing.pdf"}}}`,
	}
	in := strings.NewReader(strings.Join(requests, "\n") + "\n")
	var out bytes.Buffer

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, server.runStdioMode(ctx, in, &out))

	responses := map[int]rpcResponse{}
	scanner := bufio.NewScanner(&out)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		var resp rpcResponse
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &resp), scanner.Text())
		responses[resp.ID] = resp
	}
	require.Len(t, responses, 3, "one response per request, none for the notification")

	assert.Nil(t, responses[1].Error)

	identify := responses[2]
	require.Nil(t, identify.Error)
	require.Len(t, identify.Result.Content, 1)
	assert.False(t, identify.Result.IsError)
	assert.Contains(t, identify.Result.Content[0].Text, "Forms found (2):")

	missing := responses[3]
	require.Nil(t, missing.Error)
	assert.True(t, missing.Result.IsError)
}

func TestServer_runStdioMode_ContextCancelled(t *testing.T) {
	server, _ := newTestServer(t)

	// A reader that never returns keeps the server waiting for input
	pr, pw := io.Pipe()
	defer pw.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- server.runStdioMode(ctx, pr, &bytes.Buffer{})
	}()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("stdio server did not stop after context cancellation")
	}
}

func TestServer_runServerMode(t *testing.T) {
	server, _ := newTestServer(t)
	server.config.Mode = "server"
	server.config.Host = "127.0.0.1"
	server.config.Port = freePort(t)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- server.Run(ctx)
	}()

	require.Eventually(t, func() bool {
		conn, err := net.DialTimeout("tcp", server.config.Address(), 100*time.Millisecond)
		if err != nil {
			return false
		}
		conn.Close()
		return true
	}, 3*time.Second, 20*time.Millisecond, "server did not start listening")

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(shutdownTimeout + time.Second):
		t.Fatal("server did not shut down after context cancellation")
	}
}

func TestServer_runServerMode_AddressInUse(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer listener.Close()

	server, _ := newTestServer(t)
	server.config.Mode = "server"
	server.config.Host = "127.0.0.1"
	server.config.Port = listener.Addr().(*net.TCPAddr).Port

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err = server.Run(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to serve http")
}

func freePort(t *testing.T) int {
	t.Helper()
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer listener.Close()
	return listener.Addr().(*net.TCPAddr).Port
}
