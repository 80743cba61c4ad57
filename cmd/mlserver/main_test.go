package main

import (
	"testing"

	"github.com/dekarrin/moonlight/server"
	"github.com/stretchr/testify/assert"
)

func Test_listenAddress(t *testing.T) {
	testCases := []struct {
		name       string
		input      string
		expectAddr string
		expectPort int
		expectErr  bool
	}{
		{name: "empty", input: ""},
		{name: "port only", input: ":6001", expectPort: 6001},
		{name: "address and port", input: "192.168.0.2:6001", expectAddr: "192.168.0.2", expectPort: 6001},
		{name: "no colon", input: "localhost", expectErr: true},
		{name: "bad port", input: "localhost:http", expectErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			addr, port, err := listenAddress(tc.input)
			if tc.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.expectAddr, addr)
			assert.Equal(t, tc.expectPort, port)
		})
	}
}

func Test_tokenSecret(t *testing.T) {
	testCases := []struct {
		name      string
		input     string
		expect    string
		expectLen int
		expectErr bool
	}{
		{name: "generated", input: "", expectLen: server.MaxSecretSize},
		{name: "short is repeated", input: "abcdefghij", expect: "abcdefghijabcdefghijabcdefghijabcdefghij"},
		{name: "exact minimum", input: "0123456789abcdef0123456789abcdef", expect: "0123456789abcdef0123456789abcdef"},
		{name: "too long", input: string(make([]byte, server.MaxSecretSize+1)), expectErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual, err := tokenSecret(tc.input)
			if tc.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			if tc.expect != "" {
				assert.Equal(t, tc.expect, string(actual))
			}
			if tc.expectLen != 0 {
				assert.Len(t, actual, tc.expectLen)
			}
		})
	}
}
