package pkg

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIPIsLocal(t *testing.T) {
	cases := []struct {
		addr            string
		expectedIsLocal bool
	}{
		{addr: "83.12.53.65:2145", expectedIsLocal: false},
		{addr: "127.0.0.1:35325", expectedIsLocal: true},
		{addr: "::1", expectedIsLocal: true},
		{addr: "::ffff:127.0.0.1", expectedIsLocal: true},
		{addr: "172.20.0.1:60102", expectedIsLocal: true},
		{addr: "172.200.0.1:60096", expectedIsLocal: true},
		{addr: "172.19.0.1:42452", expectedIsLocal: true},
		{addr: "111.12.56.65:8080", expectedIsLocal: false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.expectedIsLocal, IPIsLocal(tc.addr), "addr: %s", tc.addr)
	}
}

func TestReadUserIP(t *testing.T) {
	req, err := http.NewRequest("GET", "/", nil)
	require.NoError(t, err)
	req.RemoteAddr = "83.12.53.65:2145"

	ip, err := ReadUserIP(req)
	require.NoError(t, err)
	assert.Equal(t, "83.12.53.65", ip)

	req.Header.Set("X-Forwarded-For", "93.12.53.65, 10.0.0.1")
	ip, err = ReadUserIP(req)
	require.NoError(t, err)
	assert.Equal(t, "93.12.53.65", ip)

	req.Header.Set("X-Real-Ip", "::ffff:95.12.53.65")
	ip, err = ReadUserIP(req)
	require.NoError(t, err)
	assert.Equal(t, "95.12.53.65", ip)

	req.Header.Set("X-Real-Ip", "not-an-ip")
	_, err = ReadUserIP(req)
	require.Error(t, err)
}
