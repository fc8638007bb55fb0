package main

import (
	"bytes"
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noos-go/iio-demo/pkg/demo"
	"github.com/noos-go/iio-demo/pkg/iio"
	"github.com/noos-go/iio-demo/pkg/transport"
	"github.com/noos-go/iio-demo/pkg/version"
)

func newTestClient(t *testing.T) *iio.Client {
	t.Helper()
	serverEnd, clientEnd := net.Pipe()

	app, err := iio.Init(iio.InitParam{Ops: serverEnd, Description: "test"})
	require.NoError(t, err)
	for _, p := range []demo.InitParam{
		{Name: demo.OutputName, NumChannels: 4, Buffer: make([]byte, 64), Direction: demo.Output, Registry: app},
		{Name: demo.InputName, NumChannels: 4, Buffer: make([]byte, 64), Direction: demo.Input, Registry: app},
	} {
		_, err := demo.Init(p)
		require.NoError(t, err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	go app.Run(ctx)

	client := iio.NewClient(transport.NewClientConn(clientEnd, transport.ClientConfig{}))
	client.SetTimeout(2 * time.Second)
	t.Cleanup(func() {
		cancel()
		_ = serverEnd.Close()
		_ = client.Close()
	})
	return client
}

func run(t *testing.T, c *iio.Client, line string) (string, bool) {
	t.Helper()
	var buf bytes.Buffer
	quit := execute(context.Background(), c, &buf, line)
	return buf.String(), quit
}

func TestShellCommands(t *testing.T) {
	c := newTestClient(t)

	out, quit := run(t, c, "version")
	assert.False(t, quit)
	assert.Contains(t, out, version.Current)

	out, _ = run(t, c, "print")
	assert.Contains(t, out, demo.OutputName)
	assert.Contains(t, out, demo.InputName)
	assert.Contains(t, out, "voltage0")

	out, _ = run(t, c, "write "+demo.InputName+" "+demo.AttrGlobal+" 7")
	assert.Equal(t, "ok\n", out)
	out, _ = run(t, c, "read "+demo.InputName+" "+demo.AttrGlobal)
	assert.Equal(t, "7\n", out)

	out, _ = run(t, c, "w "+demo.OutputName+" 2 "+demo.AttrChannel+" 0x10")
	assert.Equal(t, "ok\n", out)
	out, _ = run(t, c, "r "+demo.OutputName+" 2 "+demo.AttrChannel)
	assert.Equal(t, "16\n", out)

	out, _ = run(t, c, "open "+demo.InputName+" 0x1 4")
	assert.Equal(t, "ok\n", out)
	out, _ = run(t, c, "readbuf "+demo.InputName+" 2")
	assert.Contains(t, out, "-16384")
	assert.Contains(t, out, "(2 bytes)")
	out, _ = run(t, c, "close "+demo.InputName)
	assert.Equal(t, "ok\n", out)

	out, _ = run(t, c, "timeout 250")
	assert.Equal(t, "ok\n", out)
}

func TestShellErrors(t *testing.T) {
	c := newTestClient(t)

	out, quit := run(t, c, "bogus")
	assert.False(t, quit)
	assert.Contains(t, out, "unknown command")

	out, _ = run(t, c, "read onlyone")
	assert.Contains(t, out, "Error: usage")

	out, _ = run(t, c, "read "+demo.InputName+" x "+demo.AttrChannel)
	assert.Contains(t, out, "channel")

	out, _ = run(t, c, "read nodev "+demo.AttrGlobal)
	assert.Contains(t, out, "Error:")

	out, _ = run(t, c, "writebuf "+demo.OutputName+" zz")
	assert.Contains(t, out, "Error: data")
}

func TestShellQuit(t *testing.T) {
	out, quit := run(t, nil, "quit")
	assert.True(t, quit)
	assert.Empty(t, out)

	out, quit = run(t, nil, "   ")
	assert.False(t, quit)
	assert.Empty(t, out)

	out, _ = run(t, nil, "help")
	assert.Contains(t, out, "readbuf")
}
