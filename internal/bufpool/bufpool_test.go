package bufpool

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetIsEmpty(t *testing.T) {
	buf := Get()
	buf.WriteString("leftover")
	Put(buf)

	require.Zero(t, Get().Len())
}

func TestPutDropsLargeBuffers(t *testing.T) {
	require.NotPanics(t, func() {
		Put(bytes.NewBuffer(make([]byte, 0, maxCap+1)))
		Put(new(bytes.Buffer))
	})
	require.Zero(t, Get().Len())
}
