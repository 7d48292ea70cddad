// File: api/api_test.go
// Author: momentics <momentics@gmail.com>

package api_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/momentics/hioload-native/api"
)

func TestKindSizes(t *testing.T) {
	cases := []struct {
		kind api.Kind
		size int64
		name string
	}{
		{api.Bool, 1, "bool"},
		{api.Byte, 1, "byte"},
		{api.Short, 2, "short"},
		{api.Int, 4, "int"},
		{api.Long, 8, "long"},
		{api.Float, 4, "float"},
		{api.Double, 8, "double"},
	}
	for _, c := range cases {
		require.Equal(t, c.size, c.kind.Size(), c.name)
		require.Equal(t, c.name, c.kind.String())
	}
	require.Equal(t, int64(0), api.Kind(99).Size())
}

func TestFormatBytes(t *testing.T) {
	require.Equal(t, "0", api.FormatBytes(0))
	require.Equal(t, "500", api.FormatBytes(500))
	require.Equal(t, "1023999", api.FormatBytes(1024*1000-1))
	require.Equal(t, "1000K", api.FormatBytes(1024*1000))
	require.Equal(t, "2048K", api.FormatBytes(2*1024*1024))
	require.Equal(t, "2000M", api.FormatBytes(2*1024*1024*1000))
	require.Equal(t, "3000G", api.FormatBytes(3*1024*1024*1024*1000))
}

func TestOutOfMemoryError(t *testing.T) {
	cause := errors.New("cannot allocate memory")
	err := &api.OutOfMemoryError{
		Requested:     1 << 30,
		TotalBytes:    4096,
		ResidentBytes: 123456,
		Cause:         cause,
	}

	msg := err.Error()
	require.Contains(t, msg, "1073741824")
	require.Contains(t, msg, "totalBytes = 4096")
	require.Contains(t, msg, "physicalBytes = 123456")
	require.ErrorIs(t, err, cause)
}

func TestHandleHelpers(t *testing.T) {
	h := api.Handle{Address: 0x1000, Position: 2, Limit: 10, Capacity: 16, ElemSize: 1}
	require.Equal(t, int64(8), h.Remaining())
	require.Equal(t, int64(16), h.ByteCapacity())
}
