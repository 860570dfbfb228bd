package curry_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/katalvlaran/curried/curry"
	"github.com/stretchr/testify/require"
)

func TestOptionConstructorsPanic(t *testing.T) {
	require.Panics(t, func() { curry.WithNonRestParams(-1) })
	require.Panics(t, func() { curry.WithLogger(nil) })
	require.NotPanics(t, func() { curry.WithName("") })
}

func TestWithNonRestParams_LaterWins(t *testing.T) {
	b, err := curry.Create(affine, curry.WithNonRestParams(1), curry.WithNonRestParams(2))
	require.NoError(t, err)
	require.Equal(t, 2, b.NonRestParams())

	// Derived builders share the count.
	require.Equal(t, 2, curry.Must(b.Takes(0)).NonRestParams())
}

func TestWithLogger_RecordsDeriveAndInvoke(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	b, err := curry.Create(affine, curry.WithLogger(logger), curry.WithName("affine"))
	require.NoError(t, err)
	g := curry.Must(b.Takes(1)).Build()
	_, err = g.Call(2)
	require.NoError(t, err)

	out := buf.String()
	require.Contains(t, out, "msg=curry.derive")
	require.Contains(t, out, "method=Takes")
	require.Contains(t, out, "position=#1")
	require.Contains(t, out, "msg=curry.invoke")
	require.Contains(t, out, "receiver_slot=false")
	require.Contains(t, out, "variadic=false")
	require.Equal(t, 2, strings.Count(out, "name=affine"))
}

func TestDefaultLoggerIsSilent(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer slog.SetDefault(prev)

	_, err := curry.Must(newAffine(t).Takes(0)).Build().Call(1)
	require.NoError(t, err)
	require.Empty(t, buf.String())
}
