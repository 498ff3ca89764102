package logs

import (
	"io"
	"os"
	"testing"
)

type Writer io.Writer

func (Module) Writer(
	t *testing.T,
) Writer {
	if t != nil {
		return testWriter{t: t}
	}
	return os.Stderr
}

type testWriter struct {
	t *testing.T
}

func (w testWriter) Write(data []byte) (int, error) {
	w.t.Logf("%s", data)
	return len(data), nil
}
