package engine

import (
	"bufio"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePeer emulates the stay-open process on in-memory pipes: it reads
// argument lines until "-execute", then answers via respond.
type fakePeer struct {
	handle  *handle
	batches chan []string
}

// newFakePeer wires a handle to an in-process peer. respond is called
// with each argument batch and returns the payload to write before the
// ready marker.
func newFakePeer(t *testing.T, respond func(args []string) string) *fakePeer {
	t.Helper()
	inR, inW := io.Pipe()
	outR, outW := io.Pipe()

	p := &fakePeer{
		handle: &handle{
			stdin: inW,
			out:   bufio.NewReader(outR),
			done:  make(chan struct{}),
		},
		batches: make(chan []string, 16),
	}
	go func() {
		defer outW.Close()
		sc := bufio.NewScanner(inR)
		var args []string
		for sc.Scan() {
			line := sc.Text()
			if line == "-stay_open" {
				sc.Scan() // swallow "False"
				return
			}
			if line != "-execute" {
				args = append(args, line)
				continue
			}
			p.batches <- args
			payload := respond(args)
			if payload != "" {
				io.WriteString(outW, payload)
				if !strings.HasSuffix(payload, "\n") {
					io.WriteString(outW, "\n")
				}
			}
			io.WriteString(outW, readyMarker+"\n")
			args = nil
		}
	}()
	t.Cleanup(func() {
		inW.Close()
		close(p.handle.done)
	})
	return p
}

func TestHandleExecute(t *testing.T) {
	p := newFakePeer(t, func(args []string) string {
		return "ExifTool output\nsecond line"
	})

	out, err := p.handle.execute([]string{"-j", "/photos/a.jpg"})
	require.NoError(t, err)
	assert.Equal(t, "ExifTool output\nsecond line", out)
	assert.Equal(t, []string{"-j", "/photos/a.jpg"}, <-p.batches)
}

func TestHandleExecuteEmptyResponse(t *testing.T) {
	p := newFakePeer(t, func([]string) string { return "" })

	out, err := p.handle.execute([]string{"-ver"})
	require.NoError(t, err)
	assert.Equal(t, "", out)
}

func TestHandleExecuteSequentialCalls(t *testing.T) {
	n := 0
	p := newFakePeer(t, func([]string) string {
		n++
		return "response " + string(rune('0'+n))
	})

	for i := 1; i <= 3; i++ {
		out, err := p.handle.execute([]string{"-ver"})
		require.NoError(t, err)
		assert.Equal(t, "response "+string(rune('0'+i)), out)
	}
}

func TestHandleExecuteCRLFResponses(t *testing.T) {
	// A Windows engine build terminates lines with CRLF.
	inR, inW := io.Pipe()
	outR, outW := io.Pipe()
	go io.Copy(io.Discard, inR)
	go func() {
		io.WriteString(outW, "1 image files updated\r\n"+readyMarker+"\r\n")
	}()
	h := &handle{stdin: inW, out: bufio.NewReader(outR), done: make(chan struct{})}
	t.Cleanup(func() { inW.Close(); close(h.done) })

	out, err := h.execute([]string{"-Tag=v", "a.jpg"})
	require.NoError(t, err)
	assert.Equal(t, "1 image files updated", out)
}

func TestHandleExecutePeerGone(t *testing.T) {
	inR, inW := io.Pipe()
	outR, outW := io.Pipe()
	go io.Copy(io.Discard, inR)
	outW.Close() // peer died: EOF before any response
	h := &handle{stdin: inW, out: bufio.NewReader(outR), done: make(chan struct{})}
	t.Cleanup(func() { inW.Close(); close(h.done) })

	_, err := h.execute([]string{"-ver"})
	assert.Error(t, err)
}
