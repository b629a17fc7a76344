package listener

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/pixil98/go-testutil"
)

type bufferConn struct {
	in  io.Reader
	out bytes.Buffer
}

func (c *bufferConn) Read(p []byte) (int, error)  { return c.in.Read(p) }
func (c *bufferConn) Write(p []byte) (int, error) { return c.out.Write(p) }

func TestCRLFReadWriter_Read(t *testing.T) {
	tests := map[string]struct {
		in  string
		exp string
	}{
		"telnet line endings": {in: "go east\r\nlook\r\n", exp: "go east\nlook\n"},
		"pty carriage return": {in: "take cookie\r", exp: "take cookie\n"},
		"plain newline":       {in: "quit\n", exp: "quit\n"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			rw := newCRLFReadWriter(&bufferConn{in: strings.NewReader(tt.in)})
			got, err := io.ReadAll(rw)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			testutil.AssertEqual(t, "read", string(got), tt.exp)
		})
	}
}

func TestCRLFReadWriter_Write(t *testing.T) {
	conn := &bufferConn{in: strings.NewReader("")}
	rw := newCRLFReadWriter(conn)

	msg := "You are in a lecture theatre.\nExits: west\n"
	n, err := rw.Write([]byte(msg))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	testutil.AssertEqual(t, "reported length", n, len(msg))
	testutil.AssertEqual(t, "written", conn.out.String(), "You are in a lecture theatre.\r\nExits: west\r\n")
}
