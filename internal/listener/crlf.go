package listener

import (
	"bytes"
	"io"
)

// crlfConn translates line endings for network clients: \r\n and bare \r
// become \n on read, \n becomes \r\n on write.
type crlfConn struct {
	rw io.ReadWriter
}

func newCRLFReadWriter(rw io.ReadWriter) io.ReadWriter {
	return &crlfConn{rw: rw}
}

func (c *crlfConn) Read(p []byte) (int, error) {
	n, err := c.rw.Read(p)
	if n == 0 {
		return n, err
	}

	// Telnet sends \r\n, an ssh client without a pty sends \r.
	data := bytes.ReplaceAll(p[:n], []byte("\r\n"), []byte("\n"))
	data = bytes.ReplaceAll(data, []byte("\r"), []byte("\n"))
	return copy(p, data), err
}

func (c *crlfConn) Write(p []byte) (int, error) {
	_, err := c.rw.Write(bytes.ReplaceAll(p, []byte("\n"), []byte("\r\n")))
	if err != nil {
		return 0, err
	}
	return len(p), nil
}
