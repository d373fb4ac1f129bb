package drawsrv

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/gorilla/websocket"
	"github.com/tutils/lcgrand/lcg"
)

// ErrBadRequest is returned when the server rejects a request.
var ErrBadRequest = errors.New("drawsrv: bad request")

// Client draws values from a remote session. Like lcg.Generator it is not
// safe for concurrent use.
type Client struct {
	conn *websocket.Conn
}

// NoStream leaves the seed underived.
const NoStream = -1

// SeedParams selects the generator of a remote session. At most one of
// Seed, Label and Session may be set; all empty leaves seeding to the
// server clock.
type SeedParams struct {
	Seed    string
	Label   string
	Session string
	Stream  int
}

// SessionURL adds the seed query parameters to a ws:// address.
func SessionURL(rawURL string, p SeedParams) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}
	q := u.Query()
	for k, v := range map[string]string{"seed": p.Seed, "label": p.Label, "session": p.Session} {
		if v != "" {
			q.Set(k, v)
		}
	}
	if p.Stream >= 0 {
		q.Set("stream", strconv.Itoa(p.Stream))
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// Dial opens a session.
func Dial(ctx context.Context, rawURL string) (*Client, error) {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, rawURL, nil)
	if err != nil {
		return nil, err
	}
	return &Client{conn: conn}, nil
}

func (c *Client) do(req Request) (*Response, error) {
	c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	if err := c.conn.WriteJSON(req); err != nil {
		return nil, err
	}
	c.conn.SetReadDeadline(time.Now().Add(readTimeout))
	var resp Response
	if err := c.conn.ReadJSON(&resp); err != nil {
		return nil, err
	}
	switch resp.Code {
	case "":
		return &resp, nil
	case CodeInvalidRange:
		return &resp, fmt.Errorf("%w: %s", lcg.ErrInvalidRange, resp.Error)
	default:
		return &resp, fmt.Errorf("%w: %s", ErrBadRequest, resp.Error)
	}
}

// NextInt returns a value in [low, high] from the remote generator.
func (c *Client) NextInt(low, high int64) (int64, error) {
	resp, err := c.do(IntRequest(low, high))
	if err != nil {
		return 0, err
	}
	if resp.Int == nil {
		return 0, fmt.Errorf("%w: missing int", ErrBadRequest)
	}
	return *resp.Int, nil
}

// NextFloat returns a value in [0.0, 1.0) from the remote generator.
func (c *Client) NextFloat() (float64, error) {
	resp, err := c.do(Request{Op: OpFloat})
	if err != nil {
		return 0, err
	}
	if resp.Float == nil {
		return 0, fmt.Errorf("%w: missing float", ErrBadRequest)
	}
	return *resp.Float, nil
}

// State returns the remote generator state.
func (c *Client) State() (int64, error) {
	resp, err := c.do(Request{Op: OpState})
	if err != nil {
		return 0, err
	}
	return resp.State, nil
}

// Reset rewinds the remote generator to its seed.
func (c *Client) Reset() error {
	_, err := c.do(Request{Op: OpReset})
	return err
}

// Close ends the session.
func (c *Client) Close() error {
	c.conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(writeTimeout))
	return c.conn.Close()
}
