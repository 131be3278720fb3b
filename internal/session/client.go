// Package session implements the client-side session holder: the single
// place a consumer UI keeps "who is logged in right now".  The holder
// decodes the token without verification; the result is a display-only
// auth.ClaimsPreview, and every real authorization decision happens
// server-side against the verified token.
package session

import (
	"sync"

	"github.com/rocgym/jobboard/internal/auth"
)

// Client holds at most one current session and fans state changes out to
// subscribers.  It is an injectable object rather than a package-level
// global so views can share one instance and tests can build their own.
type Client struct {
	mu      sync.Mutex
	store   Store
	token   string
	current *auth.ClaimsPreview
	subs    []chan *auth.ClaimsPreview
}

// NewClient builds a Client over the given persistence.  Call LoadInitial
// before first use to pick up a session left over from a previous run.
func NewClient(store Store) *Client {
	return &Client{store: store}
}

// LoadInitial restores a persisted session at startup.  The stored token
// is decoded optimistically for display; a missing, corrupt or otherwise
// undecodable token simply means "no session"; it never propagates as a
// failure, and a corrupt token is cleared from storage so the next start
// is clean.
func (c *Client) LoadInitial() {
	tok, err := c.store.Load()
	if err != nil {
		return
	}
	preview, err := auth.PreviewClaims(tok)
	if err != nil {
		_ = c.store.Clear()
		return
	}
	c.mu.Lock()
	c.token = tok
	c.current = &preview
	c.mu.Unlock()
	c.notify(&preview)
}

// SetToken installs the token returned by a successful login: it is
// persisted, decoded for display and announced to subscribers.  A token
// that does not even decode is refused; the server never issues such a
// token, so storing it would only poison the next startup.
func (c *Client) SetToken(tok string) error {
	preview, err := auth.PreviewClaims(tok)
	if err != nil {
		return err
	}
	if err := c.store.Save(tok); err != nil {
		return err
	}
	c.mu.Lock()
	c.token = tok
	c.current = &preview
	c.mu.Unlock()
	c.notify(&preview)
	return nil
}

// Clear ends the session on logout: the persisted token is removed and
// subscribers are notified with nil.
func (c *Client) Clear() error {
	if err := c.store.Clear(); err != nil {
		return err
	}
	c.mu.Lock()
	c.token = ""
	c.current = nil
	c.mu.Unlock()
	c.notify(nil)
	return nil
}

// Current returns the display-only claims of the active session, or nil
// when logged out.
func (c *Client) Current() *auth.ClaimsPreview {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// Token returns the raw token to attach as a Bearer credential, or ""
// when logged out.
func (c *Client) Token() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.token
}

// Subscribe registers an observer and returns its channel together with a
// cancel function.  The channel is buffered and sends are non-blocking, so
// a slow view can only miss intermediate states, never stall a login or
// logout.  Cancel closes the channel and removes the subscription; a view
// that goes away must cancel or the client accumulates dead channels.
// Calling cancel more than once is safe.
func (c *Client) Subscribe() (<-chan *auth.ClaimsPreview, func()) {
	ch := make(chan *auth.ClaimsPreview, 8)
	c.mu.Lock()
	c.subs = append(c.subs, ch)
	c.mu.Unlock()

	cancel := func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		for i, s := range c.subs {
			if s == ch {
				c.subs = append(c.subs[:i], c.subs[i+1:]...)
				close(ch)
				return
			}
		}
	}
	return ch, cancel
}

// notify holds the lock while sending so a concurrent cancel cannot close
// a channel mid-send.  The sends never block, so holding it is cheap.
func (c *Client) notify(p *auth.ClaimsPreview) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, ch := range c.subs {
		select {
		case ch <- p:
		default: // subscriber is behind; drop rather than block
		}
	}
}
