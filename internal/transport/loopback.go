package transport

import (
	"context"
	"errors"
	"sync"
)

// ErrPeerUnreachable is reported by a send attempted while the link is down.
var ErrPeerUnreachable = errors.New("peer unreachable")

// loopbackLink is the shared state of an in-memory session pair.
type loopbackLink struct {
	mu sync.Mutex
	up bool
	a  *LoopbackSession
	b  *LoopbackSession
}

// LoopbackSession is an in-memory Session implementation connected to a
// twin, used by tests and the demo command. Send callbacks fire on a
// separate goroutine, matching the asynchronous delivery contract of the
// real platform link.
type LoopbackSession struct {
	link *loopbackLink

	mu       sync.Mutex
	active   bool
	receiver Receiver
	reachFn  func(bool)
	appCtx   []byte
}

// NewLoopbackPair creates two connected sessions. The link starts down; call
// SetLinkUp(true) once both sides are activated.
func NewLoopbackPair() (*LoopbackSession, *LoopbackSession) {
	link := &loopbackLink{}
	link.a = &LoopbackSession{link: link}
	link.b = &LoopbackSession{link: link}
	return link.a, link.b
}

// SetLinkUp raises or drops the link and notifies both reachability handlers.
func (s *LoopbackSession) SetLinkUp(up bool) {
	s.link.mu.Lock()
	if s.link.up == up {
		s.link.mu.Unlock()
		return
	}
	s.link.up = up
	a, b := s.link.a, s.link.b
	s.link.mu.Unlock()

	a.notifyReachability(up)
	b.notifyReachability(up)
}

func (s *LoopbackSession) notifyReachability(up bool) {
	s.mu.Lock()
	fn := s.reachFn
	s.mu.Unlock()
	if fn != nil {
		fn(up)
	}
}

func (s *LoopbackSession) peer() *LoopbackSession {
	if s == s.link.a {
		return s.link.b
	}
	return s.link.a
}

// Activate marks the session active.
func (s *LoopbackSession) Activate(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = true
	return nil
}

// Deactivate marks the session inactive.
func (s *LoopbackSession) Deactivate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = false
}

// Reachable reports whether the link is up and both ends are active.
func (s *LoopbackSession) Reachable() bool {
	s.link.mu.Lock()
	up := s.link.up
	s.link.mu.Unlock()
	if !up {
		return false
	}

	p := s.peer()
	s.mu.Lock()
	active := s.active
	s.mu.Unlock()
	p.mu.Lock()
	peerActive := p.active
	p.mu.Unlock()
	return active && peerActive
}

// PeerInstalled always holds for a loopback pair.
func (s *LoopbackSession) PeerInstalled() bool { return true }

// Supported always holds for a loopback pair.
func (s *LoopbackSession) Supported() bool { return true }

// Send delivers the frame to the twin's receiver on a fresh goroutine and
// routes the receiver's return value back through reply.
func (s *LoopbackSession) Send(data []byte, reply func([]byte), fail func(error)) {
	go func() {
		if !s.Reachable() {
			if fail != nil {
				fail(ErrPeerUnreachable)
			}
			return
		}

		p := s.peer()
		p.mu.Lock()
		r := p.receiver
		p.mu.Unlock()
		if r == nil {
			if fail != nil {
				fail(errors.New("peer has no receiver"))
			}
			return
		}

		ack := r(data)
		if reply != nil {
			reply(ack)
		}
	}()
}

// UpdateApplicationContext stores the context frame on the twin.
func (s *LoopbackSession) UpdateApplicationContext(data []byte) error {
	p := s.peer()
	p.mu.Lock()
	p.appCtx = append([]byte(nil), data...)
	p.mu.Unlock()
	return nil
}

// ApplicationContext returns the most recent context frame received.
func (s *LoopbackSession) ApplicationContext() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]byte(nil), s.appCtx...)
}

// SetReceiver registers the inbound frame callback.
func (s *LoopbackSession) SetReceiver(r Receiver) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.receiver = r
}

// SetReachabilityHandler registers the reachability change callback.
func (s *LoopbackSession) SetReachabilityHandler(fn func(bool)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reachFn = fn
}
