// Package dispatcher fans parsed messages out to registered listeners: a
// simple observer registry over crikey.Command and crikey.Reply.
package dispatcher

import (
	"sync"

	"github.com/crikeyirc/crikey"
)

// CommandListener is invoked once per matching incoming Command.
type CommandListener func(crikey.Command)

// ReplyListener is invoked once per incoming Reply. Returning false
// unregisters the listener after this call; returning true keeps it
// registered for future replies.
type ReplyListener func(crikey.Reply) bool

// Dispatcher routes decoded commands and replies to registered listeners.
// Command listeners are keyed by verb and persist across calls; reply
// listeners are a flat list that can self-unregister.
type Dispatcher struct {
	mu              sync.Mutex
	commandListeners map[string][]CommandListener
	replyListeners   []ReplyListener
}

// New returns an empty Dispatcher.
func New() *Dispatcher {
	return &Dispatcher{commandListeners: make(map[string][]CommandListener)}
}

// RegisterCommandListener registers fn to run whenever HandleCommand is
// called with a Command whose Kind equals verb.
func (d *Dispatcher) RegisterCommandListener(verb string, fn CommandListener) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.commandListeners[verb] = append(d.commandListeners[verb], fn)
}

// RegisterReplyListener registers fn to run on every subsequent call to
// HandleReply, until fn itself returns false.
func (d *Dispatcher) RegisterReplyListener(fn ReplyListener) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.replyListeners = append(d.replyListeners, fn)
}

// HandleCommand runs every listener registered for cmd.Kind.
func (d *Dispatcher) HandleCommand(cmd crikey.Command) {
	d.mu.Lock()
	listeners := append([]CommandListener(nil), d.commandListeners[cmd.Kind]...)
	d.mu.Unlock()
	for _, fn := range listeners {
		fn(cmd)
	}
}

// HandleReply runs every registered reply listener, dropping any that
// return false.
func (d *Dispatcher) HandleReply(reply crikey.Reply) {
	d.mu.Lock()
	listeners := d.replyListeners
	d.mu.Unlock()

	kept := make([]ReplyListener, 0, len(listeners))
	for _, fn := range listeners {
		if fn(reply) {
			kept = append(kept, fn)
		}
	}

	d.mu.Lock()
	d.replyListeners = kept
	d.mu.Unlock()
}
