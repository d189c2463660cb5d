// Copyright (c) 2019 The arnak developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package notify

import (
	"sort"
	"sync"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/pkg/errors"
)

// Notification topics.
const (
	TopicHashBlock = "hashblock"
	TopicHashTx    = "hashtx"
	TopicRawTx     = "rawtx"
)

// BlockEvent describes a block that became the tip of the best chain.
type BlockEvent struct {
	Hash   chainhash.Hash
	Height int32
}

// TxEvent describes a transaction accepted to the mempool or connected in a
// block.
type TxEvent struct {
	Hash chainhash.Hash
	Raw  []byte
}

// Notifier is a notification back-end.
type Notifier interface {
	// Name identifies the back-end in log messages.
	Name() string

	// Initialize starts the back-end.  Events must not be delivered to a
	// notifier that failed to initialize.
	Initialize() error

	// Shutdown stops the back-end and releases its resources.
	Shutdown()

	NotifyBlock(event *BlockEvent) error
	NotifyTransaction(event *TxEvent) error
}

// Config maps each notification topic to the address it is published on.
// Topics without an address are not published.  Topics sharing an address
// share a listener.
type Config struct {
	HashBlock string
	HashTx    string
	RawTx     string
}

// topicsByAddress groups the configured topics by listen address.
func (cfg *Config) topicsByAddress() map[string][]string {
	byAddr := make(map[string][]string)
	for _, t := range []struct {
		topic, addr string
	}{
		{TopicHashBlock, cfg.HashBlock},
		{TopicHashTx, cfg.HashTx},
		{TopicRawTx, cfg.RawTx},
	} {
		if t.addr == "" {
			continue
		}
		byAddr[t.addr] = append(byAddr[t.addr], t.topic)
	}
	return byAddr
}

// NotificationInterface fans chain events out to the configured notification
// back-ends.  A back-end that fails to deliver an event is shut down and
// receives no further events.
type NotificationInterface struct {
	mtx       sync.Mutex
	notifiers []Notifier
}

// New returns a NotificationInterface publishing the topics of cfg.  It
// returns nil when no topic is configured.
func New(cfg *Config) *NotificationInterface {
	byAddr := cfg.topicsByAddress()
	if len(byAddr) == 0 {
		return nil
	}

	addrs := make([]string, 0, len(byAddr))
	for addr := range byAddr {
		addrs = append(addrs, addr)
	}
	sort.Strings(addrs)

	notifiers := make([]Notifier, 0, len(addrs))
	for _, addr := range addrs {
		notifiers = append(notifiers, newWSPublisher(addr, byAddr[addr]))
	}
	return NewWithNotifiers(notifiers...)
}

// NewWithNotifiers returns a NotificationInterface delivering to the passed
// back-ends.
func NewWithNotifiers(notifiers ...Notifier) *NotificationInterface {
	return &NotificationInterface{notifiers: notifiers}
}

// Initialize starts every back-end.  When one fails, the back-ends started
// before it are shut down again and the error is returned, so either all
// back-ends run or none do.
func (n *NotificationInterface) Initialize() error {
	n.mtx.Lock()
	defer n.mtx.Unlock()

	for i, notifier := range n.notifiers {
		if err := notifier.Initialize(); err != nil {
			for _, started := range n.notifiers[:i] {
				started.Shutdown()
			}
			return errors.Wrapf(err, "unable to initialize notifier %s",
				notifier.Name())
		}
		log.Infof("Notifier %s started", notifier.Name())
	}
	return nil
}

// Shutdown stops every back-end.
func (n *NotificationInterface) Shutdown() {
	n.mtx.Lock()
	defer n.mtx.Unlock()

	for _, notifier := range n.notifiers {
		log.Infof("Notifier %s shutting down", notifier.Name())
		notifier.Shutdown()
	}
	n.notifiers = nil
}

// BlockConnected notifies every back-end of a new best chain tip.
func (n *NotificationInterface) BlockConnected(event *BlockEvent) {
	n.deliver(func(notifier Notifier) error {
		return notifier.NotifyBlock(event)
	})
}

// TransactionAccepted notifies every back-end of a transaction.
func (n *NotificationInterface) TransactionAccepted(event *TxEvent) {
	n.deliver(func(notifier Notifier) error {
		return notifier.NotifyTransaction(event)
	})
}

// deliver runs notify against every back-end, dropping the ones that fail.
func (n *NotificationInterface) deliver(notify func(Notifier) error) {
	n.mtx.Lock()
	defer n.mtx.Unlock()

	kept := n.notifiers[:0]
	for _, notifier := range n.notifiers {
		if err := notify(notifier); err != nil {
			log.Errorf("Notifier %s failed, shutting it down: %v",
				notifier.Name(), err)
			notifier.Shutdown()
			continue
		}
		kept = append(kept, notifier)
	}
	n.notifiers = kept
}

// Notifiers returns the names of the back-ends still receiving events.
func (n *NotificationInterface) Notifiers() []string {
	n.mtx.Lock()
	defer n.mtx.Unlock()

	names := make([]string, 0, len(n.notifiers))
	for _, notifier := range n.notifiers {
		names = append(names, notifier.Name())
	}
	return names
}
