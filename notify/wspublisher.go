// Copyright (c) 2019 The arnak developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package notify

import (
	"encoding/binary"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
)

const (
	// writeWait is the time allowed to write a message to a subscriber.
	writeWait = 10 * time.Second

	// sendQueueSize is the number of messages buffered per subscriber.
	// A subscriber that falls further behind is disconnected.
	sendQueueSize = 128
)

// wsSubscriber is a websocket client subscribed to a single topic.
type wsSubscriber struct {
	conn  *websocket.Conn
	topic string
	send  chan []byte
	once  sync.Once
}

// close disconnects the subscriber.  It is safe to call more than once.
func (s *wsSubscriber) close() {
	s.once.Do(func() {
		s.conn.Close()
	})
}

// wsPublisher publishes topics to websocket subscribers.  Each topic is
// served on the path /<topic> of the listen address and every message is
// framed as topic || sequence || body, where sequence is a little-endian
// uint32 counting the messages of the topic.
type wsPublisher struct {
	addr     string
	topics   map[string]uint32 // topic -> next sequence number
	upgrader websocket.Upgrader

	listener net.Listener
	server   *http.Server
	wg       sync.WaitGroup

	mtx         sync.Mutex
	subscribers map[*wsSubscriber]struct{}
	stopped     bool
}

// Ensure wsPublisher implements the Notifier interface.
var _ Notifier = (*wsPublisher)(nil)

func newWSPublisher(addr string, topics []string) *wsPublisher {
	p := &wsPublisher{
		addr:        addr,
		topics:      make(map[string]uint32, len(topics)),
		subscribers: make(map[*wsSubscriber]struct{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}
	for _, topic := range topics {
		p.topics[topic] = 0
	}
	return p
}

// Name returns the websocket endpoint of the publisher.
func (p *wsPublisher) Name() string {
	return "ws://" + p.Addr()
}

// Addr returns the address the publisher listens on.  Before Initialize it is
// the configured address.
func (p *wsPublisher) Addr() string {
	if p.listener != nil {
		return p.listener.Addr().String()
	}
	return p.addr
}

// Initialize binds the listen address and starts serving subscribers.
func (p *wsPublisher) Initialize() error {
	listener, err := net.Listen("tcp", p.addr)
	if err != nil {
		return errors.Wrapf(err, "unable to listen on %s", p.addr)
	}
	p.listener = listener

	mux := http.NewServeMux()
	for topic := range p.topics {
		topic := topic
		mux.HandleFunc("/"+topic, func(w http.ResponseWriter, r *http.Request) {
			p.handleSubscriber(w, r, topic)
		})
	}
	p.server = &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: writeWait,
	}

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		err := p.server.Serve(listener)
		if err != nil && err != http.ErrServerClosed {
			log.Errorf("Websocket publisher %s stopped: %v", p.Addr(), err)
		}
	}()
	return nil
}

// handleSubscriber upgrades a request to a websocket subscription of topic.
func (p *wsPublisher) handleSubscriber(w http.ResponseWriter, r *http.Request, topic string) {
	conn, err := p.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Debugf("Websocket upgrade from %s failed: %v", r.RemoteAddr, err)
		return
	}

	sub := &wsSubscriber{
		conn:  conn,
		topic: topic,
		send:  make(chan []byte, sendQueueSize),
	}
	p.mtx.Lock()
	if p.stopped {
		p.mtx.Unlock()
		sub.close()
		return
	}
	p.subscribers[sub] = struct{}{}
	p.wg.Add(1)
	p.mtx.Unlock()
	log.Debugf("New %s subscriber %s", topic, r.RemoteAddr)

	go p.subscriberWriter(sub)

	// Subscribers never send anything meaningful.  Reading only detects
	// the connection going away.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
	p.removeSubscriber(sub)
	log.Debugf("%s subscriber %s disconnected", topic, r.RemoteAddr)
}

// subscriberWriter writes queued messages to a subscriber until its queue is
// closed.
func (p *wsPublisher) subscriberWriter(sub *wsSubscriber) {
	defer p.wg.Done()

	for msg := range sub.send {
		sub.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := sub.conn.WriteMessage(websocket.BinaryMessage, msg); err != nil {
			sub.close()
			p.removeSubscriber(sub)
			// Drain so removeSubscriber never blocks on a full queue.
			for range sub.send {
			}
			return
		}
	}
	sub.conn.SetWriteDeadline(time.Now().Add(writeWait))
	sub.conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseGoingAway, ""))
	sub.close()
}

// removeSubscriber forgets a subscriber and closes its queue.
func (p *wsPublisher) removeSubscriber(sub *wsSubscriber) {
	p.mtx.Lock()
	defer p.mtx.Unlock()

	if _, ok := p.subscribers[sub]; !ok {
		return
	}
	delete(p.subscribers, sub)
	close(sub.send)
}

// publish queues body on topic for every subscriber.  Topics the publisher
// does not serve are ignored.
func (p *wsPublisher) publish(topic string, body []byte) error {
	p.mtx.Lock()
	defer p.mtx.Unlock()

	if p.stopped {
		return errors.Errorf("publisher %s is shut down", p.Addr())
	}
	seq, ok := p.topics[topic]
	if !ok {
		return nil
	}
	p.topics[topic] = seq + 1

	msg := make([]byte, 0, len(topic)+4+len(body))
	msg = append(msg, topic...)
	msg = binary.LittleEndian.AppendUint32(msg, seq)
	msg = append(msg, body...)

	for sub := range p.subscribers {
		if sub.topic != topic {
			continue
		}
		select {
		case sub.send <- msg:
		default:
			log.Warnf("Dropping slow %s subscriber %s", topic,
				sub.conn.RemoteAddr())
			delete(p.subscribers, sub)
			close(sub.send)
			sub.close()
		}
	}
	return nil
}

// reversedHash returns the hash bytes in the order they are displayed.
func reversedHash(hash *chainhash.Hash) []byte {
	b := make([]byte, chainhash.HashSize)
	for i := 0; i < chainhash.HashSize; i++ {
		b[chainhash.HashSize-1-i] = hash[i]
	}
	return b
}

// NotifyBlock publishes the hash of a new tip on the hashblock topic.
func (p *wsPublisher) NotifyBlock(event *BlockEvent) error {
	return p.publish(TopicHashBlock, reversedHash(&event.Hash))
}

// NotifyTransaction publishes a transaction on the hashtx and rawtx topics.
func (p *wsPublisher) NotifyTransaction(event *TxEvent) error {
	if err := p.publish(TopicHashTx, reversedHash(&event.Hash)); err != nil {
		return err
	}
	return p.publish(TopicRawTx, event.Raw)
}

// numSubscribers returns the number of connected subscribers.
func (p *wsPublisher) numSubscribers() int {
	p.mtx.Lock()
	defer p.mtx.Unlock()
	return len(p.subscribers)
}

// Shutdown disconnects every subscriber and stops listening.
func (p *wsPublisher) Shutdown() {
	p.mtx.Lock()
	if p.stopped {
		p.mtx.Unlock()
		return
	}
	p.stopped = true
	for sub := range p.subscribers {
		delete(p.subscribers, sub)
		close(sub.send)
	}
	p.mtx.Unlock()

	if p.server != nil {
		p.server.Close()
	}
	p.wg.Wait()
}
