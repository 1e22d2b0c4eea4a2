package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"github.com/gorgonia/uct/game"
	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// move is sent to the websocket clients after every move.
type move struct {
	Epoch  int    `json:"epoch"`
	Game   int    `json:"game"`
	Player string `json:"player"`
	Move   int32  `json:"move"`
}

// info is sent when a game has ended. Winner is "None" for a draw.
type info struct {
	Epoch  int    `json:"epoch"`
	Game   int    `json:"game"`
	Winner string `json:"winner"`
}

// Encoder broadcasts the moves of the games being played to every connected
// websocket client, as JSON. It satisfies uct.OutputEncoder.
//
// Encode never blocks: a client that does not keep up misses messages.
type Encoder struct {
	sync.Mutex
	clients map[chan []byte]struct{}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// NewEncoder creates an encoder with no clients.
func NewEncoder() *Encoder {
	return &Encoder{clients: make(map[chan []byte]struct{})}
}

func (enc *Encoder) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// registered before the handshake completes, so that nothing sent after a
	// successful dial is lost
	ch := enc.register()
	defer enc.unregister(ch)

	c, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error().Err(err).Msg("upgrade")
		return
	}
	defer c.Close()
	for {
		select {
		case b := <-ch:
			if err := c.WriteMessage(websocket.TextMessage, b); err != nil {
				log.Debug().Err(err).Msg("write")
				return
			}
		case <-r.Context().Done():
			return
		}
	}
}

// Encode a game
func (enc *Encoder) Encode(ms game.MetaState) error {
	g := ms.State()
	history := g.History()
	if len(history) == 0 {
		return nil
	}
	last := history[len(history)-1]
	if err := enc.send(move{
		Epoch:  ms.Epoch(),
		Game:   ms.GameNumber(),
		Player: fmt.Sprintf("%v", last.Player),
		Move:   int32(last.Single),
	}); err != nil {
		return err
	}
	if ended, winner := g.Ended(); ended {
		return enc.send(info{
			Epoch:  ms.Epoch(),
			Game:   ms.GameNumber(),
			Winner: fmt.Sprintf("%v", winner),
		})
	}
	return nil
}

// Flush does nothing. Every message is sent as soon as it is encoded.
func (enc *Encoder) Flush() error { return nil }

// Clients returns the number of connected clients.
func (enc *Encoder) Clients() int {
	enc.Lock()
	defer enc.Unlock()
	return len(enc.clients)
}

func (enc *Encoder) send(msg interface{}) error {
	b, err := json.Marshal(msg)
	if err != nil {
		return errors.WithStack(err)
	}
	enc.Lock()
	defer enc.Unlock()
	for ch := range enc.clients {
		select {
		case ch <- b:
		default:
		}
	}
	return nil
}

func (enc *Encoder) register() chan []byte {
	ch := make(chan []byte, 64)
	enc.Lock()
	enc.clients[ch] = struct{}{}
	enc.Unlock()
	return ch
}

func (enc *Encoder) unregister(ch chan []byte) {
	enc.Lock()
	delete(enc.clients, ch)
	enc.Unlock()
}
