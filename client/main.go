package main

import (
	"bufio"
	"log"
	"net/url"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/gorilla/websocket"
)

// Minimal interactive client for poking at the server by hand. Type a
// raw wire message (three character tag plus payload) and press Enter,
// e.g. "SRQ" to request a game start or "DACfoo" to pick the word foo.
func main() {
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)

	username := "tester"
	if len(os.Args) > 1 {
		username = os.Args[1]
	}

	u := url.URL{Scheme: "ws", Host: "localhost:8080", Path: "/ws", RawQuery: "username=" + url.QueryEscape(username)}
	log.Printf("Connecting to %s", u.String())

	c, _, err := websocket.DefaultDialer.Dial(u.String(), nil)
	if err != nil {
		log.Fatalf("Dial failed: %v", err)
	}
	defer c.Close()

	done := make(chan struct{})

	// Read loop
	go func() {
		defer close(done)
		for {
			_, message, err := c.ReadMessage()
			if err != nil {
				log.Println("Read error:", err)
				return
			}
			msg := string(message)
			if len(msg) < 3 {
				log.Printf("Received invalid message %q", msg)
				continue
			}
			log.Printf("<- RECV %s %q", msg[:3], msg[3:])
		}
	}()

	log.Println("Client started. Type a raw command and press Enter.")

	reader := bufio.NewReader(os.Stdin)
	for {
		select {
		case <-done:
			return
		case <-interrupt:
			log.Println("Interrupt received, closing connection.")
			err := c.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			if err != nil {
				log.Println("Write close error:", err)
			}
			select {
			case <-done:
			case <-time.After(time.Second):
			}
			return
		default:
			text, _ := reader.ReadString('\n')
			text = strings.TrimRight(text, "\r\n")
			if text == "" {
				continue
			}
			if err := c.WriteMessage(websocket.TextMessage, []byte(text)); err != nil {
				log.Println("Write error:", err)
				return
			}
			log.Printf("-> SENT %q", text)
		}
	}
}
