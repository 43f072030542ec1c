package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"time"

	"github.com/gorilla/websocket"

	"github.com/kingrain94/pitchcraft-api/internal/domain"
)

// Prints pitch fragments as they stream for the token's owner.
func main() {
	host := flag.String("host", "localhost:10000", "API host")
	queryToken := flag.Bool("query-token", false, "Send the token as access_token instead of a header")
	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatal("Usage: go run ./cmd/app [-host localhost:10000] [-query-token] <JWT_TOKEN>")
	}
	token := flag.Arg(0)

	u := url.URL{Scheme: "ws", Host: *host, Path: "/api/v1/pitches/stream"}
	header := http.Header{}
	if *queryToken {
		u.RawQuery = url.Values{"access_token": {token}}.Encode()
	} else {
		header.Set("Authorization", "Bearer "+token)
	}

	fmt.Printf("Connecting to %s...\n", u.Redacted())
	conn, _, err := websocket.DefaultDialer.Dial(u.String(), header)
	if err != nil {
		log.Fatal("Failed to connect:", err)
	}
	defer conn.Close()

	fmt.Println("Connected! Waiting for pitches...")
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			var chunk domain.PitchChunk
			if err := conn.ReadJSON(&chunk); err != nil {
				log.Println("Read error:", err)
				return
			}
			switch {
			case chunk.Failed:
				fmt.Printf("\n[%s] generation failed\n", chunk.RequestID)
			case chunk.Done:
				fmt.Printf("\n[%s] done\n", chunk.RequestID)
			default:
				fmt.Print(chunk.Text)
			}
		}
	}()

	select {
	case <-done:
		return
	case <-interrupt:
		fmt.Println("\nDisconnecting...")

		err := conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
		if err != nil {
			log.Println("Write close:", err)
			return
		}

		select {
		case <-done:
		case <-time.After(time.Second):
		}
	}
}
