// Command ws_chat is a small interactive client for manual testing.
// Lines typed on stdin are sent as messages; "/room <name>" switches
// rooms and "/quit" exits.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/campushub/campuschat-server/internal/proto"
)

func main() {
	if err := run(); err != nil {
		log.Printf("ws_chat: %v", err)
		os.Exit(1)
	}
}

func run() error {
	addr := flag.String("addr", "ws://localhost:5000/ws", "WebSocket address")
	name := flag.String("name", "cli-user", "display name")
	flag.Parse()

	baseCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(baseCtx)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, *addr, nil)
	if err != nil {
		return fmt.Errorf("dial: %w", err)
	}
	defer conn.Close(websocket.StatusNormalClosure, "bye")

	if err := send(ctx, conn, proto.InboundTypeJoin, proto.JoinData{Name: *name}); err != nil {
		return err
	}

	go func() {
		for {
			var frame proto.Outbound
			if err := wsjson.Read(ctx, conn, &frame); err != nil {
				if !errors.Is(err, context.Canceled) {
					log.Printf("read: %v", err)
				}
				cancel()
				return
			}
			printFrame(frame)
		}
	}()

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "":
			continue
		case line == "/quit":
			return nil
		case strings.HasPrefix(line, "/room "):
			room := strings.TrimSpace(strings.TrimPrefix(line, "/room "))
			if err := send(ctx, conn, proto.InboundTypeJoinRoom, room); err != nil {
				return err
			}
		default:
			if err := send(ctx, conn, proto.InboundTypeMessage, line); err != nil {
				return err
			}
		}
	}
	return scanner.Err()
}

func send(ctx context.Context, conn *websocket.Conn, frameType string, data any) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return wsjson.Write(ctx, conn, proto.Inbound{Type: frameType, Data: raw})
}

func printFrame(frame proto.Outbound) {
	data, _ := json.Marshal(frame.Data)
	fmt.Printf("[%s] %s\n", frame.Type, data)
}
