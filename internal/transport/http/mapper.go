package http

import (
	"encoding/json"
	"fmt"

	"github.com/campushub/campuschat-server/internal/core"
	"github.com/campushub/campuschat-server/internal/proto"
)

// inboundToCommand maps a wire frame to a hub command. Unknown frame
// types map to nil: a misbehaving client is ignored, never answered.
func inboundToCommand(client *core.Client, inbound proto.Inbound) (*core.Command, error) {
	switch inbound.Type {
	case proto.InboundTypeJoin:
		var join proto.JoinData
		if err := json.Unmarshal(inbound.Data, &join); err != nil {
			return nil, fmt.Errorf("decode join: %w", err)
		}
		return &core.Command{
			Kind:   core.CommandJoin,
			Client: client,
			Name:   join.Name,
		}, nil
	case proto.InboundTypeJoinRoom:
		var room string
		if err := json.Unmarshal(inbound.Data, &room); err != nil {
			return nil, fmt.Errorf("decode joinRoom: %w", err)
		}
		return &core.Command{
			Kind:   core.CommandSwitchRoom,
			Client: client,
			Room:   room,
		}, nil
	case proto.InboundTypeMessage:
		var text string
		if err := json.Unmarshal(inbound.Data, &text); err != nil {
			return nil, fmt.Errorf("decode message: %w", err)
		}
		return &core.Command{
			Kind:   core.CommandSendMessage,
			Client: client,
			Text:   text,
		}, nil
	case proto.InboundTypeTyping:
		var isTyping bool
		if err := json.Unmarshal(inbound.Data, &isTyping); err != nil {
			return nil, fmt.Errorf("decode typing: %w", err)
		}
		return &core.Command{
			Kind:     core.CommandTyping,
			Client:   client,
			IsTyping: isTyping,
		}, nil
	default:
		return nil, nil
	}
}

func outboundFromEvent(event *core.Event) proto.Outbound {
	switch event.Kind {
	case core.EventRoomList:
		return proto.Outbound{
			Type: proto.OutboundTypeRoomList,
			Data: event.Rooms,
		}
	case core.EventPresence:
		users := make([]proto.OnlineUser, 0, len(event.Users))
		for _, u := range event.Users {
			users = append(users, proto.OnlineUser{
				ID:   u.ID,
				Name: u.Name,
				Room: u.Room,
			})
		}
		return proto.Outbound{
			Type: proto.OutboundTypeOnlineUsers,
			Data: users,
		}
	case core.EventMessage:
		return proto.Outbound{
			Type: proto.OutboundTypeMessage,
			Data: proto.EventMessage{
				ID:     event.Message.ID,
				User:   event.Message.From,
				Text:   event.Message.Text,
				At:     event.Message.CreatedAt.UnixMilli(),
				System: event.Message.System,
			},
		}
	case core.EventTyping:
		return proto.Outbound{
			Type: proto.OutboundTypeTyping,
			Data: proto.EventTyping{
				Name:     event.Typing.Name,
				IsTyping: event.Typing.IsTyping,
			},
		}
	default:
		return proto.Outbound{Type: "unknown"}
	}
}
