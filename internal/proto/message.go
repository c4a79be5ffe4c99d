package proto

import "encoding/json"

// Inbound is the envelope for frames coming from the client. Data for
// joinRoom, message and typing is a bare JSON scalar (string, string,
// bool); join carries an object.
type Inbound struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

const (
	InboundTypeJoin     = "join"
	InboundTypeJoinRoom = "joinRoom"
	InboundTypeMessage  = "message"
	InboundTypeTyping   = "typing"

	OutboundTypeRoomList    = "roomList"
	OutboundTypeOnlineUsers = "onlineUsers"
	OutboundTypeMessage     = "message"
	OutboundTypeTyping      = "typing"
)

// JoinData is sent by the client to claim a display name.
type JoinData struct {
	Name string `json:"name"`
}

// Outbound is the envelope for frames sent to the client.
type Outbound struct {
	Type string `json:"type"`
	Data any    `json:"data,omitempty"`
}

// OnlineUser is one entry of the presence snapshot pushed to all clients.
type OnlineUser struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Room string `json:"room"`
}

// EventMessage is a chat or system message delivered to room members.
type EventMessage struct {
	ID     int64  `json:"id"`
	User   string `json:"user"`
	Text   string `json:"text"`
	At     int64  `json:"at"`
	System bool   `json:"system,omitempty"`
}

// EventTyping is a transient typing indicator delivered to room members.
type EventTyping struct {
	Name     string `json:"name"`
	IsTyping bool   `json:"isTyping"`
}
