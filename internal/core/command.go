package core

// CommandKind describes what the client wants to do.
type CommandKind int

const (
	// CommandRegister announces a freshly opened connection.
	CommandRegister CommandKind = iota
	// CommandJoin claims a display name for the connection.
	CommandJoin
	// CommandSwitchRoom moves the connection to another room.
	CommandSwitchRoom
	// CommandSendMessage broadcasts a chat message to the current room.
	CommandSendMessage
	// CommandTyping signals a typing-indicator change to the current room.
	CommandTyping
	// CommandDisconnect announces that the connection has closed.
	CommandDisconnect
)

// Command represents an action requested by or on behalf of a client.
type Command struct {
	Kind     CommandKind
	Client   *Client
	Name     string
	Room     string
	Text     string
	IsTyping bool
}
