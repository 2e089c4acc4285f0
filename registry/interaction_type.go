package registry

// InteractionType is the kind of application command: a slash command or
// one of the two context menu commands.
type InteractionType uint8

const (
	// ChatInput is a text command shown when a user types "/".
	ChatInput InteractionType = 1
	// User is a context menu command on a user.
	User InteractionType = 2
	// Message is a context menu command on a message.
	Message InteractionType = 3
)

var interactionTypes = table[InteractionType]{
	{ChatInput, "chat_input"},
	{User, "user"},
	{Message, "message"},
}

// Code returns the wire code of t.
func (t InteractionType) Code() uint8 { return uint8(t) }

// Valid reports whether t is a declared variant.
func (t InteractionType) Valid() bool {
	_, ok := interactionTypes.name(t)
	return ok
}

func (t InteractionType) String() string { return interactionTypes.str("InteractionType", t) }

// IsContextMenu reports whether t is User or Message.
func (t InteractionType) IsContextMenu() bool { return t == User || t == Message }

// InteractionTypeFromCode is the reverse of Code.
func InteractionTypeFromCode(code uint8) (InteractionType, bool) {
	return interactionTypes.fromCode(code)
}

// ParseInteractionType looks up a command type by name: "chat_input", "user" or "message".
func ParseInteractionType(name string) (InteractionType, error) {
	return interactionTypes.parse("command type", name)
}

// AllInteractionTypes returns every command type in code order.
func AllInteractionTypes() []InteractionType { return interactionTypes.all() }
