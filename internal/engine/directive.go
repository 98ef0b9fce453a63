package engine

// Mode tells the transport how to deliver a reply
type Mode int

const (
	// ModeSend posts a new message
	ModeSend Mode = iota
	// ModeEdit replaces the message the user interacted with
	ModeEdit
)

// Choice is one inline button
type Choice struct {
	Label  string
	Action string
}

// MenuButton is one reply keyboard button
type MenuButton struct {
	Label          string
	RequestContact bool
}

// ReplyMenu is a persistent reply keyboard
type ReplyMenu struct {
	Rows [][]MenuButton
}

// Directive is the observable reply to an Event
type Directive struct {
	Mode Mode
	Text string
	// Photo is a media path or URL; Text becomes its caption
	Photo   string
	Choices [][]Choice
	Menu    *ReplyMenu
	// Notice is shown as a popup acknowledgement of a button press
	Notice      string
	NoticeAlert bool
}
