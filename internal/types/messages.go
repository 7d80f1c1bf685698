package types

// NameSubmittedMsg is sent when the user confirms a name in the prompt
type NameSubmittedMsg struct {
	Name string
}
