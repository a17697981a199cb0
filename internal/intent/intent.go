package intent

// Name identifies one of the fixed intents the bot understands.
type Name string

const (
	Help        Name = "help"
	Hygiene     Name = "hygiene"
	Vaccines    Name = "vaccines"
	Symptoms    Name = "symptoms"
	Subscribe   Name = "subscribe"
	Unsubscribe Name = "unsubscribe"
	SetLocation Name = "set_location"
	AddChild    Name = "add_child"
	Unknown     Name = "unknown"
)

// Intent is the structured result of parsing a user message. Only the
// fields relevant to Name are populated; the rest are empty strings.
type Intent struct {
	Name      Name
	Disease   string // symptoms
	Area      string // set_location
	ChildName string // add_child
	DOB       string // add_child, YYYY-MM-DD
}

// Valid reports whether n is one of the fixed intent names.
func (n Name) Valid() bool {
	switch n {
	case Help, Hygiene, Vaccines, Symptoms, Subscribe, Unsubscribe, SetLocation, AddChild, Unknown:
		return true
	}
	return false
}
