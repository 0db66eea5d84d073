package domain

// Tag is a name/value pair attached to network messages.
type Tag struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Message is a single reply returned by a process evaluation.
type Message struct {
	Data string `json:"Data"`
	Tags []Tag  `json:"Tags"`
}

// TagValue returns the value of the first tag called name.
func (m Message) TagValue(name string) (string, bool) {
	for _, t := range m.Tags {
		if t.Name == name {
			return t.Value, true
		}
	}
	return "", false
}

// Token identifies a token process and how its raw balance is scaled.
type Token struct {
	Name         string `yaml:"name"`
	Process      string `yaml:"process"`
	Denomination int    `yaml:"denomination"`
}

// Balance is the raw integer balance reported by a token process.
type Balance struct {
	Token   Token
	Account string
	Raw     string
}
