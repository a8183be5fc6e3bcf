package nodes

// InputType enumerates the typed inputs the graph host understands.
type InputType string

const (
	TypeString  InputType = "STRING"
	TypeInt     InputType = "INT"
	TypeBoolean InputType = "BOOLEAN"
	TypeEnum    InputType = "ENUM"
)

// InputSpec describes one labeled node input. The schema is the fixed
// protocol between a node and the graph host.
type InputSpec struct {
	Name      string
	Type      InputType
	Options   []string // enum choices, control tokens first
	Default   any
	Multiline bool
	Tooltip   string
	Hidden    bool
}

// Output is the fixed-order node result tuple.
type Output struct {
	PositivePrompt string
	Seed           uint32
	NegativePrompt string
	MetadataJSON   string
}

func enumInput(name string, options []string, def, tooltip string) InputSpec {
	return InputSpec{Name: name, Type: TypeEnum, Options: options, Default: def, Tooltip: tooltip}
}

func stringInput(name string, multiline bool, tooltip string) InputSpec {
	return InputSpec{Name: name, Type: TypeString, Default: "", Multiline: multiline, Tooltip: tooltip}
}

func boolInput(name string, def bool, tooltip string) InputSpec {
	return InputSpec{Name: name, Type: TypeBoolean, Default: def, Tooltip: tooltip}
}

func intInput(name string, def int, tooltip string) InputSpec {
	return InputSpec{Name: name, Type: TypeInt, Default: def, Tooltip: tooltip}
}
