package models

// PayloadKind discriminates the two content shapes the model accepts.
type PayloadKind int

const (
	PayloadText PayloadKind = iota
	PayloadBinary
)

// FilePart is one binary blob with its declared MIME type.
type FilePart struct {
	Data     []byte
	MIMEType string
}

// Payload is the normalized content handed to the model: either plain
// text or a set of binary parts. Exactly one side is populated, selected
// by Kind.
type Payload struct {
	Kind  PayloadKind
	Text  string
	Parts []FilePart
}

// TextPayload wraps plain text.
func TextPayload(text string) Payload {
	return Payload{Kind: PayloadText, Text: text}
}

// BinaryPayload wraps one or more binary parts.
func BinaryPayload(parts []FilePart) Payload {
	return Payload{Kind: PayloadBinary, Parts: parts}
}
