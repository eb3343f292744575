package protocol

import (
	"bufio"
	"io"
	"strings"
)

const (
	// Scanner buffer bounds for reading command lines.
	initialScanBuffer = 64 * 1024
	maxScanBuffer     = 1024 * 1024
)

// Processor decodes a line-oriented command stream and feeds the typed
// messages to a Handler. Lines that do not decode are reported through
// Handler.OnUnknownMessage and the stream continues; blank lines are
// skipped outright.
type Processor struct {
	handler        Handler
	unmarshalFuncs map[string]func(line string, fields []string) error
}

// NewProcessor creates and returns new Processor instance.
func NewProcessor(handler Handler) *Processor {
	processor := &Processor{
		handler:        handler,
		unmarshalFuncs: make(map[string]func(line string, fields []string) error),
	}
	processor.initialize()
	return processor
}

// Process decodes the stream until exhaustion. Returns the first error
// reported by the handler or by the reader; io.EOF is not an error.
func (p *Processor) Process(reader io.Reader) error {
	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, initialScanBuffer), maxScanBuffer)
	for scanner.Scan() {
		if err := p.ProcessLine(scanner.Text()); err != nil {
			return err
		}
	}
	return scanner.Err()
}

// ProcessLine decodes a single command line.
func (p *Processor) ProcessLine(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	unmarshal, ok := p.unmarshalFuncs[fields[0]]
	if !ok {
		return p.handler.OnUnknownMessage(UnknownMessage{Line: line})
	}
	return unmarshal(line, fields)
}

func (p *Processor) initialize() {
	submitOrder := func(line string, fields []string) error {
		msg, err := unmarshalSubmitOrderMessage(fields)
		if err != nil {
			return p.handler.OnUnknownMessage(UnknownMessage{Line: line})
		}
		return p.handler.OnSubmitOrderMessage(msg)
	}
	p.unmarshalFuncs["BUY"] = submitOrder
	p.unmarshalFuncs["SELL"] = submitOrder

	p.unmarshalFuncs["CANCEL"] = func(line string, fields []string) error {
		msg, err := unmarshalCancelOrderMessage(fields)
		if err != nil {
			return p.handler.OnUnknownMessage(UnknownMessage{Line: line})
		}
		return p.handler.OnCancelOrderMessage(msg)
	}
	p.unmarshalFuncs["MODIFY"] = func(line string, fields []string) error {
		msg, err := unmarshalModifyOrderMessage(fields)
		if err != nil {
			return p.handler.OnUnknownMessage(UnknownMessage{Line: line})
		}
		return p.handler.OnModifyOrderMessage(msg)
	}
	p.unmarshalFuncs["PRINT"] = func(line string, fields []string) error {
		msg, err := unmarshalPrintMessage(fields)
		if err != nil {
			return p.handler.OnUnknownMessage(UnknownMessage{Line: line})
		}
		return p.handler.OnPrintMessage(msg)
	}
	p.unmarshalFuncs["CLEAR"] = func(line string, fields []string) error {
		msg, err := unmarshalClearMessage(fields)
		if err != nil {
			return p.handler.OnUnknownMessage(UnknownMessage{Line: line})
		}
		return p.handler.OnClearMessage(msg)
	}
}
