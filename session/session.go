package session

import (
	"context"
	"io"

	"github.com/rs/zerolog/log"

	"github.com/quantonic/matchbook/matching"
	"github.com/quantonic/matchbook/protocol"
)

const defaultQueueSize = 256

// Config controls how a session drives the engine.
type Config struct {
	// Pipelined decodes on one goroutine and matches on another,
	// linked by a bounded task queue. Inline runs both on the caller.
	Pipelined bool

	// QueueSize bounds the pipelined task queue. Zero selects the
	// default.
	QueueSize int
}

// Session drives a matching engine from a line-oriented command stream
// and writes trades and snapshots to an output sink.
//
// The engine and the sink are touched by exactly one goroutine: the
// caller's in inline mode, the dedicated matcher goroutine in
// pipelined mode. Results appear in command order in both modes.
type Session struct {
	engine *matching.Engine
	writer *protocol.Writer
	config Config
}

// New creates and returns new Session instance writing results to output.
func New(engine *matching.Engine, output io.Writer, config Config) *Session {
	if config.QueueSize <= 0 {
		config.QueueSize = defaultQueueSize
	}
	return &Session{
		engine: engine,
		writer: protocol.NewWriter(output),
		config: config,
	}
}

// Run consumes the command stream until exhaustion. Malformed lines
// are skipped; an output sink failure aborts the run. In pipelined
// mode cancelling the context stops decoding and drains the commands
// already queued.
func (s *Session) Run(ctx context.Context, input io.Reader) error {
	if s.config.Pipelined {
		return s.runPipelined(ctx, input)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := protocol.NewProcessor(s).Process(input); err != nil {
		return err
	}
	return s.writer.Flush()
}

////////////////////////////////////////////////////////////////
// protocol.Handler
////////////////////////////////////////////////////////////////

// OnSubmitOrderMessage matches the order and emits its fills.
func (s *Session) OnSubmitOrderMessage(msg protocol.SubmitOrderMessage) error {
	log.Debug().Stringer("cmd", msg).Msg("apply")
	trades := s.engine.AddOrder(msg.Side, msg.TimeInForce, msg.ID, msg.Quantity, msg.Price)
	return s.writeTrades(trades)
}

// OnCancelOrderMessage removes the order. Unknown ids are tolerated.
func (s *Session) OnCancelOrderMessage(msg protocol.CancelOrderMessage) error {
	log.Debug().Stringer("cmd", msg).Msg("apply")
	s.engine.CancelOrder(msg.ID)
	return nil
}

// OnModifyOrderMessage rewrites the order terms and emits any fills.
func (s *Session) OnModifyOrderMessage(msg protocol.ModifyOrderMessage) error {
	log.Debug().Stringer("cmd", msg).Msg("apply")
	trades := s.engine.ModifyOrder(msg.ID, msg.Side, msg.Quantity, msg.Price)
	return s.writeTrades(trades)
}

// OnPrintMessage emits the book snapshot.
func (s *Session) OnPrintMessage(msg protocol.PrintMessage) error {
	log.Debug().Stringer("cmd", msg).Msg("apply")
	if err := s.writer.WriteSnapshot(s.engine.Snapshot()); err != nil {
		return err
	}
	return s.writer.Flush()
}

// OnClearMessage drops all resting orders.
func (s *Session) OnClearMessage(msg protocol.ClearMessage) error {
	log.Debug().Stringer("cmd", msg).Msg("apply")
	s.engine.Clear()
	return nil
}

// OnUnknownMessage skips the line.
func (s *Session) OnUnknownMessage(msg protocol.UnknownMessage) error {
	log.Debug().Str("line", msg.Line).Msg("skipping malformed command")
	return nil
}

func (s *Session) writeTrades(trades []matching.Trade) error {
	if len(trades) == 0 {
		return nil
	}
	if err := s.writer.WriteTrades(trades); err != nil {
		return err
	}
	return s.writer.Flush()
}
