package session

import (
	"context"
	"io"

	tomb "gopkg.in/tomb.v2"

	"github.com/quantonic/matchbook/protocol"
)

// runPipelined separates decoding from matching: the producer decodes
// lines into tasks, the consumer applies them to the engine in queue
// order. End of input closes the queue; the consumer drains what is
// left and flushes. A kill, from a context cancel or a consumer
// failure, stops the producer at its next enqueue.
func (s *Session) runPipelined(ctx context.Context, input io.Reader) error {
	t, _ := tomb.WithContext(ctx)
	tasks := make(chan func() error, s.config.QueueSize)

	t.Go(func() error {
		defer close(tasks)
		dispatch := &pipelineDispatch{session: s, tomb: t, tasks: tasks}
		return protocol.NewProcessor(dispatch).Process(input)
	})

	t.Go(func() error {
		for task := range tasks {
			if err := task(); err != nil {
				return err
			}
		}
		return s.writer.Flush()
	})

	return t.Wait()
}

// pipelineDispatch is the producer side protocol.Handler: every decoded
// message becomes a task on the queue. Malformed lines never cross the
// queue, they are logged in place.
type pipelineDispatch struct {
	session *Session
	tomb    *tomb.Tomb
	tasks   chan func() error
}

func (d *pipelineDispatch) OnSubmitOrderMessage(msg protocol.SubmitOrderMessage) error {
	return d.send(func() error { return d.session.OnSubmitOrderMessage(msg) })
}

func (d *pipelineDispatch) OnCancelOrderMessage(msg protocol.CancelOrderMessage) error {
	return d.send(func() error { return d.session.OnCancelOrderMessage(msg) })
}

func (d *pipelineDispatch) OnModifyOrderMessage(msg protocol.ModifyOrderMessage) error {
	return d.send(func() error { return d.session.OnModifyOrderMessage(msg) })
}

func (d *pipelineDispatch) OnPrintMessage(msg protocol.PrintMessage) error {
	return d.send(func() error { return d.session.OnPrintMessage(msg) })
}

func (d *pipelineDispatch) OnClearMessage(msg protocol.ClearMessage) error {
	return d.send(func() error { return d.session.OnClearMessage(msg) })
}

func (d *pipelineDispatch) OnUnknownMessage(msg protocol.UnknownMessage) error {
	return d.session.OnUnknownMessage(msg)
}

func (d *pipelineDispatch) send(task func() error) error {
	select {
	case d.tasks <- task:
		return nil
	case <-d.tomb.Dying():
		return tomb.ErrDying
	}
}
