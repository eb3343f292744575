package protocol

// Handler consumes the decoded command stream. A returned error aborts
// processing; OnUnknownMessage returning nil skips the bad line and
// keeps the stream going.
type Handler interface {
	OnSubmitOrderMessage(msg SubmitOrderMessage) error
	OnCancelOrderMessage(msg CancelOrderMessage) error
	OnModifyOrderMessage(msg ModifyOrderMessage) error
	OnPrintMessage(msg PrintMessage) error
	OnClearMessage(msg ClearMessage) error
	OnUnknownMessage(msg UnknownMessage) error
}
