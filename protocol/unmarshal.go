package protocol

// Field layouts, verb included:
//
//	BUY <tif> <price> <qty> <id>
//	SELL <tif> <price> <qty> <id>
//	CANCEL <id>
//	MODIFY <id> <side> <price> <qty>
//	PRINT
//	CLEAR

func unmarshalSubmitOrderMessage(fields []string) (msg SubmitOrderMessage, err error) {
	if len(fields) != 5 {
		return msg, ErrMalformedMessage
	}
	if msg.Side, err = parseOrderSide(fields[0]); err != nil {
		return msg, err
	}
	if msg.TimeInForce, err = parseTimeInForce(fields[1]); err != nil {
		return msg, err
	}
	if msg.Price, err = parsePrice(fields[2]); err != nil {
		return msg, err
	}
	if msg.Quantity, err = parseQuantity(fields[3]); err != nil {
		return msg, err
	}
	if msg.ID, err = parseOrderID(fields[4]); err != nil {
		return msg, err
	}
	return msg, nil
}

func unmarshalCancelOrderMessage(fields []string) (msg CancelOrderMessage, err error) {
	if len(fields) != 2 {
		return msg, ErrMalformedMessage
	}
	if msg.ID, err = parseOrderID(fields[1]); err != nil {
		return msg, err
	}
	return msg, nil
}

func unmarshalModifyOrderMessage(fields []string) (msg ModifyOrderMessage, err error) {
	if len(fields) != 5 {
		return msg, ErrMalformedMessage
	}
	if msg.ID, err = parseOrderID(fields[1]); err != nil {
		return msg, err
	}
	if msg.Side, err = parseOrderSide(fields[2]); err != nil {
		return msg, err
	}
	if msg.Price, err = parsePrice(fields[3]); err != nil {
		return msg, err
	}
	if msg.Quantity, err = parseQuantity(fields[4]); err != nil {
		return msg, err
	}
	return msg, nil
}

func unmarshalPrintMessage(fields []string) (msg PrintMessage, err error) {
	if len(fields) != 1 {
		return msg, ErrMalformedMessage
	}
	return msg, nil
}

func unmarshalClearMessage(fields []string) (msg ClearMessage, err error) {
	if len(fields) != 1 {
		return msg, ErrMalformedMessage
	}
	return msg, nil
}
