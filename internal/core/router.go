package core

import "encoding/json"

// Dispatch validates one inbound frame and queues the matching mutation.
// Malformed frames and unknown types are logged and dropped; the sender
// gets no reply for either, and the coordinator never stops over bad
// input.
func (t *Table) Dispatch(s *Session, frame []byte) {
	var env Envelope
	if err := json.Unmarshal(frame, &env); err != nil {
		t.logger.Warn().Err(err).Msg("malformed frame dropped")
		return
	}

	switch env.Type {
	case MsgJoin:
		var p joinPayload
		if !t.decodePayload(env, &p) {
			return
		}
		t.do(func() { t.handleJoin(s, p) })
	case MsgAddDish:
		var p addDishPayload
		if !t.decodePayload(env, &p) {
			return
		}
		t.do(func() { t.handleAddDish(s, p) })
	case MsgRemoveDish:
		var p removeDishPayload
		if !t.decodePayload(env, &p) {
			return
		}
		t.do(func() { t.handleRemoveDish(s, p) })
	case MsgSendMessage:
		var p sendMessagePayload
		if !t.decodePayload(env, &p) {
			return
		}
		t.do(func() { t.handleSendMessage(s, p) })
	default:
		t.logger.Warn().Str("type", env.Type).Msg("unknown message type dropped")
	}
}

func (t *Table) decodePayload(env Envelope, into any) bool {
	if len(env.Payload) == 0 {
		t.logger.Warn().Str("type", env.Type).Msg("frame without payload dropped")
		return false
	}
	if err := json.Unmarshal(env.Payload, into); err != nil {
		t.logger.Warn().Err(err).Str("type", env.Type).Msg("malformed payload dropped")
		return false
	}
	return true
}
