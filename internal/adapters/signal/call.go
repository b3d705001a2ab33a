package signal

import (
	"encoding/json"

	"github.com/rs/zerolog/log"

	"huddle/internal/domain"
	"huddle/internal/protocol"
)

// Call payloads are opaque to the relay: frames are decoded only far
// enough to read the addressing fields, and the blob passes through
// byte for byte.

func (ctl *Controller) handleInvite(id domain.ConnID, conn *wsConn, data []byte) {
	var p protocol.Invite
	if err := json.Unmarshal(data, &p); err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad invite payload")
		ctl.sendError(conn, "bad_payload")
		return
	}
	from := p.FromID
	if from == "" {
		from = id
	}

	log.Info().Str("module", "signal").Str("from", string(from)).Str("target", string(p.TargetID)).Msg("invite")
	ctl.Coord.Invite(from, p.TargetID, p.Payload)
}

func (ctl *Controller) handleAccept(id domain.ConnID, conn *wsConn, data []byte) {
	var p protocol.Accept
	if err := json.Unmarshal(data, &p); err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad accept payload")
		ctl.sendError(conn, "bad_payload")
		return
	}

	log.Info().Str("module", "signal").Str("from", string(id)).Str("target", string(p.TargetID)).Msg("accept")
	ctl.Coord.Accept(p.TargetID, p.Payload)
}
