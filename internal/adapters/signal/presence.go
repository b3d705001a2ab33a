package signal

import (
	"encoding/json"

	"github.com/rs/zerolog/log"

	"huddle/internal/domain"
	"huddle/internal/protocol"
)

func (ctl *Controller) handleIdentify(id domain.ConnID, conn *wsConn, data []byte) {
	var p protocol.Identify
	if err := json.Unmarshal(data, &p); err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad identify payload")
		ctl.sendError(conn, "bad_payload")
		return
	}
	if err := domain.ValidateName(p.Name); err != nil {
		ctl.sendError(conn, err.Error())
		return
	}

	log.Info().Str("module", "signal").Str("conn", string(id)).Str("name", p.Name).Msg("identify")
	ctl.Coord.Identify(id, p.Name)
}

// handleGoOffline flips presence only; the connection stays open so the
// client can come back online by identifying again.
func (ctl *Controller) handleGoOffline(id domain.ConnID, conn *wsConn, data []byte) {
	var p protocol.GoOffline
	if err := json.Unmarshal(data, &p); err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad goOffline payload")
		ctl.sendError(conn, "bad_payload")
		return
	}
	if p.Name == "" {
		log.Warn().Str("module", "signal").Str("conn", string(id)).Msg("goOffline without name")
		return
	}

	log.Info().Str("module", "signal").Str("conn", string(id)).Str("name", p.Name).Msg("go offline")
	ctl.Coord.GoOffline(p.Name)
}
