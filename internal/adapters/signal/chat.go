package signal

import (
	"encoding/json"

	"github.com/rs/zerolog/log"

	"huddle/internal/domain"
	"huddle/internal/protocol"
)

func (ctl *Controller) handleChatSend(id domain.ConnID, conn *wsConn, data []byte) {
	var p protocol.ChatSend
	if err := json.Unmarshal(data, &p); err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad chatSend payload")
		ctl.sendError(conn, "bad_payload")
		return
	}

	// Text is not validated; empty and oversized messages are accepted.
	log.Debug().Str("module", "signal").Str("conn", string(id)).Str("author", p.Author).Msg("chat")
	ctl.Coord.Chat(p.Author, p.Text)
}
