package handlers

import (
	"net/http"

	"invoice-generator/internal/auth"
	"invoice-generator/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Sessions holds every live editing session. One browser = one session
// = one invoice; nothing survives a restart, and that is intentional.
var Sessions = session.NewManager()

// --- POST: Start a new editing session ---
// The frontend calls this once on load and keeps the token for all
// later /api calls.
func StartSession(c *gin.Context) {
	id := Sessions.Create()

	token, err := auth.GenerateToken(id)
	if err != nil {
		log.Error().Err(err).Msg("failed to sign session token")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not start session"})
		return
	}

	log.Info().Str("session", id).Int("live_sessions", Sessions.Len()).Msg("session started")

	c.JSON(http.StatusCreated, gin.H{
		"token": token,
	})
}
