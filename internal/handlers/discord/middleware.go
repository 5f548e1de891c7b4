package discord

import (
	"fmt"
	"log"
	"runtime/debug"

	"github.com/bwmarrin/discordgo"
)

// InteractionFunc handles one interaction
type InteractionFunc func(s Session, i *discordgo.InteractionCreate)

// RecoverMiddleware wraps an interaction handler so a panic is logged and
// answered instead of killing the gateway goroutine
func RecoverMiddleware(handlerName string, handler InteractionFunc) InteractionFunc {
	return func(s Session, i *discordgo.InteractionCreate) {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("PANIC in %s handler: %v\nStack trace:\n%s", handlerName, r, debug.Stack())

				if err := respond(s, i, fmt.Sprintf("❌ An unexpected error occurred: %v", r)); err != nil {
					log.Printf("Failed to send error response to user: %v", err)
				}
			}
		}()

		handler(s, i)
	}
}

// ForSession adapts an InteractionFunc to the signature discordgo.AddHandler expects
func ForSession(handler InteractionFunc) func(*discordgo.Session, *discordgo.InteractionCreate) {
	return func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		handler(s, i)
	}
}
