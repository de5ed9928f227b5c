package main

import (
	"context"
	"sync"
	"time"

	client "github.com/hugolgst/rich-go/client"
)

const discordAppID = "1406171210240360508"

var (
	presenceMu sync.Mutex
	presenceOK bool
	sessionAt  = time.Now()
)

func initDiscordRPC(ctx context.Context) {
	if err := client.Login(discordAppID); err != nil {
		logDebug("discord rpc login: %v", err)
		return
	}
	presenceMu.Lock()
	presenceOK = true
	presenceMu.Unlock()
	go func() {
		<-ctx.Done()
		client.Logout()
	}()
}

// setPresence publishes the current system (and horde wave, when
// active) as the Discord activity. No-op when presence is unavailable.
func setPresence(system string) {
	presenceMu.Lock()
	ok := presenceOK
	presenceMu.Unlock()
	if !ok {
		return
	}
	details := "Exploring"
	if gameWorld != nil && gameWorld.horde.active {
		details = "Horde mode"
	}
	if err := client.SetActivity(client.Activity{
		State:   system,
		Details: details,
		Timestamps: &client.Timestamps{
			Start: &sessionAt,
		},
	}); err != nil {
		logDebug("discord rpc activity: %v", err)
	}
}
