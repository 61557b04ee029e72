package redis

import (
	"fmt"

	"github.com/mcoot/wordcoach/internal/model"
)

const keyPrefix = "wordcoach"

func playerKey(id model.PlayerID) string {
	return fmt.Sprintf("%s:player:%s", keyPrefix, id)
}

func registeredPlayerKey(playerID model.PlayerID) string {
	return fmt.Sprintf("%s:registered_player:%s", keyPrefix, playerID)
}

// usernameIndexKey maps a username to its player id
func usernameIndexKey(username string) string {
	return fmt.Sprintf("%s:idx:username:%s", keyPrefix, username)
}

func sessionKey(id model.SessionID) string {
	return fmt.Sprintf("%s:session:%s", keyPrefix, id)
}

// sessionsForPlayerIndexKey is a SET of session keys owned by the player
func sessionsForPlayerIndexKey(playerID model.PlayerID) string {
	return fmt.Sprintf("%s:idx:sessions_for_player:%s", keyPrefix, playerID)
}

func dictionaryKey() string {
	return fmt.Sprintf("%s:dictionary", keyPrefix)
}
