package classify

import (
	"regexp"

	"github.com/bwmarrin/discordgo"
)

// ResolveRole finds the first role whose name contains a case-insensitive
// match for candidate. The scan order is the order of guildRoles, which is
// the server's configured role ordering; callers must pass a live snapshot.
//
// An empty candidate never resolves — otherwise it would match every role
// name. A candidate that does not compile as a pattern doesn't resolve
// either.
func ResolveRole(candidate string, guildRoles []*discordgo.Role) (*discordgo.Role, bool) {
	if candidate == "" {
		return nil, false
	}

	re, err := regexp.Compile("(?i)" + candidate)
	if err != nil {
		return nil, false
	}

	for _, role := range guildRoles {
		if re.MatchString(role.Name) {
			return role, true
		}
	}
	return nil, false
}
