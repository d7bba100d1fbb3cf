package classify

import (
	"strings"

	"github.com/bwmarrin/discordgo"
)

// Outcome is the result category of evaluating one onboarding message.
type Outcome int

const (
	// OutcomeIgnored means no action: the member is already classified, or
	// the message carried no classification token and no escalation keyword.
	OutcomeIgnored Outcome = iota

	// OutcomePromoted means the member gets the resolved class role and the
	// supplied nickname in one member edit.
	OutcomePromoted

	// OutcomeRejectedShortName means a class role resolved but the name part
	// had fewer than two words; tell the member directly.
	OutcomeRejectedShortName

	// OutcomeRejectedNoRole means a token was present but no guild role
	// matched it; tell the member directly.
	OutcomeRejectedNoRole

	// OutcomeEscalatedStaff means the message mentioned staff; summon an
	// admin with the staff greeting.
	OutcomeEscalatedStaff

	// OutcomeEscalatedHelp means the member typed !help; summon an admin.
	OutcomeEscalatedHelp
)

// Decision is the evaluated plan for one onboarding message. Nickname and
// RoleIDs are only meaningful when Outcome is OutcomePromoted; RoleIDs is the
// complete role set to persist (provisional role removed, class role added).
type Decision struct {
	Outcome  Outcome
	Nickname string
	RoleIDs  []string
}

// Decide evaluates an onboarding message against the member's current roles
// and the live guild role set. It performs no I/O; the caller owns every
// side effect the returned Decision calls for.
//
// memberRoleIDs and guildRoles must both be fresh reads for this event, so
// the provisional-role check reflects live membership.
func Decide(content string, memberRoleIDs []string, guildRoles []*discordgo.Role, provisionalName string) Decision {
	// A member without the provisional role has already been classified;
	// every further message from them is a no-op.
	working, hadProvisional := removeProvisional(memberRoleIDs, guildRoles, provisionalName)
	if !hadProvisional {
		return Decision{Outcome: OutcomeIgnored}
	}

	parts := Partition(content, ClassPattern)

	// The free-text name sits on whichever side of the token is non-empty,
	// defaulting to the suffix when the token leads the message. A token-like
	// substring inside the name itself shifts the payload here.
	payload := parts.After
	if parts.Before != "" {
		payload = parts.Before
	}

	role, found := ResolveRole(parts.Token, guildRoles)
	if !found {
		lower := strings.ToLower(content)
		switch {
		case strings.Contains(lower, "staff"):
			return Decision{Outcome: OutcomeEscalatedStaff}
		case strings.Contains(lower, "!help"):
			return Decision{Outcome: OutcomeEscalatedHelp}
		case parts.Token == "":
			// Ordinary chat in the welcome channel, not a classification
			// attempt.
			return Decision{Outcome: OutcomeIgnored}
		default:
			return Decision{Outcome: OutcomeRejectedNoRole}
		}
	}

	if len(strings.Fields(payload)) < 2 {
		return Decision{Outcome: OutcomeRejectedShortName}
	}

	return Decision{
		Outcome:  OutcomePromoted,
		Nickname: strings.TrimLeft(payload, " "),
		RoleIDs:  append(working, role.ID),
	}
}

// removeProvisional returns memberRoleIDs without the provisional role and
// whether the member carried it. The provisional role is matched by exact
// name against the guild role set.
func removeProvisional(memberRoleIDs []string, guildRoles []*discordgo.Role, provisionalName string) ([]string, bool) {
	var provisionalID string
	for _, role := range guildRoles {
		if role.Name == provisionalName {
			provisionalID = role.ID
			break
		}
	}
	if provisionalID == "" {
		return nil, false
	}

	working := make([]string, 0, len(memberRoleIDs))
	had := false
	for _, id := range memberRoleIDs {
		if id == provisionalID {
			had = true
			continue
		}
		working = append(working, id)
	}
	return working, had
}
