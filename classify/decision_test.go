package classify

import (
	"reflect"
	"testing"

	"github.com/bwmarrin/discordgo"
)

const provisional = "Unnamed"

// testGuildRoles mirrors a typical server: provisional marker, admin, and a
// handful of class roles, in server order.
func testGuildRoles() []*discordgo.Role {
	return []*discordgo.Role{
		{ID: "r-unnamed", Name: "Unnamed"},
		{ID: "r-admin", Name: "admin"},
		{ID: "r-spa", Name: "14HBSPA"},
		{ID: "r-prog", Name: "14HBPROG"},
		{ID: "r-macs", Name: "MACS"},
	}
}

func TestDecideOutcomes(t *testing.T) {
	guildRoles := testGuildRoles()
	unclassified := []string{"r-everyone", "r-unnamed"}

	tests := []struct {
		name    string
		content string
		roles   []string
		want    Outcome
	}{
		{
			name:    "already classified member is ignored",
			content: "14HBSPA Ola Nordmann",
			roles:   []string{"r-everyone", "r-spa"},
			want:    OutcomeIgnored,
		},
		{
			name:    "valid class and full name promotes",
			content: "14HBSPA Ola Nordmann",
			roles:   unclassified,
			want:    OutcomePromoted,
		},
		{
			name:    "single name is rejected",
			content: "14HBSPA Ola",
			roles:   unclassified,
			want:    OutcomeRejectedShortName,
		},
		{
			// "ZZZZZZ" never matches the token pattern, so this reads as
			// ordinary chat rather than a failed classification.
			name:    "letters-only token is ignored",
			content: "ZZZZZZ Ola Nordmann",
			roles:   unclassified,
			want:    OutcomeIgnored,
		},
		{
			name:    "token-shaped but unknown class is rejected",
			content: "14HBXYZQQ Ola Nordmann",
			roles:   unclassified,
			want:    OutcomeRejectedNoRole,
		},
		{
			name:    "staff keyword escalates",
			content: "staff Jane Doe",
			roles:   unclassified,
			want:    OutcomeEscalatedStaff,
		},
		{
			name:    "staff keyword anywhere escalates",
			content: "I am NTNU Staff, please help",
			roles:   unclassified,
			want:    OutcomeEscalatedStaff,
		},
		{
			name:    "help command escalates",
			content: "!help",
			roles:   unclassified,
			want:    OutcomeEscalatedHelp,
		},
		{
			name:    "ordinary chat is ignored",
			content: "hello everyone",
			roles:   unclassified,
			want:    OutcomeIgnored,
		},
		{
			name:    "empty message is ignored",
			content: "",
			roles:   unclassified,
			want:    OutcomeIgnored,
		},
		{
			name:    "name before token promotes",
			content: "Ola Nordmann 14HBSPA",
			roles:   unclassified,
			want:    OutcomePromoted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Decide(tt.content, tt.roles, guildRoles, provisional)
			if got.Outcome != tt.want {
				t.Errorf("Decide(%q) outcome = %v, want %v", tt.content, got.Outcome, tt.want)
			}
		})
	}
}

func TestDecidePromotionPlan(t *testing.T) {
	guildRoles := testGuildRoles()
	got := Decide("14HBSPA Ola Nordmann", []string{"r-everyone", "r-unnamed"}, guildRoles, provisional)

	if got.Outcome != OutcomePromoted {
		t.Fatalf("outcome = %v, want OutcomePromoted", got.Outcome)
	}
	if got.Nickname != "Ola Nordmann" {
		t.Errorf("nickname = %q, want %q", got.Nickname, "Ola Nordmann")
	}
	wantRoles := []string{"r-everyone", "r-spa"}
	if !reflect.DeepEqual(got.RoleIDs, wantRoles) {
		t.Errorf("role set = %v, want %v", got.RoleIDs, wantRoles)
	}
}

// The payload is whichever side of the token is non-empty, preferring the
// prefix. A token-shaped substring inside the name therefore selects the
// text before it; this pins the long-standing behavior.
func TestDecidePayloadSideSelection(t *testing.T) {
	guildRoles := testGuildRoles()
	unclassified := []string{"r-unnamed"}

	got := Decide("Kari Olsen 14HBSPA", unclassified, guildRoles, provisional)
	if got.Outcome != OutcomePromoted {
		t.Fatalf("outcome = %v, want OutcomePromoted", got.Outcome)
	}
	if got.Nickname != "Kari Olsen " {
		t.Errorf("nickname = %q, want prefix side with trailing space kept", got.Nickname)
	}
}

// Rejections and escalations must never carry a mutation plan.
func TestDecideNoMutationOnFailure(t *testing.T) {
	guildRoles := testGuildRoles()
	unclassified := []string{"r-unnamed"}

	for _, content := range []string{"14HBSPA Ola", "14HBXYZQQ Ola Nordmann", "staff Jane Doe", "!help"} {
		got := Decide(content, unclassified, guildRoles, provisional)
		if got.RoleIDs != nil || got.Nickname != "" {
			t.Errorf("Decide(%q) carries mutation data %+v on outcome %v", content, got, got.Outcome)
		}
	}
}

func TestDecideIdempotencyGuard(t *testing.T) {
	guildRoles := testGuildRoles()
	classified := []string{"r-spa"}

	for _, content := range []string{"14HBSPA Ola Nordmann", "staff", "!help", "anything at all"} {
		got := Decide(content, classified, guildRoles, provisional)
		if got.Outcome != OutcomeIgnored {
			t.Errorf("Decide(%q) for classified member = %v, want OutcomeIgnored", content, got.Outcome)
		}
	}
}
