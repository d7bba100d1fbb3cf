package handlers

import (
	"strings"
	"testing"
)

func TestFormatTemplate(t *testing.T) {
	tests := []struct {
		name     string
		template string
		values   map[string]string
		want     string
	}{
		{
			name:     "role mention slot",
			template: helpTemplate,
			values:   map[string]string{"roleID": "123"},
			want:     "An <@&123> will be here shortly!",
		},
		{
			name:     "member mention slot",
			template: roleNotFoundTemplate,
			values:   map[string]string{"name": "<@42>"},
			want:     "<@42> Role could not be found, did you spell it correctly?\nType !help for an admin",
		},
		{
			name:     "owner mention slot",
			template: adminFallbackTemplate,
			values:   map[string]string{"mention": "<@owner>"},
			want:     "Admin role not found, fallback to owner: <@owner>",
		},
		{
			name:     "unused values are harmless",
			template: "plain text",
			values:   map[string]string{"name": "x"},
			want:     "plain text",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatTemplate(tt.template, tt.values); got != tt.want {
				t.Errorf("formatTemplate() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWelcomeTemplateSubstitution(t *testing.T) {
	got := formatTemplate(welcomeTemplate, map[string]string{
		"name":    "<@42>",
		"welcome": "<#100>",
		"rules":   "<#200>",
	})

	for _, want := range []string{"<@42>", "<#100>", "<#200>"} {
		if !strings.Contains(got, want) {
			t.Errorf("welcome message missing %q", want)
		}
	}
	if strings.Contains(got, "{") {
		t.Errorf("welcome message still contains an unfilled slot:\n%s", got)
	}
}

// Every outcome message must stay distinct so a member or moderator can tell
// which branch fired.
func TestOutcomeTemplatesDistinct(t *testing.T) {
	templates := []string{
		somethingWentWrongTemplate,
		staffTemplate,
		helpTemplate,
		roleNotFoundTemplate,
		nameTooShortTemplate,
		adminFallbackTemplate,
		ownerFallbackTemplate,
	}

	seen := make(map[string]int)
	for i, tmpl := range templates {
		if j, dup := seen[tmpl]; dup {
			t.Errorf("templates %d and %d are identical", j, i)
		}
		seen[tmpl] = i
	}
}
