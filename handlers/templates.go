package handlers

import "strings"

// welcomeTemplate greets new members in Norwegian and English. Slots:
// {name} member mention, {welcome} welcome channel mention, {rules} rules
// channel mention.
const welcomeTemplate = `__Norwegian:__
Velkommen til Programmering i Gjøvik NTNU discord kanalen {name}!
Vennligst oppgi klassen din (eller staff hvis du er ansatt ved NTNU) og ditt fulle navn i {welcome} kanalen på følgende format:
` + "`<klasse> <fullt navn>`" + `
Eksempel:
` + "`14HBSPA Ola Nordmann`" + `
Vennligst les reglene i {rules} kanalen og ha et hyggelig opphold. Kontakt gjerne en @admin dersom du har noen spørsmål.

__English:__
Welcome to the programming discord for NTNU Gjøvik {name}!
Please state your class (or staff if you work at NTNU) and your full name in the {welcome} channel in the following format:
` + "`<class> <full name>`" + `
Example:
` + "`14HBSPA Ola Nordmann`" + `
Please read the rules in {rules} and enjoy your stay. Feel free to contact an @admin if you have any questions.
`

// Per-outcome templates. The first three take {roleID}, the admin role to
// mention; the member-facing rejections take {name}, the member mention; the
// two fallbacks take {mention}, the guild owner mention. All six must stay
// distinct strings.
const (
	somethingWentWrongTemplate = "Oops, something went wrong!\nAn <@&{roleID}> will be here shortly!"
	staffTemplate              = "Hi staff!\nAn <@&{roleID}> will be here shortly!"
	helpTemplate               = "An <@&{roleID}> will be here shortly!"

	roleNotFoundTemplate = "{name} Role could not be found, did you spell it correctly?\nType !help for an admin"
	nameTooShortTemplate = "{name} Your name is too short, we need atleast a first and last name.\nType !help for an admin"

	adminFallbackTemplate = "Admin role not found, fallback to owner: {mention}"
	ownerFallbackTemplate = "Fatal exception, fallback to owner: {mention}"
)

// formatTemplate fills {slot} placeholders in a message template.
func formatTemplate(template string, values map[string]string) string {
	pairs := make([]string, 0, len(values)*2)
	for slot, value := range values {
		pairs = append(pairs, "{"+slot+"}", value)
	}
	return strings.NewReplacer(pairs...).Replace(template)
}
