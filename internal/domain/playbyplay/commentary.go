package playbyplay

import "strings"

const (
	EndOfPeriodComment   = "End of period."
	BuzzerbeaterTemplate = "A buzzerbeater for $player1$!"
	placeholderPlayerOne = "$player1$"
	placeholderPlayerTwo = "$player2$"
	placeholderTeam      = "$team$"
)

// Commentator produces the narrative line for one event.
type Commentator interface {
	Comment(ev RawEvent, teams [2]Team) string
}

// TemplateCommentator renders comments from per-type templates.
type TemplateCommentator struct {
	templates map[int]string
}

func DefaultTemplates() map[int]string {
	return map[int]string{
		EventTypePeriodEnd:    EndOfPeriodComment,
		EventTypeBuzzerbeater: BuzzerbeaterTemplate,
		EventTypeTimeout:      "$team$ calls a timeout.",
		EventTypeSubstitution: "$player1$ comes in for $player2$.",
		EventTypeRebound:      "$player1$ grabs the rebound.",
		EventTypeFoul:         "Foul on $player1$.",
		EventTypeTurnover:     "Turnover by $player1$.",
		EventTypeGameEnd:      "End of the game.",
	}
}

func NewTemplateCommentator(templates map[int]string) *TemplateCommentator {
	if templates == nil {
		templates = DefaultTemplates()
	}
	return &TemplateCommentator{templates: templates}
}

// Comment keeps an existing comment, otherwise fills the template for the event type.
func (c *TemplateCommentator) Comment(ev RawEvent, teams [2]Team) string {
	if ev.Comment != "" {
		return ev.Comment
	}
	tpl, ok := c.templates[ev.Type]
	if !ok {
		return ""
	}

	teamName := ""
	if ev.HasTeam() {
		teamName = teams[ev.Team].Name
	}
	replacer := strings.NewReplacer(
		placeholderPlayerOne, playerAt(ev.Players, 0),
		placeholderPlayerTwo, playerAt(ev.Players, 1),
		placeholderTeam, teamName,
	)
	return replacer.Replace(tpl)
}

// Annotate returns a copy of events with comments filled by c.
func Annotate(events []RawEvent, teams [2]Team, c Commentator) []RawEvent {
	out := make([]RawEvent, len(events))
	copy(out, events)
	if c == nil {
		return out
	}
	for i := range out {
		out[i].Comment = c.Comment(out[i], teams)
	}
	return out
}

func playerAt(players []string, idx int) string {
	if idx < len(players) {
		return strings.TrimSpace(players[idx])
	}
	return ""
}
