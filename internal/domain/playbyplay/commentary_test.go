package playbyplay

import "testing"

func TestTemplateCommentator_FillsMissingComments(t *testing.T) {
	t.Parallel()

	teams := [2]Team{{Name: "Home Hawks"}, {Name: "Away Owls"}}
	events := []RawEvent{
		{Team: SideHome, Type: EventTypeBuzzerbeater, Players: []string{"John Doe"}},
		{Team: TeamNone, Type: EventTypePeriodEnd},
		{Team: SideAway, Type: EventTypeTimeout},
		{Team: SideAway, Type: EventTypeFoul, Comment: "already narrated"},
		{Team: SideAway, Type: 12345},
	}

	got := Annotate(events, teams, NewTemplateCommentator(nil))

	want := []string{
		"A buzzerbeater for John Doe!",
		EndOfPeriodComment,
		"Away Owls calls a timeout.",
		"already narrated",
		"",
	}
	for i := range want {
		if got[i].Comment != want[i] {
			t.Fatalf("event %d: unexpected comment got=%q want=%q", i, got[i].Comment, want[i])
		}
	}
	if events[0].Comment != "" {
		t.Fatalf("input events must not be modified")
	}
}

func TestAnnotate_NilCommentatorCopiesEvents(t *testing.T) {
	t.Parallel()

	events := []RawEvent{{Team: SideHome, Comment: "x"}}
	got := Annotate(events, [2]Team{}, nil)
	if len(got) != 1 || got[0].Comment != "x" {
		t.Fatalf("unexpected events: %+v", got)
	}
}
