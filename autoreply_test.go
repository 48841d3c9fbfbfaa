package main

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/disgoorg/snowflake/v2"
)

func newTestEngine(t *testing.T, guildID snowflake.ID, entries ...*AutoReplyEntry) *AutoReplyEngine {
	t.Helper()
	engine := NewAutoReplyEngine()
	engine.hydrate("", map[string][]*AutoReplyEntry{
		guildID.String(): entries,
	})
	return engine
}

func testMessage(guildID snowflake.ID, content string) InboundMessage {
	return InboundMessage{
		GuildID:   guildID,
		ChannelID: 500,
		AuthorID:  100,
		Content:   content,
	}
}

func staticResolve(string) (string, bool) { return "", false }

func TestAutoReplyFirstMatchWins(t *testing.T) {
	guildID := snowflake.ID(1)
	engine := newTestEngine(t, guildID,
		&AutoReplyEntry{ID: "first", Keyword: "help", Reply: "first reply"},
		&AutoReplyEntry{ID: "second", Keyword: "help", Reply: "second reply"},
	)

	var sent string
	entry := engine.Dispatch(testMessage(guildID, "I need HELP please"), time.Now(), staticResolve, func(content string) error {
		sent = content
		return nil
	})
	if entry == nil || entry.ID != "first" {
		t.Fatalf("expected first entry to win, got %+v", entry)
	}
	if sent != "first reply" {
		t.Fatalf("sent %q, want %q", sent, "first reply")
	}
}

func TestAutoReplyRegexMode(t *testing.T) {
	guildID := snowflake.ID(1)
	engine := newTestEngine(t, guildID,
		&AutoReplyEntry{ID: "re", Keyword: `(?i)^how do i\b`, IsRegex: true, Reply: "see the faq"},
	)

	entry := engine.Dispatch(testMessage(guildID, "How do I reset?"), time.Now(), staticResolve, func(string) error { return nil })
	if entry == nil {
		t.Fatalf("expected regex entry to match")
	}

	entry = engine.Dispatch(testMessage(guildID, "tell me how do I"), time.Now(), staticResolve, func(string) error { return nil })
	if entry != nil {
		t.Fatalf("anchored pattern must not match mid-sentence")
	}
}

func TestAutoReplyMalformedRegexNeverMatches(t *testing.T) {
	guildID := snowflake.ID(1)
	engine := newTestEngine(t, guildID,
		&AutoReplyEntry{ID: "bad", Keyword: `([unclosed`, IsRegex: true, Reply: "nope"},
		&AutoReplyEntry{ID: "ok", Keyword: "unclosed", Reply: "fallback"},
	)

	entry := engine.Dispatch(testMessage(guildID, "([unclosed"), time.Now(), staticResolve, func(string) error { return nil })
	if entry == nil || entry.ID != "ok" {
		t.Fatalf("malformed regex should be skipped, got %+v", entry)
	}
}

func TestAutoReplyRoleFilters(t *testing.T) {
	guildID := snowflake.ID(1)
	engine := newTestEngine(t, guildID,
		&AutoReplyEntry{ID: "staffonly", Keyword: "ping", Reply: "pong", RolesAllow: []snowflake.ID{77}},
	)

	msg := testMessage(guildID, "ping")
	if entry := engine.Dispatch(msg, time.Now(), staticResolve, func(string) error { return nil }); entry != nil {
		t.Fatalf("member without allow role must not trigger")
	}

	msg.RoleIDs = []snowflake.ID{77}
	if entry := engine.Dispatch(msg, time.Now(), staticResolve, func(string) error { return nil }); entry == nil {
		t.Fatalf("member with allow role should trigger")
	}

	engine = newTestEngine(t, guildID,
		&AutoReplyEntry{ID: "nomuted", Keyword: "ping", Reply: "pong", RolesDeny: []snowflake.ID{88}},
	)
	msg.RoleIDs = []snowflake.ID{88}
	if entry := engine.Dispatch(msg, time.Now(), staticResolve, func(string) error { return nil }); entry != nil {
		t.Fatalf("denied role must suppress the entry")
	}
}

func TestAutoReplyRoleNameExclude(t *testing.T) {
	guildID := snowflake.ID(1)
	engine := newTestEngine(t, guildID,
		&AutoReplyEntry{ID: "nostaff", Keyword: "ping", Reply: "pong", RoleNameExclude: `(?i)^mod`},
	)

	msg := testMessage(guildID, "ping")
	msg.RoleNames = []string{"Member", "Moderator"}
	if entry := engine.Dispatch(msg, time.Now(), staticResolve, func(string) error { return nil }); entry != nil {
		t.Fatalf("role name matching the exclude pattern must suppress")
	}

	msg.RoleNames = []string{"Member"}
	if entry := engine.Dispatch(msg, time.Now(), staticResolve, func(string) error { return nil }); entry == nil {
		t.Fatalf("non-matching role names should pass")
	}
}

func TestAutoReplyChannelFilters(t *testing.T) {
	guildID := snowflake.ID(1)
	engine := newTestEngine(t, guildID,
		&AutoReplyEntry{ID: "onlyhere", Keyword: "ping", Reply: "pong", ChannelsAllow: []snowflake.ID{500}},
		&AutoReplyEntry{ID: "nothere", Keyword: "pong", Reply: "ping", ChannelsDeny: []snowflake.ID{500}},
	)

	msg := testMessage(guildID, "ping")
	if entry := engine.Dispatch(msg, time.Now(), staticResolve, func(string) error { return nil }); entry == nil {
		t.Fatalf("allowed channel should trigger")
	}

	msg.ChannelID = 501
	if entry := engine.Dispatch(msg, time.Now(), staticResolve, func(string) error { return nil }); entry != nil {
		t.Fatalf("non-allowed channel must not trigger")
	}

	msg = testMessage(guildID, "pong")
	if entry := engine.Dispatch(msg, time.Now(), staticResolve, func(string) error { return nil }); entry != nil {
		t.Fatalf("denied channel must not trigger")
	}
}

func TestAutoReplyMissingSnippetSkipsWithoutMarking(t *testing.T) {
	guildID := snowflake.ID(1)
	engine := newTestEngine(t, guildID,
		&AutoReplyEntry{ID: "snip", Keyword: "docs", SnippetRef: "gone", CooldownSeconds: 60},
	)

	now := time.Now()
	msg := testMessage(guildID, "docs please")
	if entry := engine.Dispatch(msg, now, staticResolve, func(string) error { return nil }); entry != nil {
		t.Fatalf("missing snippet must skip the entry")
	}

	// The skip must not consume the cooldown; a later resolvable hit fires.
	resolve := func(ref string) (string, bool) { return "the docs", true }
	if entry := engine.Dispatch(msg, now.Add(time.Second), resolve, func(string) error { return nil }); entry == nil {
		t.Fatalf("entry should fire once the snippet resolves")
	}
}

func TestAutoReplyCooldownMarksOnlyAfterSend(t *testing.T) {
	guildID := snowflake.ID(1)
	engine := newTestEngine(t, guildID,
		&AutoReplyEntry{ID: "cd", Keyword: "hi", Reply: "hello", CooldownSeconds: 60},
	)

	now := time.Now()
	msg := testMessage(guildID, "hi")

	// Failed send must leave the cooldown unmarked.
	if entry := engine.Dispatch(msg, now, staticResolve, func(string) error { return errors.New("boom") }); entry != nil {
		t.Fatalf("failed dispatch should not report a fired entry")
	}
	if entry := engine.Dispatch(msg, now.Add(time.Second), staticResolve, func(string) error { return nil }); entry == nil {
		t.Fatalf("entry should fire after an earlier failed send")
	}

	// Now the cooldown is armed.
	if entry := engine.Dispatch(msg, now.Add(2*time.Second), staticResolve, func(string) error { return nil }); entry != nil {
		t.Fatalf("cooldown should suppress the second hit")
	}
	if entry := engine.Dispatch(msg, now.Add(2*time.Minute), staticResolve, func(string) error { return nil }); entry == nil {
		t.Fatalf("cooldown should expire")
	}
}

func TestAutoReplyOnceCooldown(t *testing.T) {
	guildID := snowflake.ID(1)
	engine := newTestEngine(t, guildID,
		&AutoReplyEntry{ID: "welcome", Keyword: "hello", Reply: "welcome!", CooldownSeconds: CooldownOnce},
	)

	now := time.Now()
	msg := testMessage(guildID, "hello")
	if entry := engine.Dispatch(msg, now, staticResolve, func(string) error { return nil }); entry == nil {
		t.Fatalf("first hit should fire")
	}
	if entry := engine.Dispatch(msg, now.Add(1000*time.Hour), staticResolve, func(string) error { return nil }); entry != nil {
		t.Fatalf("once entries never fire twice for the same bucket")
	}
}

func TestAutoReplyCRUD(t *testing.T) {
	guildID := snowflake.ID(1)
	engine := newTestEngine(t, guildID)

	entry := &AutoReplyEntry{ID: "abc", Keyword: "hey", Reply: "yo"}
	if err := engine.Add(guildID, entry); err != nil {
		t.Fatalf("Add error: %v", err)
	}
	if got := engine.Get(guildID, "abc"); got == nil {
		t.Fatalf("Get after Add returned nil")
	}

	err := engine.Mutate(guildID, "abc", func(e *AutoReplyEntry) { e.Reply = "sup" })
	if err != nil {
		t.Fatalf("Mutate error: %v", err)
	}
	if engine.Get(guildID, "abc").Reply != "sup" {
		t.Fatalf("Mutate did not apply")
	}

	removed, err := engine.Remove(guildID, "abc")
	if err != nil || !removed {
		t.Fatalf("Remove = (%v, %v), want (true, nil)", removed, err)
	}
	if removed, _ := engine.Remove(guildID, "abc"); removed {
		t.Fatalf("second Remove should report not found")
	}
}

func TestAutoReplyMutateSwapsEntryCopy(t *testing.T) {
	guildID := snowflake.ID(1)
	original := &AutoReplyEntry{ID: "swap", Keyword: "ping", Reply: "pong"}
	engine := newTestEngine(t, guildID, original)

	if err := engine.Mutate(guildID, "swap", func(e *AutoReplyEntry) { e.Reply = "pang" }); err != nil {
		t.Fatalf("Mutate error: %v", err)
	}
	if original.Reply != "pong" {
		t.Fatalf("Mutate wrote through the published entry")
	}
	if got := engine.Get(guildID, "swap").Reply; got != "pang" {
		t.Fatalf("Get after Mutate = %q, want %q", got, "pang")
	}
}

func TestAutoReplyConcurrentMutateAndDispatch(t *testing.T) {
	guildID := snowflake.ID(1)
	engine := newTestEngine(t, guildID,
		&AutoReplyEntry{ID: "hot", Keyword: "hello", Reply: "hi"},
	)

	var wg sync.WaitGroup
	stop := make(chan struct{})
	for i := 0; i < 3; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			msg := testMessage(guildID, "hello there")
			for {
				select {
				case <-stop:
					return
				default:
					engine.Dispatch(msg, time.Now(), staticResolve, func(string) error { return nil })
				}
			}
		}()
	}

	for i := 0; i < 200; i++ {
		err := engine.Mutate(guildID, "hot", func(e *AutoReplyEntry) {
			e.Keyword = "hello"
			e.RolesDeny = appendUniqueID(nil, snowflake.ID(i))
		})
		if err != nil {
			t.Fatalf("Mutate error: %v", err)
		}
	}
	close(stop)
	wg.Wait()

	if got := engine.Get(guildID, "hot"); got == nil || len(got.RolesDeny) != 1 {
		t.Fatalf("entry state after concurrent edits = %+v", got)
	}
}
