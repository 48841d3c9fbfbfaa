package main

import (
	"testing"
	"time"

	"github.com/disgoorg/snowflake/v2"
)

func TestCooldownBlocksWithinWindow(t *testing.T) {
	tracker := NewCooldownTracker()
	now := time.Now()
	bucket := CooldownBucket(CooldownScopeMember, 111, 222, nil)

	if tracker.IsBlocked("entry", bucket, now, 30, false) {
		t.Fatalf("fresh tracker should not block")
	}
	tracker.Mark("entry", bucket, now, false)

	if !tracker.IsBlocked("entry", bucket, now.Add(10*time.Second), 30, false) {
		t.Fatalf("expected block 10s into a 30s window")
	}
	if tracker.IsBlocked("entry", bucket, now.Add(31*time.Second), 30, false) {
		t.Fatalf("expected no block after the window expires")
	}
}

func TestCooldownIsPerBucket(t *testing.T) {
	tracker := NewCooldownTracker()
	now := time.Now()

	alice := CooldownBucket(CooldownScopeMember, 111, 999, nil)
	bob := CooldownBucket(CooldownScopeMember, 112, 999, nil)

	tracker.Mark("entry", alice, now, false)
	if tracker.IsBlocked("entry", bob, now, 30, false) {
		t.Fatalf("a different member must not share the cooldown")
	}
}

func TestCooldownOnceBlocksForever(t *testing.T) {
	tracker := NewCooldownTracker()
	now := time.Now()
	bucket := CooldownBucket(CooldownScopeGuild, 111, 222, nil)

	tracker.Mark("entry", bucket, now, true)
	if !tracker.IsBlocked("entry", bucket, now.Add(365*24*time.Hour), 0, true) {
		t.Fatalf("once-marked bucket should block indefinitely")
	}
}

func TestCooldownZeroSecondsNeverBlocks(t *testing.T) {
	tracker := NewCooldownTracker()
	now := time.Now()
	bucket := CooldownBucket(CooldownScopeChannel, 111, 222, nil)

	tracker.Mark("entry", bucket, now, false)
	if tracker.IsBlocked("entry", bucket, now, 0, false) {
		t.Fatalf("zero-second cooldown must never block")
	}
}

func TestCooldownEntriesAreIndependent(t *testing.T) {
	tracker := NewCooldownTracker()
	now := time.Now()
	bucket := CooldownBucket(CooldownScopeMember, 111, 222, nil)

	tracker.Mark("a", bucket, now, false)
	if tracker.IsBlocked("b", bucket, now, 30, false) {
		t.Fatalf("entry cooldowns must not interfere")
	}
}

func TestCooldownBucketScopes(t *testing.T) {
	user := snowflake.ID(111)
	channel := snowflake.ID(222)
	roles := []snowflake.ID{333, 444}

	cases := []struct {
		scope string
		want  string
	}{
		{CooldownScopeMember, "111"},
		{CooldownScopeChannel, "222"},
		{CooldownScopeThread, "222"},
		{CooldownScopeMemberChannel, "111:222"},
		{CooldownScopeGuild, "guild"},
		{CooldownScopeRole, "333"},
		{"", "111"},
	}
	for _, tc := range cases {
		if got := CooldownBucket(tc.scope, user, channel, roles); got != tc.want {
			t.Fatalf("CooldownBucket(%q) = %q, want %q", tc.scope, got, tc.want)
		}
	}

	if got := CooldownBucket(CooldownScopeRole, user, channel, nil); got != "norole" {
		t.Fatalf("roleless member bucket = %q, want norole", got)
	}
}
