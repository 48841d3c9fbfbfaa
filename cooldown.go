package main

import (
	"sync"
	"time"

	"github.com/disgoorg/snowflake/v2"
)

// Auto-reply cooldown scopes. The scope decides which bucket key a
// message falls into for one entry.
const (
	CooldownScopeMember        = "member"
	CooldownScopeChannel       = "channel"
	CooldownScopeMemberChannel = "member_channel"
	CooldownScopeGuild         = "guild"
	CooldownScopeRole          = "role"
	CooldownScopeThread        = "thread"
)

// markedForever is stored for "once" entries: after the first mark the
// bucket never unblocks.
var markedForever = time.Unix(1<<40, 0)

// CooldownTracker maps (entry ID, bucket key) to the last dispatch
// time. State is process-lifetime only; "once" buckets are forgotten
// on restart.
type CooldownTracker struct {
	mu    sync.Mutex
	fired map[string]time.Time
}

func NewCooldownTracker() *CooldownTracker {
	return &CooldownTracker{fired: map[string]time.Time{}}
}

// CooldownBucket derives the bucket key for a scope. Threads are
// channels in this model, so the thread scope keys on the channel ID.
func CooldownBucket(scope string, userID, channelID snowflake.ID, roleIDs []snowflake.ID) string {
	switch scope {
	case CooldownScopeChannel, CooldownScopeThread:
		return channelID.String()
	case CooldownScopeMemberChannel:
		return userID.String() + ":" + channelID.String()
	case CooldownScopeGuild:
		return "guild"
	case CooldownScopeRole:
		if len(roleIDs) > 0 {
			return roleIDs[0].String()
		}
		return "norole"
	default:
		return userID.String()
	}
}

// IsBlocked reports whether the bucket is still cooling down. seconds
// <= 0 never blocks unless the entry is once-mode and already fired.
func (t *CooldownTracker) IsBlocked(entryID, bucket string, now time.Time, seconds int64, once bool) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	last, ok := t.fired[entryID+"\x00"+bucket]
	if !ok {
		return false
	}
	if last.Equal(markedForever) {
		return true
	}
	if !once && seconds <= 0 {
		return false
	}
	return now.Sub(last) < time.Duration(seconds)*time.Second
}

// Mark records a successful dispatch for the bucket.
func (t *CooldownTracker) Mark(entryID, bucket string, now time.Time, once bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if once {
		t.fired[entryID+"\x00"+bucket] = markedForever
		return
	}
	t.fired[entryID+"\x00"+bucket] = now
}
