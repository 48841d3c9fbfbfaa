package main

import (
	"fmt"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/events"
	"github.com/disgoorg/disgo/rest"
	"github.com/disgoorg/omit"
	"github.com/disgoorg/snowflake/v2"
	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

// ===========================
// Command Registration
// ===========================

func init() {
	adminPerm := discord.PermissionAdministrator

	RegisterCommand(discord.SlashCommandCreate{
		Name:                     "autoreply",
		Description:              "Manage keyword auto-replies (Admin Only)",
		DefaultMemberPermissions: omit.New(&adminPerm),
		Contexts: []discord.InteractionContextType{
			discord.InteractionContextTypeGuild,
		},
		Options: []discord.ApplicationCommandOption{
			discord.ApplicationCommandOptionSubCommand{
				Name:        "add",
				Description: "Add an auto-reply entry",
				Options: []discord.ApplicationCommandOption{
					discord.ApplicationCommandOptionString{
						Name:        "keyword",
						Description: "Substring or regex to match against messages",
						Required:    true,
					},
					discord.ApplicationCommandOptionString{
						Name:        "reply",
						Description: "Static reply text",
						Required:    false,
					},
					discord.ApplicationCommandOptionString{
						Name:        "snippet",
						Description: "Name of a snippet to send instead of static text",
						Required:    false,
					},
					discord.ApplicationCommandOptionBool{
						Name:        "regex",
						Description: "Treat the keyword as a regular expression (default: false)",
						Required:    false,
					},
				},
			},
			discord.ApplicationCommandOptionSubCommand{
				Name:        "edit",
				Description: "Edit an auto-reply entry",
				Options: []discord.ApplicationCommandOption{
					discord.ApplicationCommandOptionString{
						Name:         "entry",
						Description:  "Entry to edit",
						Required:     true,
						Autocomplete: true,
					},
					discord.ApplicationCommandOptionString{
						Name:        "keyword",
						Description: "New keyword or pattern",
						Required:    false,
					},
					discord.ApplicationCommandOptionString{
						Name:        "reply",
						Description: "New static reply text",
						Required:    false,
					},
					discord.ApplicationCommandOptionString{
						Name:        "snippet",
						Description: "New snippet reference",
						Required:    false,
					},
					discord.ApplicationCommandOptionBool{
						Name:        "regex",
						Description: "Treat the keyword as a regular expression",
						Required:    false,
					},
				},
			},
			discord.ApplicationCommandOptionSubCommand{
				Name:        "remove",
				Description: "Remove an auto-reply entry",
				Options: []discord.ApplicationCommandOption{
					discord.ApplicationCommandOptionString{
						Name:         "entry",
						Description:  "Entry to remove",
						Required:     true,
						Autocomplete: true,
					},
				},
			},
			discord.ApplicationCommandOptionSubCommand{
				Name:        "list",
				Description: "List configured auto-replies",
			},
			discord.ApplicationCommandOptionSubCommand{
				Name:        "filter",
				Description: "Configure role/channel filters for an entry",
				Options: []discord.ApplicationCommandOption{
					discord.ApplicationCommandOptionString{
						Name:         "entry",
						Description:  "Entry to configure",
						Required:     true,
						Autocomplete: true,
					},
					discord.ApplicationCommandOptionRole{
						Name:        "allow_role",
						Description: "Only members with this role trigger the entry",
						Required:    false,
					},
					discord.ApplicationCommandOptionRole{
						Name:        "deny_role",
						Description: "Members with this role never trigger the entry",
						Required:    false,
					},
					discord.ApplicationCommandOptionString{
						Name:        "exclude_pattern",
						Description: "Regex on role names; matching members never trigger",
						Required:    false,
					},
					discord.ApplicationCommandOptionChannel{
						Name:        "allow_channel",
						Description: "Only this channel triggers the entry",
						Required:    false,
					},
					discord.ApplicationCommandOptionChannel{
						Name:        "deny_channel",
						Description: "This channel never triggers the entry",
						Required:    false,
					},
					discord.ApplicationCommandOptionBool{
						Name:        "clear",
						Description: "Clear all filters before applying the above",
						Required:    false,
					},
				},
			},
			discord.ApplicationCommandOptionSubCommand{
				Name:        "cooldown",
				Description: "Configure the cooldown for an entry",
				Options: []discord.ApplicationCommandOption{
					discord.ApplicationCommandOptionString{
						Name:         "entry",
						Description:  "Entry to configure",
						Required:     true,
						Autocomplete: true,
					},
					discord.ApplicationCommandOptionString{
						Name:        "duration",
						Description: "Cooldown duration (30s, 5m, 1d), 'once', or 'off'",
						Required:    true,
					},
					discord.ApplicationCommandOptionString{
						Name:        "scope",
						Description: "Cooldown scope (default: member)",
						Required:    false,
						Choices: []discord.ApplicationCommandOptionChoiceString{
							{Name: "Per Member", Value: CooldownScopeMember},
							{Name: "Per Channel", Value: CooldownScopeChannel},
							{Name: "Per Member Per Channel", Value: CooldownScopeMemberChannel},
							{Name: "Server-Wide", Value: CooldownScopeGuild},
							{Name: "Per Primary Role", Value: CooldownScopeRole},
							{Name: "Per Thread", Value: CooldownScopeThread},
						},
					},
				},
			},
		},
	}, handleAutoReply)

	RegisterAutocompleteHandler("autoreply", handleAutoReplyAutocomplete)
	RegisterMessageCreateHandler(onAutoReplyMessage)
}

// ===========================
// Types
// ===========================

// AutoReplyEntry is one configured keyword response. Entries are
// evaluated in stored order; the first successful dispatch wins.
type AutoReplyEntry struct {
	ID              string         `json:"id"`
	Keyword         string         `json:"keyword"`
	IsRegex         bool           `json:"is_regex,omitempty"`
	Reply           string         `json:"reply,omitempty"`
	SnippetRef      string         `json:"snippet_ref,omitempty"`
	RolesAllow      []snowflake.ID `json:"roles_allow,omitempty"`
	RolesDeny       []snowflake.ID `json:"roles_deny,omitempty"`
	RoleNameExclude string         `json:"role_name_exclude,omitempty"`
	ChannelsAllow   []snowflake.ID `json:"channels_allow,omitempty"`
	ChannelsDeny    []snowflake.ID `json:"channels_deny,omitempty"`
	CooldownSeconds int64          `json:"cooldown_seconds,omitempty"`
	CooldownScope   string         `json:"cooldown_scope,omitempty"`
}

// CooldownOnce is the CooldownSeconds sentinel for "fire once per
// bucket, forever".
const CooldownOnce int64 = -1

// InboundMessage is the matcher's view of a guild message.
type InboundMessage struct {
	GuildID   snowflake.ID
	ChannelID snowflake.ID
	AuthorID  snowflake.ID
	RoleIDs   []snowflake.ID
	RoleNames []string
	Content   string
}

// AutoReplyEngine owns the per-guild entry lists, the cooldown state,
// the compiled-regex cache, and the per-guild dispatch limiters.
type AutoReplyEngine struct {
	mu      sync.RWMutex
	path    string
	entries map[string][]*AutoReplyEntry

	cooldowns *CooldownTracker

	regexMu    sync.Mutex
	regexCache map[string]*regexp.Regexp

	limiterMu sync.Mutex
	limiters  map[snowflake.ID]*rate.Limiter
}

var AutoReplies = NewAutoReplyEngine()

func NewAutoReplyEngine() *AutoReplyEngine {
	return &AutoReplyEngine{
		entries:    map[string][]*AutoReplyEntry{},
		cooldowns:  NewCooldownTracker(),
		regexCache: map[string]*regexp.Regexp{},
		limiters:   map[snowflake.ID]*rate.Limiter{},
	}
}

func (e *AutoReplyEngine) hydrate(path string, entries map[string][]*AutoReplyEntry) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.path = path
	e.entries = entries
}

// ===========================
// Matching & Dispatch
// ===========================

// Dispatch evaluates msg against the guild's entries in stored order
// and sends at most one reply through send. resolve maps a snippet
// reference to rendered text. Returns the entry that fired, if any.
func (e *AutoReplyEngine) Dispatch(msg InboundMessage, now time.Time,
	resolve func(ref string) (string, bool), send func(content string) error) *AutoReplyEntry {

	e.mu.RLock()
	list := e.entries[msg.GuildID.String()]
	entries := make([]*AutoReplyEntry, len(list))
	copy(entries, list)
	e.mu.RUnlock()

	for _, entry := range entries {
		if entry.Keyword == "" {
			continue
		}
		if !e.matches(entry, msg.Content) {
			continue
		}
		if !entryRolesPass(entry, msg.RoleIDs) {
			continue
		}
		if !e.roleNamesPass(entry, msg.RoleNames) {
			continue
		}
		if !entryChannelsPass(entry, msg.ChannelID) {
			continue
		}

		once := entry.CooldownSeconds == CooldownOnce
		bucket := CooldownBucket(entry.CooldownScope, msg.AuthorID, msg.ChannelID, msg.RoleIDs)
		if e.cooldowns.IsBlocked(entry.ID, bucket, now, entry.CooldownSeconds, once) {
			continue
		}

		content := entry.Reply
		if entry.SnippetRef != "" {
			rendered, ok := resolve(entry.SnippetRef)
			if !ok {
				continue
			}
			content = rendered
		}
		if content == "" {
			continue
		}

		if !e.allowDispatch(msg.GuildID) {
			LogAutoReply(MsgAutoReplyRateLimited, msg.GuildID)
			return nil
		}

		if err := send(content); err != nil {
			LogAutoReply(MsgAutoReplySendFail, entry.ID, err)
			return nil
		}

		e.cooldowns.Mark(entry.ID, bucket, now, once)
		return entry
	}
	return nil
}

// matches applies the entry's keyword, substring in plain mode or a
// cached compiled regex in pattern mode. A malformed regex never
// matches.
func (e *AutoReplyEngine) matches(entry *AutoReplyEntry, content string) bool {
	if !entry.IsRegex {
		return ContainsLower(content, entry.Keyword)
	}

	e.regexMu.Lock()
	re, ok := e.regexCache[entry.Keyword]
	if !ok {
		re, _ = regexp.Compile(entry.Keyword)
		e.regexCache[entry.Keyword] = re
	}
	e.regexMu.Unlock()

	if re == nil {
		return false
	}
	return re.MatchString(content)
}

func (e *AutoReplyEngine) roleNamesPass(entry *AutoReplyEntry, roleNames []string) bool {
	if entry.RoleNameExclude == "" {
		return true
	}

	e.regexMu.Lock()
	re, ok := e.regexCache[entry.RoleNameExclude]
	if !ok {
		re, _ = regexp.Compile(entry.RoleNameExclude)
		e.regexCache[entry.RoleNameExclude] = re
	}
	e.regexMu.Unlock()

	if re == nil {
		return true
	}
	for _, name := range roleNames {
		if re.MatchString(name) {
			return false
		}
	}
	return true
}

func entryRolesPass(entry *AutoReplyEntry, roleIDs []snowflake.ID) bool {
	if len(entry.RolesAllow) > 0 {
		allowed := false
		for _, have := range roleIDs {
			for _, want := range entry.RolesAllow {
				if have == want {
					allowed = true
				}
			}
		}
		if !allowed {
			return false
		}
	}
	for _, have := range roleIDs {
		for _, denied := range entry.RolesDeny {
			if have == denied {
				return false
			}
		}
	}
	return true
}

func entryChannelsPass(entry *AutoReplyEntry, channelID snowflake.ID) bool {
	if len(entry.ChannelsAllow) > 0 {
		allowed := false
		for _, id := range entry.ChannelsAllow {
			if id == channelID {
				allowed = true
			}
		}
		if !allowed {
			return false
		}
	}
	for _, id := range entry.ChannelsDeny {
		if id == channelID {
			return false
		}
	}
	return true
}

// allowDispatch rate limits outgoing auto-replies per guild, 1/sec
// with a small burst.
func (e *AutoReplyEngine) allowDispatch(guildID snowflake.ID) bool {
	e.limiterMu.Lock()
	limiter, ok := e.limiters[guildID]
	if !ok {
		limiter = rate.NewLimiter(rate.Every(time.Second), 3)
		e.limiters[guildID] = limiter
	}
	e.limiterMu.Unlock()
	return limiter.Allow()
}

// ===========================
// Entry CRUD
// ===========================

func (e *AutoReplyEngine) Entries(guildID snowflake.ID) []*AutoReplyEntry {
	e.mu.RLock()
	defer e.mu.RUnlock()
	list := e.entries[guildID.String()]
	out := make([]*AutoReplyEntry, len(list))
	copy(out, list)
	return out
}

func (e *AutoReplyEngine) Get(guildID snowflake.ID, id string) *AutoReplyEntry {
	e.mu.RLock()
	defer e.mu.RUnlock()
	for _, entry := range e.entries[guildID.String()] {
		if entry.ID == id {
			return entry
		}
	}
	return nil
}

func (e *AutoReplyEngine) Add(guildID snowflake.ID, entry *AutoReplyEntry) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	key := guildID.String()
	e.entries[key] = append(e.entries[key], entry)
	return e.persist(key)
}

// Mutate applies fn to a copy of the entry and swaps the copy in under
// the engine lock. Published entries are never written to, so Dispatch
// can read them after dropping its read lock.
func (e *AutoReplyEngine) Mutate(guildID snowflake.ID, id string, fn func(*AutoReplyEntry)) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	key := guildID.String()
	for i, entry := range e.entries[key] {
		if entry.ID == id {
			updated := *entry
			fn(&updated)
			e.entries[key][i] = &updated
			return e.persist(key)
		}
	}
	return fmt.Errorf("auto-reply entry %s not found", id)
}

func (e *AutoReplyEngine) Remove(guildID snowflake.ID, id string) (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	key := guildID.String()
	list := e.entries[key]
	for i, entry := range list {
		if entry.ID == id {
			e.entries[key] = append(list[:i], list[i+1:]...)
			return true, e.persist(key)
		}
	}
	return false, nil
}

// persist writes the whole document. Caller holds e.mu.
func (e *AutoReplyEngine) persist(guildKey string) error {
	if e.path == "" {
		return nil
	}
	if err := SaveAutoReplies(e.path, e.entries); err != nil {
		LogAutoReply(MsgAutoReplyPersistFail, guildKey, err)
		return err
	}
	return nil
}

// ===========================
// Message Listener
// ===========================

func onAutoReplyMessage(event *events.MessageCreate) {
	if event.Message.Author.Bot || event.GuildID == nil {
		return
	}
	if event.Message.Content == "" {
		return
	}

	guildID := *event.GuildID
	client := event.Client()

	msg := InboundMessage{
		GuildID:   guildID,
		ChannelID: event.ChannelID,
		AuthorID:  event.Message.Author.ID,
		Content:   event.Message.Content,
	}

	if event.Message.Member != nil {
		msg.RoleIDs = event.Message.Member.RoleIDs
	} else if member, ok := client.Caches.Member(guildID, msg.AuthorID); ok {
		msg.RoleIDs = member.RoleIDs
	}
	for _, roleID := range msg.RoleIDs {
		if role, ok := client.Caches.Role(guildID, roleID); ok {
			msg.RoleNames = append(msg.RoleNames, role.Name)
		}
	}

	resolve := func(ref string) (string, bool) {
		snippet, err := GetSnippet(AppContext, guildID, ref)
		if err != nil || snippet == nil {
			return "", false
		}
		return RenderSnippet(snippet.Content, nil, fmt.Sprintf("<@%s>", msg.AuthorID)), true
	}

	send := func(content string) error {
		_, err := client.Rest.CreateMessage(event.ChannelID,
			discord.NewMessageCreate().WithContent(content),
			rest.WithCtx(AppContext))
		return err
	}

	if entry := AutoReplies.Dispatch(msg, time.Now(), resolve, send); entry != nil {
		LogAutoReply(MsgAutoReplyDispatched, entry.ID, event.ChannelID, guildID)
	}
}

// ===========================
// Command Handlers
// ===========================

func handleAutoReply(event *events.ApplicationCommandInteractionCreate) {
	data := event.SlashCommandInteractionData()
	if data.SubCommandName == nil {
		return
	}
	if event.GuildID() == nil {
		autoReplyRespond(event, ErrAutoReplyGuildOnly)
		return
	}

	switch *data.SubCommandName {
	case "add":
		handleAutoReplyAdd(event, data)
	case "edit":
		handleAutoReplyEdit(event, data)
	case "remove":
		handleAutoReplyRemove(event, data)
	case "list":
		handleAutoReplyList(event)
	case "filter":
		handleAutoReplyFilter(event, data)
	case "cooldown":
		handleAutoReplyCooldown(event, data)
	}
}

func autoReplyRespond(event *events.ApplicationCommandInteractionCreate, content string) {
	err := event.CreateMessage(discord.NewMessageCreate().
		WithIsComponentsV2(true).
		AddComponents(
			discord.NewContainer(
				discord.NewTextDisplay(content),
			),
		).
		WithEphemeral(true))
	if err != nil {
		LogAutoReply(MsgRespondError, err)
	}
}

func handleAutoReplyAdd(event *events.ApplicationCommandInteractionCreate, data discord.SlashCommandInteractionData) {
	keyword := data.String("keyword")
	reply, _ := data.OptString("reply")
	snippetRef, _ := data.OptString("snippet")
	isRegex, _ := data.OptBool("regex")

	if reply == "" && snippetRef == "" {
		autoReplyRespond(event, ErrAutoReplyNoContent)
		return
	}
	if isRegex {
		if _, err := regexp.Compile(keyword); err != nil {
			autoReplyRespond(event, fmt.Sprintf(ErrAutoReplyBadRegex, err))
			return
		}
	}

	entry := &AutoReplyEntry{
		ID:            uuid.NewString(),
		Keyword:       keyword,
		IsRegex:       isRegex,
		Reply:         reply,
		SnippetRef:    snippetRef,
		CooldownScope: CooldownScopeMember,
	}

	if err := AutoReplies.Add(*event.GuildID(), entry); err != nil {
		autoReplyRespond(event, ErrSnippetSaveFail)
		return
	}
	autoReplyRespond(event, fmt.Sprintf(MsgAutoReplyAdded, entry.ID[:8]))
}

func handleAutoReplyEdit(event *events.ApplicationCommandInteractionCreate, data discord.SlashCommandInteractionData) {
	guildID := *event.GuildID()
	id := data.String("entry")

	entry := AutoReplies.Get(guildID, id)
	if entry == nil {
		autoReplyRespond(event, ErrAutoReplyNotFound)
		return
	}

	if keyword, ok := data.OptString("keyword"); ok {
		isRegex := entry.IsRegex
		if r, ok := data.OptBool("regex"); ok {
			isRegex = r
		}
		if isRegex {
			if _, err := regexp.Compile(keyword); err != nil {
				autoReplyRespond(event, fmt.Sprintf(ErrAutoReplyBadRegex, err))
				return
			}
		}
	}

	err := AutoReplies.Mutate(guildID, id, func(entry *AutoReplyEntry) {
		if keyword, ok := data.OptString("keyword"); ok {
			entry.Keyword = keyword
		}
		if reply, ok := data.OptString("reply"); ok {
			entry.Reply = reply
		}
		if snippetRef, ok := data.OptString("snippet"); ok {
			entry.SnippetRef = snippetRef
		}
		if isRegex, ok := data.OptBool("regex"); ok {
			entry.IsRegex = isRegex
		}
	})
	if err != nil {
		autoReplyRespond(event, ErrAutoReplyNotFound)
		return
	}
	autoReplyRespond(event, fmt.Sprintf(MsgAutoReplyUpdated, id[:8]))
}

func handleAutoReplyRemove(event *events.ApplicationCommandInteractionCreate, data discord.SlashCommandInteractionData) {
	id := data.String("entry")
	removed, err := AutoReplies.Remove(*event.GuildID(), id)
	if err != nil || !removed {
		autoReplyRespond(event, ErrAutoReplyNotFound)
		return
	}
	autoReplyRespond(event, fmt.Sprintf(MsgAutoReplyRemoved, id[:8]))
}

func handleAutoReplyList(event *events.ApplicationCommandInteractionCreate) {
	entries := AutoReplies.Entries(*event.GuildID())
	if len(entries) == 0 {
		autoReplyRespond(event, MsgAutoReplyNone)
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(MsgAutoReplyListHeader, len(entries)))
	for i, entry := range entries {
		mode := "substring"
		if entry.IsRegex {
			mode = "regex"
		}
		target := Truncate(entry.Reply, 40)
		if entry.SnippetRef != "" {
			target = "snippet:" + entry.SnippetRef
		}
		sb.WriteString(fmt.Sprintf("%d. `%s` (%s, %s) → %s\n",
			i+1, TruncateCenter(entry.Keyword, 40), entry.ID[:8], mode, target))
		if entry.CooldownSeconds != 0 {
			cd := MsgAutoReplyCooldownOnce
			if entry.CooldownSeconds > 0 {
				cd = FormatSeconds(entry.CooldownSeconds)
			}
			sb.WriteString(fmt.Sprintf("> cooldown: %s (%s)\n", cd, entry.CooldownScope))
		}
	}
	autoReplyRespond(event, sb.String())
}

func handleAutoReplyFilter(event *events.ApplicationCommandInteractionCreate, data discord.SlashCommandInteractionData) {
	guildID := *event.GuildID()
	id := data.String("entry")

	if pattern, ok := data.OptString("exclude_pattern"); ok && pattern != "" {
		if _, err := regexp.Compile(pattern); err != nil {
			autoReplyRespond(event, fmt.Sprintf(ErrAutoReplyBadRegex, err))
			return
		}
	}

	err := AutoReplies.Mutate(guildID, id, func(entry *AutoReplyEntry) {
		if clear, ok := data.OptBool("clear"); ok && clear {
			entry.RolesAllow = nil
			entry.RolesDeny = nil
			entry.RoleNameExclude = ""
			entry.ChannelsAllow = nil
			entry.ChannelsDeny = nil
		}
		if role, ok := data.OptRole("allow_role"); ok {
			entry.RolesAllow = appendUniqueID(entry.RolesAllow, role.ID)
		}
		if role, ok := data.OptRole("deny_role"); ok {
			entry.RolesDeny = appendUniqueID(entry.RolesDeny, role.ID)
		}
		if pattern, ok := data.OptString("exclude_pattern"); ok {
			entry.RoleNameExclude = pattern
		}
		if ch, ok := data.OptChannel("allow_channel"); ok {
			entry.ChannelsAllow = appendUniqueID(entry.ChannelsAllow, ch.ID)
		}
		if ch, ok := data.OptChannel("deny_channel"); ok {
			entry.ChannelsDeny = appendUniqueID(entry.ChannelsDeny, ch.ID)
		}
	})
	if err != nil {
		autoReplyRespond(event, ErrAutoReplyNotFound)
		return
	}
	autoReplyRespond(event, fmt.Sprintf(MsgAutoReplyFilterSet, id[:8]))
}

func handleAutoReplyCooldown(event *events.ApplicationCommandInteractionCreate, data discord.SlashCommandInteractionData) {
	guildID := *event.GuildID()
	id := data.String("entry")
	durationStr := strings.ToLower(strings.TrimSpace(data.String("duration")))
	scope := CooldownScopeMember
	if s, ok := data.OptString("scope"); ok {
		scope = s
	}

	var seconds int64
	if durationStr == "once" {
		seconds = CooldownOnce
	} else {
		var err error
		seconds, err = ParseDurationSeconds(durationStr)
		if err != nil {
			autoReplyRespond(event, ErrAutoReplyBadCooldown)
			return
		}
	}

	err := AutoReplies.Mutate(guildID, id, func(entry *AutoReplyEntry) {
		entry.CooldownSeconds = seconds
		entry.CooldownScope = scope
	})
	if err != nil {
		autoReplyRespond(event, ErrAutoReplyNotFound)
		return
	}

	display := MsgAutoReplyCooldownOnce
	if seconds >= 0 {
		display = FormatSeconds(seconds)
	}
	autoReplyRespond(event, fmt.Sprintf(MsgAutoReplyCooldownSet, id[:8], display, scope))
}

func handleAutoReplyAutocomplete(event *events.AutocompleteInteractionCreate) {
	if event.GuildID() == nil {
		return
	}
	focusedValue := ""
	for _, opt := range event.Data.Options {
		if opt.Focused {
			if opt.Value != nil {
				focusedValue = strings.ToLower(strings.Trim(string(opt.Value), `"`))
			}
			break
		}
	}

	var choices []discord.AutocompleteChoice
	for _, entry := range AutoReplies.Entries(*event.GuildID()) {
		display := fmt.Sprintf("%s (%s)", TruncateCenter(entry.Keyword, 70), entry.ID[:8])
		if focusedValue == "" || strings.Contains(strings.ToLower(display), focusedValue) {
			choices = append(choices, discord.AutocompleteChoiceString{
				Name:  display,
				Value: entry.ID,
			})
		}
		if len(choices) >= 25 {
			break
		}
	}
	event.AutocompleteResult(choices)
}

func appendUniqueID(ids []snowflake.ID, id snowflake.ID) []snowflake.ID {
	for _, existing := range ids {
		if existing == id {
			return ids
		}
	}
	return append(ids, id)
}
