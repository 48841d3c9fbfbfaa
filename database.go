package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/disgoorg/snowflake/v2"
	"github.com/joho/godotenv"
	"github.com/mattn/go-sqlite3"
)

// --- Phase 1: Configuration & Environment ---

type Config struct {
	Token        string
	GuildID      string
	DatabasePath string
	DataDir      string
	OwnerIDs     []string
	StreamingURL string
	Silent       bool
}

var GlobalConfig *Config

// LoadConfig initializes the configuration from environment variables.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	token := os.Getenv("DISCORD_TOKEN")
	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "."
		if info, err := os.Stat("data"); err == nil && info.IsDir() {
			dataDir = "./data"
		}
	}

	dbPath := os.Getenv("DATABASE_PATH")
	if dbPath == "" {
		dbPath = filepath.Join(dataDir, GetProjectName()+".db")
	}

	silent, _ := strconv.ParseBool(os.Getenv("SILENT"))

	streamingURL := os.Getenv("STREAMING_URL")
	if streamingURL == "" {
		streamingURL = "https://www.twitch.tv/discord"
	}

	ownerIDsStr := os.Getenv("OWNER_IDS")
	var ownerIDs []string
	if ownerIDsStr != "" {
		ownerIDs = strings.Split(ownerIDsStr, ",")
		for i := range ownerIDs {
			ownerIDs[i] = strings.TrimSpace(ownerIDs[i])
		}
	}

	cfg := &Config{
		Token:        token,
		GuildID:      os.Getenv("GUILD_ID"),
		DatabasePath: dbPath,
		DataDir:      dataDir,
		OwnerIDs:     ownerIDs,
		StreamingURL: streamingURL,
		Silent:       silent,
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if cfg.Silent {
		SetSilentMode(true)
	}

	GlobalConfig = cfg
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Token == "" {
		return fmt.Errorf(MsgConfigMissingToken)
	}
	if c.GuildID != "" && (len(c.GuildID) < 17 || len(c.GuildID) > 20) {
		return fmt.Errorf("invalid GUILD_ID: must be a valid Snowflake")
	}
	return nil
}

// IsOwner reports whether the given user is listed in OWNER_IDS.
func (c *Config) IsOwner(userID snowflake.ID) bool {
	if c == nil {
		return false
	}
	idStr := userID.String()
	for _, id := range c.OwnerIDs {
		if id == idStr {
			return true
		}
	}
	return false
}

func GetProjectName() string {
	exePath, err := os.Executable()
	projectName := "bot"
	if err == nil {
		projectName = filepath.Base(exePath)
		projectName = strings.TrimSuffix(projectName, ".exe")

		if projectName == "main" || strings.HasPrefix(projectName, "go_build_") {
			if modData, err := os.ReadFile("go.mod"); err == nil {
				lines := strings.Split(string(modData), "\n")
				if len(lines) > 0 && strings.HasPrefix(lines[0], "module ") {
					parts := strings.Split(lines[0], "/")
					projectName = strings.TrimSpace(parts[len(parts)-1])
				}
			}
		}
	}
	return projectName
}

// --- Phase 2: Database Connection & Lifecycle ---

var DB *sql.DB

func InitDatabase(ctx context.Context, dataSourceName string) error {
	// Explicitly reference sqlite3 driver to avoid blank identifier
	// The driver registers itself via its init() function
	_ = sqlite3.SQLiteDriver{}

	var err error
	DB, err = sql.Open("sqlite3", dataSourceName)
	if err != nil {
		return err
	}

	DB.SetMaxOpenConns(5)

	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
		"PRAGMA cache_size=-2000;",
	}

	initCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	for _, p := range pragmas {
		if _, err := DB.ExecContext(initCtx, p); err != nil {
			return fmt.Errorf(MsgDatabasePragmaError, p, err)
		}
	}

	tx, err := DB.BeginTx(initCtx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	tableQueries := []string{
		`CREATE TABLE IF NOT EXISTS bot_config (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS snippets (
			guild_id TEXT NOT NULL,
			name TEXT NOT NULL,
			content TEXT NOT NULL,
			is_dynamic INTEGER DEFAULT 0,
			created_by TEXT,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (guild_id, name)
		)`,
		`CREATE TABLE IF NOT EXISTS tickets (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			guild_id TEXT NOT NULL,
			thread_id TEXT NOT NULL UNIQUE,
			owner_id TEXT NOT NULL,
			category TEXT NOT NULL,
			note TEXT DEFAULT '',
			is_open INTEGER DEFAULT 1,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			closed_at DATETIME
		)`,
		`CREATE TABLE IF NOT EXISTS ticket_categories (
			guild_id TEXT NOT NULL,
			name TEXT NOT NULL,
			description TEXT DEFAULT '',
			PRIMARY KEY (guild_id, name)
		)`,
		`CREATE TABLE IF NOT EXISTS reaction_roles (
			message_id TEXT NOT NULL,
			emoji TEXT NOT NULL,
			guild_id TEXT NOT NULL,
			role_id TEXT NOT NULL,
			PRIMARY KEY (message_id, emoji)
		)`,
		`CREATE TABLE IF NOT EXISTS sticky_pins (
			channel_id TEXT PRIMARY KEY,
			guild_id TEXT NOT NULL,
			content TEXT NOT NULL,
			message_id TEXT DEFAULT '',
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
	}

	for _, q := range tableQueries {
		if _, err := tx.ExecContext(initCtx, q); err != nil {
			return fmt.Errorf(MsgDatabaseTableError, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	migrations := []string{
		"ALTER TABLE snippets ADD COLUMN is_dynamic INTEGER DEFAULT 0",
		"ALTER TABLE tickets ADD COLUMN note TEXT DEFAULT ''",
		"ALTER TABLE tickets ADD COLUMN closed_at DATETIME",
		"ALTER TABLE sticky_pins ADD COLUMN message_id TEXT DEFAULT ''",
	}

	for _, m := range migrations {
		if _, err := DB.ExecContext(initCtx, m); err != nil {
			if !strings.Contains(err.Error(), "duplicate column") {
				return fmt.Errorf("failed to migrate database: %w", err)
			}
		}
	}

	LogDatabase(MsgDatabaseInitSuccess)
	return nil
}

func CloseDatabase() {
	if DB != nil {
		DB.Close()
	}
}

// --- Phase 3: Infrastructure & Bot Persistence ---

// BotConfig helpers are used by the loader for mode tracking and state.
func GetBotConfig(ctx context.Context, key string) (string, error) {
	var value string
	err := DB.QueryRowContext(ctx, "SELECT value FROM bot_config WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	return value, err
}

func SetBotConfig(ctx context.Context, key, value string) error {
	_, err := DB.ExecContext(ctx, `
		INSERT INTO bot_config (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`, key, value)
	return err
}

// --- Phase 4: Application Logic (Snippets) ---

type Snippet struct {
	GuildID   snowflake.ID
	Name      string
	Content   string
	IsDynamic bool
	CreatedBy snowflake.ID
	CreatedAt time.Time
}

func AddSnippet(ctx context.Context, s *Snippet) error {
	_, err := DB.ExecContext(ctx, `
		INSERT INTO snippets (guild_id, name, content, is_dynamic, created_by)
		VALUES (?, ?, ?, ?, ?)
	`, s.GuildID.String(), s.Name, s.Content, boolToInt(s.IsDynamic), s.CreatedBy.String())
	return err
}

func UpdateSnippet(ctx context.Context, guildID snowflake.ID, name, content string) (bool, error) {
	result, err := DB.ExecContext(ctx,
		"UPDATE snippets SET content = ? WHERE guild_id = ? AND name = ?",
		content, guildID.String(), name)
	if err != nil {
		return false, err
	}
	rows, err := result.RowsAffected()
	return rows > 0, err
}

func DeleteSnippet(ctx context.Context, guildID snowflake.ID, name string) (bool, error) {
	result, err := DB.ExecContext(ctx,
		"DELETE FROM snippets WHERE guild_id = ? AND name = ?", guildID.String(), name)
	if err != nil {
		return false, err
	}
	rows, err := result.RowsAffected()
	return rows > 0, err
}

func GetSnippet(ctx context.Context, guildID snowflake.ID, name string) (*Snippet, error) {
	row := DB.QueryRowContext(ctx, `
		SELECT guild_id, name, content, is_dynamic, created_by, created_at
		FROM snippets WHERE guild_id = ? AND name = ?
	`, guildID.String(), name)
	return scanSnippet(row.Scan)
}

func GetSnippetsForGuild(ctx context.Context, guildID snowflake.ID) ([]*Snippet, error) {
	rows, err := DB.QueryContext(ctx, `
		SELECT guild_id, name, content, is_dynamic, created_by, created_at
		FROM snippets WHERE guild_id = ? ORDER BY name ASC
	`, guildID.String())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var snippets []*Snippet
	for rows.Next() {
		s, err := scanSnippet(rows.Scan)
		if err != nil {
			return nil, err
		}
		snippets = append(snippets, s)
	}
	return snippets, nil
}

func scanSnippet(scan func(dest ...any) error) (*Snippet, error) {
	s := &Snippet{}
	var gid string
	var createdBy sql.NullString
	var isDynamic int
	err := scan(&gid, &s.Name, &s.Content, &isDynamic, &createdBy, &s.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	s.GuildID, err = snowflake.Parse(gid)
	if err != nil {
		return nil, fmt.Errorf("failed to parse guild ID '%s' for snippet %s: %w", gid, s.Name, err)
	}
	if createdBy.Valid && createdBy.String != "" {
		s.CreatedBy, _ = snowflake.Parse(createdBy.String)
	}
	s.IsDynamic = isDynamic == 1
	return s, nil
}

// --- Phase 5: Application Logic (Tickets) ---

type Ticket struct {
	ID        int64
	GuildID   snowflake.ID
	ThreadID  snowflake.ID
	OwnerID   snowflake.ID
	Category  string
	Note      string
	IsOpen    bool
	CreatedAt time.Time
	ClosedAt  time.Time
}

func CreateTicket(ctx context.Context, t *Ticket) error {
	_, err := DB.ExecContext(ctx, `
		INSERT INTO tickets (guild_id, thread_id, owner_id, category)
		VALUES (?, ?, ?, ?)
	`, t.GuildID.String(), t.ThreadID.String(), t.OwnerID.String(), t.Category)
	return err
}

// GetOpenTicket returns the user's open ticket in the given category, if any.
func GetOpenTicket(ctx context.Context, guildID, ownerID snowflake.ID, category string) (*Ticket, error) {
	row := DB.QueryRowContext(ctx, `
		SELECT id, guild_id, thread_id, owner_id, category, note, is_open, created_at
		FROM tickets WHERE guild_id = ? AND owner_id = ? AND category = ? AND is_open = 1
	`, guildID.String(), ownerID.String(), category)
	return scanTicket(row.Scan)
}

func GetTicketByThread(ctx context.Context, threadID snowflake.ID) (*Ticket, error) {
	row := DB.QueryRowContext(ctx, `
		SELECT id, guild_id, thread_id, owner_id, category, note, is_open, created_at
		FROM tickets WHERE thread_id = ?
	`, threadID.String())
	return scanTicket(row.Scan)
}

func GetOpenTickets(ctx context.Context, guildID snowflake.ID) ([]*Ticket, error) {
	rows, err := DB.QueryContext(ctx, `
		SELECT id, guild_id, thread_id, owner_id, category, note, is_open, created_at
		FROM tickets WHERE guild_id = ? AND is_open = 1 ORDER BY created_at ASC
	`, guildID.String())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tickets []*Ticket
	for rows.Next() {
		t, err := scanTicket(rows.Scan)
		if err != nil {
			return nil, err
		}
		tickets = append(tickets, t)
	}
	return tickets, nil
}

func CloseTicket(ctx context.Context, threadID snowflake.ID) (bool, error) {
	result, err := DB.ExecContext(ctx,
		"UPDATE tickets SET is_open = 0, closed_at = CURRENT_TIMESTAMP WHERE thread_id = ? AND is_open = 1",
		threadID.String())
	if err != nil {
		return false, err
	}
	rows, err := result.RowsAffected()
	return rows > 0, err
}

func SetTicketNote(ctx context.Context, threadID snowflake.ID, note string) (bool, error) {
	result, err := DB.ExecContext(ctx,
		"UPDATE tickets SET note = ? WHERE thread_id = ?", note, threadID.String())
	if err != nil {
		return false, err
	}
	rows, err := result.RowsAffected()
	return rows > 0, err
}

type TicketStats struct {
	Total  int
	Open   int
	Closed int
}

func GetTicketStats(ctx context.Context, guildID snowflake.ID) (*TicketStats, error) {
	stats := &TicketStats{}
	err := DB.QueryRowContext(ctx, `
		SELECT COUNT(*), COALESCE(SUM(is_open), 0) FROM tickets WHERE guild_id = ?
	`, guildID.String()).Scan(&stats.Total, &stats.Open)
	if err != nil {
		return nil, err
	}
	stats.Closed = stats.Total - stats.Open
	return stats, nil
}

// CountOpenTickets counts open tickets across all guilds.
func CountOpenTickets(ctx context.Context) (int, error) {
	var count int
	err := DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM tickets WHERE is_open = 1`).Scan(&count)
	return count, err
}

func scanTicket(scan func(dest ...any) error) (*Ticket, error) {
	t := &Ticket{}
	var gid, tid, oid string
	var isOpen int
	err := scan(&t.ID, &gid, &tid, &oid, &t.Category, &t.Note, &isOpen, &t.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	t.GuildID, err = snowflake.Parse(gid)
	if err != nil {
		return nil, fmt.Errorf("failed to parse guild ID '%s' for ticket %d: %w", gid, t.ID, err)
	}
	t.ThreadID, err = snowflake.Parse(tid)
	if err != nil {
		return nil, fmt.Errorf("failed to parse thread ID '%s' for ticket %d: %w", tid, t.ID, err)
	}
	t.OwnerID, err = snowflake.Parse(oid)
	if err != nil {
		return nil, fmt.Errorf("failed to parse owner ID '%s' for ticket %d: %w", oid, t.ID, err)
	}
	t.IsOpen = isOpen == 1
	return t, nil
}

// --- Ticket Categories ---

type TicketCategory struct {
	GuildID     snowflake.ID
	Name        string
	Description string
}

var defaultTicketCategories = []TicketCategory{
	{Name: "General Support", Description: "Questions and general help"},
	{Name: "Report", Description: "Report a member or an incident"},
	{Name: "Appeal", Description: "Appeal a moderation action"},
}

func AddTicketCategory(ctx context.Context, guildID snowflake.ID, name, description string) error {
	_, err := DB.ExecContext(ctx, `
		INSERT INTO ticket_categories (guild_id, name, description) VALUES (?, ?, ?)
	`, guildID.String(), name, description)
	return err
}

func DeleteTicketCategory(ctx context.Context, guildID snowflake.ID, name string) (bool, error) {
	result, err := DB.ExecContext(ctx,
		"DELETE FROM ticket_categories WHERE guild_id = ? AND name = ?", guildID.String(), name)
	if err != nil {
		return false, err
	}
	rows, err := result.RowsAffected()
	return rows > 0, err
}

// GetTicketCategories returns the guild's categories, seeding the defaults
// the first time a guild asks for any.
func GetTicketCategories(ctx context.Context, guildID snowflake.ID) ([]*TicketCategory, error) {
	cats, err := queryTicketCategories(ctx, guildID)
	if err != nil {
		return nil, err
	}
	if len(cats) > 0 {
		return cats, nil
	}

	for _, d := range defaultTicketCategories {
		if err := AddTicketCategory(ctx, guildID, d.Name, d.Description); err != nil {
			return nil, err
		}
	}
	return queryTicketCategories(ctx, guildID)
}

func queryTicketCategories(ctx context.Context, guildID snowflake.ID) ([]*TicketCategory, error) {
	rows, err := DB.QueryContext(ctx, `
		SELECT guild_id, name, description FROM ticket_categories WHERE guild_id = ? ORDER BY name ASC
	`, guildID.String())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cats []*TicketCategory
	for rows.Next() {
		c := &TicketCategory{}
		var gid string
		if err := rows.Scan(&gid, &c.Name, &c.Description); err != nil {
			return nil, err
		}
		c.GuildID, err = snowflake.Parse(gid)
		if err != nil {
			return nil, fmt.Errorf("failed to parse guild ID '%s' for category %s: %w", gid, c.Name, err)
		}
		cats = append(cats, c)
	}
	return cats, nil
}

// --- Phase 6: Application Logic (Reaction Roles) ---

type ReactionRole struct {
	MessageID snowflake.ID
	Emoji     string
	GuildID   snowflake.ID
	RoleID    snowflake.ID
}

func SetReactionRole(ctx context.Context, rr *ReactionRole) error {
	_, err := DB.ExecContext(ctx, `
		INSERT INTO reaction_roles (message_id, emoji, guild_id, role_id) VALUES (?, ?, ?, ?)
		ON CONFLICT(message_id, emoji) DO UPDATE SET role_id = excluded.role_id
	`, rr.MessageID.String(), rr.Emoji, rr.GuildID.String(), rr.RoleID.String())
	return err
}

func DeleteReactionRole(ctx context.Context, messageID snowflake.ID, emoji string) (bool, error) {
	result, err := DB.ExecContext(ctx,
		"DELETE FROM reaction_roles WHERE message_id = ? AND emoji = ?", messageID.String(), emoji)
	if err != nil {
		return false, err
	}
	rows, err := result.RowsAffected()
	return rows > 0, err
}

func GetReactionRole(ctx context.Context, messageID snowflake.ID, emoji string) (*ReactionRole, error) {
	row := DB.QueryRowContext(ctx, `
		SELECT message_id, emoji, guild_id, role_id FROM reaction_roles
		WHERE message_id = ? AND emoji = ?
	`, messageID.String(), emoji)

	rr := &ReactionRole{}
	var mid, gid, rid string
	err := row.Scan(&mid, &rr.Emoji, &gid, &rid)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	rr.MessageID, err = snowflake.Parse(mid)
	if err != nil {
		return nil, fmt.Errorf("failed to parse message ID '%s' for reaction role: %w", mid, err)
	}
	rr.GuildID, err = snowflake.Parse(gid)
	if err != nil {
		return nil, fmt.Errorf("failed to parse guild ID '%s' for reaction role: %w", gid, err)
	}
	rr.RoleID, err = snowflake.Parse(rid)
	if err != nil {
		return nil, fmt.Errorf("failed to parse role ID '%s' for reaction role: %w", rid, err)
	}
	return rr, nil
}

func GetReactionRolesForGuild(ctx context.Context, guildID snowflake.ID) ([]*ReactionRole, error) {
	rows, err := DB.QueryContext(ctx, `
		SELECT message_id, emoji, guild_id, role_id FROM reaction_roles WHERE guild_id = ?
	`, guildID.String())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bindings []*ReactionRole
	for rows.Next() {
		rr := &ReactionRole{}
		var mid, gid, rid string
		if err := rows.Scan(&mid, &rr.Emoji, &gid, &rid); err != nil {
			return nil, err
		}
		rr.MessageID, err = snowflake.Parse(mid)
		if err != nil {
			return nil, fmt.Errorf("failed to parse message ID '%s' for reaction role: %w", mid, err)
		}
		rr.GuildID, err = snowflake.Parse(gid)
		if err != nil {
			return nil, fmt.Errorf("failed to parse guild ID '%s' for reaction role: %w", gid, err)
		}
		rr.RoleID, err = snowflake.Parse(rid)
		if err != nil {
			return nil, fmt.Errorf("failed to parse role ID '%s' for reaction role: %w", rid, err)
		}
		bindings = append(bindings, rr)
	}
	return bindings, nil
}

// --- Phase 7: Application Logic (Sticky Pins) ---

type StickyPin struct {
	ChannelID snowflake.ID
	GuildID   snowflake.ID
	Content   string
	MessageID snowflake.ID
	UpdatedAt time.Time
}

func SetStickyPin(ctx context.Context, p *StickyPin) error {
	_, err := DB.ExecContext(ctx, `
		INSERT INTO sticky_pins (channel_id, guild_id, content, message_id) VALUES (?, ?, ?, ?)
		ON CONFLICT(channel_id) DO UPDATE SET
			content = excluded.content,
			message_id = excluded.message_id,
			updated_at = CURRENT_TIMESTAMP
	`, p.ChannelID.String(), p.GuildID.String(), p.Content, p.MessageID.String())
	return err
}

func UpdateStickyMessageID(ctx context.Context, channelID, messageID snowflake.ID) error {
	_, err := DB.ExecContext(ctx,
		"UPDATE sticky_pins SET message_id = ?, updated_at = CURRENT_TIMESTAMP WHERE channel_id = ?",
		messageID.String(), channelID.String())
	return err
}

func DeleteStickyPin(ctx context.Context, channelID snowflake.ID) (bool, error) {
	result, err := DB.ExecContext(ctx,
		"DELETE FROM sticky_pins WHERE channel_id = ?", channelID.String())
	if err != nil {
		return false, err
	}
	rows, err := result.RowsAffected()
	return rows > 0, err
}

func GetStickyPin(ctx context.Context, channelID snowflake.ID) (*StickyPin, error) {
	row := DB.QueryRowContext(ctx, `
		SELECT channel_id, guild_id, content, message_id, updated_at
		FROM sticky_pins WHERE channel_id = ?
	`, channelID.String())
	return scanStickyPin(row.Scan)
}

func GetStickyPinsForGuild(ctx context.Context, guildID snowflake.ID) ([]*StickyPin, error) {
	rows, err := DB.QueryContext(ctx, `
		SELECT channel_id, guild_id, content, message_id, updated_at
		FROM sticky_pins WHERE guild_id = ? ORDER BY channel_id ASC
	`, guildID.String())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pins []*StickyPin
	for rows.Next() {
		p, err := scanStickyPin(rows.Scan)
		if err != nil {
			return nil, err
		}
		pins = append(pins, p)
	}
	return pins, nil
}

func scanStickyPin(scan func(dest ...any) error) (*StickyPin, error) {
	p := &StickyPin{}
	var cid, gid string
	var mid sql.NullString
	err := scan(&cid, &gid, &p.Content, &mid, &p.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	p.ChannelID, err = snowflake.Parse(cid)
	if err != nil {
		return nil, fmt.Errorf("failed to parse channel ID '%s' for sticky pin: %w", cid, err)
	}
	p.GuildID, err = snowflake.Parse(gid)
	if err != nil {
		return nil, fmt.Errorf("failed to parse guild ID '%s' for sticky pin: %w", gid, err)
	}
	if mid.Valid && mid.String != "" {
		p.MessageID, _ = snowflake.Parse(mid.String)
	}
	return p, nil
}
