package config

type Bot struct {
	Token  string `env:"BOT_TOKEN,required"`
	ChatID int64  `env:"BOT_CHAT_ID,required"`

	// AdminID may differ from the report chat; commands from anyone else are
	// ignored. Zero falls back to ChatID.
	AdminID int64 `env:"BOT_ADMIN_ID"`
}

func (b Bot) Admin() int64 {
	if b.AdminID != 0 {
		return b.AdminID
	}

	return b.ChatID
}
