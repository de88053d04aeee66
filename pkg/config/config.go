package config

// this holds the resolved configuration values from CLI
//
//nolint:lll // readablity
var (
	LogLevel         string // sets the log level (zap log level values)
	LogFormat        string // dev vs json
	ChampionsFile    string // csv with year,driver champion
	ConstructorsFile string // csv with year,constructor champion
	CrashStatsURL    string // page holding the DNF statistics table
	HTTPTimeout      string // timeout for remote fetches
	WebserverAddress string // listen addr for live standings, empty disables it
	TelegramToken    string // bot token, empty disables the bot and announcer
	SettingsDB       string // sqlite file for telegram subscriptions
)
