package config

var defaultConfig = Config{
	DataPath: "./data",
	Logger: Logger{
		Enabled: true,
		Level:   "info",
		Format:  "text",
	},
	Server: Server{
		PrintRoutes: false,
		Port:        3636,
	},
	Database: Database{
		Path: "./tourstats.db",
	},
	Providers: Providers{
		Setlist: SetlistProvider{
			BaseURL: "https://api.phish.net/v5", // API key via PHISHNET_API_KEY
		},
		Archive: ArchiveProvider{
			Enabled: true,
			BaseURL: "https://phish.in/api/v2",
		},
		LocalArchive: LocalArchive{
			Enabled: false,
			Path:    "./data/recordings",
		},
	},
	Stats: Stats{
		Tours:           []string{},
		LongestSongs:    3,
		RarestSongs:     3,
		MostPlayedSongs: 3,
		SongsNotPlayed:  20,
	},
	Jobs: Jobs{
		Log:     false,
		LogPath: "./data/job-logs",
		Webhooks: WebhookConfig{
			Enabled:  false,
			JobTypes: []string{"stats_generate"},
			Command:  "",
		},
	},
	Telegram: Telegram{
		Enabled:      false,
		Token:        "", // Can be obtained with https://t.me/BotFather
		AllowedUsers: []string{"<your_telegram_username>"},
	},
	Watcher: Watcher{
		Enabled: false,
	},
}
