package config

// Config holds the application configuration.
type Config struct {
	DataPath  string    `yaml:"dataPath" validate:"required"`
	Logger    Logger    `yaml:"logger"`
	Server    Server    `yaml:"server"`
	Database  Database  `yaml:"database"`
	Providers Providers `yaml:"providers"`
	Stats     Stats     `yaml:"stats"`
	Jobs      Jobs      `yaml:"jobs"`
	Telegram  Telegram  `yaml:"telegram"`
	Watcher   Watcher   `yaml:"watcher"`
}

// Logger holds the configuration for the app logging.
type Logger struct {
	Enabled bool   `yaml:"enabled"`
	Level   string `yaml:"level"`
	Format  string `yaml:"format"`
}

// Server holds the configuration for the Fiber server.
type Server struct {
	PrintRoutes bool   `yaml:"show_routes"`
	Port        uint32 `yaml:"port"`
}

// Database holds the configuration for the database.
type Database struct {
	Path string `yaml:"path" validate:"required"`
}

// Providers holds the configuration for the upstream data sources.
type Providers struct {
	Setlist      SetlistProvider `yaml:"setlist"`
	Archive      ArchiveProvider `yaml:"archive"`
	LocalArchive LocalArchive    `yaml:"local_archive"`
}

// SetlistProvider configures the setlist catalog API client.
type SetlistProvider struct {
	BaseURL string  `yaml:"base_url"`
	APIKey  *string `yaml:"api_key,omitempty"`
}

// ArchiveProvider configures the audio-archive API client.
type ArchiveProvider struct {
	Enabled bool   `yaml:"enabled"`
	BaseURL string `yaml:"base_url"`
}

// LocalArchive configures the local recordings directory scanner.
type LocalArchive struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// Stats holds per-statistic result limits and the tours to compute.
type Stats struct {
	Tours           []string `yaml:"tours"`
	LongestSongs    int      `yaml:"longest_songs_limit"`
	RarestSongs     int      `yaml:"rarest_songs_limit"`
	MostPlayedSongs int      `yaml:"most_played_songs_limit"`
	SongsNotPlayed  int      `yaml:"songs_not_played_limit"`
}

// Jobs holds the configuration for background jobs.
type Jobs struct {
	Log      bool          `yaml:"log"`
	LogPath  string        `yaml:"log_path"`
	Webhooks WebhookConfig `yaml:"webhooks"`
}

// WebhookConfig configures the shell command run on job completion.
type WebhookConfig struct {
	Enabled  bool     `yaml:"enabled"`
	JobTypes []string `yaml:"job_types"`
	Command  string   `yaml:"command"`
}

// Telegram holds the bot configuration.
type Telegram struct {
	Enabled      bool     `yaml:"enabled"`
	Token        string   `yaml:"token"`
	AllowedUsers []string `yaml:"allowedUsers"`
}

// Watcher configures the local recordings directory watcher.
type Watcher struct {
	Enabled bool `yaml:"enabled"`
}
