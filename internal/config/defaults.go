package config

// DefaultChatURL is the chat service prompt URL used for opening selections.
const DefaultChatURL = "https://chat.openai.com/?model=gpt-4&prompt={prompt}"

// DefaultBinaryExtensions lists the extensions classified as binary without
// reading the file, used when no custom list is configured.
var DefaultBinaryExtensions = []string{
	// images
	".png", ".jpg", ".jpeg", ".gif", ".bmp", ".webp", ".svg", ".ico", ".tif", ".tiff",
	// documents
	".pdf", ".doc", ".docx", ".xls", ".xlsx", ".ppt", ".pptx",
	// archives
	".zip", ".rar", ".7z", ".tar", ".gz", ".bz2",
	// executables and data
	".exe", ".dll", ".so", ".dylib", ".bin", ".dat", ".db",
	// audio and video
	".mp3", ".mp4", ".avi", ".mov", ".mkv", ".wav", ".flac",
	// fonts
	".ttf", ".otf", ".woff", ".woff2", ".eot",
}

// DefaultExcludes lists the glob patterns skipped during directory expansion.
var DefaultExcludes = []string{
	"**/.git/**",
	"**/node_modules/**",
	"**/dist/**",
	"**/build/**",
	"**/coverage/**",
	"**/out/**",
	"**/vendor/**",
	"**/public/**",
	"**/bin/**",
	"**/obj/**",
	"**/*.log",
	"**/*.min.js",
	"**/*.min.css",
	"**/package-lock.json",
	"**/yarn.lock",
	"**/composer.lock",
	"**/pnpm-lock.yaml",
	"**/.DS_Store",
	"**/Thumbs.db",
}

// Config holds all copycode settings.
// Values come from defaults, then config.toml, then COPYCODE_* env, then flags.
type Config struct {
	BinaryExtensions []string `mapstructure:"binary_extensions"` // Empty means DefaultBinaryExtensions
	Excludes         []string `mapstructure:"excludes"`
	ApplyExcludes    bool     `mapstructure:"apply_excludes"`
	NoIgnore         bool     `mapstructure:"no_ignore"`
	ChatURL          string   `mapstructure:"chat_url"`

	Tokens         bool   `mapstructure:"tokens"`
	Tokenizer      string `mapstructure:"tokenizer"`
	TokenizerModel string `mapstructure:"tokenizer_model"`
	TokenizerFile  string `mapstructure:"tokenizer_file"`

	LanguagesFile string `mapstructure:"languages_file"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Excludes:      append([]string(nil), DefaultExcludes...),
		ApplyExcludes: true,
		ChatURL:       DefaultChatURL,
		Tokenizer:     "tiktoken",
	}
}
