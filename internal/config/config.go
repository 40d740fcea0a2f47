package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config contains runtime settings shared by every hiring subcommand
type Config struct {
	Env       string `mapstructure:"hiring_env"`
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`

	Host          string `mapstructure:"mcp_host"` // default 0.0.0.0
	Port          string `mapstructure:"port"`     // MCP server port, default 8080
	CandidatePort string `mapstructure:"candidate_port"`
	TailorPort    string `mapstructure:"tailor_port"`
	EmailPort     string `mapstructure:"email_port"`

	DelegateTimeout time.Duration `mapstructure:"delegate_timeout"`
	AuthTimeout     time.Duration `mapstructure:"auth_timeout"`

	Profile struct {
		Sources []string `mapstructure:"sources"`
		Dir     string   `mapstructure:"dir"`
	} `mapstructure:"profile"`

	Neo4j struct {
		URI      string `mapstructure:"uri"`
		Username string `mapstructure:"username"`
		Password string `mapstructure:"password"`
	} `mapstructure:"neo4j"`

	DatabaseURL string `mapstructure:"database_url"`

	Match struct {
		Strategy         string `mapstructure:"strategy"`
		RequireQualified bool   `mapstructure:"require_qualified"`
	} `mapstructure:"match"`

	CandidateLinkBase string `mapstructure:"candidate_link_base"`

	Compose struct {
		Strategy string `mapstructure:"strategy"`
	} `mapstructure:"compose"`

	LLM struct {
		Provider string        `mapstructure:"provider"`
		CacheTTL time.Duration `mapstructure:"cache_ttl"`
	} `mapstructure:"llm"`

	OpenAI struct {
		APIKey  string `mapstructure:"api_key"`
		BaseURL string `mapstructure:"base_url"`
		Model   string `mapstructure:"model"`
	} `mapstructure:"openai"`

	Groq struct {
		APIKey  string `mapstructure:"api_key"`
		BaseURL string `mapstructure:"base_url"`
		Model   string `mapstructure:"model"`
	} `mapstructure:"groq"`

	Gemini struct {
		APIKey string `mapstructure:"api_key"`
		Model  string `mapstructure:"model"`
	} `mapstructure:"gemini"`

	RedisURL string `mapstructure:"redis_url"`

	Arcade struct {
		APIKey   string `mapstructure:"api_key"`
		UserID   string `mapstructure:"user_id"`
		BaseURL  string `mapstructure:"base_url"`
		ToolName string `mapstructure:"tool_name"`
	} `mapstructure:"arcade"`

	Tools struct {
		Backend string `mapstructure:"backend"`
	} `mapstructure:"tools"`

	CandidateServiceURL string `mapstructure:"candidate_service_url"`
	TailorServiceURL    string `mapstructure:"tailor_service_url"`
	EmailServiceURL     string `mapstructure:"email_service_url"`

	SheetsCredentialsPath string `mapstructure:"google_sheets_credentials_path"`

	Otel struct {
		Endpoint    string `mapstructure:"exporter_otlp_endpoint"`
		Headers     string `mapstructure:"exporter_otlp_headers"`
		ServiceName string `mapstructure:"service_name"`
	} `mapstructure:"otel"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("hiring_env", "development")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")

	v.SetDefault("mcp_host", "0.0.0.0")
	v.SetDefault("port", "8080")
	v.SetDefault("candidate_port", "7624")
	v.SetDefault("tailor_port", "6773")
	v.SetDefault("email_port", "7253")

	v.SetDefault("delegate_timeout", 30*time.Second)
	v.SetDefault("auth_timeout", 2*time.Minute)

	v.SetDefault("profile.sources", []string{"dir"})
	v.SetDefault("profile.dir", "db")

	v.SetDefault("neo4j.uri", "")
	v.SetDefault("neo4j.username", "")
	v.SetDefault("neo4j.password", "")
	v.SetDefault("database_url", "")

	v.SetDefault("match.strategy", "narrative")
	v.SetDefault("match.require_qualified", false)
	v.SetDefault("candidate_link_base", "http://localhost:3000")
	v.SetDefault("compose.strategy", "generative")

	v.SetDefault("llm.provider", "openai")
	v.SetDefault("llm.cache_ttl", time.Hour)
	v.SetDefault("openai.api_key", "")
	v.SetDefault("openai.base_url", "")
	v.SetDefault("openai.model", "gpt-3.5-turbo")
	v.SetDefault("groq.api_key", "")
	v.SetDefault("groq.base_url", "https://api.groq.com/openai/v1/")
	v.SetDefault("groq.model", "llama3-70b-8192")
	v.SetDefault("gemini.api_key", "")
	v.SetDefault("gemini.model", "gemini-2.0-flash")
	v.SetDefault("redis_url", "")

	v.SetDefault("arcade.api_key", "")
	v.SetDefault("arcade.user_id", "")
	v.SetDefault("arcade.base_url", "https://api.arcade.dev")
	v.SetDefault("arcade.tool_name", "Google.SendEmail@1.2.1")

	v.SetDefault("tools.backend", "local")
	v.SetDefault("candidate_service_url", "http://localhost:7624")
	v.SetDefault("tailor_service_url", "http://localhost:6773")
	v.SetDefault("email_service_url", "http://localhost:7253")

	v.SetDefault("google_sheets_credentials_path", "")

	v.SetDefault("otel.exporter_otlp_endpoint", "")
	v.SetDefault("otel.exporter_otlp_headers", "")
	v.SetDefault("otel.service_name", "hiring-mcp")
}

// Load populates config from defaults, an optional YAML file and environment variables.
// Env names are the upper-cased keys with dots replaced by underscores (match.strategy -> MATCH_STRATEGY).
func Load(file string) (Config, error) {
	if env := os.Getenv("HIRING_ENV"); env == "" || env == "development" {
		// .env is optional outside of local development
		_ = godotenv.Load()
	}

	v := viper.New()
	setDefaults(v)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", file, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	cfg.Profile.Sources = splitList(cfg.Profile.Sources)

	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	var problems []string

	if !oneOf(c.Match.Strategy, "narrative", "skills") {
		problems = append(problems, fmt.Sprintf("MATCH_STRATEGY must be narrative or skills, got %q", c.Match.Strategy))
	}
	if !oneOf(c.Compose.Strategy, "generative", "template") {
		problems = append(problems, fmt.Sprintf("COMPOSE_STRATEGY must be generative or template, got %q", c.Compose.Strategy))
	}
	if !oneOf(c.LLM.Provider, "openai", "groq", "gemini") {
		problems = append(problems, fmt.Sprintf("LLM_PROVIDER must be openai, groq or gemini, got %q", c.LLM.Provider))
	}
	if !oneOf(c.Tools.Backend, "local", "remote") {
		problems = append(problems, fmt.Sprintf("TOOLS_BACKEND must be local or remote, got %q", c.Tools.Backend))
	}

	var missingVars []string
	for _, src := range c.Profile.Sources {
		switch src {
		case "dir", "seed":
		case "neo4j":
			if c.Neo4j.URI == "" {
				missingVars = append(missingVars, "NEO4J_URI")
			}
			if c.Neo4j.Username == "" {
				missingVars = append(missingVars, "NEO4J_USERNAME")
			}
			if c.Neo4j.Password == "" {
				missingVars = append(missingVars, "NEO4J_PASSWORD")
			}
		case "postgres":
			if c.DatabaseURL == "" {
				missingVars = append(missingVars, "DATABASE_URL")
			}
		default:
			problems = append(problems, fmt.Sprintf("unknown profile source %q", src))
		}
	}

	if len(missingVars) > 0 {
		problems = append(problems, "missing required environment variables: "+strings.Join(missingVars, ", "))
	}
	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}

// ProfileSourceEnabled reports whether name is listed in PROFILE_SOURCES
func (c Config) ProfileSourceEnabled(name string) bool {
	return oneOf(name, c.Profile.Sources...)
}

func oneOf(v string, allowed ...string) bool {
	for _, a := range allowed {
		if strings.EqualFold(v, a) {
			return true
		}
	}
	return false
}

func splitList(in []string) []string {
	var out []string
	for _, item := range in {
		for _, part := range strings.Split(item, ",") {
			if part = strings.ToLower(strings.TrimSpace(part)); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
