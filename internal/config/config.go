package config

import (
	"os"
	"regexp"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server struct {
		Port         int           `yaml:"port" default:"8080"`
		Host         string        `yaml:"host" default:"0.0.0.0"`
		ReadTimeout  time.Duration `yaml:"read_timeout" default:"30s"`
		WriteTimeout time.Duration `yaml:"write_timeout" default:"30s"`
		IdleTimeout  time.Duration `yaml:"idle_timeout" default:"60s"`
		AllowOrigins []string      `yaml:"allow_origins"`
	} `yaml:"server"`

	LLM struct {
		Provider    string        `yaml:"provider" default:"claude"`
		APIKey      string        `yaml:"api_key"`
		Model       string        `yaml:"model" default:"claude-3-haiku-20240307"`
		MaxTokens   int           `yaml:"max_tokens" default:"4096"`
		Temperature float32       `yaml:"temperature" default:"0.3"`
		Timeout     time.Duration `yaml:"timeout" default:"60s"`
	} `yaml:"llm"`

	Latex struct {
		Compiler      string        `yaml:"compiler" default:"pdflatex"`
		TemplateDir   string        `yaml:"template_dir" default:"assets/templates"`
		CompilePasses int           `yaml:"compile_passes" default:"2"`
		Timeout       time.Duration `yaml:"timeout" default:"60s"`
		ScratchDir    string        `yaml:"scratch_dir"` // empty means the OS temp dir
	} `yaml:"latex"`

	Templates struct {
		Default    string `yaml:"default" default:"auto_cv"`
		PreviewDir string `yaml:"preview_dir" default:"/previews"`
	} `yaml:"templates"`

	Export struct {
		RateLimit int           `yaml:"rate_limit" default:"30"` // requests per minute per client
		Burst     int           `yaml:"burst" default:"5"`
		Timeout   time.Duration `yaml:"timeout" default:"120s"`
	} `yaml:"export"`

	Logging struct {
		Level  string `yaml:"level" default:"info"`
		Format string `yaml:"format" default:"json"`
		Output string `yaml:"output" default:"stdout"`

		Adapters []struct {
			Name    string                 `yaml:"name"`
			Type    string                 `yaml:"type"`
			Enabled bool                   `yaml:"enabled"`
			Options map[string]interface{} `yaml:"options"`
		} `yaml:"adapters"`
	} `yaml:"logging"`

	Redis struct {
		URL      string        `yaml:"url" default:"redis://localhost:6379"`
		Password string        `yaml:"password"`
		DB       int           `yaml:"db" default:"0"`
		Timeout  time.Duration `yaml:"timeout" default:"5s"`
	} `yaml:"redis"`
}

// expandEnvVars expands environment variables in a string using ${VAR} or $VAR syntax
func expandEnvVars(s string) string {
	// Expand ${VAR} syntax
	re := regexp.MustCompile(`\$\{([^}]+)\}`)
	s = re.ReplaceAllStringFunc(s, func(match string) string {
		varName := match[2 : len(match)-1] // Remove ${ and }
		if val := os.Getenv(varName); val != "" {
			return val
		}
		return match // Return original if env var not found
	})

	// Expand $VAR syntax (but avoid replacing ${VAR} that was already processed)
	re2 := regexp.MustCompile(`\$([A-Za-z_][A-Za-z0-9_]*)`)
	s = re2.ReplaceAllStringFunc(s, func(match string) string {
		varName := match[1:] // Remove $
		if val := os.Getenv(varName); val != "" {
			return val
		}
		return match // Return original if env var not found
	})

	return s
}

// LoadConfig loads configuration from file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	// Load .env file if it exists (ignore errors if file doesn't exist)
	_ = godotenv.Load()

	config := &Config{}

	// Set defaults
	config.Server.Port = 8080
	config.Server.Host = "0.0.0.0"
	config.Server.ReadTimeout = 30 * time.Second
	config.Server.WriteTimeout = 30 * time.Second
	config.Server.IdleTimeout = 60 * time.Second
	config.Server.AllowOrigins = []string{"*"}

	config.LLM.Provider = "claude"
	config.LLM.Model = "claude-3-haiku-20240307"
	config.LLM.MaxTokens = 4096
	config.LLM.Temperature = 0.3
	config.LLM.Timeout = 60 * time.Second

	config.Latex.Compiler = "pdflatex"
	config.Latex.TemplateDir = "assets/templates"
	config.Latex.CompilePasses = 2
	config.Latex.Timeout = 60 * time.Second

	config.Templates.Default = "auto_cv"
	config.Templates.PreviewDir = "/previews"

	config.Export.RateLimit = 30
	config.Export.Burst = 5
	config.Export.Timeout = 120 * time.Second

	config.Logging.Level = "info"
	config.Logging.Format = "json"
	config.Logging.Output = "stdout"

	config.Redis.URL = "redis://localhost:6379"
	config.Redis.DB = 0
	config.Redis.Timeout = 5 * time.Second

	// Load from YAML file if it exists
	if configPath != "" {
		if data, err := os.ReadFile(configPath); err == nil {
			// Expand environment variables in the YAML content
			yamlContent := expandEnvVars(string(data))

			if err := yaml.Unmarshal([]byte(yamlContent), config); err != nil {
				return nil, err
			}
		}
	}

	// Override with environment variables
	config.loadFromEnv()

	return config, nil
}

// loadFromEnv loads configuration from environment variables
func (c *Config) loadFromEnv() {
	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			c.Server.Port = p
		}
	}

	if host := os.Getenv("HOST"); host != "" {
		c.Server.Host = host
	}

	if apiKey := os.Getenv("LLM_API_KEY"); apiKey != "" {
		c.LLM.APIKey = apiKey
	}

	if provider := os.Getenv("LLM_PROVIDER"); provider != "" {
		c.LLM.Provider = provider
	}

	if model := os.Getenv("LLM_MODEL"); model != "" {
		c.LLM.Model = model
	}

	if logLevel := os.Getenv("LOG_LEVEL"); logLevel != "" {
		c.Logging.Level = logLevel
	}

	if logFormat := os.Getenv("LOG_FORMAT"); logFormat != "" {
		c.Logging.Format = logFormat
	}

	if compiler := os.Getenv("LATEX_COMPILER"); compiler != "" {
		c.Latex.Compiler = compiler
	}

	if templateDir := os.Getenv("LATEX_TEMPLATE_DIR"); templateDir != "" {
		c.Latex.TemplateDir = templateDir
	}

	if passes := os.Getenv("LATEX_COMPILE_PASSES"); passes != "" {
		if p, err := strconv.Atoi(passes); err == nil && p > 0 {
			c.Latex.CompilePasses = p
		}
	}

	if timeout := os.Getenv("LATEX_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Latex.Timeout = d
		}
	}

	if scratchDir := os.Getenv("LATEX_SCRATCH_DIR"); scratchDir != "" {
		c.Latex.ScratchDir = scratchDir
	}

	if defaultTemplate := os.Getenv("DEFAULT_TEMPLATE"); defaultTemplate != "" {
		c.Templates.Default = defaultTemplate
	}

	if rateLimit := os.Getenv("EXPORT_RATE_LIMIT"); rateLimit != "" {
		if limit, err := strconv.Atoi(rateLimit); err == nil {
			c.Export.RateLimit = limit
		}
	}

	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		c.Redis.URL = redisURL
	}

	if redisPassword := os.Getenv("REDIS_PASSWORD"); redisPassword != "" {
		c.Redis.Password = redisPassword
	}

	if redisDB := os.Getenv("REDIS_DB"); redisDB != "" {
		if db, err := strconv.Atoi(redisDB); err == nil {
			c.Redis.DB = db
		}
	}

	if redisTimeout := os.Getenv("REDIS_TIMEOUT"); redisTimeout != "" {
		if timeout, err := time.ParseDuration(redisTimeout); err == nil {
			c.Redis.Timeout = timeout
		}
	}

	// Handle Betterstack adapter enabled/disabled via environment variable
	if betterstackEnabled := os.Getenv("BETTERSTACK_ENABLED"); betterstackEnabled != "" {
		enabled := betterstackEnabled == "true" || betterstackEnabled == "1"

		for i := range c.Logging.Adapters {
			if c.Logging.Adapters[i].Name == "betterstack" || c.Logging.Adapters[i].Type == "betterstack" {
				c.Logging.Adapters[i].Enabled = enabled
				break
			}
		}
	}

	c.loadLoggingAdapterEnvVars()
}

// loadLoggingAdapterEnvVars loads environment variables for logging adapters
func (c *Config) loadLoggingAdapterEnvVars() {
	for i := range c.Logging.Adapters {
		adapter := &c.Logging.Adapters[i]

		switch adapter.Type {
		case "betterstack":
			if token := os.Getenv("BETTERSTACK_SOURCE_TOKEN"); token != "" {
				if adapter.Options == nil {
					adapter.Options = make(map[string]interface{})
				}
				adapter.Options["source_token"] = token
			}

			if endpoint := os.Getenv("BETTERSTACK_ENDPOINT"); endpoint != "" {
				if adapter.Options == nil {
					adapter.Options = make(map[string]interface{})
				}
				adapter.Options["endpoint"] = endpoint
			}
		}
	}
}
