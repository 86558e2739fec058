package config

import "time"

const productionEnvironment = "production"

// Settings contains the application config
type Settings struct {
	Host        string `env:"HOST" envDefault:"0.0.0.0"`
	Port        int    `env:"PORT" envDefault:"5000"`
	MonPort     int    `env:"MON_PORT" envDefault:"8888"`
	EnablePprof bool   `env:"ENABLE_PPROF"`
	LogLevel    string `env:"LOG_LEVEL"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"fb-group-relay"`
	Environment string `env:"ENVIRONMENT" envDefault:"development"`

	GraphAPIBase  string        `env:"GRAPH_API_BASE" envDefault:"https://graph.facebook.com/v17.0"`
	GroupID       string        `env:"FB_GROUP_ID"`
	AccessToken   string        `env:"FB_ACCESS_TOKEN"`
	AdminID       string        `env:"ADMIN_FACEBOOK_ID"`
	VerifyToken   string        `env:"FB_VERIFY_TOKEN"`
	CommandSecret string        `env:"ADMIN_COMMAND_SECRET"`
	CreditLine    string        `env:"CREDIT_LINE" envDefault:"Script edited by RAVI KING"`
	PostTimeout   time.Duration `env:"POST_TIMEOUT" envDefault:"15s"`
}

// MissingRequired returns the env names of required settings that are empty.
func (s *Settings) MissingRequired() []string {
	required := []struct {
		name  string
		value string
	}{
		{"FB_GROUP_ID", s.GroupID},
		{"FB_ACCESS_TOKEN", s.AccessToken},
		{"ADMIN_FACEBOOK_ID", s.AdminID},
		{"FB_VERIFY_TOKEN", s.VerifyToken},
		{"ADMIN_COMMAND_SECRET", s.CommandSecret},
	}
	var missing []string
	for _, r := range required {
		if r.value == "" {
			missing = append(missing, r.name)
		}
	}
	return missing
}

// IsProduction reports whether the service runs with ENVIRONMENT=production.
func (s *Settings) IsProduction() bool {
	return s.Environment == productionEnvironment
}

// DefaultLogLevel is used when LOG_LEVEL is unset.
func (s *Settings) DefaultLogLevel() string {
	if s.IsProduction() {
		return "info"
	}
	return "debug"
}
