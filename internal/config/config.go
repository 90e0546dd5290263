package config

type Config struct {
	ConfigVersion int             `yaml:"configVersion"`
	Server        ServerConfig    `yaml:"server"`
	Upstream      UpstreamConfig  `yaml:"upstream"`
	Normalize     NormalizeConfig `yaml:"normalize"`
	Metrics       MetricsConfig   `yaml:"metrics"`
	Routes        []Route         `yaml:"routes"`
}

type ServerConfig struct {
	Listen string `yaml:"listen"`
}

type UpstreamConfig struct {
	URL string `yaml:"url"`
}

type NormalizeConfig struct {
	Redirect     bool `yaml:"redirect"`
	RedirectCode int  `yaml:"redirectCode"`
}

type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Listen  string `yaml:"listen"`
}

// Route is one entry of the route table checked by the check command.
type Route struct {
	Name string `yaml:"name"`
	Path string `yaml:"path"`
}
