package config

import (
	"errors"
	"fmt"
	"strings"

	"dario.cat/mergo"
	"github.com/spf13/viper"
)

type configBuilder struct {
	overlays []*Server
	v        *viper.Viper
	filePath string
	err      error
}

func newConfigBuilder(filePath string) *configBuilder {
	v := viper.New()
	v.SetEnvPrefix("BOOKSTORE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	return &configBuilder{
		overlays: make([]*Server, 0, 3),
		v:        v,
		filePath: filePath,
	}
}

func (b *configBuilder) build() (*Config, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := &Config{node: Node{v: b.v}}
	for _, overlay := range b.overlays {
		if err := mergo.Merge(&config.Server, overlay); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return config, config.validate()
}

// withYAML reads the YAML configuration file into the tree. An explicitly
// given path must exist; the implicit ./application.yaml is optional.
func (b *configBuilder) withYAML() *configBuilder {
	if b.filePath != "" {
		b.v.SetConfigFile(b.filePath)
	} else {
		b.v.SetConfigName("application")
		b.v.SetConfigType("yaml")
		b.v.AddConfigPath(".")
	}

	if err := b.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if b.filePath != "" || !errors.As(err, &notFound) {
			b.err = errors.Join(b.err, fmt.Errorf("error reading config file: %w", err))
			return b
		}
		// no application.yaml around: defaults and env still apply
	}

	b.overlays = append(b.overlays, &Server{
		Host:           b.v.GetString("server.host"),
		Port:           b.v.GetInt("server.port"),
		RequestTimeout: b.v.GetDuration("server.request-timeout"),
	})
	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &Config{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	// env wins over the file: prepend
	b.overlays = append([]*Server{&envCfg.Server}, b.overlays...)
	return b
}

func (b *configBuilder) withDefaults() *configBuilder {
	b.overlays = append(b.overlays, &Server{
		Host: DefaultHost,
		Port: DefaultPort,
	})
	return b
}
