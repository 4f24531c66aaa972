package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"web_copy_generator/config"
	"web_copy_generator/generator"
)

func newLogger(level string, verbose bool) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	if verbose {
		lvl = logrus.DebugLevel
	}
	l.SetLevel(lvl)
	return l
}

// setup loads config once and wires the agent the commands share.
func setup(opts *rootOptions, model string) (config.Config, *logrus.Logger, *generator.Agent, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return config.Config{}, nil, nil, err
	}
	if model != "" {
		cfg.Model = model
	}
	logger := newLogger(cfg.LogLevel, opts.verbose)

	llm, err := buildLLM(cfg)
	if err != nil {
		return config.Config{}, nil, nil, err
	}
	var agentOpts []generator.Option
	if logger.IsLevelEnabled(logrus.DebugLevel) {
		agentOpts = append(agentOpts, generator.WithTokenCounter(generator.CountTokens))
	}
	agent, err := generator.NewAgent(llm, cfg.Model, logger, agentOpts...)
	if err != nil {
		return config.Config{}, nil, nil, err
	}
	return cfg, logger, agent, nil
}

func buildLLM(cfg config.Config) (generator.LLMClient, error) {
	llm, err := generator.NewLLM(&generator.LLMSettings{
		Provider: cfg.Provider,
		Model:    cfg.Model,
		APIKey:   cfg.APIKey,
		BaseURL:  cfg.BaseURL,
	})
	if err != nil {
		return nil, fmt.Errorf("build llm client: %w", err)
	}
	return llm, nil
}
