package main

import (
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/kishorwakchaure727-maker/corpnorm-ai/internal/config"
	"github.com/kishorwakchaure727-maker/corpnorm-ai/internal/inspect"
	"github.com/kishorwakchaure727-maker/corpnorm-ai/internal/reason"
	"github.com/kishorwakchaure727-maker/corpnorm-ai/internal/resolver"
	"github.com/kishorwakchaure727-maker/corpnorm-ai/internal/scorer"
	"github.com/kishorwakchaure727-maker/corpnorm-ai/pkg/anthropic"
	"github.com/kishorwakchaure727-maker/corpnorm-ai/pkg/duckduckgo"
	"github.com/kishorwakchaure727-maker/corpnorm-ai/pkg/openai"
	"github.com/kishorwakchaure727-maker/corpnorm-ai/pkg/serpapi"
)

// resolverEnv bundles the constructed resolution strategies. Premium is nil
// when the paid-pipeline credentials are missing.
type resolverEnv struct {
	Free    resolver.Resolver
	Premium resolver.Resolver
}

// buildResolvers wires the engine from configuration.
func buildResolvers(cfg *config.Config) (*resolverEnv, error) {
	scorerCfg := scorer.DefaultConfig()
	if cfg.Scorer.PolicyPath != "" {
		var err error
		scorerCfg, err = scorer.LoadConfig(cfg.Scorer.PolicyPath)
		if err != nil {
			return nil, err
		}
	}

	inspector := inspect.New(inspect.WithTimeout(time.Duration(cfg.Inspect.TimeoutSecs) * time.Second))
	verifier := scorer.New(inspector, scorerCfg)

	env := &resolverEnv{
		Free: resolver.NewFree(verifier, duckduckgo.NewClient()),
	}

	if !cfg.PremiumReady() {
		zap.L().Debug("premium pipeline not configured")
		return env, nil
	}

	rules, err := reason.LoadRules(cfg.Reason.RulesPath)
	if err != nil {
		return nil, err
	}

	var reasoner reason.Reasoner
	switch cfg.Reason.Provider {
	case "openai":
		reasoner = reason.NewOpenAI(openai.NewClient(cfg.OpenAI.Key,
			openai.WithBaseURL(cfg.OpenAI.BaseURL),
			openai.WithModel(cfg.OpenAI.Model),
		))
	case "anthropic":
		reasoner = reason.NewAnthropic(anthropic.NewClient(cfg.Anthropic.Key), cfg.Anthropic.Model)
	default:
		return nil, eris.Errorf("unknown reasoning provider %q", cfg.Reason.Provider)
	}

	search := serpapi.NewClient(cfg.SerpAPI.Key,
		serpapi.WithBaseURL(cfg.SerpAPI.BaseURL),
		serpapi.WithEngine(cfg.SerpAPI.Engine),
		serpapi.WithNum(cfg.SerpAPI.Num),
	)

	env.Premium = resolver.NewPremium(search, reasoner, rules)
	return env, nil
}

// pickResolver selects the strategy for mode, falling back to free with a
// warning when premium was requested but is not configured.
func (e *resolverEnv) pickResolver(mode string) (resolver.Resolver, error) {
	switch mode {
	case "free":
		return e.Free, nil
	case "premium":
		if e.Premium == nil {
			zap.L().Warn("premium mode requested but credentials are missing, falling back to free")
			return e.Free, nil
		}
		return e.Premium, nil
	default:
		return nil, eris.Errorf("mode must be free or premium, got %q", mode)
	}
}
